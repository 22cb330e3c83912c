package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/verte-zerg/termfolio/internal/anim"
)

func TestFitPadsAndTruncates(t *testing.T) {
	if got := fit("ab", 4); got != "ab  " {
		t.Fatalf("expected padding, got %q", got)
	}
	if got := fit("abcdef", 3); got != "abc" {
		t.Fatalf("expected truncation, got %q", got)
	}
	if got := fit("abc", 0); got != "" {
		t.Fatalf("expected empty line, got %q", got)
	}
}

func TestPlaceKeepsFrameWhenHidden(t *testing.T) {
	e := newElement("card")
	e.Apply(anim.Props{anim.Opacity: 0})
	out := place([]string{"hello"}, e, 5, 1, 2)
	if len(out) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(out))
	}
	for _, l := range out {
		if strings.TrimSpace(l) != "" {
			t.Fatalf("expected blank frame, got %q", l)
		}
	}
}

func TestPlaceShiftsRowsAndColumns(t *testing.T) {
	e := newElement("card")
	e.Apply(anim.Props{anim.Y: 2, anim.X: 1})
	out := place([]string{"ab"}, e, 3, 0, 2)
	want := []string{"   ", "   ", " ab"}
	if len(out) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(out))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], out[i])
		}
	}

	// Overshoot past the frame is clamped.
	e.Apply(anim.Props{anim.Y: -3, anim.X: -1})
	out = place([]string{"ab"}, e, 3, 0, 2)
	if out[0] != "b  " {
		t.Fatalf("expected clamped row with left shift, got %q", out[0])
	}
}

func TestCardScaleKeepsHeight(t *testing.T) {
	e := newElement("card")
	full := card([]string{"one", "two"}, e, 20, borderHex)
	e.Apply(anim.Props{anim.Scale: 0.5})
	small := card([]string{"one", "two"}, e, 20, borderHex)
	if len(full) != 4 || len(small) != 4 {
		t.Fatalf("expected 4 lines, got %d and %d", len(full), len(small))
	}
	for i := range small {
		if w := ansi.StringWidth(small[i]); w != 20 {
			t.Fatalf("line %d: expected width 20, got %d", i, w)
		}
	}
	if strings.TrimSpace(small[0]) == strings.TrimSpace(full[0]) {
		t.Fatalf("expected scaled card to be narrower")
	}
}

func TestProgressBarFill(t *testing.T) {
	bar := progressBar(50, 10, 1)
	if got := strings.Count(bar, "█"); got != 5 {
		t.Fatalf("expected 5 filled cells, got %d", got)
	}
	if got := strings.Count(progressBar(0, 10, 1), "█"); got != 0 {
		t.Fatalf("expected empty bar, got %d cells", got)
	}
	if got := strings.Count(progressBar(100, 10, 1), "█"); got != 10 {
		t.Fatalf("expected full bar, got %d cells", got)
	}
}

func TestFadeEndpoints(t *testing.T) {
	if got := string(fade(accentHex, 1)); !strings.EqualFold(got, accentHex) {
		t.Fatalf("expected %s at full opacity, got %s", accentHex, got)
	}
	if got := string(fade(accentHex, 0)); !strings.EqualFold(got, backgroundHex) {
		t.Fatalf("expected background at zero opacity, got %s", got)
	}
}

func TestColumnsJoinsBlocks(t *testing.T) {
	out := columns([][]string{{"a", "b"}, {"c"}}, 1)
	if len(out) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(out))
	}
	if out[0] != "a c" || out[1] != "b  " {
		t.Fatalf("unexpected columns: %q", out)
	}
}

func TestLayoutTopIsRelativeToOffset(t *testing.T) {
	l := newLayout()
	l.tops["stats"] = 30
	l.offset = 12
	l.height = 20
	top, ok := l.Top("stats")
	if !ok || top != 18 {
		t.Fatalf("expected top 18, got %v (%v)", top, ok)
	}
	if _, ok := l.Top("missing"); ok {
		t.Fatalf("expected unknown id to be absent")
	}
	if l.Height() != 20 {
		t.Fatalf("expected height 20, got %v", l.Height())
	}
}

func TestOverlaySplicesMarkers(t *testing.T) {
	frame := "abcde\nfghij"
	mk := &marker{glyph: "X", size: 1, style: lipgloss.NewStyle(), mounted: true}
	mk.MoveTo(anim.Point{X: 1.5, Y: 0.5})
	mk.SetOpacity(1)
	if got := overlay(frame, []*marker{mk}); got != "abcde\nfgXij" {
		t.Fatalf("unexpected overlay: %q", got)
	}

	mk.radius = 1
	if got := overlay(frame, []*marker{mk}); got != "abcde\nfXXXj" {
		t.Fatalf("unexpected glow overlay: %q", got)
	}

	mk.SetOpacity(0)
	if got := overlay(frame, []*marker{mk}); got != frame {
		t.Fatalf("hidden marker should not draw: %q", got)
	}
}

func TestOverlayIgnoresOutOfFrame(t *testing.T) {
	frame := "ab"
	mk := &marker{glyph: "X", size: 1, style: lipgloss.NewStyle(), mounted: true, opacity: 1}
	mk.MoveTo(anim.Point{X: 9.5, Y: 3.5})
	if got := overlay(frame, []*marker{mk}); got != frame {
		t.Fatalf("expected unchanged frame, got %q", got)
	}
}
