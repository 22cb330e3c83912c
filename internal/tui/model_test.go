package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/verte-zerg/termfolio/internal/anim"
	"github.com/verte-zerg/termfolio/internal/content"
	"github.com/verte-zerg/termfolio/internal/model"
	"github.com/verte-zerg/termfolio/internal/store"
)

const frameStep = 50 * time.Millisecond

func newTestModel(t *testing.T, cfg model.Config) (*Model, *anim.ManualClock, *store.Store) {
	t.Helper()
	st, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	clock := anim.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	m, err := NewModel(cfg, content.Default(), st, clock)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	t.Cleanup(m.Close)
	return m, clock, st
}

func runFrames(m *Model, clock *anim.ManualClock, d time.Duration, each func()) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += frameStep {
		clock.Advance(frameStep)
		m.Update(frameMsg(clock.Now()))
		if each != nil {
			each()
		}
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(keyRunes(string(r)))
	}
}

func TestHeroEntrancePlaysOnStart(t *testing.T) {
	m, clock, _ := newTestModel(t, model.Config{FPS: 60})
	if op := m.page.heroTitle.opacity(); op != 0 {
		t.Fatalf("expected hidden hero title before start, got %v", op)
	}
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 10})
	runFrames(m, clock, 2*time.Second, nil)
	for _, e := range []*element{m.page.heroTitle, m.page.heroSubtitle, m.page.heroCTA, m.page.heroSocial} {
		if e.opacity() != 1 || e.props.Get(anim.Y) != 0 {
			t.Fatalf("%s not settled: %v", e.id, e.props)
		}
	}
}

func TestStatsCountUpWhenScrolledIntoView(t *testing.T) {
	m, clock, _ := newTestModel(t, model.Config{FPS: 60})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 10})

	stats := content.Default().About.Stats
	for i := range stats {
		if got := m.page.counters[i].text; got != "0" {
			t.Fatalf("counter %d: expected 0 before scroll, got %q", i, got)
		}
	}
	if op := m.page.aboutContent.opacity(); op != 0 {
		t.Fatalf("expected about text hidden before scroll, got %v", op)
	}

	m.jump(triggerStats)
	last := make([]int, len(stats))
	runFrames(m, clock, 3*time.Second, func() {
		for i, c := range m.page.counters {
			v, err := strconv.Atoi(c.text)
			if err != nil {
				t.Fatalf("counter %d: bad text %q", i, c.text)
			}
			if v < last[i] {
				t.Fatalf("counter %d went down: %d -> %d", i, last[i], v)
			}
			last[i] = v
		}
	})
	for i, s := range stats {
		if got := m.page.counters[i].text; got != fmt.Sprint(s.Number) {
			t.Fatalf("counter %d: expected %d, got %q", i, s.Number, got)
		}
		if m.page.stats[i].opacity() != 1 {
			t.Fatalf("stat card %d not visible", i)
		}
	}
	page := strings.Join(m.lines, "\n")
	for _, want := range []string{"2+", "10+", "15+", "100%"} {
		if !strings.Contains(page, want) {
			t.Fatalf("page missing %q", want)
		}
	}
}

func TestProgressBarsFillToLevel(t *testing.T) {
	m, clock, _ := newTestModel(t, model.Config{FPS: 60})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 10})
	for i, bar := range m.page.bars {
		if w := bar.props.Get(anim.Width); w != 0 {
			t.Fatalf("bar %d: expected width 0 before scroll, got %v", i, w)
		}
	}
	m.jump(triggerSkills)
	runFrames(m, clock, 3*time.Second, nil)
	skills := content.Default().Skills
	perRow := clampInt(contentWidth(100)/26, 1, 4)
	// Only the first row is guaranteed on screen.
	for i := 0; i < perRow && i < len(skills); i++ {
		if got := m.page.bars[i].props.Get(anim.Width); got != float64(skills[i].Level) {
			t.Fatalf("bar %d: expected %d, got %v", i, skills[i].Level, got)
		}
	}
}

func TestCloseStopsAnimations(t *testing.T) {
	m, clock, _ := newTestModel(t, model.Config{FPS: 60})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 10})
	m.Close()

	m.jump(triggerSkills)
	m.viewport.GotoBottom()
	m.scrolled()
	runFrames(m, clock, 3*time.Second, nil)

	for i, bar := range m.page.bars {
		if w := bar.props.Get(anim.Width); w != 0 {
			t.Fatalf("bar %d mutated after close: %v", i, w)
		}
	}
	for i, c := range m.page.counters {
		if c.text != "0" {
			t.Fatalf("counter %d mutated after close: %q", i, c.text)
		}
	}
	if _, cmd := m.Update(frameMsg(clock.Now())); cmd != nil {
		t.Fatalf("expected frame loop to end after close")
	}
	m.Close()
}

func TestQuitTearsDown(t *testing.T) {
	m, _, _ := newTestModel(t, model.Config{FPS: 60, Trail: true, TrailSegments: 2})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	_, cmd := m.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if !m.closed || m.trail.Running() {
		t.Fatalf("expected model closed and trail stopped")
	}
}

func TestContactFormSubmit(t *testing.T) {
	m, clock, st := newTestModel(t, model.Config{FPS: 60})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	m.Update(keyRunes("f"))
	if !m.form.active {
		t.Fatalf("expected form to be active")
	}
	typeText(m, "Ada")
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeText(m, "ada@example.com")
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeText(m, "Hello there")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	msgs, err := st.ListMessages(context.Background())
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].Name != "Ada" || msgs[0].Email != "ada@example.com" || msgs[0].Message != "Hello there" {
		t.Fatalf("unexpected message: %+v", msgs[0])
	}
	if v := m.form.values(); v.Name != "" || v.Email != "" || v.Message != "" {
		t.Fatalf("expected reset form, got %+v", v)
	}
	if !strings.Contains(m.renderFooter(), "Message sent") {
		t.Fatalf("expected success toast, got %q", m.renderFooter())
	}

	runFrames(m, clock, toastDuration+frameStep, nil)
	if m.toast != "" {
		t.Fatalf("expected toast to expire, got %q", m.toast)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.form.active {
		t.Fatalf("expected esc to leave the form")
	}
}

func TestContactFormRejectsInvalidEmail(t *testing.T) {
	m, _, st := newTestModel(t, model.Config{FPS: 60})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	m.Update(keyRunes("f"))
	typeText(m, "Ada")
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeText(m, "nope")
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeText(m, "Hi")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	if m.form.err != errInvalidEmail.Error() {
		t.Fatalf("expected email error, got %q", m.form.err)
	}
	n, err := st.CountMessages(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected no stored messages, got %d", n)
	}
	if !strings.Contains(strings.Join(m.lines, "\n"), errInvalidEmail.Error()) {
		t.Fatalf("expected error to be rendered")
	}
}

func TestValidateMessage(t *testing.T) {
	cases := []struct {
		msg  model.ContactMessage
		want error
	}{
		{model.ContactMessage{Name: "A", Email: "a@b", Message: "m"}, nil},
		{model.ContactMessage{Email: "a@b", Message: "m"}, errMissingFields},
		{model.ContactMessage{Name: "A", Email: "a@b"}, errMissingFields},
		{model.ContactMessage{Name: "A", Email: "ab", Message: "m"}, errInvalidEmail},
	}
	for i, tc := range cases {
		if got := validateMessage(tc.msg); got != tc.want {
			t.Fatalf("case %d: expected %v, got %v", i, tc.want, got)
		}
	}
}

func TestTrailFollowsPointer(t *testing.T) {
	m, clock, _ := newTestModel(t, model.Config{FPS: 60, Trail: true, TrailSegments: 3})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})

	m.Update(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionMotion})
	primary := m.markers[len(m.markers)-1]
	if x, y := primary.cell(); x != 10 || y != 5 || !primary.visible() {
		t.Fatalf("expected primary at (10,5), got (%d,%d) visible=%v", x, y, primary.visible())
	}
	segment := m.markers[1]
	if segment.visible() {
		t.Fatalf("segment should lag behind the pointer")
	}
	runFrames(m, clock, 200*time.Millisecond, nil)
	for i, mk := range m.markers {
		if x, y := mk.cell(); !mk.visible() || x != 10 || y != 5 {
			t.Fatalf("marker %d: expected at (10,5), got (%d,%d) visible=%v", i, x, y, mk.visible())
		}
	}
	if !strings.Contains(m.View(), "●") {
		t.Fatalf("expected pointer glyph in view")
	}

	m.Update(tea.BlurMsg{})
	if strings.Contains(m.View(), "●") {
		t.Fatalf("expected trail hidden after blur")
	}
	m.Update(tea.FocusMsg{})
	if !m.trail.Visible() {
		t.Fatalf("expected trail visible after focus")
	}
}

func TestReducedMotionSettlesImmediately(t *testing.T) {
	m, _, _ := newTestModel(t, model.Config{FPS: 60, Trail: true, TrailSegments: 3, ReducedMotion: true})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 1000})

	for i, s := range content.Default().About.Stats {
		if got := m.page.counters[i].text; got != fmt.Sprint(s.Number) {
			t.Fatalf("counter %d: expected %d, got %q", i, s.Number, got)
		}
	}
	for i, s := range content.Default().Skills {
		if got := m.page.bars[i].props.Get(anim.Width); got != float64(s.Level) {
			t.Fatalf("bar %d: expected %d, got %v", i, s.Level, got)
		}
	}
	if m.trail.Running() {
		t.Fatalf("expected trail disabled")
	}
	if y := m.page.heroRoot.props.Get(anim.Y); y != 0 {
		t.Fatalf("expected no float loop, got y=%v", y)
	}
}

func TestRenderStatic(t *testing.T) {
	out, err := RenderStatic(content.Default(), 90)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"About Me", "My Skills", "Featured Projects", "Let's Connect", "100%", "Send a Message"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q", want)
		}
	}
	for i, line := range strings.Split(out, "\n") {
		if w := ansi.StringWidth(line); w > 90 {
			t.Fatalf("line %d wider than 90: %d", i, w)
		}
	}
}

func TestRenderFooterHints(t *testing.T) {
	m, _, _ := newTestModel(t, model.Config{FPS: 60})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 20})
	if out := m.renderFooter(); !containsAll(out, []string{"p projects", "c contact", "q quit"}) {
		t.Fatalf("footer missing hints: %q", out)
	}
	m.notify("Resume: /resume.pdf", false)
	if out := m.renderFooter(); !strings.Contains(out, "Resume: /resume.pdf") {
		t.Fatalf("footer missing toast: %q", out)
	}
}

func containsAll(haystack string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}

func TestNamedCurvesResolve(t *testing.T) {
	cases := []struct {
		name string
		got  anim.Ease
		want anim.Ease
	}{
		{"enter", easeEnter, anim.Power3Out},
		{"settle", easeSettle, anim.Power2Out},
		{"float", easeFloat, anim.Power1InOut},
		{"pop", easePop, anim.BackOut(1.7)},
	}
	for _, tc := range cases {
		for _, p := range []float64{0, 0.25, 0.5, 0.75, 1} {
			if tc.got(p) != tc.want(p) {
				t.Fatalf("%s(%v): expected %v, got %v", tc.name, p, tc.want(p), tc.got(p))
			}
		}
	}
}
