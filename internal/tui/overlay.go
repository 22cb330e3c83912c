package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlay draws visible markers on top of frame, in order.
func overlay(frame string, markers []*marker) string {
	if len(markers) == 0 {
		return frame
	}
	lines := strings.Split(frame, "\n")
	drawn := false
	for _, mk := range markers {
		if mk == nil || !mk.visible() {
			continue
		}
		cx, cy := mk.cell()
		glyph := mk.style.Render(mk.glyph)
		for dx := -mk.radius; dx <= mk.radius; dx++ {
			if splice(lines, cx+dx, cy, glyph) {
				drawn = true
			}
		}
	}
	if !drawn {
		return frame
	}
	return strings.Join(lines, "\n")
}

// splice replaces the single cell at (x, y) with glyph. Cells outside the
// frame are ignored.
func splice(lines []string, x, y int, glyph string) bool {
	if y < 0 || y >= len(lines) || x < 0 {
		return false
	}
	line := lines[y]
	if x >= ansi.StringWidth(line) {
		return false
	}
	left := ansi.Truncate(line, x, "")
	right := ansi.TruncateLeft(line, x+1, "")
	lines[y] = left + glyph + right
	return true
}
