package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/verte-zerg/termfolio/internal/anim"
)

const hiddenOpacity = 0.05

const (
	backgroundHex = "#101014"
	textHex       = "#F0F0F0"
	mutedHex      = "#8C8C8C"
	accentHex     = "#C89A3A"
	secondaryHex  = "#7A6FF0"
	borderHex     = "#4A4A4A"
	errorHex      = "#FF4D4F"
	successHex    = "#52C41A"
	footerHex     = "#6E6E6E"
)

var (
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(footerHex))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(errorHex))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(successHex)).Bold(true)
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(textHex)).Bold(true)
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(accentHex)).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(mutedHex))
)

// fade blends hex toward the page background by opacity.
func fade(hex string, opacity float64) lipgloss.Color {
	switch {
	case opacity >= 1:
		return lipgloss.Color(hex)
	case opacity <= 0:
		return lipgloss.Color(backgroundHex)
	}
	fg, err := colorful.Hex(hex)
	if err != nil {
		return lipgloss.Color(hex)
	}
	bg, err := colorful.Hex(backgroundHex)
	if err != nil {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color(bg.BlendLab(fg, clampFloat(opacity, 0, 1)).Clamped().Hex())
}

// ink returns a foreground style faded to opacity.
func ink(hex string, opacity float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(fade(hex, opacity))
}

// place positions lines inside a frame of width columns and
// above+len(lines)+below rows, shifted by the X/Y props. Hidden elements
// keep their frame but draw nothing.
func place(lines []string, e *element, width, above, below int) []string {
	height := above + len(lines) + below
	out := make([]string, 0, height)
	blank := strings.Repeat(" ", maxInt(width, 0))
	if e != nil && e.hidden() {
		for i := 0; i < height; i++ {
			out = append(out, blank)
		}
		return out
	}
	dx, dy := 0, 0
	if e != nil {
		dx = int(math.Round(e.props.Get(anim.X)))
		dy = clampInt(int(math.Round(e.props.Get(anim.Y))), -above, below)
	}
	for i := 0; i < above+dy; i++ {
		out = append(out, blank)
	}
	for _, l := range lines {
		out = append(out, fit(shiftX(l, dx), width))
	}
	for len(out) < height {
		out = append(out, blank)
	}
	return out
}

func shiftX(line string, dx int) string {
	switch {
	case dx > 0:
		return strings.Repeat(" ", dx) + line
	case dx < 0:
		return ansi.TruncateLeft(line, -dx, "")
	default:
		return line
	}
}

// fit pads or truncates line to exactly width cells.
func fit(line string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(line)
	if w > width {
		return ansi.Truncate(line, width, "")
	}
	return line + strings.Repeat(" ", width-w)
}

// card draws body inside a rounded border, narrowed by the element's scale
// and centred in width. The frame height never changes with scale.
func card(body []string, e *element, width int, border string) []string {
	scale := 1.0
	opacity := 1.0
	if e != nil {
		scale = clampFloat(e.props.Get(anim.Scale), 0.1, 1)
		opacity = e.opacity()
	}
	inner := len(body)
	cardWidth := maxInt(4, int(math.Round(float64(width)*scale)))
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), true).
		BorderForeground(fade(border, opacity)).
		Padding(0, 1).
		Width(cardWidth - 2).
		Height(inner).
		MaxHeight(inner + 2)
	clipped := make([]string, len(body))
	for i, l := range body {
		clipped[i] = fit(l, maxInt(cardWidth-4, 0))
	}
	rendered := style.Render(strings.Join(clipped, "\n"))
	lines := strings.Split(rendered, "\n")
	margin := (width - cardWidth) / 2
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = fit(strings.Repeat(" ", maxInt(margin, 0))+l, width)
	}
	return out
}

// progressBar fills width cells by percent.
func progressBar(percent float64, width int, opacity float64) string {
	if width <= 0 {
		return ""
	}
	filled := int(math.Round(clampFloat(percent, 0, 100) / 100 * float64(width)))
	return ink(accentHex, opacity).Render(strings.Repeat("█", filled)) +
		ink(borderHex, opacity).Render(strings.Repeat("░", width-filled))
}

// columns joins equally tall blocks side by side with gap spaces between.
func columns(blocks [][]string, gap int) []string {
	if len(blocks) == 0 {
		return nil
	}
	height := 0
	for _, b := range blocks {
		height = maxInt(height, len(b))
	}
	sep := strings.Repeat(" ", gap)
	out := make([]string, height)
	for row := 0; row < height; row++ {
		var sb strings.Builder
		for i, b := range blocks {
			if i > 0 {
				sb.WriteString(sep)
			}
			if row < len(b) {
				sb.WriteString(b[row])
			} else if len(b) > 0 {
				sb.WriteString(strings.Repeat(" ", ansi.StringWidth(b[0])))
			}
		}
		out[row] = sb.String()
	}
	return out
}

func blankLines(n, width int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strings.Repeat(" ", maxInt(width, 0))
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
