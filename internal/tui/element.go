package tui

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/termfolio/internal/anim"
)

// element is the render state of one animated piece of the page.
type element struct {
	id      string
	props   anim.Props
	text    string
	mounted bool
}

func newElement(id string) *element {
	return &element{id: id, props: anim.Props{}, mounted: true}
}

func (e *element) ID() string    { return e.id }
func (e *element) Mounted() bool { return e.mounted }

func (e *element) Apply(p anim.Props) {
	for k, v := range p {
		e.props[k] = v
	}
}

func (e *element) SetText(s string) {
	e.text = s
}

func (e *element) unmount() {
	e.mounted = false
}

func (e *element) opacity() float64 {
	return clampFloat(e.props.Get(anim.Opacity), 0, 1)
}

func (e *element) hidden() bool {
	return e.opacity() < hiddenOpacity
}

// marker is one layer of the pointer trail, drawn as a glyph centred on the
// pointer cell.
type marker struct {
	glyph   string
	radius  int
	style   lipgloss.Style
	size    float64
	pos     anim.Point
	placed  bool
	opacity float64
	mounted bool
}

func (m *marker) Mounted() bool { return m.mounted }

func (m *marker) MoveTo(p anim.Point) {
	m.pos = p
	m.placed = true
}

func (m *marker) SetOpacity(v float64) {
	m.opacity = v
}

func (m *marker) visible() bool {
	return m.mounted && m.placed && m.opacity > 0
}

func (m *marker) cell() (int, int) {
	half := m.size / 2
	return int(math.Round(m.pos.X + half)), int(math.Round(m.pos.Y + half))
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
