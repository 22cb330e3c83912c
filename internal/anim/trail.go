// Package anim provides scroll-triggered tweens and the pointer trail.
package anim

import (
	"container/heap"
	"fmt"
	"time"
)

// Point is a pointer coordinate.
type Point struct {
	X float64
	Y float64
}

// Layer is one marker of the pointer trail.
type Layer interface {
	Mounted() bool
	// MoveTo places the marker's top-left corner.
	MoveTo(Point)
	SetOpacity(float64)
}

// TrailConfig sizes and delays the trail layers. Sizes[i] and Delays[i]
// belong to segment i.
type TrailConfig struct {
	PrimarySize float64
	Sizes       []float64
	Delays      []time.Duration
	GlowSize    float64
	GlowDelay   time.Duration
}

// Validate checks that segment delays strictly increase and sizes never
// grow.
func (c TrailConfig) Validate() error {
	if len(c.Sizes) != len(c.Delays) {
		return fmt.Errorf("trail has %d sizes and %d delays", len(c.Sizes), len(c.Delays))
	}
	if c.PrimarySize < 0 || c.GlowSize < 0 || c.GlowDelay < 0 {
		return fmt.Errorf("trail sizes and delays must be >= 0")
	}
	for i := range c.Sizes {
		if c.Sizes[i] < 0 || c.Delays[i] <= 0 {
			return fmt.Errorf("segment %d: size must be >= 0 and delay > 0", i)
		}
		if i > 0 && c.Delays[i] <= c.Delays[i-1] {
			return fmt.Errorf("segment %d: delays must increase", i)
		}
		if i > 0 && c.Sizes[i] > c.Sizes[i-1] {
			return fmt.Errorf("segment %d: sizes must not increase", i)
		}
	}
	return nil
}

type pendingMove struct {
	fireAt time.Time
	seq    uint64
	layer  int
	at     Point
}

type moveQueue []pendingMove

func (q moveQueue) Len() int { return len(q) }

func (q moveQueue) Less(i, j int) bool {
	if q[i].fireAt.Equal(q[j].fireAt) {
		return q[i].seq < q[j].seq
	}
	return q[i].fireAt.Before(q[j].fireAt)
}

func (q moveQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *moveQueue) Push(x any) { *q = append(*q, x.(pendingMove)) }

func (q *moveQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// Trail moves a primary marker with the pointer and echoes the position to
// delayed segments and a glow. Delayed writes go through one queue drained
// by Tick.
type Trail struct {
	clock    Clock
	primary  Layer
	segments []Layer
	glow     Layer
	cfg      TrailConfig

	queue   moveQueue
	seq     uint64
	running bool
	visible bool
}

// NewTrail builds a trail. glow may be nil.
func NewTrail(clock Clock, primary Layer, segments []Layer, glow Layer, cfg TrailConfig) (*Trail, error) {
	if primary == nil {
		return nil, fmt.Errorf("trail needs a primary layer")
	}
	if len(segments) != len(cfg.Sizes) {
		return nil, fmt.Errorf("trail has %d segments but %d sizes", len(segments), len(cfg.Sizes))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Trail{
		clock:    clock,
		primary:  primary,
		segments: segments,
		glow:     glow,
		cfg:      cfg,
	}, nil
}

// Start subscribes the trail to pointer events.
func (t *Trail) Start() {
	t.running = true
}

// Stop unsubscribes and drops every queued write.
func (t *Trail) Stop() {
	t.running = false
	t.queue = nil
}

// Running reports whether the trail handles events.
func (t *Trail) Running() bool {
	return t.running
}

// Visible reports whether the layers are shown.
func (t *Trail) Visible() bool {
	return t.visible
}

// Pending returns the number of queued writes.
func (t *Trail) Pending() int {
	return len(t.queue)
}

// Move handles a pointer-move to (x, y).
func (t *Trail) Move(x, y float64) {
	if !t.running {
		return
	}
	p := Point{X: x, Y: y}
	if t.primary.Mounted() {
		t.primary.MoveTo(offset(p, t.cfg.PrimarySize))
	}
	now := t.clock.Now()
	for i, d := range t.cfg.Delays {
		t.push(now.Add(d), i, p)
	}
	if t.glow != nil {
		t.push(now.Add(t.cfg.GlowDelay), len(t.segments), p)
	}
}

// Tick applies every queued write that is due.
func (t *Trail) Tick() {
	if !t.running {
		return
	}
	now := t.clock.Now()
	for len(t.queue) > 0 && !t.queue[0].fireAt.After(now) {
		mv := heap.Pop(&t.queue).(pendingMove)
		layer, size := t.layer(mv.layer)
		if layer == nil || !layer.Mounted() {
			continue
		}
		layer.MoveTo(offset(mv.at, size))
	}
}

// Enter shows every layer.
func (t *Trail) Enter() {
	if !t.running || t.visible {
		return
	}
	t.visible = true
	t.setOpacity(1)
}

// Leave hides every layer.
func (t *Trail) Leave() {
	if !t.running || !t.visible {
		return
	}
	t.visible = false
	t.setOpacity(0)
}

func (t *Trail) setOpacity(v float64) {
	for _, l := range t.layers() {
		if l != nil && l.Mounted() {
			l.SetOpacity(v)
		}
	}
}

func (t *Trail) layers() []Layer {
	out := make([]Layer, 0, len(t.segments)+2)
	out = append(out, t.primary)
	out = append(out, t.segments...)
	if t.glow != nil {
		out = append(out, t.glow)
	}
	return out
}

func (t *Trail) layer(i int) (Layer, float64) {
	if i < len(t.segments) {
		return t.segments[i], t.cfg.Sizes[i]
	}
	return t.glow, t.cfg.GlowSize
}

func (t *Trail) push(at time.Time, layer int, p Point) {
	t.seq++
	heap.Push(&t.queue, pendingMove{fireAt: at, seq: t.seq, layer: layer, at: p})
}

func offset(p Point, size float64) Point {
	half := size / 2
	return Point{X: p.X - half, Y: p.Y - half}
}
