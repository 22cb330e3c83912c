// Package anim provides scroll-triggered tweens and the pointer trail.
package anim

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	// DefaultThreshold fires an observer once the trigger's top edge reaches
	// 80% of the viewport height.
	DefaultThreshold = 0.8
	// ProgressThreshold is used by skill progress bars.
	ProgressThreshold = 0.9
)

var (
	ErrInvalidTween    = errors.New("invalid tween")
	ErrInvalidValue    = errors.New("invalid value")
	ErrDuplicateTarget = errors.New("target already observed")
	ErrStopped         = errors.New("sequencer stopped")
)

// Target is a handle to one animatable element.
type Target interface {
	ID() string
	// Mounted reports whether the element still exists. Writes to
	// unmounted targets are dropped.
	Mounted() bool
	Apply(Props)
}

// TextTarget is a Target whose text content can be replaced.
type TextTarget interface {
	Target
	SetText(string)
}

// Viewport answers visibility queries for trigger elements.
type Viewport interface {
	Height() float64
	// Top returns the trigger's top edge relative to the viewport top.
	Top(id string) (float64, bool)
}

// Tween describes a one-shot transition.
type Tween struct {
	From     Props
	To       Props
	Duration time.Duration
	Ease     Ease
	Delay    time.Duration
	// Stagger offsets the start of sibling i by i*Stagger.
	Stagger time.Duration
	// Threshold is a fraction of the viewport height; zero means
	// DefaultThreshold.
	Threshold float64
	// Trigger names the element whose top edge is observed. Defaults to the
	// first target.
	Trigger string
	// Repeat counts extra cycles; -1 repeats forever.
	Repeat int
	Yoyo   bool
}

type observerState int

const (
	statePending observerState = iota
	stateRunning
	stateDone
)

type track struct {
	target   Target
	offset   time.Duration
	duration time.Duration
	ease     Ease
	repeat   int
	yoyo     bool
	start    time.Time
	done     bool

	render func(p float64)
	settle func(atEnd bool)
}

type observer struct {
	key       string
	trigger   string
	threshold float64
	immediate bool
	state     observerState
	tracks    []*track
}

// Sequencer owns every live observer of one section. It is driven from a
// single event loop: Check after scrolling or resizing, Tick once per frame.
type Sequencer struct {
	clock   Clock
	view    Viewport
	instant bool

	observers map[string]*observer
	order     []string

	running bool
	stopped bool
}

// NewSequencer creates an idle sequencer.
func NewSequencer(clock Clock, view Viewport) *Sequencer {
	return &Sequencer{
		clock:     clock,
		view:      view,
		observers: map[string]*observer{},
	}
}

// SetInstant makes every tween settle on its end state as soon as it fires.
func (s *Sequencer) SetInstant(instant bool) {
	s.instant = instant
}

// Observe registers a one-shot transition for targets. From is applied to
// every target immediately.
func (s *Sequencer) Observe(targets []Target, tw Tween) error {
	if err := s.validate(targets, tw); err != nil {
		return err
	}
	tw = normalize(tw)
	key := tw.Trigger
	if key == "" {
		key = targets[0].ID()
	}
	if _, ok := s.observers[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTarget, key)
	}
	o := &observer{key: key, trigger: key, threshold: tw.Threshold}
	for i, target := range targets {
		tr := newPropsTrack(target, tw)
		tr.offset = tw.Delay + time.Duration(i)*tw.Stagger
		o.tracks = append(o.tracks, tr)
	}
	return s.register(o)
}

// ObserveCounter counts target's text from from to to once the target
// crosses the threshold. The displayed value never decreases and always
// ends on to.
func (s *Sequencer) ObserveCounter(target TextTarget, from, to int, tw Tween) error {
	if from < 0 || to < 0 || from > to {
		return fmt.Errorf("%w: counter %d..%d", ErrInvalidValue, from, to)
	}
	if err := s.validate([]Target{target}, tw); err != nil {
		return err
	}
	tw = normalize(tw)
	key := keyFor(target, tw)
	if _, ok := s.observers[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTarget, key)
	}
	last := from
	tr := &track{
		target:   target,
		offset:   tw.Delay,
		duration: tw.Duration,
		ease:     tw.Ease,
		render: func(p float64) {
			v := from + int(math.Round(float64(to-from)*clamp01(p)))
			if v < last {
				v = last
			}
			last = v
			target.SetText(fmt.Sprint(v))
		},
		settle: func(bool) {
			last = to
			target.SetText(fmt.Sprint(to))
		},
	}
	target.SetText(fmt.Sprint(from))
	return s.register(&observer{key: key, trigger: key, threshold: tw.Threshold, tracks: []*track{tr}})
}

// ObserveProgress grows target's width from 0% to percent. The width is
// reset to 0 at registration.
func (s *Sequencer) ObserveProgress(target Target, percent float64, tw Tween) error {
	if math.IsNaN(percent) || percent < 0 || percent > 100 {
		return fmt.Errorf("%w: progress %v", ErrInvalidValue, percent)
	}
	if err := s.validate([]Target{target}, tw); err != nil {
		return err
	}
	tw = normalize(tw)
	key := keyFor(target, tw)
	if _, ok := s.observers[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTarget, key)
	}
	tr := &track{
		target:   target,
		offset:   tw.Delay,
		duration: tw.Duration,
		ease:     tw.Ease,
		render: func(p float64) {
			target.Apply(Props{Width: percent * clamp01(p)})
		},
		settle: func(bool) {
			target.Apply(Props{Width: percent})
		},
	}
	target.Apply(Props{Width: 0})
	return s.register(&observer{key: key, trigger: key, threshold: tw.Threshold, tracks: []*track{tr}})
}

// Play registers a timeline under key. It starts on the next Check without
// waiting for visibility.
func (s *Sequencer) Play(key string, tl *Timeline) error {
	if s.stopped {
		return ErrStopped
	}
	if key == "" || tl == nil || len(tl.entries) == 0 {
		return fmt.Errorf("%w: empty timeline", ErrInvalidTween)
	}
	for _, e := range tl.entries {
		if err := s.validate([]Target{e.target}, e.tween); err != nil {
			return err
		}
	}
	if _, ok := s.observers[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTarget, key)
	}
	o := &observer{key: key, immediate: true}
	for _, e := range tl.entries {
		tw := normalize(e.tween)
		tr := newPropsTrack(e.target, tw)
		tr.offset = e.at + tw.Delay
		o.tracks = append(o.tracks, tr)
	}
	return s.register(o)
}

// Start enables the sequencer and fires every observer whose trigger is
// already past its threshold.
func (s *Sequencer) Start() {
	if s.stopped || s.running {
		return
	}
	s.running = true
	s.Check()
}

// Stop cancels pending and in-flight observers and releases the registry.
// No target is written after Stop returns.
func (s *Sequencer) Stop() {
	if s.stopped {
		return
	}
	s.stopped = true
	s.running = false
	for _, key := range s.order {
		if o, ok := s.observers[key]; ok {
			o.tracks = nil
			o.state = stateDone
		}
	}
	s.observers = nil
	s.order = nil
}

// Cancel drops a single observer. It reports whether key was registered.
func (s *Sequencer) Cancel(key string) bool {
	o, ok := s.observers[key]
	if !ok {
		return false
	}
	o.tracks = nil
	delete(s.observers, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Check fires pending observers whose trigger crossed the threshold.
func (s *Sequencer) Check() {
	if !s.running {
		return
	}
	now := s.clock.Now()
	height := s.view.Height()
	for _, key := range s.order {
		o := s.observers[key]
		if o.state != statePending {
			continue
		}
		if !o.immediate {
			top, ok := s.view.Top(o.trigger)
			if !ok || top > o.threshold*height {
				continue
			}
		}
		s.fire(o, now)
	}
}

// Tick advances every running observer to the current time.
func (s *Sequencer) Tick() {
	if !s.running {
		return
	}
	now := s.clock.Now()
	for _, key := range s.order {
		o := s.observers[key]
		if o.state != stateRunning {
			continue
		}
		finished := true
		for _, tr := range o.tracks {
			if !tr.advance(now) {
				finished = false
			}
		}
		if finished {
			o.state = stateDone
			o.tracks = nil
		}
	}
}

// Active reports whether any observer is pending or running.
func (s *Sequencer) Active() bool {
	for _, o := range s.observers {
		if o.state != stateDone {
			return true
		}
	}
	return false
}

// Animating reports whether any fired observer is still writing targets.
func (s *Sequencer) Animating() bool {
	for _, o := range s.observers {
		if o.state == stateRunning {
			return true
		}
	}
	return false
}

// Fired reports whether the observer registered under key has fired.
func (s *Sequencer) Fired(key string) bool {
	o, ok := s.observers[key]
	return ok && o.state != statePending
}

func (s *Sequencer) fire(o *observer, now time.Time) {
	o.state = stateRunning
	for _, tr := range o.tracks {
		tr.start = now.Add(tr.offset)
		if s.instant && tr.repeat == 0 {
			tr.start = now
			tr.duration = 0
		}
	}
	if s.instant {
		s.Tick()
	}
}

func (s *Sequencer) register(o *observer) error {
	if s.stopped {
		return ErrStopped
	}
	if _, ok := s.observers[o.key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTarget, o.key)
	}
	s.observers[o.key] = o
	s.order = append(s.order, o.key)
	if s.running {
		s.Check()
	}
	return nil
}

func (s *Sequencer) validate(targets []Target, tw Tween) error {
	if s.stopped {
		return ErrStopped
	}
	if len(targets) == 0 {
		return fmt.Errorf("%w: no targets", ErrInvalidTween)
	}
	for _, t := range targets {
		if t == nil {
			return fmt.Errorf("%w: nil target", ErrInvalidTween)
		}
	}
	if tw.Duration < 0 || tw.Delay < 0 || tw.Stagger < 0 {
		return fmt.Errorf("%w: negative timing", ErrInvalidTween)
	}
	if math.IsNaN(tw.Threshold) || tw.Threshold < 0 || tw.Threshold > 1 {
		return fmt.Errorf("%w: threshold %v", ErrInvalidTween, tw.Threshold)
	}
	if tw.Repeat < -1 {
		return fmt.Errorf("%w: repeat %d", ErrInvalidTween, tw.Repeat)
	}
	if tw.Repeat != 0 && tw.Duration == 0 {
		return fmt.Errorf("%w: repeating tween needs a duration", ErrInvalidTween)
	}
	for _, ps := range []Props{tw.From, tw.To} {
		for p, v := range ps {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: %s=%v", ErrInvalidValue, p, v)
			}
		}
	}
	return nil
}

func normalize(tw Tween) Tween {
	if tw.Ease == nil {
		tw.Ease = Linear
	}
	if tw.Threshold == 0 {
		tw.Threshold = DefaultThreshold
	}
	return tw
}

func keyFor(target Target, tw Tween) string {
	if tw.Trigger != "" {
		return tw.Trigger
	}
	return target.ID()
}

func newPropsTrack(target Target, tw Tween) *track {
	from := tw.From.Clone()
	to := tw.To.Clone()
	if len(from) > 0 {
		target.Apply(from.Clone())
	}
	return &track{
		target:   target,
		duration: tw.Duration,
		ease:     tw.Ease,
		repeat:   tw.Repeat,
		yoyo:     tw.Yoyo,
		render: func(p float64) {
			target.Apply(Lerp(from, to, p))
		},
		settle: func(atEnd bool) {
			if atEnd {
				target.Apply(to.Clone())
				return
			}
			target.Apply(Lerp(from, to, 0))
		},
	}
}

// advance writes the track's state at now and reports whether it is done.
func (tr *track) advance(now time.Time) bool {
	if tr.done {
		return true
	}
	elapsed := now.Sub(tr.start)
	if elapsed < 0 {
		return false
	}
	if tr.duration <= 0 {
		tr.finish(true)
		return true
	}
	cycle := int(elapsed / tr.duration)
	if tr.repeat >= 0 && cycle > tr.repeat {
		// An odd final cycle of a yoyo runs backwards and ends at the start.
		tr.finish(!(tr.yoyo && tr.repeat%2 == 1))
		return true
	}
	local := float64(elapsed%tr.duration) / float64(tr.duration)
	if tr.yoyo && cycle%2 == 1 {
		local = 1 - local
	}
	if tr.target.Mounted() {
		tr.render(tr.ease(local))
	}
	return false
}

func (tr *track) finish(atEnd bool) {
	tr.done = true
	if tr.target.Mounted() {
		tr.settle(atEnd)
	}
}
