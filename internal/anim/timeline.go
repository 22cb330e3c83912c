// Package anim provides scroll-triggered tweens and the pointer trail.
package anim

import "time"

type timelineEntry struct {
	target Target
	tween  Tween
	at     time.Duration
}

// Timeline sequences tweens back to back. Each entry starts when the
// previous one ends, shifted by an offset; a negative offset overlaps.
type Timeline struct {
	entries []timelineEntry
	end     time.Duration
}

// NewTimeline returns an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Add appends a tween for target, offset relative to the previous end.
func (tl *Timeline) Add(target Target, tw Tween, offset time.Duration) *Timeline {
	at := tl.end + offset
	if at < 0 {
		at = 0
	}
	tl.entries = append(tl.entries, timelineEntry{target: target, tween: tw, at: at})
	if end := at + tw.Delay + tw.Duration; end > tl.end {
		tl.end = end
	}
	return tl
}

// Duration is the time from the first start to the last end.
func (tl *Timeline) Duration() time.Duration {
	return tl.end
}
