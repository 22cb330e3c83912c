// Package model defines shared data structures.
package model

import "time"

// Config defines runtime settings for the portfolio UI.
type Config struct {
	ContentPath   string
	FPS           int
	Trail         bool
	TrailSegments int
	ReducedMotion bool
}

// ContactMessage is a contact form submission.
type ContactMessage struct {
	Ref       string
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}
