// Package anim provides scroll-triggered tweens and the pointer trail.
package anim

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Ease maps linear progress in [0,1] to eased progress. Ease(0) is 0 and
// Ease(1) is 1; values in between may overshoot.
type Ease func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 {
	return t
}

// Power1InOut is a sine-like in/out curve.
func Power1InOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// Power2Out decelerates with a cubic curve.
func Power2Out(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// Power3Out decelerates with a quartic curve.
func Power3Out(t float64) float64 {
	return 1 - math.Pow(1-t, 4)
}

// BackOut returns a curve that overshoots the end by an amount set by s
// before settling.
func BackOut(s float64) Ease {
	return func(t float64) float64 {
		u := t - 1
		return u*u*((s+1)*u+s) + 1
	}
}

// ParseEase resolves an ease name such as "power3.out" or "back.out(1.7)".
func ParseEase(name string) (Ease, error) {
	name = strings.TrimSpace(name)
	switch name {
	case "", "none", "linear":
		return Linear, nil
	case "power1.inOut":
		return Power1InOut, nil
	case "power2.out":
		return Power2Out, nil
	case "power3.out":
		return Power3Out, nil
	case "back.out":
		return BackOut(1.70158), nil
	}
	if strings.HasPrefix(name, "back.out(") && strings.HasSuffix(name, ")") {
		raw := strings.TrimSuffix(strings.TrimPrefix(name, "back.out("), ")")
		s, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid back.out overshoot %q: %w", raw, err)
		}
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, fmt.Errorf("back.out overshoot must be finite, got %q", raw)
		}
		return BackOut(s), nil
	}
	return nil, fmt.Errorf("unknown ease %q", name)
}

// MustEase is ParseEase for names known at compile time.
func MustEase(name string) Ease {
	e, err := ParseEase(name)
	if err != nil {
		panic(err)
	}
	return e
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
