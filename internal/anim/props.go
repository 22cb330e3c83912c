// Package anim provides scroll-triggered tweens and the pointer trail.
package anim

// Prop names one animatable numeric property.
type Prop int

const (
	Opacity Prop = iota
	X
	Y
	Scale
	Width
)

func (p Prop) String() string {
	switch p {
	case Opacity:
		return "opacity"
	case X:
		return "x"
	case Y:
		return "y"
	case Scale:
		return "scale"
	case Width:
		return "width"
	default:
		return "unknown"
	}
}

// Props is a set of property values.
type Props map[Prop]float64

// Rest returns the resting value of p on an untouched element.
func Rest(p Prop) float64 {
	switch p {
	case Opacity, Scale:
		return 1
	default:
		return 0
	}
}

// Get returns the value of p, or its resting value when unset.
func (ps Props) Get(p Prop) float64 {
	if v, ok := ps[p]; ok {
		return v
	}
	return Rest(p)
}

// Clone copies ps.
func (ps Props) Clone() Props {
	out := make(Props, len(ps))
	for k, v := range ps {
		out[k] = v
	}
	return out
}

// Lerp interpolates every property named in to. Properties missing from
// from start at their resting value.
func Lerp(from, to Props, t float64) Props {
	out := make(Props, len(to))
	for p, end := range to {
		start := from.Get(p)
		out[p] = start + (end-start)*t
	}
	return out
}
