package geom

import "fmt"

// Color is a straight-alpha RGBA color with components in [0,1]. It
// deliberately carries no color-management/profile information — a
// backend is free to interpret it as sRGB or otherwise.
type Color struct {
	R, G, B, A float64
}

// Transparent is fully transparent black, the color of the void image.
var Transparent = Color{}

// Opaque returns c with alpha set to 1.
func (c Color) Opaque() Color {
	c.A = 1
	return c
}

// Equal reports whether c and d are exactly equal.
func (c Color) Equal(d Color) bool {
	return c == d
}

// EqualF reports whether c and d are equal under the float comparator eq.
func (c Color) EqualF(d Color, eq func(a, b float64) bool) bool {
	return eq(c.R, d.R) && eq(c.G, d.G) && eq(c.B, d.B) && eq(c.A, d.A)
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%.3g,%.3g,%.3g,%.3g)", c.R, c.G, c.B, c.A)
}

// Stop is one offset/color pair of a gradient.
type Stop struct {
	Offset float64
	Color  Color
}

// Stops is an ordered sequence of gradient stops. A well-formed Stops
// value has non-decreasing Offsets, all within [0,1].
type Stops []Stop

// Valid reports whether s has non-decreasing offsets within [0,1].
func (s Stops) Valid() bool {
	prev := -1.0
	for _, st := range s {
		if st.Offset < 0 || st.Offset > 1 || st.Offset < prev {
			return false
		}
		prev = st.Offset
	}
	return true
}

// Equal reports whether s and t have the same stops in the same order.
func (s Stops) Equal(t Stops) bool {
	if len(s) != len(t) {
		return false
	}
	for i := range s {
		if s[i].Offset != t[i].Offset || !s[i].Color.Equal(t[i].Color) {
			return false
		}
	}
	return true
}

// EqualF reports whether s and t are equal under the float comparator eq.
func (s Stops) EqualF(t Stops, eq func(a, b float64) bool) bool {
	if len(s) != len(t) {
		return false
	}
	for i := range s {
		if !eq(s[i].Offset, t[i].Offset) || !s[i].Color.EqualF(t[i].Color, eq) {
			return false
		}
	}
	return true
}
