package geom

import "math"

// Box2 is an axis-aligned rectangle, represented by its minimum and
// maximum corners. The shape of this type (Min/Max corners, Empty as
// +/-Infinity) follows cogentcore.org/core's mat32.Box2.
type Box2 struct {
	Min, Max P2
}

// EmptyBox2 returns a box with no extent, suitable as the identity
// element for Union.
func EmptyBox2() Box2 {
	return Box2{
		Min: P2{X: math.Inf(1), Y: math.Inf(1)},
		Max: P2{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// IsEmpty reports whether b contains no points.
func (b Box2) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

// Add expands b, if necessary, to include p.
func (b Box2) Add(p P2) Box2 {
	return Box2{
		Min: P2{X: min(b.Min.X, p.X), Y: min(b.Min.Y, p.Y)},
		Max: P2{X: max(b.Max.X, p.X), Y: max(b.Max.Y, p.Y)},
	}
}

// Union returns the smallest box containing both b and other.
func (b Box2) Union(other Box2) Box2 {
	if b.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return b
	}
	return Box2{
		Min: P2{X: min(b.Min.X, other.Min.X), Y: min(b.Min.Y, other.Min.Y)},
		Max: P2{X: max(b.Max.X, other.Max.X), Y: max(b.Max.Y, other.Max.Y)},
	}
}

// Size returns the width/height of b.
func (b Box2) Size() Size2 {
	return Size2{W: b.Max.X - b.Min.X, H: b.Max.Y - b.Min.Y}
}

// ContainsPoint reports whether p lies within b (inclusive).
func (b Box2) ContainsPoint(p P2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Transform returns the tight bounding box of b under the affine
// transform m, computed by transforming all four corners.
func (b Box2) Transform(m M3) Box2 {
	if b.IsEmpty() {
		return b
	}
	corners := [4]P2{
		{X: b.Min.X, Y: b.Min.Y},
		{X: b.Max.X, Y: b.Min.Y},
		{X: b.Max.X, Y: b.Max.Y},
		{X: b.Min.X, Y: b.Max.Y},
	}
	out := EmptyBox2()
	for _, c := range corners {
		out = out.Add(m.ApplyP(c))
	}
	return out
}

// EqualF reports whether b and other are equal under the float
// comparator eq.
func (b Box2) EqualF(other Box2, eq func(a, c float64) bool) bool {
	return b.Min.EqualF(other.Min, eq) && b.Max.EqualF(other.Max, eq)
}
