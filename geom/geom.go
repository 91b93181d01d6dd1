// seehuhn.de/go/vg - a declarative 2D vector graphics library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package geom provides the small set of 2D geometry and color value
// types that the vg core builds on: points, vectors, matrices, boxes,
// colors and gradient stops, and an opaque raster sampler. These are
// deliberately minimal collaborator values, not a general-purpose
// graphics math library.
package geom

import "math"

// P2 is a point in 2D space.
type P2 struct {
	X, Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) P2 {
	return P2{X: x, Y: y}
}

// Add returns p translated by v.
func (p P2) Add(v V2) P2 {
	return P2{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p P2) Sub(q P2) V2 {
	return V2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Equal reports whether p and q are exactly equal.
func (p P2) Equal(q P2) bool {
	return p.X == q.X && p.Y == q.Y
}

// EqualF reports whether p and q are equal under the float comparator eq.
func (p P2) EqualF(q P2, eq func(a, b float64) bool) bool {
	return eq(p.X, q.X) && eq(p.Y, q.Y)
}

// V2 is a displacement vector in 2D space.
type V2 struct {
	X, Y float64
}

// Vec returns the vector (x, y).
func Vec(x, y float64) V2 {
	return V2{X: x, Y: y}
}

// Add returns v+w.
func (v V2) Add(w V2) V2 {
	return V2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v-w.
func (v V2) Sub(w V2) V2 {
	return V2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns v scaled by s.
func (v V2) Scale(s float64) V2 {
	return V2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and w.
func (v V2) Dot(w V2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Length returns the Euclidean norm of v.
func (v V2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Norm returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v V2) Norm() V2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Size2 is a width/height pair.
type Size2 struct {
	W, H float64
}
