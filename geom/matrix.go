package geom

import "math"

// M2 is a 2×2 linear matrix, applied as
//
//	[ A  C ]   [ X ]
//	[ B  D ] * [ Y ]
type M2 struct {
	A, B, C, D float64
}

// Identity2 is the 2×2 identity matrix.
var Identity2 = M2{A: 1, D: 1}

// Apply returns m applied to the vector v.
func (m M2) Apply(v V2) V2 {
	return V2{
		X: m.A*v.X + m.C*v.Y,
		Y: m.B*v.X + m.D*v.Y,
	}
}

// Mul returns the matrix product m*n (n applied first).
func (m M2) Mul(n M2) M2 {
	return M2{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
	}
}

// M3 is an affine transform of the plane, stored as a 2×3 matrix
//
//	[ A  C  E ]   [ X ]
//	[ B  D  F ] * [ Y ]
//	               [ 1 ]
//
// following the six-float layout used by seehuhn.de/go/geom's
// matrix.Matrix.
type M3 struct {
	A, B, C, D, E, F float64
}

// Identity is the affine identity transform.
var Identity = M3{A: 1, D: 1}

// Linear returns the 2×2 linear part of m, discarding the translation.
func (m M3) Linear() M2 {
	return M2{A: m.A, B: m.B, C: m.C, D: m.D}
}

// ApplyP returns p transformed by m.
func (m M3) ApplyP(p P2) P2 {
	return P2{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// ApplyV returns v transformed by the linear part of m (no translation).
func (m M3) ApplyV(v V2) V2 {
	return V2{
		X: m.A*v.X + m.C*v.Y,
		Y: m.B*v.X + m.D*v.Y,
	}
}

// Mul returns the affine composition of m and n, i.e. the transform that
// applies n first and then m.
func (m M3) Mul(n M3) M3 {
	return M3{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Move returns a translation transform by v.
func Move(v V2) M3 {
	return M3{A: 1, D: 1, E: v.X, F: v.Y}
}

// Rot returns a rotation transform by angle radians around the origin.
func Rot(angle float64) M3 {
	s, c := math.Sincos(angle)
	return M3{A: c, B: s, C: -s, D: c}
}

// Scale returns an anisotropic scaling transform.
func Scale(s V2) M3 {
	return M3{A: s.X, D: s.Y}
}

// Det returns the determinant of the linear part of m.
func (m M3) Det() float64 {
	return m.A*m.D - m.B*m.C
}
