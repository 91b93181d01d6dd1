package path

import (
	"math"

	"seehuhn.de/go/vg/geom"
)

// CubicEarc approximates the elliptic arc described by (center, m, t0,
// t1) with one or more cubic Béziers, recursively halving the arc
// until each piece is within tol of a single cubic approximation. It
// returns the control points and endpoint of each piece in order; the
// arc's start point (PointOnArc(center, m, t0)) is not included, the
// same convention Ccurve uses for its start point.
func CubicEarc(center geom.P2, m geom.M2, t0, t1, tol float64) []Segment {
	return cubicEarcRec(center, m, t0, t1, tol, 0)
}

func cubicEarcRec(center geom.P2, m geom.M2, t0, t1, tol float64, depth int) []Segment {
	if depth >= maxFlattenDepth || cubicArcFlat(m, t0, t1, tol) {
		return []Segment{cubicArcPiece(center, m, t0, t1)}
	}
	tm := (t0 + t1) / 2
	left := cubicEarcRec(center, m, t0, tm, tol, depth+1)
	right := cubicEarcRec(center, m, tm, t1, tol, depth+1)
	return append(left, right...)
}

// cubicArcPiece builds the single-cubic approximation of the arc from
// t0 to t1 using the classic tangent-length construction: control
// points lie on the tangent lines at each endpoint, at distance
// l = 4/3·tan(Δt/4) from the endpoint (Δt in radians, unit circle),
// scaled into the ellipse's basis.
func cubicArcPiece(center geom.P2, m geom.M2, t0, t1 float64) Segment {
	dt := t1 - t0
	l := 4.0 / 3.0 * math.Tan(dt/4)

	s0, c0 := math.Sincos(t0)
	s1, c1 := math.Sincos(t1)

	p0u := geom.V2{X: c0, Y: s0}
	p1u := geom.V2{X: c1, Y: s1}
	tan0u := geom.V2{X: -s0, Y: c0}
	tan1u := geom.V2{X: -s1, Y: c1}

	c1u := p0u.Add(tan0u.Scale(l))
	c2u := p1u.Sub(tan1u.Scale(l))

	return Segment{
		Cmd: CmdCcurve,
		C1:  center.Add(m.Apply(c1u)),
		C2:  center.Add(m.Apply(c2u)),
		P:   center.Add(m.Apply(p1u)),
	}
}

// cubicArcFlat reports whether a single cubic approximation of the arc
// from t0 to t1 stays within tol, using the closed-form bound on a
// single cubic's deviation from a circular arc of angular span dt:
// (2·sin⁶(dt/4)) / (27·cos²(dt/4)) ≤ tol/max(rx,ry).
func cubicArcFlat(m geom.M2, t0, t1, tol float64) bool {
	rx := geom.V2{X: m.A, Y: m.B}.Length()
	ry := geom.V2{X: m.C, Y: m.D}.Length()
	r := math.Max(rx, ry)
	if r == 0 {
		return true
	}
	tolp := tol / r

	dt := math.Abs(t1 - t0)
	s := math.Sin(dt / 4)
	c := math.Cos(dt / 4)
	if c == 0 {
		return false
	}
	bound := (2 * s * s * s * s * s * s) / (27 * c * c)
	return bound <= tolp
}
