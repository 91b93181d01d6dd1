package path

import (
	"math"

	"seehuhn.de/go/vg/geom"
)

// eps is the tolerance used throughout the geometry routines for
// zero-comparisons, matching the spec's 1e-9.
const eps = 1e-9

func roundZero(x float64) float64 {
	if math.Abs(x) < eps {
		return 0
	}
	return x
}

// EarcParams computes the center, unit-circle basis matrix, and
// start/end angles of an elliptic arc from p0 to p1 with the given
// flags, rotation, and radii.
//
// ok is false when the arc is degenerate: rx or ry is (numerically)
// zero, the endpoints coincide, or the endpoints are too far apart to
// be joined by an ellipse with the given radii. When ok is true, the
// arc's points are exactly center + m.Apply(cos t, sin t) for t ranging
// from t0 to t1.
func EarcParams(p0, p1 geom.P2, large, cw bool, angle, rx, ry float64) (center geom.P2, m geom.M2, t0, t1 float64, ok bool) {
	if math.Abs(rx) < eps || math.Abs(ry) < eps {
		return geom.P2{}, geom.M2{}, 0, 0, false
	}
	if p0.EqualF(p1, func(a, b float64) bool { return math.Abs(a-b) < eps }) {
		return geom.P2{}, geom.M2{}, 0, 0, false
	}
	rx, ry = math.Abs(rx), math.Abs(ry)

	sinA, cosA := math.Sincos(angle)

	// Move to a frame centered on the chord midpoint, rotated by -angle,
	// following the standard elliptic-arc-endpoint parameterization.
	dx2 := (p0.X - p1.X) / 2
	dy2 := (p0.Y - p1.Y) / 2
	x1p := cosA*dx2 + sinA*dy2
	y1p := -sinA*dx2 + cosA*dy2

	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	if den == 0 {
		return geom.P2{}, geom.M2{}, 0, 0, false
	}
	ratio := num / den
	if ratio < 0 {
		// 1/‖p0'p1'‖² − ¼ < 0 equivalent: the endpoints are too far
		// apart for an ellipse with these radii to reach both.
		return geom.P2{}, geom.M2{}, 0, 0, false
	}

	d := math.Sqrt(ratio)
	sign := 1.0
	if large != cw {
		sign = -1
	}
	co := sign * d
	cxp := co * rx * y1p / ry
	cyp := -co * ry * x1p / rx

	mid := geom.Pt((p0.X+p1.X)/2, (p0.Y+p1.Y)/2)
	center = mid.Add(geom.V2{X: cosA*cxp - sinA*cyp, Y: sinA*cxp + cosA*cyp})

	// Basis matrix: columns are the ellipse's (possibly rotated) axis
	// vectors, so that m.Apply(cos t, sin t) is the point on the
	// ellipse at angle t relative to center.
	ax := geom.V2{X: rx * cosA, Y: rx * sinA}
	ay := geom.V2{X: -ry * sinA, Y: ry * cosA}
	m = geom.M2{A: ax.X, B: ax.Y, C: ay.X, D: ay.Y}

	u1 := geom.V2{X: (x1p - cxp) / rx, Y: (y1p - cyp) / ry}
	u2 := geom.V2{X: (-x1p - cxp) / rx, Y: (-y1p - cyp) / ry}

	t0 = vecAngle(geom.V2{X: 1, Y: 0}, u1)
	dt := vecAngle(u1, u2)
	if !cw && dt < 0 {
		dt += 2 * math.Pi
	}
	if cw && dt > 0 {
		dt -= 2 * math.Pi
	}
	t1 = t0 + dt

	return center, m, t0, t1, true
}

// vecAngle returns the signed angle from u to v, in (-π, π].
func vecAngle(u, v geom.V2) float64 {
	cross := u.X*v.Y - u.Y*v.X
	dot := u.Dot(v)
	return math.Atan2(roundZero(cross), roundZero(dot))
}

// PointOnArc evaluates the arc described by (center, m, t0, t1) at
// parameter t, mainly useful for tests and for flattening.
func PointOnArc(center geom.P2, m geom.M2, t float64) geom.P2 {
	s, c := math.Sincos(t)
	return center.Add(m.Apply(geom.V2{X: c, Y: s}))
}
