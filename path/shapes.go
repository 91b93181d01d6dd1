package path

import "seehuhn.de/go/vg/geom"

// Circle returns a closed path tracing the circle of radius r centered
// at c, as two half-circle elliptic arcs (one arc alone can't
// represent a full circle, since an arc's endpoints must differ).
func Circle(c geom.P2, r float64) Path {
	return Ellipse(c, geom.Vec(r, r))
}

// Ellipse returns a closed path tracing the axis-aligned ellipse with
// the given radii, centered at c, built from two elliptic arcs meeting
// at the rightmost and leftmost points.
func Ellipse(c geom.P2, radii geom.V2) Path {
	right := c.Add(geom.Vec(radii.X, 0))
	left := c.Add(geom.Vec(-radii.X, 0))
	return Empty.
		Sub(right).
		Earc(radii, ArcFlags{Large: false, CW: true}, left).
		Earc(radii, ArcFlags{Large: false, CW: true}, right).
		Close()
}

// Rect returns a closed rectangular path with corners at p and q (in
// either relative order), wound counterclockwise starting at the corner
// with the smaller x and y coordinates.
func Rect(p, q geom.P2) Path {
	a := geom.Pt(min(p.X, q.X), min(p.Y, q.Y))
	b := geom.Pt(max(p.X, q.X), max(p.Y, q.Y))
	return Empty.
		Sub(a).
		Line(geom.Pt(b.X, a.Y)).
		Line(b).
		Line(geom.Pt(a.X, b.Y)).
		Close()
}

// RRect returns a closed rounded-rectangle path with corners at p and
// q, and corner radius r (clamped to half the shorter side).
func RRect(p, q geom.P2, r float64) Path {
	a := geom.Pt(min(p.X, q.X), min(p.Y, q.Y))
	b := geom.Pt(max(p.X, q.X), max(p.Y, q.Y))

	if maxR := min(b.X-a.X, b.Y-a.Y) / 2; r > maxR {
		r = maxR
	}
	if r <= 0 {
		return Rect(p, q)
	}

	radii := geom.Vec(r, r)
	flags := ArcFlags{Large: false, CW: false}

	return Empty.
		Sub(geom.Pt(a.X+r, a.Y)).
		Line(geom.Pt(b.X-r, a.Y)).
		Earc(radii, flags, geom.Pt(b.X, a.Y+r)).
		Line(geom.Pt(b.X, b.Y-r)).
		Earc(radii, flags, geom.Pt(b.X-r, b.Y)).
		Line(geom.Pt(a.X+r, b.Y)).
		Earc(radii, flags, geom.Pt(a.X, b.Y-r)).
		Line(geom.Pt(a.X, a.Y+r)).
		Earc(radii, flags, geom.Pt(a.X+r, a.Y)).
		Close()
}
