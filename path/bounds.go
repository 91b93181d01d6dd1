package path

import (
	"math"

	"seehuhn.de/go/vg/geom"
)

// Bounds returns the axis-aligned bounding box of p. With ctrl=true,
// all Bézier control points are included unconditionally, which is
// cheap but conservative (the box may be larger than necessary);
// elliptic arcs contribute only their endpoints. With ctrl=false,
// cubic extrema are computed instead of including control points,
// quadratics contribute only their endpoints, and elliptic arcs their
// endpoints plus the arc's angular midpoint. The empty path has the
// empty box.
func (p Path) Bounds(ctrl bool) geom.Box2 {
	box := geom.EmptyBox2()
	var cur geom.P2
	for _, seg := range p.Segments() {
		switch seg.Cmd {
		case CmdSub, CmdLine:
			box = box.Add(seg.P)
			cur = seg.P
		case CmdQcurve:
			if ctrl {
				box = box.Add(seg.C1)
			}
			// Tight quadratic bounds (full extremum tracking) are left
			// as future work; endpoint inclusion is the baseline the
			// spec explicitly allows (see DESIGN.md open questions).
			box = box.Add(seg.P)
			cur = seg.P
		case CmdCcurve:
			if ctrl {
				box = box.Add(seg.C1).Add(seg.C2).Add(seg.P)
			} else {
				box = cubicExtremaBox(box, cur, seg.C1, seg.C2, seg.P)
			}
			cur = seg.P
		case CmdEarc:
			box = earcBox(box, cur, seg, ctrl)
			cur = seg.P
		case CmdClose:
			// contributes no new point beyond the subpath start, which
			// was already included when the Sub was processed.
			cur = seg.P
		}
	}
	return box
}

func cubicExtremaBox(box geom.Box2, p0, p1, p2, p3 geom.P2) geom.Box2 {
	box = box.Add(p0).Add(p3)
	for _, t := range cubicExtremaT(p0.X, p1.X, p2.X, p3.X) {
		box = box.Add(deCasteljau3(p0, p1, p2, p3, t))
	}
	for _, t := range cubicExtremaT(p0.Y, p1.Y, p2.Y, p3.Y) {
		box = box.Add(deCasteljau3(p0, p1, p2, p3, t))
	}
	return box
}

// cubicExtremaT returns the parameter values in (0,1) at which the
// cubic Bézier with the given scalar control values has a derivative
// zero, i.e. candidate extrema, following Kallay's stable formulation
// of the derivative's quadratic coefficients.
func cubicExtremaT(p0, p1, p2, p3 float64) []float64 {
	a := p3 - 3*p2 + 3*p1 - p0
	b := p2 - 2*p1 + p0
	c := p1 - p0

	var roots []float64
	const tol = 1e-12
	if math.Abs(a) < tol {
		if math.Abs(b) < tol {
			return nil
		}
		t := -c / (2 * b)
		if t > 0 && t < 1 {
			roots = append(roots, t)
		}
		return roots
	}

	disc := b*b - a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	for _, t := range []float64{(-b - sq) / a, (-b + sq) / a} {
		if t > 0 && t < 1 {
			roots = append(roots, t)
		}
	}
	return roots
}

func deCasteljau3(p0, p1, p2, p3 geom.P2, t float64) geom.P2 {
	omt := 1 - t
	lerp := func(a, b geom.P2) geom.P2 {
		return geom.Pt(omt*a.X+t*b.X, omt*a.Y+t*b.Y)
	}
	ab := lerp(p0, p1)
	bc := lerp(p1, p2)
	cd := lerp(p2, p3)
	abc := lerp(ab, bc)
	bcd := lerp(bc, cd)
	return lerp(abc, bcd)
}

func earcBox(box geom.Box2, p0 geom.P2, seg Segment, ctrl bool) geom.Box2 {
	box = box.Add(p0).Add(seg.P)
	if ctrl {
		return box
	}
	center, m, t0, t1, ok := EarcParams(p0, seg.P, seg.Flags.Large, seg.Flags.CW, seg.Flags.Angle, seg.Radii.X, seg.Radii.Y)
	if !ok {
		return box
	}
	tm := (t0 + t1) / 2
	return box.Add(PointOnArc(center, m, tm))
}
