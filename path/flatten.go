package path

import (
	"math"

	"seehuhn.de/go/vg/geom"
)

// DefaultTolerance is a flattening tolerance for callers of Sample and
// LinearFold that don't otherwise need a specific value; both functions
// take their tolerance as an explicit argument.
const DefaultTolerance = 1e-3

const maxFlattenDepth = 24

// LinearFold walks p's segments left to right (or right to left if rev
// is true), reducing every curved segment to a sequence of straight
// lines that stay within tol of the true curve, and calls f(acc, p0,
// p1) once per resulting line. Sub contributes no call (there is
// nothing to draw yet); Close calls f with the line back to the
// subpath's start, the same as an explicit Line would.
func LinearFold[A any](rev bool, f func(acc A, p0, p1 geom.P2) A, acc A, p Path, tol float64) A {
	lines := flattenToLines(p, tol)
	if rev {
		for i := len(lines) - 1; i >= 0; i-- {
			acc = f(acc, lines[i][1], lines[i][0])
		}
		return acc
	}
	for _, l := range lines {
		acc = f(acc, l[0], l[1])
	}
	return acc
}

func flattenToLines(p Path, tol float64) [][2]geom.P2 {
	var lines [][2]geom.P2
	var cur geom.P2
	var subStart geom.P2
	for _, seg := range p.Segments() {
		switch seg.Cmd {
		case CmdSub:
			cur = seg.P
			subStart = seg.P
		case CmdLine:
			lines = append(lines, [2]geom.P2{cur, seg.P})
			cur = seg.P
		case CmdQcurve:
			lines = appendQuadLines(lines, cur, seg.C1, seg.P, tol, 0)
			cur = seg.P
		case CmdCcurve:
			lines = appendCubicLines(lines, cur, seg.C1, seg.C2, seg.P, tol, 0)
			cur = seg.P
		case CmdEarc:
			center, m, t0, t1, ok := EarcParams(cur, seg.P, seg.Flags.Large, seg.Flags.CW, seg.Flags.Angle, seg.Radii.X, seg.Radii.Y)
			if !ok {
				lines = append(lines, [2]geom.P2{cur, seg.P})
			} else {
				lines = appendArcLines(lines, center, m, t0, t1, tol, 0)
			}
			cur = seg.P
		case CmdClose:
			lines = append(lines, [2]geom.P2{cur, subStart})
			cur = subStart
		}
	}
	return lines
}

// quadFlat reports whether a quadratic Bézier p0,p1,p2 is within tol of
// its chord, using the standard squared-distance bound for the control
// point's deviation from the midpoint of the chord.
func quadFlat(p0, p1, p2 geom.P2, tol float64) bool {
	ux := 2*p1.X - p0.X - p2.X
	uy := 2*p1.Y - p0.Y - p2.Y
	return ux*ux+uy*uy <= 16*tol*tol
}

func appendQuadLines(lines [][2]geom.P2, p0, p1, p2 geom.P2, tol float64, depth int) [][2]geom.P2 {
	if depth >= maxFlattenDepth || quadFlat(p0, p1, p2, tol) {
		return append(lines, [2]geom.P2{p0, p2})
	}
	p01 := mid(p0, p1)
	p12 := mid(p1, p2)
	p012 := mid(p01, p12)
	lines = appendQuadLines(lines, p0, p01, p012, tol, depth+1)
	return appendQuadLines(lines, p012, p12, p2, tol, depth+1)
}

// cubicFlat reports whether a cubic Bézier is flat to within tol, using
// the Fischer/Willocks bound: the max of the two control points'
// deviation from the lines through the nearer endpoint parallel to the
// chord.
func cubicFlat(p0, p1, p2, p3 geom.P2, tol float64) bool {
	ux := 3*p1.X - 2*p0.X - p3.X
	uy := 3*p1.Y - 2*p0.Y - p3.Y
	vx := 3*p2.X - p0.X - 2*p3.X
	vy := 3*p2.Y - p0.Y - 2*p3.Y
	maxX := math.Max(ux*ux, vx*vx)
	maxY := math.Max(uy*uy, vy*vy)
	return maxX+maxY <= 16*tol*tol
}

func appendCubicLines(lines [][2]geom.P2, p0, p1, p2, p3 geom.P2, tol float64, depth int) [][2]geom.P2 {
	if depth >= maxFlattenDepth || cubicFlat(p0, p1, p2, p3, tol) {
		return append(lines, [2]geom.P2{p0, p3})
	}
	p01 := mid(p0, p1)
	p12 := mid(p1, p2)
	p23 := mid(p2, p3)
	p012 := mid(p01, p12)
	p123 := mid(p12, p23)
	p0123 := mid(p012, p123)
	lines = appendCubicLines(lines, p0, p01, p012, p0123, tol, depth+1)
	return appendCubicLines(lines, p0123, p123, p23, p3, tol, depth+1)
}

// arcFlat reports whether the arc of (center, m) from t0 to t1 is
// within tol of its chord, by checking the perpendicular distance from
// the arc's midpoint to the chord connecting its endpoints.
func arcFlat(center geom.P2, m geom.M2, t0, t1, tol float64) bool {
	p0 := PointOnArc(center, m, t0)
	p1 := PointOnArc(center, m, t1)
	tm := (t0 + t1) / 2
	pm := PointOnArc(center, m, tm)

	chord := p1.Sub(p0)
	chordLen := chord.Length()
	if chordLen == 0 {
		return pm.Sub(p0).Length() <= tol
	}
	n := geom.Vec(-chord.Y, chord.X).Scale(1 / chordLen)
	dist := pm.Sub(p0).Dot(n)
	return dist*dist <= tol*tol
}

func appendArcLines(lines [][2]geom.P2, center geom.P2, m geom.M2, t0, t1, tol float64, depth int) [][2]geom.P2 {
	if depth >= maxFlattenDepth || arcFlat(center, m, t0, t1, tol) {
		p0 := PointOnArc(center, m, t0)
		p1 := PointOnArc(center, m, t1)
		return append(lines, [2]geom.P2{p0, p1})
	}
	tm := (t0 + t1) / 2
	lines = appendArcLines(lines, center, m, t0, tm, tol, depth+1)
	return appendArcLines(lines, center, m, tm, t1, tol, depth+1)
}

func mid(a, b geom.P2) geom.P2 {
	return geom.Pt((a.X+b.X)/2, (a.Y+b.Y)/2)
}
