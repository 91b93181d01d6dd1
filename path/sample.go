package path

import "seehuhn.de/go/vg/geom"

// Sample returns points spaced approximately step apart along p's
// flattened outline (tolerance tol), plus every subpath's start point.
// Distance carries over from one segment to the next within a subpath,
// but resets to zero at each Sub, so every subpath's sampling starts
// fresh at its own origin.
func Sample(p Path, tol, step float64) []geom.P2 {
	var out []geom.P2
	var cur, subStart geom.P2
	var residual float64

	emit := func(p0, p1 geom.P2) {
		d := p1.Sub(p0)
		length := d.Length()
		if length == 0 {
			return
		}
		// residual is the distance travelled since the last emitted point.
		dist := -residual
		for dist+step <= length {
			dist += step
			t := dist / length
			out = append(out, geom.Pt(p0.X+d.X*t, p0.Y+d.Y*t))
		}
		residual = length - dist
	}

	for _, seg := range p.Segments() {
		switch seg.Cmd {
		case CmdSub:
			out = append(out, seg.P)
			cur, subStart = seg.P, seg.P
			residual = 0
		case CmdLine:
			emit(cur, seg.P)
			cur = seg.P
		case CmdQcurve, CmdCcurve, CmdEarc:
			for _, l := range segmentLines(cur, seg, tol) {
				emit(l[0], l[1])
			}
			cur = seg.P
		case CmdClose:
			emit(cur, subStart)
			cur = subStart
		}
	}
	return out
}

// segmentLines flattens a single curved segment, given the point
// preceding it, into chord lines at the requested tolerance.
func segmentLines(cur geom.P2, seg Segment, tol float64) [][2]geom.P2 {
	switch seg.Cmd {
	case CmdQcurve:
		return appendQuadLines(nil, cur, seg.C1, seg.P, tol, 0)
	case CmdCcurve:
		return appendCubicLines(nil, cur, seg.C1, seg.C2, seg.P, tol, 0)
	case CmdEarc:
		center, m, t0, t1, ok := EarcParams(cur, seg.P, seg.Flags.Large, seg.Flags.CW, seg.Flags.Angle, seg.Radii.X, seg.Radii.Y)
		if !ok {
			return [][2]geom.P2{{cur, seg.P}}
		}
		return appendArcLines(nil, center, m, t0, t1, tol, 0)
	}
	return nil
}
