package path

import "seehuhn.de/go/vg/geom"

// implicitOrigin returns the point an implicit leading Sub should use
// when a builder op is called on an empty path or immediately after
// Close: the origin is (0,0) when no prior subpath exists, else the
// last subpath's start.
func (p Path) implicitOrigin() geom.P2 {
	if origin, err := p.SubpathOrigin(); err == nil {
		return origin
	}
	return geom.P2{}
}

// ensureOpenSubpath inserts an implicit Sub(origin) if p is empty or
// its last segment is Close, per the builder contract in spec.md §4.2.
func (p Path) ensureOpenSubpath() Path {
	c, _, ok := p.lastCmd()
	if !ok || c == CmdClose {
		return p.appendCmd(CmdSub, p.implicitOrigin())
	}
	return p
}

// Sub begins a new subpath at p. If the path's last segment is itself
// an (empty) Sub, it is replaced rather than stacked on top of, so no
// empty subpath ever persists.
func (p Path) Sub(pt geom.P2) Path {
	if c, _, ok := p.lastCmd(); ok && c == CmdSub {
		return p.replaceLastCmd(CmdSub, pt)
	}
	return p.appendCmd(CmdSub, pt)
}

// SubRel begins a new subpath at v added to the origin of the previous
// subpath (not the current point).
func (p Path) SubRel(v geom.V2) Path {
	origin := p.implicitOrigin()
	return p.Sub(origin.Add(v))
}

// Line appends a straight line to pt.
func (p Path) Line(pt geom.P2) Path {
	p = p.ensureOpenSubpath()
	return p.appendCmd(CmdLine, pt)
}

// LineRel appends a straight line to the current point plus v.
func (p Path) LineRel(v geom.V2) Path {
	p = p.ensureOpenSubpath()
	cur, _ := p.CurrentPoint()
	return p.appendCmd(CmdLine, cur.Add(v))
}

// Qcurve appends a quadratic Bézier with control point c and endpoint pt.
func (p Path) Qcurve(c, pt geom.P2) Path {
	p = p.ensureOpenSubpath()
	return p.appendCmd(CmdQcurve, c, pt)
}

// QcurveRel is Qcurve with both points relative to the current point.
func (p Path) QcurveRel(c, pt geom.V2) Path {
	p = p.ensureOpenSubpath()
	cur, _ := p.CurrentPoint()
	return p.appendCmd(CmdQcurve, cur.Add(c), cur.Add(pt))
}

// Ccurve appends a cubic Bézier with controls c1, c2 and endpoint pt.
func (p Path) Ccurve(c1, c2, pt geom.P2) Path {
	p = p.ensureOpenSubpath()
	return p.appendCmd(CmdCcurve, c1, c2, pt)
}

// CcurveRel is Ccurve with all points relative to the current point.
func (p Path) CcurveRel(c1, c2, pt geom.V2) Path {
	p = p.ensureOpenSubpath()
	cur, _ := p.CurrentPoint()
	return p.appendCmd(CmdCcurve, cur.Add(c1), cur.Add(c2), cur.Add(pt))
}

// ArcFlags selects which of the four possible elliptic arcs joining two
// points is meant: Large selects the arc spanning more than 180°, CW
// selects the clockwise arc.
type ArcFlags struct {
	Large bool
	CW    bool
	Angle float64 // x-axis rotation of the ellipse, radians
}

// encodeEarc packs radii and the (angle, large, cw) triple into the two
// extra coordinate slots an Earc command consumes beyond its endpoint.
func encodeEarc(radii geom.V2, flags ArcFlags) (radiiPt, angleFlags geom.P2) {
	bits := 0.0
	if flags.Large {
		bits += 1
	}
	if flags.CW {
		bits += 2
	}
	return geom.Pt(radii.X, radii.Y), geom.Pt(flags.Angle, bits)
}

func decodeEarc(radiiPt, angleFlags geom.P2) (radii geom.V2, flags ArcFlags) {
	bits := int(angleFlags.Y)
	return geom.Vec(radiiPt.X, radiiPt.Y), ArcFlags{
		Large: bits&1 != 0,
		CW:    bits&2 != 0,
		Angle: angleFlags.X,
	}
}

// Earc appends an elliptic arc to pt with the given radii and flags.
func (p Path) Earc(radii geom.V2, flags ArcFlags, pt geom.P2) Path {
	p = p.ensureOpenSubpath()
	radiiPt, angleFlags := encodeEarc(radii, flags)
	return p.appendCmd(CmdEarc, radiiPt, angleFlags, pt)
}

// EarcRel is Earc with the endpoint relative to the current point.
func (p Path) EarcRel(radii geom.V2, flags ArcFlags, pt geom.V2) Path {
	p = p.ensureOpenSubpath()
	cur, _ := p.CurrentPoint()
	radiiPt, angleFlags := encodeEarc(radii, flags)
	return p.appendCmd(CmdEarc, radiiPt, angleFlags, cur.Add(pt))
}

// Close closes the current subpath with a straight line back to its
// start. Closing an empty path, or a subpath that has no segments yet,
// is a no-op: there is nothing to close, and the invariant that a
// Close is always preceded by a non-Sub segment of the same subpath
// forbids ever materializing Close right after Sub.
func (p Path) Close() Path {
	c, _, ok := p.lastCmd()
	if !ok || c == CmdSub || c == CmdClose {
		return p
	}
	return p.appendCmd(CmdClose)
}
