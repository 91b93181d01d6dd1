package path

import "seehuhn.de/go/vg/geom"

// Segment is the decoded, tagged-union view of one path command,
// presented to Fold callbacks and to anyone inspecting a Path.
type Segment struct {
	Cmd          Cmd
	P            geom.P2  // endpoint (Sub/Line/Qcurve/Ccurve/Earc); subpath start for Close
	C1, C2       geom.P2  // control points: Qcurve uses C1 only, Ccurve uses both
	Radii        geom.V2  // Earc only
	Flags        ArcFlags // Earc only
}

// decodeAt reconstructs the Segment at command index i, given the offset
// of its points in p.coords.
func (p Path) decodeAt(i, off int) Segment {
	c := p.cmds[i]
	switch c {
	case CmdSub:
		return Segment{Cmd: c, P: p.coords[off]}
	case CmdLine:
		return Segment{Cmd: c, P: p.coords[off]}
	case CmdQcurve:
		return Segment{Cmd: c, C1: p.coords[off], P: p.coords[off+1]}
	case CmdCcurve:
		return Segment{Cmd: c, C1: p.coords[off], C2: p.coords[off+1], P: p.coords[off+2]}
	case CmdEarc:
		radii, flags := decodeEarc(p.coords[off], p.coords[off+1])
		return Segment{Cmd: c, Radii: radii, Flags: flags, P: p.coords[off+2]}
	case CmdClose:
		return Segment{Cmd: c}
	}
	panic("unreachable")
}

// Segments decodes the whole path into a slice of tagged segments, in
// forward order. Close segments carry the start point of the subpath
// they close in P, for callers that don't want to track it themselves.
func (p Path) Segments() []Segment {
	out := make([]Segment, len(p.cmds))
	off := 0
	var subStart geom.P2
	for i, c := range p.cmds {
		seg := p.decodeAt(i, off)
		if c == CmdSub {
			subStart = seg.P
		} else if c == CmdClose {
			seg.P = subStart
		}
		out[i] = seg
		off += c.numCoords()
	}
	return out
}

// Fold walks p's segments left to right (or right to left, if rev is
// true) calling f(acc, segment) and threading the accumulator through.
func Fold[A any](rev bool, f func(acc A, seg Segment) A, acc A, p Path) A {
	segs := p.Segments()
	if rev {
		for i := len(segs) - 1; i >= 0; i-- {
			acc = f(acc, segs[i])
		}
		return acc
	}
	for _, seg := range segs {
		acc = f(acc, seg)
	}
	return acc
}

// NumSubpaths returns the number of Sub segments in p.
func (p Path) NumSubpaths() int {
	n := 0
	for _, c := range p.cmds {
		if c == CmdSub {
			n++
		}
	}
	return n
}
