package path

import "seehuhn.de/go/vg/geom"

// Equal reports whether p and q consist of exactly the same commands
// and coordinates.
func (p Path) Equal(q Path) bool {
	return p.EqualF(q, func(a, b geom.P2) bool { return a.Equal(b) })
}

// EqualF reports whether p and q consist of the same commands, with
// coordinates compared pairwise using eq, and elliptic-arc flags
// compared structurally (large/cw exactly, angle and radii via eq's
// underlying tolerance through their encoded coordinate form).
func (p Path) EqualF(q Path, eq func(a, b geom.P2) bool) bool {
	if len(p.cmds) != len(q.cmds) || len(p.coords) != len(q.coords) {
		return false
	}
	off := 0
	for i, c := range p.cmds {
		if c != q.cmds[i] {
			return false
		}
		// an Earc's second slot holds {angle, flag bits}; the bits must match exactly
		if c == CmdEarc && p.coords[off+1].Y != q.coords[off+1].Y {
			return false
		}
		off += c.numCoords()
	}
	for i := range p.coords {
		if !eq(p.coords[i], q.coords[i]) {
			return false
		}
	}
	return true
}

// Compare defines a total order over paths, comparing first by command
// stream length, then by the commands themselves, then by coordinates
// in stream order. It's mainly useful for putting paths in a
// deterministic order (e.g. in tests), not for anything geometric.
func Compare(p, q Path) int {
	return CompareF(p, q, func(a, b geom.P2) bool { return a.Equal(b) })
}

// CompareF is Compare, with coordinate equality (the break between
// "these are the same point" and "order them by position") decided by
// eq rather than exact equality. Where eq(a, b) holds, the two
// coordinates contribute no ordering information; otherwise they're
// ordered by position, same as Compare.
func CompareF(p, q Path, eq func(a, b geom.P2) bool) int {
	if d := len(p.cmds) - len(q.cmds); d != 0 {
		return sign(d)
	}
	for i := range p.cmds {
		if d := int(p.cmds[i]) - int(q.cmds[i]); d != 0 {
			return sign(d)
		}
	}
	for i := range p.coords {
		if c := comparePointF(p.coords[i], q.coords[i], eq); c != 0 {
			return c
		}
	}
	return 0
}

func comparePointF(a, b geom.P2, eq func(p, q geom.P2) bool) int {
	if eq(a, b) {
		return 0
	}
	return comparePoint(a, b)
}

func comparePoint(a, b geom.P2) int {
	if a.X != b.X {
		return sign3(a.X - b.X)
	}
	return sign3(a.Y - b.Y)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

func sign3(x float64) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
