// seehuhn.de/go/vg - a declarative 2D vector graphics library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package path implements an immutable path value built from subpaths
// of line, quadratic/cubic Bézier, and elliptic-arc segments, together
// with the numeric routines shared by every renderer: elliptic-arc
// parameterization, affine transform, adaptive flattening, arclength
// sampling, cubic approximation of arcs, and bounding-box computation.
package path

import (
	"errors"
	"slices"

	"seehuhn.de/go/vg/geom"
)

// ErrEmptyPath is returned by queries (CurrentPoint, SubpathOrigin)
// that require a non-empty path.
var ErrEmptyPath = errors.New("path: operation on empty path")

// Cmd identifies the kind of one path segment. The zero value, CmdSub,
// is not a meaningful "no command" sentinel — every non-empty path's
// first command is a CmdSub.
type Cmd byte

const (
	CmdSub Cmd = iota
	CmdLine
	CmdQcurve
	CmdCcurve
	CmdEarc
	CmdClose
)

// numCoords is how many geom.P2 entries each command consumes from the
// flat coordinate stream.
func (c Cmd) numCoords() int {
	switch c {
	case CmdSub, CmdLine:
		return 1
	case CmdQcurve:
		return 2
	case CmdCcurve:
		return 3
	case CmdEarc:
		return 3 // radii, {angle, flags}, endpoint
	case CmdClose:
		return 0
	default:
		panic("path: invalid command")
	}
}

// Path is an immutable, finite ordered sequence of segments. The zero
// value is Empty, the unique path with no segments.
//
// Segments are stored as a flat command-byte stream plus a flat
// coordinate stream (mirroring the flat path.Data encoding consumed by
// seehuhn.de/go/geom-based renderers) rather than as a slice of
// tagged-union structs: this keeps Path cheap to extend and cheap to
// walk without per-segment allocation. Builder methods never mutate a
// receiver's backing arrays in place — see appendCmd/replaceLastCmd —
// so two paths built by branching off a common prefix never alias
// each other's segments.
//
// subOrigin/hasSub cache the start point of the most recently begun
// subpath, so CurrentPoint and SubpathOrigin are O(1) instead of
// rescanning the command stream on every call.
type Path struct {
	cmds      []Cmd
	coords    []geom.P2
	subOrigin geom.P2
	hasSub    bool
}

// Empty is the path with zero segments.
var Empty = Path{}

// IsEmpty reports whether p has no segments.
func (p Path) IsEmpty() bool {
	return len(p.cmds) == 0
}

// appendCmd returns a copy of p with one more command and its
// associated points appended. slices.Clip forces any future append
// (from this or a sibling branch) to allocate a fresh backing array
// rather than silently overwrite these new elements, which is what
// makes concurrent, divergent extensions of the same prefix Path safe.
func (p Path) appendCmd(c Cmd, pts ...geom.P2) Path {
	cmds := append(slices.Clip(p.cmds), c)
	coords := append(slices.Clip(p.coords), pts...)
	out := Path{cmds: cmds, coords: coords, subOrigin: p.subOrigin, hasSub: p.hasSub}
	if c == CmdSub {
		out.subOrigin = pts[0]
		out.hasSub = true
	}
	return out
}

// lastCoordStart returns the offset into p.coords where the last
// command's points begin.
func (p Path) lastCoordStart() int {
	n := len(p.cmds)
	return len(p.coords) - p.cmds[n-1].numCoords()
}

// replaceLastCmd returns a copy of p with its last command and points
// replaced by c/pts. Used when a builder op would otherwise create an
// empty trailing subpath (invariant 2 in spec.md §3.2): the new Sub
// replaces the old one instead of stacking on top of it.
func (p Path) replaceLastCmd(c Cmd, pts ...geom.P2) Path {
	start := p.lastCoordStart()
	cmds := append(slices.Clip(p.cmds[:len(p.cmds)-1]), c)
	coords := append(slices.Clip(p.coords[:start]), pts...)

	// Recompute subOrigin: it can only have come from the segment we
	// are replacing (since that was the path's last segment), so after
	// replacement it comes from the new segment if it is a Sub, or
	// else from whatever subpath was open before that Sub existed —
	// which, for a lone leading Sub being replaced, is "no subpath".
	out := Path{cmds: cmds, coords: coords}
	if c == CmdSub {
		out.subOrigin = pts[0]
		out.hasSub = true
	}
	return out
}

// lastCmd returns the path's last command and the offset of its points
// in p.coords, or ok=false if p is empty.
func (p Path) lastCmd() (c Cmd, coordOff int, ok bool) {
	n := len(p.cmds)
	if n == 0 {
		return 0, 0, false
	}
	return p.cmds[n-1], p.lastCoordStart(), true
}

// CurrentPoint returns the endpoint of the path's most recent segment:
// for Close, this is the start of the subpath that was closed.
func (p Path) CurrentPoint() (geom.P2, error) {
	c, off, ok := p.lastCmd()
	if !ok {
		return geom.P2{}, ErrEmptyPath
	}
	switch c {
	case CmdSub, CmdLine, CmdQcurve, CmdCcurve:
		return p.coords[off+c.numCoords()-1], nil
	case CmdEarc:
		return p.coords[off+2], nil
	case CmdClose:
		return p.SubpathOrigin()
	}
	panic("unreachable")
}

// SubpathOrigin returns the start point of the most recently begun
// subpath.
func (p Path) SubpathOrigin() (geom.P2, error) {
	if !p.hasSub {
		return geom.P2{}, ErrEmptyPath
	}
	return p.subOrigin, nil
}
