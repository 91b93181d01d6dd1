package path

import (
	"math"

	"seehuhn.de/go/vg/geom"
)

// Transform returns p with m applied to every point. Line/Sub/Qcurve/
// Ccurve endpoints and control points transform directly; Earc segments
// need their radii and rotation angle recomputed, since an affine
// transform of an ellipse is again an ellipse only up to a change of
// axis lengths and orientation (and, under a non-uniform scale applied
// to a rotated ellipse, only approximately so — see DESIGN.md).
func (p Path) Transform(m geom.M3) Path {
	out := Empty
	for _, seg := range p.Segments() {
		switch seg.Cmd {
		case CmdSub:
			out = out.Sub(m.ApplyP(seg.P))
		case CmdLine:
			out = out.Line(m.ApplyP(seg.P))
		case CmdQcurve:
			out = out.Qcurve(m.ApplyP(seg.C1), m.ApplyP(seg.P))
		case CmdCcurve:
			out = out.Ccurve(m.ApplyP(seg.C1), m.ApplyP(seg.C2), m.ApplyP(seg.P))
		case CmdEarc:
			radii, flags := transformArc(seg.Radii, seg.Flags, m.Linear())
			out = out.Earc(radii, flags, m.ApplyP(seg.P))
		case CmdClose:
			out = out.Close()
		}
	}
	return out
}

// transformArc recomputes an elliptic arc's radii and rotation angle
// after its axis vectors are transformed by the linear part of an
// affine map. large and cw are orientation flags relative to the two
// endpoints and are unaffected by the transform itself, except that a
// transform with negative determinant (a reflection) swaps the sense
// of "clockwise".
func transformArc(radii geom.V2, flags ArcFlags, lin geom.M2) (geom.V2, ArcFlags) {
	sinA, cosA := math.Sincos(flags.Angle)
	ax := lin.Apply(geom.V2{X: radii.X * cosA, Y: radii.X * sinA})
	ay := lin.Apply(geom.V2{X: -radii.Y * sinA, Y: radii.Y * cosA})

	newAngle := math.Atan2(ax.Y, ax.X)
	newRadii := geom.Vec(ax.Length(), ay.Length())

	cw := flags.CW
	if lin.A*lin.D-lin.B*lin.C < 0 {
		cw = !cw
	}

	return newRadii, ArcFlags{Large: flags.Large, CW: cw, Angle: newAngle}
}
