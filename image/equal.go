package image

import (
	"fmt"
	"strings"

	"seehuhn.de/go/vg/geom"
	"seehuhn.de/go/vg/meta"
	"seehuhn.de/go/vg/path"
)

// Equal reports whether img and other are structurally identical.
func (img Image) Equal(other Image) bool {
	return img.EqualF(other, func(a, b float64) bool { return a == b })
}

// EqualF reports whether img and other are structurally identical
// under the float comparator eq. Traversal is iterative (an explicit
// work stack) so that deep trees can't overflow the call stack.
func (img Image) EqualF(other Image, eq func(a, b float64) bool) bool {
	type pair struct{ a, b Image }
	stack := []pair{{img, other}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		a, b := p.a, p.b

		if a.kind != b.kind {
			return false
		}
		switch a.kind {
		case KindConst:
			if !a.color.EqualF(b.color, eq) {
				return false
			}
		case KindAxial:
			if !a.stops.EqualF(b.stops, eq) || !a.p1.EqualF(b.p1, eq) || !a.p2.EqualF(b.p2, eq) {
				return false
			}
		case KindRadial:
			if !a.stops.EqualF(b.stops, eq) || !a.focus.EqualF(b.focus, eq) ||
				!a.center.EqualF(b.center, eq) || !eq(a.radius, b.radius) {
				return false
			}
		case KindRaster:
			if !a.raster.Equal(b.raster) || !a.rasterBounds.EqualF(b.rasterBounds, eq) {
				return false
			}
		case KindCut:
			if !areaEqual(a.area, b.area, eq) || !a.clip.EqualF(b.clip, func(p, q geom.P2) bool { return p.EqualF(q, eq) }) {
				return false
			}
			stack = append(stack, pair{*a.child1, *b.child1})
		case KindBlend:
			if a.blender != b.blender || !alphaEqual(a.alpha, b.alpha, eq) {
				return false
			}
			stack = append(stack, pair{*a.child1, *b.child1}, pair{*a.child2, *b.child2})
		case KindTr:
			if !matrixEqual(a.transform, b.transform, eq) {
				return false
			}
			stack = append(stack, pair{*a.child1, *b.child1})
		case KindMeta:
			if !meta.Equal(a.tags, b.tags) {
				return false
			}
			stack = append(stack, pair{*a.child1, *b.child1})
		}
	}
	return true
}

func alphaEqual(a, b *float64, eq func(x, y float64) bool) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || eq(*a, *b)
}

func matrixEqual(a, b geom.M3, eq func(x, y float64) bool) bool {
	return eq(a.A, b.A) && eq(a.B, b.B) && eq(a.C, b.C) && eq(a.D, b.D) && eq(a.E, b.E) && eq(a.F, b.F)
}

func areaEqual(a, b path.Area, eq func(x, y float64) bool) bool {
	if a.IsStroke() != b.IsStroke() {
		return false
	}
	if !a.IsStroke() {
		return a.FillRule() == b.FillRule()
	}
	oa, ob := a.Outline(), b.Outline()
	if oa.Cap != ob.Cap || oa.Join != ob.Join || !eq(oa.Width, ob.Width) || !eq(oa.MiterAngle, ob.MiterAngle) {
		return false
	}
	if oa.Dashes.HasDashes() != ob.Dashes.HasDashes() {
		return false
	}
	if !oa.Dashes.HasDashes() {
		return true
	}
	if !eq(oa.Dashes.Phase, ob.Dashes.Phase) || len(oa.Dashes.Pattern) != len(ob.Dashes.Pattern) {
		return false
	}
	for i := range oa.Dashes.Pattern {
		if !eq(oa.Dashes.Pattern[i], ob.Dashes.Pattern[i]) {
			return false
		}
	}
	return true
}

// Compare defines a total order over images, comparing node kind first
// and then kind-specific fields, recursing into children in the same
// order Equal does. Like Equal, traversal uses an explicit work stack.
func Compare(a, b Image) int {
	return CompareF(a, b, func(x, y float64) bool { return x == y })
}

// CompareF is Compare, with float fields compared under eq rather than
// exact equality: where eq(x, y) holds the field contributes no
// ordering information, otherwise it's ordered by value, mirroring how
// EqualF threads its tolerance through Equal's structure.
func CompareF(a, b Image, eq func(x, y float64) bool) int {
	type pair struct{ a, b Image }
	stack := []pair{{a, b}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := p.a, p.b

		if x.kind != y.kind {
			return sign(int(x.kind) - int(y.kind))
		}
		switch x.kind {
		case KindConst:
			if c := compareColorF(x.color, y.color, eq); c != 0 {
				return c
			}
		case KindAxial:
			if c := compareStopsF(x.stops, y.stops, eq); c != 0 {
				return c
			}
			if c := comparePtF(x.p1, y.p1, eq); c != 0 {
				return c
			}
			if c := comparePtF(x.p2, y.p2, eq); c != 0 {
				return c
			}
		case KindRadial:
			if c := compareStopsF(x.stops, y.stops, eq); c != 0 {
				return c
			}
			if c := comparePtF(x.focus, y.focus, eq); c != 0 {
				return c
			}
			if c := comparePtF(x.center, y.center, eq); c != 0 {
				return c
			}
			if c := compareFloatF(x.radius, y.radius, eq); c != 0 {
				return c
			}
		case KindRaster:
			if c := boxCompareF(x.rasterBounds, y.rasterBounds, eq); c != 0 {
				return c
			}
			if c := x.raster.Compare(y.raster); c != 0 {
				return c
			}
		case KindCut:
			if c := areaCompareF(x.area, y.area, eq); c != 0 {
				return c
			}
			if c := path.CompareF(x.clip, y.clip, func(p, q geom.P2) bool { return p.EqualF(q, eq) }); c != 0 {
				return c
			}
			stack = append(stack, pair{*x.child1, *y.child1})
		case KindBlend:
			if x.blender != y.blender {
				return sign(int(x.blender) - int(y.blender))
			}
			if c := alphaCompareF(x.alpha, y.alpha, eq); c != 0 {
				return c
			}
			stack = append(stack, pair{*x.child1, *y.child1}, pair{*x.child2, *y.child2})
		case KindTr:
			if c := matrixCompareF(x.transform, y.transform, eq); c != 0 {
				return c
			}
			stack = append(stack, pair{*x.child1, *y.child1})
		case KindMeta:
			if c := meta.Compare(x.tags, y.tags); c != 0 {
				return c
			}
			stack = append(stack, pair{*x.child1, *y.child1})
		}
	}
	return 0
}

func compareColorF(a, b geom.Color, eq func(x, y float64) bool) int {
	if c := compareFloatF(a.R, b.R, eq); c != 0 {
		return c
	}
	if c := compareFloatF(a.G, b.G, eq); c != 0 {
		return c
	}
	if c := compareFloatF(a.B, b.B, eq); c != 0 {
		return c
	}
	return compareFloatF(a.A, b.A, eq)
}

func compareStopsF(a, b geom.Stops, eq func(x, y float64) bool) int {
	if c := len(a) - len(b); c != 0 {
		return sign(c)
	}
	for i := range a {
		if c := compareFloatF(a[i].Offset, b[i].Offset, eq); c != 0 {
			return c
		}
		if c := compareColorF(a[i].Color, b[i].Color, eq); c != 0 {
			return c
		}
	}
	return 0
}

func comparePtF(a, b geom.P2, eq func(x, y float64) bool) int {
	if c := compareFloatF(a.X, b.X, eq); c != 0 {
		return c
	}
	return compareFloatF(a.Y, b.Y, eq)
}

func boxCompareF(a, b geom.Box2, eq func(x, y float64) bool) int {
	if c := comparePtF(a.Min, b.Min, eq); c != 0 {
		return c
	}
	return comparePtF(a.Max, b.Max, eq)
}

func alphaCompareF(a, b *float64, eq func(x, y float64) bool) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return compareFloatF(*a, *b, eq)
	}
}

func matrixCompareF(a, b geom.M3, eq func(x, y float64) bool) int {
	if c := compareFloatF(a.A, b.A, eq); c != 0 {
		return c
	}
	if c := compareFloatF(a.B, b.B, eq); c != 0 {
		return c
	}
	if c := compareFloatF(a.C, b.C, eq); c != 0 {
		return c
	}
	if c := compareFloatF(a.D, b.D, eq); c != 0 {
		return c
	}
	if c := compareFloatF(a.E, b.E, eq); c != 0 {
		return c
	}
	return compareFloatF(a.F, b.F, eq)
}

func areaCompareF(a, b path.Area, eq func(x, y float64) bool) int {
	if a.IsStroke() != b.IsStroke() {
		return sign(boolInt(a.IsStroke()) - boolInt(b.IsStroke()))
	}
	if !a.IsStroke() {
		return sign(int(a.FillRule()) - int(b.FillRule()))
	}
	oa, ob := a.Outline(), b.Outline()
	if c := sign(int(oa.Cap) - int(ob.Cap)); c != 0 {
		return c
	}
	if c := sign(int(oa.Join) - int(ob.Join)); c != 0 {
		return c
	}
	if c := compareFloatF(oa.Width, ob.Width, eq); c != 0 {
		return c
	}
	if c := compareFloatF(oa.MiterAngle, ob.MiterAngle, eq); c != 0 {
		return c
	}
	if c := sign(boolInt(oa.Dashes.HasDashes()) - boolInt(ob.Dashes.HasDashes())); c != 0 {
		return c
	}
	if !oa.Dashes.HasDashes() {
		return 0
	}
	if c := compareFloatF(oa.Dashes.Phase, ob.Dashes.Phase, eq); c != 0 {
		return c
	}
	if c := len(oa.Dashes.Pattern) - len(ob.Dashes.Pattern); c != 0 {
		return sign(c)
	}
	for i := range oa.Dashes.Pattern {
		if c := compareFloatF(oa.Dashes.Pattern[i], ob.Dashes.Pattern[i], eq); c != 0 {
			return c
		}
	}
	return 0
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func compareFloatF(a, b float64, eq func(x, y float64) bool) int {
	if eq(a, b) {
		return 0
	}
	return compareFloat(a, b)
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
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

// Pretty returns a human-readable, indented representation of img's
// tree structure, mainly useful for debugging and tests. Traversal is
// iterative, matching Equal and Compare.
func Pretty(img Image) string {
	type frame struct {
		img   Image
		depth int
	}
	var b strings.Builder
	stack := []frame{{img, 0}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		indent := strings.Repeat("  ", f.depth)
		switch f.img.kind {
		case KindConst:
			fmt.Fprintf(&b, "%sconst %s\n", indent, f.img.color)
		case KindAxial:
			fmt.Fprintf(&b, "%saxial %v -> %v (%d stops)\n", indent, f.img.p1, f.img.p2, len(f.img.stops))
		case KindRadial:
			fmt.Fprintf(&b, "%sradial center=%v r=%v\n", indent, f.img.center, f.img.radius)
		case KindRaster:
			fmt.Fprintf(&b, "%sraster bounds=%v\n", indent, f.img.rasterBounds)
		case KindCut:
			fmt.Fprintf(&b, "%scut\n", indent)
			stack = append(stack, frame{*f.img.child1, f.depth + 1})
		case KindBlend:
			fmt.Fprintf(&b, "%sblend %v\n", indent, f.img.blender)
			stack = append(stack, frame{*f.img.child2, f.depth + 1}, frame{*f.img.child1, f.depth + 1})
		case KindTr:
			fmt.Fprintf(&b, "%str\n", indent)
			stack = append(stack, frame{*f.img.child1, f.depth + 1})
		case KindMeta:
			fmt.Fprintf(&b, "%smeta\n", indent)
			stack = append(stack, frame{*f.img.child1, f.depth + 1})
		}
	}
	return b.String()
}
