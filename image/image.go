// Package image implements an immutable, structurally shared tree of
// drawing primitives, clips, blends and transforms — the image algebra
// that paths are rendered into.
package image

import (
	"seehuhn.de/go/vg/geom"
	"seehuhn.de/go/vg/meta"
	"seehuhn.de/go/vg/path"
)

// Kind identifies which of Image's several shapes a value holds.
type Kind int

const (
	KindConst Kind = iota
	KindAxial
	KindRadial
	KindRaster
	KindCut
	KindBlend
	KindTr
	KindMeta
)

// Blender selects how two images combine in a Blend node, following
// the standard Porter-Duff compositing algebra.
type Blender int

const (
	Over Blender = iota
	Atop
	In
	Out
	Plus
	Copy
	Xor
)

// Image is an immutable, structurally shared tree value: a uniform
// color or gradient, a raster sample, a clipped/blended/transformed/
// annotated composition of other images. The zero value is not
// meaningful; construct images through Const, Axial, Radial, Raster,
// Cut, Blend, Move/Rot/Scale/Tr, and Tag.
//
// Two Images built by branching off a shared sub-image never alias
// each other's mutable state, because there is none: every field below
// is set once at construction and never mutated afterwards.
type Image struct {
	kind Kind

	color geom.Color // KindConst

	stops  geom.Stops // KindAxial, KindRadial
	p1, p2 geom.P2    // KindAxial: gradient axis endpoints

	focus, center geom.P2 // KindRadial
	radius        float64 // KindRadial

	rasterBounds geom.Box2   // KindRaster
	raster       geom.Raster // KindRaster

	area path.Area // KindCut
	clip path.Path // KindCut

	blender Blender  // KindBlend
	alpha   *float64 // KindBlend; nil means "source alpha only"

	transform geom.M3 // KindTr

	tags meta.Meta // KindMeta

	// child1 is the node's sole child for Cut/Tr/Meta, and the first
	// ("atop") operand for Blend; child2 is Blend's second operand.
	// Fields must be pointers, not embedded Image values, since Image
	// cannot contain itself by value.
	child1 *Image
	child2 *Image
}

// Const returns the image of uniform color c.
func Const(c geom.Color) Image {
	return Image{kind: KindConst, color: c}
}

// Void is the distinguished fully transparent image, equal to
// Const(geom.Transparent).
var Void = Const(geom.Transparent)

// IsVoid reports whether img is structurally equal to Void. This is a
// plain structural check rather than a pointer-identity fast path,
// since Image is a value type with no single canonical Void instance
// to compare against.
func (img Image) IsVoid() bool {
	return img.kind == KindConst && img.color.Equal(geom.Transparent)
}

// Axial returns a linear gradient along the segment from p1 to p2.
func Axial(stops geom.Stops, p1, p2 geom.P2) Image {
	return Image{kind: KindAxial, stops: stops, p1: p1, p2: p2}
}

// Radial returns a radial gradient with the given focus point, center
// and radius. focus must lie within the circle (center, radius).
func Radial(stops geom.Stops, focus, center geom.P2, radius float64) Image {
	return Image{kind: KindRadial, stops: stops, focus: focus, center: center, radius: radius}
}

// RadialCentered is Radial with focus defaulting to center.
func RadialCentered(stops geom.Stops, center geom.P2, radius float64) Image {
	return Radial(stops, center, center, radius)
}

// Raster returns the image of r mapped onto bounds.
func Raster(bounds geom.Box2, r geom.Raster) Image {
	return Image{kind: KindRaster, rasterBounds: bounds, raster: r}
}

// Cut clips img to the interior of p interpreted under area.
func Cut(area path.Area, p path.Path, img Image) Image {
	c := img
	return Image{kind: KindCut, area: area, clip: p, child1: &c}
}

// CutFill is Cut with the default area (non-zero winding fill).
func CutFill(p path.Path, img Image) Image {
	return Cut(path.AreaNonZero(), p, img)
}

// Blend places img1 atop img2 using blender, with an optional global
// alpha. alpha, if non-nil, scales the blend's overall opacity; if nil
// the blend uses img1's inherent alpha only.
func Blend(blender Blender, alpha *float64, img1, img2 Image) Image {
	a, b := img1, img2
	return Image{kind: KindBlend, blender: blender, alpha: alpha, child1: &a, child2: &b}
}

// BlendOver is Blend with the default Over blender and no global alpha.
func BlendOver(img1, img2 Image) Image {
	return Blend(Over, nil, img1, img2)
}

// Tr transforms img's geometry by m. Tr composes on the outside:
// Tr(n, Tr(m, img)) draws img transformed first by m, then by n.
func Tr(m geom.M3, img Image) Image {
	c := img
	return Image{kind: KindTr, transform: m, child1: &c}
}

// Move is Tr(geom.Move(v), img).
func Move(v geom.V2, img Image) Image {
	return Tr(geom.Move(v), img)
}

// Rot is Tr(geom.Rot(angle), img).
func Rot(angle float64, img Image) Image {
	return Tr(geom.Rot(angle), img)
}

// Scale is Tr(geom.Scale(s), img).
func Scale(s geom.V2, img Image) Image {
	return Tr(geom.Scale(s), img)
}

// Tag annotates img with m. Tags are purely informational to
// consumers and never change how img renders.
func Tag(m meta.Meta, img Image) Image {
	c := img
	return Image{kind: KindMeta, tags: m, child1: &c}
}
