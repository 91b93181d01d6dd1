package image

import (
	"seehuhn.de/go/vg/geom"
	"seehuhn.de/go/vg/meta"
	"seehuhn.de/go/vg/path"
)

func (k Kind) String() string {
	switch k {
	case KindConst:
		return "const"
	case KindAxial:
		return "axial"
	case KindRadial:
		return "radial"
	case KindRaster:
		return "raster"
	case KindCut:
		return "cut"
	case KindBlend:
		return "blend"
	case KindTr:
		return "tr"
	case KindMeta:
		return "meta"
	default:
		return "kind(?)"
	}
}

// Node is the decoded, single-level view of one Image tree node,
// presented to callers that need to inspect or render an Image from
// outside the image package — mirroring path.Segment's role for
// path.Path. Only the fields relevant to Kind are meaningful; the
// rest hold their zero value.
type Node struct {
	Kind Kind

	Color geom.Color // KindConst

	Stops  geom.Stops // KindAxial, KindRadial
	P1, P2 geom.P2    // KindAxial: gradient axis endpoints

	Focus, Center geom.P2 // KindRadial
	Radius        float64 // KindRadial

	RasterBounds geom.Box2   // KindRaster
	Raster       geom.Raster // KindRaster

	Area path.Area // KindCut
	Clip path.Path // KindCut

	Blender Blender  // KindBlend
	Alpha   *float64 // KindBlend; nil means "source alpha only"

	Transform geom.M3 // KindTr

	Tags meta.Meta // KindMeta

	// Child1 is the node's sole child for Cut/Tr/Meta, and the first
	// ("atop") operand for Blend; Child2 is Blend's second operand.
	// Both are nil for leaf kinds (Const, Axial, Radial, Raster).
	Child1, Child2 *Image
}

// Decompose returns img's shallow, single-level Node view. It does
// not recurse: Child1/Child2 are the immediate children, still opaque
// Image values, not further decoded.
func (img Image) Decompose() Node {
	return Node{
		Kind:         img.kind,
		Color:        img.color,
		Stops:        img.stops,
		P1:           img.p1,
		P2:           img.p2,
		Focus:        img.focus,
		Center:       img.center,
		Radius:       img.radius,
		RasterBounds: img.rasterBounds,
		Raster:       img.raster,
		Area:         img.area,
		Clip:         img.clip,
		Blender:      img.blender,
		Alpha:        img.alpha,
		Transform:    img.transform,
		Tags:         img.tags,
		Child1:       img.child1,
		Child2:       img.child2,
	}
}

// Kind returns img's node kind.
func (img Image) Kind() Kind {
	return img.kind
}

// Visit walks img's tree in pre-order (a node before its children,
// Child1 before Child2), calling f once per node with its Decompose
// view. Traversal is iterative via an explicit work stack, so it is
// safe for arbitrarily deep trees, matching Equal/Compare/Pretty.
func Visit(img Image, f func(Node)) {
	stack := []Image{img}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := cur.Decompose()
		f(n)

		if n.Child2 != nil {
			stack = append(stack, *n.Child2)
		}
		if n.Child1 != nil {
			stack = append(stack, *n.Child1)
		}
	}
}
