package image

import (
	"strings"
	"testing"

	"seehuhn.de/go/vg/geom"
	"seehuhn.de/go/vg/meta"
	"seehuhn.de/go/vg/path"
)

func red() geom.Color { return geom.Color{R: 1, A: 1} }

func TestVoidIsConstTransparent(t *testing.T) {
	if !Void.IsVoid() {
		t.Fatal("Void should report IsVoid")
	}
	if !Void.Equal(Const(geom.Transparent)) {
		t.Fatal("Void should equal Const(Transparent)")
	}
	if Const(red()).IsVoid() {
		t.Fatal("a red Const should not be void")
	}
}

// invariant 6: equal_f eq i i is reflexive, and equal_f is symmetric.
func TestEqualReflexiveSymmetric(t *testing.T) {
	square := path.Rect(geom.Pt(0, 0), geom.Pt(1, 1))
	img := BlendOver(
		CutFill(square, Const(red())),
		Tag(meta.Add(meta.Empty, meta.Title, "x"), Void),
	)
	if !img.Equal(img) {
		t.Fatal("Equal should be reflexive")
	}

	other := BlendOver(
		CutFill(path.Rect(geom.Pt(0, 0), geom.Pt(1, 1)), Const(red())),
		Tag(meta.Add(meta.Empty, meta.Title, "x"), Void),
	)
	if img.Equal(other) != other.Equal(img) {
		t.Fatal("Equal should be symmetric")
	}
	if !img.Equal(other) {
		t.Fatal("two structurally identical images should be equal")
	}
}

func TestEqualDetectsDifference(t *testing.T) {
	a := Const(red())
	b := Const(geom.Color{B: 1, A: 1})
	if a.Equal(b) {
		t.Fatal("different colors should not be equal")
	}
}

func TestCompareTotalOrder(t *testing.T) {
	a := Const(red())
	b := Const(geom.Color{G: 1, A: 1})
	if Compare(a, a) != 0 {
		t.Error("Compare(a,a) should be 0")
	}
	c := Compare(a, b)
	if c == 0 {
		t.Error("Compare(a,b) should not be 0 for distinct colors")
	}
	if Compare(b, a) != -c {
		t.Error("Compare should be antisymmetric")
	}
}

func TestDeepTreeNoStackOverflow(t *testing.T) {
	img := Const(red())
	for i := 0; i < 100000; i++ {
		img = Move(geom.Vec(1, 0), img)
	}
	if !img.Equal(img) {
		t.Fatal("deep tree should still compare equal to itself")
	}
}

func TestPrettyIncludesBlendKind(t *testing.T) {
	img := BlendOver(Const(red()), Void)
	out := Pretty(img)
	if !strings.Contains(out, "blend over") {
		t.Fatalf("pretty output = %q, want it to mention \"blend over\"", out)
	}
}

func TestCutPreservesArea(t *testing.T) {
	square := path.Rect(geom.Pt(0, 0), geom.Pt(2, 2))
	img := Cut(path.AreaEvenOdd(), square, Const(red()))
	if img.area.FillRule() != path.FillEvenOdd {
		t.Fatal("Cut should preserve the supplied area")
	}
}
