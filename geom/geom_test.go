package geom

import (
	"math"
	"testing"
)

func approxEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBox2Transform(t *testing.T) {
	b := Box2{Min: Pt(0, 0), Max: Pt(1, 1)}
	m := Rot(math.Pi / 2)
	got := b.Transform(m)
	want := Box2{Min: Pt(-1, 0), Max: Pt(0, 1)}
	if !got.EqualF(want, approxEq) {
		t.Errorf("Transform: got %+v, want %+v", got, want)
	}
}

func TestBox2Union(t *testing.T) {
	a := Box2{Min: Pt(0, 0), Max: Pt(1, 1)}
	b := Box2{Min: Pt(2, 2), Max: Pt(3, 3)}
	u := a.Union(b)
	want := Box2{Min: Pt(0, 0), Max: Pt(3, 3)}
	if !u.EqualF(want, approxEq) {
		t.Errorf("Union: got %+v, want %+v", u, want)
	}
}

func TestUnionWithEmpty(t *testing.T) {
	a := Box2{Min: Pt(0, 0), Max: Pt(1, 1)}
	u := a.Union(EmptyBox2())
	if !u.EqualF(a, approxEq) {
		t.Errorf("Union with empty: got %+v, want %+v", u, a)
	}
}

func TestM3Mul(t *testing.T) {
	m := Move(Vec(1, 2)).Mul(Scale(Vec(2, 3)))
	p := m.ApplyP(Pt(1, 1))
	want := Pt(3, 5)
	if !p.EqualF(want, approxEq) {
		t.Errorf("Mul: got %+v, want %+v", p, want)
	}
}

func TestNamed(t *testing.T) {
	c, ok := Named("cornflowerblue")
	if !ok {
		t.Fatal("cornflowerblue not found")
	}
	if c.A != 1 {
		t.Errorf("expected opaque color, got alpha %v", c.A)
	}

	if _, ok := Named("not-a-color"); ok {
		t.Error("expected not-a-color to be unknown")
	}
}

func TestStopsValid(t *testing.T) {
	ok := Stops{{Offset: 0, Color: Transparent}, {Offset: 0.5, Color: Transparent}, {Offset: 1, Color: Transparent}}
	if !ok.Valid() {
		t.Error("expected valid stops")
	}
	bad := Stops{{Offset: 0.5, Color: Transparent}, {Offset: 0.2, Color: Transparent}}
	if bad.Valid() {
		t.Error("expected invalid stops (decreasing offset)")
	}
}
