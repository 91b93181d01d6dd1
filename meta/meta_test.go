package meta

import (
	"testing"

	"seehuhn.de/go/vg/geom"
)

func TestAddGetFind(t *testing.T) {
	m := Add(Empty, Title, "x")
	v, err := Get(m, Title)
	if err != nil || v != "x" {
		t.Fatalf("Get: got %q, %v", v, err)
	}

	if _, ok := Find(m, Subject); ok {
		t.Error("expected Subject to be unbound")
	}
	if _, err := Get(m, Subject); err != ErrUnboundKey {
		t.Errorf("expected ErrUnboundKey, got %v", err)
	}
	if v, err := Get(m, Subject, "default"); err != nil || v != "default" {
		t.Errorf("Get with default: got %q, %v", v, err)
	}
}

func TestAddOrderIndependence(t *testing.T) {
	a := Add(Add(Empty, Resolution, geom.Vec(300, 300)), Title, "x")
	b := Add(Add(Empty, Title, "x"), Resolution, geom.Vec(300, 300))
	if !Equal(a, b) {
		t.Errorf("expected order-independent equality: %v vs %v", Pretty(a), Pretty(b))
	}
}

func TestDistinctKeysSameID(t *testing.T) {
	k1 := NewKey[int]("count")
	k2 := NewKey[int]("count")
	m := Add(Add(Empty, k1, 1), k2, 2)
	v1, _ := Find(m, k1)
	v2, _ := Find(m, k2)
	if v1 != 1 || v2 != 2 {
		t.Errorf("expected independently-keyed bindings, got %d, %d", v1, v2)
	}
}

func TestRem(t *testing.T) {
	m := Add(Empty, Title, "x")
	m = Rem(m, Title)
	if Mem(m, Title) {
		t.Error("expected Title removed")
	}
	if !m.IsEmpty() {
		t.Error("expected empty map after removing the only binding")
	}
}

func TestAddMetaRightBiased(t *testing.T) {
	a := Add(Empty, Title, "a")
	b := Add(Empty, Title, "b")
	u := AddMeta(a, b)
	v, _ := Get(u, Title)
	if v != "b" {
		t.Errorf("expected right-biased union to pick %q, got %q", "b", v)
	}
}

func TestCompareIsTotalOrder(t *testing.T) {
	a := Add(Empty, Title, "a")
	b := Add(Empty, Title, "b")
	if Compare(a, a) != 0 {
		t.Error("expected Compare(a, a) == 0")
	}
	if Compare(a, b) >= 0 {
		t.Error("expected a < b")
	}
	if Compare(b, a) <= 0 {
		t.Error("expected b > a")
	}
}
