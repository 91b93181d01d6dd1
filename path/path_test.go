package path

import (
	"math"
	"testing"

	"seehuhn.de/go/vg/geom"
)

func approxEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func pointsClose(a, b geom.P2, tol float64) bool {
	return a.Sub(b).Length() <= tol
}

// S1: a unit square traced with explicit lines has exact bounds.
func TestBoundsUnitSquare(t *testing.T) {
	p := Empty.Sub(geom.Pt(0, 0)).Line(geom.Pt(1, 0)).Line(geom.Pt(1, 1)).Line(geom.Pt(0, 1)).Close()
	box := p.Bounds(false)
	want := geom.Box2{Min: geom.Pt(0, 0), Max: geom.Pt(1, 1)}
	if !box.EqualF(want, approxEq) {
		t.Fatalf("bounds = %+v, want %+v", box, want)
	}
}

// S3: earc_params((1,0) -> (0,1)) with unit radii, no rotation, small arc.
func TestEarcParamsUnitQuarter(t *testing.T) {
	center, _, t0, t1, ok := EarcParams(geom.Pt(1, 0), geom.Pt(0, 1), false, false, 0, 1, 1)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if !pointsClose(center, geom.Pt(0, 0), 1e-9) {
		t.Errorf("center = %+v, want (0,0)", center)
	}
	if !approxEq(t0, 0) {
		t.Errorf("t0 = %v, want 0", t0)
	}
	if !approxEq(t1, math.Pi/2) {
		t.Errorf("t1 = %v, want pi/2", t1)
	}
}

// invariant 3: earc_params returns ok=false exactly in the degenerate cases.
func TestEarcParamsDegenerate(t *testing.T) {
	cases := []struct {
		name               string
		p0, p1             geom.P2
		rx, ry             float64
		large, cw          bool
		wantOK             bool
	}{
		{"zero rx", geom.Pt(0, 0), geom.Pt(1, 0), 0, 1, false, false, false},
		{"zero ry", geom.Pt(0, 0), geom.Pt(1, 0), 1, 0, false, false, false},
		{"coincident endpoints", geom.Pt(1, 1), geom.Pt(1, 1), 1, 1, false, false, false},
		{"too far apart", geom.Pt(0, 0), geom.Pt(10, 0), 1, 1, false, false, false},
		{"valid", geom.Pt(1, 0), geom.Pt(0, 1), 1, 1, false, false, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, _, _, ok := EarcParams(c.p0, c.p1, c.large, c.cw, 0, c.rx, c.ry)
			if ok != c.wantOK {
				t.Errorf("ok = %v, want %v", ok, c.wantOK)
			}
		})
	}
}

// invariant 4: endpoints of a valid arc lie on the ellipse at t0/t1.
func TestEarcParamsEndpointsOnEllipse(t *testing.T) {
	p0 := geom.Pt(3, 0)
	p1 := geom.Pt(0, 2)
	center, m, t0, t1, ok := EarcParams(p0, p1, true, true, 0.3, 3, 2)
	if !ok {
		t.Fatal("expected ok=true")
	}
	got0 := PointOnArc(center, m, t0)
	got1 := PointOnArc(center, m, t1)
	if !pointsClose(got0, p0, 1e-6) {
		t.Errorf("point at t0 = %+v, want %+v", got0, p0)
	}
	if !pointsClose(got1, p1, 1e-6) {
		t.Errorf("point at t1 = %+v, want %+v", got1, p1)
	}
}

// S2: a unit circle flattened at tol=1e-3 has >=32 segments, all close to the circle.
func TestCircleFlatten(t *testing.T) {
	p := Circle(geom.Pt(0, 0), 1)
	lines := flattenToLines(p, 1e-3)
	if len(lines) < 32 {
		t.Fatalf("got %d segments, want >= 32", len(lines))
	}
	for _, l := range lines {
		for _, pt := range l {
			d := math.Abs(pt.Sub(geom.Pt(0, 0)).Length() - 1)
			if d > 1e-3 {
				t.Errorf("point %+v is %v from unit circle, want <= 1e-3", pt, d)
			}
		}
	}
}

// invariant 2: linear_fold on a pure-line path, refolded by append, is the identity.
func TestLinearFoldPureLineIdentity(t *testing.T) {
	p := Empty.Sub(geom.Pt(0, 0)).Line(geom.Pt(1, 0)).Line(geom.Pt(1, 1)).Close()
	var got []geom.P2
	LinearFold(false, func(acc []geom.P2, p0, p1 geom.P2) []geom.P2 {
		if len(acc) == 0 {
			acc = append(acc, p0)
		}
		return append(acc, p1)
	}, got, p, DefaultTolerance)

	var got2 []geom.P2
	got2 = LinearFold(false, func(acc []geom.P2, p0, p1 geom.P2) []geom.P2 {
		if len(acc) == 0 {
			acc = append(acc, p0)
		}
		return append(acc, p1)
	}, got2, p, DefaultTolerance)

	want := []geom.P2{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(1, 1), geom.Pt(0, 0)}
	if len(got2) != len(want) {
		t.Fatalf("got %d points, want %d: %+v", len(got2), len(want), got2)
	}
	for i := range want {
		if !pointsClose(got2[i], want[i], 1e-9) {
			t.Errorf("point %d = %+v, want %+v", i, got2[i], want[i])
		}
	}
}

// invariant 1: the bounds of a transformed path are contained in the
// transformed bounds of the original path (exact equality only holds
// for axis-aligned transforms; a rotation can shrink the tight box).
func TestBoundsTransformInvariant(t *testing.T) {
	p := Empty.Sub(geom.Pt(0, 0)).Line(geom.Pt(2, 0)).Line(geom.Pt(2, 1)).Close()
	m := geom.Move(geom.Vec(3, -1)).Mul(geom.Rot(0.4))

	lhs := p.Transform(m).Bounds(true)
	rhs := p.Bounds(true).Transform(m)

	union := lhs.Union(rhs)
	if !union.EqualF(rhs, approxEq) {
		t.Fatalf("transformed path's bounds %+v not contained in transformed bounds %+v", lhs, rhs)
	}
}

func TestCubicEarcEndpointsMatch(t *testing.T) {
	center, m, t0, t1, ok := EarcParams(geom.Pt(1, 0), geom.Pt(-1, 0), true, true, 0, 1, 1)
	if !ok {
		t.Fatal("expected ok=true")
	}
	pieces := CubicEarc(center, m, t0, t1, 1e-4)
	if len(pieces) == 0 {
		t.Fatal("expected at least one piece")
	}
	last := pieces[len(pieces)-1]
	want := PointOnArc(center, m, t1)
	if !pointsClose(last.P, want, 1e-6) {
		t.Errorf("last endpoint = %+v, want %+v", last.P, want)
	}
}

func TestPathEqual(t *testing.T) {
	a := Empty.Sub(geom.Pt(0, 0)).Line(geom.Pt(1, 1))
	b := Empty.Sub(geom.Pt(0, 0)).Line(geom.Pt(1, 1))
	c := Empty.Sub(geom.Pt(0, 0)).Line(geom.Pt(1, 2))
	if !a.Equal(b) {
		t.Error("a should equal b")
	}
	if a.Equal(c) {
		t.Error("a should not equal c")
	}
	if Compare(a, b) != 0 {
		t.Error("Compare(a,b) should be 0")
	}
	if Compare(a, c) == 0 {
		t.Error("Compare(a,c) should not be 0")
	}
}

func TestRectBounds(t *testing.T) {
	p := Rect(geom.Pt(1, 1), geom.Pt(-1, -1))
	box := p.Bounds(false)
	want := geom.Box2{Min: geom.Pt(-1, -1), Max: geom.Pt(1, 1)}
	if !box.EqualF(want, approxEq) {
		t.Fatalf("bounds = %+v, want %+v", box, want)
	}
}

func TestRRectClampsRadius(t *testing.T) {
	p := RRect(geom.Pt(0, 0), geom.Pt(1, 1), 10)
	if p.IsEmpty() {
		t.Fatal("expected non-empty path")
	}
	box := p.Bounds(true)
	want := geom.Box2{Min: geom.Pt(0, 0), Max: geom.Pt(1, 1)}
	if !box.EqualF(want, func(a, b float64) bool { return math.Abs(a-b) < 1e-6 }) {
		t.Fatalf("bounds = %+v, want %+v", box, want)
	}
}

func TestSampleResetsAtSubpath(t *testing.T) {
	p := Empty.
		Sub(geom.Pt(0, 0)).Line(geom.Pt(10, 0)).
		Sub(geom.Pt(0, 5)).Line(geom.Pt(10, 5))
	pts := Sample(p, DefaultTolerance, 3)

	var firstSubEnd int
	for i, pt := range pts {
		if pt.Y > 1 {
			firstSubEnd = i
			break
		}
	}
	if firstSubEnd == 0 {
		t.Fatal("expected a second subpath's points")
	}
	// first point of the second subpath should be its start, exactly.
	if !pointsClose(pts[firstSubEnd], geom.Pt(0, 5), 1e-9) {
		t.Errorf("first point of second subpath = %+v, want (0,5)", pts[firstSubEnd])
	}
}

func TestBuilderImplicitSub(t *testing.T) {
	p := Empty.Line(geom.Pt(1, 0))
	segs := p.Segments()
	if len(segs) != 2 || segs[0].Cmd != CmdSub || !segs[0].P.Equal(geom.Pt(0, 0)) {
		t.Fatalf("expected implicit Sub(0,0) before Line, got %+v", segs)
	}
}

func TestCloseOnEmptyIsNoop(t *testing.T) {
	p := Empty.Close()
	if !p.IsEmpty() {
		t.Fatal("Close on empty path should be a no-op")
	}
}

func TestSubReplacesEmptySub(t *testing.T) {
	p := Empty.Sub(geom.Pt(0, 0)).Sub(geom.Pt(1, 1))
	if p.NumSubpaths() != 1 {
		t.Fatalf("NumSubpaths = %d, want 1", p.NumSubpaths())
	}
	origin, err := p.SubpathOrigin()
	if err != nil || !origin.Equal(geom.Pt(1, 1)) {
		t.Fatalf("origin = %+v, err = %v, want (1,1)", origin, err)
	}
}

func TestAppendCmdBranchSafety(t *testing.T) {
	base := Empty.Sub(geom.Pt(0, 0)).Line(geom.Pt(1, 0))
	branchA := base.Line(geom.Pt(2, 0))
	branchB := base.Line(geom.Pt(0, 2))

	segsA := branchA.Segments()
	segsB := branchB.Segments()
	if segsA[2].P.Equal(segsB[2].P) {
		t.Fatal("branches should not alias each other's last point")
	}
	if !segsA[2].P.Equal(geom.Pt(2, 0)) || !segsB[2].P.Equal(geom.Pt(0, 2)) {
		t.Fatalf("unexpected branch contents: A=%+v B=%+v", segsA[2], segsB[2])
	}
}
