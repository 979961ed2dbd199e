package curveanalysis

import (
	"math"
	"testing"

	"github.com/gogpu/strokefill/internal/bezier"
	"github.com/gogpu/strokefill/internal/geom"
)

func TestArcLengthOfLine(t *testing.T) {
	line := bezier.Poly[geom.Vec2]{geom.Pt(0, 0), geom.Pt(3, 4)}
	got := ArcLength(line, 0, 1)
	if math.Abs(got-5) > 1e-9 {
		t.Errorf("ArcLength = %v, want 5", got)
	}
}

func TestArcLengthOfQuarterCircleApprox(t *testing.T) {
	// Cubic approximation of a quarter circle of radius 1.
	const k = 0.5522847498307936
	quarter := bezier.Poly[geom.Vec2]{
		geom.Pt(1, 0), geom.Pt(1, k), geom.Pt(k, 1), geom.Pt(0, 1),
	}
	got := ArcLength(quarter, 0, 1)
	// The cubic is slightly longer than the circle's pi/2 (by about
	// 2.2e-4); this is its own length from a fine Simpson integration.
	want := 1.5710166980737927
	if math.Abs(got-want) > 1e-4 {
		t.Errorf("ArcLength(quarter circle) = %v, want ~%v", got, want)
	}
}

func TestReparamMonotoneAndTotalMatchesArcLength(t *testing.T) {
	cubic := bezier.Poly[geom.Vec2]{
		geom.Pt(0, 0), geom.Pt(1, 5), geom.Pt(4, 5), geom.Pt(5, 0),
	}
	r := NewReparam(cubic, 32)
	total := ArcLength(cubic, 0, 1)
	if math.Abs(r.TotalLength()-total) > 1e-3 {
		t.Errorf("TotalLength = %v, want ~%v", r.TotalLength(), total)
	}
	prev := -1.0
	for _, frac := range []float64{0, 0.1, 0.3, 0.5, 0.8, 1} {
		tt := r.GetRelativeParameterForLengthFraction(frac)
		if tt < prev {
			t.Errorf("reparam not monotone: frac=%v t=%v prev=%v", frac, tt, prev)
		}
		prev = tt
	}
}

func TestInflectionsOfSCurve(t *testing.T) {
	// A classic S-shaped cubic has exactly one inflection near t=0.5.
	s := bezier.Poly[geom.Vec2]{
		geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(-1, 1), geom.Pt(0, 2),
	}
	inf := Inflections(s)
	if len(inf) == 0 {
		t.Fatal("expected at least one inflection")
	}
	for _, tt := range inf {
		if tt <= 0 || tt >= 1 {
			t.Errorf("inflection %v out of (0,1)", tt)
		}
	}
}

func TestInflectionsOfSimpleArcNone(t *testing.T) {
	const k = 0.5522847498307936
	quarter := bezier.Poly[geom.Vec2]{
		geom.Pt(1, 0), geom.Pt(1, k), geom.Pt(k, 1), geom.Pt(0, 1),
	}
	if inf := Inflections(quarter); len(inf) != 0 {
		t.Errorf("expected no inflections on a convex arc, got %v", inf)
	}
}

func TestDoublePointsOfLoop(t *testing.T) {
	// A cubic with a clear self-intersection loop.
	loop := bezier.Poly[geom.Vec2]{
		geom.Pt(0, 0), geom.Pt(10, 10), geom.Pt(-5, 10), geom.Pt(5, 0),
	}
	dp := DoublePoints(loop)
	if dp == nil {
		t.Fatal("expected a double point on a looping cubic")
	}
	p1 := loop.EvaluateHorner(dp[0])
	p2 := loop.EvaluateHorner(dp[1])
	if math.Abs(p1.X-p2.X) > 1e-6 || math.Abs(p1.Y-p2.Y) > 1e-6 {
		t.Errorf("C(t1)=%v C(t2)=%v, expected equal at a double point", p1, p2)
	}
}

func TestDoublePointsOfConvexCurveNone(t *testing.T) {
	convex := bezier.Poly[geom.Vec2]{
		geom.Pt(0, 0), geom.Pt(1, 2), geom.Pt(3, 2), geom.Pt(4, 0),
	}
	if dp := DoublePoints(convex); dp != nil {
		t.Errorf("expected no double point, got %v", dp)
	}
}

func TestRadiusOfCurvatureOfCircleIsConstant(t *testing.T) {
	const k = 0.5522847498307936
	quarter := bezier.Poly[geom.Vec2]{
		geom.Pt(1, 0), geom.Pt(1, k), geom.Pt(k, 1), geom.Pt(0, 1),
	}
	r0 := RadiusOfCurvature(quarter, 0.5).Value()
	if math.Abs(math.Abs(r0)-1) > 0.02 {
		t.Errorf("radius of curvature at midpoint = %v, want ~1", r0)
	}
}

func TestMonotonicExtremaOfQuadratic(t *testing.T) {
	quad := bezier.Poly[geom.Vec2]{geom.Pt(0, 0), geom.Pt(1, 2), geom.Pt(2, 0)}
	ext := MonotonicExtrema(quad)
	found := false
	for _, tt := range ext {
		if math.Abs(tt-0.5) < 1e-6 {
			found = true
		}
	}
	if !found {
		t.Errorf("MonotonicExtrema = %v, expected to contain 0.5 (y-extremum)", ext)
	}
}
