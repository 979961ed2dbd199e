package bezier

import (
	"math"
	"testing"

	"github.com/gogpu/strokefill/internal/geom"
)

func almostEqualVec(a, b geom.Vec2, tol float64) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol
}

func TestEvaluateHornerMatchesDeCasteljau(t *testing.T) {
	cubic := Poly[geom.Vec2]{
		geom.Pt(0, 0), geom.Pt(1, 2), geom.Pt(3, 2), geom.Pt(4, 0),
	}
	for _, tt := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		h := cubic.EvaluateHorner(tt)
		d := cubic.EvaluateDeCasteljau(tt)
		if !almostEqualVec(h, d, 1e-9) {
			t.Errorf("t=%v: Horner=%v DeCasteljau=%v", tt, h, d)
		}
	}
}

func TestEvaluateEndpoints(t *testing.T) {
	quad := Poly[geom.Vec2]{geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(2, 0)}
	if got := quad.EvaluateHorner(0); !almostEqualVec(got, geom.Pt(0, 0), 1e-12) {
		t.Errorf("B(0) = %v, want (0,0)", got)
	}
	if got := quad.EvaluateHorner(1); !almostEqualVec(got, geom.Pt(2, 0), 1e-12) {
		t.Errorf("B(1) = %v, want (2,0)", got)
	}
}

func TestSplitReproducesCurve(t *testing.T) {
	cubic := Poly[geom.Vec2]{
		geom.Pt(0, 0), geom.Pt(1, 3), geom.Pt(3, 3), geom.Pt(4, 0),
	}
	left, right := cubic.Split(0.4)
	for _, s := range []float64{0, 0.3, 1} {
		got := left.EvaluateHorner(s)
		want := cubic.EvaluateHorner(0.4 * s)
		if !almostEqualVec(got, want, 1e-9) {
			t.Errorf("left(%v) = %v, want %v", s, got, want)
		}
	}
	for _, s := range []float64{0, 0.3, 1} {
		got := right.EvaluateHorner(s)
		want := cubic.EvaluateHorner(0.4 + 0.6*s)
		if !almostEqualVec(got, want, 1e-9) {
			t.Errorf("right(%v) = %v, want %v", s, got, want)
		}
	}
}

func TestCutMatchesReparameterization(t *testing.T) {
	cubic := Poly[geom.Vec2]{
		geom.Pt(0, 0), geom.Pt(1, 3), geom.Pt(3, 3), geom.Pt(4, 0),
	}
	a, b := 0.2, 0.7
	cut := cubic.Cut(a, b)
	for _, s := range []float64{0, 0.25, 0.5, 1} {
		got := cut.EvaluateHorner(s)
		want := cubic.EvaluateHorner(a + (b-a)*s)
		if !almostEqualVec(got, want, 1e-9) {
			t.Errorf("cut(%v) = %v, want %v", s, got, want)
		}
	}
}

func TestCutFullRangeIsIdentity(t *testing.T) {
	cubic := Poly[geom.Vec2]{
		geom.Pt(0, 0), geom.Pt(1, 3), geom.Pt(3, 3), geom.Pt(4, 0),
	}
	cut := cubic.Cut(0, 1)
	for i := range cubic {
		if !almostEqualVec(cut[i], cubic[i], 1e-9) {
			t.Errorf("Cut(0,1)[%d] = %v, want %v", i, cut[i], cubic[i])
		}
	}
}

func TestElevateThenLowerDegreeRoundTrips(t *testing.T) {
	quad := Poly[geom.Vec2]{geom.Pt(0, 0), geom.Pt(2, 4), geom.Pt(4, 0)}
	elevated := quad.ElevateDegree()
	if elevated.Degree() != quad.Degree()+1 {
		t.Fatalf("ElevateDegree degree = %d, want %d", elevated.Degree(), quad.Degree()+1)
	}
	for _, tt := range []float64{0, 0.3, 0.6, 1} {
		if !almostEqualVec(elevated.EvaluateHorner(tt), quad.EvaluateHorner(tt), 1e-9) {
			t.Errorf("elevated(%v) != quad(%v)", tt, tt)
		}
	}
	lowered := elevated.LowerDegree()
	for i := range quad {
		if !almostEqualVec(lowered[i], quad[i], 1e-7) {
			t.Errorf("LowerDegree[%d] = %v, want %v", i, lowered[i], quad[i])
		}
	}
}

func TestProductDegree(t *testing.T) {
	p := ScalarPoly{1, 2, 1}    // degree 2
	q := ScalarPoly{1, -1}      // degree 1
	r := Product(p, q)
	if len(r) != len(p)+len(q)-1 {
		t.Fatalf("Product length = %d, want %d", len(r), len(p)+len(q)-1)
	}
	for _, tt := range []float64{0, 0.2, 0.5, 0.8, 1} {
		got := r.EvaluateHorner(tt)
		want := p.EvaluateHorner(tt) * q.EvaluateHorner(tt)
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("Product(%v) = %v, want %v", tt, got, want)
		}
	}
}

func TestRootsFindsKnownRoot(t *testing.T) {
	// Bernstein form of 2t - 1 on [0,1]: p(t) = p0*(1-t)+p1*t with
	// p0=-1, p1=1, root at t=0.5.
	p := ScalarPoly{-1, 1}
	roots := p.Roots(0, 1, 0)
	found := false
	for _, r := range roots {
		if math.Abs(r-0.5) < 1e-9 {
			found = true
		}
	}
	if !found {
		t.Errorf("Roots(%v) = %v, expected to contain 0.5", p, roots)
	}
}

func TestRootsQuadraticTwoRoots(t *testing.T) {
	// (t-0.25)(t-0.75) = t^2 - t + 0.1875, converted to Bernstein basis
	// over degree 2: B0=f(0), B1 via control relation, B2=f(1).
	// Bernstein coefficients for at^2+bt+c on [0,1] are:
	// b0=c, b1=c+b/2, b2=a+b+c.
	a, b, c := 1.0, -1.0, 0.1875
	p := ScalarPoly{c, c + b/2, a + b + c}
	roots := p.Roots(0, 1, 0)
	var interior []float64
	for _, r := range roots {
		if r > 1e-6 && r < 1-1e-6 {
			interior = append(interior, r)
		}
	}
	if len(interior) != 2 {
		t.Fatalf("expected 2 interior roots, got %v", interior)
	}
	if math.Abs(interior[0]-0.25) > 1e-7 || math.Abs(interior[1]-0.75) > 1e-7 {
		t.Errorf("roots = %v, want [0.25, 0.75]", interior)
	}
}

func TestHullMarchingRootsAgreesWithBisection(t *testing.T) {
	p := ScalarPoly{-1, 1}
	a := p.Roots(0, 1, 0)
	b := p.HullMarchingRoots(0, 1, 0)
	if len(a) != len(b) {
		t.Fatalf("root count mismatch: bisection=%v hull-march=%v", a, b)
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-6 {
			t.Errorf("root %d mismatch: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestDerivativeOfLinearIsConstant(t *testing.T) {
	line := Poly[geom.Vec2]{geom.Pt(0, 0), geom.Pt(2, 4)}
	d := line.Derivative()
	if len(d) != 1 {
		t.Fatalf("Derivative of linear has %d points, want 1", len(d))
	}
	if !almostEqualVec(d[0], geom.Pt(2, 4), 1e-12) {
		t.Errorf("Derivative = %v, want (2,4)", d[0])
	}
}

func TestBlossomDiagonalIsEvaluate(t *testing.T) {
	cubic := Poly[geom.Vec2]{
		geom.Pt(0, 0), geom.Pt(1, 2), geom.Pt(3, 2), geom.Pt(4, 0),
	}
	t1 := cubic.Blossom(0.3, 0.7)
	t2 := t1.Blossom(0.3, 0.7)
	t3 := t2.Blossom(0.3, 0.7)
	want := cubic.EvaluateHorner(0.3)
	if !almostEqualVec(t3[0], want, 1e-9) {
		t.Errorf("triple-diagonal blossom = %v, want %v", t3[0], want)
	}
}
