package geom

import "testing"

func TestIsAlmostEqual(t *testing.T) {
	if !IsAlmostEqual(1.0, 1.0+4*Epsilon, 32) {
		t.Error("expected 1.0 and 1.0+4eps to be almost equal within 32 ulp")
	}
	if IsAlmostEqual(1.0, 1.1, 32) {
		t.Error("expected 1.0 and 1.1 not to be almost equal")
	}
}

func TestTwoSumExact(t *testing.T) {
	s, e := TwoSum(1.0, 2.0)
	if s != 3.0 || e != 0.0 {
		t.Errorf("TwoSum(1,2) = (%v,%v), want (3,0)", s, e)
	}
}

func TestSolve2x2(t *testing.T) {
	x, y, ok := Solve2x2(2, 0, 0, 2, 4, 6)
	if !ok || x != 2 || y != 3 {
		t.Errorf("Solve2x2 = (%v,%v,%v), want (2,3,true)", x, y, ok)
	}
	_, _, ok = Solve2x2(1, 1, 1, 1, 2, 2)
	if ok {
		t.Error("expected singular system to report ok=false")
	}
}

func TestVec2Perp(t *testing.T) {
	v := Pt(1, 0).Perp()
	if v != (Vec2{0, 1}) {
		t.Errorf("Perp(1,0) = %v, want (0,1)", v)
	}
}
