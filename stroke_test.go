package strokefill

import (
	"math"
	"testing"
)

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()
	if s.Width != 1.0 {
		t.Errorf("DefaultStyle().Width = %v, want 1.0", s.Width)
	}
	if s.Join != JoinRound || s.InnerJoin != InnerJoinRound {
		t.Errorf("DefaultStyle() joins = %v/%v, want round/round", s.Join, s.InnerJoin)
	}
	if s.IsDashed() {
		t.Error("DefaultStyle() should not be dashed")
	}
}

func TestStyleBuilders(t *testing.T) {
	s := DefaultStyle().WithWidth(4).WithJoin(JoinMiterOrBevel).WithCaps(CapRound)
	if s.Width != 4 || s.Join != JoinMiterOrBevel || s.InitialCap != CapRound || s.TerminalCap != CapRound {
		t.Errorf("builder chain produced unexpected style: %+v", s)
	}
}

func TestStrokeOpenLineProducesClosedRectangleLikeFill(t *testing.T) {
	path := NewPath()
	path.MoveTo(0, 0)
	path.LineTo(10, 0)

	out := Stroke(path, DefaultStyle().WithCaps(CapButt).WithWidth(2), DefaultTolerance())

	elems := out.Elements()
	if len(elems) == 0 {
		t.Fatal("Stroke of an open line produced an empty path")
	}
	if _, ok := elems[0].(MoveTo); !ok {
		t.Fatalf("expected path to start with MoveTo, got %T", elems[0])
	}
	foundClose := false
	for _, e := range elems {
		if _, ok := e.(Close); ok {
			foundClose = true
		}
	}
	if !foundClose {
		t.Error("expected the stroked output to close its fill contour")
	}
}

func TestStrokeClosedSquareProducesTwoSubpaths(t *testing.T) {
	path := NewPath()
	path.MoveTo(0, 0)
	path.LineTo(4, 0)
	path.LineTo(4, 4)
	path.LineTo(0, 4)
	path.Close()

	out := Stroke(path, DefaultStyle().WithWidth(1), DefaultTolerance())

	subpaths := 0
	for _, e := range out.Elements() {
		if _, ok := e.(MoveTo); ok {
			subpaths++
		}
	}
	if subpaths != 2 {
		t.Errorf("expected 2 subpaths (outer+inner) for a closed square stroke, got %d", subpaths)
	}
}

func TestStrokeDashedLineProducesMultipleSubpaths(t *testing.T) {
	path := NewPath()
	path.MoveTo(0, 0)
	path.LineTo(20, 0)

	style := DefaultStyle().WithWidth(2).WithDashPattern(3, 2).WithDashCaps(CapButt)
	out := Stroke(path, style, DefaultTolerance())

	subpaths := 0
	for _, e := range out.Elements() {
		if _, ok := e.(MoveTo); ok {
			subpaths++
		}
	}
	if subpaths < 2 {
		t.Errorf("expected multiple dash subpaths for a length-20 line with a [3,2] pattern, got %d", subpaths)
	}
}

func TestStrokeEmptyPathProducesEmptyFill(t *testing.T) {
	out := Stroke(NewPath(), DefaultStyle(), DefaultTolerance())
	if len(out.Elements()) != 0 {
		t.Errorf("expected stroking an empty path to produce an empty fill, got %d elements", len(out.Elements()))
	}
}

func TestToInputContoursSplitsOnMoveTo(t *testing.T) {
	path := NewPath()
	path.MoveTo(0, 0)
	path.LineTo(1, 0)
	path.MoveTo(5, 5)
	path.LineTo(6, 5)
	path.Close()

	contours := toInputContours(path)
	if len(contours) != 2 {
		t.Fatalf("expected 2 contours, got %d", len(contours))
	}
	if contours[0].Closed {
		t.Error("first contour should be open (no Close call)")
	}
	if !contours[1].Closed {
		t.Error("second contour should be closed")
	}
}

func TestDefaultToleranceFieldsArePositive(t *testing.T) {
	tol := DefaultTolerance()
	if tol.MinSpeed <= 0 || tol.MinRadius <= 0 || tol.FlatnessTolerance <= 0 {
		t.Errorf("DefaultTolerance produced non-positive fields: %+v", tol)
	}
	if tol.MaxApproximationDepth <= 0 {
		t.Errorf("DefaultTolerance().MaxApproximationDepth = %d, want > 0", tol.MaxApproximationDepth)
	}
}

func TestRoundAndSquareStylePresets(t *testing.T) {
	if RoundStyle().InitialCap != CapRound {
		t.Error("RoundStyle() should use round caps")
	}
	if SquareStyle().InitialCap != CapSquare || SquareStyle().Join != JoinMiterOrBevel {
		t.Error("SquareStyle() should use square caps and miter-or-bevel joins")
	}
}

func TestStyleScaledByAppliesToWidthAndDash(t *testing.T) {
	s := DefaultStyle().WithWidth(2).WithDashPattern(4, 2).ScaledBy(3)
	if s.Width != 6 {
		t.Errorf("ScaledBy(3).Width = %v, want 6", s.Width)
	}
	if math.Abs(s.Dash.PatternLength()-18) > 1e-9 {
		t.Errorf("ScaledBy(3).Dash.PatternLength() = %v, want 18", s.Dash.PatternLength())
	}
}

func TestStrokeTransformedCompensatesForScale(t *testing.T) {
	path := NewPath()
	path.MoveTo(0, 0)
	path.LineTo(10, 0)

	plain := Stroke(path, DefaultStyle().WithCaps(CapButt).WithWidth(2), DefaultTolerance())
	_, plainMax := plain.Bounds()

	scaled := StrokeTransformed(path, Scale(1, 5), DefaultStyle().WithCaps(CapButt).WithWidth(2), DefaultTolerance())
	_, scaledMax := scaled.Bounds()

	// Stroking at width 2 after a 5x vertical scale, with the width
	// compensated by MaxScaleFactor (5), should cover roughly 5x the
	// vertical extent of stroking the untransformed path at the same
	// width.
	if scaledMax.Y < 4*plainMax.Y {
		t.Errorf("StrokeTransformed under Scale(1,5) should scale the fill's vertical extent by ~5x, got plainY=%v scaledY=%v", plainMax.Y, scaledMax.Y)
	}
}

func TestDashedStylePreset(t *testing.T) {
	s := DashedStyle(4, 2)
	if !s.IsDashed() {
		t.Fatal("DashedStyle() should be dashed")
	}
	if math.Abs(s.Dash.PatternLength()-6) > 1e-9 {
		t.Errorf("DashedStyle(4,2).Dash.PatternLength() = %v, want 6", s.Dash.PatternLength())
	}
}
