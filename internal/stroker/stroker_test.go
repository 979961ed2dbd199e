package stroker

import (
	"math"
	"testing"

	"github.com/gogpu/strokefill/internal/geom"
	"github.com/gogpu/strokefill/internal/pathevent"
)

func lineSegment(x0, y0, x1, y1 float64) pathevent.Segment {
	return pathevent.Segment{Shape: pathevent.ShapeLinear, P0: geom.Pt(x0, y0), P2: geom.Pt(x1, y1)}
}

func squareContour(side float64) InputContour {
	return InputContour{
		Closed: true,
		Segments: []pathevent.Segment{
			lineSegment(0, 0, side, 0),
			lineSegment(side, 0, side, side),
			lineSegment(side, side, 0, side),
			lineSegment(0, side, 0, 0),
		},
	}
}

func testStyle() Style {
	return Style{
		Width:      2,
		Join:       JoinBevel,
		InnerJoin:  InnerJoinBevel,
		MiterLimit: 4,
	}
}

func TestToRegularPathLinearSegmentIsOnePiece(t *testing.T) {
	c := InputContour{Segments: []pathevent.Segment{lineSegment(0, 0, 10, 0)}}
	rc := ToRegularPath(c, 1, DefaultTolerance())

	pieces := 0
	for _, item := range rc.Items {
		if item.Kind == ItemPiece {
			pieces++
			if item.Piece.Ti != 0 || item.Piece.Tf != 1 {
				t.Errorf("expected single piece covering [0,1], got [%v,%v]", item.Piece.Ti, item.Piece.Tf)
			}
		}
	}
	if pieces != 1 {
		t.Fatalf("expected 1 regular piece for a straight line, got %d", pieces)
	}
}

func TestOrientLeavesCCWSquareUnchanged(t *testing.T) {
	c := squareContour(4)
	rc := ToRegularPath(c, 0.5, DefaultTolerance())
	if signedArea(rc) <= 0 {
		t.Fatalf("expected the square contour as built to have positive signed area, got %v", signedArea(rc))
	}
	oriented := Orient(rc)
	if signedArea(oriented) <= 0 {
		t.Fatalf("Orient should not flip an already-CCW contour")
	}
	if oriented.P0 != rc.P0 {
		t.Errorf("Orient changed P0 of an already-CCW contour: got %v want %v", oriented.P0, rc.P0)
	}
}

func TestOrientReversesCWSquare(t *testing.T) {
	cw := InputContour{
		Closed: true,
		Segments: []pathevent.Segment{
			lineSegment(0, 0, 0, 4),
			lineSegment(0, 4, 4, 4),
			lineSegment(4, 4, 4, 0),
			lineSegment(4, 0, 0, 0),
		},
	}
	rc := ToRegularPath(cw, 0.5, DefaultTolerance())
	if signedArea(rc) >= 0 {
		t.Fatalf("expected the CW square as built to have negative signed area, got %v", signedArea(rc))
	}
	oriented := Orient(rc)
	if signedArea(oriented) < 0 {
		t.Fatalf("Orient should flip a CW contour to positive area, got %v", signedArea(oriented))
	}
}

func TestApproximateOffsetOfLineStaysOnOffsetLine(t *testing.T) {
	piece := RegularPiece{
		Seg:    lineSegment(0, 0, 10, 0),
		Ti:     0,
		Tf:     1,
		DStart: geom.Pt(1, 0),
		DEnd:   geom.Pt(1, 0),
	}
	segs := ApproximateOffset(piece, 1, DefaultTolerance())
	if len(segs) == 0 {
		t.Fatal("expected at least one approximated segment")
	}
	for _, seg := range segs {
		for _, p := range []geom.Vec2{seg.P0, seg.P3} {
			if math.Abs(p.Y-1) > 1e-6 {
				t.Errorf("expected offset-by-1 line to stay at y=1, got y=%v", p.Y)
			}
		}
	}
}

func TestForwardAndBackwardClosedContourProducesTwoFills(t *testing.T) {
	c := squareContour(4)
	rc := Orient(ToRegularPath(c, testStyle().HalfWidth(), DefaultTolerance()))
	fills := ForwardAndBackward(rc, testStyle(), DefaultTolerance())
	if len(fills) != 2 {
		t.Fatalf("expected 2 fill contours (outer+inner) for a closed input contour, got %d", len(fills))
	}
	for i, fc := range fills {
		if len(fc.Segments) == 0 {
			t.Errorf("fill contour %d has no segments", i)
		}
	}
}

func TestForwardAndBackwardOpenContourProducesOneFill(t *testing.T) {
	c := InputContour{Segments: []pathevent.Segment{lineSegment(0, 0, 10, 0)}}
	style := testStyle().WithCapsForTest(CapButt)
	rc := Orient(ToRegularPath(c, style.HalfWidth(), DefaultTolerance()))
	fills := ForwardAndBackward(rc, style, DefaultTolerance())
	if len(fills) != 1 {
		t.Fatalf("expected 1 combined fill contour for an open input contour, got %d", len(fills))
	}
	if len(fills[0].Segments) == 0 {
		t.Fatal("expected the combined fill contour to have segments")
	}
}

func (s Style) WithCapsForTest(c Cap) Style {
	s.InitialCap = c
	s.TerminalCap = c
	return s
}

func TestApplyDashSplitsLineIntoPieces(t *testing.T) {
	c := InputContour{Segments: []pathevent.Segment{lineSegment(0, 0, 10, 0)}}
	pieces := ApplyDash(c, []float64{3, 2}, 0, 16)
	if len(pieces) != 2 {
		t.Fatalf("expected 2 dash pieces over a length-10 line with pattern [3,2], got %d", len(pieces))
	}
	for _, p := range pieces {
		if p.Closed {
			t.Error("dash pieces must be open")
		}
		if len(p.Segments) == 0 {
			t.Error("dash piece has no segments")
		}
	}
}

func TestApplyDashNoPatternReturnsWholeContour(t *testing.T) {
	c := InputContour{Segments: []pathevent.Segment{lineSegment(0, 0, 10, 0)}}
	pieces := ApplyDash(c, nil, 0, 16)
	if len(pieces) != 1 {
		t.Fatalf("expected the contour unchanged when no dash pattern is given, got %d pieces", len(pieces))
	}
}

func TestDashIntervalsAlternate(t *testing.T) {
	ivs := dashIntervals(10, []float64{3, 2}, 0)
	want := []dashInterval{{0, 3}, {5, 8}}
	if len(ivs) != len(want) {
		t.Fatalf("expected %d intervals, got %d: %v", len(want), len(ivs), ivs)
	}
	for i, iv := range ivs {
		if math.Abs(iv.start-want[i].start) > 1e-9 || math.Abs(iv.end-want[i].end) > 1e-9 {
			t.Errorf("interval %d: got %v, want %v", i, iv, want[i])
		}
	}
}

func TestReverseSegmentOfLine(t *testing.T) {
	seg := lineSegment(0, 0, 10, 5)
	rev := reverseSegment(seg)
	if rev.P0 != seg.P2 || rev.P2 != seg.P0 {
		t.Errorf("reverseSegment did not swap endpoints: got P0=%v P2=%v", rev.P0, rev.P2)
	}
}

func TestSubSegmentOfLineCutsRange(t *testing.T) {
	seg := lineSegment(0, 0, 10, 0)
	sub := subSegment(seg, 0.25, 0.75)
	if math.Abs(sub.P0.X-2.5) > 1e-9 || math.Abs(sub.P2.X-7.5) > 1e-9 {
		t.Errorf("expected subSegment([0.25,0.75]) to span x=[2.5,7.5], got [%v,%v]", sub.P0.X, sub.P2.X)
	}
}
