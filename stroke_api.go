package strokefill

import (
	"github.com/gogpu/strokefill/internal/geom"
	"github.com/gogpu/strokefill/internal/pathevent"
	"github.com/gogpu/strokefill/internal/stroker"
)

// Stroke converts path into its fill outline under style, accurate to
// the given tolerance: a new Path whose interior, filled with the
// nonzero winding rule, coincides with the region a pen of width
// style.Width would cover tracing path. The result has no overlapping
// subpaths removed; composing it with other fills is the caller's
// responsibility.
func Stroke(path *Path, style Style, tol Tolerance) *Path {
	contours := toInputContours(path)
	internal := tol.toInternal()
	internalStyle := toInternalStyle(style)

	var fills []stroker.FillContour
	if style.IsDashed() {
		dashStyle := internalStyle
		dashStyle.InitialCap = stroker.Cap(style.DashInitialCap)
		dashStyle.TerminalCap = stroker.Cap(style.DashTerminalCap)
		for _, c := range contours {
			pieces := stroker.ApplyDash(c, style.Dash.Array, style.Dash.NormalizedOffset(), internal.ArcLengthSamples)
			if len(pieces) == 0 {
				continue
			}
			fills = append(fills, stroker.Stroke(pieces, dashStyle, internal)...)
		}
	} else {
		fills = stroker.Stroke(contours, internalStyle, internal)
	}

	Logger().Debug("strokefill: stroked path", "contours", len(contours), "fills", len(fills))
	return fromFillContours(fills)
}

// StrokeTransformed transforms path by m, scales style's width and dash
// lengths by m's maximum scale factor, and strokes the result. This is
// the order stroking under a non-uniform transform requires: stroke the
// already-transformed path, with the width compensated for however much
// the transform stretched the plane, rather than stroking first and
// transforming the fill outline afterward (which would distort the
// cross-section of curved segments).
func StrokeTransformed(path *Path, m Matrix, style Style, tol Tolerance) *Path {
	return Stroke(path.Transform(m), style.ScaledBy(m.MaxScaleFactor()), tol)
}

func toInternalStyle(s Style) stroker.Style {
	out := stroker.Style{
		Width:               s.Width,
		Join:                stroker.Join(s.Join),
		InnerJoin:           stroker.InnerJoin(s.InnerJoin),
		MiterLimit:          s.MiterLimit,
		InitialCap:          stroker.Cap(s.InitialCap),
		TerminalCap:         stroker.Cap(s.TerminalCap),
		DashInitialCap:      stroker.Cap(s.DashInitialCap),
		DashTerminalCap:     stroker.Cap(s.DashTerminalCap),
		DashResetsOnContour: s.DashResetsOnContour,
	}
	if s.Dash != nil {
		out.DashLengths = s.Dash.Array
		out.DashPhase = s.Dash.NormalizedOffset()
	}
	return out
}

// toInputContours splits path at each MoveTo/Close into an
// InputContour, converting every element into a pathevent.Segment. A
// dangling current point with no terminating Close is emitted open.
func toInputContours(path *Path) []stroker.InputContour {
	var out []stroker.InputContour
	var cur stroker.InputContour
	var start, current geom.Vec2
	open := false

	flush := func(closed bool) {
		if len(cur.Segments) == 0 {
			cur = stroker.InputContour{}
			return
		}
		cur.Closed = closed
		out = append(out, cur)
		cur = stroker.InputContour{}
	}

	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			if open {
				flush(false)
			}
			start = toVec2(e.Point)
			current = start
			open = true
		case LineTo:
			p := toVec2(e.Point)
			cur.Segments = append(cur.Segments, pathevent.Segment{Shape: pathevent.ShapeLinear, P0: current, P2: p})
			current = p
		case QuadTo:
			ctrl := toVec2(e.Control)
			p := toVec2(e.Point)
			cur.Segments = append(cur.Segments, pathevent.Segment{Shape: pathevent.ShapeQuadratic, P0: current, P1: ctrl, P2: p})
			current = p
		case CubicTo:
			c1 := toVec2(e.Control1)
			c2 := toVec2(e.Control2)
			p := toVec2(e.Point)
			cur.Segments = append(cur.Segments, pathevent.Segment{Shape: pathevent.ShapeCubic, P0: current, P1: c1, P2: c2, P3: p})
			current = p
		case Close:
			if current != start {
				cur.Segments = append(cur.Segments, pathevent.Segment{Shape: pathevent.ShapeLinear, P0: current, P2: start})
			}
			current = start
			flush(true)
			open = false
		}
	}
	if open {
		flush(false)
	}
	return out
}

func toVec2(p Point) geom.Vec2 { return geom.Vec2{X: p.X, Y: p.Y} }

// fromFillContours materializes the stroker's fill contours as a
// public Path: every fill contour becomes one closed subpath.
func fromFillContours(fills []stroker.FillContour) *Path {
	out := NewPath()
	for _, fc := range fills {
		if len(fc.Segments) == 0 {
			continue
		}
		first := fc.Segments[0]
		out.MoveTo(first.P0.X, first.P0.Y)
		for _, seg := range fc.Segments {
			switch seg.Shape {
			case pathevent.ShapeLinear:
				out.LineTo(seg.P2.X, seg.P2.Y)
			case pathevent.ShapeQuadratic:
				out.QuadraticTo(seg.P1.X, seg.P1.Y, seg.P2.X, seg.P2.Y)
			case pathevent.ShapeCubic:
				out.CubicTo(seg.P1.X, seg.P1.Y, seg.P2.X, seg.P2.Y, seg.P3.X, seg.P3.Y)
			case pathevent.ShapeRationalQuadratic:
				// The public Path carries no rational-quadratic element;
				// flatten through its affine endpoint/control approximation.
				out.QuadraticTo(seg.P1R.X/seg.P1R.W, seg.P1R.Y/seg.P1R.W, seg.P2.X, seg.P2.Y)
			}
		}
		out.Close()
	}
	return out
}
