package stroker

import "github.com/gogpu/strokefill/internal/pathevent"

// reverseSegment returns seg traversed in the opposite direction,
// swapping its endpoints (and, for rational quadratics, leaving the
// homogeneous middle control point's weight unchanged since reversal
// of a projective curve only swaps its ends).
func reverseSegment(seg pathevent.Segment) pathevent.Segment {
	switch seg.Shape {
	case pathevent.ShapeLinear:
		return pathevent.Segment{Shape: pathevent.ShapeLinear, P0: seg.P2, P2: seg.P0}
	case pathevent.ShapeQuadratic:
		return pathevent.Segment{Shape: pathevent.ShapeQuadratic, P0: seg.P2, P1: seg.P1, P2: seg.P0}
	case pathevent.ShapeRationalQuadratic:
		return pathevent.Segment{Shape: pathevent.ShapeRationalQuadratic, P0: seg.P2, P1R: seg.P1R, P2: seg.P0}
	case pathevent.ShapeCubic:
		return pathevent.Segment{Shape: pathevent.ShapeCubic, P0: seg.P3, P1: seg.P2, P2: seg.P1, P3: seg.P0}
	}
	return seg
}

// subSegment restricts seg to the closed parameter interval [ti,tf].
func subSegment(seg pathevent.Segment, ti, tf float64) pathevent.Segment {
	switch seg.Shape {
	case pathevent.ShapeLinear:
		poly, _ := asVec2Poly(seg)
		cut := poly.Cut(ti, tf)
		return pathevent.Segment{Shape: pathevent.ShapeLinear, P0: cut[0], P2: cut[1]}
	case pathevent.ShapeQuadratic:
		poly, _ := asVec2Poly(seg)
		cut := poly.Cut(ti, tf)
		return pathevent.Segment{Shape: pathevent.ShapeQuadratic, P0: cut[0], P1: cut[1], P2: cut[2]}
	case pathevent.ShapeCubic:
		poly, _ := asVec2Poly(seg)
		cut := poly.Cut(ti, tf)
		return pathevent.Segment{Shape: pathevent.ShapeCubic, P0: cut[0], P1: cut[1], P2: cut[2], P3: cut[3]}
	case pathevent.ShapeRationalQuadratic:
		// A rational quadratic is returned whole and unchanged: the
		// [ti,tf] restriction is not applied to it, since a projective
		// Cut would require blossoming in RP2 (see DESIGN.md).
		return seg
	}
	return seg
}
