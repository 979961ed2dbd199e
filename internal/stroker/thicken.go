package stroker

import (
	"github.com/gogpu/strokefill/internal/curveanalysis"
	"github.com/gogpu/strokefill/internal/geom"
	"github.com/gogpu/strokefill/internal/pathevent"
)

// pieceMode classifies a regular piece as offset-mode (the offset
// curve at the given signed distance stays regular) or evolute-mode
// (the offset distance exceeds the piece's radius of curvature
// somewhere inside the interval, so the true offset would self-fold;
// ToRegularPath already isolates offset-cusp parameters onto interval
// boundaries, so a majority vote of three interior samples is enough to
// classify the whole piece).
type pieceMode int

const (
	modeOffset pieceMode = iota
	modeEvolute
)

func classifyPiece(piece RegularPiece, offset float64) pieceMode {
	poly, ok := asVec2Poly(piece.Seg)
	if !ok || poly.Degree() <= 1 {
		return modeOffset
	}
	votesEvolute := 0
	samples := 3
	for i := 1; i <= samples; i++ {
		t := piece.Ti + (piece.Tf-piece.Ti)*float64(i)/float64(samples+1)
		k := curveanalysis.SignedCurvature(poly, t)
		if 1+offset*k < 0 {
			votesEvolute++
		}
	}
	if votesEvolute*2 > samples {
		return modeEvolute
	}
	return modeOffset
}

// emitPiece returns the fill-boundary segments for one regular piece at
// the given signed offset, dispatching to the offset approximator or
// the reduced evolute-mode construction.
func emitPiece(piece RegularPiece, offset float64, tol Tolerance) []pathevent.Segment {
	if classifyPiece(piece, offset) == modeOffset {
		return ApproximateOffset(piece, offset, tol)
	}
	return emitEvolute(piece, offset, tol)
}

// emitEvolute handles the case where the offset distance exceeds the
// piece's radius of curvature: rather than the true, self-folding
// offset curve, it returns two line segments, from the offset start
// point to the center of curvature at the piece's parameter midpoint
// and from there to the offset end point (a single line between the
// offset endpoints when that center is at infinity). The evolute curve
// itself is not traced (see DESIGN.md).
func emitEvolute(piece RegularPiece, offset float64, tol Tolerance) []pathevent.Segment {
	poly, ok := asVec2Poly(piece.Seg)
	if !ok {
		return ApproximateOffset(piece, offset, tol)
	}

	startOffset := offsetPointAt(piece.Seg, piece.Ti, offset)
	endOffset := offsetPointAt(piece.Seg, piece.Tf, offset)

	mid := 0.5 * (piece.Ti + piece.Tf)
	center, ok := curveanalysis.CenterOfCurvature(poly, mid)
	if !ok {
		return []pathevent.Segment{{Shape: pathevent.ShapeLinear, P0: startOffset, P2: endOffset}}
	}

	return []pathevent.Segment{
		{Shape: pathevent.ShapeLinear, P0: startOffset, P2: center},
		{Shape: pathevent.ShapeLinear, P0: center, P2: endOffset},
	}
}

// PassThicken walks one regularized, oriented contour and emits the
// fill-boundary chain for a single signed offset (style.HalfWidth() or
// its negative), classifying each vertex between consecutive pieces as
// an outer join (join geometry), an inner join (reduced covering
// geometry) or a straight connector across a degenerate segment. The
// result is an open chain from the contour's start to its end; the
// forward-and-backward driver is responsible for closing it into a
// fill contour.
func PassThicken(c RegularContour, offsetSign float64, style Style, tol Tolerance) []pathevent.Segment {
	halfWidth := style.HalfWidth()
	offset := offsetSign * halfWidth

	var out []pathevent.Segment
	var prevEnd geom.Vec2
	var prevDir geom.Vec2
	have := false

	appendSeg := func(segs ...pathevent.Segment) {
		out = append(out, segs...)
	}

	connect := func(d0, d1, p, from, to geom.Vec2) {
		appendSeg(connectJoin(offsetSign, style, offset, d0, d1, p, from, to)...)
	}

	for _, item := range c.Items {
		switch item.Kind {
		case ItemPiece:
			segs := emitPiece(item.Piece, offset, tol)
			if len(segs) == 0 {
				continue
			}
			start := segmentStart(segs[0])
			if have {
				connect(prevDir, item.Piece.DStart, item.Piece.Seg.P0, prevEnd, start)
			}
			appendSeg(segs...)
			prevEnd = segmentEnd(segs[len(segs)-1])
			prevDir = item.Piece.DEnd
			have = true
		case ItemDegenerate:
			p := offsetPointAtPoint(item.DegenPf, item.DegenD, offset)
			if have {
				appendSeg(pathevent.Segment{Shape: pathevent.ShapeLinear, P0: prevEnd, P2: p})
			}
			prevEnd = p
			prevDir = item.DegenD
			have = true
		case ItemCusp:
			to := offsetPointAtPoint(item.CuspP, item.CuspD1, offset)
			if have {
				connect(item.CuspD0, item.CuspD1, item.CuspP, prevEnd, to)
			}
			prevEnd = to
			prevDir = item.CuspD1
			have = true
		}
	}

	return out
}

// connectJoin returns the geometry bridging an offset-rail gap between
// from (end of the incoming piece's offset) and to (start of the
// outgoing piece's offset) at vertex p where the input directions turn
// from d0 to d1, choosing outer join or inner join geometry by which
// side of the turn this pass's offset sign lies on. Returns nil if the
// two points already coincide.
func connectJoin(offsetSign float64, style Style, offset float64, d0, d1, p, from, to geom.Vec2) []pathevent.Segment {
	if from == to {
		return nil
	}
	if isOuterSide(offsetSign, d0, d1) {
		return outerJoinGeometry(style.Join, style.MiterLimit, p, d0, d1, from, to, offset)
	}
	return innerJoinGeometry(style.InnerJoin, p, from, to, offset)
}

func segmentStart(seg pathevent.Segment) geom.Vec2 { return seg.P0 }
func segmentEnd(seg pathevent.Segment) geom.Vec2 {
	if seg.Shape == pathevent.ShapeLinear || seg.Shape == pathevent.ShapeQuadratic || seg.Shape == pathevent.ShapeRationalQuadratic {
		return seg.P2
	}
	return seg.P3
}

// offsetPointAtPoint displaces p along the outward normal of unit
// direction d by the signed distance offset, for use at cusps and
// degenerate segments where there is no underlying curve to evaluate.
func offsetPointAtPoint(p, d geom.Vec2, offset float64) geom.Vec2 {
	if d == (geom.Vec2{}) {
		return p
	}
	return p.Add(d.Normalize().Perp().Mul(offset))
}
