package stroker

import (
	"sort"

	"github.com/gogpu/strokefill/internal/bezier"
	"github.com/gogpu/strokefill/internal/curveanalysis"
	"github.com/gogpu/strokefill/internal/geom"
	"github.com/gogpu/strokefill/internal/pathevent"
)

// Tolerance bundles the numerical knobs the pipeline's regularity and
// approximation tests use, replacing the source's compile-time epsilon
// dispatch with runtime configuration. Zero value is invalid; use
// DefaultTolerance.
type Tolerance struct {
	// AngleTolerance (radians) is carried in the settings; no stage of
	// the pipeline reads it.
	AngleTolerance float64
	// MinSpeed is the smallest |c'(t)| treated as non-degenerate.
	MinSpeed float64
	// MinRadius is the smallest |radius of curvature| treated as
	// regular; tighter turns are split off as cusps.
	MinRadius float64
	// FlatnessTolerance bounds the maximum pointwise distance between
	// an offset/evolute approximation and the true analytic curve.
	FlatnessTolerance float64
	// MaxApproximationDepth bounds adaptive subdivision in the
	// offset/evolute approximator.
	MaxApproximationDepth int
	// ArcLengthSamples controls the density of the arc-length
	// reparameterization table used for dashing.
	ArcLengthSamples int
	// InnerCuspWeight is carried in the settings; no stage of the
	// pipeline reads it, and ToRegularPath gives every cusp item
	// weight 1.
	InnerCuspWeight float64
}

// DefaultTolerance returns the pipeline's default numerical settings.
func DefaultTolerance() Tolerance {
	return Tolerance{
		AngleTolerance:         0.5 * 3.14159265358979 / 180,
		MinSpeed:               1e-6,
		MinRadius:              1e-6,
		FlatnessTolerance:      0.01,
		MaxApproximationDepth:  12,
		ArcLengthSamples:       32,
		InnerCuspWeight:        0,
	}
}

// RegularPiece is a maximal sub-interval of one input segment on which
// the curve is regular: speed bounded away from zero, radius of
// curvature bounded away from zero, admitting a well-defined offset.
type RegularPiece struct {
	Seg    pathevent.Segment
	Ti, Tf float64
	DStart geom.Vec2 // unit tangent at Ti
	DEnd   geom.Vec2 // unit tangent at Tf
}

// ItemKind tags what a RegularItem holds.
type ItemKind int

const (
	ItemPiece ItemKind = iota
	ItemCusp
	ItemDegenerate
)

// RegularItem is one element of a regular contour's event sequence:
// either a regular piece, a cusp between two directions, or a
// degenerate (zero-length-direction) segment.
type RegularItem struct {
	Kind ItemKind

	Piece RegularPiece

	CuspD0, CuspD1 geom.Vec2
	CuspP          geom.Vec2
	CuspW          float64

	DegenPi, DegenD, DegenPf geom.Vec2
}

// RegularContour is a fully regularized, oriented contour: a start
// point/direction, a sequence of items, and an end point/direction.
type RegularContour struct {
	Closed bool
	P0     geom.Vec2
	D0     geom.Vec2
	Items  []RegularItem
	DN     geom.Vec2
	PN     geom.Vec2
}

func asVec2Poly(seg pathevent.Segment) (bezier.Poly[geom.Vec2], bool) {
	switch seg.Shape {
	case pathevent.ShapeLinear:
		return bezier.Poly[geom.Vec2]{seg.P0, seg.P2}, true
	case pathevent.ShapeQuadratic:
		return bezier.Poly[geom.Vec2]{seg.P0, seg.P1, seg.P2}, true
	case pathevent.ShapeCubic:
		return bezier.Poly[geom.Vec2]{seg.P0, seg.P1, seg.P2, seg.P3}, true
	default:
		return nil, false
	}
}

// segmentEndpoint evaluates the segment's affine position at t,
// handling the rational-quadratic shape via its own projective
// evaluator.
func segmentEndpoint(seg pathevent.Segment, t float64) geom.Vec2 {
	if seg.Shape == pathevent.ShapeRationalQuadratic {
		rq, ok := geom.CanonicalizeRationalQuadratic(seg.P0.ToRP2(), seg.P1R, seg.P2.ToRP2())
		if !ok {
			return seg.P0.Lerp(seg.P2, t)
		}
		return rq.Eval(t)
	}
	poly, ok := asVec2Poly(seg)
	if !ok {
		return seg.P0
	}
	return poly.EvaluateHorner(t)
}

func segmentTangent(seg pathevent.Segment, t float64) geom.Vec2 {
	if seg.Shape == pathevent.ShapeRationalQuadratic {
		const h = 1e-4
		lo, hi := t-h, t+h
		if lo < 0 {
			lo = 0
		}
		if hi > 1 {
			hi = 1
		}
		return segmentEndpoint(seg, hi).Sub(segmentEndpoint(seg, lo))
	}
	poly, ok := asVec2Poly(seg)
	if !ok || poly.Degree() == 0 {
		return geom.Vec2{}
	}
	return curveanalysis.Tangent(poly, t)
}

// mergeSortedParams merges and deduplicates (within eps) candidate
// split parameters for one segment, always including 0 and 1.
func mergeSortedParams(groups ...[]float64) []float64 {
	all := []float64{0, 1}
	for _, g := range groups {
		all = append(all, g...)
	}
	sort.Float64s(all)
	const eps = 1e-7
	out := all[:0:0]
	out = append(out, all[0])
	for _, v := range all[1:] {
		if v-out[len(out)-1] > eps {
			out = append(out, v)
		}
	}
	return out
}

// isRegularSegmentAt reports regularity for any supported segment
// shape at parameter t, generalizing curveanalysis.IsRegularAt (which
// is Poly[Vec2]-specific) to rational quadratics via finite
// differencing.
func isRegularSegmentAt(seg pathevent.Segment, t float64, tol Tolerance) bool {
	if seg.Shape == pathevent.ShapeRationalQuadratic {
		tan := segmentTangent(seg, t)
		return tan.Len() > tol.MinSpeed
	}
	poly, ok := asVec2Poly(seg)
	if !ok {
		return true
	}
	if poly.Degree() <= 1 {
		return poly.Derivative()[0].Len() > tol.MinSpeed
	}
	return curveanalysis.IsRegularAt(poly, t, tol.MinSpeed, tol.MinRadius)
}

// splitParameters returns the candidate parameters at which seg should
// be split before regularity classification: monotonicity extrema,
// inflections, double points, and offset/evolute cusps at the given
// signed offset.
func splitParameters(seg pathevent.Segment, offset float64) []float64 {
	poly, ok := asVec2Poly(seg)
	if !ok || poly.Degree() <= 1 {
		return []float64{0, 1}
	}
	mono := curveanalysis.MonotonicExtrema(poly)
	var infl, dbl []float64
	if poly.Degree() == 3 {
		infl = curveanalysis.Inflections(poly)
		dbl = curveanalysis.DoublePoints(poly)
	}
	offsetCusps := curveanalysis.OffsetCuspParameters(poly, offset)
	evoluteCusps := curveanalysis.EvoluteCuspParameters(poly)
	return mergeSortedParams(mono, infl, dbl, offsetCusps, evoluteCusps)
}

// ToRegularPath regularizes one input contour at the given signed
// offset (style.Width/2), splitting each segment at its candidate
// parameters and classifying each resulting sub-interval as a regular
// piece or a cusp/degenerate-segment pair.
func ToRegularPath(c InputContour, offset float64, tol Tolerance) RegularContour {
	var items []RegularItem
	var firstD, lastD geom.Vec2
	var firstP, lastP geom.Vec2
	haveFirst := false

	appendCusp := func(d0, d1, p geom.Vec2, w float64) {
		items = append(items, RegularItem{Kind: ItemCusp, CuspD0: d0, CuspD1: d1, CuspP: p, CuspW: w})
	}

	for _, seg := range c.Segments {
		params := splitParameters(seg, offset)
		for i := 0; i+1 < len(params); i++ {
			ti, tf := params[i], params[i+1]
			mid := 0.5 * (ti + tf)
			samples := []float64{ti + 0.1*(tf-ti), mid, tf - 0.1*(tf-ti)}
			regularVotes := 0
			for _, s := range samples {
				if isRegularSegmentAt(seg, s, tol) {
					regularVotes++
				}
			}
			pi := segmentEndpoint(seg, ti)
			pf := segmentEndpoint(seg, tf)
			di := segmentTangent(seg, ti).Normalize()
			df := segmentTangent(seg, tf).Normalize()

			if regularVotes >= 2 {
				piece := RegularItem{
					Kind: ItemPiece,
					Piece: RegularPiece{
						Seg: seg, Ti: ti, Tf: tf,
						DStart: di, DEnd: df,
					},
				}
				if !haveFirst {
					firstD, firstP, haveFirst = di, pi, true
				}
				if len(items) > 0 {
					prev := items[len(items)-1]
					prevEnd := itemEndDirection(prev)
					if prevEnd != (geom.Vec2{}) && !directionsClose(prevEnd, di) {
						appendCusp(prevEnd, di, pi, 1)
					}
				}
				items = append(items, piece)
				lastD, lastP = df, pf
			} else {
				d := di
				if d == (geom.Vec2{}) {
					d = df
				}
				items = append(items, RegularItem{
					Kind:    ItemDegenerate,
					DegenPi: pi, DegenD: d, DegenPf: pf,
				})
				if !haveFirst {
					firstD, firstP, haveFirst = geom.Vec2{}, pi, true
				}
				lastD, lastP = geom.Vec2{}, pf
			}
		}
	}

	return RegularContour{
		Closed: c.Closed,
		P0:     firstP,
		D0:     firstD,
		Items:  items,
		DN:     lastD,
		PN:     lastP,
	}
}

func itemEndDirection(item RegularItem) geom.Vec2 {
	switch item.Kind {
	case ItemPiece:
		return item.Piece.DEnd
	case ItemDegenerate:
		return item.DegenD
	default:
		return item.CuspD1
	}
}

func directionsClose(a, b geom.Vec2) bool {
	if a == (geom.Vec2{}) || b == (geom.Vec2{}) {
		return true
	}
	return a.Dot(b) > 1-1e-9
}
