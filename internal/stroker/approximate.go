package stroker

import (
	"github.com/gogpu/strokefill/internal/geom"
	"github.com/gogpu/strokefill/internal/pathevent"
)

// offsetPointAt evaluates the offset curve of seg at parameter t: the
// input point displaced along the outward unit normal by the signed
// distance offset.
func offsetPointAt(seg pathevent.Segment, t, offset float64) geom.Vec2 {
	p := segmentEndpoint(seg, t)
	tan := segmentTangent(seg, t).Normalize()
	if tan == (geom.Vec2{}) {
		return p
	}
	return p.Add(tan.Perp().Mul(offset))
}

// fitCubicLeastSquares fits a cubic Bezier to samples (parameter,
// target-point pairs) with fixed endpoints p0,p3 and fixed tangent
// directions tan0 (outgoing from p0) and tan1 (incoming to p3),
// solving for the two scalar handle lengths by least squares — the
// Hoschek construction SPEC_FULL.md's approximator section names.
// Returns the two interior control points.
func fitCubicLeastSquares(p0, p3, tan0, tan1 geom.Vec2, samples []sample) (geom.Vec2, geom.Vec2) {
	tan0 = tan0.Normalize()
	tan1 = tan1.Normalize()
	// Q(t) - [(1-t)^3 p0 + 3t(1-t)^2*? ...] : parametrize
	// Q(t) = B0(t) p0 + B1(t) (p0+u*tan0) + B2(t) (p3+v*(-tan1)) + B3(t) p3
	// residual(t) = X(t) - [B0 p0 + B3 p3] - B1*u*tan0 - B2*v*(-tan1)
	// Solve normal equations for (u,v).
	var a11, a12, a22, b1, b2 float64
	for _, s := range samples {
		t := s.t
		mt := 1 - t
		b0 := mt * mt * mt
		b1c := 3 * t * mt * mt
		b2c := 3 * t * t * mt
		b3 := t * t * t
		base := p0.Mul(b0).Add(p3.Mul(b3))
		rx := s.p.Sub(base)
		// coefficients of u and v in each component
		cu := tan0.Mul(b1c)
		cv := tan1.Neg().Mul(b2c)
		a11 += cu.Dot(cu)
		a12 += cu.Dot(cv)
		a22 += cv.Dot(cv)
		b1 += cu.Dot(rx)
		b2 += cv.Dot(rx)
	}
	u, v, ok := geom.Solve2x2(a11, a12, a12, a22, b1, b2)
	if !ok || u < 0 {
		u = p0.Sub(p3).Len() / 3
	}
	if !ok || v < 0 {
		v = p0.Sub(p3).Len() / 3
	}
	p1 := p0.Add(tan0.Mul(u))
	p2 := p3.Add(tan1.Neg().Mul(v))
	return p1, p2
}

type sample struct {
	t float64
	p geom.Vec2
}

// ApproximateOffset fits a (possibly multi-segment, via adaptive
// subdivision) cubic Bezier chain to the offset curve of piece at the
// given signed offset, accurate to tol.FlatnessTolerance.
func ApproximateOffset(piece RegularPiece, offset float64, tol Tolerance) []pathevent.Segment {
	return approximateOffsetRange(piece.Seg, piece.Ti, piece.Tf, offset, tol, 0)
}

func approximateOffsetRange(seg pathevent.Segment, ti, tf, offset float64, tol Tolerance, depth int) []pathevent.Segment {
	p0 := offsetPointAt(seg, ti, offset)
	p3 := offsetPointAt(seg, tf, offset)
	tan0 := segmentTangent(seg, ti)
	tan1 := segmentTangent(seg, tf)
	if tan0 == (geom.Vec2{}) {
		tan0 = p3.Sub(p0)
	}
	if tan1 == (geom.Vec2{}) {
		tan1 = p3.Sub(p0)
	}

	samples := make([]sample, 3)
	params := []float64{0.25, 0.5, 0.75}
	for i, frac := range params {
		t := ti + frac*(tf-ti)
		samples[i] = sample{t: frac, p: offsetPointAt(seg, t, offset)}
	}

	p1, p2 := fitCubicLeastSquares(p0, p3, tan0, tan1, samples)

	maxErr := 0.0
	for _, frac := range []float64{0.2, 0.4, 0.6, 0.8} {
		t := ti + frac*(tf-ti)
		want := offsetPointAt(seg, t, offset)
		got := cubicEval(p0, p1, p2, p3, frac)
		if d := want.Sub(got).Len(); d > maxErr {
			maxErr = d
		}
	}

	if maxErr <= tol.FlatnessTolerance || depth >= tol.MaxApproximationDepth {
		return []pathevent.Segment{{
			Shape: pathevent.ShapeCubic,
			P0:    p0, P1: p1, P2: p2, P3: p3,
		}}
	}

	mid := 0.5 * (ti + tf)
	left := approximateOffsetRange(seg, ti, mid, offset, tol, depth+1)
	right := approximateOffsetRange(seg, mid, tf, offset, tol, depth+1)
	return append(left, right...)
}

func cubicEval(p0, p1, p2, p3 geom.Vec2, t float64) geom.Vec2 {
	mt := 1 - t
	b0 := mt * mt * mt
	b1 := 3 * t * mt * mt
	b2 := 3 * t * t * mt
	b3 := t * t * t
	return p0.Mul(b0).Add(p1.Mul(b1)).Add(p2.Mul(b2)).Add(p3.Mul(b3))
}
