// Package curveanalysis computes the differential-geometric quantities
// the stroking pipeline needs from a Bezier segment: arc length (via
// Gauss-Legendre quadrature, plus a sampled arc-length table for
// near-arc-length reparameterization), radius and center of curvature,
// tangent direction, and the parameter values where a cubic has an
// inflection, a double point, a monotonicity extremum, or an
// offset/evolute cusp. Grounded on the quadrature tables described in
// SPEC_FULL.md's curve-analysis layer.
package curveanalysis

import (
	"github.com/gogpu/strokefill/internal/bezier"
	"github.com/gogpu/strokefill/internal/geom"
)

// gaussLegendre8 holds the abscissae and weights of the 8-point
// Gauss-Legendre quadrature rule on [-1,1], accurate to machine
// precision for the low-degree polynomials (≤ degree 6 in t after the
// derivative's dot product) arc length integration needs.
var gaussLegendre8 = []struct{ x, w float64 }{
	{-0.1834346424956498, 0.3626837833783620},
	{0.1834346424956498, 0.3626837833783620},
	{-0.5255324099163290, 0.3137066458778873},
	{0.5255324099163290, 0.3137066458778873},
	{-0.7966664774136267, 0.2223810344533745},
	{0.7966664774136267, 0.2223810344533745},
	{-0.9602898564975363, 0.1012285362903763},
	{0.9602898564975363, 0.1012285362903763},
}

// integrate approximates the integral of f over [a,b] using the fixed
// 8-point Gauss-Legendre rule.
func integrate(f func(t float64) float64, a, b float64) float64 {
	mid := 0.5 * (a + b)
	half := 0.5 * (b - a)
	var sum float64
	for _, node := range gaussLegendre8 {
		sum += node.w * f(mid+half*node.x)
	}
	return sum * half
}

// SpeedFunc returns |c'(t)| for the given Bezier.
func SpeedFunc(c bezier.Poly[geom.Vec2]) func(t float64) float64 {
	d := c.Derivative()
	return func(t float64) float64 {
		return d.EvaluateHorner(t).Len()
	}
}

// ArcLength returns the arc length of c restricted to [a,b] via
// Gauss-Legendre quadrature of the speed function.
func ArcLength(c bezier.Poly[geom.Vec2], a, b float64) float64 {
	return integrate(SpeedFunc(c), a, b)
}

// Reparam is a monotone near-arc-length reparameterization of a
// segment: cumulative arc length is sampled by quadrature at uniformly
// spaced parameters and inverted by piecewise-linear interpolation
// between the samples. It is a lookup table only; no rational
// reparameterizing map is constructed.
type Reparam struct {
	ts       []float64
	lengths  []float64
	total    float64
}

// NewReparam builds a reparameterization table for c over [0,1] using
// samples uniform parameter subintervals (a typical choice is 16-64
// subdivisions; more samples tighten the piecewise-linear inversion
// error at the cost of more quadrature evaluations).
func NewReparam(c bezier.Poly[geom.Vec2], samples int) *Reparam {
	if samples < 2 {
		samples = 2
	}
	ts := make([]float64, samples+1)
	lengths := make([]float64, samples+1)
	speed := SpeedFunc(c)
	step := 1.0 / float64(samples)
	var acc float64
	for i := 0; i <= samples; i++ {
		ts[i] = float64(i) * step
		if i > 0 {
			acc += integrate(speed, ts[i-1], ts[i])
		}
		lengths[i] = acc
	}
	return &Reparam{ts: ts, lengths: lengths, total: acc}
}

// TotalLength returns the full arc length of the segment.
func (r *Reparam) TotalLength() float64 { return r.total }

// GetAbsoluteParameter returns the parameter t at which the cumulative
// arc length from 0 equals s (clamped to [0, TotalLength()]).
func (r *Reparam) GetAbsoluteParameter(s float64) float64 {
	if s <= 0 {
		return 0
	}
	if s >= r.total {
		return 1
	}
	// Binary search the bracketing sample, then interpolate linearly —
	// sufficiently accurate given the sample density NewReparam uses,
	// matching the table's role as a cheap near-arc-length inverse
	// rather than an exact one.
	lo, hi := 0, len(r.lengths)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if r.lengths[mid] < s {
			lo = mid
		} else {
			hi = mid
		}
	}
	s0, s1 := r.lengths[lo], r.lengths[hi]
	t0, t1 := r.ts[lo], r.ts[hi]
	if s1 <= s0 {
		return t0
	}
	frac := (s - s0) / (s1 - s0)
	return t0 + frac*(t1-t0)
}

// GetRelativeParameterForLengthFraction returns the parameter at which
// fraction (in [0,1]) of the segment's total arc length has
// accumulated.
func (r *Reparam) GetRelativeParameterForLengthFraction(fraction float64) float64 {
	return r.GetAbsoluteParameter(fraction * r.total)
}

// ArcLengthTo returns the cumulative arc length from 0 to t.
func (r *Reparam) ArcLengthTo(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return r.total
	}
	lo, hi := 0, len(r.ts)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if r.ts[mid] < t {
			lo = mid
		} else {
			hi = mid
		}
	}
	t0, t1 := r.ts[lo], r.ts[hi]
	s0, s1 := r.lengths[lo], r.lengths[hi]
	if t1 <= t0 {
		return s0
	}
	frac := (t - t0) / (t1 - t0)
	return s0 + frac*(s1-s0)
}
