package curveanalysis

import (
	"math"

	"github.com/gogpu/strokefill/internal/bezier"
	"github.com/gogpu/strokefill/internal/geom"
)

// powerBasis converts a cubic's four Bezier control points to power
// basis coefficients C(t) = a*t^3 + b*t^2 + c*t + d.
func powerBasis(cubic bezier.Poly[geom.Vec2]) (a, b, c, d geom.Vec2) {
	p0, p1, p2, p3 := cubic[0], cubic[1], cubic[2], cubic[3]
	d = p0
	c = p1.Sub(p0).Mul(3)
	b = p0.Sub(p1.Mul(2)).Add(p2).Mul(3)
	a = p3.Sub(p2.Mul(3)).Add(p1.Mul(3)).Sub(p0)
	return
}

func solveQuadraticLocal(a, b, c float64) []float64 {
	if math.Abs(a) < 1e-14 {
		if math.Abs(b) < 1e-14 {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	return []float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)}
}

// Inflections returns the parameters in (0,1) at which a cubic's
// curvature changes sign, via the closed-form quadratic in the cubic's
// power-basis coefficients (Stone & DeRose's formula).
func Inflections(cubic bezier.Poly[geom.Vec2]) []float64 {
	if cubic.Degree() != 3 {
		return nil
	}
	a, b, c, _ := powerBasis(cubic)
	roots := solveQuadraticLocal(3*a.Cross(b), 3*a.Cross(c), b.Cross(c))
	return filterUnit(roots)
}

// DoublePoints returns the pair of parameters (t1 < t2) in (0,1) at
// which a cubic self-intersects, or nil if it does not. With the cubic
// in power basis a*t^3+b*t^2+c*t+d, s=t1+t2 and p=t1*t2, dividing
// C(t1)-C(t2)=0 by t1-t2 gives a*(s^2-p)+b*s+c=0 in each coordinate;
// eliminating s^2-p between the x and y equations leaves s linear, and
// p follows from either equation. t1,t2 are then the two roots of
// T^2 - s*T + p = 0.
func DoublePoints(cubic bezier.Poly[geom.Vec2]) []float64 {
	if cubic.Degree() != 3 {
		return nil
	}
	a, b, c, _ := powerBasis(cubic)
	denom := a.Y*b.X - a.X*b.Y
	if geom.IsAlmostZero(denom) {
		return nil
	}
	s := (a.X*c.Y - a.Y*c.X) / denom
	var p float64
	if math.Abs(a.X) > math.Abs(a.Y) {
		p = s*s + (b.X*s+c.X)/a.X
	} else {
		p = s*s + (b.Y*s+c.Y)/a.Y
	}
	disc := s*s - 4*p
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	t1, t2 := (s-sq)/2, (s+sq)/2
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	const eps = 1e-9
	if t1 < eps || t2 > 1-eps || t2-t1 < eps {
		return nil
	}
	return []float64{t1, t2}
}

func filterUnit(roots []float64) []float64 {
	var out []float64
	for _, r := range roots {
		if r > 1e-9 && r < 1-1e-9 {
			out = append(out, r)
		}
	}
	return out
}

// MonotonicExtrema returns the parameters in (0,1) where the curve's x
// or y component is extremal (derivative component vanishes), the
// root_dx_parameter / root_dy_parameter events of spec.md §3.
func MonotonicExtrema(c bezier.Poly[geom.Vec2]) []float64 {
	d := c.Derivative()
	if len(d) == 0 {
		return nil
	}
	dx := make(bezier.ScalarPoly, len(d))
	dy := make(bezier.ScalarPoly, len(d))
	for i, v := range d {
		dx[i], dy[i] = v.X, v.Y
	}
	var out []float64
	for _, root := range dx.Roots(0, 1, 0) {
		if root > 1e-9 && root < 1-1e-9 {
			out = append(out, root)
		}
	}
	for _, root := range dy.Roots(0, 1, 0) {
		if root > 1e-9 && root < 1-1e-9 {
			out = append(out, root)
		}
	}
	return out
}

// sampleAndBracket finds sign-change brackets of f over a fixed sample
// grid on [0,1], then refines each bracket by bisection. Used for
// offset/evolute cusp detection where the governing equation involves
// |c'(t)|^3 and is not itself polynomial.
func sampleAndBracket(f func(t float64) float64, samples int) []float64 {
	if samples < 2 {
		samples = 2
	}
	var roots []float64
	step := 1.0 / float64(samples)
	prevT := 0.0
	prevV := f(0)
	for i := 1; i <= samples; i++ {
		t := float64(i) * step
		v := f(t)
		if prevV == 0 {
			roots = append(roots, prevT)
		} else if (prevV < 0) != (v < 0) {
			if r, ok := bisect(f, prevT, t); ok {
				roots = append(roots, r)
			}
		}
		prevT, prevV = t, v
	}
	return roots
}

func bisect(f func(t float64) float64, lo, hi float64) (float64, bool) {
	flo := f(lo)
	fhi := f(hi)
	if (flo < 0) == (fhi < 0) {
		return 0, false
	}
	for i := 0; i < 60; i++ {
		mid := 0.5 * (lo + hi)
		fm := f(mid)
		if fm == 0 || (hi-lo) < 1e-14 {
			return mid, true
		}
		if (fm < 0) == (flo < 0) {
			lo, flo = mid, fm
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi), true
}

// OffsetCuspParameters returns parameters where the offset curve at the
// given signed offset distance has a cusp: 1 + offset*curvature(t) = 0.
func OffsetCuspParameters(c bezier.Poly[geom.Vec2], offset float64) []float64 {
	f := func(t float64) float64 {
		return 1 + offset*SignedCurvature(c, t)
	}
	return sampleAndBracket(f, 32)
}

// EvoluteCuspParameters returns parameters where the evolute (locus of
// centers of curvature) has a cusp: where the radius of curvature's
// derivative changes sign, i.e. dκ/dt = 0 restricted to extrema that
// flip the offset/evolute mode classification. In practice this
// coincides with curvature extrema, found the same way as offset cusps
// but against the derivative of curvature.
func EvoluteCuspParameters(c bezier.Poly[geom.Vec2]) []float64 {
	const h = 1e-4
	f := func(t float64) float64 {
		lo, hi := t-h, t+h
		if lo < 0 {
			lo = 0
		}
		if hi > 1 {
			hi = 1
		}
		if hi-lo < 1e-9 {
			return 0
		}
		return (SignedCurvature(c, hi) - SignedCurvature(c, lo)) / (hi - lo)
	}
	return sampleAndBracket(f, 32)
}

// JoinParameter finds the parameter on c nearest the point where the
// normal line through vertex p (in direction perp(d)) at the given
// radius intersects c; used by the inner-join covering predicate
// (§4.6) and join-simplification's join_vertex_parameter event. Found
// by minimizing |c(t) - (p + perp(d)*radius)| via sampling plus
// bisection on the derivative of squared distance.
func JoinParameter(c bezier.Poly[geom.Vec2], p, d geom.Vec2, radius float64) (float64, bool) {
	target := p.Add(d.Perp().Normalize().Mul(radius))
	g := func(t float64) float64 {
		diff := c.EvaluateHorner(t).Sub(target)
		tan := Tangent(c, t)
		return diff.Dot(tan)
	}
	roots := sampleAndBracket(g, 32)
	if len(roots) == 0 {
		return 0, false
	}
	best := roots[0]
	bestDist := c.EvaluateHorner(best).Sub(target).LenSq()
	for _, r := range roots[1:] {
		dist := c.EvaluateHorner(r).Sub(target).LenSq()
		if dist < bestDist {
			best, bestDist = r, dist
		}
	}
	return best, true
}
