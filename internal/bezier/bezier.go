// Package bezier implements the degree-generic Bernstein-form kernel:
// evaluation, blossoming, derivatives, subdivision, degree change,
// polynomial product, and root finding. Operations work on a control
// "polygon" of N+1 points for any N, mirroring spec.md §4.1's
// degree-generic contract; the teacher's fixed QuadBez/CubicBez types
// cover N=2,3 directly and this package generalizes the same recursions
// (De Casteljau, Horner, Extrema-by-derivative) to arbitrary N using
// slices instead of compile-time-sized tuples, per Design Notes §9's
// "const generic becomes a runtime-sized slice" translation.
package bezier

import (
	"github.com/gogpu/strokefill/internal/geom"
)

// P is the point type every kernel operation is generic over: R2 points
// for integral Beziers, R3/RP2 points for rational quadratics.
type P interface {
	geom.Vec2 | geom.Vec3
}

// Poly is a Bezier segment of degree len(Poly)-1 in Bernstein form.
type Poly[T P] []T

func add[T P](a, b T) T {
	switch av := any(a).(type) {
	case geom.Vec2:
		bv := any(b).(geom.Vec2)
		return any(av.Add(bv)).(T)
	case geom.Vec3:
		bv := any(b).(geom.Vec3)
		return any(av.Add(bv)).(T)
	}
	panic("unreachable")
}

func sub[T P](a, b T) T {
	switch av := any(a).(type) {
	case geom.Vec2:
		bv := any(b).(geom.Vec2)
		return any(av.Sub(bv)).(T)
	case geom.Vec3:
		bv := any(b).(geom.Vec3)
		return any(av.Sub(bv)).(T)
	}
	panic("unreachable")
}

func scale[T P](a T, s float64) T {
	switch av := any(a).(type) {
	case geom.Vec2:
		return any(av.Mul(s)).(T)
	case geom.Vec3:
		return any(av.Mul(s)).(T)
	}
	panic("unreachable")
}

func lerp[T P](a, b T, t float64) T {
	return add(scale(a, 1-t), scale(b, t))
}

// Degree returns N for a degree-N Bezier.
func (b Poly[T]) Degree() int { return len(b) - 1 }

// Derivative returns the degree-(N-1) hodograph N*(B[i+1]-B[i]).
func (b Poly[T]) Derivative() Poly[T] {
	n := float64(b.Degree())
	return b.Differences().scaleAll(n)
}

// Differences returns B[i+1]-B[i] without the N factor (spec.md §4.1).
func (b Poly[T]) Differences() Poly[T] {
	if len(b) < 2 {
		return nil
	}
	out := make(Poly[T], len(b)-1)
	for i := range out {
		out[i] = sub(b[i+1], b[i])
	}
	return out
}

func (b Poly[T]) scaleAll(s float64) Poly[T] {
	out := make(Poly[T], len(b))
	for i, p := range b {
		out[i] = scale(p, s)
	}
	return out
}

func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	result := 1.0
	for i := 0; i < k; i++ {
		result = result * float64(n-i) / float64(i+1)
	}
	return result
}

// EvaluateHorner evaluates B(t) in O(N) by incrementally maintaining
// p_k = p_{k-1}*u + B[k]*C(N,k)*t^k, spec.md §4.1's Horner scheme.
func (b Poly[T]) EvaluateHorner(t float64) T {
	return b.evaluateHornerTU(t, 1-t)
}

// evaluateHornerTU is the two-parameter form (t,u) used by blossom,
// where u need not equal 1-t.
func (b Poly[T]) evaluateHornerTU(t, u float64) T {
	n := b.Degree()
	p := b[0]
	tk := 1.0
	ck := float64(n)
	for k := 1; k <= n; k++ {
		tk *= t
		p = add(scale(p, u), scale(b[k], ck*tk))
		ck = ck * float64(n-k) / float64(k+1)
	}
	return p
}

// EvaluateDeCasteljau evaluates B(t) by repeated linear interpolation of
// the control polygon. Used as the cross-check for EvaluateHorner in
// spec.md §8's invariant 2.
func (b Poly[T]) EvaluateDeCasteljau(t float64) T {
	work := append(Poly[T]{}, b...)
	for n := len(work) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			work[i] = lerp(work[i], work[i+1], t)
		}
	}
	return work[0]
}

// Blossom performs one De Casteljau step with independent parameters
// (t,u) instead of (t,1-t), producing the degree N-1 polar form used by
// Split and Cut.
func (b Poly[T]) Blossom(t, u float64) Poly[T] {
	out := make(Poly[T], len(b)-1)
	for i := range out {
		out[i] = add(scale(b[i], u), scale(b[i+1], t))
	}
	return out
}

// blossomRepeated repeatedly blossoms at the pairs in ts until degree 0.
func blossomRepeated[T P](b Poly[T], ts [][2]float64) Poly[T] {
	cur := b
	for _, tu := range ts {
		cur = cur.Blossom(tu[0], tu[1])
	}
	return cur
}

// Split divides B into two halves at t, returning the control points of
// [0,t] and [t,1] respectively; both include the shared midpoint.
func (b Poly[T]) Split(t float64) (left, right Poly[T]) {
	u := 1 - t
	n := b.Degree()
	left = make(Poly[T], n+1)
	right = make(Poly[T], n+1)
	// The k-th control point of the left half is the blossom value at
	// (0^{n-k}, t^k); symmetric for the right half. We derive both via
	// repeated application of one De Casteljau pass, matching the
	// classic triangular scheme (same arithmetic as CubicBez.Subdivide
	// in the teacher package, generalized to degree N).
	tri := make([]Poly[T], n+1)
	tri[0] = append(Poly[T]{}, b...)
	for k := 1; k <= n; k++ {
		tri[k] = tri[k-1].Blossom(t, u)
	}
	for k := 0; k <= n; k++ {
		left[k] = tri[k][0]
		right[n-k] = tri[k][len(tri[k])-1]
	}
	return left, right
}

// Cut restricts B to the closed sub-interval [a,b] via blossoming,
// matching spec.md §4.1's cut(B,a,b) contract: cut(B,0,1) = B and
// evaluate(cut(B,a,b),t) = evaluate(B, a+(b-a)t).
func (b Poly[T]) Cut(a, c float64) Poly[T] {
	n := b.Degree()
	out := make(Poly[T], n+1)
	// out[k] = blossom of B at the multiset of k copies of c and (n-k)
	// copies of a.
	for k := 0; k <= n; k++ {
		cur := b
		for i := 0; i < n; i++ {
			var t, u float64
			if i < k {
				t, u = c, 1-c
			} else {
				t, u = a, 1-a
			}
			cur = cur.Blossom(t, u)
		}
		out[k] = cur[0]
	}
	return out
}

// Prefix returns Cut(B, 0, t).
func (b Poly[T]) Prefix(t float64) Poly[T] { return b.Cut(0, t) }

// Suffix returns Cut(B, t, 1).
func (b Poly[T]) Suffix(t float64) Poly[T] { return b.Cut(t, 1) }

// ElevateDegree raises B to degree N+1 with an identical curve, via
// R[i] = (i/(N+1))*B[i-1] + (1-i/(N+1))*B[i].
func (b Poly[T]) ElevateDegree() Poly[T] {
	n := b.Degree()
	out := make(Poly[T], n+2)
	nf := float64(n + 1)
	out[0] = b[0]
	out[n+1] = b[n]
	for i := 1; i <= n; i++ {
		a := float64(i) / nf
		out[i] = add(scale(b[i-1], a), scale(b[i], 1-a))
	}
	return out
}

// LowerDegree lowers B to degree N-1 using the recurrence
// R[i] = (N*B[i] - i*R[i-1]) / (N-i), spec.md §4.1. The caller must have
// already established B is exactly representable at the lower degree;
// this is not checked here (mirrors the source's contract).
func (b Poly[T]) LowerDegree() Poly[T] {
	n := b.Degree()
	out := make(Poly[T], n)
	out[0] = b[0]
	nf := float64(n)
	for i := 1; i < n; i++ {
		out[i] = scale(sub(scale(b[i], nf), scale(out[i-1], float64(i))), 1/(nf-float64(i)))
	}
	return out
}

// ScalarPoly is a Bernstein-form scalar polynomial, used by Product,
// Dot, and the cubic-parameter finders that reduce to scalar root
// finding.
type ScalarPoly []float64

// Product computes the Bernstein-form representation of the polynomial
// product P*Q using the formula in spec.md §4.1:
//
//	R[k] = sum_{i} P[i]*Q[k-i]*C(M,i)*C(N,k-i) / C(M+N,k)
func Product(p, q ScalarPoly) ScalarPoly {
	m, n := len(p)-1, len(q)-1
	out := make(ScalarPoly, m+n+1)
	for k := 0; k <= m+n; k++ {
		lo := 0
		if k-n > lo {
			lo = k - n
		}
		hi := m
		if k < hi {
			hi = k
		}
		ps := make([]float64, 0, hi-lo+1)
		qs := make([]float64, 0, hi-lo+1)
		for i := lo; i <= hi; i++ {
			ps = append(ps, p[i]*binomial(m, i))
			qs = append(qs, q[k-i]*binomial(n, k-i))
		}
		out[k] = geom.CompensatedDot(ps, qs) / binomial(m+n, k)
	}
	return out
}

// Dot returns the Bernstein-form scalar polynomial for P(t).Q(t) when P
// and Q are R2-valued: the product of x-components plus the product of
// y-components, each expanded via Product.
func Dot(p, q Poly[geom.Vec2]) ScalarPoly {
	px := make(ScalarPoly, len(p))
	py := make(ScalarPoly, len(p))
	for i, v := range p {
		px[i], py[i] = v.X, v.Y
	}
	qx := make(ScalarPoly, len(q))
	qy := make(ScalarPoly, len(q))
	for i, v := range q {
		qx[i], qy[i] = v.X, v.Y
	}
	x := Product(px, qx)
	y := Product(py, qy)
	out := make(ScalarPoly, len(x))
	for i := range out {
		out[i] = x[i] + y[i]
	}
	return out
}

// EvaluateHorner evaluates a scalar Bernstein polynomial at t.
func (p ScalarPoly) EvaluateHorner(t float64) float64 {
	return Poly[geom.Vec2]{}.evaluateHornerScalar(p, t)
}

func (Poly[T]) evaluateHornerScalar(p ScalarPoly, t float64) float64 {
	n := len(p) - 1
	u := 1 - t
	v := p[0]
	tk := 1.0
	ck := float64(n)
	for k := 1; k <= n; k++ {
		tk *= t
		v = v*u + p[k]*ck*tk
		ck = ck * float64(n-k) / float64(k+1)
	}
	return v
}

// Derivative of a scalar Bernstein polynomial.
func (p ScalarPoly) Derivative() ScalarPoly {
	n := len(p) - 1
	if n < 1 {
		return nil
	}
	out := make(ScalarPoly, n)
	for i := range out {
		out[i] = float64(n) * (p[i+1] - p[i])
	}
	return out
}

// Roots returns, for a scalar Bernstein polynomial restricted to [0,1],
// a sorted slice {a, r1, ..., rk, b} containing the bracket endpoints a
// and b and the roots of B(t) = z within the open interval (a,b), per
// spec.md §4.1's roots(B,a,b,z) contract. Implementation: recursively
// bracket monotone sub-intervals using the derivative's own roots, then
// refine each bracket by bisection/safe-Newton (RefineRoots).
func (p ScalarPoly) Roots(a, b, z float64) []float64 {
	shifted := make(ScalarPoly, len(p))
	copy(shifted, p)
	shifted[0] -= z
	for i := range shifted {
		shifted[i] = p[i] - z
	}
	breakpoints := monotonePartition(shifted, a, b)
	out := []float64{a}
	for i := 0; i+1 < len(breakpoints); i++ {
		lo, hi := breakpoints[i], breakpoints[i+1]
		if r, ok := RefineRoot(shifted, lo, hi); ok {
			out = append(out, r)
		}
	}
	out = append(out, b)
	return out
}

// monotonePartition returns a sorted list of parameters in [a,b]
// (including a and b) at which p's derivative vanishes, partitioning
// [a,b] into intervals on which p is monotone.
func monotonePartition(p ScalarPoly, a, b float64) []float64 {
	out := []float64{a}
	if len(p) <= 2 {
		out = append(out, b)
		return out
	}
	d := p.Derivative()
	inner := interiorRoots(d, a, b)
	out = append(out, inner...)
	out = append(out, b)
	return out
}

// interiorRoots finds the roots of p in (a,b) by recursively bracketing
// against the derivative's own monotone partition, bottoming out at
// linear/quadratic polynomials which are solved directly.
func interiorRoots(p ScalarPoly, a, b float64) []float64 {
	if len(p) == 0 {
		return nil
	}
	n := len(p) - 1
	if n == 0 {
		return nil
	}
	if n == 1 {
		// linear: p0*(1-t) + p1*t = 0
		denom := p[1] - p[0]
		if denom == 0 {
			return nil
		}
		t := -p[0] / denom
		if t > a && t < b {
			return []float64{t}
		}
		return nil
	}
	breakpoints := monotonePartition(p, a, b)
	var roots []float64
	for i := 0; i+1 < len(breakpoints); i++ {
		lo, hi := breakpoints[i], breakpoints[i+1]
		if r, ok := RefineRoot(p, lo, hi); ok && r > a && r < b {
			roots = append(roots, r)
		}
	}
	return roots
}

// RefineRoot brackets a single root of a monotone (on [lo,hi]) scalar
// Bernstein polynomial via bisection with an opportunistic safe-Newton
// step, matching the original's bisect.h + refine_roots combination
// (see SPEC_FULL.md's grounding note on rvg-bisect.h). Returns ok=false
// when p does not change sign on [lo,hi].
func RefineRoot(p ScalarPoly, lo, hi float64) (float64, bool) {
	flo := p.EvaluateHorner(lo)
	fhi := p.EvaluateHorner(hi)
	if flo == 0 {
		return lo, true
	}
	if fhi == 0 {
		return hi, true
	}
	if (flo < 0) == (fhi < 0) {
		return 0, false
	}
	d := p.Derivative()
	const maxIter = 60
	for i := 0; i < maxIter; i++ {
		mid := 0.5 * (lo + hi)
		// Attempt a safe-Newton step from mid; accept only if it stays
		// strictly inside the current bracket.
		fm := p.EvaluateHorner(mid)
		if fm == 0 || (hi-lo) < 1e-15 {
			return mid, true
		}
		if len(d) > 0 {
			fp := d.EvaluateHorner(mid)
			if fp != 0 {
				cand := mid - fm/fp
				if cand > lo && cand < hi {
					mid = cand
					fm = p.EvaluateHorner(mid)
				}
			}
		}
		if (fm < 0) == (flo < 0) {
			lo, flo = mid, fm
		} else {
			hi, fhi = mid, fm
		}
	}
	return 0.5 * (lo + hi), true
}

// HullMarchingRoots finds the roots of p-z in (a,b) by recursive
// midpoint subdivision: an interval whose endpoint values differ in sign
// is handed to RefineRoot, and an interval whose endpoints and midpoint
// all share one sign is dropped, so a pair of roots that the midpoint
// sample does not separate is not found. No chord-tangent or
// control-polygon hull test is made. Same return contract as Roots.
func (p ScalarPoly) HullMarchingRoots(a, b, z float64) []float64 {
	shifted := make(ScalarPoly, len(p))
	for i := range shifted {
		shifted[i] = p[i] - z
	}
	out := []float64{a}
	out = append(out, hullMarch(shifted, a, b)...)
	out = append(out, b)
	return out
}

func hullMarch(p ScalarPoly, lo, hi float64) []float64 {
	const maxDepth = 64
	var roots []float64
	var rec func(p ScalarPoly, lo, hi float64, depth int)
	rec = func(p ScalarPoly, lo, hi float64, depth int) {
		flo := p.EvaluateHorner(lo)
		fhi := p.EvaluateHorner(hi)
		if flo == 0 {
			roots = append(roots, lo)
			return
		}
		if (flo < 0) == (fhi < 0) {
			// Sample the midpoint once: if it differs in sign from the
			// endpoints (or is zero), search both halves; otherwise
			// drop the interval.
			if depth >= maxDepth {
				return
			}
			mid := 0.5 * (lo + hi)
			fm := p.EvaluateHorner(mid)
			if (fm < 0) == (flo < 0) && fm != 0 {
				return
			}
			rec(p, lo, mid, depth+1)
			rec(p, mid, hi, depth+1)
			return
		}
		if r, ok := RefineRoot(p, lo, hi); ok {
			roots = append(roots, r)
		}
	}
	rec(p, lo, hi, 0)
	return roots
}
