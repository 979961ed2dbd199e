package geom

import "math"

// RatQuad is a rational quadratic Bezier: endpoints P0, P2 are affine
// points lifted to RP2 (w implicitly carried), P1 is the weighted middle
// control point in RP2.
type RatQuad struct {
	P0 Vec2
	P1 Vec3
	P2 Vec2
}

// CanonicalizeRationalQuadratic rescales a rational quadratic so both
// endpoint weights become 1, per spec.md §3's canonical form. Grounded
// on rvg-canonize-rational-quadratic-bezier.h: it requires w0*w2 > 0
// (both endpoint weights share a sign) and is a no-op when both weights
// already equal 1 (within ULP tolerance), matching SPEC_FULL.md's
// round-trip law that canonicalizing an already-canonical curve is a
// no-op.
//
// p0 and p2 are supplied in RP2 (w may differ from 1); the result's
// endpoints are returned in affine R2 since the canonical form pins
// their weight to 1.
func CanonicalizeRationalQuadratic(p0 Vec3, p1 Vec3, p2 Vec3) (RatQuad, bool) {
	if IsAlmostOne(p0.W, 32) && IsAlmostOne(p2.W, 32) {
		return RatQuad{P0: Vec2{p0.X, p0.Y}, P1: p1, P2: Vec2{p2.X, p2.Y}}, true
	}
	w0w2 := p0.W * p2.W
	if w0w2 <= 0 || IsAlmostZero(w0w2) {
		// Semantic impossibility (spec.md §7 category 4): rejected here
		// rather than asserted; caller downgrades to a line between the
		// exact endpoints.
		return RatQuad{}, false
	}
	iw0 := 1 / p0.W
	iw1 := 1 / math.Sqrt(w0w2)
	iw2 := 1 / p2.W
	return RatQuad{
		P0: Vec2{p0.X * iw0, p0.Y * iw0},
		P1: Vec3{p1.X * iw1, p1.Y * iw1, p1.W * iw1},
		P2: Vec2{p2.X * iw2, p2.Y * iw2},
	}, true
}

// Eval evaluates the canonical rational quadratic at parameter t using
// the rational De Casteljau recursion in homogeneous coordinates, then
// projects back to the affine plane.
func (r RatQuad) Eval(t float64) Vec2 {
	mt := 1 - t
	p0 := r.P0.ToRP2()
	p1 := r.P1
	p2 := r.P2.ToRP2()
	a := Vec3{
		X: mt*p0.X + t*p1.X,
		Y: mt*p0.Y + t*p1.Y,
		W: mt*p0.W + t*p1.W,
	}
	b := Vec3{
		X: mt*p1.X + t*p2.X,
		Y: mt*p1.Y + t*p2.Y,
		W: mt*p1.W + t*p2.W,
	}
	c := Vec3{
		X: mt*a.X + t*b.X,
		Y: mt*a.Y + t*b.Y,
		W: mt*a.W + t*b.W,
	}
	return c.Project()
}

// Weight returns the canonical middle weight w1.
func (r RatQuad) Weight() float64 { return r.P1.W }

// NRD is the rational numerator-of-derivative operator from spec.md
// §4.2.2: given a homogeneous point a=(u,v,w) and its derivative
// a'=(u',v',w'), returns (w*u' - u*w', w*v' - v*w') — the numerator of
// d/dt(a.Project()) before dividing by w^2.
func NRD(a, aPrime Vec3) Vec2 {
	return Vec2{
		X: a.W*aPrime.X - a.X*aPrime.W,
		Y: a.W*aPrime.Y - a.Y*aPrime.W,
	}
}
