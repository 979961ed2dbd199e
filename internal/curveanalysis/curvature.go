package curveanalysis

import (
	"math"

	"github.com/gogpu/strokefill/internal/bezier"
	"github.com/gogpu/strokefill/internal/geom"
)

// Tangent returns the (not necessarily unit) derivative direction of c
// at t.
func Tangent(c bezier.Poly[geom.Vec2], t float64) geom.Vec2 {
	return c.Derivative().EvaluateHorner(t)
}

// UnitTangent returns the normalized derivative direction of c at t,
// falling back to the zero vector if the derivative vanishes (the
// degenerate case regularization is responsible for splitting off).
func UnitTangent(c bezier.Poly[geom.Vec2], t float64) geom.Vec2 {
	return Tangent(c, t).Normalize()
}

// SignedCurvature returns the scalar signed curvature
// cross(c', c'') / |c'|^3 at t. Positive curvature turns left (CCW).
func SignedCurvature(c bezier.Poly[geom.Vec2], t float64) float64 {
	d1 := c.Derivative()
	d2 := d1.Derivative()
	v1 := d1.EvaluateHorner(t)
	speed := v1.Len()
	if speed < 1e-300 {
		return 0
	}
	var v2 geom.Vec2
	if len(d2) > 0 {
		v2 = d2.EvaluateHorner(t)
	}
	return v1.Cross(v2) / (speed * speed * speed)
}

// RadiusOfCurvature returns the signed radius of curvature as an RP1
// projective scalar so that an inflection point (zero curvature) is
// represented exactly as an ideal point (infinite radius) rather than
// dividing by zero.
func RadiusOfCurvature(c bezier.Poly[geom.Vec2], t float64) geom.RP1 {
	d1 := c.Derivative()
	d2 := d1.Derivative()
	v1 := d1.EvaluateHorner(t)
	var v2 geom.Vec2
	if len(d2) > 0 {
		v2 = d2.EvaluateHorner(t)
	}
	speed := v1.Len()
	num := speed * speed * speed
	den := v1.Cross(v2)
	return geom.RP1{Num: num, Den: den}
}

// CenterOfCurvature returns the center of the osculating circle at t:
// the point on the inward normal at distance |radius|. ok is false when
// the radius is (numerically) infinite.
func CenterOfCurvature(c bezier.Poly[geom.Vec2], t float64) (geom.Vec2, bool) {
	r := RadiusOfCurvature(c, t)
	if r.IsIdeal() {
		return geom.Vec2{}, false
	}
	p := c.EvaluateHorner(t)
	tan := Tangent(c, t).Normalize()
	normal := tan.Perp()
	radius := r.Value()
	return p.Add(normal.Mul(radius)), true
}

// IsRegularAt reports whether t lies in a region where the curve is
// regular in spec.md §4.3's sense: the speed is bounded away from zero
// and the radius of curvature exceeds minRadius in absolute value.
func IsRegularAt(c bezier.Poly[geom.Vec2], t, minSpeed, minRadius float64) bool {
	speed := Tangent(c, t).Len()
	if speed < minSpeed {
		return false
	}
	r := RadiusOfCurvature(c, t)
	if r.IsIdeal() {
		return true
	}
	return math.Abs(r.Value()) > minRadius
}
