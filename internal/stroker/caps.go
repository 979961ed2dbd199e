package stroker

import (
	"math"

	"github.com/gogpu/strokefill/internal/geom"
	"github.com/gogpu/strokefill/internal/pathevent"
)

// capGeometry returns the segments filling the gap between a contour's
// end at p (in the direction d, pointing out of the contour) and the
// matching point on the opposite offset rail, reached after turning
// through the cap. from is the point on this rail at the contour's
// very end (offset by +halfWidth), to is the corresponding point on
// the opposite rail (offset by -halfWidth); both already known to the
// caller (the forward-and-backward driver).
func capGeometry(cap Cap, from, to, p, d geom.Vec2, halfWidth float64) []pathevent.Segment {
	switch cap {
	case CapButt:
		return []pathevent.Segment{{Shape: pathevent.ShapeLinear, P0: from, P2: to}}
	case CapRound:
		return arcCubics(p, halfWidth, from, to)
	case CapSquare:
		ext := d.Mul(halfWidth)
		c1 := from.Add(ext)
		c2 := to.Add(ext)
		return []pathevent.Segment{
			{Shape: pathevent.ShapeLinear, P0: from, P2: c1},
			{Shape: pathevent.ShapeLinear, P0: c1, P2: c2},
			{Shape: pathevent.ShapeLinear, P0: c2, P2: to},
		}
	case CapTriangle:
		tip := p.Add(d.Mul(halfWidth))
		return []pathevent.Segment{
			{Shape: pathevent.ShapeLinear, P0: from, P2: tip},
			{Shape: pathevent.ShapeLinear, P0: tip, P2: to},
		}
	case CapFletching:
		ext := d.Mul(halfWidth * 0.6)
		indent := p.Add(d.Mul(halfWidth * 0.2))
		c1 := from.Add(ext)
		c2 := to.Add(ext)
		return []pathevent.Segment{
			{Shape: pathevent.ShapeLinear, P0: from, P2: c1},
			{Shape: pathevent.ShapeLinear, P0: c1, P2: indent},
			{Shape: pathevent.ShapeLinear, P0: indent, P2: c2},
			{Shape: pathevent.ShapeLinear, P0: c2, P2: to},
		}
	}
	return []pathevent.Segment{{Shape: pathevent.ShapeLinear, P0: from, P2: to}}
}

// arcCubics approximates the circular arc centered at c with radius r
// from point a to point b (both assumed to lie at distance r from c)
// with one cubic Bezier segment per 90-degree (or fewer) sweep, using
// the same handle-length formula as the public Path.Arc helper,
// alpha = sin(theta)*(sqrt(4+3*tan(theta/2)^2)-1)/3 for a sweep of
// theta — round caps and joins are geometrically circular arcs, and
// approximating them with cubics (rather than carrying a rational
// quadratic all the way to the public API) keeps the fill path in a
// single curve representation.
func arcCubics(c geom.Vec2, r float64, a, b geom.Vec2) []pathevent.Segment {
	da := a.Sub(c)
	db := b.Sub(c)
	angle1 := math.Atan2(da.Y, da.X)
	angle2 := math.Atan2(db.Y, db.X)
	for angle2 < angle1 {
		angle2 += 2 * math.Pi
	}
	const maxAngle = math.Pi / 2
	n := int(math.Ceil((angle2 - angle1) / maxAngle))
	if n < 1 {
		n = 1
	}
	step := (angle2 - angle1) / float64(n)

	segs := make([]pathevent.Segment, 0, n)
	for i := 0; i < n; i++ {
		a1 := angle1 + float64(i)*step
		a2 := a1 + step
		alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*math.Tan((a2-a1)/2)*math.Tan((a2-a1)/2)) - 1) / 3
		cos1, sin1 := math.Cos(a1), math.Sin(a1)
		cos2, sin2 := math.Cos(a2), math.Sin(a2)
		p1 := geom.Pt(c.X+r*cos1, c.Y+r*sin1)
		p2 := geom.Pt(c.X+r*cos2, c.Y+r*sin2)
		c1 := geom.Pt(p1.X-alpha*r*sin1, p1.Y+alpha*r*cos1)
		c2 := geom.Pt(p2.X+alpha*r*sin2, p2.Y-alpha*r*cos2)
		segs = append(segs, pathevent.Segment{Shape: pathevent.ShapeCubic, P0: p1, P1: c1, P2: c2, P3: p2})
	}
	return segs
}
