package stroker

import (
	"math"

	"github.com/gogpu/strokefill/internal/geom"
	"github.com/gogpu/strokefill/internal/pathevent"
)

// outerJoinGeometry returns the segments connecting the offset
// endpoint of the incoming piece (at p, direction d0, already offset
// to from) to the offset start of the outgoing piece (direction d1,
// offset point to), on the outer side of a turn at vertex p with
// signed offset halfWidth (sign already applied by the caller: the
// outer side is where offsetSign*cross(d0,d1) < 0).
func outerJoinGeometry(join Join, miterLimit float64, p, d0, d1, from, to geom.Vec2, halfWidth float64) []pathevent.Segment {
	straight := []pathevent.Segment{{Shape: pathevent.ShapeLinear, P0: from, P2: to}}

	switch join {
	case JoinBevel:
		return straight
	case JoinRound:
		return arcCubics(p, math.Abs(halfWidth), from, to)
	case JoinMiterClip, JoinMiterOrBevel:
		mp, ok := miterPoint(p, d0, d1, from, to)
		if !ok {
			return straight
		}
		miterLen := mp.Sub(p).Len()
		limit := miterLimit * math.Abs(halfWidth)
		if miterLen <= limit {
			return []pathevent.Segment{
				{Shape: pathevent.ShapeLinear, P0: from, P2: mp},
				{Shape: pathevent.ShapeLinear, P0: mp, P2: to},
			}
		}
		if join == JoinMiterOrBevel {
			return straight
		}
		// Clip the miter tip to the limit distance along the bisector.
		dir := mp.Sub(p).Normalize()
		clipped := p.Add(dir.Mul(limit))
		return []pathevent.Segment{
			{Shape: pathevent.ShapeLinear, P0: from, P2: clipped},
			{Shape: pathevent.ShapeLinear, P0: clipped, P2: to},
		}
	}
	return straight
}

// miterPoint intersects the two offset lines (through from, direction
// d0; through to, direction d1) to find the miter tip.
func miterPoint(p, d0, d1, from, to geom.Vec2) (geom.Vec2, bool) {
	denom := d0.Cross(d1)
	if math.Abs(denom) < 1e-12 {
		return geom.Vec2{}, false
	}
	// from + t*d0 = to + u*d1
	diff := to.Sub(from)
	t := diff.Cross(d1) / denom
	return from.Add(d0.Mul(t)), true
}

// innerJoinGeometry returns the geometry on the inner side of a turn.
// A full inner join resolves self-intersection with the adjacent
// offset pieces via a replay buffer (see DESIGN.md's joins.go entry on
// the source's three-slot sink); this reduced form instead emits a
// direct connecting segment for InnerJoinBevel, or a circular-arc pivot
// for InnerJoinRound, relying on the downstream fill rule to resolve
// any resulting self-overlap (acceptable for a nonzero fill rule, which
// is what the rest of the pipeline assumes).
func innerJoinGeometry(inner InnerJoin, p, from, to geom.Vec2, halfWidth float64) []pathevent.Segment {
	switch inner {
	case InnerJoinRound:
		return arcCubics(p, math.Abs(halfWidth), from, to)
	default:
		return []pathevent.Segment{{Shape: pathevent.ShapeLinear, P0: from, P2: to}}
	}
}

// isOuterSide reports whether, for a pass offsetting by offsetSign*halfWidth,
// the turn from direction d0 to d1 at a vertex is on the outer
// (convex, join-geometry) side rather than the inner (self-intersecting) side.
func isOuterSide(offsetSign float64, d0, d1 geom.Vec2) bool {
	return offsetSign*d0.Cross(d1) < 0
}
