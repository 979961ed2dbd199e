package pathevent

import "github.com/gogpu/strokefill/internal/geom"

// SegmentShape tags which of the four curve families a piece belongs
// to, since a single Go interface method set is easier to dispatch on
// than one method per (shape, whole-vs-piece) combination for every
// downstream stage.
type SegmentShape int

const (
	ShapeLinear SegmentShape = iota
	ShapeQuadratic
	ShapeRationalQuadratic
	ShapeCubic
)

// Segment holds the control points of one segment in whichever fields
// its Shape uses; unused fields are zero. P1R is the RP2 middle control
// point for ShapeRationalQuadratic (P1 is ignored in that case).
type Segment struct {
	Shape SegmentShape
	P0    geom.Vec2
	P1    geom.Vec2
	P1R   geom.Vec3
	P2    geom.Vec2
	P3    geom.Vec2
}

// RegularSink receives regular_path events: a path already split at
// cusps, inflections, and monotonicity/curvature extrema so every
// piece is well-behaved for offsetting.
type RegularSink interface {
	BeginRegularContour(p, d geom.Vec2)
	EndRegularOpenContour(d, p geom.Vec2)
	EndRegularClosedContour(d, p geom.Vec2)
	DegenerateSegment(pi, d, pf geom.Vec2)
	Cusp(d0, p, d1 geom.Vec2, w float64)
	InnerCusp(d0, p, d1 geom.Vec2, w float64)
	BeginSegmentPiece(p, d geom.Vec2)
	EndSegmentPiece(d, p geom.Vec2)
	SegmentPiece(seg Segment, ti, tf float64)
}

// NopRegularSink satisfies RegularSink with no-ops.
type NopRegularSink struct{}

func (NopRegularSink) BeginRegularContour(p, d geom.Vec2)      {}
func (NopRegularSink) EndRegularOpenContour(d, p geom.Vec2)    {}
func (NopRegularSink) EndRegularClosedContour(d, p geom.Vec2)  {}
func (NopRegularSink) DegenerateSegment(pi, d, pf geom.Vec2)   {}
func (NopRegularSink) Cusp(d0, p, d1 geom.Vec2, w float64)     {}
func (NopRegularSink) InnerCusp(d0, p, d1 geom.Vec2, w float64) {}
func (NopRegularSink) BeginSegmentPiece(p, d geom.Vec2)        {}
func (NopRegularSink) EndSegmentPiece(d, p geom.Vec2)          {}
func (NopRegularSink) SegmentPiece(seg Segment, ti, tf float64) {}

// ForwardRegular replays every RegularSink call onto Next unchanged.
type ForwardRegular struct{ Next RegularSink }

func (f ForwardRegular) BeginRegularContour(p, d geom.Vec2) {
	f.Next.BeginRegularContour(p, d)
}
func (f ForwardRegular) EndRegularOpenContour(d, p geom.Vec2) {
	f.Next.EndRegularOpenContour(d, p)
}
func (f ForwardRegular) EndRegularClosedContour(d, p geom.Vec2) {
	f.Next.EndRegularClosedContour(d, p)
}
func (f ForwardRegular) DegenerateSegment(pi, d, pf geom.Vec2) {
	f.Next.DegenerateSegment(pi, d, pf)
}
func (f ForwardRegular) Cusp(d0, p, d1 geom.Vec2, w float64) {
	f.Next.Cusp(d0, p, d1, w)
}
func (f ForwardRegular) InnerCusp(d0, p, d1 geom.Vec2, w float64) {
	f.Next.InnerCusp(d0, p, d1, w)
}
func (f ForwardRegular) BeginSegmentPiece(p, d geom.Vec2) {
	f.Next.BeginSegmentPiece(p, d)
}
func (f ForwardRegular) EndSegmentPiece(d, p geom.Vec2) {
	f.Next.EndSegmentPiece(d, p)
}
func (f ForwardRegular) SegmentPiece(seg Segment, ti, tf float64) {
	f.Next.SegmentPiece(seg, ti, tf)
}
