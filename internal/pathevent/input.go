// Package pathevent declares the event-stream contracts for the
// input_path, regular_path, and decorated_path families, a Go
// translation of the source's CRTP mixins: each family is a Go
// interface with Nop* (no-op) and Forward* (pass-through to a Next
// sink) embeddable defaults. The package also holds Segment, the value
// the stages in internal/stroker pass between each other; those stages
// work on slices of Segment and do not implement the sink interfaces.
package pathevent

import "github.com/gogpu/strokefill/internal/geom"

// InputSink receives input_path events: the raw path as a sequence of
// contours built from lines, quadratics, rational quadratics, and
// cubics.
type InputSink interface {
	BeginContour(p0 geom.Vec2)
	EndOpenContour(p0 geom.Vec2)
	EndClosedContour(p0 geom.Vec2)
	LinearSegment(p0, p1 geom.Vec2)
	QuadraticSegment(p0, p1, p2 geom.Vec2)
	RationalQuadraticSegment(p0 geom.Vec2, p1 geom.Vec3, p2 geom.Vec2)
	CubicSegment(p0, p1, p2, p3 geom.Vec2)
}

// NopInputSink is embedded by stages that only care about a subset of
// InputSink's methods; embedding it satisfies the interface with no-ops
// for the rest, then the stage overrides what it needs.
type NopInputSink struct{}

func (NopInputSink) BeginContour(geom.Vec2)                          {}
func (NopInputSink) EndOpenContour(geom.Vec2)                        {}
func (NopInputSink) EndClosedContour(geom.Vec2)                      {}
func (NopInputSink) LinearSegment(p0, p1 geom.Vec2)                  {}
func (NopInputSink) QuadraticSegment(p0, p1, p2 geom.Vec2)           {}
func (NopInputSink) RationalQuadraticSegment(geom.Vec2, geom.Vec3, geom.Vec2) {}
func (NopInputSink) CubicSegment(p0, p1, p2, p3 geom.Vec2)           {}

// ForwardInput replays every InputSink call onto Next unchanged; stages that transform only some event kinds embed this to
// get pass-through behavior for the rest.
type ForwardInput struct{ Next InputSink }

func (f ForwardInput) BeginContour(p0 geom.Vec2)     { f.Next.BeginContour(p0) }
func (f ForwardInput) EndOpenContour(p0 geom.Vec2)   { f.Next.EndOpenContour(p0) }
func (f ForwardInput) EndClosedContour(p0 geom.Vec2) { f.Next.EndClosedContour(p0) }
func (f ForwardInput) LinearSegment(p0, p1 geom.Vec2) {
	f.Next.LinearSegment(p0, p1)
}
func (f ForwardInput) QuadraticSegment(p0, p1, p2 geom.Vec2) {
	f.Next.QuadraticSegment(p0, p1, p2)
}
func (f ForwardInput) RationalQuadraticSegment(p0 geom.Vec2, p1 geom.Vec3, p2 geom.Vec2) {
	f.Next.RationalQuadraticSegment(p0, p1, p2)
}
func (f ForwardInput) CubicSegment(p0, p1, p2, p3 geom.Vec2) {
	f.Next.CubicSegment(p0, p1, p2, p3)
}

// ParameterSink receives the parameter events emitted by the
// find-parameters filters: each names a parameter t on the segment
// currently open, to be sorted and replayed by a buffering stage. Per
// SPEC_FULL.md/spec.md §3, these are emitted before the segment event
// they annotate.
type ParameterSink interface {
	InflectionParameter(t float64)
	DoublePointParameter(t float64)
	RootDxParameter(t float64)
	RootDyParameter(t float64)
	RootDwParameter(t float64)
	OffsetCuspParameter(t float64)
	EvoluteCuspParameter(t float64)
}

// NopParameterSink satisfies ParameterSink with no-ops.
type NopParameterSink struct{}

func (NopParameterSink) InflectionParameter(float64)   {}
func (NopParameterSink) DoublePointParameter(float64)  {}
func (NopParameterSink) RootDxParameter(float64)       {}
func (NopParameterSink) RootDyParameter(float64)       {}
func (NopParameterSink) RootDwParameter(float64)       {}
func (NopParameterSink) OffsetCuspParameter(float64)   {}
func (NopParameterSink) EvoluteCuspParameter(float64)  {}
