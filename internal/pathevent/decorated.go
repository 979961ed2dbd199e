package pathevent

import "github.com/gogpu/strokefill/internal/geom"

// DecoratedSink receives decorated_path events: regular-path geometry
// plus the caps, joins, and dash boundaries needed to realize a Style.
type DecoratedSink interface {
	InitialCap(p, d geom.Vec2)
	InitialButtCap(p, d geom.Vec2)
	TerminalCap(d, p geom.Vec2)
	TerminalButtCap(d, p geom.Vec2)
	Join(d0, p, d1 geom.Vec2, w float64)
	InnerJoin(d0, p, d1 geom.Vec2, w float64)
	BeginDashParameter(t float64)
	EndDashParameter(t float64)

	RegularSink
}

// NopDecoratedSink satisfies DecoratedSink with no-ops, to be embedded
// alongside NopRegularSink by stages that only override a few methods.
type NopDecoratedSink struct {
	NopRegularSink
}

func (NopDecoratedSink) InitialCap(p, d geom.Vec2)      {}
func (NopDecoratedSink) InitialButtCap(p, d geom.Vec2)  {}
func (NopDecoratedSink) TerminalCap(d, p geom.Vec2)     {}
func (NopDecoratedSink) TerminalButtCap(d, p geom.Vec2) {}
func (NopDecoratedSink) Join(d0, p, d1 geom.Vec2, w float64)      {}
func (NopDecoratedSink) InnerJoin(d0, p, d1 geom.Vec2, w float64) {}
func (NopDecoratedSink) BeginDashParameter(t float64)             {}
func (NopDecoratedSink) EndDashParameter(t float64)               {}

// ForwardDecorated replays every DecoratedSink call onto Next.
type ForwardDecorated struct {
	ForwardRegular
	Next DecoratedSink
}

func NewForwardDecorated(next DecoratedSink) ForwardDecorated {
	return ForwardDecorated{ForwardRegular: ForwardRegular{Next: next}, Next: next}
}

func (f ForwardDecorated) InitialCap(p, d geom.Vec2)     { f.Next.InitialCap(p, d) }
func (f ForwardDecorated) InitialButtCap(p, d geom.Vec2) { f.Next.InitialButtCap(p, d) }
func (f ForwardDecorated) TerminalCap(d, p geom.Vec2)    { f.Next.TerminalCap(d, p) }
func (f ForwardDecorated) TerminalButtCap(d, p geom.Vec2) {
	f.Next.TerminalButtCap(d, p)
}
func (f ForwardDecorated) Join(d0, p, d1 geom.Vec2, w float64) {
	f.Next.Join(d0, p, d1, w)
}
func (f ForwardDecorated) InnerJoin(d0, p, d1 geom.Vec2, w float64) {
	f.Next.InnerJoin(d0, p, d1, w)
}
func (f ForwardDecorated) BeginDashParameter(t float64) { f.Next.BeginDashParameter(t) }
func (f ForwardDecorated) EndDashParameter(t float64)   { f.Next.EndDashParameter(t) }

// FillSink receives the final, flattened fill geometry emitted by the
// thickening stage: closed contours built only from lines, quadratics,
// and cubics (ShapeRationalQuadratic pieces from round caps/joins are
// the one exception, carried through unreduced so a renderer can choose
// how to flatten the weighted arc).
type FillSink interface {
	BeginFillContour(p0 geom.Vec2)
	EndFillContour()
	FillLine(p0, p1 geom.Vec2)
	FillQuadratic(p0, p1, p2 geom.Vec2)
	FillRationalQuadratic(p0 geom.Vec2, p1 geom.Vec3, p2 geom.Vec2)
	FillCubic(p0, p1, p2, p3 geom.Vec2)
}
