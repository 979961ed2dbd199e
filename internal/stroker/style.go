package stroker

// Cap, Join and InnerJoin mirror the public package's enums of the same
// name (see the root stroke.go). The stroker package cannot import the
// root package (it would be a cyclic import, since the root package
// imports stroker), so the public Style is translated into this
// package's Style at the API boundary in stroke_api.go.
type Cap int

const (
	CapButt Cap = iota
	CapRound
	CapSquare
	CapTriangle
	CapFletching
)

type Join int

const (
	JoinRound Join = iota
	JoinBevel
	JoinMiterClip
	JoinMiterOrBevel
)

type InnerJoin int

const (
	InnerJoinRound InnerJoin = iota
	InnerJoinBevel
)

// Style is the stroker package's internal view of the public Style,
// with the dash pattern represented as plain lengths (the root Dash
// type stays out of this package for the same reason Cap/Join do).
type Style struct {
	Width               float64
	Join                Join
	InnerJoin           InnerJoin
	MiterLimit          float64
	InitialCap          Cap
	TerminalCap         Cap
	DashInitialCap      Cap
	DashTerminalCap     Cap
	DashLengths         []float64
	DashPhase           float64
	DashResetsOnContour bool
}

// HalfWidth returns half the stroke width, the magnitude of the offset
// applied on each side of the input path.
func (s Style) HalfWidth() float64 {
	return s.Width / 2
}
