package strokefill

// Join selects the outer join geometry inserted where two consecutive
// segments meet on the outside of a turn.
type Join int

const (
	// JoinRound fills the gap with a circular arc around the vertex,
	// approximated by cubic Bezier segments of at most 90 degrees each;
	// no rational quadratic is emitted.
	JoinRound Join = iota
	// JoinBevel connects the two offset endpoints with a straight
	// segment.
	JoinBevel
	// JoinMiterClip extends the offset lines to their intersection,
	// clipping the tip by the miter-limit box when it would otherwise
	// exceed the limit.
	JoinMiterClip
	// JoinMiterOrBevel uses the full miter point when it falls within
	// the miter limit, and falls back to a bevel otherwise.
	JoinMiterOrBevel
)

// InnerJoin selects the geometry inserted at the inside of a turn,
// where the offset curves may self-intersect.
type InnerJoin int

const (
	// InnerJoinRound traces a circular arc around the vertex between
	// the inner offset endpoints, approximated by cubic Bezier
	// segments; no check is made whether the join crosses itself.
	InnerJoinRound InnerJoin = iota
	// InnerJoinBevel connects the inner offset endpoints with one
	// straight segment; no covering weight is computed, so it never
	// switches to a pivot through the vertex.
	InnerJoinBevel
)

// Cap selects the geometry appended at an open contour's free end, or
// at the edges of a dash.
type Cap int

const (
	// CapButt ends the stroke flush with the endpoint: no geometry is
	// added beyond the straight edge connecting the two offsets.
	CapButt Cap = iota
	// CapRound appends a half-circle, approximated by cubic Bezier
	// segments of at most 90 degrees each; no rational quadratic is
	// emitted.
	CapRound
	// CapSquare appends a square extension of half the stroke width.
	CapSquare
	// CapTriangle appends a triangular point extending half the stroke
	// width beyond the endpoint.
	CapTriangle
	// CapFletching appends a four-segment indented cap, the arrow-
	// fletching shape.
	CapFletching
)

// Style collects every stroke parameter: width, cap and join geometry,
// the miter limit, and an optional dash pattern. Unlike the single Cap
// and Join most 2D APIs expose, Style distinguishes the cap used at the
// very first and very last point of an open contour from the caps used
// at the edges of individual dashes, per the decoration stage's
// dash_initial_cap/dash_terminal_cap events.
type Style struct {
	// Width is the full stroke width; the offset distance on each side
	// of the input path is Width/2.
	Width float64

	// Join is the outer join geometry at interior vertices.
	Join Join

	// InnerJoin is the inner join geometry at interior vertices.
	InnerJoin InnerJoin

	// MiterLimit bounds how far a miter join may extend before being
	// clipped (JoinMiterClip) or replaced by a bevel
	// (JoinMiterOrBevel). Expressed as a ratio of the miter length to
	// the stroke width, matching the SVG/Cairo convention.
	MiterLimit float64

	// InitialCap and TerminalCap decorate the very first and last
	// point of each open contour of an undashed stroke.
	InitialCap  Cap
	TerminalCap Cap

	// DashInitialCap and DashTerminalCap take the place of InitialCap
	// and TerminalCap when the stroke is dashed: every dash piece gets
	// them at its start and end, including pieces that begin or end at
	// the contour's own endpoints.
	DashInitialCap  Cap
	DashTerminalCap Cap

	// Dash is the dash pattern applied along the path. nil means a
	// solid stroke.
	Dash *Dash

	// DashResetsOnContour is copied into the stroker's style but not
	// read: Stroke starts the dash pattern of every contour at
	// Dash.Offset whatever its value, so the phase never carries over
	// from one contour to the next.
	DashResetsOnContour bool
}

// DefaultStyle returns a solid 1-unit-wide stroke with round joins and
// butt caps everywhere, matching the source library's defaults.
func DefaultStyle() Style {
	return Style{
		Width:               1.0,
		Join:                JoinRound,
		InnerJoin:           InnerJoinRound,
		MiterLimit:          4.0,
		InitialCap:          CapButt,
		TerminalCap:         CapButt,
		DashInitialCap:      CapButt,
		DashTerminalCap:     CapButt,
		DashResetsOnContour: false,
	}
}

// WithWidth returns a copy of the Style with the given stroke width.
func (s Style) WithWidth(w float64) Style {
	s.Width = w
	return s
}

// WithJoin returns a copy of the Style with the given outer join.
func (s Style) WithJoin(j Join) Style {
	s.Join = j
	return s
}

// WithInnerJoin returns a copy of the Style with the given inner join.
func (s Style) WithInnerJoin(j InnerJoin) Style {
	s.InnerJoin = j
	return s
}

// WithMiterLimit returns a copy of the Style with the given miter
// limit.
func (s Style) WithMiterLimit(limit float64) Style {
	s.MiterLimit = limit
	return s
}

// WithCaps returns a copy of the Style with both the initial and
// terminal cap set to the given style.
func (s Style) WithCaps(c Cap) Style {
	s.InitialCap = c
	s.TerminalCap = c
	return s
}

// WithDashCaps returns a copy of the Style with both dash caps set to
// the given style.
func (s Style) WithDashCaps(c Cap) Style {
	s.DashInitialCap = c
	s.DashTerminalCap = c
	return s
}

// WithDash returns a copy of the Style with the given dash pattern.
// Pass nil to remove dashing and return to a solid stroke.
func (s Style) WithDash(dash *Dash) Style {
	if dash == nil {
		s.Dash = nil
	} else {
		s.Dash = dash.Clone()
	}
	return s
}

// WithDashPattern returns a copy of the Style with a dash pattern built
// from the given alternating dash/gap lengths.
func (s Style) WithDashPattern(lengths ...float64) Style {
	s.Dash = NewDash(lengths...)
	return s
}

// IsDashed reports whether this Style has an active dash pattern.
func (s Style) IsDashed() bool {
	return s.Dash != nil && s.Dash.IsDashed()
}

// ScaledBy returns a copy of the Style with Width and any Dash pattern
// scaled by factor. Pass Matrix.MaxScaleFactor() for a transform applied
// to the path before stroking, so the stroked width stays uniform
// despite the transform (see StrokeTransformed).
func (s Style) ScaledBy(factor float64) Style {
	s.Width *= factor
	if s.Dash != nil {
		s.Dash = s.Dash.Scale(factor)
	}
	return s
}

// Clone returns a deep copy of the Style.
func (s Style) Clone() Style {
	result := s
	if s.Dash != nil {
		result.Dash = s.Dash.Clone()
	}
	return result
}

// RoundStyle returns a solid stroke with round caps and joins.
func RoundStyle() Style {
	return DefaultStyle().WithCaps(CapRound)
}

// SquareStyle returns a solid stroke with square caps and miter joins.
func SquareStyle() Style {
	return DefaultStyle().WithCaps(CapSquare).WithJoin(JoinMiterOrBevel)
}

// DashedStyle returns a style with the given dash pattern and butt
// dash caps.
func DashedStyle(lengths ...float64) Style {
	return DefaultStyle().WithDashPattern(lengths...)
}
