package stroker

import "github.com/gogpu/strokefill/internal/pathevent"

// FillContour is one closed, non-zero-rule boundary of the stroke's
// output, ready to be materialized as a public Path subpath.
type FillContour struct {
	Segments []pathevent.Segment
}

// ForwardAndBackward runs the two-pass (offset +halfWidth, offset
// -halfWidth) thickening driver over one regularized, oriented
// contour, producing either one combined fill contour (open input: the
// forward rail, a terminal cap, the backward rail traversed in
// reverse, and an initial cap, concatenated into a single loop) or two
// independent fill contours (closed input: the outer rail and the
// inner rail each close on themselves, the -halfWidth loop reversed so
// the two loops wind in opposite directions), matching how a single solid
// shape and an annulus differ only in whether the source contour was
// open or closed.
func ForwardAndBackward(c RegularContour, style Style, tol Tolerance) []FillContour {
	if c.Closed {
		outer := PassThicken(c, 1, style, tol)
		inner := PassThicken(c, -1, style, tol)
		return []FillContour{
			{Segments: closeLoop(outer, c, 1, style)},
			{Segments: reverseChain(closeLoop(inner, c, -1, style))},
		}
	}

	forward := PassThicken(c, 1, style, tol)
	backwardFwd := PassThicken(c, -1, style, tol)
	backward := reverseChain(backwardFwd)

	var loop []pathevent.Segment
	loop = append(loop, forward...)

	if len(forward) > 0 && len(backward) > 0 {
		terminalFrom := segmentEnd(forward[len(forward)-1])
		terminalTo := segmentStart(backward[0])
		loop = append(loop, capGeometry(style.TerminalCap, terminalFrom, terminalTo, c.PN, c.DN, style.HalfWidth())...)
	}

	loop = append(loop, backward...)

	if len(forward) > 0 && len(backward) > 0 {
		initialFrom := segmentEnd(backward[len(backward)-1])
		initialTo := segmentStart(forward[0])
		loop = append(loop, capGeometry(style.InitialCap, initialFrom, initialTo, c.P0, c.D0.Neg(), style.HalfWidth())...)
	}

	return []FillContour{{Segments: loop}}
}

// reverseChain reverses the order of segs and each individual
// segment's direction, turning a forward-traversed rail into the same
// geometric rail traversed end-to-start.
func reverseChain(segs []pathevent.Segment) []pathevent.Segment {
	n := len(segs)
	out := make([]pathevent.Segment, n)
	for i, s := range segs {
		out[n-1-i] = reverseSegment(s)
	}
	return out
}

// closeLoop appends the wrap-around join connecting the end of a
// closed contour's single-direction pass back to its own start,
// completing it into a closed fill contour.
func closeLoop(segs []pathevent.Segment, c RegularContour, offsetSign float64, style Style) []pathevent.Segment {
	if len(segs) == 0 {
		return segs
	}
	from := segmentEnd(segs[len(segs)-1])
	to := segmentStart(segs[0])
	halfWidth := style.HalfWidth()
	join := connectJoin(offsetSign, style, offsetSign*halfWidth, c.DN, c.D0, c.P0, from, to)
	out := make([]pathevent.Segment, 0, len(segs)+len(join))
	out = append(out, segs...)
	out = append(out, join...)
	return out
}
