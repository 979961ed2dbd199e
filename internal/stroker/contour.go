// Package stroker implements the stroking pipeline proper: turning an
// input path into regular pieces, splitting contours into dash pieces,
// thickening into offset/evolute approximations with caps and joins
// inserted between pieces, and driving the forward-and-backward
// traversal that closes the result into a filled path. No join
// simplification is performed. Grounded on SPEC_FULL.md §0's
// module map and spec.md §4's per-stage component design.
package stroker

import "github.com/gogpu/strokefill/internal/pathevent"

// InputContour is one contour of the input path: an ordered list of
// segments plus whether it is closed.
type InputContour struct {
	Closed   bool
	Segments []pathevent.Segment
}
