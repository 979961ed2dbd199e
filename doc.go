// Package strokefill converts stroked vector paths into filled outlines.
//
// # Overview
//
// Given an input path built from lines and Bezier curves, plus a Style
// describing width, caps, joins, and an optional dash pattern, Stroke
// produces a new closed path whose filled interior is the stroked
// region — the shape a renderer would get by sweeping a pen of the
// given width along the path. The conversion happens analytically: the
// curves making up the outline are themselves cubic Beziers fitted to
// the offset curves of the input (with straight segments where a piece
// is handled in evolute mode), not polylines approximating them.
//
// # Quick Start
//
//	import "github.com/gogpu/strokefill"
//
//	path := strokefill.BuildPath().
//		MoveTo(0, 0).
//		CubicTo(50, 100, 150, 100, 200, 0).
//		Build()
//
//	style := strokefill.DefaultStyle().WithWidth(8).WithJoin(strokefill.JoinRound)
//	filled := strokefill.Stroke(path, style, strokefill.DefaultTolerance())
//
// # Pipeline
//
// Stroke runs the input path through a single-pass pipeline of
// transformations, each consuming the data flavor the previous stage
// produces:
//
//	input path -> regular path -> decorated path -> thickened path -> filled path
//
// Regularization splits curves at cusps, inflections, and
// curvature/monotonicity extrema so every remaining segment curves in
// one direction with monotone curvature. Decoration inserts caps,
// joins, and dash breaks between consecutive segments. Thickening
// offsets each decorated segment to its two boundary curves
// (approximated as low-degree Beziers) and the forward-and-backward
// driver stitches the forward and reversed-backward traversals into
// closed contours, ready to be filled with any even-odd or nonzero
// fill rule by the caller's rasterizer.
//
// # Numerical Policy
//
// Every step that could, in principle, divide by zero or bracket a
// root that does not exist is governed by a Tolerance. Stroke has no
// error result, so malformed input (duplicate points where a direction
// is required, a degenerate closed subpath) is not reported to the
// caller. Numerical degeneracy (a
// cusp's direction computed from a vanishing derivative, an
// approximation pass that cannot hit its error budget in the allotted
// subdivisions) is recovered from locally — a straight segment, a
// looser bound — rather than aborting the whole conversion.
//
// # Logging
//
// strokefill is silent by default. Call SetLogger to receive, at Debug
// level, one record per Stroke call with its input contour and output
// fill counts, via the standard library's structured logger.
package strokefill
