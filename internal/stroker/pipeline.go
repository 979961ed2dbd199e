package stroker

// Stroke runs the full pipeline — regularize, orient, thicken — over
// every input contour and returns the resulting fill contours. Dashing
// is applied by the caller (stroke_api.go splits each contour into dash
// pieces before calling this) in the style.Dash case; when style has no
// dash pattern the contour is thickened directly. No join
// simplification stage runs.
func Stroke(contours []InputContour, style Style, tol Tolerance) []FillContour {
	halfWidth := style.HalfWidth()
	var fills []FillContour
	for _, c := range contours {
		regular := ToRegularPath(c, halfWidth, tol)
		regular = Orient(regular)
		fills = append(fills, ForwardAndBackward(regular, style, tol)...)
	}
	return fills
}
