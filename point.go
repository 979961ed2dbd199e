package strokefill

// Point is a coordinate in the 2D plane: an endpoint or control point of
// a PathElement. The stroking pipeline itself works in
// internal/geom.Vec2; Point only needs to carry coordinates across the
// public API boundary (see toVec2 in stroke_api.go).
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points, treating q as a displacement.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Min returns the componentwise minimum of p and q, for accumulating an
// axis-aligned bounding box over a path's points.
func (p Point) Min(q Point) Point {
	return Point{X: minF(p.X, q.X), Y: minF(p.Y, q.Y)}
}

// Max returns the componentwise maximum of p and q.
func (p Point) Max(q Point) Point {
	return Point{X: maxF(p.X, q.X), Y: maxF(p.Y, q.Y)}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
