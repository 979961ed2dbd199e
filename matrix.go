package strokefill

import "math"

// Matrix is a 2D affine transformation, stored as a 2x3 matrix in
// row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// applying:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// Stroke's geometry assumes an isotropic coordinate space: width,
// tolerance, and dash lengths are all plain scalars in path units. A
// caller who pre-transforms the input path with a non-trivial Matrix
// must compensate those scalars by the transform's MaxScaleFactor (see
// Style.ScaledBy and StrokeTransformed) or the stroked outline will be
// the wrong width wherever the transform scales space unevenly.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Shear creates a shear matrix.
func Shear(x, y float64) Matrix {
	return Matrix{
		A: 1, B: x, C: 0,
		D: y, E: 1, F: 0,
	}
}

// Multiply composes two matrices: (m.Multiply(other)) applies other
// first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Invert returns the inverse matrix, or the identity matrix if m is
// singular (determinant within 1e-10 of zero).
func (m Matrix) Invert() Matrix {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-10 {
		return Identity()
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// IsTranslation returns true if the matrix's linear part is the
// identity — it may still carry a nonzero C, F translation.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

// IsTranslationOnly is an alias for IsTranslation, named to read
// naturally alongside IsScaleOnly at a call site that is branching on
// which compensation (if any) a transformed stroke needs.
func (m Matrix) IsTranslationOnly() bool {
	return m.IsTranslation()
}

// IsScaleOnly returns true if the matrix's linear part is diagonal: a
// pure (possibly non-uniform, possibly zero or negative) scale plus
// translation, with no rotation or shear term.
func (m Matrix) IsScaleOnly() bool {
	return m.B == 0 && m.D == 0
}

// MaxScaleFactor returns the largest factor by which m stretches any
// direction in the plane — the largest singular value of m's linear
// part. This is the value a caller compensates stroke width and dash
// lengths by after transforming a path (see Style.ScaledBy): stroking
// at the original width in a space that has since been stretched by
// MaxScaleFactor produces a visually thinner line than intended unless
// the width is scaled up to match.
//
// Computed directly from the eigenvalues of M^T*M rather than a full
// SVD, since only the larger singular value is needed.
func (m Matrix) MaxScaleFactor() float64 {
	p := m.A*m.A + m.D*m.D
	r := m.B*m.B + m.E*m.E
	q := m.A*m.B + m.D*m.E
	sum := p + r
	diff := p - r
	disc := math.Sqrt(diff*diff + 4*q*q)
	maxEigen := (sum + disc) / 2
	if maxEigen < 0 {
		return 0
	}
	return math.Sqrt(maxEigen)
}
