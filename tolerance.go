package strokefill

import "github.com/gogpu/strokefill/internal/stroker"

// Tolerance bundles the numerical knobs governing how closely the
// stroker's offset-curve approximation and regularity tests track the
// exact analytic geometry.
type Tolerance struct {
	// AngleTolerance, in radians, is passed to the stroker; no stage of
	// the pipeline reads it, so it does not change the output.
	AngleTolerance float64
	// MinSpeed is the smallest |c'(t)| treated as non-degenerate.
	MinSpeed float64
	// MinRadius is the smallest radius of curvature treated as regular;
	// tighter turns are split off as cusps.
	MinRadius float64
	// FlatnessTolerance bounds the maximum pointwise distance between an
	// offset/evolute approximation and the true analytic curve.
	FlatnessTolerance float64
	// MaxApproximationDepth bounds adaptive subdivision in the
	// offset/evolute approximator.
	MaxApproximationDepth int
	// ArcLengthSamples controls the density of the arc-length table
	// used for dash placement.
	ArcLengthSamples int
}

// DefaultTolerance returns the package's default numerical settings,
// suitable for screen-resolution rendering.
func DefaultTolerance() Tolerance {
	d := stroker.DefaultTolerance()
	return Tolerance{
		AngleTolerance:        d.AngleTolerance,
		MinSpeed:              d.MinSpeed,
		MinRadius:             d.MinRadius,
		FlatnessTolerance:     d.FlatnessTolerance,
		MaxApproximationDepth: d.MaxApproximationDepth,
		ArcLengthSamples:      d.ArcLengthSamples,
	}
}

func (t Tolerance) toInternal() stroker.Tolerance {
	return stroker.Tolerance{
		AngleTolerance:        t.AngleTolerance,
		MinSpeed:              t.MinSpeed,
		MinRadius:             t.MinRadius,
		FlatnessTolerance:     t.FlatnessTolerance,
		MaxApproximationDepth: t.MaxApproximationDepth,
		ArcLengthSamples:      t.ArcLengthSamples,
	}
}
