package inventory

import "forest-volume/internal/types"

// Measurement is one field submission: a stand of identical trees.
type Measurement struct {
	Species string
	DBHCm   float64
	// HeightM is the measured height; nil asks for an estimate from DBH.
	HeightM   *float64
	TreeCount int
}

// Result is the outcome of a single calculation. Values are not rounded,
// apart from an estimated height which carries the estimator's precision.
type Result struct {
	Species      string
	DBH          types.Diameter
	HeightM      float64
	HeightSource types.HeightSource
	FormFactor   float64
	TreeCount    int
	PerTree      types.Volume
	Total        types.Volume
}

// Estimated reports whether the height was derived rather than measured.
func (r *Result) Estimated() bool {
	return r.HeightSource == types.HeightEstimated
}
