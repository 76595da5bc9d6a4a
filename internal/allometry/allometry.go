// Package allometry relates the measurable dimensions of a standing tree to
// its height and stem volume.
package allometry

import (
	"errors"
	"fmt"
	"math"

	"forest-volume/internal/species"
	"forest-volume/internal/types"
)

// BreastHeightMeters is the height above ground at which DBH is taken.
const BreastHeightMeters = 1.3

// ErrInvalidInput is returned for a non-positive measurement.
var ErrInvalidInput = errors.New("invalid input")

// EstimateHeight derives a tree's height in meters from its DBH in centimeters
// using the Chapman-Richards curve of the named species.
func EstimateHeight(speciesName string, dbhCm float64) (float64, error) {
	if !(dbhCm > 0) {
		return 0, fmt.Errorf("%w: DBH must be greater than zero, got %v", ErrInvalidInput, dbhCm)
	}

	profile, err := species.Lookup(speciesName)
	if err != nil {
		return 0, err
	}

	return EstimateHeightForProfile(profile, dbhCm), nil
}

// EstimateHeightForProfile evaluates h = 1.3 + a(1 - e^(-b*dbh))^c, rounded
// to 2 decimal places. The result never exceeds 1.3 + a.
func EstimateHeightForProfile(p species.Profile, dbhCm float64) float64 {
	h := BreastHeightMeters + p.A*math.Pow(1-math.Exp(-p.B*dbhCm), p.C)
	return math.Round(h*100) / 100
}

// CalculateVolume returns the stem volume in cubic meters of a tree with the
// given DBH (cm), height (m) and form factor: the enclosing cylinder scaled by
// the form factor. The result is not rounded.
func CalculateVolume(dbhCm, heightM, formFactor float64) float64 {
	d := types.NewDiameterFromCentimeters(dbhCm)
	return (math.Pi / 4) * d.Meters * d.Meters * heightM * formFactor
}
