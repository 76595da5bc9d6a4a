package inventory

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"forest-volume/internal/allometry"
	"forest-volume/internal/config"
	"forest-volume/internal/metrics"
	"forest-volume/internal/species"
	"forest-volume/internal/types"
)

var (
	// ErrInvalidInput reports a non-positive or otherwise unusable measurement.
	ErrInvalidInput = allometry.ErrInvalidInput
	// ErrUnknownSpecies reports a species name outside the species table.
	ErrUnknownSpecies = species.ErrUnknownSpecies
)

// SpeciesProvider resolves species names to calibration profiles.
type SpeciesProvider interface {
	Lookup(name string) (species.Profile, error)
}

// Recorder receives the outcome of every calculation.
type Recorder interface {
	ObserveCalculation(species, heightSource string, standCubicMeters float64)
	ObserveError(reason string)
}

// Service computes tree and stand volumes.
type Service interface {
	Calculate(m Measurement) (*Result, error)
}

type tableProvider struct{}

func (tableProvider) Lookup(name string) (species.Profile, error) {
	return species.Lookup(name)
}

type nopRecorder struct{}

func (nopRecorder) ObserveCalculation(string, string, float64) {}
func (nopRecorder) ObserveError(string)                        {}

type inventoryService struct {
	speciesProvider SpeciesProvider
	recorder        Recorder
	maxTreeCount    int
	logger          *slog.Logger
}

// NewInventoryService creates a service backed by the built-in species table.
// A nil m disables metrics.
func NewInventoryService(cfg *config.Config, m *metrics.Metrics, logger *slog.Logger) Service {
	var recorder Recorder = nopRecorder{}
	if m != nil {
		recorder = m
	}
	return NewInventoryServiceWithProviders(tableProvider{}, recorder, cfg.App.MaxTreeCount, logger)
}

// NewInventoryServiceWithProviders creates a service with a custom species
// provider and recorder. A nil recorder discards observations and a
// maxTreeCount of 0 leaves the tree count unbounded.
func NewInventoryServiceWithProviders(
	speciesProvider SpeciesProvider,
	recorder Recorder,
	maxTreeCount int,
	logger *slog.Logger,
) Service {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &inventoryService{
		speciesProvider: speciesProvider,
		recorder:        recorder,
		maxTreeCount:    maxTreeCount,
		logger:          logger.With("component", "inventory-service"),
	}
}

// Calculate validates the measurement, resolves the species, estimates the
// height when none was measured and returns per-tree and stand volumes.
// Either a complete result or an error is returned, never both.
func (s *inventoryService) Calculate(m Measurement) (*Result, error) {
	if err := s.validate(m); err != nil {
		s.logger.Warn("rejected measurement", "species", m.Species, "error", err)
		s.recorder.ObserveError(metrics.ReasonInvalidInput)
		return nil, err
	}

	profile, err := s.speciesProvider.Lookup(m.Species)
	if err != nil {
		s.logger.Warn("species lookup failed", "species", m.Species, "error", err)
		if errors.Is(err, ErrUnknownSpecies) {
			s.recorder.ObserveError(metrics.ReasonUnknownSpecies)
			return nil, err
		}
		return nil, fmt.Errorf("failed to resolve species: %w", err)
	}

	var height float64
	source := types.HeightMeasured
	if m.HeightM != nil {
		height = *m.HeightM
	} else {
		height = allometry.EstimateHeightForProfile(profile, m.DBHCm)
		source = types.HeightEstimated
		s.logger.Debug("estimated tree height",
			"species", profile.Name,
			"dbh_cm", m.DBHCm,
			"height_m", height,
		)
	}

	perTree := types.NewVolumeFromCubicMeters(allometry.CalculateVolume(m.DBHCm, height, profile.FormFactor))
	result := &Result{
		Species:      profile.Name,
		DBH:          types.NewDiameterFromCentimeters(m.DBHCm),
		HeightM:      height,
		HeightSource: source,
		FormFactor:   profile.FormFactor,
		TreeCount:    m.TreeCount,
		PerTree:      perTree,
		Total:        perTree.Times(m.TreeCount),
	}

	if !isFinite(result.PerTree) || !isFinite(result.Total) {
		err := fmt.Errorf("%w: measurement out of range, volume overflows", ErrInvalidInput)
		s.logger.Warn("rejected measurement",
			"species", m.Species,
			"dbh_cm", m.DBHCm,
			"tree_count", m.TreeCount,
			"error", err,
		)
		s.recorder.ObserveError(metrics.ReasonInvalidInput)
		return nil, err
	}

	s.recorder.ObserveCalculation(result.Species, result.HeightSource.String(), result.Total.CubicMeters)
	s.logger.Debug("calculated stand volume",
		"species", result.Species,
		"tree_count", result.TreeCount,
		"total_m3", result.Total.CubicMeters,
	)

	return result, nil
}

func (s *inventoryService) validate(m Measurement) error {
	if !isPositive(m.DBHCm) {
		return fmt.Errorf("%w: DBH must be greater than zero, got %v", ErrInvalidInput, m.DBHCm)
	}
	if m.HeightM != nil && !isPositive(*m.HeightM) {
		return fmt.Errorf("%w: height must be greater than zero when given, got %v", ErrInvalidInput, *m.HeightM)
	}
	if m.TreeCount < 1 {
		return fmt.Errorf("%w: tree count must be at least 1, got %d", ErrInvalidInput, m.TreeCount)
	}
	if s.maxTreeCount > 0 && m.TreeCount > s.maxTreeCount {
		return fmt.Errorf("%w: tree count must not exceed %d, got %d", ErrInvalidInput, s.maxTreeCount, m.TreeCount)
	}
	return nil
}

// isPositive rejects zero, negatives, NaN and infinities.
func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func isFinite(v types.Volume) bool {
	return !math.IsInf(v.CubicMeters, 0) && !math.IsNaN(v.CubicMeters) &&
		!math.IsInf(v.CubicFeet, 0) && !math.IsNaN(v.CubicFeet)
}
