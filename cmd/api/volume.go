package main

import (
	"errors"
	"net/http"

	"forest-volume/internal/export"
	"forest-volume/internal/inventory"
	"forest-volume/internal/species"

	"github.com/gin-gonic/gin"
)

// VolumeRequest is the JSON body for a stand volume calculation
type VolumeRequest struct {
	Species string  `json:"species" binding:"required" example:"Chir Pine"` // One of the names from /api/species
	DBHCm   float64 `json:"dbhCm" example:"30"`                              // Diameter at breast height in centimeters
	// Measured height in meters; omit to estimate it from DBH
	HeightM *float64 `json:"heightM,omitempty" example:"15"`
	// Number of identical trees in the stand; defaults to 1
	TreeCount *int `json:"treeCount,omitempty" example:"10"`
}

// VolumeResponse is a rounded calculation result
type VolumeResponse struct {
	Result          export.Row     `json:"result"`
	Summary         export.Summary `json:"summary"`
	HeightEstimated bool           `json:"heightEstimated" example:"false"`
	ExportFileName  string         `json:"exportFileName" example:"Forest_Volume_Chir Pine.csv"`
}

// SpeciesResponse lists the species the calculator knows
type SpeciesResponse struct {
	Species []species.Profile `json:"species"`
}

// handleListSpecies godoc
// @Summary List species
// @Description List every supported species with its form factor and height curve constants
// @Tags species
// @Produce json
// @Success 200 {object} SpeciesResponse
// @Router /api/species [get]
func (app *App) handleListSpecies(c *gin.Context) {
	c.JSON(http.StatusOK, SpeciesResponse{Species: species.All()})
}

// handleCalculateVolume godoc
// @Summary Calculate tree and stand volume
// @Description Compute per-tree and per-stand stem volume in cubic meters and cubic feet. Height is estimated from DBH when omitted.
// @Tags volume
// @Accept json
// @Produce json
// @Param request body VolumeRequest true "Tree measurement"
// @Success 200 {object} VolumeResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/volume [post]
func (app *App) handleCalculateVolume(c *gin.Context) {
	var req VolumeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	treeCount := 1
	if req.TreeCount != nil {
		treeCount = *req.TreeCount
	}

	// Delegate to business layer
	result, err := app.inventoryService.Calculate(inventory.Measurement{
		Species:   req.Species,
		DBHCm:     req.DBHCm,
		HeightM:   req.HeightM,
		TreeCount: treeCount,
	})
	if err != nil {
		status, msg := app.classifyError(err, req.Species)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, VolumeResponse{
		Result:          export.NewRow(result),
		Summary:         export.NewSummary(result),
		HeightEstimated: result.Estimated(),
		ExportFileName:  export.FileName(result.Species),
	})
}

// classifyError maps a calculation error to an HTTP status and a message
// safe to show the user.
func (app *App) classifyError(err error, speciesName string) (int, string) {
	if errors.Is(err, inventory.ErrInvalidInput) || errors.Is(err, inventory.ErrUnknownSpecies) {
		return http.StatusBadRequest, err.Error()
	}

	// Other errors are internal server errors
	app.logger.Error("failed to calculate volume",
		"species", speciesName,
		"error", err,
	)
	return http.StatusInternalServerError, "failed to calculate volume"
}
