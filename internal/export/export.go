// Package export turns calculation results into their presentation form:
// the on-screen summary and the downloadable CSV table. All rounding happens
// here, with one precision per quantity shared by both outputs.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"forest-volume/internal/inventory"
)

// Decimal places applied to presented heights and volumes. Inputs are
// repeated as entered.
const (
	HeightPrecision     = 2
	CubicMeterPrecision = 4
	CubicFootPrecision  = 2
)

// ContentType is the media type of the CSV download.
const ContentType = "text/csv"

var header = []string{
	"Species",
	"DBH (cm)",
	"Height (m)",
	"Height Type",
	"Form Factor",
	"Tree Count",
	"Vol/Tree (m3)",
	"Total Vol (m3)",
	"Total Vol (cft)",
}

// Row is one exported line: a result with presentation rounding applied.
type Row struct {
	Species       string  `json:"species" example:"Chir Pine"`
	DBHCm         float64 `json:"dbhCm" example:"30"`
	HeightM       float64 `json:"heightM" example:"15"`
	HeightType    string  `json:"heightType" example:"Measured" enums:"Measured,Estimated"`
	FormFactor    float64 `json:"formFactor" example:"0.45"`
	TreeCount     int     `json:"treeCount" example:"10"`
	VolPerTreeM3  float64 `json:"volPerTreeM3" example:"0.4771"`
	TotalVolM3    float64 `json:"totalVolM3" example:"4.7713"`
	TotalVolCubFt float64 `json:"totalVolCft" example:"168.5"`
}

// Summary holds the four headline figures shown after a calculation.
type Summary struct {
	PerTreeM3  float64 `json:"perTreeM3" example:"0.4771"`
	PerTreeCft float64 `json:"perTreeCft" example:"16.85"`
	TotalM3    float64 `json:"totalM3" example:"4.7713"`
	TotalCft   float64 `json:"totalCft" example:"168.5"`
}

// NewRow rounds a result for export. DBH is repeated as entered.
func NewRow(r *inventory.Result) Row {
	return Row{
		Species:       r.Species,
		DBHCm:         r.DBH.Centimeters,
		HeightM:       Round(r.HeightM, HeightPrecision),
		HeightType:    r.HeightSource.String(),
		FormFactor:    r.FormFactor,
		TreeCount:     r.TreeCount,
		VolPerTreeM3:  Round(r.PerTree.CubicMeters, CubicMeterPrecision),
		TotalVolM3:    Round(r.Total.CubicMeters, CubicMeterPrecision),
		TotalVolCubFt: Round(r.Total.CubicFeet, CubicFootPrecision),
	}
}

// NewSummary rounds the headline figures of a result.
func NewSummary(r *inventory.Result) Summary {
	return Summary{
		PerTreeM3:  Round(r.PerTree.CubicMeters, CubicMeterPrecision),
		PerTreeCft: Round(r.PerTree.CubicFeet, CubicFootPrecision),
		TotalM3:    Round(r.Total.CubicMeters, CubicMeterPrecision),
		TotalCft:   Round(r.Total.CubicFeet, CubicFootPrecision),
	}
}

// Header returns the CSV column names.
func Header() []string {
	out := make([]string, len(header))
	copy(out, header)
	return out
}

func (r Row) record() []string {
	return []string{
		r.Species,
		formatFloat(r.DBHCm),
		formatFloat(r.HeightM),
		r.HeightType,
		formatFloat(r.FormFactor),
		strconv.Itoa(r.TreeCount),
		formatFloat(r.VolPerTreeM3),
		formatFloat(r.TotalVolM3),
		formatFloat(r.TotalVolCubFt),
	}
}

// WriteCSV writes the header followed by one line per row.
func WriteCSV(w io.Writer, rows ...Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row.record()); err != nil {
			return fmt.Errorf("failed to write csv row for %s: %w", row.Species, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// FileName returns the download name for a species export, e.g.
// "Forest_Volume_Chir Pine.csv". Path separators become dashes.
func FileName(species string) string {
	safe := strings.NewReplacer("/", "-", `\`, "-").Replace(species)
	return fmt.Sprintf("Forest_Volume_%s.csv", safe)
}

// Round rounds v half away from zero to the given number of decimal places.
func Round(v float64, places int) float64 {
	scale := math.Pow10(places)
	return math.Round(v*scale) / scale
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
