package main

import (
	"bytes"
	"html/template"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"forest-volume/internal/export"
	"forest-volume/internal/inventory"
	"forest-volume/internal/species"

	"github.com/gin-gonic/gin"
)

// CalculatorForm holds the fields of the calculator page. A height of 0
// means the height was not measured and should be estimated.
type CalculatorForm struct {
	Species string  `form:"species" binding:"required"`
	DBH     float64 `form:"dbh"`
	Height  float64 `form:"height"`
	Trees   int     `form:"trees,default=1"`
}

func (f CalculatorForm) measurement() inventory.Measurement {
	m := inventory.Measurement{
		Species:   f.Species,
		DBHCm:     f.DBH,
		TreeCount: f.Trees,
	}
	if f.Height != 0 {
		height := f.Height
		m.HeightM = &height
	}
	return m
}

func (f CalculatorForm) exportURL() string {
	q := url.Values{}
	q.Set("species", f.Species)
	q.Set("dbh", strconv.FormatFloat(f.DBH, 'f', -1, 64))
	q.Set("height", strconv.FormatFloat(f.Height, 'f', -1, 64))
	q.Set("trees", strconv.Itoa(f.Trees))
	return "/export?" + q.Encode()
}

type calculatorPage struct {
	Title     string
	Species   []string
	Form      CalculatorForm
	Error     string
	Row       *export.Row
	Summary   *export.Summary
	Estimated bool
	ExportURL string
}

var templateFuncs = template.FuncMap{
	"cubicMeters": func(v float64) string {
		return strconv.FormatFloat(v, 'f', export.CubicMeterPrecision, 64)
	},
	"cubicFeet": func(v float64) string {
		return strconv.FormatFloat(v, 'f', export.CubicFootPrecision, 64)
	},
	"number": func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	},
}

func (app *App) newPage(form CalculatorForm) calculatorPage {
	if form.Species == "" {
		form.Species = species.Names()[0]
	}
	if form.Trees == 0 {
		form.Trees = 1
	}
	return calculatorPage{
		Title:   app.cfg.App.Title,
		Species: species.Names(),
		Form:    form,
	}
}

// handleCalculatorForm renders the empty calculator page
func (app *App) handleCalculatorForm(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", app.newPage(CalculatorForm{}))
}

// handleCalculatorSubmit runs a calculation from the submitted form and
// renders the metrics, summary table and download link
func (app *App) handleCalculatorSubmit(c *gin.Context) {
	var form CalculatorForm

	if err := c.ShouldBind(&form); err != nil {
		page := app.newPage(form)
		page.Error = "Please select a species and enter numeric measurements."
		c.HTML(http.StatusBadRequest, "index.html", page)
		return
	}

	page := app.newPage(form)

	result, err := app.inventoryService.Calculate(form.measurement())
	if err != nil {
		status, msg := app.classifyError(err, form.Species)
		page.Error = msg
		c.HTML(status, "index.html", page)
		return
	}

	row := export.NewRow(result)
	summary := export.NewSummary(result)
	page.Row = &row
	page.Summary = &summary
	page.Estimated = result.Estimated()
	page.ExportURL = form.exportURL()

	c.HTML(http.StatusOK, "index.html", page)
}

// handleExport godoc
// @Summary Download results as CSV
// @Description Recalculate a stand volume and download the summary table as a CSV file named Forest_Volume_<species>.csv. A height of 0 requests an estimate.
// @Tags volume
// @Produce text/csv
// @Param species query string true "Species name" example(Chir Pine)
// @Param dbh query number true "Diameter at breast height in centimeters" minimum(0) example(30)
// @Param height query number false "Measured height in meters, 0 to estimate" minimum(0) example(15)
// @Param trees query integer false "Number of trees" minimum(1) default(1) example(10)
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /export [get]
func (app *App) handleExport(c *gin.Context) {
	var form CalculatorForm

	if err := c.ShouldBindQuery(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := app.inventoryService.Calculate(form.measurement())
	if err != nil {
		status, msg := app.classifyError(err, form.Species)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, export.NewRow(result)); err != nil {
		app.logger.Error("failed to write export", "species", result.Species, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to write export"})
		return
	}

	disposition := mime.FormatMediaType("attachment", map[string]string{
		"filename": export.FileName(result.Species),
	})
	c.Header("Content-Disposition", disposition)
	c.Data(http.StatusOK, export.ContentType+"; charset=utf-8", buf.Bytes())
}
