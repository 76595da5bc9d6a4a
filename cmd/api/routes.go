package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Calculator page
	app.router.GET("/", app.handleCalculatorForm)
	app.router.POST("/", app.handleCalculatorSubmit)
	app.router.GET("/export", app.handleExport)

	// JSON API
	api := app.router.Group("/api")
	api.GET("/species", app.handleListSpecies)
	api.POST("/volume", app.handleCalculateVolume)

	// Prometheus
	app.router.GET("/metrics", gin.WrapH(app.metrics.Handler()))

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
