package main

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"

	"forest-volume/internal/config"
	"forest-volume/internal/inventory"
	"forest-volume/internal/metrics"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// App encapsulates application dependencies
type App struct {
	router           *gin.Engine
	logger           *slog.Logger
	inventoryService inventory.Service
	metrics          *metrics.Metrics
	cfg              *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())

	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	m := metrics.New()

	app := &App{
		router:           router,
		logger:           logger,
		inventoryService: inventory.NewInventoryService(cfg, m, logger),
		metrics:          m,
		cfg:              cfg,
	}

	// Register routes
	app.registerRoutes()

	logger.Info("application initialized")

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
