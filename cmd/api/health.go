package main

import (
	"net/http"

	"forest-volume/internal/species"

	"github.com/gin-gonic/gin"
)

// PingResponse reports that the calculator is up and how many species it serves
type PingResponse struct {
	Message string `json:"message" example:"pong"`
	Service string `json:"service" example:"forest-volume"`
	Species int    `json:"species" example:"6"`
}

// handlePing godoc
// @Summary Ping health check
// @Description Check that the tree volume calculator is running and its species table is loaded
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message: "pong",
		Service: "forest-volume",
		Species: len(species.Names()),
	})
}
