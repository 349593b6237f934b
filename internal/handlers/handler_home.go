package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Show the status of server.
// @Description get the status of server.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func getHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Currency Converter API. Try GET /converter?base-currency=GBP&to-currency=USD"})
}

func getHealth(ctx *gin.Context) {
	ctx.String(http.StatusOK, "OK")
}

// registerRootRoutes registers the welcome and health check routes
func registerRootRoutes(r gin.IRoutes) {
	r.GET("/", getHome)
	r.GET("/health", getHealth)
}
