package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupHealthCheck()
	a.setupMetricsRoute()
	a.setupAPIRoutes()
}

// setupHealthCheck configures health check endpoint; the relay keeps no
// connections open, so liveness is all there is to report
func (a *App) setupHealthCheck() {
	a.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// Expose Prometheus metrics endpoint
func (a *App) setupMetricsRoute() {
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// setupAPIRoutes configures API routes
func (a *App) setupAPIRoutes() {
	a.Router.POST("/clean-address", a.AddressHandler.CleanAddress)
	a.Router.POST("/get-sqft", a.SquareFootageHandler.GetSquareFootage)
}
