package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheckResponse represents the health check response structure
type HealthCheckResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

// HealthCheck reports process liveness and database connectivity.
func (n *NewsController) HealthCheck(c *gin.Context) {
	dbStatus := "connected"
	if err := n.store.Ping(c.Request.Context()); err != nil {
		dbStatus = "disconnected"
	}

	status := http.StatusOK
	response := HealthCheckResponse{
		Status:   "ok",
		Database: dbStatus,
	}

	if dbStatus != "connected" {
		status = http.StatusServiceUnavailable
		response.Status = "unavailable"
	}

	c.JSON(status, response)
}
