package handlers

import (
	"net/http"

	portssvc "github.com/loansim/loan_simulation_api/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// healthHandler reports API and store health.
type healthHandler struct {
	simulationService portssvc.SimulationSvcFacade
}

// registerHealthRoutes registers the public health endpoint.
func registerHealthRoutes(r *gin.Engine, simulationService portssvc.SimulationSvcFacade) {
	h := &healthHandler{simulationService: simulationService}
	r.GET("/health", h.health)
}

// health godoc
// @Summary Health check
// @Description Reports API liveness, database reachability and process uptime
// @Tags health
// @Produce  json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *healthHandler) health(c *gin.Context) {
	c.JSON(http.StatusOK, h.simulationService.CheckHealth(c.Request.Context()))
}
