package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/loansim/loan_simulation_api/internal/apperrors"
	portssvc "github.com/loansim/loan_simulation_api/internal/core/ports/services"
	"github.com/loansim/loan_simulation_api/internal/dto"
	"github.com/loansim/loan_simulation_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// simulationHandler handles HTTP requests related to loan simulations.
type simulationHandler struct {
	simulationService portssvc.SimulationSvcFacade
}

func newSimulationHandler(ss portssvc.SimulationSvcFacade) *simulationHandler {
	return &simulationHandler{
		simulationService: ss,
	}
}

// RegisterSimulationRoutes registers routes related to simulations.
func RegisterSimulationRoutes(rg *gin.RouterGroup, simulationService portssvc.SimulationSvcFacade) {
	h := newSimulationHandler(simulationService)

	simulations := rg.Group("/simulations")
	{
		simulations.POST("", h.createSimulation)
		simulations.GET("", h.listSimulations)
		simulations.GET("/all", h.listAllSimulations)
		simulations.GET("/stats", h.getStatistics)
		simulations.GET("/:simulationID", h.getSimulationByID)
		simulations.GET("/:simulationID/cached", h.getCachedSimulation)
		simulations.PUT("/:simulationID", h.updateSimulation)
		simulations.DELETE("/:simulationID", h.deleteSimulation)
	}
}

func parseSimulationID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("simulationID"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid simulation ID"})
		return 0, false
	}
	return id, true
}

// createSimulation godoc
// @Summary Create a loan simulation
// @Description Matches a catalog product for the requested amount/term and computes both SAC and PRICE schedules
// @Tags simulations
// @Accept  json
// @Produce  json
// @Param   simulation body dto.SimulationRequest true "Simulation parameters"
// @Success 201 {object} dto.SimulationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "No eligible product"
// @Failure 500 {object} map[string]string "Failed to create simulation"
// @Security BearerAuth
// @Router /simulations [post]
func (h *simulationHandler) createSimulation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSimulation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.simulationService.CreateSimulation(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoEligibleProduct) {
			logger.Warn("No eligible product for simulation", slog.String("amount", req.DesiredAmount.String()), slog.Int("term", req.Term))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No product accepts the requested amount and term"})
		} else {
			logger.Error("Failed to create simulation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create simulation"})
		}
		return
	}

	logger.Info("Simulation created", slog.Int64("simulation_id", result.ID), slog.Int("product_code", result.ProductCode))
	c.JSON(http.StatusCreated, dto.ToSimulationResponse(result))
}

// getSimulationByID godoc
// @Summary Get a simulation by ID
// @Description Retrieves a persisted simulation with both stored schedules
// @Tags simulations
// @Produce  json
// @Param   simulationID path int true "Simulation ID"
// @Success 200 {object} dto.SimulationResponse
// @Failure 404 {object} map[string]string "Simulation not found"
// @Failure 500 {object} map[string]string "Failed to retrieve simulation"
// @Security BearerAuth
// @Router /simulations/{simulationID} [get]
func (h *simulationHandler) getSimulationByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseSimulationID(c)
	if !ok {
		return
	}

	result, err := h.simulationService.GetSimulationByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Simulation not found"})
		} else {
			logger.Error("Failed to get simulation", slog.Int64("simulation_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve simulation"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSimulationResponse(result))
}

// getCachedSimulation godoc
// @Summary Get a simulation from the cache
// @Description Serves a simulation from the in-memory result cache only; expired or evicted entries yield 404
// @Tags simulations
// @Produce  json
// @Param   simulationID path int true "Simulation ID"
// @Success 200 {object} dto.SimulationResponse
// @Failure 404 {object} map[string]string "Simulation not cached"
// @Security BearerAuth
// @Router /simulations/{simulationID}/cached [get]
func (h *simulationHandler) getCachedSimulation(c *gin.Context) {
	id, ok := parseSimulationID(c)
	if !ok {
		return
	}

	result, err := h.simulationService.GetCachedSimulation(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Simulation not cached"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSimulationResponse(result))
}

// updateSimulation godoc
// @Summary Recompute a simulation
// @Description Rematches the product and rebuilds both schedules for new parameters, preserving the simulation's identity
// @Tags simulations
// @Accept  json
// @Produce  json
// @Param   simulationID path int true "Simulation ID"
// @Param   simulation body dto.SimulationRequest true "New simulation parameters"
// @Success 200 {object} dto.SimulationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Simulation not found"
// @Failure 422 {object} map[string]string "No eligible product"
// @Failure 500 {object} map[string]string "Failed to update simulation"
// @Security BearerAuth
// @Router /simulations/{simulationID} [put]
func (h *simulationHandler) updateSimulation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseSimulationID(c)
	if !ok {
		return
	}

	var req dto.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSimulation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.simulationService.UpdateSimulation(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Simulation not found"})
		case errors.Is(err, apperrors.ErrNoEligibleProduct):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No product accepts the requested amount and term"})
		default:
			logger.Error("Failed to update simulation", slog.Int64("simulation_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update simulation"})
		}
		return
	}

	logger.Info("Simulation updated", slog.Int64("simulation_id", id))
	c.JSON(http.StatusOK, dto.ToSimulationResponse(result))
}

// deleteSimulation godoc
// @Summary Delete a simulation
// @Description Removes a simulation, its installments and its cache entry
// @Tags simulations
// @Param   simulationID path int true "Simulation ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Simulation not found"
// @Failure 500 {object} map[string]string "Failed to delete simulation"
// @Security BearerAuth
// @Router /simulations/{simulationID} [delete]
func (h *simulationHandler) deleteSimulation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseSimulationID(c)
	if !ok {
		return
	}

	if err := h.simulationService.DeleteSimulation(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Simulation not found"})
		} else {
			logger.Error("Failed to delete simulation", slog.Int64("simulation_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete simulation"})
		}
		return
	}

	logger.Info("Simulation deleted", slog.Int64("simulation_id", id))
	c.Status(http.StatusNoContent)
}

// listSimulations godoc
// @Summary List simulations with pagination
// @Description Returns one page of simulation headers, newest first. Optional amount/term bounds filter the collection before slicing. Page metadata is emitted in the X-Pagination header.
// @Tags simulations
// @Produce  json
// @Param   page query int false "Page number (default 1)"
// @Param   pageSize query int false "Page size (default 10)"
// @Param   minAmount query number false "Minimum desired amount (inclusive)"
// @Param   maxAmount query number false "Maximum desired amount (inclusive)"
// @Param   minTerm query int false "Minimum term in months (inclusive)"
// @Param   maxTerm query int false "Maximum term in months (inclusive)"
// @Success 200 {array} dto.SimulationSummaryResponse
// @Header  200 {string} X-Pagination "Page metadata as JSON"
// @Failure 404 {object} map[string]string "No simulations on the requested page"
// @Failure 500 {object} map[string]string "Failed to list simulations"
// @Security BearerAuth
// @Router /simulations [get]
func (h *simulationHandler) listSimulations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.ListSimulationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for ListSimulations", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.simulationService.ListSimulationsPaginated(c.Request.Context(), query.Filter(), query.Params())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No simulations found for the requested page"})
		} else {
			logger.Error("Failed to list simulations", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list simulations"})
		}
		return
	}

	metadata, err := json.Marshal(dto.ToPaginationMetadata(page))
	if err != nil {
		logger.Error("Failed to marshal pagination metadata", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list simulations"})
		return
	}
	c.Header("X-Pagination", string(metadata))

	c.JSON(http.StatusOK, dto.ToSimulationSummaryResponseSlice(page.Items))
}

// listAllSimulations godoc
// @Summary List every simulation
// @Description Returns all persisted simulation headers without pagination
// @Tags simulations
// @Produce  json
// @Success 200 {array} dto.SimulationSummaryResponse
// @Failure 500 {object} map[string]string "Failed to list simulations"
// @Security BearerAuth
// @Router /simulations/all [get]
func (h *simulationHandler) listAllSimulations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sims, err := h.simulationService.ListSimulations(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list all simulations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list simulations"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSimulationSummaryResponseSlice(sims))
}

// getStatistics godoc
// @Summary Get simulation statistics
// @Description Aggregates global and per-product metrics over all persisted simulations
// @Tags simulations
// @Produce  json
// @Success 200 {object} dto.StatisticsResponse
// @Failure 500 {object} map[string]string "Failed to compute statistics"
// @Security BearerAuth
// @Router /simulations/stats [get]
func (h *simulationHandler) getStatistics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.simulationService.GetStatistics(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute statistics", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStatisticsResponse(stats))
}
