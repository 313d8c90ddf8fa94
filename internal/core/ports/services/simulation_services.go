package services

import (
	"context"

	"github.com/loansim/loan_simulation_api/internal/core/domain"
	"github.com/loansim/loan_simulation_api/internal/dto"
	"github.com/loansim/loan_simulation_api/internal/utils/pagination"
)

// SimulationReaderSvc defines the read paths over persisted simulations.
// None of them run the calculator.
type SimulationReaderSvc interface {
	// GetSimulationByID resolves a simulation from the store, schedules
	// included.
	GetSimulationByID(ctx context.Context, id int64) (*domain.SimulationResult, error)

	// GetCachedSimulation resolves a simulation from the cache only.
	// Expired or absent entries yield apperrors.ErrNotFound.
	GetCachedSimulation(id int64) (*domain.SimulationResult, error)

	// ListSimulations retrieves every persisted simulation header.
	ListSimulations(ctx context.Context) ([]domain.Simulation, error)

	// ListSimulationsPaginated filters, orders and slices the persisted
	// simulations into one page.
	ListSimulationsPaginated(ctx context.Context, filter domain.SimulationFilter, params pagination.Params) (pagination.PagedList, error)

	// GetStatistics aggregates global and per-product metrics.
	GetStatistics(ctx context.Context) (*domain.SimulationStatistics, error)
}

// SimulationWriterSvc defines the mutating simulation paths.
type SimulationWriterSvc interface {
	// CreateSimulation matches a product, computes both schedules,
	// persists the result and populates the cache.
	CreateSimulation(ctx context.Context, req dto.SimulationRequest) (*domain.SimulationResult, error)

	// UpdateSimulation recomputes an existing simulation against new
	// parameters, preserving its identity and refreshing the cache.
	UpdateSimulation(ctx context.Context, id int64, req dto.SimulationRequest) (*domain.SimulationResult, error)

	// DeleteSimulation removes a simulation from store and cache.
	DeleteSimulation(ctx context.Context, id int64) error
}

// SimulationSvcFacade combines all simulation-related service interfaces
type SimulationSvcFacade interface {
	SimulationReaderSvc
	SimulationWriterSvc

	// CheckHealth reports API and store health.
	CheckHealth(ctx context.Context) dto.HealthResponse
}

// ProductSvcFacade exposes the read-only product catalog.
type ProductSvcFacade interface {
	// ListProducts retrieves the catalog in catalog order.
	ListProducts(ctx context.Context) ([]domain.Product, error)
}
