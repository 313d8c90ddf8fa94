package repositories

import (
	"context"

	"github.com/loansim/loan_simulation_api/internal/core/domain"
)

// SimulationReader defines read operations for persisted simulations.
type SimulationReader interface {
	// FindSimulationByID retrieves a simulation header together with its
	// stored schedules. Returns apperrors.ErrNotFound when absent.
	FindSimulationByID(ctx context.Context, id int64) (*domain.Simulation, []domain.Schedule, error)

	// ListSimulations retrieves all persisted simulation headers.
	ListSimulations(ctx context.Context) ([]domain.Simulation, error)

	// CountSimulations reports how many simulations are persisted.
	CountSimulations(ctx context.Context) (int64, error)
}

// SimulationWriter defines write operations for persisted simulations.
// Implementations must write the header and its installments atomically so
// a partial failure cannot leave an orphaned header behind.
type SimulationWriter interface {
	// InsertSimulation persists a new simulation with both schedules and
	// returns the store-assigned identity.
	InsertSimulation(ctx context.Context, sim domain.Simulation, schedules []domain.Schedule) (int64, error)

	// UpdateSimulation replaces the header fields and all installments of
	// an existing simulation, preserving its identity.
	UpdateSimulation(ctx context.Context, sim domain.Simulation, schedules []domain.Schedule) error

	// DeleteSimulation removes a simulation and its installments.
	DeleteSimulation(ctx context.Context, id int64) error
}

// SimulationRepositoryFacade combines all simulation-related repository interfaces
type SimulationRepositoryFacade interface {
	SimulationReader
	SimulationWriter
}
