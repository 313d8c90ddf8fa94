package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/loansim/loan_simulation_api/internal/apperrors"
	"github.com/loansim/loan_simulation_api/internal/core/domain"
	portsrepo "github.com/loansim/loan_simulation_api/internal/core/ports/repositories"
	"github.com/loansim/loan_simulation_api/internal/dto"
	"github.com/loansim/loan_simulation_api/internal/platform/cache"
	"github.com/loansim/loan_simulation_api/internal/utils/amortization"
	"github.com/loansim/loan_simulation_api/internal/utils/pagination"
)

// SimulationService runs the simulation pipeline: product matching, the two
// schedule calculators, persistence and the result cache. The cache is owned
// by the service instance; nothing global.
type SimulationService struct {
	productRepo    portsrepo.ProductRepositoryFacade
	simulationRepo portsrepo.SimulationRepositoryFacade
	health         portsrepo.HealthChecker
	cache          *cache.SimulationCache
	startedAt      time.Time
}

// NewSimulationService wires the service with its store collaborators and
// its result cache.
func NewSimulationService(
	productRepo portsrepo.ProductRepositoryFacade,
	simulationRepo portsrepo.SimulationRepositoryFacade,
	health portsrepo.HealthChecker,
	resultCache *cache.SimulationCache,
) *SimulationService {
	return &SimulationService{
		productRepo:    productRepo,
		simulationRepo: simulationRepo,
		health:         health,
		cache:          resultCache,
		startedAt:      time.Now(),
	}
}

// buildSchedules runs both calculators for the given triple, SAC first.
func buildSchedules(sim domain.Simulation) []domain.Schedule {
	return []domain.Schedule{
		{
			Type:         domain.ScheduleSAC,
			Installments: amortization.ConstantAmortization(sim.Amount, sim.InterestRate, sim.TermMonths),
		},
		{
			Type:         domain.SchedulePrice,
			Installments: amortization.ConstantInstallment(sim.Amount, sim.InterestRate, sim.TermMonths),
		},
	}
}

// CreateSimulation matches a product for the requested parameters, computes
// both schedules, persists everything atomically and places the result in
// the cache. Store faults pass through unmodified.
func (s *SimulationService) CreateSimulation(ctx context.Context, req dto.SimulationRequest) (*domain.SimulationResult, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load product catalog: %w", err)
	}

	product, err := MatchProduct(req.DesiredAmount, req.Term, products)
	if err != nil {
		return nil, err
	}

	sim := domain.Simulation{
		ProductCode:  product.Code,
		Amount:       req.DesiredAmount,
		TermMonths:   req.Term,
		InterestRate: product.InterestRate,
		CreatedAt:    time.Now(),
	}
	schedules := buildSchedules(sim)

	id, err := s.simulationRepo.InsertSimulation(ctx, sim, schedules)
	if err != nil {
		return nil, fmt.Errorf("failed to persist simulation: %w", err)
	}
	sim.ID = id

	result := domain.SimulationResult{
		Simulation:  sim,
		ProductName: product.Name,
		Schedules:   schedules,
	}
	s.cache.Set(id, result)

	return &result, nil
}

// GetSimulationByID resolves a simulation from the store. A product that
// has meanwhile left the catalog degrades the display name to empty rather
// than failing the lookup.
func (s *SimulationService) GetSimulationByID(ctx context.Context, id int64) (*domain.SimulationResult, error) {
	sim, schedules, err := s.simulationRepo.FindSimulationByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var productName string
	product, err := s.productRepo.FindProductByCode(ctx, sim.ProductCode)
	switch {
	case err == nil:
		productName = product.Name
	case errors.Is(err, apperrors.ErrNotFound):
		// keep the lookup usable
	default:
		return nil, fmt.Errorf("failed to resolve product %d: %w", sim.ProductCode, err)
	}

	return &domain.SimulationResult{
		Simulation:  *sim,
		ProductName: productName,
		Schedules:   schedules,
	}, nil
}

// GetCachedSimulation serves the cache-only read path. Absent and expired
// entries are the same thing: not found.
func (s *SimulationService) GetCachedSimulation(id int64) (*domain.SimulationResult, error) {
	result, ok := s.cache.Get(id)
	if !ok {
		return nil, fmt.Errorf("simulation %d not cached: %w", id, apperrors.ErrNotFound)
	}
	return &result, nil
}

// UpdateSimulation recomputes an existing simulation for new parameters:
// product is rematched, both schedules are rebuilt and replace the stored
// ones, identity is preserved. The cache entry is invalidated before being
// repopulated with the new result.
func (s *SimulationService) UpdateSimulation(ctx context.Context, id int64, req dto.SimulationRequest) (*domain.SimulationResult, error) {
	existing, _, err := s.simulationRepo.FindSimulationByID(ctx, id)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load product catalog: %w", err)
	}
	product, err := MatchProduct(req.DesiredAmount, req.Term, products)
	if err != nil {
		return nil, err
	}

	sim := domain.Simulation{
		ID:           existing.ID,
		ProductCode:  product.Code,
		Amount:       req.DesiredAmount,
		TermMonths:   req.Term,
		InterestRate: product.InterestRate,
		CreatedAt:    time.Now(),
	}
	schedules := buildSchedules(sim)

	if err := s.simulationRepo.UpdateSimulation(ctx, sim, schedules); err != nil {
		return nil, fmt.Errorf("failed to update simulation %d: %w", id, err)
	}

	result := domain.SimulationResult{
		Simulation:  sim,
		ProductName: product.Name,
		Schedules:   schedules,
	}
	s.cache.Remove(id)
	s.cache.Set(id, result)

	return &result, nil
}

// DeleteSimulation removes a simulation from the store and invalidates its
// cache entry.
func (s *SimulationService) DeleteSimulation(ctx context.Context, id int64) error {
	if err := s.simulationRepo.DeleteSimulation(ctx, id); err != nil {
		return err
	}
	s.cache.Remove(id)
	return nil
}

// ListSimulations retrieves every persisted simulation header.
func (s *SimulationService) ListSimulations(ctx context.Context) ([]domain.Simulation, error) {
	sims, err := s.simulationRepo.ListSimulations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list simulations: %w", err)
	}
	if sims == nil {
		return []domain.Simulation{}, nil
	}
	return sims, nil
}

// ListSimulationsPaginated loads the persisted collection and hands it to
// the pagination engine. An empty page surfaces as ErrNotFound.
func (s *SimulationService) ListSimulationsPaginated(ctx context.Context, filter domain.SimulationFilter, params pagination.Params) (pagination.PagedList, error) {
	sims, err := s.simulationRepo.ListSimulations(ctx)
	if err != nil {
		return pagination.PagedList{}, fmt.Errorf("failed to list simulations: %w", err)
	}
	return pagination.Paginate(sims, filter, params)
}

// GetStatistics aggregates global and per-product metrics over all
// persisted simulations.
func (s *SimulationService) GetStatistics(ctx context.Context) (*domain.SimulationStatistics, error) {
	count, err := s.simulationRepo.CountSimulations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count simulations: %w", err)
	}
	if count == 0 {
		stats := AggregateStatistics(nil, nil, time.Now())
		return &stats, nil
	}

	sims, err := s.simulationRepo.ListSimulations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list simulations: %w", err)
	}
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load product catalog: %w", err)
	}

	stats := AggregateStatistics(sims, products, time.Now())
	return &stats, nil
}

// CheckHealth reports API liveness, store reachability and process uptime.
// A failing store degrades the database field instead of failing the call.
func (s *SimulationService) CheckHealth(ctx context.Context) dto.HealthResponse {
	resp := dto.HealthResponse{
		StatusAPI:     "OK",
		CheckedAt:     time.Now(),
		UptimeSeconds: int64(time.Since(s.startedAt).Seconds()),
	}
	if err := s.health.Ping(ctx); err != nil {
		resp.StatusDatabase = "Error"
		resp.DatabaseError = err.Error()
	} else {
		resp.StatusDatabase = "OK"
	}
	return resp
}
