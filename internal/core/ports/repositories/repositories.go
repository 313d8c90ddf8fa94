package repositories

import "context"

// HealthChecker verifies that the backing store answers a trivial query.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ProductRepo    ProductRepositoryFacade
	SimulationRepo SimulationRepositoryFacade
	UserRepo       UserRepositoryFacade
	Health         HealthChecker
}
