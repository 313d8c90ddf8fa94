package pgsql

import (
	portsrepo "github.com/loansim/loan_simulation_api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	productRepo := newPgxProductRepository(dbPool)
	simulationRepo := newPgxSimulationRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return &portsrepo.RepositoryProvider{
		ProductRepo:    productRepo,
		SimulationRepo: simulationRepo,
		UserRepo:       userRepo,
		Health:         &BaseRepository{Pool: dbPool},
	}
}
