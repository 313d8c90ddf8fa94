package services

import (
	portsrepo "github.com/loansim/loan_simulation_api/internal/core/ports/repositories"
	portssvc "github.com/loansim/loan_simulation_api/internal/core/ports/services"
	"github.com/loansim/loan_simulation_api/internal/platform/cache"
)

// Ensure implementations match their facades
var (
	_ portssvc.SimulationSvcFacade = (*SimulationService)(nil)
	_ portssvc.ProductSvcFacade    = (*ProductService)(nil)
	_ portssvc.UserSvcFacade       = (*UserService)(nil)
)

// NewServiceContainer wires every service against the repository provider
// and the shared simulation result cache.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, resultCache *cache.SimulationCache) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Simulation: NewSimulationService(repos.ProductRepo, repos.SimulationRepo, repos.Health, resultCache),
		Product:    NewProductService(repos.ProductRepo),
		User:       NewUserService(repos.UserRepo),
	}
}
