package repositories

import (
	"context"

	"github.com/loansim/loan_simulation_api/internal/core/domain"
)

// UserReader defines read operations for API user accounts.
type UserReader interface {
	// FindUserByUsername retrieves a user by username. Returns
	// apperrors.ErrNotFound when absent.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserWriter defines write operations for API user accounts.
type UserWriter interface {
	// SaveUser persists a new user and returns the store-assigned identity.
	// Returns apperrors.ErrDuplicate when the username or email is taken.
	SaveUser(ctx context.Context, user domain.User) (int64, error)
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
