package services

import (
	"context"

	"github.com/loansim/loan_simulation_api/internal/core/domain"
	"github.com/loansim/loan_simulation_api/internal/dto"
)

// UserSvcFacade manages API accounts and credential checks.
type UserSvcFacade interface {
	// RegisterUser creates an account with a hashed password.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// Authenticate verifies a username/password pair. Wrong credentials
	// yield apperrors.ErrUnauthorized.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}
