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
	"github.com/loansim/loan_simulation_api/internal/utils"
)

// UserService manages API accounts and credential verification.
type UserService struct {
	userRepo portsrepo.UserRepositoryFacade
}

func NewUserService(userRepo portsrepo.UserRepositoryFacade) *UserService {
	return &UserService{userRepo: userRepo}
}

// RegisterUser creates an account with a bcrypt-hashed password.
func (s *UserService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		Username:     req.Username,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	id, err := s.userRepo.SaveUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	return &user, nil
}

// Authenticate verifies a username/password pair. An unknown username and a
// wrong password both come back as ErrUnauthorized so callers cannot probe
// for accounts.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}
