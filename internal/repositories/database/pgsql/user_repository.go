package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/loansim/loan_simulation_api/internal/apperrors"
	"github.com/loansim/loan_simulation_api/internal/core/domain"
	portsrepo "github.com/loansim/loan_simulation_api/internal/core/ports/repositories"
	"github.com/loansim/loan_simulation_api/internal/models"
	"github.com/loansim/loan_simulation_api/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for API user accounts.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// SaveUser persists a new user and returns the store-assigned identity.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) (int64, error) {
	modelUser := mapping.ToModelUser(user)

	query := `
		INSERT INTO usuario (usuario, nome, email, senha_hash, criado_em)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_usuario;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		modelUser.Username,
		modelUser.Name,
		modelUser.Email,
		modelUser.PasswordHash,
		modelUser.CreatedAt,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return 0, apperrors.ErrDuplicate
		}
		return 0, fmt.Errorf("failed to save user %s: %w", modelUser.Username, err)
	}
	return id, nil
}

// FindUserByUsername retrieves a user by username.
func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id_usuario, usuario, nome, email, senha_hash, criado_em
		FROM usuario
		WHERE usuario = $1;
	`
	var m models.User
	err := r.Pool.QueryRow(ctx, query, username).Scan(
		&m.ID,
		&m.Username,
		&m.Name,
		&m.Email,
		&m.PasswordHash,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user %s: %w", username, err)
	}

	user := mapping.ToDomainUser(m)
	return &user, nil
}
