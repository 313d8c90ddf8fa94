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
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new repository for the product catalog.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

// ListProducts retrieves the whole catalog ordered by product code, which
// is the catalog's matching order.
func (r *PgxProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT co_produto, no_produto, pc_taxa_juros, nu_minimo_meses, nu_maximo_meses, vr_minimo, vr_maximo
		FROM produto
		ORDER BY co_produto;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	modelProducts, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Product])
	if err != nil {
		return nil, fmt.Errorf("failed to collect product rows: %w", err)
	}

	return mapping.ToDomainProductSlice(modelProducts), nil
}

// FindProductByCode retrieves a single product by its code.
func (r *PgxProductRepository) FindProductByCode(ctx context.Context, code int) (*domain.Product, error) {
	query := `
		SELECT co_produto, no_produto, pc_taxa_juros, nu_minimo_meses, nu_maximo_meses, vr_minimo, vr_maximo
		FROM produto
		WHERE co_produto = $1;
	`
	var m models.Product
	err := r.Pool.QueryRow(ctx, query, code).Scan(
		&m.Code,
		&m.Name,
		&m.InterestRate,
		&m.MinTermMonths,
		&m.MaxTermMonths,
		&m.MinAmount,
		&m.MaxAmount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product %d: %w", code, err)
	}

	product := mapping.ToDomainProduct(m)
	return &product, nil
}
