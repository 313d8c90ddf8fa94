package repositories

import (
	"context"

	"github.com/loansim/loan_simulation_api/internal/core/domain"
)

// ProductReader defines read operations over the loan product catalog.
// The catalog is reference data; there is no writer.
type ProductReader interface {
	// ListProducts retrieves the whole catalog in its stable catalog order.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// FindProductByCode retrieves a single product by its code.
	FindProductByCode(ctx context.Context, code int) (*domain.Product, error)
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
}
