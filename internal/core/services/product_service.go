package services

import (
	"context"
	"fmt"

	"github.com/loansim/loan_simulation_api/internal/core/domain"
	portsrepo "github.com/loansim/loan_simulation_api/internal/core/ports/repositories"
)

// ProductService exposes the read-only loan product catalog.
type ProductService struct {
	productRepo portsrepo.ProductRepositoryFacade
}

func NewProductService(productRepo portsrepo.ProductRepositoryFacade) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ListProducts retrieves the catalog in catalog order.
func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load product catalog: %w", err)
	}
	if products == nil {
		return []domain.Product{}, nil
	}
	return products, nil
}
