package mapping

import (
	"github.com/loansim/loan_simulation_api/internal/core/domain"
	"github.com/loansim/loan_simulation_api/internal/models"
)

// ToDomainProduct converts a model Product to a domain Product
func ToDomainProduct(m models.Product) domain.Product {
	d := domain.Product{
		Code:          m.Code,
		Name:          m.Name,
		InterestRate:  m.InterestRate,
		MinTermMonths: int(m.MinTermMonths),
		MinAmount:     m.MinAmount,
		MaxAmount:     m.MaxAmount,
	}
	if m.MaxTermMonths != nil {
		maxTerm := int(*m.MaxTermMonths)
		d.MaxTermMonths = &maxTerm
	}
	return d
}

// ToDomainProductSlice converts a slice of model Products to domain Products
func ToDomainProductSlice(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}
