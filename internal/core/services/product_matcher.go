package services

import (
	"github.com/loansim/loan_simulation_api/internal/apperrors"
	"github.com/loansim/loan_simulation_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MatchProduct selects the pricing tier for a requested amount/term pair.
// The first product in catalog order whose eligibility window accepts the
// pair wins; this is first-match, not best-fit, so a caller who wants
// "closest rate" semantics must pre-sort the catalog. No eligible product
// yields apperrors.ErrNoEligibleProduct.
func MatchProduct(amount decimal.Decimal, termMonths int, products []domain.Product) (domain.Product, error) {
	for _, p := range products {
		if p.Accepts(amount, termMonths) {
			return p, nil
		}
	}
	return domain.Product{}, apperrors.ErrNoEligibleProduct
}
