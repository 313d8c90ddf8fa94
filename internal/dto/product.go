package dto

import (
	"github.com/loansim/loan_simulation_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProductResponse is one catalog tier on the wire.
type ProductResponse struct {
	ProductCode   int              `json:"productCode"`
	ProductName   string           `json:"productName"`
	InterestRate  decimal.Decimal  `json:"interestRate"`
	MinTermMonths int              `json:"minTermMonths"`
	MaxTermMonths *int             `json:"maxTermMonths,omitempty"`
	MinAmount     decimal.Decimal  `json:"minAmount"`
	MaxAmount     *decimal.Decimal `json:"maxAmount,omitempty"`
}

// ToProductResponse converts a domain Product.
func ToProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ProductCode:   p.Code,
		ProductName:   p.Name,
		InterestRate:  p.InterestRate,
		MinTermMonths: p.MinTermMonths,
		MaxTermMonths: p.MaxTermMonths,
		MinAmount:     p.MinAmount,
		MaxAmount:     p.MaxAmount,
	}
}

// ToProductResponseSlice converts a product catalog.
func ToProductResponseSlice(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i, p := range products {
		res[i] = ToProductResponse(p)
	}
	return res
}
