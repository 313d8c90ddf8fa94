package services_test

import (
	"testing"

	"github.com/loansim/loan_simulation_api/internal/apperrors"
	"github.com/loansim/loan_simulation_api/internal/core/domain"
	"github.com/loansim/loan_simulation_api/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func testCatalog() []domain.Product {
	return []domain.Product{
		{
			Code:          1,
			Name:          "Tier 1",
			InterestRate:  decimal.RequireFromString("0.017900000"),
			MinTermMonths: 0,
			MaxTermMonths: intPtr(24),
			MinAmount:     decimal.RequireFromString("200.00"),
			MaxAmount:     decPtr("10000.00"),
		},
		{
			Code:          2,
			Name:          "Tier 2",
			InterestRate:  decimal.RequireFromString("0.017500000"),
			MinTermMonths: 25,
			MaxTermMonths: intPtr(48),
			MinAmount:     decimal.RequireFromString("10000.01"),
			MaxAmount:     decPtr("100000.00"),
		},
		{
			Code:          3,
			Name:          "Tier 3",
			InterestRate:  decimal.RequireFromString("0.018200000"),
			MinTermMonths: 49,
			MaxTermMonths: intPtr(96),
			MinAmount:     decimal.RequireFromString("100000.01"),
			MaxAmount:     decPtr("1000000.00"),
		},
		{
			Code:          4,
			Name:          "Tier 4",
			InterestRate:  decimal.RequireFromString("0.015100000"),
			MinTermMonths: 97,
			MaxTermMonths: nil,
			MinAmount:     decimal.RequireFromString("1000000.01"),
			MaxAmount:     nil,
		},
	}
}

func TestMatchProduct_SelectsTierByWindow(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name     string
		amount   string
		term     int
		wantCode int
	}{
		{"first tier mid-window", "5000.00", 12, 1},
		{"second tier", "50000.00", 36, 2},
		{"third tier", "500000.00", 72, 3},
		{"open-ended top tier", "2000000.00", 120, 4},
		{"inclusive lower amount bound", "200.00", 12, 1},
		{"inclusive upper amount bound", "10000.00", 24, 1},
		{"inclusive upper term bound", "10000.00", 24, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := services.MatchProduct(decimal.RequireFromString(tc.amount), tc.term, catalog)
			require.NoError(t, err)
			assert.Equal(t, tc.wantCode, p.Code)
		})
	}
}

func TestMatchProduct_NoEligibleProduct(t *testing.T) {
	catalog := testCatalog()

	// amount fits tier 1 but term overshoots it; no other tier takes it
	_, err := services.MatchProduct(decimal.RequireFromString("5000.00"), 48, catalog)
	assert.ErrorIs(t, err, apperrors.ErrNoEligibleProduct)

	// below every minimum amount
	_, err = services.MatchProduct(decimal.RequireFromString("150.00"), 12, catalog)
	assert.ErrorIs(t, err, apperrors.ErrNoEligibleProduct)
}

func TestMatchProduct_FirstMatchWinsOnOverlap(t *testing.T) {
	overlapping := []domain.Product{
		{Code: 10, Name: "A", MinTermMonths: 1, MinAmount: decimal.RequireFromString("100.00")},
		{Code: 20, Name: "B", MinTermMonths: 1, MinAmount: decimal.RequireFromString("100.00")},
	}

	p, err := services.MatchProduct(decimal.RequireFromString("1000.00"), 12, overlapping)
	require.NoError(t, err)
	assert.Equal(t, 10, p.Code)
}

func TestMatchProduct_EmptyCatalog(t *testing.T) {
	_, err := services.MatchProduct(decimal.RequireFromString("1000.00"), 12, nil)
	assert.ErrorIs(t, err, apperrors.ErrNoEligibleProduct)
}
