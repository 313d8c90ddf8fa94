package services_test

import (
	"testing"
	"time"

	"github.com/loansim/loan_simulation_api/internal/core/domain"
	"github.com/loansim/loan_simulation_api/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sim(code int, amount string, term int, rate string) domain.Simulation {
	return domain.Simulation{
		ProductCode:  code,
		Amount:       decimal.RequireFromString(amount),
		TermMonths:   term,
		InterestRate: decimal.RequireFromString(rate),
	}
}

func TestAggregateStatistics_Empty(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	stats := services.AggregateStatistics(nil, nil, now)

	assert.Equal(t, int64(0), stats.TotalSimulations)
	assert.True(t, stats.AverageAmount.IsZero())
	assert.Equal(t, 0, stats.AverageTerm)
	assert.True(t, stats.AverageRate.IsZero())
	assert.Equal(t, now, stats.LastUpdated)
	require.NotNil(t, stats.PerProduct)
	assert.Empty(t, stats.PerProduct)
}

func TestAggregateStatistics_GroupsAndOrders(t *testing.T) {
	products := testCatalog()
	sims := []domain.Simulation{
		sim(2, "20000.00", 30, "0.0175"),
		sim(1, "1000.00", 12, "0.0179"),
		sim(1, "3000.00", 24, "0.0179"),
		sim(2, "40000.00", 36, "0.0175"),
	}
	now := time.Now()

	stats := services.AggregateStatistics(sims, products, now)

	assert.Equal(t, int64(4), stats.TotalSimulations)
	assert.Equal(t, "16000.00", stats.AverageAmount.StringFixed(2))
	assert.Equal(t, 26, stats.AverageTerm) // 102/4 = 25.5 rounds away from zero
	assert.Equal(t, "0.017700", stats.AverageRate.StringFixed(6))

	require.Len(t, stats.PerProduct, 2)
	assert.Equal(t, 1, stats.PerProduct[0].ProductCode)
	assert.Equal(t, 2, stats.PerProduct[1].ProductCode)

	tier1 := stats.PerProduct[0]
	assert.Equal(t, "Tier 1", tier1.ProductName)
	assert.Equal(t, int64(2), tier1.Count)
	assert.Equal(t, "2000.00", tier1.AverageAmount.StringFixed(2))
	assert.Equal(t, 18, tier1.AverageTerm)
	assert.Equal(t, "0.017900", tier1.AverageRate.StringFixed(6))

	tier2 := stats.PerProduct[1]
	assert.Equal(t, int64(2), tier2.Count)
	assert.Equal(t, "30000.00", tier2.AverageAmount.StringFixed(2))
	assert.Equal(t, 33, tier2.AverageTerm)
}

func TestAggregateStatistics_UnknownProductCodeStaysOutOfBreakdown(t *testing.T) {
	products := testCatalog()
	sims := []domain.Simulation{
		sim(1, "1000.00", 12, "0.0179"),
		sim(99, "9000.00", 10, "0.0200"), // code not in catalog
	}

	stats := services.AggregateStatistics(sims, products, time.Now())

	// totals see both simulations, the breakdown only the known code
	assert.Equal(t, int64(2), stats.TotalSimulations)
	assert.Equal(t, "5000.00", stats.AverageAmount.StringFixed(2))
	require.Len(t, stats.PerProduct, 1)
	assert.Equal(t, 1, stats.PerProduct[0].ProductCode)
	assert.Equal(t, int64(1), stats.PerProduct[0].Count)
}

func TestAggregateStatistics_AverageRounding(t *testing.T) {
	products := testCatalog()
	sims := []domain.Simulation{
		sim(1, "100.01", 1, "0.0000005"),
		sim(1, "100.02", 2, "0.0000005"),
		sim(1, "100.04", 2, "0.0000005"),
	}

	stats := services.AggregateStatistics(sims, products, time.Now())

	// 300.07/3 = 100.02333... -> 100.02
	assert.Equal(t, "100.02", stats.AverageAmount.StringFixed(2))
	// 5/3 = 1.666... -> 2
	assert.Equal(t, 2, stats.AverageTerm)
	// 0.0000005 averages to itself and rounds half away from zero at 6 digits
	assert.Equal(t, "0.000001", stats.AverageRate.StringFixed(6))
}
