package pagination_test

import (
	"testing"
	"time"

	"github.com/loansim/loan_simulation_api/internal/apperrors"
	"github.com/loansim/loan_simulation_api/internal/core/domain"
	"github.com/loansim/loan_simulation_api/internal/utils/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSimulations(n int) []domain.Simulation {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	sims := make([]domain.Simulation, n)
	for i := range sims {
		sims[i] = domain.Simulation{
			ID:           int64(i + 1),
			ProductCode:  1,
			Amount:       decimal.NewFromInt(int64(1000 * (i + 1))),
			TermMonths:   6 + i,
			InterestRate: decimal.NewFromFloat(0.0179),
			CreatedAt:    base.Add(time.Duration(i) * time.Hour),
		}
	}
	return sims
}

func TestPaginate_OrdersMostRecentFirst(t *testing.T) {
	sims := makeSimulations(5)

	page, err := pagination.Paginate(sims, domain.SimulationFilter{}, pagination.Params{Page: 1, PageSize: 10})
	require.NoError(t, err)

	require.Len(t, page.Items, 5)
	for i := 1; i < len(page.Items); i++ {
		assert.False(t, page.Items[i].CreatedAt.After(page.Items[i-1].CreatedAt))
	}
	assert.Equal(t, int64(5), page.Items[0].ID)
}

func TestPaginate_NormalizesInvalidParams(t *testing.T) {
	sims := makeSimulations(3)

	page, err := pagination.Paginate(sims, domain.SimulationFilter{}, pagination.Params{Page: -2, PageSize: 0})
	require.NoError(t, err)

	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 10, page.PageSize)
	assert.Len(t, page.Items, 3)
}

func TestPaginate_PageWalkReproducesCollection(t *testing.T) {
	const total = 23
	const pageSize = 5
	sims := makeSimulations(total)

	seen := map[int64]bool{}
	var walked []domain.Simulation
	for p := 1; ; p++ {
		page, err := pagination.Paginate(sims, domain.SimulationFilter{}, pagination.Params{Page: p, PageSize: pageSize})
		if err != nil {
			require.ErrorIs(t, err, apperrors.ErrNotFound)
			break
		}
		assert.Equal(t, total, page.TotalCount)
		assert.Equal(t, 5, page.TotalPages) // ceil(23/5)
		assert.Equal(t, p > 1, page.HasPrevious())
		assert.Equal(t, p < page.TotalPages, page.HasNext())
		for _, s := range page.Items {
			assert.False(t, seen[s.ID], "simulation %d duplicated across pages", s.ID)
			seen[s.ID] = true
		}
		walked = append(walked, page.Items...)
	}

	require.Len(t, walked, total)
	for i := 1; i < len(walked); i++ {
		assert.False(t, walked[i].CreatedAt.After(walked[i-1].CreatedAt))
	}
}

func TestPaginate_SinglePageBoundaries(t *testing.T) {
	sims := makeSimulations(4)

	page, err := pagination.Paginate(sims, domain.SimulationFilter{}, pagination.Params{Page: 1, PageSize: 10})
	require.NoError(t, err)

	assert.Equal(t, 1, page.TotalPages)
	assert.False(t, page.HasPrevious())
	assert.False(t, page.HasNext())
}

func TestPaginate_FiltersAreInclusiveAndCombined(t *testing.T) {
	sims := makeSimulations(10) // amounts 1000..10000, terms 6..15

	minAmount := decimal.NewFromInt(3000)
	maxAmount := decimal.NewFromInt(7000)
	minTerm := 9
	maxTerm := 11
	filter := domain.SimulationFilter{
		MinAmount: &minAmount,
		MaxAmount: &maxAmount,
		MinTerm:   &minTerm,
		MaxTerm:   &maxTerm,
	}

	page, err := pagination.Paginate(sims, filter, pagination.Params{Page: 1, PageSize: 10})
	require.NoError(t, err)

	// amount bounds keep ids 3..7, term bounds keep ids 4..6
	require.Len(t, page.Items, 3)
	for _, s := range page.Items {
		assert.True(t, s.Amount.GreaterThanOrEqual(minAmount))
		assert.True(t, s.Amount.LessThanOrEqual(maxAmount))
		assert.GreaterOrEqual(t, s.TermMonths, minTerm)
		assert.LessOrEqual(t, s.TermMonths, maxTerm)
	}
}

func TestPaginate_EmptyResultIsNotFound(t *testing.T) {
	sims := makeSimulations(5)
	minAmount := decimal.NewFromInt(999999)

	_, err := pagination.Paginate(sims, domain.SimulationFilter{MinAmount: &minAmount}, pagination.Params{Page: 1, PageSize: 10})
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = pagination.Paginate(nil, domain.SimulationFilter{}, pagination.Params{Page: 1, PageSize: 10})
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPaginate_PageBeyondRangeIsNotFound(t *testing.T) {
	sims := makeSimulations(5)

	_, err := pagination.Paginate(sims, domain.SimulationFilter{}, pagination.Params{Page: 3, PageSize: 5})
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}
