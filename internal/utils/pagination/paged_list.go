// Package pagination slices persisted simulation collections into fixed-size
// pages. Filtering, ordering and slicing all happen here so the store can
// stay a plain row source.
package pagination

import (
	"fmt"
	"sort"

	"github.com/loansim/loan_simulation_api/internal/apperrors"
	"github.com/loansim/loan_simulation_api/internal/core/domain"
)

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
)

// Params are the caller-supplied page coordinates. Out-of-range values are
// normalized to defaults, not rejected.
type Params struct {
	Page     int `form:"page"`
	PageSize int `form:"pageSize"`
}

// Normalize replaces non-positive page number/size with the defaults.
func (p Params) Normalize() Params {
	if p.Page <= 0 {
		p.Page = DefaultPageNumber
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	return p
}

// PagedList is one page of simulations plus the metadata needed to walk the
// whole collection.
type PagedList struct {
	Items       []domain.Simulation
	TotalCount  int
	TotalPages  int
	PageSize    int
	CurrentPage int
}

// HasPrevious reports whether a page precedes the current one.
func (p PagedList) HasPrevious() bool { return p.CurrentPage > 1 }

// HasNext reports whether a page follows the current one.
func (p PagedList) HasNext() bool { return p.CurrentPage < p.TotalPages }

// Paginate filters the source with the provided bounds (AND semantics),
// orders it by creation timestamp descending and returns the requested
// page. An empty result after filtering or an out-of-range page yields
// apperrors.ErrNotFound, matching the listing contract: a page with zero
// rows is reported as "nothing found", not as an empty success.
func Paginate(source []domain.Simulation, filter domain.SimulationFilter, params Params) (PagedList, error) {
	params = params.Normalize()

	filtered := make([]domain.Simulation, 0, len(source))
	for _, s := range source {
		if filter.Matches(s) {
			filtered = append(filtered, s)
		}
	}

	// Most recent first; id breaks timestamp ties so page walks are stable.
	sort.SliceStable(filtered, func(i, j int) bool {
		if !filtered[i].CreatedAt.Equal(filtered[j].CreatedAt) {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		}
		return filtered[i].ID > filtered[j].ID
	})

	totalCount := len(filtered)
	totalPages := (totalCount + params.PageSize - 1) / params.PageSize

	start := (params.Page - 1) * params.PageSize
	end := start + params.PageSize
	if start > totalCount {
		start = totalCount
	}
	if end > totalCount {
		end = totalCount
	}
	items := filtered[start:end]

	if len(items) == 0 {
		return PagedList{}, fmt.Errorf("no simulations on page %d: %w", params.Page, apperrors.ErrNotFound)
	}

	return PagedList{
		Items:       items,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		PageSize:    params.PageSize,
		CurrentPage: params.Page,
	}, nil
}
