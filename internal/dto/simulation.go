package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/loansim/loan_simulation_api/internal/core/domain"
	"github.com/loansim/loan_simulation_api/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// Upstream bounds for a simulation request. Term is additionally capped by
// the engine contract at 240 periods.
var (
	minDesiredAmount = decimal.NewFromInt(100)
	maxDesiredAmount = decimal.NewFromInt(10_000_000)
)

// SimulationRequest is the payload to create or recompute a simulation.
type SimulationRequest struct {
	DesiredAmount decimal.Decimal `json:"desiredAmount" binding:"required,desiredamount"`
	Term          int             `json:"term" binding:"required,gte=1,lte=240"`
}

// RegisterCustomValidations installs the decimal-aware validators used by
// the binding tags above. Must be called once against gin's binding engine
// before the routes are served.
func RegisterCustomValidations(v *validator.Validate) error {
	return v.RegisterValidation("desiredamount", func(fl validator.FieldLevel) bool {
		amount, ok := fl.Field().Interface().(decimal.Decimal)
		if !ok {
			return false
		}
		return amount.GreaterThanOrEqual(minDesiredAmount) && amount.LessThanOrEqual(maxDesiredAmount)
	})
}

// ListSimulationsQuery carries the page coordinates and optional filter
// bounds of the paginated listing endpoint.
type ListSimulationsQuery struct {
	Page      int      `form:"page"`
	PageSize  int      `form:"pageSize"`
	MinAmount *float64 `form:"minAmount"`
	MaxAmount *float64 `form:"maxAmount"`
	MinTerm   *int     `form:"minTerm"`
	MaxTerm   *int     `form:"maxTerm"`
}

// Params extracts the pagination parameters.
func (q ListSimulationsQuery) Params() pagination.Params {
	return pagination.Params{Page: q.Page, PageSize: q.PageSize}
}

// Filter converts the optional query bounds into a domain filter.
func (q ListSimulationsQuery) Filter() domain.SimulationFilter {
	var f domain.SimulationFilter
	if q.MinAmount != nil {
		min := decimal.NewFromFloat(*q.MinAmount)
		f.MinAmount = &min
	}
	if q.MaxAmount != nil {
		max := decimal.NewFromFloat(*q.MaxAmount)
		f.MaxAmount = &max
	}
	f.MinTerm = q.MinTerm
	f.MaxTerm = q.MaxTerm
	return f
}

// InstallmentResponse is one schedule period on the wire.
type InstallmentResponse struct {
	Number       int             `json:"number"`
	Amortization decimal.Decimal `json:"amortization"`
	Interest     decimal.Decimal `json:"interest"`
	Payment      decimal.Decimal `json:"payment"`
}

// ScheduleResponse is one amortization system's full table.
type ScheduleResponse struct {
	Type         string                `json:"type"`
	Installments []InstallmentResponse `json:"installments"`
}

// SimulationResponse is the fully resolved simulation returned by the
// create, read and recompute endpoints.
type SimulationResponse struct {
	SimulationID       int64              `json:"simulationId"`
	DesiredAmount      decimal.Decimal    `json:"desiredAmount"`
	Term               int                `json:"term"`
	ProductCode        int                `json:"productCode"`
	ProductDescription string             `json:"productDescription"`
	Rate               decimal.Decimal    `json:"rate"`
	Schedules          []ScheduleResponse `json:"schedules"`
}

// ToSimulationResponse converts a domain SimulationResult to its wire form.
func ToSimulationResponse(r *domain.SimulationResult) SimulationResponse {
	schedules := make([]ScheduleResponse, len(r.Schedules))
	for i, s := range r.Schedules {
		installments := make([]InstallmentResponse, len(s.Installments))
		for j, inst := range s.Installments {
			installments[j] = InstallmentResponse{
				Number:       inst.Number,
				Amortization: inst.Amortization,
				Interest:     inst.Interest,
				Payment:      inst.Payment,
			}
		}
		schedules[i] = ScheduleResponse{Type: string(s.Type), Installments: installments}
	}

	return SimulationResponse{
		SimulationID:       r.ID,
		DesiredAmount:      r.Amount,
		Term:               r.TermMonths,
		ProductCode:        r.ProductCode,
		ProductDescription: r.ProductName,
		Rate:               r.InterestRate,
		Schedules:          schedules,
	}
}

// SimulationSummaryResponse is a listing row: the header without schedules.
type SimulationSummaryResponse struct {
	SimulationID  int64           `json:"simulationId"`
	ProductCode   int             `json:"productCode"`
	DesiredAmount decimal.Decimal `json:"desiredAmount"`
	Term          int             `json:"term"`
	Rate          decimal.Decimal `json:"rate"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToSimulationSummaryResponse converts a domain Simulation header.
func ToSimulationSummaryResponse(s domain.Simulation) SimulationSummaryResponse {
	return SimulationSummaryResponse{
		SimulationID:  s.ID,
		ProductCode:   s.ProductCode,
		DesiredAmount: s.Amount,
		Term:          s.TermMonths,
		Rate:          s.InterestRate,
		CreatedAt:     s.CreatedAt,
	}
}

// ToSimulationSummaryResponseSlice converts a slice of headers.
func ToSimulationSummaryResponseSlice(sims []domain.Simulation) []SimulationSummaryResponse {
	res := make([]SimulationSummaryResponse, len(sims))
	for i, s := range sims {
		res[i] = ToSimulationSummaryResponse(s)
	}
	return res
}

// PaginationMetadata is the out-of-band page metadata emitted in the
// X-Pagination response header.
type PaginationMetadata struct {
	TotalCount  int  `json:"totalCount"`
	TotalPages  int  `json:"totalPages"`
	PageSize    int  `json:"pageSize"`
	CurrentPage int  `json:"currentPage"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
}

// ToPaginationMetadata extracts the metadata of a page.
func ToPaginationMetadata(p pagination.PagedList) PaginationMetadata {
	return PaginationMetadata{
		TotalCount:  p.TotalCount,
		TotalPages:  p.TotalPages,
		PageSize:    p.PageSize,
		CurrentPage: p.CurrentPage,
		HasNext:     p.HasNext(),
		HasPrevious: p.HasPrevious(),
	}
}
