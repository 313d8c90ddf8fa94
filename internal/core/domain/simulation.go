package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScheduleType tags one of the two amortization systems.
type ScheduleType string

const (
	// ScheduleSAC is the constant-amortization system: fixed principal
	// repayment, declining interest and payment.
	ScheduleSAC ScheduleType = "SAC"
	// SchedulePrice is the constant-installment (French) system: fixed
	// payment, shifting principal/interest split.
	SchedulePrice ScheduleType = "PRICE"
)

// Installment is one period of an amortization schedule. All three money
// fields are rounded to 2 fractional digits at the time they are recorded.
type Installment struct {
	Number       int             `json:"number"` // 1-based, sequential
	Amortization decimal.Decimal `json:"amortization"`
	Interest     decimal.Decimal `json:"interest"`
	Payment      decimal.Decimal `json:"payment"`
}

// Schedule is an ordered sequence of installments of one system,
// length == term.
type Schedule struct {
	Type         ScheduleType  `json:"type"`
	Installments []Installment `json:"installments"`
}

// Simulation is a persisted quote header. Identity is assigned by the store
// on creation and preserved across recomputes; the two schedules stored for
// it always correspond to the (Amount, InterestRate, TermMonths) triple
// currently on the header.
type Simulation struct {
	ID           int64           `json:"simulationId"`
	ProductCode  int             `json:"productCode"`
	Amount       decimal.Decimal `json:"desiredAmount"`
	TermMonths   int             `json:"term"`
	InterestRate decimal.Decimal `json:"interestRate"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// SimulationResult is a fully resolved simulation: header, product display
// name and both computed schedules. This is what gets cached and returned.
type SimulationResult struct {
	Simulation
	ProductName string     `json:"productDescription"`
	Schedules   []Schedule `json:"schedules"`
}

// SimulationFilter carries optional inclusive bounds for listing
// simulations. A nil bound is unconstrained; provided bounds AND together.
type SimulationFilter struct {
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	MinTerm   *int
	MaxTerm   *int
}

// Matches reports whether the simulation satisfies every provided bound.
func (f SimulationFilter) Matches(s Simulation) bool {
	if f.MinAmount != nil && s.Amount.LessThan(*f.MinAmount) {
		return false
	}
	if f.MaxAmount != nil && s.Amount.GreaterThan(*f.MaxAmount) {
		return false
	}
	if f.MinTerm != nil && s.TermMonths < *f.MinTerm {
		return false
	}
	if f.MaxTerm != nil && s.TermMonths > *f.MaxTerm {
		return false
	}
	return true
}
