package domain

import "github.com/shopspring/decimal"

// Product is a pricing tier of the loan catalog. Immutable reference data:
// the engine reads it, never writes it.
type Product struct {
	Code          int              `json:"productCode"`
	Name          string           `json:"productName"`
	InterestRate  decimal.Decimal  `json:"interestRate"` // periodic rate, 9 fractional digits
	MinTermMonths int              `json:"minTermMonths"`
	MaxTermMonths *int             `json:"maxTermMonths,omitempty"` // nil means open-ended
	MinAmount     decimal.Decimal  `json:"minAmount"`
	MaxAmount     *decimal.Decimal `json:"maxAmount,omitempty"` // nil means open-ended
}

// Accepts reports whether the requested amount/term pair falls inside this
// product's eligibility window. Bounds are inclusive.
func (p Product) Accepts(amount decimal.Decimal, termMonths int) bool {
	if termMonths < p.MinTermMonths {
		return false
	}
	if p.MaxTermMonths != nil && termMonths > *p.MaxTermMonths {
		return false
	}
	if amount.LessThan(p.MinAmount) {
		return false
	}
	if p.MaxAmount != nil && amount.GreaterThan(*p.MaxAmount) {
		return false
	}
	return true
}
