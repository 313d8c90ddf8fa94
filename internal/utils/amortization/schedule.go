// Package amortization computes loan installment schedules. Both functions
// are pure: they never touch persistence, caching or identity, and the same
// inputs always produce the same schedule.
//
// Money fields are rounded to 2 fractional digits only at the point each
// installment is recorded; the running outstanding balance keeps full
// precision so rounding error does not compound across periods. Rounding is
// half away from zero (decimal.Round).
package amortization

import (
	"github.com/loansim/loan_simulation_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConstantAmortization computes a SAC schedule: the amortization portion is
// principal/term for every period, interest accrues on the outstanding
// balance, so payments decline over time.
func ConstantAmortization(principal, periodicRate decimal.Decimal, termMonths int) []domain.Installment {
	installments := make([]domain.Installment, 0, termMonths)
	amort := principal.Div(decimal.NewFromInt(int64(termMonths)))
	balance := principal

	for i := 1; i <= termMonths; i++ {
		interest := balance.Mul(periodicRate)
		payment := amort.Add(interest)

		installments = append(installments, domain.Installment{
			Number:       i,
			Amortization: amort.Round(2),
			Interest:     interest.Round(2),
			Payment:      payment.Round(2),
		})

		balance = balance.Sub(amort)
	}

	return installments
}

// ConstantInstallment computes a Price (French) schedule: the payment is
// fixed at principal * (r*(1+r)^n) / ((1+r)^n - 1) for every period and the
// amortization portion grows as interest on the shrinking balance falls.
//
// A zero rate degenerates to equal principal slices with no interest; the
// closed formula would divide by zero there.
func ConstantInstallment(principal, periodicRate decimal.Decimal, termMonths int) []domain.Installment {
	n := decimal.NewFromInt(int64(termMonths))

	var payment decimal.Decimal
	if periodicRate.IsZero() {
		payment = principal.Div(n)
	} else {
		one := decimal.NewFromInt(1)
		factor := one.Add(periodicRate).Pow(n) // (1+r)^n
		payment = principal.Mul(periodicRate.Mul(factor)).Div(factor.Sub(one))
	}

	installments := make([]domain.Installment, 0, termMonths)
	balance := principal

	for i := 1; i <= termMonths; i++ {
		interest := balance.Mul(periodicRate)
		amort := payment.Sub(interest)
		balance = balance.Sub(amort)

		installments = append(installments, domain.Installment{
			Number:       i,
			Amortization: amort.Round(2),
			Interest:     interest.Round(2),
			Payment:      payment.Round(2),
		})
	}

	return installments
}
