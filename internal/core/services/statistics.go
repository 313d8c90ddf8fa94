package services

import (
	"sort"
	"time"

	"github.com/loansim/loan_simulation_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AggregateStatistics computes global and per-product metrics over the
// persisted simulations. An empty collection yields zero-valued metrics
// stamped with now. Per-product groups are an equality join against the
// catalog on product code: simulations referencing a code absent from the
// catalog are excluded from the breakdown. Groups come back ordered by
// product code ascending.
//
// Averages are rounded half away from zero: amounts to 2 fractional
// digits, rates to 6, terms to the nearest whole period.
func AggregateStatistics(sims []domain.Simulation, products []domain.Product, now time.Time) domain.SimulationStatistics {
	stats := domain.SimulationStatistics{
		AverageAmount: decimal.Zero,
		AverageRate:   decimal.Zero,
		LastUpdated:   now,
		PerProduct:    []domain.ProductStatistics{},
	}
	if len(sims) == 0 {
		return stats
	}

	productNames := make(map[int]string, len(products))
	for _, p := range products {
		productNames[p.Code] = p.Name
	}

	type group struct {
		count     int64
		amountSum decimal.Decimal
		termSum   int64
		rateSum   decimal.Decimal
	}

	total := group{}
	byProduct := make(map[int]*group)

	for _, s := range sims {
		total.count++
		total.amountSum = total.amountSum.Add(s.Amount)
		total.termSum += int64(s.TermMonths)
		total.rateSum = total.rateSum.Add(s.InterestRate)

		if _, known := productNames[s.ProductCode]; !known {
			continue
		}
		g, ok := byProduct[s.ProductCode]
		if !ok {
			g = &group{}
			byProduct[s.ProductCode] = g
		}
		g.count++
		g.amountSum = g.amountSum.Add(s.Amount)
		g.termSum += int64(s.TermMonths)
		g.rateSum = g.rateSum.Add(s.InterestRate)
	}

	averages := func(g *group) (decimal.Decimal, int, decimal.Decimal) {
		n := decimal.NewFromInt(g.count)
		avgAmount := g.amountSum.Div(n).Round(2)
		avgTerm := int(decimal.NewFromInt(g.termSum).Div(n).Round(0).IntPart())
		avgRate := g.rateSum.Div(n).Round(6)
		return avgAmount, avgTerm, avgRate
	}

	stats.TotalSimulations = total.count
	stats.AverageAmount, stats.AverageTerm, stats.AverageRate = averages(&total)

	codes := make([]int, 0, len(byProduct))
	for code := range byProduct {
		codes = append(codes, code)
	}
	sort.Ints(codes)

	for _, code := range codes {
		g := byProduct[code]
		avgAmount, avgTerm, avgRate := averages(g)
		stats.PerProduct = append(stats.PerProduct, domain.ProductStatistics{
			ProductCode:   code,
			ProductName:   productNames[code],
			Count:         g.count,
			AverageAmount: avgAmount,
			AverageTerm:   avgTerm,
			AverageRate:   avgRate,
		})
	}

	return stats
}
