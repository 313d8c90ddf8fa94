package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductStatistics are the aggregate metrics of one product's simulations.
type ProductStatistics struct {
	ProductCode    int             `json:"productCode"`
	ProductName    string          `json:"productDescription"`
	Count          int64           `json:"count"`
	AverageAmount  decimal.Decimal `json:"averageAmount"` // 2 fractional digits
	AverageTerm    int             `json:"averageTerm"`   // rounded to nearest integer
	AverageRate    decimal.Decimal `json:"averageRate"`   // 6 fractional digits
}

// SimulationStatistics are the global metrics over all persisted
// simulations plus the per-product breakdown, ordered by product code.
type SimulationStatistics struct {
	TotalSimulations int64               `json:"totalSimulations"`
	AverageAmount    decimal.Decimal     `json:"averageAmount"`
	AverageTerm      int                 `json:"averageTerm"`
	AverageRate      decimal.Decimal     `json:"averageRate"`
	LastUpdated      time.Time           `json:"lastUpdated"`
	PerProduct       []ProductStatistics `json:"perProduct"`
}
