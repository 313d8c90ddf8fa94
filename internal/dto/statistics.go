package dto

import (
	"time"

	"github.com/loansim/loan_simulation_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProductStatisticsResponse is the per-product aggregate block.
type ProductStatisticsResponse struct {
	ProductCode        int             `json:"productCode"`
	ProductDescription string          `json:"productDescription"`
	Count              int64           `json:"count"`
	AverageAmount      decimal.Decimal `json:"averageAmount"`
	AverageTerm        int             `json:"averageTerm"`
	AverageRate        decimal.Decimal `json:"averageRate"`
}

// StatisticsResponse is the statistics endpoint payload.
type StatisticsResponse struct {
	TotalSimulations int64                       `json:"totalSimulations"`
	AverageAmount    decimal.Decimal             `json:"averageAmount"`
	AverageTerm      int                         `json:"averageTerm"`
	AverageRate      decimal.Decimal             `json:"averageRate"`
	LastUpdated      time.Time                   `json:"lastUpdated"`
	PerProduct       []ProductStatisticsResponse `json:"perProduct"`
}

// ToStatisticsResponse converts domain statistics to their wire form.
func ToStatisticsResponse(s *domain.SimulationStatistics) StatisticsResponse {
	perProduct := make([]ProductStatisticsResponse, len(s.PerProduct))
	for i, p := range s.PerProduct {
		perProduct[i] = ProductStatisticsResponse{
			ProductCode:        p.ProductCode,
			ProductDescription: p.ProductName,
			Count:              p.Count,
			AverageAmount:      p.AverageAmount,
			AverageTerm:        p.AverageTerm,
			AverageRate:        p.AverageRate,
		}
	}
	return StatisticsResponse{
		TotalSimulations: s.TotalSimulations,
		AverageAmount:    s.AverageAmount,
		AverageTerm:      s.AverageTerm,
		AverageRate:      s.AverageRate,
		LastUpdated:      s.LastUpdated,
		PerProduct:       perProduct,
	}
}
