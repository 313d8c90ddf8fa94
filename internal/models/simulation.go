package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Simulation mirrors a row of the SIMULACAO table.
type Simulation struct {
	ID           int64           `db:"id_simulacao"`
	ProductCode  int             `db:"co_produto"`
	Amount       decimal.Decimal `db:"valor_desejado"`
	TermMonths   int             `db:"prazo"`
	InterestRate decimal.Decimal `db:"pc_taxa_juros"`
	CreatedAt    time.Time       `db:"data_simulacao"`
}

// Installment mirrors a row of the SIMULACAO_PARCELA table. One simulation
// owns term*2 rows, term per schedule type.
type Installment struct {
	ID           int64           `db:"id_parcela"`
	SimulationID int64           `db:"id_simulacao"`
	ScheduleType string          `db:"tipo_amortizacao"`
	Number       int             `db:"numero"`
	Amortization decimal.Decimal `db:"valor_amortizacao"`
	Interest     decimal.Decimal `db:"valor_juros"`
	Payment      decimal.Decimal `db:"valor_prestacao"`
}
