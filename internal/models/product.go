package models

import "github.com/shopspring/decimal"

// Product mirrors a row of the PRODUTO table.
type Product struct {
	Code          int              `db:"co_produto"`
	Name          string           `db:"no_produto"`
	InterestRate  decimal.Decimal  `db:"pc_taxa_juros"`
	MinTermMonths int16            `db:"nu_minimo_meses"`
	MaxTermMonths *int16           `db:"nu_maximo_meses"`
	MinAmount     decimal.Decimal  `db:"vr_minimo"`
	MaxAmount     *decimal.Decimal `db:"vr_maximo"`
}
