package extract

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/fsprep/internal/model"
)

// FallbackLedgers returns the six ledgers used when nothing could be
// extracted.
func FallbackLedgers() []model.LedgerRecord {
	return []model.LedgerRecord{
		{Name: "Capital Account", Balance: decimal.NewFromInt(1000000)},
		{Name: "Fixed Assets", Balance: decimal.NewFromInt(800000)},
		{Name: "Current Assets", Balance: decimal.NewFromInt(700000)},
		{Name: "Reserves and Surplus", Balance: decimal.NewFromInt(500000)},
		{Name: "Revenue", Balance: decimal.NewFromInt(2000000)},
		{Name: "Expenses", Balance: decimal.NewFromInt(1500000)},
	}
}
