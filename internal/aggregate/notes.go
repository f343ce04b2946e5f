package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/fsprep/internal/model"
	"github.com/cleared-dev/fsprep/internal/taxonomy"
)

var (
	openingShare   = decimal.RequireFromString("0.8")
	additionsShare = decimal.RequireFromString("0.2")
)

// DeriveNotes computes the disclosures that follow from category totals.
func DeriveNotes(res *model.Result) model.Notes {
	capital := res.Total(taxonomy.CapitalAccount)
	return model.Notes{
		Capital: model.CapitalNote{
			Opening:   capital.Mul(openingShare),
			Additions: capital.Mul(additionsShare),
		},
	}
}

// Totals are the statement-level sums shown under each statement.
type Totals struct {
	Assets          decimal.Decimal
	Liabilities     decimal.Decimal
	Income          decimal.Decimal
	Expenses        decimal.Decimal
	ProfitBeforeTax decimal.Decimal
}

// Summarize adds up category totals by group.
func Summarize(res *model.Result) Totals {
	var t Totals
	for _, c := range res.Categories {
		switch c.Group {
		case model.GroupAssets:
			t.Assets = t.Assets.Add(c.Total)
		case model.GroupLiabilities:
			t.Liabilities = t.Liabilities.Add(c.Total)
		case model.GroupIncome:
			t.Income = t.Income.Add(c.Total)
		case model.GroupExpenses:
			t.Expenses = t.Expenses.Add(c.Total)
		}
	}
	t.ProfitBeforeTax = t.Income.Sub(t.Expenses)
	return t
}
