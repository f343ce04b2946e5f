package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleResult() *Result {
	return &Result{
		Categories: []CategoryResult{
			{
				Code:      "BS_CapitalAccount",
				Name:      "Capital Account",
				Statement: StatementBalanceSheet,
				Group:     GroupLiabilities,
				Total:     dec("800000"),
				Schedule: []ScheduleItem{
					{Key: "OwnersCapital", Name: "Owner's Capital", Amount: dec("800000"), Ledgers: []LedgerRecord{{Name: "Capital Account", Balance: dec("800000")}}},
				},
			},
			{
				Code:      "PL_OtherIncome",
				Name:      "Other Income",
				Statement: StatementProfitAndLoss,
				Group:     GroupIncome,
				Total:     dec("50000"),
				Breakdown: []BreakdownLine{{Key: "interest_income", Amount: dec("50000")}},
			},
		},
	}
}

func TestResultLookup(t *testing.T) {
	r := sampleResult()

	c, ok := r.Category("BS_CapitalAccount")
	require.True(t, ok)
	assert.Equal(t, "Capital Account", c.Name)
	assert.True(t, r.Total("PL_OtherIncome").Equal(dec("50000")))
	assert.True(t, r.Total("PL_Nope").IsZero())

	_, ok = r.Category("PL_Nope")
	assert.False(t, ok)

	assert.Len(t, r.ByStatement(StatementBalanceSheet), 1)
	assert.Len(t, r.ByStatement(StatementProfitAndLoss), 1)
}

func TestResultCloneIsDeep(t *testing.T) {
	r := sampleResult()
	c := r.Clone()
	require.Equal(t, r, c)

	c.Categories[0].Total = dec("1")
	c.Categories[0].Schedule[0].Ledgers[0].Name = "changed"
	c.Categories[1].Breakdown[0].Key = "changed"

	assert.True(t, r.Categories[0].Total.Equal(dec("800000")))
	assert.Equal(t, "Capital Account", r.Categories[0].Schedule[0].Ledgers[0].Name)
	assert.Equal(t, "interest_income", r.Categories[1].Breakdown[0].Key)
}

func TestVersionCloneIsDeep(t *testing.T) {
	v := Version{
		ID:         1,
		Mapping:    map[string]string{"Cash": "BS_CurrentAssets - Current Assets"},
		SubMapping: map[string]string{},
		Ledgers:    []LedgerRecord{{Name: "Cash", Balance: dec("10")}},
		Result:     sampleResult(),
	}
	c := v.Clone()
	c.Mapping["Cash"] = "changed"
	c.Ledgers[0].Name = "changed"
	c.Result.Categories[0].Name = "changed"

	assert.Equal(t, "BS_CurrentAssets - Current Assets", v.Mapping["Cash"])
	assert.Equal(t, "Cash", v.Ledgers[0].Name)
	assert.Equal(t, "Capital Account", v.Result.Categories[0].Name)
}

func TestCapitalNoteTotal(t *testing.T) {
	n := CapitalNote{Opening: dec("640000"), Additions: dec("160000")}
	assert.True(t, n.Total().Equal(dec("800000")))
}

func TestStatementPrefix(t *testing.T) {
	assert.Equal(t, "BS_", StatementBalanceSheet.Prefix())
	assert.Equal(t, "PL_", StatementProfitAndLoss.Prefix())
	assert.Equal(t, "Profit & Loss", StatementProfitAndLoss.Title())
}
