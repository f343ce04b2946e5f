package taxonomy

import (
	"strings"

	"github.com/cleared-dev/fsprep/internal/model"
)

// Rule routes a mapping code to a category when the code carries Prefix and
// contains Keyword.
type Rule struct {
	Prefix   string
	Keyword  string
	Category string
}

// rules are checked in order; the first match wins. "Capital" precedes
// "Reserves" and "Revenue" precedes "OtherIncome", so a code naming both
// routes to the earlier one.
var rules = []Rule{
	{"BS_", "FixedAssets", FixedAssets},
	{"BS_", "Investments", Investments},
	{"BS_", "CurrentAssets", CurrentAssets},
	{"BS_", "Capital", CapitalAccount},
	{"BS_", "Reserves", ReservesAndSurplus},
	{"BS_", "LongTermLoans", LongTermLoans},
	{"BS_", "CurrentLiabilities", CurrentLiabilities},
	{"PL_", "Revenue", RevenueFromOperations},
	{"PL_", "OtherIncome", OtherIncome},
	{"PL_", "COGS", CostOfGoodsSold},
	{"PL_", "CostofGoodsSold", CostOfGoodsSold},
	{"PL_", "EmployeeBenefits", EmployeeBenefits},
	{"PL_", "FinanceCost", FinanceCost},
	{"PL_", "Depreciation", Depreciation},
	{"PL_", "OtherExpenses", OtherExpenses},
}

// Rules returns the routing table in priority order.
func Rules() []Rule {
	return append([]Rule(nil), rules...)
}

// Route resolves a mapping code to its category by keyword. Codes without a
// known prefix or keyword do not route.
func Route(code string) (model.Category, bool) {
	for _, r := range rules {
		if !strings.HasPrefix(code, r.Prefix) {
			continue
		}
		if strings.Contains(code, r.Keyword) {
			return Lookup(r.Category)
		}
	}
	return model.Category{}, false
}
