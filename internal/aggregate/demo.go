package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/fsprep/internal/model"
	"github.com/cleared-dev/fsprep/internal/taxonomy"
)

type demoLine struct {
	key    string
	amount int64
}

type demoCategory struct {
	total     int64
	breakdown []demoLine
}

// demonstration is shown while no ledger has been mapped yet.
var demonstration = map[string]demoCategory{
	taxonomy.FixedAssets:           {800000, []demoLine{{"land_and_buildings", 400000}, {"plant_and_machinery", 200000}, {"other_fixed_assets", 200000}}},
	taxonomy.Investments:           {300000, []demoLine{{"long_term_investments", 200000}, {"short_term_investments", 100000}}},
	taxonomy.CurrentAssets:         {700000, []demoLine{{"inventory", 300000}, {"cash_and_bank", 400000}}},
	taxonomy.CapitalAccount:        {1000000, []demoLine{{"owner_capital", 1000000}}},
	taxonomy.ReservesAndSurplus:    {500000, []demoLine{{"general_reserve", 500000}}},
	taxonomy.LongTermLoans:         {200000, []demoLine{{"secured_loans", 200000}}},
	taxonomy.CurrentLiabilities:    {100000, []demoLine{{"sundry_creditors", 100000}}},
	taxonomy.RevenueFromOperations: {2000000, []demoLine{{"domestic_sales", 1500000}, {"export_sales", 500000}}},
	taxonomy.OtherIncome:           {100000, []demoLine{{"interest_income", 50000}, {"misc_income", 50000}}},
	taxonomy.CostOfGoodsSold:       {1000000, []demoLine{{"raw_materials", 800000}, {"direct_expenses", 200000}}},
	taxonomy.EmployeeBenefits:      {500000, []demoLine{{"salaries", 400000}, {"staff_welfare", 100000}}},
	taxonomy.FinanceCost:           {100000, []demoLine{{"interest_expense", 80000}, {"bank_charges", 20000}}},
	taxonomy.Depreciation:          {200000, []demoLine{{"depreciation_fixed_assets", 200000}}},
	taxonomy.OtherExpenses:         {300000, []demoLine{{"rent", 100000}, {"utilities", 100000}, {"misc_expenses", 100000}}},
}

// demonstrationSchedules seeds schedule slots by taxonomy key.
var demonstrationSchedules = map[string][]demoLine{
	taxonomy.FixedAssets: {{"LandandBuildings", 400000}, {"PlantandMachinery", 200000}, {"OtherFixedAssets", 200000}},
	taxonomy.Investments: {{"Long-termInvestments", 200000}, {"Short-termInvestments", 100000}},
}

func applyDemonstration(res *model.Result) {
	res.Demonstration = true
	for i := range res.Categories {
		c := &res.Categories[i]
		demo, ok := demonstration[c.Code]
		if !ok {
			continue
		}
		c.Total = decimal.NewFromInt(demo.total)
		c.Breakdown = make([]model.BreakdownLine, len(demo.breakdown))
		for j, line := range demo.breakdown {
			c.Breakdown[j] = model.BreakdownLine{Key: line.key, Amount: decimal.NewFromInt(line.amount)}
		}
		for _, line := range demonstrationSchedules[c.Code] {
			for j := range c.Schedule {
				if c.Schedule[j].Key == line.key {
					c.Schedule[j].Amount = decimal.NewFromInt(line.amount)
				}
			}
		}
	}
}
