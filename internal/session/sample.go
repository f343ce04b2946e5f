package session

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/fsprep/internal/model"
)

// SampleVersion is the source version reported for the sample dataset.
const SampleVersion = "Sample Data"

type sampleLedger struct {
	name    string
	balance int64
	primary string
	sub     string
}

// The primary options use the short legacy codes older mapping files carry;
// they resolve through keyword routing like any saved mapping.
var sample = []sampleLedger{
	{"Land and Building", 400000, "BS_FixedAssets - Fixed Assets", "BS_FixedAssets_LandandBuildings - Land and Buildings"},
	{"Plant and Machinery", 300000, "BS_FixedAssets - Fixed Assets", "BS_FixedAssets_PlantandMachinery - Plant and Machinery"},
	{"Furniture and Fixtures", 100000, "BS_FixedAssets - Fixed Assets", "BS_FixedAssets_FurnitureandFixtures - Furniture and Fixtures"},
	{"Inventories", 250000, "BS_CurrentAssets - Current Assets", "BS_CurrentAssets_Inventories - Inventories"},
	{"Sundry Debtors", 150000, "BS_CurrentAssets - Current Assets", "BS_CurrentAssets_SundryDebtors - Sundry Debtors"},
	{"Cash and Bank", 200000, "BS_CurrentAssets - Current Assets", "BS_CurrentAssets_CashandBankBalances - Cash and Bank Balances"},
	{"Capital Account", 800000, "BS_Capital - Capital Account", "BS_CapitalAccount_OwnersCapital - Owner's Capital"},
	{"Reserves", 200000, "BS_Reserves - Reserves & Surplus", ""},
	{"Secured Loans", 150000, "BS_LongTermLoans - Long Term Loans", ""},
	{"Sundry Creditors", 100000, "BS_CurrentLiabilities - Current Liabilities", ""},
	{"Domestic Sales", 1200000, "PL_Revenue - Revenue from Operations", "PL_RevenuefromOperations_DomesticSales - Domestic Sales"},
	{"Export Sales", 300000, "PL_Revenue - Revenue from Operations", "PL_RevenuefromOperations_ExportSales - Export Sales"},
	{"Interest Income", 50000, "PL_OtherIncome - Other Income", ""},
	{"Raw Material Consumed", 600000, "PL_COGS - Cost of Goods Sold", ""},
	{"Salaries and Wages", 300000, "PL_EmployeeBenefits - Employee Benefits", ""},
	{"Interest Expenses", 80000, "PL_FinanceCost - Finance Cost", ""},
	{"Depreciation", 120000, "PL_Depreciation - Depreciation", ""},
	{"Administrative Expenses", 100000, "PL_OtherExpenses - Other Expenses", "PL_OtherExpenses_AdministrativeExpenses - Administrative Expenses"},
	{"Selling Expenses", 80000, "PL_OtherExpenses - Other Expenses", "PL_OtherExpenses_SellingandDistributionExpenses - Selling and Distribution Expenses"},
}

// SampleExtraction returns the sample ledgers as an extraction.
func SampleExtraction() model.Extraction {
	ledgers := make([]model.LedgerRecord, len(sample))
	for i, s := range sample {
		ledgers[i] = model.LedgerRecord{Name: s.name, Balance: decimal.NewFromInt(s.balance)}
	}
	return model.Extraction{
		Ledgers:       ledgers,
		SourceVersion: SampleVersion,
		ExtractedAt:   time.Now(),
		Strategy:      model.StrategySample,
	}
}

// SampleMappings returns the mappings that accompany the sample ledgers.
func SampleMappings() (primary, sub map[string]string) {
	primary = make(map[string]string, len(sample))
	sub = make(map[string]string)
	for _, s := range sample {
		primary[s.name] = s.primary
		if s.sub != "" {
			sub[s.name] = s.sub
		}
	}
	return primary, sub
}
