package taxonomy

import "github.com/cleared-dev/fsprep/internal/model"

type categoryDef struct {
	name string
	subs []string
}

type groupDef struct {
	statement  model.Statement
	group      model.Group
	categories []categoryDef
}

// hierarchy is the fixed statement → group → category → sub-category tree,
// in display order.
var hierarchy = []groupDef{
	{model.StatementBalanceSheet, model.GroupAssets, []categoryDef{
		{"Fixed Assets", []string{"Land and Buildings", "Plant and Machinery", "Furniture and Fixtures", "Vehicles", "Computer Equipment", "Other Fixed Assets"}},
		{"Investments", []string{"Long-term Investments", "Short-term Investments", "Investment in Properties", "Other Investments"}},
		{"Current Assets", []string{"Inventories", "Sundry Debtors", "Cash and Bank Balances", "Loans and Advances", "Deposits", "Other Current Assets"}},
	}},
	{model.StatementBalanceSheet, model.GroupLiabilities, []categoryDef{
		{"Capital Account", []string{"Owner's Capital", "Partner's Capital", "Drawings", "Other Capital Items"}},
		{"Reserves and Surplus", []string{"General Reserve", "Revaluation Reserve", "Retained Earnings", "Other Reserves"}},
		{"Long Term Loans", []string{"Secured Loans", "Unsecured Loans", "Term Loans", "Other Long-term Loans"}},
		{"Current Liabilities", []string{"Sundry Creditors", "Outstanding Expenses", "Statutory Liabilities", "Advances from Customers", "Other Current Liabilities"}},
	}},
	{model.StatementProfitAndLoss, model.GroupIncome, []categoryDef{
		{"Revenue from Operations", []string{"Domestic Sales", "Export Sales", "Service Income", "Other Operational Income"}},
		{"Other Income", []string{"Interest Income", "Dividend Income", "Rental Income", "Miscellaneous Income"}},
	}},
	{model.StatementProfitAndLoss, model.GroupExpenses, []categoryDef{
		{"Cost of Goods Sold", []string{"Raw Material Consumed", "Direct Expenses", "Purchase of Stock-in-Trade", "Changes in Inventories"}},
		{"Employee Benefits", []string{"Salaries and Wages", "Bonus and Incentives", "Staff Welfare Expenses", "Other Employee Costs"}},
		{"Finance Cost", []string{"Interest Expenses", "Bank Charges", "Other Financial Charges"}},
		{"Depreciation", []string{"Depreciation on Fixed Assets", "Amortization", "Other Depreciation"}},
		{"Other Expenses", []string{"Administrative Expenses", "Selling and Distribution Expenses", "Rent and Utilities", "Repairs and Maintenance", "Travel and Conveyance", "Legal and Professional Fees", "Insurance", "Miscellaneous Expenses"}},
	}},
}

// Category codes.
const (
	FixedAssets           = "BS_FixedAssets"
	Investments           = "BS_Investments"
	CurrentAssets         = "BS_CurrentAssets"
	CapitalAccount        = "BS_CapitalAccount"
	ReservesAndSurplus    = "BS_ReservesandSurplus"
	LongTermLoans         = "BS_LongTermLoans"
	CurrentLiabilities    = "BS_CurrentLiabilities"
	RevenueFromOperations = "PL_RevenuefromOperations"
	OtherIncome           = "PL_OtherIncome"
	CostOfGoodsSold       = "PL_CostofGoodsSold"
	EmployeeBenefits      = "PL_EmployeeBenefits"
	FinanceCost           = "PL_FinanceCost"
	Depreciation          = "PL_Depreciation"
	OtherExpenses         = "PL_OtherExpenses"
)
