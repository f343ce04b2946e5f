package model

// Statement identifies one of the two financial statements.
type Statement string

const (
	StatementBalanceSheet  Statement = "balance_sheet"
	StatementProfitAndLoss Statement = "profit_and_loss"
)

// Prefix returns the code prefix used for categories on the statement.
func (s Statement) Prefix() string {
	if s == StatementProfitAndLoss {
		return "PL_"
	}
	return "BS_"
}

// Title returns the display name of the statement.
func (s Statement) Title() string {
	if s == StatementProfitAndLoss {
		return "Profit & Loss"
	}
	return "Balance Sheet"
}

// Group is the second level of the taxonomy.
type Group string

const (
	GroupAssets      Group = "assets"
	GroupLiabilities Group = "liabilities"
	GroupIncome      Group = "income"
	GroupExpenses    Group = "expenses"
)

// SubCategory is a leaf of the taxonomy.
type SubCategory struct {
	Code string // "BS_FixedAssets_LandandBuildings"
	Key  string // "LandandBuildings"
	Name string // "Land and Buildings"
}

// Category is a statement line item with its ordered sub-categories.
type Category struct {
	Code          string
	Name          string
	Statement     Statement
	Group         Group
	SubCategories []SubCategory
}

// Option returns the "{code} - {name}" selection label for the category.
func (c Category) Option() string {
	return c.Code + " - " + c.Name
}

// Option returns the "{code} - {name}" selection label for the sub-category.
func (s SubCategory) Option() string {
	return s.Code + " - " + s.Name
}
