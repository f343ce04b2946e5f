// Package export lays statements out as sheets of cells and writes them as
// CSV.
package export

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/fsprep/internal/aggregate"
	"github.com/cleared-dev/fsprep/internal/model"
	"github.com/cleared-dev/fsprep/internal/taxonomy"
)

const (
	SheetBalanceSheet  = "Balance Sheet"
	SheetProfitAndLoss = "Profit and Loss"
	SheetBSSchedules   = "BS Schedules"
	SheetPLSchedules   = "PL Schedules"
	SheetNotes         = "Notes"

	dateFormat = "02-01-2006"
)

// Sheet is a named grid of cells. Every row has three cells.
type Sheet struct {
	Name string
	Rows [][]string
}

type line struct {
	code  string
	label string
	note  int
}

var (
	liabilityLines = []line{
		{taxonomy.CapitalAccount, "Capital Account", 1},
		{taxonomy.ReservesAndSurplus, "Reserves and Surplus", 2},
		{taxonomy.LongTermLoans, "Long Term Loans", 3},
		{taxonomy.CurrentLiabilities, "Current Liabilities", 4},
	}
	assetLines = []line{
		{taxonomy.FixedAssets, "Fixed Assets", 5},
		{taxonomy.Investments, "Investments", 6},
		{taxonomy.CurrentAssets, "Current Assets", 7},
	}
	incomeLines = []line{
		{taxonomy.RevenueFromOperations, "Revenue from Operations", 8},
		{taxonomy.OtherIncome, "Other Income", 9},
	}
	expenseLines = []line{
		{taxonomy.CostOfGoodsSold, "Cost of Goods Sold", 10},
		{taxonomy.EmployeeBenefits, "Employee Benefits Expense", 11},
		{taxonomy.FinanceCost, "Finance Costs", 12},
		{taxonomy.Depreciation, "Depreciation", 13},
		{taxonomy.OtherExpenses, "Other Expenses", 14},
	}
)

// NoteNumber returns the fixed note number of a category code, or 0.
func NoteNumber(code string) int {
	for _, group := range [][]line{liabilityLines, assetLines, incomeLines, expenseLines} {
		for _, l := range group {
			if l.code == code {
				return l.note
			}
		}
	}
	return 0
}

// Amount formats a figure the way every sheet shows it.
func Amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func blank() []string { return []string{"", "", ""} }

func row(cells ...string) []string {
	r := blank()
	copy(r, cells)
	return r
}

// Sheets lays out res as the five statement sheets. asOf dates the
// headings; currency labels the amount columns.
func Sheets(res *model.Result, asOf time.Time, currency string) []Sheet {
	totals := aggregate.Summarize(res)
	amountHeader := "Amount (" + currency + ")"
	return []Sheet{
		balanceSheet(res, totals, asOf, amountHeader),
		profitAndLoss(res, totals, asOf, amountHeader),
		schedules(res, model.StatementBalanceSheet, SheetBSSchedules, "Balance Sheet Schedules", 1, amountHeader),
		schedules(res, model.StatementProfitAndLoss, SheetPLSchedules, "Profit & Loss Schedules", len(assetLines)+len(liabilityLines)+1, amountHeader),
		notes(res, amountHeader),
	}
}

func statementRows(res *model.Result, lines []line) [][]string {
	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, row("    "+l.label, strconv.Itoa(l.note), Amount(res.Total(l.code))))
	}
	return rows
}

func balanceSheet(res *model.Result, t aggregate.Totals, asOf time.Time, amountHeader string) Sheet {
	rows := [][]string{
		row("Financial Statements"),
		row("Balance Sheet as at " + asOf.Format(dateFormat)),
		blank(),
		row("Particulars", "Note No.", amountHeader),
		row("EQUITY AND LIABILITIES"),
	}
	rows = append(rows, statementRows(res, liabilityLines)...)
	rows = append(rows,
		row("Total Liabilities", "", Amount(t.Liabilities)),
		blank(),
		row("ASSETS"),
	)
	rows = append(rows, statementRows(res, assetLines)...)
	rows = append(rows, row("Total Assets", "", Amount(t.Assets)))
	return Sheet{Name: SheetBalanceSheet, Rows: rows}
}

func profitAndLoss(res *model.Result, t aggregate.Totals, asOf time.Time, amountHeader string) Sheet {
	rows := [][]string{
		row("Financial Statements"),
		row("Statement of Profit and Loss for the year ended " + asOf.Format(dateFormat)),
		blank(),
		row("Particulars", "Note No.", amountHeader),
		row("INCOME"),
	}
	rows = append(rows, statementRows(res, incomeLines)...)
	rows = append(rows,
		row("Total Income", "", Amount(t.Income)),
		blank(),
		row("EXPENSES"),
	)
	rows = append(rows, statementRows(res, expenseLines)...)
	rows = append(rows,
		row("Total Expenses", "", Amount(t.Expenses)),
		blank(),
		row("Profit Before Tax", "", Amount(t.ProfitBeforeTax)),
	)
	return Sheet{Name: SheetProfitAndLoss, Rows: rows}
}

// schedules lists each category of one statement with its positive
// sub-category amounts. The total covers only the listed lines.
func schedules(res *model.Result, st model.Statement, name, title string, first int, amountHeader string) Sheet {
	rows := [][]string{row(title), blank()}
	for i, c := range res.ByStatement(st) {
		rows = append(rows,
			row("Schedule "+strconv.Itoa(first+i)+": "+c.Name),
			blank(),
			row("Particulars", amountHeader),
		)
		total := decimal.Zero
		for _, item := range c.Schedule {
			if !item.Amount.IsPositive() {
				continue
			}
			rows = append(rows, row("    "+item.Name, Amount(item.Amount)))
			total = total.Add(item.Amount)
		}
		rows = append(rows, row("Total "+c.Name, Amount(total)), blank())
	}
	return Sheet{Name: name, Rows: rows}
}

func notes(res *model.Result, amountHeader string) Sheet {
	capital := res.Notes.Capital
	return Sheet{Name: SheetNotes, Rows: [][]string{
		row("Notes to Financial Statements"),
		blank(),
		row("Note 1: Capital Account"),
		blank(),
		row("Particulars", amountHeader),
		row("Opening Balance", Amount(capital.Opening)),
		row("Add: Capital Introduced", Amount(capital.Additions)),
		row("Total", Amount(capital.Total())),
	}}
}
