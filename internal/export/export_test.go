package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/fsprep/internal/aggregate"
	"github.com/cleared-dev/fsprep/internal/model"
	"github.com/cleared-dev/fsprep/internal/taxonomy"
)

var asOf = time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleResult() *model.Result {
	ledgers := []model.LedgerRecord{
		{Name: "Capital Account", Balance: dec("800000")},
		{Name: "Plant", Balance: dec("300000")},
		{Name: "Vehicles", Balance: dec("-5000")},
		{Name: "Sales", Balance: dec("1000000")},
		{Name: "Rent", Balance: dec("250000")},
	}
	primary := map[string]string{
		"Capital Account": "BS_CapitalAccount - Capital Account",
		"Plant":           "BS_FixedAssets - Fixed Assets",
		"Vehicles":        "BS_FixedAssets - Fixed Assets",
		"Sales":           "PL_RevenuefromOperations - Revenue from Operations",
		"Rent":            "PL_OtherExpenses - Other Expenses",
	}
	sub := map[string]string{
		"Plant":    "BS_FixedAssets_PlantandMachinery - Plant and Machinery",
		"Vehicles": "BS_FixedAssets_Vehicles - Vehicles",
	}
	return aggregate.Aggregate(ledgers, primary, sub)
}

func sheet(t *testing.T, sheets []Sheet, name string) Sheet {
	t.Helper()
	for _, s := range sheets {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("sheet %q not found", name)
	return Sheet{}
}

func findRow(s Sheet, first string) []string {
	for _, r := range s.Rows {
		if r[0] == first {
			return r
		}
	}
	return nil
}

func TestSheets_Layout(t *testing.T) {
	sheets := Sheets(sampleResult(), asOf, "₹")
	require.Len(t, sheets, 5)
	names := make([]string, len(sheets))
	for i, s := range sheets {
		names[i] = s.Name
		for _, r := range s.Rows {
			assert.Len(t, r, 3, "%s row %v", s.Name, r)
		}
	}
	assert.Equal(t, []string{SheetBalanceSheet, SheetProfitAndLoss, SheetBSSchedules, SheetPLSchedules, SheetNotes}, names)
}

func TestSheets_BalanceSheet(t *testing.T) {
	bs := sheet(t, Sheets(sampleResult(), asOf, "₹"), SheetBalanceSheet)

	assert.Equal(t, "Balance Sheet as at 31-03-2026", bs.Rows[1][0])
	assert.Equal(t, []string{"Particulars", "Note No.", "Amount (₹)"}, bs.Rows[3])
	assert.Equal(t, []string{"    Capital Account", "1", "800000.00"}, findRow(bs, "    Capital Account"))
	assert.Equal(t, []string{"    Fixed Assets", "5", "295000.00"}, findRow(bs, "    Fixed Assets"))
	assert.Equal(t, []string{"Total Liabilities", "", "800000.00"}, findRow(bs, "Total Liabilities"))
	assert.Equal(t, []string{"Total Assets", "", "295000.00"}, findRow(bs, "Total Assets"))
}

func TestSheets_ProfitAndLoss(t *testing.T) {
	pl := sheet(t, Sheets(sampleResult(), asOf, "$"), SheetProfitAndLoss)

	assert.Equal(t, "Amount ($)", pl.Rows[3][2])
	assert.Equal(t, []string{"    Revenue from Operations", "8", "1000000.00"}, findRow(pl, "    Revenue from Operations"))
	assert.Equal(t, []string{"    Other Expenses", "14", "250000.00"}, findRow(pl, "    Other Expenses"))
	assert.Equal(t, []string{"Profit Before Tax", "", "750000.00"}, findRow(pl, "Profit Before Tax"))
}

func TestSheets_SchedulesListPositiveAmountsOnly(t *testing.T) {
	sheets := Sheets(sampleResult(), asOf, "₹")
	bs := sheet(t, sheets, SheetBSSchedules)

	assert.Equal(t, "Schedule 1: Fixed Assets", bs.Rows[2][0])
	assert.NotNil(t, findRow(bs, "    Plant and Machinery"))
	assert.Nil(t, findRow(bs, "    Vehicles"), "negative amounts are not listed")
	assert.Nil(t, findRow(bs, "    Land and Buildings"), "zero amounts are not listed")
	assert.Equal(t, []string{"Total Fixed Assets", "300000.00", ""}, findRow(bs, "Total Fixed Assets"))
	assert.NotNil(t, findRow(bs, "Schedule 7: Current Liabilities"))

	pl := sheet(t, sheets, SheetPLSchedules)
	assert.Equal(t, "Schedule 8: Revenue from Operations", pl.Rows[2][0])
	assert.NotNil(t, findRow(pl, "Schedule 14: Other Expenses"))
}

func TestSheets_Notes(t *testing.T) {
	n := sheet(t, Sheets(sampleResult(), asOf, "₹"), SheetNotes)
	assert.Equal(t, []string{"Opening Balance", "640000.00", ""}, findRow(n, "Opening Balance"))
	assert.Equal(t, []string{"Add: Capital Introduced", "160000.00", ""}, findRow(n, "Add: Capital Introduced"))
	assert.Equal(t, []string{"Total", "800000.00", ""}, findRow(n, "Total"))
}

func TestNoteNumber(t *testing.T) {
	seen := make(map[int]bool)
	for _, c := range taxonomy.Categories() {
		n := NoteNumber(c.Code)
		assert.True(t, n >= 1 && n <= 14, c.Code)
		assert.False(t, seen[n], "duplicate note %d", n)
		seen[n] = true
	}
	assert.Zero(t, NoteNumber("BS_Unknown"))
}

func TestWriteAllCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	sheets := Sheets(sampleResult(), asOf, "₹")

	paths, err := WriteAllCSV(dir, sheets)
	require.NoError(t, err)
	require.Len(t, paths, 5)
	assert.Equal(t, filepath.Join(dir, "balance_sheet.csv"), paths[0])
	assert.Equal(t, filepath.Join(dir, "bs_schedules.csv"), paths[2])

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, sheets[0].Rows, records)
}
