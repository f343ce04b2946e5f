package workspace

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/fsprep/internal/model"
)

// LedgerHeader is the CSV header for ledgers.csv.
const LedgerHeader = "name,balance"

const (
	numLedgerFields = 2
	colName         = 0
	colBalance      = 1
)

// ReadLedgers reads all ledgers from a ledgers.csv reader.
func ReadLedgers(r io.Reader) ([]model.LedgerRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numLedgerFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledgers CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	ledgers := make([]model.LedgerRecord, 0, len(records)-1)
	for i, rec := range records[1:] {
		l, err := UnmarshalLedger(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		ledgers = append(ledgers, l)
	}
	return ledgers, nil
}

// WriteLedgers writes ledgers to a ledgers.csv writer, header first.
func WriteLedgers(w io.Writer, ledgers []model.LedgerRecord) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(LedgerHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, l := range ledgers {
		if err := cw.Write(MarshalLedger(l)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalLedger converts a ledger to a CSV row.
func MarshalLedger(l model.LedgerRecord) []string {
	row := make([]string, numLedgerFields)
	row[colName] = l.Name
	row[colBalance] = l.Balance.String()
	return row
}

// UnmarshalLedger converts a CSV row to a ledger.
func UnmarshalLedger(record []string) (model.LedgerRecord, error) {
	if len(record) != numLedgerFields {
		return model.LedgerRecord{}, fmt.Errorf("expected %d fields, got %d", numLedgerFields, len(record))
	}
	bal, err := decimal.NewFromString(record[colBalance])
	if err != nil {
		return model.LedgerRecord{}, fmt.Errorf("parsing balance %q: %w", record[colBalance], err)
	}
	return model.LedgerRecord{Name: record[colName], Balance: bal}, nil
}
