package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileName returns the CSV file name for a sheet, e.g. "balance_sheet.csv".
func FileName(s Sheet) string {
	return strings.ToLower(strings.ReplaceAll(s.Name, " ", "_")) + ".csv"
}

// WriteCSV writes one sheet.
func WriteCSV(w io.Writer, s Sheet) error {
	cw := csv.NewWriter(w)
	for i, r := range s.Rows {
		if err := cw.Write(r); err != nil {
			return fmt.Errorf("writing %s row %d: %w", s.Name, i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteAllCSV writes each sheet to its own file under dir and returns the
// paths written.
func WriteAllCSV(dir string, sheets []Sheet) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating export dir: %w", err)
	}

	paths := make([]string, 0, len(sheets))
	for _, s := range sheets {
		path := filepath.Join(dir, FileName(s))
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", FileName(s), err)
		}
		if err := WriteCSV(f, s); err != nil {
			f.Close()
			return nil, err
		}
		if err := f.Close(); err != nil {
			return nil, fmt.Errorf("closing %s: %w", FileName(s), err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
