package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/fsprep/internal/extract"
	"github.com/cleared-dev/fsprep/internal/model"
	"github.com/cleared-dev/fsprep/internal/session"
)

func newExtractCommand(a *app) *cobra.Command {
	var sample bool

	cmd := &cobra.Command{
		Use:   "extract [file|-]",
		Short: "Extract ledgers from a trial balance export",
		Long: `Extract ledgers from a trial balance export.

With a file argument the file is read; "-" reads stdin. Without arguments
every .xml and .txt file in import/ is extracted in name order and moved to
import/processed/; the last one becomes the active extraction.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open()
			if err != nil {
				return err
			}

			switch {
			case sample:
				report(cmd, "sample data", s.LoadSampleData(), nil)
			case len(args) == 1:
				data, err := readSource(cmd, args[0])
				if err != nil {
					return err
				}
				e := s.ExtractBytes(data)
				report(cmd, args[0], e, s.NewLedgers())
			default:
				if err := extractPending(cmd, a, s); err != nil {
					return err
				}
			}

			return a.save(s)
		},
	}

	cmd.Flags().BoolVar(&sample, "sample", false, "load the sample ledgers and mappings")
	return cmd
}

func readSource(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading export: %w", err)
	}
	return data, nil
}

func extractPending(cmd *cobra.Command, a *app, s *session.State) error {
	files, err := extract.Scan(a.dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		printInfof(out(cmd), "No exports waiting in import/")
		return nil
	}

	for _, f := range files {
		data, err := os.ReadFile(f.Path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", f.Name, err)
		}
		report(cmd, f.Name, s.ExtractBytes(data), s.NewLedgers())
		if err := extract.MarkProcessed(a.dir, f.Name); err != nil {
			return err
		}
	}
	return nil
}

func report(cmd *cobra.Command, source string, e model.Extraction, newLedgers []model.LedgerRecord) {
	w := out(cmd)
	if e.Degraded {
		printWarnf(w, "%s: could not find ledgers, loaded %d fallback ledgers", source, len(e.Ledgers))
		return
	}
	printSuccessf(w, "%s: extracted %d ledgers (%s, %s)", source, len(e.Ledgers), e.SourceVersion, e.Strategy)
	if e.ParseFailures > 0 {
		printWarnf(w, "%d amounts could not be parsed and were set to zero", e.ParseFailures)
	}
	if len(newLedgers) > 0 {
		printInfof(w, "%d new ledgers need mapping", len(newLedgers))
		for _, l := range newLedgers {
			_, _ = fmt.Fprintf(w, "    %s\n", l.Name)
		}
	}
}
