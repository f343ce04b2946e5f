package commands

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/fsprep/internal/aggregate"
	"github.com/cleared-dev/fsprep/internal/export"
	"github.com/cleared-dev/fsprep/internal/id"
	"github.com/cleared-dev/fsprep/internal/logging"
	"github.com/cleared-dev/fsprep/internal/model"
	"github.com/cleared-dev/fsprep/internal/session"
	"github.com/cleared-dev/fsprep/internal/workspace"
)

// Sheet selectors accepted by show.
var showSheets = map[string][]string{
	"balance-sheet": {export.SheetBalanceSheet},
	"profit-loss":   {export.SheetProfitAndLoss},
	"schedules":     {export.SheetBSSchedules, export.SheetPLSchedules},
	"notes":         {export.SheetNotes},
}

func newGenerateCommand(a *app) *cobra.Command {
	var commit bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Aggregate mapped ledgers into statements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open()
			if err != nil {
				return err
			}
			w := out(cmd)

			res := s.GenerateStatements()
			if res.Demonstration {
				printWarnf(w, "No mappings saved; showing demonstration figures")
			}
			if n := len(s.UnmappedLedgers()); n > 0 {
				printWarnf(w, "%d ledgers are unmapped and left out", n)
			}
			printTotals(cmd, res)

			if !commit {
				printInfof(w, "Not committed; run generate again without --commit=false to keep it")
				return nil
			}
			v, err := a.commit(s)
			if err != nil {
				return err
			}
			printSuccessf(w, "Committed version %s", id.FormatVersionID(v.ID))
			return nil
		},
	}

	cmd.Flags().BoolVar(&commit, "commit", true, "archive the result as a new version")
	return cmd
}

func printTotals(cmd *cobra.Command, res *model.Result) {
	t := aggregate.Summarize(res)
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 1 {
				return amountStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Rows(
			[]string{"Total Assets", export.Amount(t.Assets)},
			[]string{"Total Liabilities", export.Amount(t.Liabilities)},
			[]string{"Total Income", export.Amount(t.Income)},
			[]string{"Total Expenses", export.Amount(t.Expenses)},
			[]string{"Profit Before Tax", export.Amount(t.ProfitBeforeTax)},
		)
	_, _ = fmt.Fprintln(out(cmd), tbl.String())
}

func activeResult(s *session.State) (*model.Result, error) {
	res, err := s.Result()
	if errors.Is(err, session.ErrNoStatements) {
		return nil, fmt.Errorf("%w (run fsprep generate)", err)
	}
	return res, err
}

func newShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "show [balance-sheet|profit-loss|schedules|notes]",
		Short:     "Print the current statements",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"balance-sheet", "profit-loss", "schedules", "notes"},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open()
			if err != nil {
				return err
			}
			res, err := activeResult(s)
			if err != nil {
				return err
			}

			var want map[string]bool
			if len(args) == 1 {
				want = make(map[string]bool)
				for _, name := range showSheets[args[0]] {
					want[name] = true
				}
			}

			w := out(cmd)
			if res.Demonstration {
				printWarnf(w, "Demonstration figures")
			}
			for _, sheet := range export.Sheets(res, res.GeneratedAt, a.cfg.Business.Currency) {
				if want != nil && !want[sheet.Name] {
					continue
				}
				renderSheet(w, sheet)
				_, _ = fmt.Fprintln(w)
			}
			return nil
		},
	}
}

func newVersionsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "List committed versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open()
			if err != nil {
				return err
			}
			list := s.Archive().List()
			if len(list) == 0 {
				printInfof(out(cmd), "No versions yet")
				return nil
			}

			rows := make([][]string, 0, len(list))
			for _, v := range list {
				flags := ""
				if v.Current {
					flags = "current"
				}
				if v.Demonstration {
					flags += " demo"
				}
				rows = append(rows, []string{
					id.FormatVersionID(v.ID),
					v.Timestamp.Local().Format(time.DateTime),
					strconv.Itoa(v.Ledgers),
					strconv.Itoa(v.Mapped),
					flags,
				})
			}
			tbl := table.New().
				Border(lipgloss.NormalBorder()).
				BorderStyle(mutedStyle).
				Headers("Version", "Created", "Ledgers", "Mapped", "").
				Rows(rows...)
			_, _ = fmt.Fprintln(out(cmd), tbl.String())
			return nil
		},
	}
}

func newRestoreCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <version>",
		Short: "Make a committed version the active state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := id.ParseVersionID(args[0])
			if err != nil {
				return err
			}
			s, err := a.open()
			if err != nil {
				return err
			}
			if err := s.RestoreVersion(n); err != nil {
				return err
			}
			if err := a.save(s); err != nil {
				return err
			}
			a.gitCommit("restore " + id.FormatVersionID(n))

			logger := logging.FromContext(cmd.Context())
			logger.Info().Int("version", n).Msg("restored")
			printSuccessf(out(cmd), "Restored version %s", id.FormatVersionID(n))
			return nil
		},
	}
}

func newExportCommand(a *app) *cobra.Command {
	var outDir string
	var asOf string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the current statements as CSV sheets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date := time.Now()
			if asOf != "" {
				d, err := time.Parse(time.DateOnly, asOf)
				if err != nil {
					return fmt.Errorf("parsing --as-of: %w", err)
				}
				date = d
			}

			s, err := a.open()
			if err != nil {
				return err
			}
			res, err := activeResult(s)
			if err != nil {
				return err
			}

			dir := outDir
			if dir == "" {
				dir = filepath.Join(a.dir, workspace.ExportsDir)
			}
			paths, err := export.WriteAllCSV(dir, export.Sheets(res, date, a.cfg.Business.Currency))
			if err != nil {
				return err
			}
			for _, p := range paths {
				printSuccessf(out(cmd), "Wrote %s", p)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default exports/)")
	cmd.Flags().StringVar(&asOf, "as-of", "", "statement date, YYYY-MM-DD (default today)")
	return cmd
}
