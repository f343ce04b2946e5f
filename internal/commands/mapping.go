package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/fsprep/internal/export"
	"github.com/cleared-dev/fsprep/internal/mapping"
	"github.com/cleared-dev/fsprep/internal/model"
	"github.com/cleared-dev/fsprep/internal/session"
	"github.com/cleared-dev/fsprep/internal/taxonomy"
)

func newOptionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "options [category]",
		Short: "List categories, or the sub-categories of one category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := out(cmd)
			if len(args) == 0 {
				for _, st := range []model.Statement{model.StatementBalanceSheet, model.StatementProfitAndLoss} {
					_, _ = fmt.Fprintln(w, titleStyle.Render(st.Title()))
					for _, c := range taxonomy.ByStatement(st) {
						_, _ = fmt.Fprintf(w, "    %s\n", c.Option())
					}
				}
				return nil
			}

			cat, ok := taxonomy.ResolveCategory(args[0])
			if !ok {
				return fmt.Errorf("%q: %w", args[0], session.ErrUnknownCategory)
			}
			_, _ = fmt.Fprintln(w, titleStyle.Render(cat.Option()))
			for _, opt := range taxonomy.SubCategoryOptions(cat.Option()) {
				_, _ = fmt.Fprintf(w, "    %s\n", opt)
			}
			return nil
		},
	}
}

func newMapCommand(a *app) *cobra.Command {
	var skip bool

	cmd := &cobra.Command{
		Use:   "map <ledger> [category]",
		Short: "Map a ledger to a category (code, option or name)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			option := taxonomy.CategorySentinel
			if !skip {
				if len(args) != 2 {
					return fmt.Errorf("map needs a category unless --skip is given")
				}
				option = args[1]
			}

			s, err := a.open()
			if err != nil {
				return err
			}
			got, err := s.SetPrimaryMapping(args[0], option)
			if err != nil {
				return err
			}
			if err := a.save(s); err != nil {
				return err
			}

			if skip {
				printSuccessf(out(cmd), "%s will be left out of the statements", args[0])
				return nil
			}
			printSuccessf(out(cmd), "%s → %s", args[0], got)
			return nil
		},
	}

	cmd.Flags().BoolVar(&skip, "skip", false, "mark the ledger as deliberately unmapped")
	return cmd
}

func newSubmapCommand(a *app) *cobra.Command {
	var skip bool

	cmd := &cobra.Command{
		Use:   "submap <ledger> [sub-category]",
		Short: "Map a ledger to a sub-category of its category",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			option := taxonomy.SubCategorySentinel
			if !skip {
				if len(args) != 2 {
					return fmt.Errorf("submap needs a sub-category unless --skip is given")
				}
				option = args[1]
			}

			s, err := a.open()
			if err != nil {
				return err
			}
			got, err := s.SetSubMapping(args[0], option)
			if err != nil {
				return err
			}
			if err := a.save(s); err != nil {
				return err
			}
			printSuccessf(out(cmd), "%s → %s", args[0], got)
			return nil
		},
	}

	cmd.Flags().BoolVar(&skip, "skip", false, "leave the ledger out of its category schedule")
	return cmd
}

func newUnmapCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unmap <ledger>",
		Short: "Remove a ledger's category and sub-category mappings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open()
			if err != nil {
				return err
			}
			s.ClearMapping(args[0])
			if err := a.save(s); err != nil {
				return err
			}
			printSuccessf(out(cmd), "%s unmapped", args[0])
			return nil
		},
	}
}

func newUnmappedCommand(a *app) *cobra.Command {
	var search string
	var group bool

	cmd := &cobra.Command{
		Use:   "unmapped",
		Short: "List ledgers the statements will leave out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open()
			if err != nil {
				return err
			}
			w := out(cmd)

			if group {
				for _, g := range s.Store().GroupByMapping(mapping.Filter(s.Ledgers(), search)) {
					_, _ = fmt.Fprintf(w, "%s (%d)\n", titleStyle.Render(g.Option), len(g.Ledgers))
					for _, l := range g.Ledgers {
						_, _ = fmt.Fprintf(w, "    %-40s %s\n", l.Name, export.Amount(l.Balance))
					}
				}
				return nil
			}

			unmapped := mapping.Filter(s.UnmappedLedgers(), search)
			if len(unmapped) == 0 {
				printSuccessf(w, "All ledgers are mapped")
				return nil
			}
			printInfof(w, "%d unmapped ledgers", len(unmapped))
			for _, l := range unmapped {
				_, _ = fmt.Fprintf(w, "    %-40s %s\n", l.Name, export.Amount(l.Balance))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "only ledgers whose name contains this text")
	cmd.Flags().BoolVar(&group, "group", false, "list every ledger grouped by mapping")
	return cmd
}
