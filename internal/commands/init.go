package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/fsprep/internal/config"
	"github.com/cleared-dev/fsprep/internal/gitops"
	"github.com/cleared-dev/fsprep/internal/workspace"
)

func newInitCommand(a *app) *cobra.Command {
	var name string
	var noGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new fsprep workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.dir
			if len(args) > 0 {
				abs, err := filepath.Abs(args[0])
				if err != nil {
					return fmt.Errorf("resolving path: %w", err)
				}
				dir = abs
			}
			return runInit(cmd, a, dir, name, !noGit)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().BoolVar(&noGit, "no-git", false, "skip git repository setup")

	return cmd
}

func runInit(cmd *cobra.Command, a *app, dir, name string, useGit bool) error {
	if workspace.IsWorkspace(dir) {
		return fmt.Errorf("%s is already an fsprep workspace", dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating workspace: %w", err)
	}
	if err := workspace.Init(dir); err != nil {
		return err
	}

	cfg := config.Default(name)
	cfg.Git.AutoCommit = useGit
	if err := config.Save(filepath.Join(dir, workspace.ConfigFile), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	msg := fmt.Sprintf("Initialized fsprep workspace at %s", dir)
	if useGit && gitAvailable() && !gitops.IsRepo(dir) {
		if err := gitops.Init(dir); err != nil {
			return err
		}
		author := gitops.Author{Name: cfg.Git.AuthorName, Email: cfg.Git.AuthorEmail}
		hash, err := gitops.CommitAll(dir, "init: Initialize "+name, author)
		if err != nil {
			return fmt.Errorf("initial commit: %w", err)
		}
		msg += " (" + hash + ")"
	}

	a.log.Debug().Str("dir", dir).Msg("workspace initialized")
	printSuccessf(out(cmd), "%s", msg)
	return nil
}
