package commands

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/fsprep/internal/buildinfo"
	"github.com/cleared-dev/fsprep/internal/config"
	"github.com/cleared-dev/fsprep/internal/gitops"
	"github.com/cleared-dev/fsprep/internal/id"
	"github.com/cleared-dev/fsprep/internal/logging"
	"github.com/cleared-dev/fsprep/internal/model"
	"github.com/cleared-dev/fsprep/internal/session"
	"github.com/cleared-dev/fsprep/internal/workspace"
)

var errNotWorkspace = errors.New("not an fsprep workspace (run fsprep init)")

// app carries the resolved workspace, config and logger for one invocation.
type app struct {
	dir      string
	logLevel string
	cfg      *config.Config
	log      zerolog.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "fsprep",
		Short:   "Prepare financial statements from a trial balance export",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(); err != nil {
				return err
			}
			cmd.SetContext(logging.WithContext(cmd.Context(), a.log))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.dir, "dir", "C", ".", "workspace directory")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (overrides config)")

	rootCmd.AddCommand(
		newInitCommand(a),
		newExtractCommand(a),
		newOptionsCommand(),
		newMapCommand(a),
		newSubmapCommand(a),
		newUnmapCommand(a),
		newUnmappedCommand(a),
		newGenerateCommand(a),
		newShowCommand(a),
		newVersionsCommand(a),
		newRestoreCommand(a),
		newExportCommand(a),
	)

	return rootCmd
}

// setup resolves the workspace directory and loads its config, if any.
func (a *app) setup() error {
	abs, err := filepath.Abs(a.dir)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}
	a.dir = abs

	a.cfg = config.Default("")
	if workspace.IsWorkspace(a.dir) {
		cfg, err := config.Load(filepath.Join(a.dir, workspace.ConfigFile))
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	config.ApplyEnv(a.cfg, a.dir)
	if a.logLevel != "" {
		a.cfg.Log.Level = a.logLevel
	}
	a.log = logging.New(a.cfg.Log.Level)
	return nil
}

func (a *app) open() (*session.State, error) {
	if !workspace.IsWorkspace(a.dir) {
		return nil, errNotWorkspace
	}
	return workspace.Open(a.dir, a.log)
}

func (a *app) save(s *session.State) error {
	return workspace.Persist(a.dir, s)
}

// commit archives the session's statements, persists the workspace and
// records the change in git when auto-commit is on.
func (a *app) commit(s *session.State) (model.Version, error) {
	v, err := workspace.CommitVersion(a.dir, s)
	if err != nil {
		return model.Version{}, err
	}
	if err := a.save(s); err != nil {
		return model.Version{}, err
	}
	a.gitCommit("version " + id.FormatVersionID(v.ID))
	return v, nil
}

// gitCommit is best effort; a failed commit is logged, never fatal.
func (a *app) gitCommit(message string) {
	if !a.cfg.Git.AutoCommit || !gitops.IsRepo(a.dir) {
		return
	}
	author := gitops.Author{Name: a.cfg.Git.AuthorName, Email: a.cfg.Git.AuthorEmail}
	hash, err := gitops.CommitAll(a.dir, message, author)
	switch {
	case errors.Is(err, gitops.ErrNothingToCommit):
	case err != nil:
		a.log.Warn().Err(err).Msg("git commit failed")
	default:
		a.log.Debug().Str("commit", hash).Msg(message)
	}
}

func gitAvailable() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
