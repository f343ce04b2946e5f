// Package workspace lays out an fsprep project directory and moves session
// state in and out of it.
package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/cleared-dev/fsprep/internal/archive"
	"github.com/cleared-dev/fsprep/internal/mapping"
	"github.com/cleared-dev/fsprep/internal/model"
	"github.com/cleared-dev/fsprep/internal/session"
)

const (
	ConfigFile  = "fsprep.yaml"
	LedgersFile = "ledgers.csv"
	StateFile   = "state.yaml"
	ImportDir   = "import"
	MappingsDir = "mappings"
	ExportsDir  = "exports"
)

// Dirs are created by Init, relative to the workspace root.
var Dirs = []string{
	ImportDir,
	filepath.Join(ImportDir, "processed"),
	MappingsDir,
	archive.Dir,
	ExportsDir,
}

// Init creates the directory layout under root. Existing files are kept.
func Init(root string) error {
	for _, d := range Dirs {
		if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	gitignore := "exports/\n.env\n"
	if err := os.WriteFile(filepath.Join(root, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}
	if err := os.WriteFile(filepath.Join(root, ImportDir, ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}
	return nil
}

// IsWorkspace reports whether root holds an fsprep.yaml.
func IsWorkspace(root string) bool {
	_, err := os.Stat(filepath.Join(root, ConfigFile))
	return err == nil
}

// Open rebuilds a session from the files under root: mappings, version
// snapshots, the active ledgers and the current version's statements.
func Open(root string, log zerolog.Logger) (*session.State, error) {
	store := mapping.Load(filepath.Join(root, MappingsDir), log)

	arch, err := archive.Open(root)
	if err != nil {
		return nil, err
	}

	opts := []session.Option{
		session.WithLogger(log),
		session.WithStore(store),
		session.WithArchive(arch),
	}

	st, err := LoadState(filepath.Join(root, StateFile))
	if err != nil {
		return nil, err
	}
	ledgers, err := LoadLedgers(filepath.Join(root, LedgersFile))
	if err != nil {
		return nil, err
	}
	if st != nil {
		opts = append(opts, session.WithExtraction(st.Extraction(ledgers)))
		if st.CurrentVersion > 0 {
			if err := arch.SetCurrent(st.CurrentVersion); err != nil {
				return nil, fmt.Errorf("state points at missing version: %w", err)
			}
		}
	}
	if cur, ok := arch.Current(); ok {
		v, err := arch.Get(cur)
		if err != nil {
			return nil, err
		}
		if v.Result != nil {
			opts = append(opts, session.WithResult(v.Result))
		}
	}

	return session.New(opts...), nil
}

// Persist writes the session's mappings, active ledgers and state to root.
// Version snapshots are written by CommitVersion.
func Persist(root string, s *session.State) error {
	if err := s.SaveMappings(filepath.Join(root, MappingsDir)); err != nil {
		return err
	}
	if !s.HasExtraction() {
		return nil
	}

	e := s.Extraction()
	if err := SaveLedgers(filepath.Join(root, LedgersFile), e.Ledgers); err != nil {
		return err
	}
	st := StateOf(e)
	if cur, ok := s.Archive().Current(); ok {
		st.CurrentVersion = cur
	}
	return SaveState(filepath.Join(root, StateFile), st)
}

// CommitVersion commits the session's statements and writes the snapshot
// under root.
func CommitVersion(root string, s *session.State) (model.Version, error) {
	v, err := s.CommitVersion()
	if err != nil {
		return model.Version{}, err
	}
	if err := archive.SaveVersion(root, v); err != nil {
		return model.Version{}, err
	}
	return v, nil
}

// LoadLedgers reads ledgers.csv at path. A missing file yields no ledgers.
func LoadLedgers(path string) ([]model.LedgerRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening ledgers: %w", err)
	}
	defer f.Close()
	return ReadLedgers(f)
}

// SaveLedgers replaces ledgers.csv at path.
func SaveLedgers(path string, ledgers []model.LedgerRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating ledgers file: %w", err)
	}
	if err := WriteLedgers(f, ledgers); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
