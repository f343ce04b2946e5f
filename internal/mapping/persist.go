package mapping

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// File names of the two mapping stores.
const (
	PrimaryFile = "account_mappings.json"
	SubFile     = "sub_schedule_mappings.json"
)

// Load reads both mapping files from dir. A missing or unreadable file
// yields an empty map; Load never fails.
func Load(dir string, log zerolog.Logger) *Store {
	return &Store{
		primary: loadFile(filepath.Join(dir, PrimaryFile), log),
		sub:     loadFile(filepath.Join(dir, SubFile), log),
	}
}

func loadFile(path string, log zerolog.Logger) map[string]string {
	m, err := ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("ignoring mapping file")
		return make(map[string]string)
	}
	return m
}

// ReadFile reads one JSON object of string to string. A missing file returns
// an empty map and no error.
func ReadFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("reading mappings: %w", err)
	}
	m := make(map[string]string)
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing mappings: %w", err)
	}
	if m == nil {
		m = make(map[string]string)
	}
	return m, nil
}

// WriteFile writes m as a JSON object.
func WriteFile(path string, m map[string]string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling mappings: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing mappings: %w", err)
	}
	return nil
}

// Save writes both mapping files to dir, creating it if needed.
func (s *Store) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating mappings dir: %w", err)
	}
	if err := WriteFile(filepath.Join(dir, PrimaryFile), s.primary); err != nil {
		return fmt.Errorf("saving primary mappings: %w", err)
	}
	if err := WriteFile(filepath.Join(dir, SubFile), s.sub); err != nil {
		return fmt.Errorf("saving sub-category mappings: %w", err)
	}
	return nil
}
