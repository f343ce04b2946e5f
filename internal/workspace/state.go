package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/fsprep/internal/model"
)

// State is the extraction metadata and version pointer kept in state.yaml.
type State struct {
	SourceVersion  string    `yaml:"source_version"`
	Strategy       string    `yaml:"strategy"`
	ExtractedAt    time.Time `yaml:"extracted_at"`
	Degraded       bool      `yaml:"degraded"`
	ParseFailures  int       `yaml:"parse_failures"`
	CurrentVersion int       `yaml:"current_version,omitempty"`
}

// StateOf captures the metadata of an extraction.
func StateOf(e model.Extraction) State {
	return State{
		SourceVersion: e.SourceVersion,
		Strategy:      e.Strategy,
		ExtractedAt:   e.ExtractedAt,
		Degraded:      e.Degraded,
		ParseFailures: e.ParseFailures,
	}
}

// Extraction rebuilds an extraction from the metadata and ledgers.
func (s State) Extraction(ledgers []model.LedgerRecord) model.Extraction {
	return model.Extraction{
		Ledgers:       ledgers,
		SourceVersion: s.SourceVersion,
		ExtractedAt:   s.ExtractedAt,
		Strategy:      s.Strategy,
		Degraded:      s.Degraded,
		ParseFailures: s.ParseFailures,
	}
}

// LoadState reads state.yaml. A missing file returns nil, nil.
func LoadState(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading state: %w", err)
	}
	var st State
	if err := yaml.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parsing state: %w", err)
	}
	return &st, nil
}

// SaveState writes state.yaml.
func SaveState(path string, st State) error {
	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshaling state: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing state: %w", err)
	}
	return nil
}
