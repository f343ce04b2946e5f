// Package session ties the extractor, mapping store, aggregation engine and
// version archive together behind the user-level actions.
package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cleared-dev/fsprep/internal/aggregate"
	"github.com/cleared-dev/fsprep/internal/archive"
	"github.com/cleared-dev/fsprep/internal/extract"
	"github.com/cleared-dev/fsprep/internal/mapping"
	"github.com/cleared-dev/fsprep/internal/model"
	"github.com/cleared-dev/fsprep/internal/taxonomy"
)

var (
	ErrUnknownLedger      = errors.New("ledger not in current extraction")
	ErrUnknownCategory    = errors.New("unknown category")
	ErrUnknownSubCategory = errors.New("unknown sub-category")
	ErrNoPrimaryMapping   = errors.New("ledger has no primary mapping")
	ErrNoStatements       = errors.New("no statements generated")
)

// State is one user's working state: the active extraction, its mappings,
// the latest aggregation and the version history. A State is driven by one
// caller at a time.
type State struct {
	ID string

	extraction    model.Extraction
	hasExtraction bool
	newLedgers    []model.LedgerRecord
	store         *mapping.Store
	result        *model.Result
	archive       *archive.Archive

	extractor *extract.Extractor
	engine    *aggregate.Engine
	log       zerolog.Logger
}

// Option configures a State.
type Option func(*State)

// WithLogger sets the logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *State) { s.log = log }
}

// WithStore starts the session from an existing mapping store.
func WithStore(store *mapping.Store) Option {
	return func(s *State) { s.store = store }
}

// WithArchive starts the session from an existing archive.
func WithArchive(a *archive.Archive) Option {
	return func(s *State) { s.archive = a }
}

// WithExtraction starts the session with previously extracted ledgers.
func WithExtraction(e model.Extraction) Option {
	return func(s *State) {
		s.extraction = e
		s.hasExtraction = true
	}
}

// WithResult starts the session with a previously generated result.
func WithResult(r *model.Result) Option {
	return func(s *State) { s.result = r.Clone() }
}

// New creates a State with an empty store and archive unless options supply
// them.
func New(opts ...Option) *State {
	s := &State{
		ID:        uuid.NewString(),
		log:       zerolog.Nop(),
		extractor: extract.DefaultExtractor(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		s.store = mapping.NewStore()
	}
	if s.archive == nil {
		s.archive = archive.New()
	}
	s.log = s.log.With().Str("session", s.ID).Logger()
	s.engine = aggregate.NewEngine(s.log)
	return s
}

// Extract parses text and makes the result the active extraction.
func (s *State) Extract(text string) model.Extraction {
	return s.install(s.extractor.Extract(text))
}

// ExtractBytes decodes and parses raw bytes.
func (s *State) ExtractBytes(b []byte) model.Extraction {
	return s.install(s.extractor.ExtractBytes(b))
}

func (s *State) install(e model.Extraction) model.Extraction {
	s.extraction = e
	s.hasExtraction = true
	s.newLedgers = nil
	if s.store.Len() > 0 {
		s.newLedgers = s.store.NewLedgers(e.Ledgers)
	}

	evt := s.log.Info()
	if e.Degraded {
		evt = s.log.Warn()
	}
	evt.Str("strategy", e.Strategy).
		Str("source_version", e.SourceVersion).
		Int("ledgers", len(e.Ledgers)).
		Int("parse_failures", e.ParseFailures).
		Int("new_ledgers", len(s.newLedgers)).
		Msg("extracted ledgers")
	return s.Extraction()
}

// LoadSampleData installs the sample ledgers and their mappings.
func (s *State) LoadSampleData() model.Extraction {
	primary, sub := SampleMappings()
	s.store.Replace(primary, sub)
	e := SampleExtraction()
	s.extraction = e
	s.hasExtraction = true
	s.newLedgers = nil
	s.log.Info().Int("ledgers", len(e.Ledgers)).Msg("loaded sample data")
	return s.Extraction()
}

// Extraction returns a copy of the active extraction.
func (s *State) Extraction() model.Extraction {
	e := s.extraction
	e.Ledgers = model.CloneLedgers(e.Ledgers)
	return e
}

// HasExtraction reports whether ledgers have been extracted or restored.
func (s *State) HasExtraction() bool {
	return s.hasExtraction
}

// Ledgers returns a copy of the active ledgers.
func (s *State) Ledgers() []model.LedgerRecord {
	return model.CloneLedgers(s.extraction.Ledgers)
}

// NewLedgers returns ledgers from the last extraction that had no mapping
// entry at the time. It is empty when the store was empty.
func (s *State) NewLedgers() []model.LedgerRecord {
	return model.CloneLedgers(s.newLedgers)
}

// UnmappedLedgers returns the active ledgers that aggregation would skip.
func (s *State) UnmappedLedgers() []model.LedgerRecord {
	return s.store.Unmapped(s.extraction.Ledgers)
}

// Mappings returns copies of the primary and sub-category mappings.
func (s *State) Mappings() (primary, sub map[string]string) {
	return s.store.PrimaryMap(), s.store.SubMap()
}

// Store returns the session's mapping store.
func (s *State) Store() *mapping.Store {
	return s.store
}

// Archive returns the session's version archive.
func (s *State) Archive() *archive.Archive {
	return s.archive
}

func (s *State) checkLedger(name string) error {
	if !s.hasExtraction {
		return nil
	}
	for _, l := range s.extraction.Ledgers {
		if l.Name == name {
			return nil
		}
	}
	return fmt.Errorf("%q: %w", name, ErrUnknownLedger)
}

// SetPrimaryMapping maps a ledger to a category given as a code, option or
// name, and returns the option stored. The category sentinel is stored as
// is and leaves the ledger unmapped.
func (s *State) SetPrimaryMapping(name, option string) (string, error) {
	if err := s.checkLedger(name); err != nil {
		return "", err
	}
	if option == taxonomy.CategorySentinel {
		s.store.SetPrimary(name, option)
		return option, nil
	}
	cat, ok := taxonomy.ResolveCategory(option)
	if !ok {
		return "", fmt.Errorf("%q: %w", option, ErrUnknownCategory)
	}
	s.store.SetPrimary(name, cat.Option())
	s.log.Debug().Str("ledger", name).Str("category", cat.Code).Msg("mapped ledger")
	return cat.Option(), nil
}

// SetSubMapping maps a ledger to a sub-category of its primary category and
// returns the option stored.
func (s *State) SetSubMapping(name, option string) (string, error) {
	if err := s.checkLedger(name); err != nil {
		return "", err
	}
	if option == taxonomy.SubCategorySentinel {
		s.store.SetSub(name, option)
		return option, nil
	}
	if !s.store.IsMapped(name) {
		return "", fmt.Errorf("%q: %w", name, ErrNoPrimaryMapping)
	}
	primary, _ := s.store.Primary(name)
	cat, ok := taxonomy.Route(taxonomy.OptionCode(primary))
	if !ok {
		return "", fmt.Errorf("%q: %w", primary, ErrUnknownCategory)
	}
	sub, ok := taxonomy.ResolveSubCategory(cat, option)
	if !ok {
		return "", fmt.Errorf("%q under %s: %w", option, cat.Name, ErrUnknownSubCategory)
	}
	s.store.SetSub(name, sub.Option())
	s.log.Debug().Str("ledger", name).Str("sub_category", sub.Code).Msg("mapped ledger sub-category")
	return sub.Option(), nil
}

// ClearMapping removes both mappings for a ledger.
func (s *State) ClearMapping(name string) {
	s.store.Clear(name)
}

// GenerateStatements aggregates the active ledgers with the current
// mappings and makes the result active.
func (s *State) GenerateStatements() *model.Result {
	primary, sub := s.Mappings()
	s.result = s.engine.Aggregate(s.extraction.Ledgers, primary, sub)
	s.log.Info().
		Bool("demonstration", s.result.Demonstration).
		Int("unmapped", len(s.UnmappedLedgers())).
		Msg("generated statements")
	return s.result.Clone()
}

// Result returns a copy of the active result.
func (s *State) Result() (*model.Result, error) {
	if s.result == nil {
		return nil, ErrNoStatements
	}
	return s.result.Clone(), nil
}

// SaveMappings writes both mapping files to dir.
func (s *State) SaveMappings(dir string) error {
	if err := s.store.Save(dir); err != nil {
		return err
	}
	s.log.Info().Str("dir", dir).Int("mappings", s.store.Len()).Msg("saved mappings")
	return nil
}

// CommitVersion archives the active mappings, ledgers and result.
func (s *State) CommitVersion() (model.Version, error) {
	if s.result == nil {
		return model.Version{}, ErrNoStatements
	}
	primary, sub := s.Mappings()
	v := s.archive.Commit(primary, sub, s.extraction.Ledgers, s.result)
	s.log.Info().Int("version", v.ID).Msg("committed version")
	return v, nil
}

// RestoreVersion installs copies of an archived version as the active
// state. An unknown id leaves the state unchanged.
func (s *State) RestoreVersion(id int) error {
	snap, err := s.archive.Restore(id)
	if err != nil {
		return err
	}
	s.store.Replace(snap.Mapping, snap.SubMapping)
	s.extraction.Ledgers = snap.Ledgers
	s.hasExtraction = true
	s.newLedgers = nil
	s.result = snap.Result
	s.log.Info().Int("version", id).Msg("restored version")
	return nil
}
