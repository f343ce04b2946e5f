// Package mapping holds the ledger-name to category and sub-category
// associations chosen by the user.
package mapping

import (
	"sort"
	"strings"

	"github.com/cleared-dev/fsprep/internal/model"
	"github.com/cleared-dev/fsprep/internal/taxonomy"
)

// UnmappedGroup labels ledgers without a primary mapping in GroupByMapping.
const UnmappedGroup = "Unmapped"

// Store holds primary and sub-category mappings keyed by ledger name. A
// Store is owned by a single session and is not safe for concurrent use.
type Store struct {
	primary map[string]string
	sub     map[string]string
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{primary: make(map[string]string), sub: make(map[string]string)}
}

// NewStoreFrom creates a Store holding copies of primary and sub.
func NewStoreFrom(primary, sub map[string]string) *Store {
	return &Store{primary: model.CloneMapping(primary), sub: model.CloneMapping(sub)}
}

// SetPrimary maps a ledger to a category option. The sentinel option is
// stored as given; aggregation skips it.
func (s *Store) SetPrimary(name, option string) {
	s.primary[name] = option
}

// SetSub maps a ledger to a sub-category option.
func (s *Store) SetSub(name, option string) {
	s.sub[name] = option
}

// Clear removes both mappings for a ledger.
func (s *Store) Clear(name string) {
	delete(s.primary, name)
	delete(s.sub, name)
}

// Primary returns the primary mapping for a ledger.
func (s *Store) Primary(name string) (string, bool) {
	o, ok := s.primary[name]
	return o, ok
}

// Sub returns the sub-category mapping for a ledger.
func (s *Store) Sub(name string) (string, bool) {
	o, ok := s.sub[name]
	return o, ok
}

// PrimaryMap returns a copy of the primary mappings.
func (s *Store) PrimaryMap() map[string]string {
	return model.CloneMapping(s.primary)
}

// SubMap returns a copy of the sub-category mappings.
func (s *Store) SubMap() map[string]string {
	return model.CloneMapping(s.sub)
}

// Len returns the number of primary mappings.
func (s *Store) Len() int {
	return len(s.primary)
}

// Clone returns an independent copy of the store.
func (s *Store) Clone() *Store {
	return NewStoreFrom(s.primary, s.sub)
}

// Replace swaps in copies of primary and sub.
func (s *Store) Replace(primary, sub map[string]string) {
	s.primary = model.CloneMapping(primary)
	s.sub = model.CloneMapping(sub)
}

// IsMapped reports whether a ledger has a usable primary mapping.
func (s *Store) IsMapped(name string) bool {
	o, ok := s.primary[name]
	return ok && !taxonomy.IsSentinel(o)
}

// NewLedgers returns the ledgers whose name has no primary mapping entry.
func (s *Store) NewLedgers(ledgers []model.LedgerRecord) []model.LedgerRecord {
	var out []model.LedgerRecord
	for _, l := range ledgers {
		if _, ok := s.primary[l.Name]; !ok {
			out = append(out, l)
		}
	}
	return out
}

// Unmapped returns the ledgers that aggregation would skip for lack of a
// usable primary mapping.
func (s *Store) Unmapped(ledgers []model.LedgerRecord) []model.LedgerRecord {
	var out []model.LedgerRecord
	for _, l := range ledgers {
		if !s.IsMapped(l.Name) {
			out = append(out, l)
		}
	}
	return out
}

// Group is a set of ledgers sharing one primary mapping.
type Group struct {
	Option  string
	Ledgers []model.LedgerRecord
}

// GroupByMapping buckets ledgers by primary mapping, sorted by option.
// Ledgers without an entry land in UnmappedGroup.
func (s *Store) GroupByMapping(ledgers []model.LedgerRecord) []Group {
	idx := make(map[string]int)
	var groups []Group
	for _, l := range ledgers {
		opt, ok := s.primary[l.Name]
		if !ok {
			opt = UnmappedGroup
		}
		i, ok := idx[opt]
		if !ok {
			i = len(groups)
			idx[opt] = i
			groups = append(groups, Group{Option: opt})
		}
		groups[i].Ledgers = append(groups[i].Ledgers, l)
	}
	sort.Slice(groups, func(a, b int) bool { return groups[a].Option < groups[b].Option })
	return groups
}

// Filter returns the ledgers whose name contains term, ignoring case. An
// empty term returns every ledger.
func Filter(ledgers []model.LedgerRecord, term string) []model.LedgerRecord {
	if term == "" {
		return ledgers
	}
	term = strings.ToLower(term)
	var out []model.LedgerRecord
	for _, l := range ledgers {
		if strings.Contains(strings.ToLower(l.Name), term) {
			out = append(out, l)
		}
	}
	return out
}
