// Package archive keeps the append-only history of committed aggregations.
package archive

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cleared-dev/fsprep/internal/model"
)

// ErrVersionNotFound is returned when a version id was never allocated.
var ErrVersionNotFound = errors.New("version not found")

// Snapshot is the restorable state held by a version.
type Snapshot struct {
	ID         int
	Mapping    map[string]string
	SubMapping map[string]string
	Ledgers    []model.LedgerRecord
	Result     *model.Result
}

// Summary describes a version without copying its contents.
type Summary struct {
	ID            int
	Timestamp     time.Time
	Ledgers       int
	Mapped        int
	Demonstration bool
	Current       bool
}

// Archive is an in-memory, append-only list of versions. It is safe for
// concurrent use; stored versions are copied on the way in and out.
type Archive struct {
	mu       sync.RWMutex
	versions []model.Version
	current  int // 0 = unset
	now      func() time.Time
}

// New creates an empty Archive.
func New() *Archive {
	return &Archive{now: time.Now}
}

// NewFromVersions rebuilds an Archive from previously committed versions.
// Ids must run 1..n in order. The last version becomes current.
func NewFromVersions(versions []model.Version) (*Archive, error) {
	a := New()
	for i, v := range versions {
		if v.ID != i+1 {
			return nil, fmt.Errorf("version %d found at position %d", v.ID, i+1)
		}
		a.versions = append(a.versions, v.Clone())
	}
	a.current = len(a.versions)
	return a, nil
}

// Commit stores copies of the inputs as the next version and marks it
// current.
func (a *Archive) Commit(mapping, sub map[string]string, ledgers []model.LedgerRecord, result *model.Result) model.Version {
	a.mu.Lock()
	defer a.mu.Unlock()

	ts := a.now()
	if result != nil && !result.GeneratedAt.IsZero() {
		ts = result.GeneratedAt
	}
	v := model.Version{
		ID:         len(a.versions) + 1,
		Timestamp:  ts,
		Mapping:    model.CloneMapping(mapping),
		SubMapping: model.CloneMapping(sub),
		Ledgers:    model.CloneLedgers(ledgers),
		Result:     result.Clone(),
	}
	a.versions = append(a.versions, v)
	a.current = v.ID
	return v.Clone()
}

// Get returns a copy of a version.
func (a *Archive) Get(id int) (model.Version, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if id < 1 || id > len(a.versions) {
		return model.Version{}, fmt.Errorf("version %d: %w", id, ErrVersionNotFound)
	}
	return a.versions[id-1].Clone(), nil
}

// Restore returns copies of a version's state and marks it current. On a
// miss nothing changes.
func (a *Archive) Restore(id int) (Snapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if id < 1 || id > len(a.versions) {
		return Snapshot{}, fmt.Errorf("version %d: %w", id, ErrVersionNotFound)
	}
	v := a.versions[id-1].Clone()
	a.current = id
	return Snapshot{
		ID:         v.ID,
		Mapping:    v.Mapping,
		SubMapping: v.SubMapping,
		Ledgers:    v.Ledgers,
		Result:     v.Result,
	}, nil
}

// List summarizes every version in id order.
func (a *Archive) List() []Summary {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]Summary, len(a.versions))
	for i, v := range a.versions {
		s := Summary{
			ID:        v.ID,
			Timestamp: v.Timestamp,
			Ledgers:   len(v.Ledgers),
			Mapped:    len(v.Mapping),
			Current:   v.ID == a.current,
		}
		if v.Result != nil {
			s.Demonstration = v.Result.Demonstration
		}
		out[i] = s
	}
	return out
}

// Current returns the current version id, if one is set.
func (a *Archive) Current() (int, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.current, a.current != 0
}

// SetCurrent points the current marker at an existing version.
func (a *Archive) SetCurrent(id int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if id < 1 || id > len(a.versions) {
		return fmt.Errorf("version %d: %w", id, ErrVersionNotFound)
	}
	a.current = id
	return nil
}

// Len returns the number of versions.
func (a *Archive) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.versions)
}
