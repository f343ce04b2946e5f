package archive

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/fsprep/internal/aggregate"
	"github.com/cleared-dev/fsprep/internal/model"
	"github.com/cleared-dev/fsprep/internal/taxonomy"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fixture struct {
	mapping map[string]string
	sub     map[string]string
	ledgers []model.LedgerRecord
	result  *model.Result
}

func newFixture() fixture {
	f := fixture{
		mapping: map[string]string{
			"Capital Account": "BS_CapitalAccount - Capital Account",
			"Plant":           "BS_FixedAssets - Fixed Assets",
		},
		sub: map[string]string{
			"Plant": "BS_FixedAssets_PlantandMachinery - Plant and Machinery",
		},
		ledgers: []model.LedgerRecord{
			{Name: "Capital Account", Balance: dec("800000")},
			{Name: "Plant", Balance: dec("300000.50")},
		},
	}
	f.result = aggregate.Aggregate(f.ledgers, f.mapping, f.sub)
	return f
}

func TestCommit_AllocatesSequentialIDs(t *testing.T) {
	a := New()
	f := newFixture()

	_, ok := a.Current()
	assert.False(t, ok)

	v1 := a.Commit(f.mapping, f.sub, f.ledgers, f.result)
	v2 := a.Commit(f.mapping, f.sub, f.ledgers, f.result)

	assert.Equal(t, 1, v1.ID)
	assert.Equal(t, 2, v2.ID)
	assert.Equal(t, 2, a.Len())
	cur, ok := a.Current()
	require.True(t, ok)
	assert.Equal(t, 2, cur)
	assert.Equal(t, f.result.GeneratedAt, v1.Timestamp)
}

func TestCommit_CopiesInputs(t *testing.T) {
	a := New()
	f := newFixture()
	a.Commit(f.mapping, f.sub, f.ledgers, f.result)

	f.mapping["Plant"] = "changed"
	f.sub["Plant"] = "changed"
	f.ledgers[0].Name = "changed"
	f.result.Categories[0].Total = dec("1")

	v, err := a.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "BS_FixedAssets - Fixed Assets", v.Mapping["Plant"])
	assert.Equal(t, "BS_FixedAssets_PlantandMachinery - Plant and Machinery", v.SubMapping["Plant"])
	assert.Equal(t, "Capital Account", v.Ledgers[0].Name)
	assert.True(t, v.Result.Total(taxonomy.FixedAssets).Equal(dec("300000.50")))
}

func TestRestore_RoundTrip(t *testing.T) {
	a := New()
	f := newFixture()
	a.Commit(f.mapping, f.sub, f.ledgers, f.result)
	a.Commit(map[string]string{}, map[string]string{}, nil, aggregate.Aggregate(nil, nil, nil))

	snap, err := a.Restore(1)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.ID)
	assert.Equal(t, f.mapping, snap.Mapping)
	assert.Equal(t, f.sub, snap.SubMapping)
	assert.Equal(t, f.ledgers, snap.Ledgers)
	assert.Equal(t, f.result, snap.Result)

	cur, _ := a.Current()
	assert.Equal(t, 1, cur)

	// Mutating the restored copy leaves the archive alone.
	snap.Mapping["Plant"] = "changed"
	snap.Ledgers[1].Balance = dec("0")
	snap.Result.Categories[0].Schedule[1].Ledgers[0].Name = "changed"

	again, err := a.Restore(1)
	require.NoError(t, err)
	assert.Equal(t, f.mapping, again.Mapping)
	assert.Equal(t, f.ledgers, again.Ledgers)
	assert.Equal(t, "Plant", again.Result.Categories[0].Schedule[1].Ledgers[0].Name)
}

func TestRestore_NotFound(t *testing.T) {
	a := New()
	f := newFixture()
	a.Commit(f.mapping, f.sub, f.ledgers, f.result)

	for _, id := range []int{0, -1, 2, 99} {
		_, err := a.Restore(id)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrVersionNotFound), "id %d", id)
	}

	cur, _ := a.Current()
	assert.Equal(t, 1, cur)
	assert.Equal(t, 1, a.Len())

	_, err := a.Get(5)
	assert.ErrorIs(t, err, ErrVersionNotFound)
	assert.ErrorIs(t, a.SetCurrent(5), ErrVersionNotFound)
}

func TestIdenticalRunsYieldIdenticalTotals(t *testing.T) {
	a := New()
	f := newFixture()
	first := aggregate.Aggregate(f.ledgers, f.mapping, f.sub)
	second := aggregate.Aggregate(f.ledgers, f.mapping, f.sub)
	v1 := a.Commit(f.mapping, f.sub, f.ledgers, first)
	v2 := a.Commit(f.mapping, f.sub, f.ledgers, second)

	assert.NotEqual(t, v1.ID, v2.ID)
	for i := range v1.Result.Categories {
		assert.True(t, v1.Result.Categories[i].Total.Equal(v2.Result.Categories[i].Total))
	}
}

func TestList(t *testing.T) {
	a := New()
	f := newFixture()
	a.Commit(f.mapping, f.sub, f.ledgers, f.result)
	a.Commit(nil, nil, nil, aggregate.Aggregate(nil, nil, nil))
	require.NoError(t, a.SetCurrent(1))

	list := a.List()
	require.Len(t, list, 2)
	assert.Equal(t, 1, list[0].ID)
	assert.Equal(t, 2, list[0].Ledgers)
	assert.Equal(t, 2, list[0].Mapped)
	assert.True(t, list[0].Current)
	assert.False(t, list[0].Demonstration)
	assert.False(t, list[1].Current)
	assert.True(t, list[1].Demonstration)
}

func TestCommit_ConcurrentIDsAreUnique(t *testing.T) {
	a := New()
	f := newFixture()

	var wg sync.WaitGroup
	ids := make(chan int, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- a.Commit(f.mapping, f.sub, f.ledgers, f.result).ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, 50)
	assert.Equal(t, 50, a.Len())
}

func TestCommit_NilResultUsesClock(t *testing.T) {
	at := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	a := New()
	a.now = func() time.Time { return at }

	v := a.Commit(nil, nil, nil, nil)
	assert.Equal(t, at, v.Timestamp)
	assert.Nil(t, v.Result)
}

func TestSaveAndOpen(t *testing.T) {
	root := t.TempDir()
	a := New()
	f := newFixture()
	v1 := a.Commit(f.mapping, f.sub, f.ledgers, f.result)
	v2 := a.Commit(f.mapping, map[string]string{}, f.ledgers[:1], f.result)
	require.NoError(t, SaveVersion(root, v2))
	require.NoError(t, SaveVersion(root, v1))

	_, err := os.Stat(filepath.Join(root, Dir, "v0001.json"))
	require.NoError(t, err)

	// Snapshots are write-once.
	assert.Error(t, SaveVersion(root, v1))

	got, err := Open(root)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Len())
	cur, _ := got.Current()
	assert.Equal(t, 2, cur)

	snap, err := got.Restore(1)
	require.NoError(t, err)
	assert.Equal(t, f.mapping, snap.Mapping)
	require.Len(t, snap.Ledgers, 2)
	assert.True(t, snap.Ledgers[1].Balance.Equal(dec("300000.50")))
	assert.True(t, snap.Result.Total(taxonomy.CapitalAccount).Equal(dec("800000")))
	assert.True(t, snap.Result.Notes.Capital.Opening.Equal(dec("640000")))
	assert.True(t, snap.Result.GeneratedAt.Equal(f.result.GeneratedAt))

	v, err := got.Get(2)
	require.NoError(t, err)
	assert.Len(t, v.Ledgers, 1)
}

func TestOpen_EmptyAndGaps(t *testing.T) {
	a, err := Open(t.TempDir())
	require.NoError(t, err)
	assert.Zero(t, a.Len())

	root := t.TempDir()
	require.NoError(t, SaveVersion(root, model.Version{ID: 2}))
	_, err = Open(root)
	assert.Error(t, err)
}
