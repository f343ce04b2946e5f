package mapping

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/fsprep/internal/model"
	"github.com/cleared-dev/fsprep/internal/taxonomy"
)

const (
	fixedAssets = "BS_FixedAssets - Fixed Assets"
	capital     = "BS_CapitalAccount - Capital Account"
)

func ledger(name string, bal int64) model.LedgerRecord {
	return model.LedgerRecord{Name: name, Balance: decimal.NewFromInt(bal)}
}

func TestStore_SetGet(t *testing.T) {
	s := NewStore()
	s.SetPrimary("Plant", fixedAssets)
	s.SetSub("Plant", "BS_FixedAssets_PlantandMachinery - Plant and Machinery")

	got, ok := s.Primary("Plant")
	require.True(t, ok)
	assert.Equal(t, fixedAssets, got)
	sub, ok := s.Sub("Plant")
	require.True(t, ok)
	assert.Equal(t, "BS_FixedAssets_PlantandMachinery - Plant and Machinery", sub)
	assert.Equal(t, 1, s.Len())

	s.Clear("Plant")
	_, ok = s.Primary("Plant")
	assert.False(t, ok)
	_, ok = s.Sub("Plant")
	assert.False(t, ok)
	assert.Zero(t, s.Len())
}

func TestStore_SentinelIsStoredButUnmapped(t *testing.T) {
	s := NewStore()
	s.SetPrimary("Cash", taxonomy.CategorySentinel)

	assert.Equal(t, 1, s.Len())
	assert.False(t, s.IsMapped("Cash"))

	ledgers := []model.LedgerRecord{ledger("Cash", 10)}
	assert.Len(t, s.Unmapped(ledgers), 1)
	assert.Empty(t, s.NewLedgers(ledgers))
}

func TestStore_CopiesAreIndependent(t *testing.T) {
	primary := map[string]string{"Plant": fixedAssets}
	s := NewStoreFrom(primary, nil)
	primary["Plant"] = "changed"

	got, _ := s.Primary("Plant")
	assert.Equal(t, fixedAssets, got)

	m := s.PrimaryMap()
	m["Plant"] = "changed"
	got, _ = s.Primary("Plant")
	assert.Equal(t, fixedAssets, got)

	c := s.Clone()
	c.SetPrimary("Plant", capital)
	got, _ = s.Primary("Plant")
	assert.Equal(t, fixedAssets, got)

	assert.NotNil(t, s.SubMap())
}

func TestStore_NewLedgers(t *testing.T) {
	s := NewStore()
	s.SetPrimary("Capital Account", capital)

	got := s.NewLedgers([]model.LedgerRecord{
		ledger("Capital Account", 1),
		ledger("Secured Loans", 2),
		ledger("capital account", 3),
	})
	require.Len(t, got, 2)
	assert.Equal(t, "Secured Loans", got[0].Name)
	assert.Equal(t, "capital account", got[1].Name)
}

func TestStore_GroupByMapping(t *testing.T) {
	s := NewStore()
	s.SetPrimary("Plant", fixedAssets)
	s.SetPrimary("Land", fixedAssets)
	s.SetPrimary("Capital Account", capital)

	groups := s.GroupByMapping([]model.LedgerRecord{
		ledger("Plant", 1),
		ledger("Cash", 2),
		ledger("Capital Account", 3),
		ledger("Land", 4),
	})
	require.Len(t, groups, 3)
	assert.Equal(t, capital, groups[0].Option)
	assert.Equal(t, fixedAssets, groups[1].Option)
	assert.Equal(t, UnmappedGroup, groups[2].Option)

	require.Len(t, groups[1].Ledgers, 2)
	assert.Equal(t, "Plant", groups[1].Ledgers[0].Name)
	assert.Equal(t, "Land", groups[1].Ledgers[1].Name)
}

func TestFilter(t *testing.T) {
	ledgers := []model.LedgerRecord{ledger("Sundry Debtors", 1), ledger("Sundry Creditors", 2), ledger("Cash", 3)}

	assert.Len(t, Filter(ledgers, "sundry"), 2)
	assert.Len(t, Filter(ledgers, "CASH"), 1)
	assert.Len(t, Filter(ledgers, ""), 3)
	assert.Empty(t, Filter(ledgers, "loan"))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "mappings")
	s := NewStore()
	s.SetPrimary("Plant", fixedAssets)
	s.SetSub("Plant", "BS_FixedAssets_PlantandMachinery - Plant and Machinery")
	require.NoError(t, s.Save(dir))

	got := Load(dir, zerolog.Nop())
	assert.Equal(t, s.PrimaryMap(), got.PrimaryMap())
	assert.Equal(t, s.SubMap(), got.SubMap())
}

func TestLoad_MissingFilesAreEmpty(t *testing.T) {
	var buf bytes.Buffer
	got := Load(t.TempDir(), zerolog.New(&buf))

	assert.Zero(t, got.Len())
	assert.Empty(t, got.SubMap())
	assert.Empty(t, buf.String())

	// The empty store is writable.
	got.SetPrimary("Cash", capital)
	assert.Equal(t, 1, got.Len())
}

func TestLoad_CorruptFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, PrimaryFile), []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, SubFile), []byte(`{"Plant": "x"}`), 0o644))

	var buf bytes.Buffer
	got := Load(dir, zerolog.New(&buf))

	assert.Zero(t, got.Len())
	sub, ok := got.Sub("Plant")
	assert.True(t, ok)
	assert.Equal(t, "x", sub)
	assert.Contains(t, buf.String(), "ignoring mapping file")
}

func TestReadFile_NullIsEmptyMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.json")
	require.NoError(t, os.WriteFile(path, []byte("null"), 0o644))

	m, err := ReadFile(path)
	require.NoError(t, err)
	assert.NotNil(t, m)
	assert.Empty(t, m)
}
