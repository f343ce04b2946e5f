package archive

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/cleared-dev/fsprep/internal/id"
	"github.com/cleared-dev/fsprep/internal/model"
)

// Dir is the workspace subdirectory holding version snapshots.
const Dir = "versions"

// SaveVersion writes v to <root>/versions/vNNNN.json. Existing snapshots are
// never overwritten.
func SaveVersion(root string, v model.Version) error {
	dir := filepath.Join(root, Dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating versions dir: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling version %d: %w", v.ID, err)
	}

	path := filepath.Join(dir, id.VersionFileName(v.ID))
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("creating version file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing version %d: %w", v.ID, err)
	}
	return nil
}

// LoadDir reads every snapshot under <root>/versions/, sorted by id. A
// missing directory yields no versions.
func LoadDir(root string) ([]model.Version, error) {
	dir := filepath.Join(root, Dir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading versions dir: %w", err)
	}

	var versions []model.Version
	for _, e := range entries {
		if e.IsDir() || !id.IsVersionFile(e.Name()) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", e.Name(), err)
		}
		var v model.Version
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", e.Name(), err)
		}
		versions = append(versions, v)
	}
	sort.Slice(versions, func(i, j int) bool { return versions[i].ID < versions[j].ID })
	return versions, nil
}

// Open rebuilds the archive stored under root.
func Open(root string) (*Archive, error) {
	versions, err := LoadDir(root)
	if err != nil {
		return nil, err
	}
	a, err := NewFromVersions(versions)
	if err != nil {
		return nil, fmt.Errorf("loading archive: %w", err)
	}
	return a, nil
}
