package gitops

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func lastCommit(t *testing.T, dir, format string) string {
	t.Helper()
	cmd := exec.Command("git", "log", "--format="+format, "-1")
	cmd.Dir = dir
	out, err := cmd.Output()
	require.NoError(t, err)
	return string(out)
}

func TestInit(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	assert.False(t, IsRepo(dir), "empty dir should not be a repo")

	require.NoError(t, Init(dir))
	assert.True(t, IsRepo(dir), "initialized dir should be a repo")
}

func TestCommitAll(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	author := Author{Name: "Test Author", Email: "test@example.com"}
	_, err := CommitAll(dir, "empty", author)
	assert.ErrorIs(t, err, ErrNothingToCommit)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "versions"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "versions", "v0001.json"), []byte("{}"), 0o644))

	changed, err := HasChanges(dir)
	require.NoError(t, err)
	assert.True(t, changed)

	hash, err := CommitAll(dir, "version v0001", author)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	assert.Contains(t, lastCommit(t, dir, "%s"), "version v0001")
	assert.Contains(t, lastCommit(t, dir, "%an <%ae>"), author.String())

	changed, err = HasChanges(dir)
	require.NoError(t, err)
	assert.False(t, changed)
}
