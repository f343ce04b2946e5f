// Package gitops records workspace snapshots in a git repository.
package gitops

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNothingToCommit is returned by CommitAll on a clean working tree.
var ErrNothingToCommit = errors.New("nothing to commit")

// Author identifies who a commit is recorded for.
type Author struct {
	Name  string
	Email string
}

func (a Author) String() string {
	return fmt.Sprintf("%s <%s>", a.Name, a.Email)
}

// env makes the author the committer too, so commits work without a global
// git identity.
func (a Author) env() []string {
	return append(os.Environ(),
		"GIT_AUTHOR_NAME="+a.Name,
		"GIT_AUTHOR_EMAIL="+a.Email,
		"GIT_COMMITTER_NAME="+a.Name,
		"GIT_COMMITTER_EMAIL="+a.Email,
	)
}

func git(dir string, env []string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = env
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s: %s: %w", args[0], strings.TrimSpace(string(out)), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Init initializes a new git repository at dir.
func Init(dir string) error {
	_, err := git(dir, nil, "init", "--quiet")
	return err
}

// IsRepo reports whether dir is the root of a git repository.
func IsRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

// HasChanges reports whether dir has uncommitted or untracked files.
func HasChanges(dir string) (bool, error) {
	out, err := git(dir, nil, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return out != "", nil
}

// CommitAll stages everything and commits it, returning the short hash.
func CommitAll(dir, message string, author Author) (string, error) {
	changed, err := HasChanges(dir)
	if err != nil {
		return "", err
	}
	if !changed {
		return "", ErrNothingToCommit
	}

	if _, err := git(dir, nil, "add", "-A"); err != nil {
		return "", err
	}
	if _, err := git(dir, author.env(), "commit", "--quiet", "-m", message); err != nil {
		return "", err
	}
	return git(dir, nil, "rev-parse", "--short", "HEAD")
}
