package id

import (
	"fmt"
	"strconv"
	"strings"
)

const fileExt = ".json"

// FormatVersionID returns a version label like "v0001".
func FormatVersionID(n int) string {
	return fmt.Sprintf("v%04d", n)
}

// VersionFileName returns the snapshot file name for a version, like
// "v0001.json".
func VersionFileName(n int) string {
	return FormatVersionID(n) + fileExt
}

// ParseVersionID accepts "3", "v3", "v0003" or "v0003.json" and returns 3.
func ParseVersionID(s string) (int, error) {
	base := strings.TrimSuffix(strings.TrimSpace(s), fileExt)
	base = strings.TrimPrefix(strings.ToLower(base), "v")
	n, err := strconv.Atoi(base)
	if err != nil {
		return 0, fmt.Errorf("invalid version ID %q: %w", s, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("invalid version ID %q: must be at least 1", s)
	}
	return n, nil
}

// IsVersionFile reports whether name looks like a snapshot file.
func IsVersionFile(name string) bool {
	if !strings.HasPrefix(name, "v") || !strings.HasSuffix(name, fileExt) {
		return false
	}
	_, err := ParseVersionID(name)
	return err == nil
}
