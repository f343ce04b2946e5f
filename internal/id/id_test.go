package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatVersionID(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "v0001"},
		{42, "v0042"},
		{12345, "v12345"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatVersionID(tt.n))
	}
	assert.Equal(t, "v0007.json", VersionFileName(7))
}

func TestParseVersionID(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"3", 3},
		{"v3", 3},
		{"V0003", 3},
		{"v0003.json", 3},
		{" 12 ", 12},
	}
	for _, tt := range tests {
		got, err := ParseVersionID(tt.input)
		require.NoError(t, err, "input: %s", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseVersionID_Invalid(t *testing.T) {
	for _, input := range []string{"", "v", "abc", "0", "-1", "v1.5"} {
		_, err := ParseVersionID(input)
		assert.Error(t, err, "input: %q", input)
	}
}

func TestIsVersionFile(t *testing.T) {
	assert.True(t, IsVersionFile("v0001.json"))
	assert.False(t, IsVersionFile("v0001.yaml"))
	assert.False(t, IsVersionFile("notes.json"))
	assert.False(t, IsVersionFile("0001.json"))
}
