package screenlens

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpinnerFrames(t *testing.T) {
	require.Len(t, spinnerFrames, 10)

	seen := make(map[string]bool)
	for _, frame := range spinnerFrames {
		require.False(t, seen[frame], "duplicate frame %q", frame)
		seen[frame] = true

		// Every frame must be stripped by the message cleaner.
		require.True(t, spinnerStripPattern.MatchString(frame), "frame %q not stripped", frame)
	}
}

func TestStripLeadingBorder(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"│ npm install", "npm install"},
		{"├── src/main.go", "src/main.go"},
		{"└┘┌┐ corners", "corners"},
		{"═══ rule text", "rule text"},
		{"no border", "no border"},
		{"───────", ""},
		{"", ""},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, stripLeadingBorder(tc.in), "input %q", tc.in)
	}
}

func TestIsBorderRune(t *testing.T) {
	for _, r := range borderRunes {
		require.True(t, isBorderRune(r), "rune %q", r)
	}
	for _, r := range "abc ❯▶☐✓" {
		require.False(t, isBorderRune(r), "rune %q", r)
	}
}

func TestContainsAny(t *testing.T) {
	require.True(t, containsAny("⠋ loading", spinnerFrames))
	require.False(t, containsAny("plain text", spinnerFrames))
	require.True(t, containsAny("✔ done", checkMarks))
	require.True(t, containsAny("✖ failed", crossMarks))
	require.False(t, containsAny("", crossMarks))
}

func TestTableStatusSymbols(t *testing.T) {
	require.Equal(t, []string{"*", "M", "-", "✓", "✗"}, tableStatusSymbols)
}
