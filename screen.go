package screenlens

import (
	"strings"
)

// Screen is an immutable parse of one raw screen capture.
//
// Two views of the content are used by detectors: the full line sequence
// (blank lines preserved, needed for positional heuristics) and the
// non-blank subsequence (used for emptiness checks and fallback previews).
type Screen struct {
	raw      string
	lines    []string
	nonBlank []string
}

// NewScreen parses a raw capture into a Screen.
// Line endings are normalized and trailing whitespace is trimmed per line.
func NewScreen(raw string) *Screen {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")

	lines := strings.Split(raw, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t\r")
	}

	var nonBlank []string
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			nonBlank = append(nonBlank, l)
		}
	}

	return &Screen{
		raw:      raw,
		lines:    lines,
		nonBlank: nonBlank,
	}
}

// String returns the normalized raw content.
func (s *Screen) String() string {
	return s.raw
}

// Lines returns a copy of the screen content, one string per row.
// Trailing whitespace has been trimmed from each row.
func (s *Screen) Lines() []string {
	cp := make([]string, len(s.lines))
	copy(cp, s.lines)
	return cp
}

// Line returns the content of a single row (0-indexed).
// Panics if n is out of range.
func (s *Screen) Line(n int) string {
	return s.lines[n]
}

// NonBlank returns a copy of the lines that contain visible content,
// in screen order.
func (s *Screen) NonBlank() []string {
	cp := make([]string, len(s.nonBlank))
	copy(cp, s.nonBlank)
	return cp
}

// Contains reports whether the screen contains the substring.
func (s *Screen) Contains(substr string) bool {
	return strings.Contains(s.raw, substr)
}

// containsFold reports whether the screen contains the substring,
// ignoring case.
func (s *Screen) containsFold(substr string) bool {
	return strings.Contains(strings.ToLower(s.raw), strings.ToLower(substr))
}

// IsBlank reports whether the screen has no visible content.
func (s *Screen) IsBlank() bool {
	return len(s.nonBlank) == 0
}
