package screenlens

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractTitle(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "first qualifying line wins",
			lines: []string{"Create new worktree", "Another heading"},
			want:  "Create new worktree",
		},
		{
			name:  "skips blank lines",
			lines: []string{"", "   ", "Remove worktrees"},
			want:  "Remove worktrees",
		},
		{
			name:  "skips prompt and selection markers",
			lines: []string{"❯ type here", "▶ selected row", "Pick a branch"},
			want:  "Pick a branch",
		},
		{
			name:  "skips borders and rules",
			lines: []string{"│ boxed │", "────────", "═══════", "Confirm removal"},
			want:  "Confirm removal",
		},
		{
			name:  "skips checkboxes brackets asterisks and relative paths",
			lines: []string{"☐ item", "☑ item", "[Trust]", "* main", "./relative", "Clean up"},
			want:  "Clean up",
		},
		{
			name:  "skips application echo lines case-insensitively",
			lines: []string{"$ GWM list", "Worktree overview"},
			want:  "Worktree overview",
		},
		{
			name:  "skips stats lines",
			lines: []string{"2 / 5 items", "Filtered branches"},
			want:  "Filtered branches",
		},
		{
			name:  "skips shell chrome",
			lines: []string{"me@host ░▒▓", "zsh » ready", "load 100% done", "Actual heading"},
			want:  "Actual heading",
		},
		{
			name:  "skips lines of three or fewer characters",
			lines: []string{"abc", "abcd"},
			want:  "abcd",
		},
		{
			name:  "length check counts runes not bytes",
			lines: []string{"日本語", "日本語版"},
			want:  "日本語版",
		},
		{
			name: "only the first ten lines are scanned",
			lines: []string{
				"", "", "", "", "", "", "", "", "", "",
				"Too far down",
			},
			want: "",
		},
		{
			name:  "no qualifying line",
			lines: []string{"❯ x", "ab"},
			want:  "",
		},
		{
			name:  "empty input",
			lines: nil,
			want:  "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, extractTitle(tc.lines, DefaultAppName))
		})
	}
}

func TestExtractTitleCustomAppName(t *testing.T) {
	lines := []string{"mytool status output", "Real heading"}
	require.Equal(t, "Real heading", extractTitle(lines, "mytool"))

	// Under a different app name the first line qualifies.
	require.Equal(t, "mytool status output", extractTitle(lines, "gwm"))
}
