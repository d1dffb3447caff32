package screenlens

import (
	"slices"
	"strings"
)

// TableTitle is the fixed title of tabular listing results.
const TableTitle = "Worktrees"

// tableHeaderKeywords are the column names of the listing (case matters:
// the UI renders headers in upper case, and lower-case occurrences are
// ordinary text).
var tableHeaderKeywords = []string{"STATUS", "BRANCH", "PATH"}

// detectTable recognizes the tabular worktree listing: column headers or
// a horizontal rule, followed by data rows.
//
// Rows are split on whitespace, so branch or path names containing spaces
// will mis-tokenize. The rendering never produces them today; the
// limitation is accepted rather than guessing column boundaries.
func detectTable(s *Screen, _ config) (Result, bool) {
	if !containsAny(s.raw, tableHeaderKeywords) &&
		!s.Contains("══") && !s.Contains("──") {
		return nil, false
	}

	var rows []TableRow
	inData := false
	for _, line := range s.lines {
		if strings.Contains(line, "══") || strings.Contains(line, "──") {
			inData = true
			continue
		}
		if !inData || strings.TrimSpace(line) == "" {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		row := TableRow{Branch: parts[1]}
		if slices.Contains(tableStatusSymbols, parts[0]) {
			row.Status = parts[0]
		}
		if len(parts) > 2 {
			row.Path = parts[len(parts)-1]
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, false
	}

	return &Table{
		Type:  KindTable,
		Title: TableTitle,
		Rows:  capRows(rows, maxTableRows),
		Total: len(rows),
	}, true
}
