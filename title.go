package screenlens

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// statsPattern matches the "N / M items" status fragment rendered under
// filterable lists.
var statsPattern = regexp.MustCompile(`(\d+)\s*/\s*(\d+)\s*items`)

// titleScanLines bounds how far down the screen a title is looked for.
const titleScanLines = 10

// extractTitle pulls a human-readable heading out of the screen.
//
// It scans the first 10 lines top to bottom and returns the first one
// that reads like a heading: non-blank, longer than 3 characters, not
// prefixed by structural chrome (prompt or selection markers, borders,
// checkboxes, indentation), not a shell line echoing the application
// name, not the "N / M items" stats line, and free of shell prompt
// decoration. Returns "" when nothing qualifies; an empty title means
// "no title recognized", not a failure.
func extractTitle(lines []string, appName string) string {
	limit := len(lines)
	if limit > titleScanLines {
		limit = titleScanLines
	}

	for _, line := range lines[:limit] {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		if hasAnyPrefix(stripped, titleStopPrefixes) {
			continue
		}
		if strings.Contains(strings.ToLower(stripped), strings.ToLower(appName)) {
			continue
		}
		if statsPattern.MatchString(stripped) {
			continue
		}
		if containsAny(stripped, shellChrome) {
			continue
		}
		if utf8.RuneCountInString(stripped) > 3 {
			return stripped
		}
	}
	return ""
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
