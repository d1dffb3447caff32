package screenlens

import "strings"

// Marker glyphs the target UI uses to convey state. Everything that counts
// as a structural marker is enumerated here rather than scattered across
// detectors, so the policy can be audited and tested in isolation.
const (
	// SelectionMarker prefixes the currently selected row of a list.
	SelectionMarker = "▶"

	// PromptMarker prefixes a live text-input line.
	PromptMarker = "❯"

	// CursorMarker is the block cursor rendered inside a text input.
	CursorMarker = "█"

	// CheckboxUnchecked and CheckboxChecked are the Unicode checkbox forms.
	// ASCII forms "[ ]" and "[x]" are recognized alongside them.
	CheckboxUnchecked = "☐"
	CheckboxChecked   = "☑"
)

// spinnerFrames are the braille animation frames of the loading spinner.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// checkMarks and crossMarks are the glyph variants used by success and
// error banners.
var (
	checkMarks = []string{"✓", "✔"}
	crossMarks = []string{"✗", "✖"}
)

// borderRunes are box-drawing characters that frame content regions
// (preview panes, command lists). Stripped from command lines and rejected
// as title prefixes.
const borderRunes = "│├└┌┐┘┴┬┤─═"

// titleStopPrefixes disqualify a line from being a title: prompt and
// selection markers, indentation, borders, checkboxes, list chrome.
var titleStopPrefixes = []string{
	PromptMarker, SelectionMarker, "  ", "│", "─", "═",
	CheckboxUnchecked, CheckboxChecked, "[", "*", "./",
}

// shellChrome are fragments of shell prompt decoration (powerline blocks,
// prompt suffixes). A line containing any of them is shell output, not
// application content.
var shellChrome = []string{"░", "▒", "▓", "»", "$✘", "%"}

// tableStatusSymbols are the only first-column tokens the table detector
// accepts as a status value.
var tableStatusSymbols = []string{"*", "M", "-", "✓", "✗"}

// containsAny reports whether s contains any of the given substrings.
func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// isBorderRune reports whether r is a box-drawing border character.
func isBorderRune(r rune) bool {
	return strings.ContainsRune(borderRunes, r)
}

// stripLeadingBorder removes leading box-drawing characters and the
// whitespace that follows them.
func stripLeadingBorder(s string) string {
	trimmed := strings.TrimLeftFunc(s, isBorderRune)
	return strings.TrimSpace(trimmed)
}
