package screenlens

import (
	"regexp"
	"strings"
)

// navigationHints mark list footer text ("↑/↓ navigate • / search ..."),
// which must not be collected as items.
var navigationHints = []string{"navigate", "select", "search", "•", "Ctrl"}

// detectSelectList recognizes a single-select list: one row carries the
// selection marker, and subsequent indented rows are the remaining
// candidates. Navigation-help and scroll-hint lines are excluded.
func detectSelectList(s *Screen, cfg config) (Result, bool) {
	var items []string
	selected := 0
	markerSeen := false
	inList := false

	for _, line := range s.lines {
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, SelectionMarker+" ") {
			inList = true
			if !markerSeen {
				selected = len(items)
				markerSeen = true
			}
			if item := strings.TrimSpace(stripped[len(SelectionMarker+" "):]); item != "" {
				items = append(items, item)
			}
			continue
		}
		if inList && strings.HasPrefix(line, "  ") &&
			!strings.HasPrefix(line, "  ↑") && !strings.HasPrefix(line, "  ↓") {
			if stripped != "" && !containsAny(stripped, navigationHints) {
				items = append(items, stripped)
			}
		}
	}

	if len(items) == 0 {
		return nil, false
	}

	// "N / M items" reports the true filtered/total counts; the collected
	// items are only what is visible on screen.
	total, filtered := len(items), len(items)
	if m := statsPattern.FindStringSubmatch(s.raw); m != nil {
		filtered = atoiSafe(m[1], filtered)
		total = atoiSafe(m[2], total)
	}

	return &SelectList{
		Type:     KindSelectList,
		Title:    extractTitle(s.lines, cfg.appName),
		Items:    capStrings(items, maxListItems),
		Selected: selected,
		Total:    total,
		Filtered: filtered,
	}, true
}

// asciiCheckboxTrigger matches the ASCII checkbox surface form. Parsing
// additionally accepts "[X]", but the trigger matches what the UI renders.
var (
	asciiCheckboxTrigger = regexp.MustCompile(`\[[x ]\]`)
	uncheckedBoxPattern  = regexp.MustCompile(`\[ \]\s*`)
	checkedBoxPattern    = regexp.MustCompile(`\[[xX]\]\s*`)
)

// detectMultiSelect recognizes a multi-select checklist in any of four
// surface forms: Unicode unchecked/checked boxes or ASCII brackets.
// Glyph presence alone is not enough — at least one row must carry label
// text, which guards against spurious checkbox matches.
func detectMultiSelect(s *Screen, cfg config) (Result, bool) {
	if !s.Contains(CheckboxUnchecked) && !s.Contains(CheckboxChecked) &&
		!asciiCheckboxTrigger.MatchString(s.raw) {
		return nil, false
	}

	var items []SelectItem
	for _, line := range s.lines {
		var label string
		var checked bool
		switch {
		case strings.Contains(line, CheckboxUnchecked):
			label = strings.TrimSpace(strings.ReplaceAll(line, CheckboxUnchecked, ""))
		case strings.Contains(line, CheckboxChecked):
			label = strings.TrimSpace(strings.ReplaceAll(line, CheckboxChecked, ""))
			checked = true
		case strings.Contains(line, "[ ]"):
			label = strings.TrimSpace(uncheckedBoxPattern.ReplaceAllString(line, ""))
		case checkedBoxPattern.MatchString(line):
			label = strings.TrimSpace(checkedBoxPattern.ReplaceAllString(line, ""))
			checked = true
		default:
			continue
		}
		if label != "" {
			items = append(items, SelectItem{Label: label, Checked: checked})
		}
	}

	if len(items) == 0 {
		return nil, false
	}

	checkedCount := 0
	for _, it := range items {
		if it.Checked {
			checkedCount++
		}
	}

	return &MultiSelect{
		Type:          KindMultiSelect,
		Title:         extractTitle(s.lines, cfg.appName),
		Items:         capItems(items, maxListItems),
		SelectedCount: checkedCount,
	}, true
}
