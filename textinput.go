package screenlens

import (
	"regexp"
	"strings"
)

var (
	// boxPathPattern extracts a path following a vertical border inside a
	// preview box.
	boxPathPattern = regexp.MustCompile(`[│|]\s*(/[^\s│|]+)`)

	// inlinePreviewPattern matches the unboxed "Preview: /path" form.
	inlinePreviewPattern = regexp.MustCompile(`Preview[:\s]+(/[^\s]+)`)
)

// detectTextInput recognizes a live text-entry prompt.
//
// A screen can contain several prompt glyphs: the shell line that launched
// the application renders one too. A shell echo is recognizable by the
// application name following the glyph ("❯ gwm add"); the application's
// own input line may mention its name before the glyph ("gwm add ❯ ...")
// but never after it. Of the surviving prompt lines the last one is
// authoritative: the live prompt is always the most recent one.
func detectTextInput(s *Screen, cfg config) (Result, bool) {
	appLower := strings.ToLower(cfg.appName)

	var prompts []string
	for _, line := range s.lines {
		idx := strings.Index(line, PromptMarker)
		if idx < 0 {
			continue
		}
		if strings.Contains(strings.ToLower(line[idx:]), appLower) {
			continue
		}
		prompts = append(prompts, line)
	}
	if len(prompts) == 0 {
		return nil, false
	}

	last := prompts[len(prompts)-1]
	idx := strings.Index(last, PromptMarker)
	after := last[idx+len(PromptMarker):]
	value := strings.TrimSpace(strings.ReplaceAll(after, CursorMarker, ""))

	return &TextInput{
		Type:    KindTextInput,
		Title:   extractTitle(s.lines, cfg.appName),
		Value:   value,
		Error:   findValidationError(s.lines),
		Preview: findPreviewPath(s),
	}, true
}

// findValidationError returns the first line carrying a validation error
// indicator: a cross mark or the word "invalid" in any case.
func findValidationError(lines []string) *string {
	for _, line := range lines {
		if strings.Contains(line, "✗") ||
			strings.Contains(strings.ToLower(line), "invalid") {
			errLine := strings.TrimSpace(line)
			return &errLine
		}
	}
	return nil
}

// findPreviewPath locates the preview path shown beside a text input.
//
// The boxed form is tried first: a border line whose heading contains
// "Preview" opens the box, the bottom border closes it, and the first
// path inside wins — either following a vertical border or as a bare
// path-like line. Failing that, an inline "Preview: /path" anywhere in
// the raw text is accepted.
func findPreviewPath(s *Screen) *string {
	inBox := false
	for _, line := range s.lines {
		if strings.Contains(line, "Preview") &&
			(strings.Contains(line, "┌") || strings.Contains(line, "─")) {
			inBox = true
			continue
		}
		if !inBox {
			continue
		}
		if strings.Contains(line, "└") || strings.Contains(line, "┘") {
			inBox = false
			continue
		}
		if m := boxPathPattern.FindStringSubmatch(line); m != nil {
			p := strings.TrimSpace(m[1])
			return &p
		}
		clean := strings.TrimSpace(strings.ReplaceAll(line, "│", ""))
		if strings.HasPrefix(clean, "/") {
			return &clean
		}
	}

	if m := inlinePreviewPattern.FindStringSubmatch(s.raw); m != nil {
		p := strings.TrimSpace(m[1])
		return &p
	}
	return nil
}
