package screenlens

import (
	"regexp"
	"strings"
)

var spinnerStripPattern = regexp.MustCompile(`[⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏]\s*`)

// detectLoading recognizes an in-progress screen: any spinner frame, or
// an ellipsis on a screen of at most 3 non-blank lines. The low line
// count is what tells an ellipsis loading message apart from, say, help
// text that happens to trail off.
func detectLoading(s *Screen, _ config) (Result, bool) {
	hasSpinner := containsAny(s.raw, spinnerFrames)
	if !hasSpinner && !(s.Contains("...") && len(s.nonBlank) <= 3) {
		return nil, false
	}

	message := ""
	for _, line := range s.lines {
		if containsAny(line, spinnerFrames) {
			message = strings.TrimSpace(spinnerStripPattern.ReplaceAllString(line, ""))
			break
		}
		if strings.Contains(line, "...") {
			message = strings.TrimSpace(line)
			break
		}
	}

	return &Loading{Type: KindLoading, Message: message}, true
}

// detectSuccess recognizes a completion banner by its check marks and
// collects the lines that describe the outcome.
func detectSuccess(s *Screen, _ config) (Result, bool) {
	if !containsAny(s.raw, checkMarks) {
		return nil, false
	}

	var messages []string
	for _, line := range s.lines {
		lower := strings.ToLower(line)
		if containsAny(line, checkMarks) || strings.Contains(line, "Path:") ||
			strings.Contains(lower, "created") || strings.Contains(lower, "success") {
			messages = append(messages, strings.TrimSpace(line))
		}
	}

	return &Success{Type: KindSuccess, Messages: capStrings(messages, maxMessages)}, true
}

// detectError recognizes a failure banner by its cross marks or an
// "error:" prefix anywhere on screen.
func detectError(s *Screen, _ config) (Result, bool) {
	if !containsAny(s.raw, crossMarks) && !s.containsFold("error:") {
		return nil, false
	}

	var messages []string
	for _, line := range s.lines {
		if containsAny(line, crossMarks) || strings.Contains(strings.ToLower(line), "error") {
			messages = append(messages, strings.TrimSpace(line))
		}
	}

	return &Error{Type: KindError, Messages: capStrings(messages, maxMessages)}, true
}
