package screenlens

import (
	"strings"
	"unicode/utf8"
)

// EmptyMessage is the fixed message of the empty-screen result.
const EmptyMessage = "Screen is empty"

// helpKeywords mark a help or welcome screen when they appear together
// with the application name.
var helpKeywords = []string{"help", "usage", "commands"}

// detectHelp recognizes a help or welcome screen: the application name
// together with a help keyword, all case-insensitive.
func detectHelp(s *Screen, cfg config) (Result, bool) {
	lower := strings.ToLower(s.raw)
	if !strings.Contains(lower, strings.ToLower(cfg.appName)) ||
		!containsAny(lower, helpKeywords) {
		return nil, false
	}

	content := s.nonBlank
	if len(content) > maxHelpLines {
		content = content[:maxHelpLines]
	}
	return &Help{Type: KindHelp, Content: strings.Join(content, "\n")}, true
}

// detectEmpty matches a screen with no visible content.
func detectEmpty(s *Screen, _ config) (Result, bool) {
	if !s.IsBlank() {
		return nil, false
	}
	return &Empty{Type: KindEmpty, Message: EmptyMessage}, true
}

// detectUnknown always matches. It preserves a bounded preview of the
// input so the caller can log what it could not classify.
func detectUnknown(s *Screen, _ config) (Result, bool) {
	raw := s.raw
	if utf8.RuneCountInString(raw) > maxUnknownRunes {
		raw = string([]rune(raw)[:maxUnknownRunes])
	}
	return &Unknown{Type: KindUnknown, Raw: strings.ReplaceAll(raw, "\n", " ")}, true
}
