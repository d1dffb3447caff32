package screenlens

import "strconv"

// A detector attempts to recognize one screen archetype. It returns the
// extracted result and true on a match, or nil and false to pass the
// screen to the next detector in the chain.
type detector func(s *Screen, cfg config) (Result, bool)

// Output caps. Truncation bounds result size for machine consumers; the
// accompanying count fields always carry the true uncapped counts.
const (
	maxListItems    = 10
	maxTableRows    = 10
	maxMessages     = 5
	maxCommands     = 5
	maxHelpLines    = 10
	maxUnknownRunes = 200
)

// detectors is the classification chain, evaluated strictly in order with
// first match winning. The order is part of the contract: the structural
// detectors (select list, text input, confirm) run before the generic
// glyph-triggered ones, so a confirm dialog containing a check mark still
// classifies as confirm. Reordering changes outcomes for ambiguous screens.
var detectors = []detector{
	detectSelectList,
	detectTextInput,
	detectConfirm,
	detectLoading,
	detectSuccess,
	detectError,
	detectMultiSelect,
	detectTable,
	detectHelp,
	detectEmpty,
	detectUnknown,
}

// Classify converts one raw rendered screen into a Result.
//
// It is a pure function of its input: no side effects, no retained state,
// deterministic. It is total — every input, including the empty string,
// produces exactly one result, and no error path exists. Unrecognized
// screens yield *Unknown.
func Classify(raw string, opts ...Option) Result {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	s := NewScreen(raw)
	for _, d := range detectors {
		if r, ok := d(s, cfg); ok {
			return r
		}
	}

	// Unreachable: detectUnknown always matches.
	return &Unknown{Type: KindUnknown}
}

// The cap helpers truncate to n and never return nil, so capped fields
// marshal as [] rather than null.

func capStrings(s []string, n int) []string {
	if s == nil {
		s = []string{}
	}
	if len(s) > n {
		s = s[:n]
	}
	return s
}

func capItems(s []SelectItem, n int) []SelectItem {
	if s == nil {
		s = []SelectItem{}
	}
	if len(s) > n {
		s = s[:n]
	}
	return s
}

func capRows(s []TableRow, n int) []TableRow {
	if s == nil {
		s = []TableRow{}
	}
	if len(s) > n {
		s = s[:n]
	}
	return s
}

// atoiSafe parses a decimal string, falling back when it does not parse.
// Inputs come from regexp digit captures; only overflow-sized captures
// can fail.
func atoiSafe(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
