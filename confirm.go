package screenlens

import "strings"

// Confirm option values.
const (
	ConfirmTrust  = "trust"
	ConfirmOnce   = "once"
	ConfirmCancel = "cancel"
)

// confirmOptionWords appear in the dialog's option row and rule lines;
// command candidates containing any of them are chrome, not commands.
var confirmOptionWords = []string{"Trust", "Once", "Cancel", "─", "═", "│"}

// detectConfirm recognizes the hook-execution confirmation dialog, which
// always renders all three option words.
func detectConfirm(s *Screen, cfg config) (Result, bool) {
	if !s.Contains("Trust") || !s.Contains("Once") || !s.Contains("Cancel") {
		return nil, false
	}

	return &Confirm{
		Type:     KindConfirm,
		Title:    extractTitle(s.lines, cfg.appName),
		Selected: confirmSelection(s.lines),
		Commands: capStrings(confirmCommands(s.lines), maxCommands),
	}, true
}

// confirmSelection finds the highlighted option: the first line rendering
// an option as bracketed or alongside the selection marker. Without one
// the dialog's default is "once".
func confirmSelection(lines []string) string {
	for _, line := range lines {
		switch {
		case strings.Contains(line, "[Trust]") ||
			(strings.Contains(line, "Trust") && strings.Contains(line, SelectionMarker)):
			return ConfirmTrust
		case strings.Contains(line, "[Cancel]") ||
			(strings.Contains(line, "Cancel") && strings.Contains(line, SelectionMarker)):
			return ConfirmCancel
		case strings.Contains(line, "[Once]") ||
			(strings.Contains(line, "Once") && strings.Contains(line, SelectionMarker)):
			return ConfirmOnce
		}
	}
	return ConfirmOnce
}

// confirmCommands collects the commands the dialog is asking about: every
// non-empty line after the "commands" heading (or the box border), with
// leading border glyphs stripped and option/border chrome excluded.
func confirmCommands(lines []string) []string {
	var commands []string
	inCommands := false
	for _, line := range lines {
		if !inCommands {
			if strings.Contains(strings.ToLower(line), "commands") || strings.Contains(line, "│") {
				inCommands = true
			}
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		cmd := stripLeadingBorder(strings.TrimSpace(line))
		if cmd != "" && !containsAny(cmd, confirmOptionWords) {
			commands = append(commands, cmd)
		}
	}
	return commands
}
