// Package screenlens converts raw rendered terminal screens into typed,
// structured records describing what kind of screen is showing.
//
// screenlens is the reasoning half of a TUI automation harness: a driver
// captures the visible pane of a terminal application, hands the text blob
// to [Classify], and receives a tagged [Result] it can branch on without
// re-implementing the application's rendering logic.
//
// # Quick Start
//
//	result := screenlens.Classify(screenText)
//	switch r := result.(type) {
//	case *screenlens.SelectList:
//		fmt.Println("cursor on", r.Items[r.Selected])
//	case *screenlens.Loading:
//		fmt.Println("still loading:", r.Message)
//	}
//
// # Classification
//
// [Classify] runs a fixed, ordered chain of detectors, each recognizing one
// screen archetype. The first detector whose preconditions match wins and
// later detectors never run. The order is part of the contract: a confirm
// dialog that also contains a check mark classifies as confirm, not success.
//
// The chain, in order:
//
//  1. select list (▶ selection marker plus collected items)
//  2. text input (❯ prompt glyph, shell echo lines excluded)
//  3. confirm dialog (Trust / Once / Cancel)
//  4. loading (spinner frames, or an ellipsis on a near-empty screen)
//  5. success (check marks)
//  6. error (cross marks or "error:")
//  7. multi-select checklist (☐ ☑ [ ] [x])
//  8. table (column headers or horizontal rules)
//  9. help screen
//  10. empty screen
//  11. unknown (always matches)
//
// Classification is total: every input string, including the empty string,
// maps to exactly one result. There is no error path.
//
// # Results
//
// Each [Result] variant carries a fixed "type" discriminant and
// archetype-specific fields. List-valued fields are truncated to documented
// caps (10 items, 5 messages); accompanying count fields always reflect the
// true uncapped counts. [EncodeResult] serializes a result as indented
// UTF-8 JSON with non-ASCII characters emitted literally.
//
// # Host Application
//
// Several heuristics need to tell the target application's own output apart
// from shell chrome that echoes the command being tested. The application
// name defaults to "gwm" and can be changed with [WithAppName].
//
// # Scope
//
// screenlens works on plain text. It does not emulate a terminal, interpret
// ANSI escape sequences, track screen history, or model row/column geometry.
package screenlens
