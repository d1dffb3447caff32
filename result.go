package screenlens

import (
	"bytes"
	"encoding/json"
	"io"
)

// Result is one classified screen. Exactly one variant is produced per
// input; an unrecognized screen yields *Unknown, never an error.
//
// Every variant carries a fixed "type" discriminant in its JSON form so
// consumers can dispatch before decoding archetype-specific fields.
type Result interface {
	// Kind returns the "type" discriminant string.
	Kind() string
}

// Archetype discriminant values.
const (
	KindSelectList  = "select_list"
	KindTextInput   = "text_input"
	KindConfirm     = "confirm"
	KindLoading     = "loading"
	KindSuccess     = "success"
	KindError       = "error"
	KindMultiSelect = "multi_select"
	KindTable       = "table"
	KindHelp        = "help"
	KindEmpty       = "empty"
	KindUnknown     = "unknown"
)

// SelectList is a single-select list with one row marked as selected.
//
// Items is capped at 10 entries; Total and Filtered carry the true counts
// (from the "N / M items" status line when present, otherwise the number
// of collected items).
type SelectList struct {
	Type     string   `json:"type"`
	Title    string   `json:"title"`
	Items    []string `json:"items"`
	Selected int      `json:"selected"`
	Total    int      `json:"total"`
	Filtered int      `json:"filtered"`
}

// TextInput is a live text-entry prompt. Error and Preview are null when
// no validation error or preview path was recognized.
type TextInput struct {
	Type    string  `json:"type"`
	Title   string  `json:"title"`
	Value   string  `json:"value"`
	Error   *string `json:"error"`
	Preview *string `json:"preview"`
}

// Confirm is a Trust / Once / Cancel dialog. Selected is the highlighted
// option, defaulting to "once". Commands holds up to 5 of the commands the
// dialog is asking about.
type Confirm struct {
	Type     string   `json:"type"`
	Title    string   `json:"title"`
	Selected string   `json:"selected"`
	Commands []string `json:"commands"`
}

// Loading is a spinner or progress message.
type Loading struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Success is a completion banner. Messages is capped at 5 lines.
type Success struct {
	Type     string   `json:"type"`
	Messages []string `json:"messages"`
}

// Error is a failure banner. Messages is capped at 5 lines.
type Error struct {
	Type     string   `json:"type"`
	Messages []string `json:"messages"`
}

// SelectItem is one row of a multi-select checklist.
type SelectItem struct {
	Label   string `json:"label"`
	Checked bool   `json:"checked"`
}

// MultiSelect is a checklist. Items is capped at 10 entries;
// SelectedCount counts all checked rows before capping.
type MultiSelect struct {
	Type          string       `json:"type"`
	Title         string       `json:"title"`
	Items         []SelectItem `json:"items"`
	SelectedCount int          `json:"selected_count"`
}

// TableRow is one parsed row of a tabular listing. Status is empty unless
// the first column held a recognized status symbol; Path is empty for
// two-column rows.
type TableRow struct {
	Status string `json:"status"`
	Branch string `json:"branch"`
	Path   string `json:"path"`
}

// Table is a tabular listing. Rows is capped at 10; Total is the true
// row count.
type Table struct {
	Type  string     `json:"type"`
	Title string     `json:"title"`
	Rows  []TableRow `json:"rows"`
	Total int        `json:"total"`
}

// Help is a help or welcome screen. Content holds the first 10 non-blank
// lines joined by newlines.
type Help struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// Empty is a screen with no visible content.
type Empty struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Unknown is the catch-all variant. Raw holds the first 200 characters of
// the input with newlines collapsed to spaces.
type Unknown struct {
	Type string `json:"type"`
	Raw  string `json:"raw"`
}

func (r *SelectList) Kind() string  { return r.Type }
func (r *TextInput) Kind() string   { return r.Type }
func (r *Confirm) Kind() string     { return r.Type }
func (r *Loading) Kind() string     { return r.Type }
func (r *Success) Kind() string     { return r.Type }
func (r *Error) Kind() string       { return r.Type }
func (r *MultiSelect) Kind() string { return r.Type }
func (r *Table) Kind() string       { return r.Type }
func (r *Help) Kind() string        { return r.Type }
func (r *Empty) Kind() string       { return r.Type }
func (r *Unknown) Kind() string     { return r.Type }

// EncodeResult writes r to w as UTF-8 JSON with two-space indentation and
// a trailing newline. Non-ASCII characters are emitted literally rather
// than escaped, so marker glyphs survive round trips readably.
func EncodeResult(w io.Writer, r Result) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// MarshalResult returns the EncodeResult serialization as a byte slice.
func MarshalResult(r Result) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeResult(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
