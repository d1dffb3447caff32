package screenlens

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// MatchGolden compares the encoded form of a classification result
// against a golden file stored in testdata/<sanitized-test-name>/<name>.json.
//
// Set SCREENLENS_UPDATE=1 to create or update golden files.
func MatchGolden(t testing.TB, name string, r Result) {
	t.Helper()

	dir := goldenDir(t)
	path := filepath.Join(dir, sanitizeName(name)+".json")

	encoded, err := MarshalResult(r)
	if err != nil {
		t.Fatalf("screenlens: golden: failed to encode result: %v", err)
	}

	if shouldUpdate() {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("screenlens: golden: failed to create directory: %v", err)
		}
		if err := os.WriteFile(path, encoded, 0o644); err != nil {
			t.Fatalf("screenlens: golden: failed to write golden file: %v", err)
		}
		return
	}

	golden, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("screenlens: golden: file not found: %s\nRun with SCREENLENS_UPDATE=1 to create it.\n\nActual result:\n%s", path, encoded)
		}
		t.Fatalf("screenlens: golden: failed to read golden file: %v", err)
	}

	if string(golden) != string(encoded) {
		t.Fatalf("screenlens: golden: mismatch for %q\nGolden file: %s\nRun with SCREENLENS_UPDATE=1 to update.\n\n--- golden ---\n%s--- actual ---\n%s",
			name, path, golden, encoded)
	}
}

// goldenDir returns the golden-file directory for the current test.
// A short hash of the full test name keeps subtest directories unique
// after sanitization.
func goldenDir(t testing.TB) string {
	t.Helper()

	fullName := t.Name()
	h := sha256.Sum256([]byte(fullName))
	hash := hex.EncodeToString(h[:4])

	return filepath.Join("testdata", sanitizeName(fullName)+"-"+hash)
}

// sanitizeName makes a test or golden name safe as a file name.
func sanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '-'
		}
	}, name)
}

// shouldUpdate reports whether SCREENLENS_UPDATE is set to a truthy value.
func shouldUpdate() bool {
	v := os.Getenv("SCREENLENS_UPDATE")
	return v == "1" || v == "true" || v == "yes"
}
