package screenlens_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pgold/screenlens"
)

func TestNewScreenNormalizesLineEndings(t *testing.T) {
	s := screenlens.NewScreen("first\r\nsecond\r\nthird")
	require.Equal(t, []string{"first", "second", "third"}, s.Lines())
	require.Equal(t, "first\nsecond\nthird", s.String())
}

func TestNewScreenTrimsTrailingWhitespace(t *testing.T) {
	s := screenlens.NewScreen("padded   \ntabbed\t\n")
	require.Equal(t, []string{"padded", "tabbed", ""}, s.Lines())
}

func TestScreenNonBlank(t *testing.T) {
	s := screenlens.NewScreen("  indented\n\n   \nplain")
	// Indentation is preserved; blank and whitespace-only lines are dropped.
	require.Equal(t, []string{"  indented", "plain"}, s.NonBlank())
}

func TestScreenLinesReturnsCopy(t *testing.T) {
	s := screenlens.NewScreen("a\nb")
	lines := s.Lines()
	lines[0] = "mutated"
	require.Equal(t, []string{"a", "b"}, s.Lines())

	nb := s.NonBlank()
	nb[0] = "mutated"
	require.Equal(t, []string{"a", "b"}, s.NonBlank())
}

func TestScreenLine(t *testing.T) {
	s := screenlens.NewScreen("top\nbottom")
	require.Equal(t, "top", s.Line(0))
	require.Equal(t, "bottom", s.Line(1))
}

func TestScreenContains(t *testing.T) {
	s := screenlens.NewScreen("⠋ Loading...")
	require.True(t, s.Contains("⠋"))
	require.False(t, s.Contains("✓"))
}

func TestScreenIsBlank(t *testing.T) {
	require.True(t, screenlens.NewScreen("").IsBlank())
	require.True(t, screenlens.NewScreen(" \n\t\n").IsBlank())
	require.False(t, screenlens.NewScreen("x").IsBlank())
}
