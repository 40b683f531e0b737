package core_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-maze/internal/games/maze/core"
)

func TestTextRoundTrip(t *testing.T) {
	m, err := core.Generate(params(25), rand.New(rand.NewSource(77)))
	require.NoError(t, err)

	text := core.FormatText(m)
	back, err := core.ParseText(text)
	require.NoError(t, err)

	assert.Equal(t, text, core.FormatText(back))
	assert.Equal(t, m.Start(), back.Start())
	assert.Equal(t, m.Goal(), back.Goal())
	assert.Equal(t, m.SpaceCount(), back.SpaceCount())
}

func TestParseTextGlyphs(t *testing.T) {
	src := "=====\n=s g=\n=.=.=\n=...=\n=====\n"
	m, err := core.ParseText(src)
	require.NoError(t, err)

	assert.Equal(t, core.P(1, 1), m.Start())
	assert.Equal(t, core.P(3, 1), m.Goal())
	assert.True(t, m.IsSpace(core.P(2, 1)), "blank is open floor")
	assert.False(t, m.IsSpace(core.P(2, 2)))
	assert.Equal(t, "=====\n=s.g=\n=.=.=\n=...=\n=====\n", core.FormatText(m))

	// CRLF input parses the same
	crlf, err := core.ParseText(strings.ReplaceAll(src, "\n", "\r\n"))
	require.NoError(t, err)
	assert.Equal(t, core.FormatText(m), core.FormatText(crlf))
}

func TestParseTextErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"too few rows", "===\n=s=\n"},
		{"not square", "=====\n=s..=\n=====\n"},
		{"open ring", "=====\n=s...\n=...=\n=...=\n=====\n"},
		{"unknown glyph", "=====\n=s#.=\n=...=\n=...=\n=====\n"},
		{"no start", "=====\n=..g=\n=...=\n=...=\n=====\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := core.ParseText(tt.src)
			assert.ErrorIs(t, err, core.ErrMalformedMaze)
		})
	}
}

func TestFormatLight(t *testing.T) {
	m := parse(t, openRoom)
	core.Illuminate(m, m.Start(), core.South, 20)

	out := core.FormatLight(m, 3, 8)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, m.Size())

	row := []rune(lines[2])
	assert.Equal(t, '█', row[5], "origin at full power")
	assert.Equal(t, ' ', []rune(lines[1])[5], "nothing behind the player")
}
