package ui

import (
	"strings"
	"testing"

	"github.com/mgrdich/chesscore/internal/engine"
	"github.com/stretchr/testify/require"
)

func TestBoardRendererRendersStartingPosition(t *testing.T) {
	r := NewBoardRenderer(Config{ShowCoords: true, UseColors: false}, ClassicTheme)
	out := r.Render(engine.DefaultBoard())

	require.Contains(t, out, "r n b q k b n r")
	require.Contains(t, out, "P P P P P P P P")
	require.Contains(t, out, "a b c d e f g h")
	require.Equal(t, 8, strings.Count(out, "\n"))
}

func TestBoardRendererNilBoard(t *testing.T) {
	r := NewBoardRenderer(DefaultConfig(), ClassicTheme)
	require.Equal(t, "No board loaded", r.Render(nil))
}

func TestBoardRendererUnicodeSymbols(t *testing.T) {
	r := NewBoardRenderer(Config{UseUnicode: true, UseColors: false}, ClassicTheme)
	out := r.Render(engine.DefaultBoard())
	require.Contains(t, out, "♜")
	require.Contains(t, out, "♙")
}
