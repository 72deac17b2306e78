package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mgrdich/chesscore/internal/engine"
)

// BoardRenderer renders a chess board to the terminal according to a
// Config and Theme.
type BoardRenderer struct {
	config Config
	theme  Theme
}

// NewBoardRenderer creates a BoardRenderer with the given configuration and
// theme.
func NewBoardRenderer(config Config, theme Theme) *BoardRenderer {
	return &BoardRenderer{config: config, theme: theme}
}

// Render renders b from White's perspective (rank 8 at top, rank 1 at
// bottom).
func (r *BoardRenderer) Render(b *engine.Board) string {
	if b == nil {
		return "No board loaded"
	}

	var out strings.Builder

	for rank := 7; rank >= 0; rank-- {
		if r.config.ShowCoords {
			out.WriteString(fmt.Sprintf("%d ", rank+1))
		}
		for file := 0; file < 8; file++ {
			if file > 0 {
				out.WriteString(" ")
			}
			sq := engine.NewSquare(file, rank)
			out.WriteString(r.pieceSymbol(b.PieceAt(sq)))
		}
		out.WriteString("\n")
	}

	if r.config.ShowCoords {
		out.WriteString("  a b c d e f g h")
	}

	return out.String()
}

func (r *BoardRenderer) pieceSymbol(p engine.Piece) string {
	if p.IsEmpty() {
		return "."
	}

	var symbol string
	if r.config.UseUnicode {
		symbol = r.unicodeSymbol(p)
	} else {
		symbol = r.asciiSymbol(p)
	}

	if !r.config.UseColors {
		return symbol
	}

	style := lipgloss.NewStyle().Foreground(r.theme.BlackPiece)
	if p.Color() == engine.White {
		style = lipgloss.NewStyle().Foreground(r.theme.WhitePiece).Bold(true)
	}
	return style.Render(symbol)
}

func (r *BoardRenderer) asciiSymbol(p engine.Piece) string {
	var ch byte
	switch p.Type() {
	case engine.Pawn:
		ch = 'P'
	case engine.Knight:
		ch = 'N'
	case engine.Bishop:
		ch = 'B'
	case engine.Rook:
		ch = 'R'
	case engine.Queen:
		ch = 'Q'
	case engine.King:
		ch = 'K'
	default:
		return "."
	}
	if p.Color() == engine.Black {
		ch = ch - 'A' + 'a'
	}
	return string(ch)
}

var unicodeSymbols = map[engine.PieceType][2]string{
	engine.Pawn:   {"♙", "♟"},
	engine.Knight: {"♘", "♞"},
	engine.Bishop: {"♗", "♝"},
	engine.Rook:   {"♖", "♜"},
	engine.Queen:  {"♕", "♛"},
	engine.King:   {"♔", "♚"},
}

func (r *BoardRenderer) unicodeSymbol(p engine.Piece) string {
	pair, ok := unicodeSymbols[p.Type()]
	if !ok {
		return "."
	}
	if p.Color() == engine.White {
		return pair[0]
	}
	return pair[1]
}
