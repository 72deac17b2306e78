package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mgrdich/chesscore/internal/engine"
	"github.com/mgrdich/chesscore/internal/util"
)

// runCommand parses and executes a single line of front-end input against
// m's board, returning the updated model and whether the program should
// quit. statusMsg/errorMsg are always reset before the command runs.
func (m Model) runCommand(line string) (Model, bool) {
	m.statusMsg = ""
	m.errorMsg = ""

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return m, false
	}

	cmd, rest := fields[0], fields[1:]

	switch cmd {
	case "q", "quit", "exit":
		return m, true

	case "m":
		return m.cmdMove(rest), false

	case "moves":
		return m.cmdMoves(), false

	case "r":
		return m.cmdRandom(), false

	case "position":
		return m.cmdPosition(rest), false

	case "i":
		return m.cmdIndex(rest), false

	case "um":
		if !m.debug {
			m.errorMsg = "unknown command: " + cmd
			return m, false
		}
		return m.cmdUncheckedMove(rest), false

	case "hash":
		if !m.debug {
			m.errorMsg = "unknown command: " + cmd
			return m, false
		}
		return m.cmdHash(), false

	case "hashes":
		if !m.debug {
			m.errorMsg = "unknown command: " + cmd
			return m, false
		}
		return m.cmdHashes(), false

	default:
		m.errorMsg = "unknown command: " + cmd
		return m, false
	}
}

func (m Model) cmdMove(args []string) Model {
	if len(args) != 1 {
		m.errorMsg = "usage: m <move>"
		return m
	}
	move, err := m.board.ParseMove(args[0])
	if err != nil {
		m.errorMsg = err.Error()
		return m
	}
	if err := m.board.MakeMove(move); err != nil {
		m.errorMsg = err.Error()
		return m
	}
	m.statusMsg = "played " + move.String()
	return m
}

func (m Model) cmdMoves() Model {
	legal := m.board.LegalMoves()
	if len(legal) == 0 {
		m.statusMsg = "no legal moves"
		return m
	}
	strs := make([]string, len(legal))
	for i, mv := range legal {
		strs[i] = mv.String()
	}
	m.statusMsg = fmt.Sprintf("%d moves: %s", len(legal), strings.Join(strs, " "))
	return m
}

func (m Model) cmdRandom() Model {
	move, err := m.mover.SelectMove(context.Background(), m.board)
	if err != nil {
		m.errorMsg = err.Error()
		return m
	}
	if err := m.board.MakeMove(move); err != nil {
		m.errorMsg = err.Error()
		return m
	}
	m.statusMsg = "random move: " + move.String()
	return m
}

// cmdPosition with no arguments shows the current position's FEN and copies
// it to the clipboard; with an argument it loads a new position from
// "startpos", "empty", or a FEN string.
func (m Model) cmdPosition(args []string) Model {
	if len(args) == 0 {
		fen := m.board.ToFEN()
		if err := util.CopyToClipboard(fen); err != nil {
			m.statusMsg = fmt.Sprintf("FEN: %s (failed to copy to clipboard: %v)", fen, err)
		} else {
			m.statusMsg = fmt.Sprintf("FEN: %s (copied to clipboard)", fen)
		}
		return m
	}

	switch args[0] {
	case "startpos":
		m.board = engine.DefaultBoard()
		m.statusMsg = "position set to startpos"
		return m
	case "empty":
		m.board = engine.EmptyBoard()
		m.statusMsg = "position set to empty board"
		return m
	}

	fen := strings.Join(args, " ")
	board, err := engine.FromFEN(fen)
	if err != nil {
		m.errorMsg = err.Error()
		return m
	}
	m.board = board
	m.statusMsg = "position loaded from FEN"
	return m
}

func (m Model) cmdIndex(args []string) Model {
	if len(args) != 1 {
		m.errorMsg = "usage: i <square>"
		return m
	}
	sq, err := engine.ParseSquare(args[0])
	if err != nil {
		m.errorMsg = err.Error()
		return m
	}
	m.statusMsg = fmt.Sprintf("%s = %d", args[0], int(sq))
	return m
}

// cmdUncheckedMove applies a move without requiring it to have come from
// LegalMoves() — a debug entry point for reaching positions the legal-move
// generator would never produce. Apart from "0000", which plays a null move,
// the move still has to be pseudo-legal (a piece physically able to make
// that from/to transition) so its Flag can be classified; the checks it
// skips are king safety and the game-over check.
func (m Model) cmdUncheckedMove(args []string) Model {
	if len(args) != 1 {
		m.errorMsg = "usage: um <move>"
		return m
	}

	arg := strings.ToLower(args[0])
	if arg == "0000" {
		m.board.MakeMoveUnchecked(engine.NewNullMove(m.board.Turn()))
		m.statusMsg = "played null move (unchecked)"
		return m
	}

	from, to, promotion, err := engine.ParseCoordinateMove(arg)
	if err != nil {
		m.errorMsg = err.Error()
		return m
	}

	for _, candidate := range m.board.PseudoLegalMoves() {
		if candidate.From == from && candidate.To == to && candidate.Promotion == promotion {
			m.board.MakeMoveUnchecked(candidate)
			m.statusMsg = "played " + candidate.String() + " (unchecked)"
			return m
		}
	}

	m.errorMsg = "no pseudo-legal move matches " + args[0]
	return m
}

func (m Model) cmdHash() Model {
	hash := m.board.Hash()
	text := strconv.FormatUint(hash, 16)
	if err := util.CopyToClipboard(text); err != nil {
		m.statusMsg = fmt.Sprintf("hash: %016x (failed to copy to clipboard: %v)", hash, err)
	} else {
		m.statusMsg = fmt.Sprintf("hash: %016x (copied to clipboard)", hash)
	}
	return m
}

func (m Model) cmdHashes() Model {
	hashes := m.board.History()
	if len(hashes) == 0 {
		m.statusMsg = "no repetition history"
		return m
	}
	strs := make([]string, len(hashes))
	for i, h := range hashes {
		strs[i] = strconv.FormatUint(h, 16)
	}
	m.statusMsg = strings.Join(strs, " ")
	return m
}
