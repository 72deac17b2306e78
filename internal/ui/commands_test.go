package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, debug bool) Model {
	t.Helper()
	return NewModel(DefaultConfig(), debug)
}

func TestMoveCommandPlaysLegalMove(t *testing.T) {
	m := newTestModel(t, false)
	m, quit := m.runCommand("m e2e4")
	require.False(t, quit)
	require.Empty(t, m.errorMsg)
	require.Contains(t, m.statusMsg, "e2e4")
}

func TestMoveCommandRejectsIllegalMove(t *testing.T) {
	m := newTestModel(t, false)
	m, quit := m.runCommand("m e2e5")
	require.False(t, quit)
	require.NotEmpty(t, m.errorMsg)
}

func TestMovesCommandListsLegalMoves(t *testing.T) {
	m := newTestModel(t, false)
	m, _ = m.runCommand("moves")
	require.Contains(t, m.statusMsg, "20 moves")
}

func TestRandomCommandPlaysAMove(t *testing.T) {
	m := newTestModel(t, false)
	before := m.board.Hash()
	m, quit := m.runCommand("r")
	require.False(t, quit)
	require.Empty(t, m.errorMsg)
	require.NotEqual(t, before, m.board.Hash())
}

func TestPositionCommandNoArgsShowsFEN(t *testing.T) {
	m := newTestModel(t, false)
	m, _ = m.runCommand("position")
	require.Empty(t, m.errorMsg)
	require.Contains(t, m.statusMsg, "FEN:")
	require.Contains(t, m.statusMsg, "rnbqkbnr")
}

func TestPositionCommandStartpos(t *testing.T) {
	m := newTestModel(t, false)
	m, _ = m.runCommand("m e2e4")
	m, _ = m.runCommand("position startpos")
	require.Empty(t, m.errorMsg)
	require.Equal(t, 20, len(m.board.LegalMoves()))
}

func TestPositionCommandEmpty(t *testing.T) {
	m := newTestModel(t, false)
	m, _ = m.runCommand("position empty")
	require.Empty(t, m.errorMsg)
	require.Empty(t, m.board.LegalMoves())
}

func TestPositionCommandFEN(t *testing.T) {
	m := newTestModel(t, false)
	m, _ = m.runCommand("position 4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.Empty(t, m.errorMsg)
	require.Equal(t, 5, len(m.board.LegalMoves()))
}

func TestPositionCommandRejectsBadFEN(t *testing.T) {
	m := newTestModel(t, false)
	m, _ = m.runCommand("position not-a-fen")
	require.NotEmpty(t, m.errorMsg)
}

func TestIndexCommand(t *testing.T) {
	m := newTestModel(t, false)
	m, _ = m.runCommand("i e4")
	require.Contains(t, m.statusMsg, "28")
}

func TestQuitCommandsSignalExit(t *testing.T) {
	for _, cmd := range []string{"q", "quit", "exit"} {
		m := newTestModel(t, false)
		_, quit := m.runCommand(cmd)
		require.True(t, quit, cmd)
	}
}

func TestDebugCommandsRejectedWhenNotDebug(t *testing.T) {
	m := newTestModel(t, false)
	for _, cmd := range []string{"um e2e4", "hash", "hashes"} {
		result, _ := m.runCommand(cmd)
		require.NotEmpty(t, result.errorMsg, cmd)
	}
}

func TestUncheckedMovePlaysPseudoLegalMove(t *testing.T) {
	m := newTestModel(t, true)
	m, quit := m.runCommand("um e2e4")
	require.False(t, quit)
	require.Empty(t, m.errorMsg)
	require.True(t, strings.Contains(m.statusMsg, "unchecked"))
}

func TestUncheckedMoveRejectsImpossibleTransition(t *testing.T) {
	m := newTestModel(t, true)
	m, _ = m.runCommand("um e2e5")
	require.NotEmpty(t, m.errorMsg)
}

func TestHashCommandReportsHash(t *testing.T) {
	m := newTestModel(t, true)
	m, _ = m.runCommand("hash")
	require.Empty(t, m.errorMsg)
	require.Contains(t, m.statusMsg, "hash:")
}

func TestHashesCommandReportsHistory(t *testing.T) {
	m := newTestModel(t, true)
	m, _ = m.runCommand("hashes")
	require.Empty(t, m.errorMsg)
	require.NotEmpty(t, m.statusMsg)
}

func TestUnknownCommandReportsError(t *testing.T) {
	m := newTestModel(t, false)
	m, quit := m.runCommand("bogus")
	require.False(t, quit)
	require.Contains(t, m.errorMsg, "unknown command")
}

func TestEmptyLineIsANoOp(t *testing.T) {
	m := newTestModel(t, false)
	m, quit := m.runCommand("")
	require.False(t, quit)
	require.Empty(t, m.errorMsg)
	require.Empty(t, m.statusMsg)
}
