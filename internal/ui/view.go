package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mgrdich/chesscore/internal/engine"
)

func (m Model) titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(m.theme.TitleText)
}

func (m Model) helpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(m.theme.HelpText)
}

func (m Model) errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(m.theme.ErrorText)
}

func (m Model) statusStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(m.theme.StatusText)
}

func (m Model) turnStyle() lipgloss.Style {
	if m.board.Turn() == engine.Black {
		return lipgloss.NewStyle().Foreground(m.theme.BlackTurnText)
	}
	return lipgloss.NewStyle().Foreground(m.theme.WhiteTurnText)
}

// View renders the current state as a string.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.titleStyle().Render("chesscore"))
	b.WriteString("\n\n")

	renderer := NewBoardRenderer(m.config, m.theme)
	b.WriteString(renderer.Render(m.board))
	b.WriteString("\n\n")

	b.WriteString(m.turnStyle().Render(m.turnText()))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	b.WriteString(m.helpStyle().Render(m.helpText()))

	if m.errorMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(m.errorStyle().Render(fmt.Sprintf("error: %s", m.errorMsg)))
	}
	if m.statusMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(m.statusStyle().Render(m.statusMsg))
	}

	return b.String()
}

func (m Model) turnText() string {
	turn := "White"
	if m.board.Turn() == engine.Black {
		turn = "Black"
	}

	status := m.board.Status()
	switch status {
	case engine.Ongoing:
		if m.board.InCheck() {
			return fmt.Sprintf("%s to move (in check)", turn)
		}
		return turn + " to move"
	case engine.Checkmate:
		winner, _ := m.board.Winner()
		winnerName := "White"
		if winner == engine.Black {
			winnerName = "Black"
		}
		return "Checkmate — " + winnerName + " wins"
	default:
		return status.String()
	}
}

func (m Model) helpText() string {
	base := "m <move> | moves | r | position [fen|startpos|empty] | i <square> | q/quit/exit"
	if m.debug {
		return base + " | um <move> | hash | hashes"
	}
	return base
}
