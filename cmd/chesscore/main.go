// Package main is the entry point for the chesscore terminal front-end.
package main

import (
	"log"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mgrdich/chesscore/internal/ui"
)

func main() {
	debug, _ := strconv.ParseBool(os.Getenv("DEBUG"))

	model := ui.NewModel(ui.DefaultConfig(), debug)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
