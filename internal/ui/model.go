package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/mgrdich/chesscore/internal/bot"
	"github.com/mgrdich/chesscore/internal/engine"
)

// Model is the Bubbletea application model. It holds the current board,
// the command-line text entry, and the last result/error text shown below
// the board.
type Model struct {
	board *engine.Board
	mover *bot.RandomMover

	config Config
	theme  Theme
	debug  bool

	input textinput.Model

	statusMsg string
	errorMsg  string

	termWidth  int
	termHeight int
}

// NewModel constructs a Model on the standard starting position.
func NewModel(config Config, debug bool) Model {
	ti := textinput.New()
	ti.Placeholder = "m e2e4, moves, r, position startpos, q ..."
	ti.CharLimit = 100
	ti.Width = 60
	ti.Focus()

	return Model{
		board:  engine.DefaultBoard(),
		mover:  bot.NewRandomMover(),
		config: config,
		theme:  ClassicTheme,
		debug:  debug,
		input:  ti,
	}
}
