package ui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color values used throughout the UI.
type Theme struct {
	WhitePiece lipgloss.Color
	BlackPiece lipgloss.Color

	TitleText  lipgloss.Color
	HelpText   lipgloss.Color
	ErrorText  lipgloss.Color
	StatusText lipgloss.Color

	WhiteTurnText lipgloss.Color
	BlackTurnText lipgloss.Color
}

// ClassicTheme is the only theme the front-end ships.
var ClassicTheme = Theme{
	WhitePiece: lipgloss.Color("15"), // Bright white
	BlackPiece: lipgloss.Color("8"),  // Gray

	TitleText:  lipgloss.Color("#FAFAFA"),
	HelpText:   lipgloss.Color("#626262"),
	ErrorText:  lipgloss.Color("#FF5555"),
	StatusText: lipgloss.Color("#50FA7B"),

	WhiteTurnText: lipgloss.Color("#FAFAFA"),
	BlackTurnText: lipgloss.Color("#626262"),
}
