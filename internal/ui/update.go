package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Init starts the program. No initial command is needed: the board is
// already populated by NewModel.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming Bubbletea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter":
			line := m.input.Value()
			m.input.SetValue("")
			updated, quit := m.runCommand(line)
			if quit {
				return updated, tea.Quit
			}
			return updated, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
