package bikespace

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Init performs application initialization.
//
// The report data is already loaded into the store by the time the model is
// constructed, so nothing needs to happen here. The model flips to ready on
// the first window size message.
//
// Provides compatibility with tea.Model.
func (m Dashboard) Init() tea.Cmd {
	return nil
}
