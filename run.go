package bikespace

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thomassth/bikespace-v2/reports"
)

// Run starts the bikespace dashboard over the given report store, using
// optional options.
func Run(store *reports.Store, options ...Option) error {
	app := New(store, options...)
	// boot-up the bubbletea runtime with our application model.
	prog := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("bubbletea.NewProgram().Run(): %w", err)
	}
	return nil
}
