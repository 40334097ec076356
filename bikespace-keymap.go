package bikespace

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keymap struct {
	cycleIssue    key.Binding
	cycleDuration key.Binding
	cycleWeekdays key.Binding
	nextMonth     key.Binding
	prevMonth     key.Binding
	clearFilters  key.Binding
	exportCharts  key.Binding
	nextTab       key.Binding
	prevTab       key.Binding
	openHelp      key.Binding
	closeHelp     key.Binding
	quit          key.Binding
}

func newKeymap() keymap {
	return keymap{
		openHelp: key.NewBinding(
			key.WithKeys(tea.KeyF1.String()),
			key.WithHelp("f1", "Help"),
		),
		closeHelp: key.NewBinding(
			key.WithKeys(tea.KeyEsc.String(), tea.KeyF1.String()),
			key.WithHelp("esc", "Close help"),
		),
		nextTab: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("l, →", "Next view"),
		),
		prevTab: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("h, ←", "Previous view"),
		),
		cycleIssue: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "Cycle issue type"),
		),
		cycleDuration: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Cycle parking duration"),
		),
		cycleWeekdays: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "Cycle weekday preset"),
		),
		nextMonth: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("j, ↓", "Forward in time"),
		),
		prevMonth: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("k, ↑", "Back in time"),
		),
		clearFilters: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Show all reports"),
		),
		exportCharts: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Export charts as PDF"),
		),
		quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
	}
}
