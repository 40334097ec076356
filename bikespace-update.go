package bikespace

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thomassth/bikespace-v2/charts"
)

// Update model state based on the incoming message.
//
// Filter keys mutate the panel selections and push the resulting filter set
// into the store synchronously, so every registered widget has refreshed its
// cache before the next View call.
//
// Provides compatibility with tea.Model.
func (m Dashboard) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	var commands []tea.Cmd
	switch msg := message.(type) {
	case exportDoneMsg:
		if msg.err != nil {
			m.l.Error("chart export failed", slog.String("error", msg.err.Error()))
			m.state.notice = "export failed: " + msg.err.Error()
		} else {
			m.state.notice = "exported " + msg.path
		}
	case tea.WindowSizeMsg:
		m.state.screenWidth = msg.Width
		m.state.screenHeight = msg.Height
		m.state.viewWidth = msg.Width - styleWindow.GetHorizontalFrameSize()
		m.state.viewHeight = msg.Height - styleWindow.GetVerticalFrameSize() - 2
		m.state.ready = true
	case tea.KeyMsg:
		m.state.notice = ""
		switch {
		case key.Matches(msg, m.keys.openHelp, m.keys.closeHelp):
			m.state.showHelp = !m.state.showHelp
			m.keys.openHelp.SetEnabled(!m.state.showHelp)
			m.keys.closeHelp.SetEnabled(m.state.showHelp)
		case key.Matches(msg, m.keys.nextTab):
			m.state.activeView = incWrap(m.state.activeView, 0, len(m.views)-1)
		case key.Matches(msg, m.keys.prevTab):
			m.state.activeView = decWrap(m.state.activeView, 0, len(m.views)-1)
		case key.Matches(msg, m.keys.cycleIssue):
			m.panel.cycleIssue()
			m.panel.apply()
		case key.Matches(msg, m.keys.cycleDuration):
			m.panel.cycleDuration()
			m.panel.apply()
		case key.Matches(msg, m.keys.cycleWeekdays):
			m.panel.cycleWeekdays()
			m.panel.apply()
		case key.Matches(msg, m.keys.nextMonth):
			m.panel.nextMonth()
			m.panel.apply()
		case key.Matches(msg, m.keys.prevMonth):
			m.panel.prevMonth()
			m.panel.apply()
		case key.Matches(msg, m.keys.clearFilters):
			m.panel.reset()
			m.panel.apply()
		case key.Matches(msg, m.keys.exportCharts):
			commands = append(commands, m.exportCharts())
		case key.Matches(msg, m.keys.quit):
			m.state.quitting = true
			return m, tea.Quit
		}
	}
	return m, tea.Batch(commands...)
}

// exportCharts writes the currently displayed reports into a PDF chart
// bundle at the configured export path.
func (m Dashboard) exportCharts() tea.Cmd {
	var (
		path     = m.exportPath
		display  = m.store.DisplayData()
		subtitle = m.panel.summary()
	)
	if first, last := m.store.TimeRange(); !first.IsZero() {
		subtitle += "\n" + charts.DescribeRange(first, last)
	}
	return func() tea.Msg {
		if err := charts.ExportPDF(path, display, subtitle); err != nil {
			return exportDoneMsg{path: path, err: fmt.Errorf("charts.ExportPDF: %w", err)}
		}
		return exportDoneMsg{path: path}
	}
}
