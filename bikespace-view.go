package bikespace

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// renderer is a function signature for a function that renders a contents
// for a view, using the given dimensions as guideline for content sizing.
type renderer func(width int, height int) string

// View renders the current model state.
//
// Provides compatibility with tea.Model.
func (m Dashboard) View() string {
	switch {
	case !m.state.ready:
		// Until the first window size message arrives there's nothing
		// sensible to lay out yet.
		return m.renderFullscreen(m.renderLoadingScreen)
	case m.state.showHelp:
		// Help is handled separately, we don't want to have the navigation
		// and all other distractions visible when showing help.
		return m.renderFullscreen(m.renderHelp)
	default:
		view := m.views[m.state.activeView]
		return m.renderWithNavigation(view.Render)
	}
}

// renderLoadingScreen that indicates something is not ready yet, but should
// be soon. Usable as placeholder when waiting for the terminal size.
func (m Dashboard) renderLoadingScreen(width, height int) string {
	return styleLoader.Height(height).Width(width).Render("Loading ...")
}

// renderHelp for the application. This is the full help for the app, which
// requires a bit more space.
func (m Dashboard) renderHelp(width, _ int) string {
	h := m.help
	h.Width = width
	keys := newKeymap()
	return lipgloss.Place(
		m.state.viewWidth,
		m.state.viewHeight,
		lipgloss.Center,
		lipgloss.Center,
		h.FullHelpView([][]key.Binding{
			// global keys
			{
				key.NewBinding(key.WithHelp("", "Global:"), key.WithKeys("")),
				keys.nextTab,
				keys.prevTab,
				keys.exportCharts,
				keys.quit,
				keys.closeHelp,
			},
			// filter keys
			{
				key.NewBinding(key.WithHelp("", "Filters:"), key.WithKeys("")),
				keys.cycleIssue,
				keys.cycleDuration,
				keys.cycleWeekdays,
				keys.prevMonth,
				keys.nextMonth,
				keys.clearFilters,
			},
		}),
	)
}

// renderHelpHint renders the small help next to navigation. Basically just
// telling what to press to see the actual help.
func (m Dashboard) renderHelpHint() string {
	return m.help.ShortHelpView([]key.Binding{m.keys.openHelp})
}

// renderNavigation renders the navigation bar at the bottom of the screen.
func (m Dashboard) renderNavigation() string {
	// gather the sections of the navigation based on available view names.
	var sections []string
	for i, name := range m.viewNames {
		var style lipgloss.Style
		// style based on if view is active now or not.
		if i == m.state.activeView {
			name = " " + name
			style = styleNavActive
		} else {
			style = styleNavInactive
		}
		sections = append(sections, style.Render(name))
	}
	var doc strings.Builder
	doc.WriteString(styleNavCap.Render(""))
	doc.WriteString(strings.Join(sections, styleNavJoiner.Render("╱")))
	doc.WriteString(styleNavCap.Render(""))
	return doc.String()
}

// renderFilterLine renders the active filter summary and any pending notice
// above the navigation bar.
func (m Dashboard) renderFilterLine() string {
	line := styleFilterLine.Render(m.panel.summary())
	if m.state.notice != "" {
		line += "  " + styleNotice.Render(m.state.notice)
	}
	return line
}

// renderFullscreen renders the given content full screen, without anything
// else on the screen. Given render function gets the view size adjusted to
// account for any window styling.
func (m Dashboard) renderFullscreen(render renderer) string {
	return styleWindow.Render(render(m.state.viewWidth, m.state.viewHeight))
}

// renderWithNavigation is used to render a widget view with the filter line
// and navigation. Given render function gets width/height adjusted to account
// for the extra rows.
func (m Dashboard) renderWithNavigation(render renderer) string {
	viewHeight, viewWidth := m.state.viewHeight, m.state.viewWidth
	nav := m.renderNavigation()
	_, navHeight := lipgloss.Size(nav)
	contentHeight := viewHeight - navHeight - 1
	doc := strings.Builder{}
	doc.WriteString(lipgloss.Place(viewWidth, contentHeight, lipgloss.Center, lipgloss.Center, render(viewWidth, contentHeight)))
	doc.WriteString("\n")
	doc.WriteString(lipgloss.Place(viewWidth, 1, lipgloss.Center, lipgloss.Bottom, m.renderFilterLine()))
	doc.WriteString("\n")
	doc.WriteString(lipgloss.Place(viewWidth, navHeight, lipgloss.Center, lipgloss.Bottom, nav+" "+m.renderHelpHint()))
	return styleWindow.Height(m.state.viewHeight).Width(m.state.viewWidth).Render(doc.String())
}
