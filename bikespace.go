// Package bikespace contains implementation for a bubbletea application for
// browsing crowd-sourced bicycle parking reports in the terminal.
//
// New returns the application model that is ready to be passed into a new
// bubbletea program. The model renders a set of views over a shared report
// store, and every filter change made in the UI fans out to the views through
// the store subscription mechanism.
package bikespace

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"

	"github.com/thomassth/bikespace-v2/reports"
)

// Option defines a function that configures the application. Use with New
// or directly on Dashboard.
type Option func(app *Dashboard)

// UseLogger sets the logger for application. If nil, a logger based on
// slog.DiscardHandler is used as default.
func UseLogger(l *slog.Logger) Option {
	return func(app *Dashboard) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		app.l = l
	}
}

// UseNotifier sets the analytics sink that receives filter interaction
// events. Without it interaction tracking is disabled.
func UseNotifier(n reports.Notifier) Option {
	return func(app *Dashboard) {
		app.notifier = n
	}
}

// UseExportPath sets the file path for chart exports triggered from the UI.
func UseExportPath(path string) Option {
	return func(app *Dashboard) {
		app.exportPath = path
	}
}

// New returns an initialized Dashboard model that can be passed into a
// bubbletea program for browsing the reports held by store.
//
// To use the returned model, call for example tea.NewProgram(model).Run()
func New(store *reports.Store, options ...Option) Dashboard {
	h := help.New()
	h.Styles = styleHelp
	app := Dashboard{
		store:      store,
		l:          slog.New(slog.DiscardHandler),
		help:       h,
		keys:       newKeymap(),
		exportPath: "bikespace-report.pdf",
	}
	// apply options to customize the application.
	for _, opt := range options {
		opt(&app)
	}
	// widgets register with the store in this order, and the store notifies
	// them in the same order on every filter change.
	compOpts := []reports.ComponentOption{reports.WithComponentLogger(app.l)}
	if app.notifier != nil {
		compOpts = append(compOpts, reports.WithNotifier(app.notifier))
	}
	app.views = []widget{
		newMapView(store, compOpts...),
		newTableView(store, compOpts...),
		newIssuesView(store, compOpts...),
		newWeekdaysView(store, compOpts...),
		newDurationsView(store, compOpts...),
	}
	for _, v := range app.views {
		app.viewNames = append(app.viewNames, v.Name())
	}
	app.panel = newFilterPanel(store, compOpts...)
	// prime the widget caches from the current display data.
	store.Refresh()
	return app
}

type state struct {
	screenWidth  int
	screenHeight int
	viewWidth    int
	viewHeight   int
	activeView   int
	showHelp     bool
	ready        bool
	quitting     bool
	notice       string
}

// widget is a view over the report store. Widgets subscribe to the store on
// creation and cache whatever they need from the display data in Refresh.
type widget interface {
	reports.Subscriber
	Name() string
	Render(width, height int) string
}

// Dashboard is the bikespace application model. Keeps track of the whole
// application state and implements tea.Model.
type Dashboard struct {
	store      *reports.Store
	l          *slog.Logger
	notifier   reports.Notifier
	exportPath string
	viewNames  []string
	views      []widget
	panel      *filterPanel
	keys       keymap
	state      state
	help       help.Model
}

func incWrap(v, min, max int) int {
	switch {
	case v >= max || v < min:
		return min
	default:
		return v + 1
	}
}

func decWrap(v, min, max int) int {
	switch {
	case v <= min || v > max:
		return max
	default:
		return v - 1
	}
}
