package reports

import (
	"log/slog"
)

// Notifier delivers analytics events to an external collector. Delivery is
// strictly best-effort; the dashboard never depends on it for correctness.
type Notifier interface {
	Notify(event string, props map[string]string) error
}

// Component is the base every dashboard widget builds on. Constructing one
// registers the widget with the store; the registration happens exactly once
// and lasts for the rest of the session.
type Component struct {
	store    *Store
	key      string
	l        *slog.Logger
	notifier Notifier
}

// ComponentOption configures a Component. Use with NewComponent.
type ComponentOption func(c *Component)

// WithComponentLogger sets the logger for the component. If nil, a logger
// based on slog.DiscardHandler is used as default.
func WithComponentLogger(l *slog.Logger) ComponentOption {
	return func(c *Component) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		c.l = l
	}
}

// WithNotifier sets the analytics notifier for the component. Without one,
// Track does nothing.
func WithNotifier(n Notifier) ComponentOption {
	return func(c *Component) {
		c.notifier = n
	}
}

// NewComponent registers sub with the store under a key derived from rootID
// and returns the base component. sub should be the concrete widget
// embedding the component, so that refresh notifications dispatch to its
// Refresh override; if sub is nil the component registers itself, leaving
// Refresh a no-op.
func NewComponent(store *Store, rootID string, sub Subscriber, options ...ComponentOption) *Component {
	c := &Component{
		store: store,
		l:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range options {
		opt(c)
	}
	if sub == nil {
		sub = c
	}
	c.key = store.Subscribe(rootID, sub)
	return c
}

// Refresh is a no-op. Concrete widgets override it to redraw themselves from
// the store's display data.
func (c *Component) Refresh() {}

// Key returns the registry key assigned during construction.
func (c *Component) Key() string { return c.key }

// Store returns the shared state the component is attached to.
func (c *Component) Store() *Store { return c.store }

// Track sends an analytics event through the configured notifier. Telemetry
// must never break the dashboard: an error or panic from the notifier is
// logged and swallowed.
func (c *Component) Track(event string, props map[string]string) {
	if c.notifier == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			c.l.Warn("analytics notifier panicked",
				slog.String("event", event),
				slog.Any("panic", r))
		}
	}()
	if err := c.notifier.Notify(event, props); err != nil {
		c.l.Warn("analytics event failed",
			slog.String("event", event),
			slog.String("error", err.Error()))
	}
}
