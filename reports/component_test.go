package reports

import (
	"errors"
	"testing"
)

type failingNotifier struct {
	err    error
	panics bool
	calls  int
}

func (n *failingNotifier) Notify(event string, props map[string]string) error {
	n.calls++
	if n.panics {
		panic("notifier exploded")
	}
	return n.err
}

func Test_NewComponent_registersOnce(t *testing.T) {
	s := NewStore(nil)
	c := NewComponent(s, "Duration Chart", nil)
	if got, want := c.Key(), "duration-chart"; got != want {
		t.Errorf("Key() = %q, want %q", got, want)
	}
	if c.Store() != s {
		t.Error("Store() does not return the store the component was attached to")
	}
	// base Refresh is a no-op; broadcasting must not panic
	s.Refresh()
}

type countingWidget struct {
	*Component
	refreshes int
}

func (w *countingWidget) Refresh() { w.refreshes++ }

func Test_NewComponent_dispatchesToConcreteWidget(t *testing.T) {
	s := NewStore(storeDataset())
	w := &countingWidget{}
	w.Component = NewComponent(s, "map", w)
	s.SetFilters(FilterSet{"issues": NewIssuesFilter([]string{IssueFull})})
	if w.refreshes != 1 {
		t.Errorf("widget saw %d refreshes, want 1", w.refreshes)
	}
}

func Test_Component_Track(t *testing.T) {
	tests := []struct {
		name     string
		notifier *failingNotifier
	}{
		{name: "notifier error is swallowed", notifier: &failingNotifier{err: errors.New("collector down")}},
		{name: "notifier panic is swallowed", notifier: &failingNotifier{panics: true}},
		{name: "success", notifier: &failingNotifier{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(nil)
			c := NewComponent(s, "widget", nil, WithNotifier(tt.notifier))
			c.Track("filter_changed", map[string]string{"filter": "issues"})
			if tt.notifier.calls != 1 {
				t.Errorf("notifier called %d times, want 1", tt.notifier.calls)
			}
		})
	}
}

func Test_Component_Track_withoutNotifier(t *testing.T) {
	s := NewStore(nil)
	c := NewComponent(s, "widget", nil)
	// must be a no-op, not a panic
	c.Track("filter_changed", nil)
}
