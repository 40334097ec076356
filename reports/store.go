package reports

import (
	"log/slog"
	"maps"
	"strings"
	"time"
)

// Subscriber receives a refresh notification after the store has recomputed
// its display data.
type Subscriber interface {
	Refresh()
}

type subscription struct {
	key string
	sub Subscriber
}

// Store owns the immutable source dataset, the active filter set, the
// derived display data and the registry of subscribed components.
//
// The dataset reference never changes after construction; only the filter
// set and the display data derived from it do, and only through SetFilters.
// The store performs no locking: it is meant to be driven from a single UI
// update loop.
type Store struct {
	l       *slog.Logger
	source  []Report
	filters FilterSet
	display []Report
	subs    []subscription
}

// StoreOption configures a Store. Use with NewStore.
type StoreOption func(s *Store)

// WithLogger sets the logger for the store. If nil, a logger based on
// slog.DiscardHandler is used as default.
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		s.l = l
	}
}

// NewStore returns a store owning the given dataset. The slice is taken over
// as-is and must not be mutated by the caller afterwards. With no filters
// set, the display data equals the full dataset.
func NewStore(dataset []Report, options ...StoreOption) *Store {
	s := &Store{
		l:       slog.New(slog.DiscardHandler),
		source:  dataset,
		filters: FilterSet{},
		display: dataset,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Subscribe registers sub under a key derived from rootID and returns the
// key. Subscribers are notified in registration order and stay registered
// for the rest of the session. A rootID resolving to an already used key
// replaces that subscriber in place, keeping its broadcast position.
func (s *Store) Subscribe(rootID string, sub Subscriber) string {
	key := NormalizeKey(rootID)
	for i := range s.subs {
		if s.subs[i].key == key {
			s.l.Warn("replacing subscriber", slog.String("key", key))
			s.subs[i].sub = sub
			return key
		}
	}
	s.subs = append(s.subs, subscription{key: key, sub: sub})
	s.l.Debug("subscriber registered", slog.String("key", key), slog.Int("total", len(s.subs)))
	return key
}

// SetFilters replaces the active filter set, recomputes the display data and
// refreshes every subscriber before returning. This is the only mutation
// entry point for filters. The given set is copied, so later changes to it
// do not affect the store.
//
// A subscriber that panics during refresh is not isolated; the panic reaches
// the caller. A broken widget should halt visibly rather than silently fall
// out of sync with the rest of the dashboard.
func (s *Store) SetFilters(filters FilterSet) {
	next := maps.Clone(filters)
	if next == nil {
		next = FilterSet{}
	}
	s.filters = next
	s.display = s.filters.Apply(s.source)
	s.l.Debug("filters applied",
		slog.Int("filters", len(s.filters)),
		slog.Int("display", len(s.display)),
		slog.Int("source", len(s.source)))
	s.Refresh()
}

// Filters returns a copy of the active filter set. Mutating the returned map
// does not affect the store.
func (s *Store) Filters() FilterSet {
	return maps.Clone(s.filters)
}

// DisplayData returns the reports passing the active filters, in source
// order. The slice is shared and must be treated as read-only.
func (s *Store) DisplayData() []Report { return s.display }

// SourceData returns the full dataset regardless of active filters, for
// collaborators that need dataset-wide constants such as the overall date
// range. The slice is shared and must be treated as read-only.
func (s *Store) SourceData() []Report { return s.source }

// TimeRange returns the earliest and latest parking time across the full
// dataset, ignoring active filters. Both are zero when the dataset is empty.
func (s *Store) TimeRange() (time.Time, time.Time) {
	var earliest, latest time.Time
	for _, r := range s.source {
		if earliest.IsZero() || r.ParkingTime.Before(earliest) {
			earliest = r.ParkingTime
		}
		if latest.IsZero() || r.ParkingTime.After(latest) {
			latest = r.ParkingTime
		}
	}
	return earliest, latest
}

// Refresh synchronously notifies every subscriber in registration order.
func (s *Store) Refresh() {
	for _, entry := range s.subs {
		entry.sub.Refresh()
	}
}

// NormalizeKey derives the registry key for a component root identifier:
// lower case, with interior whitespace collapsed into single hyphens.
func NormalizeKey(rootID string) string {
	return strings.Join(strings.Fields(strings.ToLower(rootID)), "-")
}
