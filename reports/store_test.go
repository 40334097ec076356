package reports

import (
	"testing"
	"time"
)

// recordingSub records the refresh order and what the store displayed at the
// time of each refresh.
type recordingSub struct {
	name     string
	store    *Store
	log      *[]string
	observed int
}

func (r *recordingSub) Refresh() {
	*r.log = append(*r.log, r.name)
	r.observed = len(r.store.DisplayData())
}

func storeDataset() []Report {
	return []Report{
		testReport(1, time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC), DurationHours, IssueFull),
		testReport(2, time.Date(2024, 3, 9, 9, 0, 0, 0, time.UTC), DurationMinutes, IssueDamaged),
		testReport(3, time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC), DurationHours, IssueFull),
	}
}

func Test_Store_displayDefaultsToSource(t *testing.T) {
	s := NewStore(storeDataset())
	if got, want := len(s.DisplayData()), 3; got != want {
		t.Errorf("DisplayData() has %d reports, want %d", got, want)
	}
	if got, want := len(s.SourceData()), 3; got != want {
		t.Errorf("SourceData() has %d reports, want %d", got, want)
	}
}

func Test_Store_SetFilters(t *testing.T) {
	s := NewStore(storeDataset())
	s.SetFilters(FilterSet{"issues": NewIssuesFilter([]string{IssueFull})})
	if got, want := len(s.DisplayData()), 2; got != want {
		t.Errorf("DisplayData() has %d reports, want %d", got, want)
	}
	// source must be untouched
	if got, want := len(s.SourceData()), 3; got != want {
		t.Errorf("SourceData() has %d reports, want %d", got, want)
	}
	// resetting to an empty set restores the full dataset
	s.SetFilters(FilterSet{})
	if got, want := len(s.DisplayData()), 3; got != want {
		t.Errorf("DisplayData() after reset has %d reports, want %d", got, want)
	}
}

func Test_Store_SetFilters_defensiveCopy(t *testing.T) {
	s := NewStore(storeDataset())
	fs := FilterSet{"issues": NewIssuesFilter([]string{IssueFull})}
	s.SetFilters(fs)
	// mutating the caller's map must not leak into the store
	delete(fs, "issues")
	if got, want := len(s.Filters()), 1; got != want {
		t.Errorf("Filters() has %d entries after caller mutation, want %d", got, want)
	}
	// and mutating the returned copy must not either
	got := s.Filters()
	got["extra"] = NewDurationFilter([]string{DurationHours})
	if len(s.Filters()) != 1 {
		t.Error("mutating the returned filter set affected the store")
	}
}

func Test_Store_refreshOrderAndCount(t *testing.T) {
	s := NewStore(storeDataset())
	var log []string
	first := &recordingSub{name: "first", store: s, log: &log}
	second := &recordingSub{name: "second", store: s, log: &log}
	if key := s.Subscribe("Issue Chart", first); key != "issue-chart" {
		t.Errorf("Subscribe() key = %q, want %q", key, "issue-chart")
	}
	if key := s.Subscribe("map", second); key != "map" {
		t.Errorf("Subscribe() key = %q, want %q", key, "map")
	}

	s.SetFilters(FilterSet{"issues": NewIssuesFilter([]string{IssueDamaged})})

	want := []string{"first", "second"}
	if len(log) != len(want) {
		t.Fatalf("refresh log = %v, want exactly one refresh per subscriber %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("refresh log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
	// refresh must run after the display data was recomputed
	if first.observed != 1 || second.observed != 1 {
		t.Errorf("subscribers observed %d/%d display reports during refresh, want 1/1",
			first.observed, second.observed)
	}
}

func Test_Store_Subscribe_collisionReplacesInPlace(t *testing.T) {
	s := NewStore(storeDataset())
	var log []string
	old := &recordingSub{name: "old", store: s, log: &log}
	replacement := &recordingSub{name: "replacement", store: s, log: &log}
	tail := &recordingSub{name: "tail", store: s, log: &log}
	s.Subscribe("widget", old)
	s.Subscribe("tail", tail)
	s.Subscribe("Widget", replacement) // same normalized key

	s.Refresh()
	want := []string{"replacement", "tail"}
	if len(log) != len(want) {
		t.Fatalf("refresh log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("refresh log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
}

func Test_Store_TimeRange(t *testing.T) {
	s := NewStore(storeDataset())
	// active filters must not affect the range
	s.SetFilters(FilterSet{"issues": NewIssuesFilter([]string{IssueDamaged})})
	earliest, latest := s.TimeRange()
	if want := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC); !earliest.Equal(want) {
		t.Errorf("TimeRange() earliest = %s, want %s", earliest, want)
	}
	if want := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC); !latest.Equal(want) {
		t.Errorf("TimeRange() latest = %s, want %s", latest, want)
	}
}

func Test_Store_TimeRange_empty(t *testing.T) {
	s := NewStore(nil)
	earliest, latest := s.TimeRange()
	if !earliest.IsZero() || !latest.IsZero() {
		t.Errorf("TimeRange() = %s, %s, want zero times", earliest, latest)
	}
}

func Test_NormalizeKey(t *testing.T) {
	tests := []struct {
		name   string
		rootID string
		want   string
	}{
		{name: "plain", rootID: "map", want: "map"},
		{name: "mixed case", rootID: "IssueChart", want: "issuechart"},
		{name: "spaces to hyphens", rootID: "Issue Chart", want: "issue-chart"},
		{name: "extra whitespace", rootID: "  Issue \t Chart ", want: "issue-chart"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeKey(tt.rootID); got != tt.want {
				t.Errorf("NormalizeKey() = %q, want %q", got, tt.want)
			}
		})
	}
}
