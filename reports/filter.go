package reports

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Filter is a predicate over a single report. Concrete filters carry an
// ordered list of accepted values as their state; a report passes when it
// matches any one of those values.
type Filter interface {
	// Test reports whether the report passes the filter.
	Test(r Report) bool
	// Equal reports whether other is the same filter variant with identical
	// state in the same order. Used to suppress redundant store updates.
	Equal(other Filter) bool
}

// FilterSet is the active mapping from filter identifier to filter. At most
// one filter per identifier; an empty set applies no filtering.
type FilterSet map[string]Filter

// Apply returns the reports that pass every filter in the set. Filters
// combine with logical AND across identifiers, while each filter ORs over
// its own state values. The relative order of the input is preserved, and
// an empty set returns the input unchanged.
func (fs FilterSet) Apply(dataset []Report) []Report {
	if len(fs) == 0 {
		return dataset
	}
	out := make([]Report, 0, len(dataset))
	for _, r := range dataset {
		if fs.test(r) {
			out = append(out, r)
		}
	}
	return out
}

func (fs FilterSet) test(r Report) bool {
	for _, f := range fs {
		if !f.Test(r) {
			return false
		}
	}
	return true
}

// Equal reports whether both sets hold the same identifiers with equal
// filters under each one.
func (fs FilterSet) Equal(other FilterSet) bool {
	if len(fs) != len(other) {
		return false
	}
	for key, f := range fs {
		o, ok := other[key]
		if !ok || !f.Equal(o) {
			return false
		}
	}
	return true
}

// IssuesFilter passes reports whose issue set intersects the accepted tags.
type IssuesFilter struct {
	state []string
}

// NewIssuesFilter returns a filter accepting reports that list any of the
// given issue tags. A filter with no tags passes nothing.
func NewIssuesFilter(tags []string) *IssuesFilter {
	return &IssuesFilter{state: slices.Clone(tags)}
}

// Test reports whether the report lists at least one accepted tag.
func (f *IssuesFilter) Test(r Report) bool {
	for _, tag := range f.state {
		if r.HasIssue(tag) {
			return true
		}
	}
	return false
}

// State returns the accepted tags in construction order.
func (f *IssuesFilter) State() []string { return slices.Clone(f.state) }

// Equal implements Filter.
func (f *IssuesFilter) Equal(other Filter) bool {
	o, ok := other.(*IssuesFilter)
	return ok && slices.Equal(f.state, o.state)
}

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the interval. The start is
// inclusive, the end exclusive.
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && t.Before(iv.End)
}

// Equal reports whether both intervals denote the same instants.
func (iv Interval) Equal(other Interval) bool {
	return iv.Start.Equal(other.Start) && iv.End.Equal(other.End)
}

// DateRangeFilter passes reports whose parking time falls inside any of the
// accepted intervals.
type DateRangeFilter struct {
	state []Interval
}

// NewDateRangeFilter returns a filter accepting reports inside any of the
// given half-open intervals. Returns an error if any interval ends before
// it starts.
func NewDateRangeFilter(intervals []Interval) (*DateRangeFilter, error) {
	for i, iv := range intervals {
		if iv.End.Before(iv.Start) {
			return nil, fmt.Errorf("interval %d: end %s before start %s", i, iv.End, iv.Start)
		}
	}
	return &DateRangeFilter{state: slices.Clone(intervals)}, nil
}

// Test reports whether the parking time falls inside any accepted interval.
func (f *DateRangeFilter) Test(r Report) bool {
	for _, iv := range f.state {
		if iv.Contains(r.ParkingTime) {
			return true
		}
	}
	return false
}

// State returns the accepted intervals in construction order.
func (f *DateRangeFilter) State() []Interval { return slices.Clone(f.state) }

// Equal implements Filter.
func (f *DateRangeFilter) Equal(other Filter) bool {
	o, ok := other.(*DateRangeFilter)
	return ok && slices.EqualFunc(f.state, o.state, Interval.Equal)
}

var weekdayIndex = map[string]int{
	"monday":    1,
	"tuesday":   2,
	"wednesday": 3,
	"thursday":  4,
	"friday":    5,
	"saturday":  6,
	"sunday":    7,
}

// WeekdayFilter passes reports whose parking time falls on one of the
// accepted weekdays.
type WeekdayFilter struct {
	state []int
}

// NewWeekdayFilter builds a filter from weekday names. Names are matched
// case-insensitively and normalized to ISO-8601 indices (Monday=1 through
// Sunday=7). Returns an error for an unrecognized name.
func NewWeekdayFilter(names []string) (*WeekdayFilter, error) {
	state := make([]int, 0, len(names))
	for _, name := range names {
		idx, ok := weekdayIndex[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}
		state = append(state, idx)
	}
	return &WeekdayFilter{state: state}, nil
}

// Test reports whether the parking time weekday is accepted.
func (f *WeekdayFilter) Test(r Report) bool {
	return slices.Contains(f.state, r.Weekday())
}

// State returns the accepted ISO weekday indices in construction order.
func (f *WeekdayFilter) State() []int { return slices.Clone(f.state) }

// Equal implements Filter.
func (f *WeekdayFilter) Equal(other Filter) bool {
	o, ok := other.(*WeekdayFilter)
	return ok && slices.Equal(f.state, o.state)
}

// DurationFilter passes reports whose parking duration category is one of
// the accepted categories. Membership is exact, no fuzzy matching.
type DurationFilter struct {
	state []string
}

// NewDurationFilter returns a filter accepting reports with any of the given
// duration categories.
func NewDurationFilter(categories []string) *DurationFilter {
	return &DurationFilter{state: slices.Clone(categories)}
}

// Test reports whether the parking duration category is accepted.
func (f *DurationFilter) Test(r Report) bool {
	return slices.Contains(f.state, r.ParkingDuration)
}

// State returns the accepted categories in construction order.
func (f *DurationFilter) State() []string { return slices.Clone(f.state) }

// Equal implements Filter.
func (f *DurationFilter) Equal(other Filter) bool {
	o, ok := other.(*DurationFilter)
	return ok && slices.Equal(f.state, o.state)
}
