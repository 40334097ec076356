package bikespace

import (
	"strings"
	"time"

	"github.com/thomassth/bikespace-v2/reports"
)

// Filter keys used by the UI when composing the store filter set. Each key
// holds at most one filter, so cycling a selection swaps the filter in place.
const (
	filterKeyIssues   = "issues"
	filterKeyDuration = "parking-duration"
	filterKeyWeekday  = "weekday"
	filterKeyDate     = "date-range"
)

// monthPageAll marks the month pager as disabled. Pages at zero or below
// select a single calendar month, zero being the current one.
const monthPageAll = 1

// weekdayGroups are the selectable weekday presets, in cycling order. The
// empty first entry means no weekday filtering.
var weekdayGroups = []struct {
	label string
	names []string
}{
	{label: "every day"},
	{label: "weekdays", names: []string{"monday", "tuesday", "wednesday", "thursday", "friday"}},
	{label: "weekends", names: []string{"saturday", "sunday"}},
}

// filterPanel tracks the filter selections made in the UI and converts them
// into a filter set for the report store. The panel registers itself as a
// store component so that interaction events get tracked alongside the
// actual views.
type filterPanel struct {
	*reports.Component
	issueIdx    int // 0 selects all issue types
	durationIdx int // 0 selects all durations
	weekdayIdx  int // index into weekdayGroups
	monthPage   int
	now         func() time.Time
}

func newFilterPanel(store *reports.Store, options ...reports.ComponentOption) *filterPanel {
	p := &filterPanel{
		monthPage: monthPageAll,
		now:       time.Now,
	}
	p.Component = reports.NewComponent(store, "filter panel", p, options...)
	return p
}

// cycleIssue advances the issue selection: all types first, then each known
// tag in display order.
func (p *filterPanel) cycleIssue() {
	p.issueIdx = incWrap(p.issueIdx, 0, len(reports.IssueTags()))
}

// cycleDuration advances the duration selection the same way as cycleIssue.
func (p *filterPanel) cycleDuration() {
	p.durationIdx = incWrap(p.durationIdx, 0, len(reports.Durations()))
}

// cycleWeekdays advances through the weekday presets.
func (p *filterPanel) cycleWeekdays() {
	p.weekdayIdx = incWrap(p.weekdayIdx, 0, len(weekdayGroups)-1)
}

// nextMonth moves the month pager forward in time. Moving past the current
// month disables date filtering.
func (p *filterPanel) nextMonth() {
	if p.monthPage >= 0 {
		p.monthPage = monthPageAll
		return
	}
	p.monthPage++
}

// prevMonth moves the month pager back in time, starting from the current
// month when no date filter is active.
func (p *filterPanel) prevMonth() {
	if p.monthPage == monthPageAll {
		p.monthPage = 0
		return
	}
	p.monthPage--
}

// reset clears every selection back to the unfiltered state.
func (p *filterPanel) reset() {
	p.issueIdx = 0
	p.durationIdx = 0
	p.weekdayIdx = 0
	p.monthPage = monthPageAll
}

// monthInterval returns the calendar month selected by the pager. The second
// return value is false when date filtering is disabled.
func (p *filterPanel) monthInterval() (reports.Interval, bool) {
	if p.monthPage > 0 {
		return reports.Interval{}, false
	}
	now := p.now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, p.monthPage, 0)
	return reports.Interval{Start: start, End: start.AddDate(0, 1, 0)}, true
}

// filterSet converts the current selections into a complete filter set. Every
// call builds the set from scratch, so applying it replaces whatever the
// store had before.
func (p *filterPanel) filterSet() reports.FilterSet {
	fs := reports.FilterSet{}
	if p.issueIdx > 0 {
		fs[filterKeyIssues] = reports.NewIssuesFilter([]string{reports.IssueTags()[p.issueIdx-1]})
	}
	if p.durationIdx > 0 {
		fs[filterKeyDuration] = reports.NewDurationFilter([]string{reports.Durations()[p.durationIdx-1]})
	}
	if p.weekdayIdx > 0 {
		// the preset names come from a fixed list, so constructing the
		// filter can not fail.
		f, _ := reports.NewWeekdayFilter(weekdayGroups[p.weekdayIdx].names)
		fs[filterKeyWeekday] = f
	}
	if iv, ok := p.monthInterval(); ok {
		f, _ := reports.NewDateRangeFilter([]reports.Interval{iv})
		fs[filterKeyDate] = f
	}
	return fs
}

// apply pushes the current selections into the store. Does nothing when the
// selections match the filters the store already holds, so repeated
// keypresses that land on the same state do not trigger a refresh cascade.
func (p *filterPanel) apply() {
	fs := p.filterSet()
	if fs.Equal(p.Store().Filters()) {
		return
	}
	p.Store().SetFilters(fs)
	p.Track("filters_changed", map[string]string{
		"issues":   p.issueLabel(),
		"duration": p.durationLabel(),
		"weekday":  weekdayGroups[p.weekdayIdx].label,
		"month":    p.monthLabel(),
	})
}

func (p *filterPanel) issueLabel() string {
	if p.issueIdx == 0 {
		return "all issues"
	}
	return reports.IssueTags()[p.issueIdx-1]
}

func (p *filterPanel) durationLabel() string {
	if p.durationIdx == 0 {
		return "all durations"
	}
	return reports.Durations()[p.durationIdx-1]
}

func (p *filterPanel) monthLabel() string {
	iv, ok := p.monthInterval()
	if !ok {
		return "all time"
	}
	return iv.Start.Format("Jan 2006")
}

// summary returns a single line describing the active selections, shown next
// to the navigation bar.
func (p *filterPanel) summary() string {
	parts := []string{
		p.issueLabel(),
		p.durationLabel(),
		weekdayGroups[p.weekdayIdx].label,
		p.monthLabel(),
	}
	return strings.Join(parts, " │ ")
}
