package bikespace

import (
	"slices"
	"strconv"
	"strings"

	"github.com/thomassth/bikespace-v2/reports"
)

// tally is a labeled report count for a breakdown view.
type tally struct {
	label string
	count int
}

type tallyFunc func([]reports.Report) []tally

// breakdownView counts the displayed reports along one dimension and renders
// the counts as labeled horizontal bars. The counting function decides the
// dimension, the rest is shared between the breakdown views.
type breakdownView struct {
	*reports.Component
	name  string
	count tallyFunc
	rows  []tally
	total int
}

func newBreakdownView(store *reports.Store, name, rootID string, count tallyFunc, options ...reports.ComponentOption) *breakdownView {
	v := &breakdownView{name: name, count: count}
	v.Component = reports.NewComponent(store, rootID, v, options...)
	return v
}

func newIssuesView(store *reports.Store, options ...reports.ComponentOption) *breakdownView {
	return newBreakdownView(store, "Issues", "issue breakdown", tallyIssues, options...)
}

func newWeekdaysView(store *reports.Store, options ...reports.ComponentOption) *breakdownView {
	return newBreakdownView(store, "Weekdays", "weekday breakdown", tallyWeekdays, options...)
}

func newDurationsView(store *reports.Store, options ...reports.ComponentOption) *breakdownView {
	return newBreakdownView(store, "Durations", "duration breakdown", tallyDurations, options...)
}

func (v *breakdownView) Refresh() {
	display := v.Store().DisplayData()
	v.rows = v.count(display)
	v.total = len(display)
}

func (v *breakdownView) Name() string { return v.name }

func (v *breakdownView) Render(width, _ int) string {
	var labelWidth int
	for _, row := range v.rows {
		labelWidth = max(labelWidth, len(row.label))
	}
	var peak int
	for _, row := range v.rows {
		peak = max(peak, row.count)
	}
	barWidth := min(width-labelWidth-12, 50)
	var doc strings.Builder
	doc.WriteString(styleViewTitle.Render(v.name + " (" + strconv.Itoa(v.total) + " reports)"))
	doc.WriteString("\n\n")
	for _, row := range v.rows {
		doc.WriteString(padLabel(row.label, labelWidth))
		doc.WriteString(" ")
		doc.WriteString(styleCountBar.Render(countBar(row.count, peak, barWidth)))
		doc.WriteString(" ")
		doc.WriteString(strconv.Itoa(row.count))
		doc.WriteString("\n")
	}
	return doc.String()
}

// tallyIssues counts reports per issue tag, known tags in display order
// first, unknown tags alphabetically after them. A report carrying several
// tags counts once for each.
func tallyIssues(set []reports.Report) []tally {
	counts := map[string]int{}
	for _, r := range set {
		for _, tag := range r.Issues {
			counts[tag]++
		}
	}
	known := reports.IssueTags()
	rows := make([]tally, 0, len(known))
	for _, tag := range known {
		rows = append(rows, tally{label: tag, count: counts[tag]})
		delete(counts, tag)
	}
	extra := make([]string, 0, len(counts))
	for tag := range counts {
		extra = append(extra, tag)
	}
	slices.Sort(extra)
	for _, tag := range extra {
		rows = append(rows, tally{label: tag, count: counts[tag]})
	}
	return rows
}

// tallyWeekdays counts reports per weekday, Monday first.
func tallyWeekdays(set []reports.Report) []tally {
	labels := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	counts := make([]int, 8)
	for _, r := range set {
		counts[r.Weekday()]++
	}
	rows := make([]tally, 0, len(labels))
	for i, label := range labels {
		rows = append(rows, tally{label: label, count: counts[i+1]})
	}
	return rows
}

// tallyDurations counts reports per parking duration category, in display
// order. Durations outside the known set land in an extra bucket.
func tallyDurations(set []reports.Report) []tally {
	known := reports.Durations()
	counts := map[string]int{}
	for _, r := range set {
		counts[r.ParkingDuration]++
	}
	rows := make([]tally, 0, len(known))
	var other int
	for _, d := range known {
		rows = append(rows, tally{label: d, count: counts[d]})
		delete(counts, d)
	}
	for _, n := range counts {
		other += n
	}
	if other > 0 {
		rows = append(rows, tally{label: "other", count: other})
	}
	return rows
}

// countBar renders a horizontal bar scaled against the largest count.
func countBar(count, peak, width int) string {
	if peak == 0 || width <= 0 {
		return ""
	}
	filled := count * width / peak
	if count > 0 && filled == 0 {
		filled = 1
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func padLabel(label string, width int) string {
	if len(label) >= width {
		return label
	}
	return label + strings.Repeat(" ", width-len(label))
}
