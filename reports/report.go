// Package reports implements the shared state core of the BikeSpace
// dashboard: the immutable report dataset, composable report filters, and
// the store that keeps every registered dashboard component in sync whenever
// the active filters change.
//
// The package is designed for single-threaded use from a UI update loop.
// All store mutations are synchronous; when Store.SetFilters returns, every
// subscribed component has already observed the new display data.
package reports

import (
	"slices"
	"strconv"
	"time"
)

// Parking duration categories reported through the BikeSpace app.
const (
	DurationMinutes   = "minutes"
	DurationHours     = "hours"
	DurationOvernight = "overnight"
	DurationMultiday  = "multiday"
)

// Issue tags a submitter can attach to a report.
const (
	IssueAbandoned   = "abandoned"
	IssueDamaged     = "damaged"
	IssueFull        = "full"
	IssueNotProvided = "not_provided"
	IssueOther       = "other"
)

// Durations lists the known parking duration categories in display order.
func Durations() []string {
	return []string{DurationMinutes, DurationHours, DurationOvernight, DurationMultiday}
}

// IssueTags lists the known issue tags in display order.
func IssueTags() []string {
	return []string{IssueAbandoned, IssueDamaged, IssueFull, IssueNotProvided, IssueOther}
}

// Report is one submitted bicycle-parking incident. Reports are never
// mutated after ingestion; the dataset they form is filtered, not changed.
type Report struct {
	// ID of the submission, assigned by the BikeSpace API.
	ID int64
	// Latitude of the parking attempt, WGS84.
	Latitude float64
	// Longitude of the parking attempt, WGS84.
	Longitude float64
	// ParkingTime is when the parking attempt happened. Timezone-aware; the
	// API client normalizes submissions to America/Toronto.
	ParkingTime time.Time
	// ParkingDuration is one of the Duration* categories.
	ParkingDuration string
	// Issues holds zero or more of the Issue* tags.
	Issues []string
	// Comments is optional free text from the submitter.
	Comments string
}

// HasIssue reports whether the report lists the given issue tag.
func (r Report) HasIssue(tag string) bool {
	return slices.Contains(r.Issues, tag)
}

// Weekday returns the ISO-8601 weekday index of the parking time, with
// Monday as 1 and Sunday as 7.
func (r Report) Weekday() int {
	wd := int(r.ParkingTime.Weekday())
	if wd == 0 { // Sunday is zero in time.Weekday.
		wd = 7
	}
	return wd
}

// DashboardURL returns the permalink for the submission on the BikeSpace
// web dashboard.
func (r Report) DashboardURL() string {
	return "https://app.bikespace.ca/dashboard?submission_id=" + strconv.FormatInt(r.ID, 10)
}
