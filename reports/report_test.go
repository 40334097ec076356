package reports

import (
	"testing"
	"time"
)

func Test_Report_Weekday(t *testing.T) {
	tests := []struct {
		name   string
		parked time.Time
		want   int
	}{
		{name: "monday", parked: time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC), want: 1},
		{name: "wednesday", parked: time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC), want: 3},
		{name: "saturday", parked: time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC), want: 6},
		{name: "sunday maps to seven", parked: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC), want: 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Report{ParkingTime: tt.parked}
			if got := r.Weekday(); got != tt.want {
				t.Errorf("Weekday() = %d, want %d", got, tt.want)
			}
		})
	}
}

func Test_Report_HasIssue(t *testing.T) {
	r := Report{Issues: []string{IssueFull, IssueOther}}
	if !r.HasIssue(IssueFull) {
		t.Error("HasIssue(full) = false, want true")
	}
	if r.HasIssue(IssueDamaged) {
		t.Error("HasIssue(damaged) = true, want false")
	}
}

func Test_Report_DashboardURL(t *testing.T) {
	r := Report{ID: 1234}
	want := "https://app.bikespace.ca/dashboard?submission_id=1234"
	if got := r.DashboardURL(); got != want {
		t.Errorf("DashboardURL() = %q, want %q", got, want)
	}
}
