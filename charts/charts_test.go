package charts

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/thomassth/bikespace-v2/reports"
)

func chartReport(id int64, parked time.Time, issues ...string) reports.Report {
	return reports.Report{
		ID:              id,
		ParkingTime:     parked,
		ParkingDuration: reports.DurationHours,
		Issues:          issues,
	}
}

func Test_monthlyCounts(t *testing.T) {
	set := []reports.Report{
		chartReport(1, time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)),
		chartReport(2, time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC)),
		chartReport(3, time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)),
	}
	got := monthlyCounts(set)
	want := []labeledCount{
		{label: "2024-01", count: 2},
		{label: "2024-02", count: 0},
		{label: "2024-03", count: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("monthlyCounts() returned %d buckets, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("monthlyCounts()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func Test_monthlyCounts_empty(t *testing.T) {
	if got := monthlyCounts(nil); got != nil {
		t.Errorf("monthlyCounts(nil) = %v, want nil", got)
	}
}

func Test_issueCounts(t *testing.T) {
	set := []reports.Report{
		chartReport(1, time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC), reports.IssueFull, reports.IssueDamaged),
		chartReport(2, time.Date(2024, 1, 6, 10, 0, 0, 0, time.UTC), reports.IssueFull),
		chartReport(3, time.Date(2024, 1, 7, 10, 0, 0, 0, time.UTC)),
	}
	got := issueCounts(set)
	byLabel := make(map[string]int)
	for _, lc := range got {
		byLabel[lc.label] = lc.count
	}
	if byLabel[reports.IssueFull] != 2 {
		t.Errorf("issueCounts()[full] = %d, want 2", byLabel[reports.IssueFull])
	}
	if byLabel[reports.IssueDamaged] != 1 {
		t.Errorf("issueCounts()[damaged] = %d, want 1", byLabel[reports.IssueDamaged])
	}
	// known tags stay in display order even with zero counts
	if got[0].label != reports.IssueAbandoned {
		t.Errorf("issueCounts()[0].label = %q, want %q", got[0].label, reports.IssueAbandoned)
	}
}

func Test_weekdayCounts(t *testing.T) {
	set := []reports.Report{
		chartReport(1, time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)),  // Monday
		chartReport(2, time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)), // Sunday
		chartReport(3, time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC)), // Sunday
	}
	got := weekdayCounts(set)
	if len(got) != 7 {
		t.Fatalf("weekdayCounts() returned %d buckets, want 7", len(got))
	}
	if got[0].count != 1 {
		t.Errorf("Monday count = %d, want 1", got[0].count)
	}
	if got[6].count != 2 {
		t.Errorf("Sunday count = %d, want 2", got[6].count)
	}
}

func Test_ExportPDF(t *testing.T) {
	set := []reports.Report{
		chartReport(1, time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC), reports.IssueFull),
		chartReport(2, time.Date(2024, 4, 10, 10, 0, 0, 0, time.UTC), reports.IssueDamaged),
	}
	path := filepath.Join(t.TempDir(), "charts.pdf")
	if err := ExportPDF(path, set, "March to April 2024"); err != nil {
		t.Fatalf("ExportPDF() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("os.Stat() error = %v", err)
	}
	if info.Size() == 0 {
		t.Error("ExportPDF() wrote an empty file")
	}
}

func Test_DescribeRange(t *testing.T) {
	first := time.Date(2024, 1, 20, 22, 0, 0, 0, time.UTC)
	last := time.Date(2024, 3, 16, 9, 30, 0, 0, time.UTC)
	want := "between and including January 20, 2024 and March 16, 2024"
	if got := DescribeRange(first, last); got != want {
		t.Errorf("DescribeRange() = %q, want %q", got, want)
	}
}
