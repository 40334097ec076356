package sqlite

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/thomassth/bikespace-v2/reports"
)

// ptrNonZero returns a pointer to a copy of given value or nil if value is
// the zero value of the type.
func ptrNonZero[T comparable](v T) *T {
	if *new(T) == v {
		return nil
	}
	return &v
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanReport(row scanner) (*reports.Report, error) {
	var (
		id          int64
		lat, lon    float64
		parked      string
		duration    string
		issues      string
		comments    *string
	)
	if err := row.Scan(&id, &lat, &lon, &parked, &duration, &issues, &comments); err != nil {
		return nil, fmt.Errorf("row.Scan: %w", err)
	}
	report := reports.Report{
		ID:              id,
		Latitude:        lat,
		Longitude:       lon,
		ParkingDuration: duration,
	}
	if comments != nil {
		report.Comments = *comments
	}
	var err error
	if report.ParkingTime, err = time.Parse(time.RFC3339Nano, parked); err != nil {
		return nil, fmt.Errorf("time.Parse(parking_time): %w", err)
	}
	if report.Issues, err = decodeIssues(issues); err != nil {
		return nil, fmt.Errorf("decode issues: %w", err)
	}
	return &report, nil
}

// Issue tags are stored as a JSON array in a single text column; the set is
// small and only ever read back as a whole.
func encodeIssues(issues []string) (string, error) {
	if len(issues) == 0 {
		return "[]", nil
	}
	raw, err := json.Marshal(issues)
	if err != nil {
		return "", fmt.Errorf("json.Marshal: %w", err)
	}
	return string(raw), nil
}

func decodeIssues(value string) ([]string, error) {
	if value == "" || value == "[]" {
		return nil, nil
	}
	var issues []string
	if err := json.Unmarshal([]byte(value), &issues); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}
	return issues, nil
}
