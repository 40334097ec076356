package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const sampleResponse = `{
	"submissions": [
		{
			"id": 11,
			"latitude": 43.6532,
			"longitude": -79.3832,
			"parking_time": "2024-03-04 14:30:00",
			"parking_duration": "hours",
			"issues": ["full"],
			"comments": "no free rings"
		},
		{
			"id": 12,
			"latitude": 43.66,
			"longitude": -79.4,
			"parking_time": "2024-03-09 08:15:00.123456",
			"parking_duration": "minutes",
			"issues": [],
			"comments": null
		},
		{
			"id": 13,
			"latitude": 43.67,
			"longitude": -79.41,
			"parking_time": "not a timestamp",
			"parking_duration": "hours",
			"issues": ["damaged"],
			"comments": null
		}
	]
}`

func Test_Client_Submissions(t *testing.T) {
	var gotPath, gotLimit string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotLimit = r.URL.Query().Get("limit")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	c := NewClient(UseBaseURL(srv.URL))
	got, err := c.Submissions(context.Background(), 100)
	if err != nil {
		t.Fatalf("Submissions() error = %v", err)
	}
	if gotPath != "/submissions" {
		t.Errorf("request path = %q, want %q", gotPath, "/submissions")
	}
	if gotLimit != "100" {
		t.Errorf("limit parameter = %q, want %q", gotLimit, "100")
	}
	// the malformed submission is skipped, the rest sorted newest first
	if len(got) != 2 {
		t.Fatalf("Submissions() returned %d reports, want 2", len(got))
	}
	if got[0].ID != 12 || got[1].ID != 11 {
		t.Errorf("Submissions() order = [%d %d], want [12 11]", got[0].ID, got[1].ID)
	}
	if want := time.Date(2024, 3, 4, 14, 30, 0, 0, time.UTC); !got[1].ParkingTime.Equal(want) {
		t.Errorf("ParkingTime = %s, want instant %s", got[1].ParkingTime, want)
	}
	if got[1].Comments != "no free rings" {
		t.Errorf("Comments = %q, want %q", got[1].Comments, "no free rings")
	}
	if got[0].Comments != "" {
		t.Errorf("null comments mapped to %q, want empty string", got[0].Comments)
	}
}

func Test_Client_Submissions_badStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(UseBaseURL(srv.URL))
	if _, err := c.Submissions(context.Background(), 0); err == nil {
		t.Error("Submissions() expected error for non-200 response")
	}
}

func Test_parseParkingTime(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "plain",
			value: "2024-03-04 14:30:00",
			want:  time.Date(2024, 3, 4, 14, 30, 0, 0, time.UTC),
		},
		{
			name:  "fractional seconds dropped",
			value: "2024-03-04 14:30:00.987654",
			want:  time.Date(2024, 3, 4, 14, 30, 0, 0, time.UTC),
		},
		{name: "garbage", value: "yesterday-ish", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseParkingTime(tt.value, time.UTC)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseParkingTime() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("parseParkingTime() = %s, want %s", got, tt.want)
			}
		})
	}
}
