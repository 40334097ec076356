// Package api provides a read-only client for the BikeSpace submissions API.
//
// The API returns user submitted bicycle-parking incident reports. Parking
// times come over the wire as naive "2006-01-02 15:04:05" strings in UTC,
// sometimes with a fractional second part; the client normalizes them to
// timezone-aware values in America/Toronto, matching how the web dashboard
// presents them.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/thomassth/bikespace-v2/reports"
)

const (
	// DefaultBaseURL is the public BikeSpace API.
	DefaultBaseURL = "https://api-dev.bikespace.ca/api/v2"
	// DefaultPageSize is large enough to fetch the whole submission set in
	// one request, which is how the dashboard loads its dataset.
	DefaultPageSize = 5000

	// parkingTimeLayout is the wire format of the parking_time field, without
	// the optional fractional seconds.
	parkingTimeLayout = "2006-01-02 15:04:05"
)

// Option defines a function that configures the client. Use with NewClient.
type Option func(c *Client)

// UseLogger sets the logger for the client. If nil, a logger based on
// slog.DiscardHandler is used as default.
func UseLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		c.l = l
	}
}

// UseBaseURL points the client at a different API root.
func UseBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// UseHTTPClient replaces the underlying HTTP client.
func UseHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// Client fetches submissions from the BikeSpace API.
type Client struct {
	baseURL string
	http    *http.Client
	l       *slog.Logger
	loc     *time.Location
}

// NewClient returns a client for the BikeSpace API, talking to DefaultBaseURL
// unless configured otherwise.
func NewClient(options ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		l:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range options {
		opt(c)
	}
	loc, err := time.LoadLocation("America/Toronto")
	if err != nil {
		c.l.Warn("America/Toronto tzdata unavailable, keeping times in UTC", slog.String("error", err.Error()))
		loc = time.UTC
	}
	c.loc = loc
	return c
}

// submission mirrors one entry of the API response.
type submission struct {
	ID              int64    `json:"id"`
	Latitude        float64  `json:"latitude"`
	Longitude       float64  `json:"longitude"`
	ParkingTime     string   `json:"parking_time"`
	ParkingDuration string   `json:"parking_duration"`
	Issues          []string `json:"issues"`
	Comments        *string  `json:"comments"`
}

type submissionsResponse struct {
	Submissions []submission `json:"submissions"`
}

// Submissions fetches up to limit submissions and returns them as reports,
// sorted by parking time descending (most recent first). limit values of
// zero or less fall back to DefaultPageSize.
func (c *Client) Submissions(ctx context.Context, limit int) ([]reports.Report, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	endpoint := c.baseURL + "/submissions?" + url.Values{"limit": {strconv.Itoa(limit)}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}
	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http.Do: %w", err)
	}
	defer func() { _ = res.Body.Close() }()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected response status: %s", res.Status)
	}
	var payload submissionsResponse
	if err = json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	out := make([]reports.Report, 0, len(payload.Submissions))
	for _, sub := range payload.Submissions {
		var report reports.Report
		if report, err = sub.asReport(c.loc); err != nil {
			c.l.Warn("skipping malformed submission",
				slog.Int64("id", sub.ID),
				slog.String("error", err.Error()))
			continue
		}
		out = append(out, report)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ParkingTime.After(out[j].ParkingTime)
	})
	c.l.Info("submissions fetched", slog.Int("count", len(out)))
	return out, nil
}

func (sub submission) asReport(loc *time.Location) (reports.Report, error) {
	parked, err := parseParkingTime(sub.ParkingTime, loc)
	if err != nil {
		return reports.Report{}, fmt.Errorf("parse parking_time: %w", err)
	}
	report := reports.Report{
		ID:              sub.ID,
		Latitude:        sub.Latitude,
		Longitude:       sub.Longitude,
		ParkingTime:     parked,
		ParkingDuration: sub.ParkingDuration,
		Issues:          sub.Issues,
	}
	if sub.Comments != nil {
		report.Comments = *sub.Comments
	}
	return report, nil
}

// parseParkingTime parses the API wire format. The fractional second part is
// dropped before parsing; the timestamp is UTC on the wire and converted to
// the given location.
func parseParkingTime(value string, loc *time.Location) (time.Time, error) {
	base, _, _ := strings.Cut(value, ".")
	parsed, err := time.ParseInLocation(parkingTimeLayout, base, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("time.ParseInLocation: %w", err)
	}
	return parsed.In(loc), nil
}
