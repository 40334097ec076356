// Package sqlite implements a local cache for BikeSpace submissions on top
// of SQLite.
//
// The dashboard fetches the full submission set from the API on startup and
// mirrors it here, so later runs still have data when the API is slow or
// unreachable.
package sqlite

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/glebarez/go-sqlite"

	"github.com/thomassth/bikespace-v2/reports"
)

//go:embed schema.sql
var schema string

const (
	selectSubmissions = `SELECT "id", "latitude", "longitude", "parking_time", "parking_duration", "issues", "comments" FROM submissions ORDER BY "parking_time" DESC`
	upsertSubmission  = `INSERT INTO submissions ("id", "latitude", "longitude", "parking_time", "parking_duration", "issues", "comments")
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT ("id") DO UPDATE SET
			"latitude" = excluded."latitude",
			"longitude" = excluded."longitude",
			"parking_time" = excluded."parking_time",
			"parking_duration" = excluded."parking_duration",
			"issues" = excluded."issues",
			"comments" = excluded."comments"`
	selectSyncedAt = `SELECT "value" FROM metadata WHERE "key" = 'synced_at'`
	upsertSyncedAt = `INSERT INTO metadata ("key", "value") VALUES ('synced_at', $1)
		ON CONFLICT ("key") DO UPDATE SET "value" = excluded."value"`
)

// Cache is the local submission cache.
type Cache struct {
	db *sql.DB
	l  *slog.Logger
}

// Option defines a function that configures the cache. Use with Open.
type Option func(c *Cache)

// UseLogger sets the logger for the cache. If nil, a logger based on
// slog.DiscardHandler is used as default.
func UseLogger(l *slog.Logger) Option {
	return func(c *Cache) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		c.l = l
	}
}

// Open opens the cache database at the given location, creating the file and
// schema when missing.
func Open(dbFile string, options ...Option) (*Cache, error) {
	// Make sure the database location (directory) exists. The operation
	// returns no error if the directory already exists.
	if err := os.MkdirAll(filepath.Dir(dbFile), 0755); err != nil {
		return nil, fmt.Errorf("create data directory: os.MkdirAll: %w", err)
	}
	db, err := sql.Open("sqlite", dbFile+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err = db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	c := &Cache{db: db, l: slog.New(slog.DiscardHandler)}
	for _, opt := range options {
		opt(c)
	}
	return c, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// SaveReports mirrors the given reports into the cache and stamps the sync
// time. Existing rows with the same submission ID are overwritten. The write
// happens in a transaction, so the result is all or nothing.
func (c *Cache) SaveReports(set []reports.Report) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	for _, r := range set {
		var issues string
		if issues, err = encodeIssues(r.Issues); err != nil {
			return c.rollback(tx, fmt.Errorf("encode issues: %w", err))
		}
		if _, err = tx.Exec(upsertSubmission,
			r.ID,
			r.Latitude,
			r.Longitude,
			r.ParkingTime.Format(time.RFC3339Nano),
			r.ParkingDuration,
			issues,
			ptrNonZero(r.Comments),
		); err != nil {
			return c.rollback(tx, fmt.Errorf("tx.Exec: %w", err))
		}
	}
	if _, err = tx.Exec(upsertSyncedAt, time.Now().UTC().Format(time.RFC3339Nano)); err != nil {
		return c.rollback(tx, fmt.Errorf("tx.Exec(synced_at): %w", err))
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	c.l.Debug("reports cached", slog.Int("count", len(set)))
	return nil
}

// Reports returns all cached reports, most recent parking time first.
func (c *Cache) Reports() ([]reports.Report, error) {
	res, err := c.db.Query(selectSubmissions)
	if err != nil {
		return nil, fmt.Errorf("db.Query: %w", err)
	}
	defer func() { _ = res.Close() }()
	var out []reports.Report
	for res.Next() {
		var report *reports.Report
		if report, err = scanReport(res); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		out = append(out, *report)
	}
	if err = res.Err(); err != nil {
		return nil, fmt.Errorf("res.Err: %w", err)
	}
	return out, nil
}

// SyncedAt returns the time of the last successful SaveReports, or the zero
// time when the cache has never been filled.
func (c *Cache) SyncedAt() (time.Time, error) {
	var value string
	if err := c.db.QueryRow(selectSyncedAt).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("row.Scan: %w", err)
	}
	synced, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("time.Parse(synced_at): %w", err)
	}
	return synced, nil
}

func (c *Cache) rollback(tx *sql.Tx, err error) error {
	if rollbackErr := tx.Rollback(); rollbackErr != nil {
		c.l.Warn("failed to rollback transaction", slog.String("error", rollbackErr.Error()))
	}
	return err
}
