package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/thomassth/bikespace-v2"
	"github.com/thomassth/bikespace-v2/api"
	"github.com/thomassth/bikespace-v2/database/sqlite"
	"github.com/thomassth/bikespace-v2/reports"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// eventLogger records UI interaction events into the application log.
type eventLogger struct {
	l *slog.Logger
}

func (n eventLogger) Notify(event string, props map[string]string) error {
	attrs := make([]any, 0, len(props))
	for k, v := range props {
		attrs = append(attrs, slog.String(k, v))
	}
	n.l.With(attrs...).Info("event", slog.String("name", event))
	return nil
}

func main() {
	configDir, err := os.UserConfigDir()
	if err != nil {
		logger.Warn("failed to determine user config directory", slog.String("error", err.Error()))
	}
	var (
		dbFile     = path.Join(configDir, "bikespace", "cache.db")
		apiURL     = api.DefaultBaseURL
		limit      = api.DefaultPageSize
		offline    bool
		exportPath = "bikespace-report.pdf"
	)
	flag.StringVar(&dbFile, "db", dbFile, "Report cache location")
	flag.StringVar(&apiURL, "api", apiURL, "BikeSpace API base URL")
	flag.IntVar(&limit, "limit", limit, "Maximum number of reports to fetch")
	flag.BoolVar(&offline, "offline", offline, "Skip fetching and use cached reports only")
	flag.StringVar(&exportPath, "export", exportPath, "File path for PDF chart exports")
	flag.Parse()

	logger.Info("opening report cache", slog.String("database", dbFile))
	cache, err := sqlite.Open(dbFile, sqlite.UseLogger(logger))
	if err != nil {
		logger.Error("failed to open report cache", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = cache.Close() }()

	var set []reports.Report
	if !offline {
		client := api.NewClient(api.UseLogger(logger), api.UseBaseURL(apiURL))
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		set, err = client.Submissions(ctx, limit)
		cancel()
		switch {
		case err != nil:
			logger.Warn("fetching reports failed, falling back to cache", slog.String("error", err.Error()))
		default:
			logger.Info("fetched reports", slog.Int("count", len(set)))
			if err = cache.SaveReports(set); err != nil {
				logger.Warn("failed to cache reports", slog.String("error", err.Error()))
			}
		}
	}
	if set == nil {
		if set, err = cache.Reports(); err != nil {
			logger.Error("failed to load cached reports", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if syncedAt, err := cache.SyncedAt(); err == nil && !syncedAt.IsZero() {
			logger.Info("using cached reports", slog.Int("count", len(set)), slog.Time("syncedAt", syncedAt))
		}
	}

	store := reports.NewStore(set, reports.WithLogger(logger))
	err = bikespace.Run(store,
		bikespace.UseLogger(logger),
		bikespace.UseExportPath(exportPath),
		bikespace.UseNotifier(eventLogger{l: logger}),
	)
	if err != nil {
		logger.Error("run error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
