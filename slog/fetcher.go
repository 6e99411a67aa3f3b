// Package slog provides log/slog-based logging decorators and the CLI
// logger configuration.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagewatch"
)

// Ensure LoggingFetcher implements pagewatch.Fetcher at compile time.
var _ pagewatch.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging of each fetch.
type LoggingFetcher struct {
	next   pagewatch.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next pagewatch.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome with size and
// duration.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	body, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Debug("fetch", "url", url, "duration", time.Since(begin), "err", err)
		return "", err
	}
	f.logger.Debug("fetch", "url", url, "bytes", len(body), "duration", time.Since(begin))
	return body, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
