// Package slog provides logging decorators for htmlscan domain interfaces
// using the standard library's log/slog.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/htmlscan"
)

// Ensure LoggingScanner implements htmlscan.Scanner.
var _ htmlscan.Scanner = (*LoggingScanner)(nil)

// LoggingScanner wraps a Scanner with progress and summary logging.
type LoggingScanner struct {
	next   htmlscan.Scanner
	logger *slog.Logger
}

// NewLoggingScanner creates a new LoggingScanner.
func NewLoggingScanner(next htmlscan.Scanner, logger *slog.Logger) *LoggingScanner {
	return &LoggingScanner{next: next, logger: logger}
}

// Scan delegates to the wrapped scanner and logs the operation. Each
// visited file is logged at debug level, each warning at warn level, and
// the scan summary at info level.
func (s *LoggingScanner) Scan(ctx context.Context, root string, keywords []string, progress htmlscan.ScanProgressFunc) (*htmlscan.ScanResult, error) {
	begin := time.Now()

	wrapped := func(p htmlscan.ScanProgress) {
		if p.Error != nil {
			s.logger.Debug("scan file", "path", p.Path, "err", p.Error)
		} else {
			s.logger.Debug("scan file", "path", p.Path, "matched", len(p.Keywords))
		}
		if progress != nil {
			progress(p)
		}
	}

	result, err := s.next.Scan(ctx, root, keywords, wrapped)
	if err != nil {
		s.logger.Error("scan", "root", root, "err", err)
		return nil, err
	}

	matched := 0
	for _, k := range result.Index.Keywords() {
		matched += len(result.Index.Files(k))
	}
	s.logger.Info("scan",
		"id", result.ID,
		"root", result.Root,
		"keywords", len(result.Keywords),
		"files", len(result.Files),
		"matched", matched,
		"warnings", len(result.Warnings),
		"duration", time.Since(begin),
	)
	for _, w := range result.Warnings {
		s.logger.Warn("skipped", "path", w.Path, "reason", w.Message)
	}

	return result, nil
}
