package mock

import (
	"context"

	"github.com/fwojciec/htmlscan"
)

var _ htmlscan.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of htmlscan.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(ctx context.Context, path string, result *htmlscan.ScanResult) error
}

func (w *ReportWriter) WriteReport(ctx context.Context, path string, result *htmlscan.ScanResult) error {
	return w.WriteReportFn(ctx, path, result)
}
