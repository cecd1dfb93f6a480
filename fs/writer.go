package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/htmlscan"
)

// Ensure Writer implements htmlscan.ReportWriter at compile time.
var _ htmlscan.ReportWriter = (*Writer)(nil)

// Writer writes scan reports to disk with atomic replace semantics.
// The report is rendered to a temporary file in the destination directory
// and renamed into place, so the destination ends up holding either the
// complete report or whatever was there before.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteReport renders the result and writes it to path, overwriting any
// existing file. Parent directories are created as needed.
func (w *Writer) WriteReport(ctx context.Context, path string, result *htmlscan.ScanResult) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(htmlscan.FormatReport(result)); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
