package mock

import (
	"context"

	"github.com/fwojciec/htmlscan"
)

var _ htmlscan.Scanner = (*Scanner)(nil)

// Scanner is a mock implementation of htmlscan.Scanner.
type Scanner struct {
	ScanFn func(ctx context.Context, root string, keywords []string, progress htmlscan.ScanProgressFunc) (*htmlscan.ScanResult, error)
}

func (s *Scanner) Scan(ctx context.Context, root string, keywords []string, progress htmlscan.ScanProgressFunc) (*htmlscan.ScanResult, error) {
	return s.ScanFn(ctx, root, keywords, progress)
}
