package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/htmlscan"
	"github.com/fwojciec/htmlscan/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportWriter_WriteReport(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteReportFn", func(t *testing.T) {
		t.Parallel()

		var calledPath string
		var calledResult *htmlscan.ScanResult
		w := &mock.ReportWriter{
			WriteReportFn: func(_ context.Context, path string, result *htmlscan.ScanResult) error {
				calledPath = path
				calledResult = result
				return nil
			},
		}

		result := &htmlscan.ScanResult{
			Root:  "/site",
			Index: htmlscan.MatchIndex{"form": {"/site/a.html"}},
		}

		err := w.WriteReport(context.Background(), "results.txt", result)

		require.NoError(t, err)
		assert.Equal(t, "results.txt", calledPath)
		assert.Equal(t, result, calledResult)
	})
}
