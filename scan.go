package htmlscan

import (
	"context"
	"slices"
)

// ScannedFile records a single HTML file visited by a scan.
type ScannedFile struct {
	Path        string `json:"path"`
	Size        int64  `json:"size"`
	ContentHash string `json:"contentHash"`
}

// Warning records a file or directory that could not be read during a scan.
// Warnings never abort a scan; they are surfaced alongside the result.
type Warning struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// MatchIndex maps a keyword to the files that contain it, in traversal
// order. A path appears at most once per keyword.
type MatchIndex map[string][]string

// Add credits path to keyword, preserving first-seen order.
// Adding the same (keyword, path) pair again is a no-op.
func (m MatchIndex) Add(keyword, path string) {
	if slices.Contains(m[keyword], path) {
		return
	}
	m[keyword] = append(m[keyword], path)
}

// Keywords returns the keywords with at least one match, sorted
// lexicographically.
func (m MatchIndex) Keywords() []string {
	keywords := make([]string, 0, len(m))
	for k := range m {
		keywords = append(keywords, k)
	}
	slices.Sort(keywords)
	return keywords
}

// Files returns the matching file paths for a keyword in traversal order.
func (m MatchIndex) Files(keyword string) []string {
	return m[keyword]
}

// ScanResult is the outcome of a single scan. It is built fresh per run and
// holds no state across runs.
type ScanResult struct {
	// ID uniquely identifies the scan run. Used for log correlation only.
	ID string `json:"id"`

	// Root is the absolute path of the scanned directory.
	Root string `json:"root"`

	// Keywords are the canonical keyword spellings searched for.
	Keywords []string `json:"keywords"`

	// Index groups matching file paths by keyword.
	Index MatchIndex `json:"index"`

	// Files lists every HTML file that was read, in traversal order.
	Files []ScannedFile `json:"files"`

	// Warnings lists files and directories that could not be read.
	Warnings []Warning `json:"warnings"`
}

// ScanProgress reports progress as files are scanned.
type ScanProgress struct {
	// Path of the HTML file that was just visited.
	Path string

	// Keywords found in the file, in canonical keyword order.
	Keywords []string

	// Error is set when the file could not be read.
	Error error
}

// ScanProgressFunc is called once per visited HTML file.
type ScanProgressFunc func(ScanProgress)

// Scanner walks a directory tree and matches HTML files against keywords.
// Implementations hide traversal order and I/O error recovery.
type Scanner interface {
	// Scan scans the tree rooted at root for the given keywords.
	// Returns EINVALID if root is not a directory or keywords is empty.
	// Unreadable files and subdirectories are recorded as warnings on the
	// result rather than aborting the scan. The progress callback may be
	// nil.
	Scan(ctx context.Context, root string, keywords []string, progress ScanProgressFunc) (*ScanResult, error)
}

// ReportWriter renders a scan result and writes it to a destination path.
// Implementations must leave either a complete report or no report at all.
type ReportWriter interface {
	WriteReport(ctx context.Context, path string, result *ScanResult) error
}
