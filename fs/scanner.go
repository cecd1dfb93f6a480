// Package fs provides filesystem-based implementations of the htmlscan
// domain interfaces: a directory-walking scanner and a report writer.
package fs

import (
	"bufio"
	"context"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/htmlscan"
	"github.com/google/uuid"
)

// maxLineSize bounds a single line read from an HTML file. Minified HTML
// often arrives as one very long line.
const maxLineSize = 10 * 1024 * 1024

// Ensure Scanner implements htmlscan.Scanner at compile time.
var _ htmlscan.Scanner = (*Scanner)(nil)

// Scanner scans a directory tree for HTML files containing keywords.
// File traversal is lexicographic within each directory, so results are
// deterministic for a given tree.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan walks the tree rooted at root and matches every .html/.htm file
// against the keywords. Unreadable files and subdirectories become warnings
// on the result; the scan itself only fails on invalid input.
func (s *Scanner) Scan(ctx context.Context, root string, keywords []string, progress htmlscan.ScanProgressFunc) (*htmlscan.ScanResult, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, htmlscan.Errorf(htmlscan.EINVALID, "scan root %q is not a directory", root)
	}

	kws := canonicalKeywords(keywords)
	if len(kws) == 0 {
		return nil, htmlscan.Errorf(htmlscan.EINVALID, "at least one keyword is required")
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	result := &htmlscan.ScanResult{
		ID:    uuid.New().String(),
		Root:  absRoot,
		Index: htmlscan.MatchIndex{},
	}
	for _, k := range kws {
		result.Keywords = append(result.Keywords, k.display)
	}

	err = filepath.WalkDir(absRoot, func(path string, d iofs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Unreadable entry: record and keep walking.
			result.Warnings = append(result.Warnings, htmlscan.Warning{Path: path, Message: walkErr.Error()})
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.Type().IsRegular() || !isHTML(path) {
			return nil
		}
		s.scanFile(path, d, kws, result, progress)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// scanFile reads one HTML file line by line and credits each keyword found
// in it. A file is credited to a keyword at most once no matter how many
// lines match.
func (s *Scanner) scanFile(path string, d iofs.DirEntry, keywords []keyword, result *htmlscan.ScanResult, progress htmlscan.ScanProgressFunc) {
	f, err := os.Open(path)
	if err != nil {
		result.Warnings = append(result.Warnings, htmlscan.Warning{Path: path, Message: err.Error()})
		if progress != nil {
			progress(htmlscan.ScanProgress{Path: path, Error: err})
		}
		return
	}
	defer f.Close()

	hash := xxhash.New()
	scanner := bufio.NewScanner(io.TeeReader(f, hash))
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	found := make(map[string]bool)
	for scanner.Scan() {
		line := strings.ToLower(scanner.Text())
		for _, k := range keywords {
			if !found[k.display] && strings.Contains(line, k.lower) {
				found[k.display] = true
			}
		}
	}
	if err := scanner.Err(); err != nil {
		// Keep credits found before the read error.
		result.Warnings = append(result.Warnings, htmlscan.Warning{Path: path, Message: err.Error()})
	}

	var size int64
	if info, err := d.Info(); err == nil {
		size = info.Size()
	}
	result.Files = append(result.Files, htmlscan.ScannedFile{
		Path:        path,
		Size:        size,
		ContentHash: fmt.Sprintf("%x", hash.Sum64()),
	})

	var matched []string
	for _, k := range keywords {
		if found[k.display] {
			result.Index.Add(k.display, path)
			matched = append(matched, k.display)
		}
	}
	if progress != nil {
		progress(htmlscan.ScanProgress{Path: path, Keywords: matched})
	}
}

// keyword pairs a caller-supplied spelling with its lowercase form used for
// matching.
type keyword struct {
	display string
	lower   string
}

// canonicalKeywords drops empty strings and collapses spellings that are
// case-insensitively equal, keeping the first-seen spelling and caller order.
func canonicalKeywords(raw []string) []keyword {
	seen := make(map[string]bool)
	var out []keyword
	for _, r := range raw {
		if r == "" {
			continue
		}
		lower := strings.ToLower(r)
		if seen[lower] {
			continue
		}
		seen[lower] = true
		out = append(out, keyword{display: r, lower: lower})
	}
	return out
}

func isHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}
