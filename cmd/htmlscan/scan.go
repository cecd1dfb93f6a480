package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fwojciec/htmlscan"
)

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	absDir, err := filepath.Abs(c.Dir)
	if err != nil {
		absDir = c.Dir
	}

	quoted := make([]string, len(c.Keywords))
	for i, k := range c.Keywords {
		quoted[i] = strconv.Quote(k)
	}
	fmt.Fprintf(deps.Stdout, "Scanning directory: %s\n", absDir)
	fmt.Fprintf(deps.Stdout, "Output file: %s\n", c.Output)
	fmt.Fprintf(deps.Stdout, "Looking for keywords: %s\n\n", strings.Join(quoted, ", "))

	progress := func(p htmlscan.ScanProgress) {
		for _, keyword := range p.Keywords {
			fmt.Fprintf(deps.Stdout, "Found %q in: %s\n", keyword, p.Path)
		}
	}

	result, err := deps.Scanner.Scan(deps.Ctx, c.Dir, c.Keywords, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmlscan.ErrorMessage(err))
		return err
	}

	if err := deps.Reports.WriteReport(deps.Ctx, c.Output, result); err != nil {
		fmt.Fprintf(deps.Stderr, "error: could not write report to %q: %s\n", c.Output, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "\nScan complete. Results saved to %s\n", c.Output)
	return nil
}
