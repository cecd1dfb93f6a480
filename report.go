package htmlscan

import "strings"

// sectionBanner separates keyword sections in the rendered report.
const sectionBanner = "=================================================="

// FormatReport renders a scan result as the text report written to the
// output file. Keywords are ordered lexicographically; files within a
// keyword section keep traversal order.
func FormatReport(result *ScanResult) string {
	var b strings.Builder
	b.WriteString("Scan results for directory: ")
	b.WriteString(result.Root)
	b.WriteString("\n")

	if len(result.Index) == 0 {
		b.WriteString("\nNo files were found containing the specified keywords.\n")
		return b.String()
	}

	for _, keyword := range result.Index.Keywords() {
		b.WriteString("\n")
		b.WriteString(sectionBanner)
		b.WriteString("\nFiles containing keyword: \"")
		b.WriteString(keyword)
		b.WriteString("\"\n")
		b.WriteString(sectionBanner)
		b.WriteString("\n")
		for _, path := range result.Index.Files(keyword) {
			b.WriteString(path)
			b.WriteString("\n")
		}
	}

	return b.String()
}
