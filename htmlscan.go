// Package htmlscan provides a CLI tool that recursively scans a directory
// tree for HTML files containing any of a list of keywords, and writes a
// text report grouping the matching files by the keyword they contained.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, slog/).
package htmlscan
