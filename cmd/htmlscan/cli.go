package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/htmlscan"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Scanner htmlscan.Scanner
	Reports htmlscan.ReportWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Scan ScanCmd `cmd:"" default:"withargs" help:"Scan a directory tree for HTML files containing keywords"`
}

// ScanCmd is the "scan" subcommand. It is the default command, so
// "htmlscan <dir> <keyword>..." works without naming it.
type ScanCmd struct {
	Dir      string   `arg:"" help:"Directory to scan"`
	Keywords []string `arg:"" help:"Keywords to search for (case-insensitive)"`
	Output   string   `short:"o" default:"output.txt" env:"HTMLSCAN_OUTPUT" help:"Report output file"`
}
