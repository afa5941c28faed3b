package main

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/fwojciec/causelist"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger zerolog.Logger

	Fetcher causelist.Fetcher
	Store   causelist.CauseListStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Fetch FetchCmd `cmd:"" help:"Fetch a cause list and search it for an advocate"`
	Serve ServeCmd `cmd:"" help:"Run the JSON API server"`
	Prune PruneCmd `cmd:"" help:"Delete cached cause lists older than the retention window"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	Date     string `arg:"" help:"List date in DDMMYYYY format (e.g., 23052025)"`
	Side     string `arg:"" help:"Court side: \"Original Side\" or \"Appellate Side\""`
	Advocate string `arg:"" help:"Full name of the advocate to search for"`

	BaseURL   string  `name:"base-url" default:"https://www.calcuttahighcourt.gov.in" help:"Court website base URL"`
	Tolerance float64 `default:"3" help:"Vertical band tolerance in points"`
	Output    string  `short:"o" help:"Write the report to a file instead of stdout"`
	Format    string  `default:"html" enum:"html,pdf,text" help:"Report format (html, pdf, or text)"`
	NoCache   bool    `help:"Bypass the local document cache"`
	Insecure  bool    `help:"Skip TLS certificate verification"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr     string `default:":5000" help:"Listen address"`
	BaseURL  string `name:"base-url" default:"https://www.calcuttahighcourt.gov.in" help:"Court website base URL"`
	Insecure bool   `help:"Skip TLS certificate verification"`
}

// PruneCmd is the "prune" subcommand.
type PruneCmd struct {
	OlderThan int `default:"30" help:"Delete cached lists fetched more than this many days ago"`
}
