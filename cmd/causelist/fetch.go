package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/causelist"
	"github.com/fwojciec/causelist/gofpdf"
	"github.com/fwojciec/causelist/pdf"
)

// searchConcurrency is how many pages are searched in parallel.
const searchConcurrency = 4

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	date, err := causelist.ParseListDate(c.Date)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", causelist.ErrorMessage(err))
		return err
	}
	side, err := causelist.ParseSide(c.Side)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", causelist.ErrorMessage(err))
		return err
	}
	query, err := causelist.NewQuery(c.Advocate)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", causelist.ErrorMessage(err))
		return err
	}
	if c.Format == "pdf" && c.Output == "" {
		return causelist.Errorf(causelist.EINVALID, "pdf format requires --output")
	}

	data, err := c.document(deps, date, side)
	if err != nil {
		// No list for a weekend or holiday is an expected outcome, not
		// a failure.
		if causelist.ErrorCode(err) == causelist.EUNAVAILABLE {
			fmt.Fprintln(deps.Stdout, causelist.ErrorMessage(err))
			return nil
		}
		return err
	}

	doc, err := pdf.NewDocument(data)
	if err != nil {
		return err
	}
	pages, err := doc.Pages(deps.Ctx)
	if err != nil {
		return err
	}

	entries := causelist.Search(pages, query,
		causelist.WithTolerance(c.Tolerance),
		causelist.WithConcurrency(searchConcurrency),
	)
	if len(entries) == 0 {
		fmt.Fprintf(deps.Stderr, "No entries found for %q\n", query.Name())
	} else {
		fmt.Fprintf(deps.Stderr, "Found %d entries for %q\n", len(entries), query.Name())
	}

	report := &causelist.Report{
		Advocate: query.Name(),
		Date:     date,
		Side:     side,
		Entries:  entries,
	}

	out := deps.Stdout
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			return fmt.Errorf("failed to create %q: %w", c.Output, err)
		}
		defer f.Close()
		out = f
	}

	if err := c.writeReport(out, report); err != nil {
		return err
	}
	if c.Output != "" {
		fmt.Fprintf(deps.Stderr, "Report saved to %s\n", c.Output)
	}
	return nil
}

// document resolves the list bytes: cache first unless bypassed, then the
// court website, storing fresh downloads back best effort.
func (c *FetchCmd) document(deps *Dependencies, date causelist.ListDate, side causelist.Side) ([]byte, error) {
	if !c.NoCache {
		cached, err := deps.Store.FindCauseList(deps.Ctx, date, side)
		if err == nil {
			return cached.Content, nil
		}
		if causelist.ErrorCode(err) != causelist.ENOTFOUND {
			return nil, err
		}
	}

	data, err := deps.Fetcher.Fetch(deps.Ctx, date, side)
	if err != nil {
		return nil, err
	}

	if !c.NoCache {
		cl := &causelist.CauseList{
			Date:      date,
			Side:      side,
			SourceURL: c.BaseURL,
			Content:   data,
		}
		if err := deps.Store.CreateCauseList(deps.Ctx, cl); err != nil {
			deps.Logger.Warn().Err(err).Msg("cache write failed")
		}
	}
	return data, nil
}

func (c *FetchCmd) writeReport(w io.Writer, report *causelist.Report) error {
	switch c.Format {
	case "pdf":
		return gofpdf.NewReportWriter().WriteReport(w, report)
	case "text":
		return writeTextReport(w, report)
	default:
		return causelist.NewHTMLReportWriter().WriteReport(w, report)
	}
}

// writeTextReport prints the entries as plain text, blocks separated by
// blank lines.
func writeTextReport(w io.Writer, report *causelist.Report) error {
	for i, entry := range report.Entries {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "Page %d\n%s\n", entry.PageNumber, entry.Text()); err != nil {
			return err
		}
	}
	return nil
}
