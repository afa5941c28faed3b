package causelist

import (
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// DefaultTolerance is the vertical slack, in points, added around a seed
// fragment's extent when forming its band.
const DefaultTolerance = 3.0

type searchConfig struct {
	tolerance   float64
	concurrency int
}

// Option configures a Search call.
type Option func(*searchConfig)

// WithTolerance sets the vertical band tolerance in points.
// Defaults to DefaultTolerance.
func WithTolerance(tol float64) Option {
	return func(c *searchConfig) {
		c.tolerance = tol
	}
}

// WithConcurrency sets how many pages are searched in parallel.
// Pages are independent inputs, so concurrency does not change results;
// output stays in page order, seed-encounter order. Defaults to 1.
func WithConcurrency(n int) Option {
	return func(c *searchConfig) {
		c.concurrency = n
	}
}

// Search finds every row across the given pages that matches the query and
// returns the deduplicated entries in page order, seed-encounter order
// within each page.
func Search(pages []Page, q Query, opts ...Option) []Entry {
	cfg := searchConfig{tolerance: DefaultTolerance, concurrency: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.concurrency > 1 && len(pages) > 1 {
		return searchConcurrent(pages, q, cfg)
	}

	var entries []Entry
	for _, page := range pages {
		entries = append(entries, searchPage(page, q, cfg.tolerance)...)
	}
	return entries
}

// searchConcurrent fans pages out over a worker group. Each page writes into
// its own result slot, so flattening preserves page order regardless of
// completion order.
func searchConcurrent(pages []Page, q Query, cfg searchConfig) []Entry {
	results := make([][]Entry, len(pages))

	var g errgroup.Group
	g.SetLimit(cfg.concurrency)
	for i, page := range pages {
		g.Go(func() error {
			results[i] = searchPage(page, q, cfg.tolerance)
			return nil
		})
	}
	_ = g.Wait() // page search is pure computation; no errors to propagate

	var entries []Entry
	for _, r := range results {
		entries = append(entries, r...)
	}
	return entries
}

// entryKey identifies an entry for deduplication. Lines never contain
// newlines (they are produced by splitting on them), so the joined form is a
// faithful key for the full line sequence. Keys embed the page number, which
// is why a per-page seen set and a whole-run seen set behave identically.
type entryKey struct {
	page  int
	lines string
}

// searchPage runs the seed → band → assemble → confirm → dedup pipeline over
// one page's fragments in their native order.
func searchPage(page Page, q Query, tol float64) []Entry {
	var entries []Entry
	seen := make(map[entryKey]struct{})

	for _, seed := range page.Fragments {
		if !seed.wellFormed() || !q.MatchesAny(seed.Text) {
			continue
		}

		row := collectBand(page.Fragments, seed, tol)
		if !q.MatchesAll(rowText(row)) {
			continue
		}

		lines := rowLines(row)
		key := entryKey{page: page.Number, lines: strings.Join(lines, "\n")}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		entries = append(entries, Entry{PageNumber: page.Number, Lines: lines})
	}
	return entries
}

// collectBand gathers every fragment whose vertical midpoint falls, bounds
// inclusive, inside the seed's band, and orders them left to right. The band
// reaches one extra seed-height below the seed: cause-list entries continue
// on the lines under the matched name, while nothing relevant sits above it.
// The sort is stable so fragments sharing a Left coordinate (stacked table
// cells) keep their source order.
func collectBand(fragments []Fragment, seed Fragment, tol float64) []Fragment {
	height := seed.Bottom - seed.Top
	top := seed.Top - tol
	bottom := seed.Bottom + height + tol

	var row []Fragment
	for _, f := range fragments {
		if !f.wellFormed() {
			continue
		}
		if mid := f.midY(); top <= mid && mid <= bottom {
			row = append(row, f)
		}
	}

	sort.SliceStable(row, func(i, j int) bool {
		return row[i].Left < row[j].Left
	})
	return row
}

// rowText flattens a row into a single line for confirmation matching:
// each fragment's internal line breaks become spaces, fragments are trimmed
// and joined with single spaces.
func rowText(row []Fragment) string {
	parts := make([]string, 0, len(row))
	for _, f := range row {
		flat := strings.ReplaceAll(f.Text, "\n", " ")
		parts = append(parts, strings.TrimSpace(flat))
	}
	return strings.Join(parts, " ")
}

// rowLines produces the row's output lines: each fragment's text split on
// line breaks, trimmed, with empty lines dropped. Fragments stay separate
// blocks; side-by-side cells are not merged into one line.
func rowLines(row []Fragment) []string {
	var lines []string
	for _, f := range row {
		text := strings.ReplaceAll(f.Text, "\r\n", "\n")
		for _, ln := range strings.Split(text, "\n") {
			if ln = strings.TrimSpace(ln); ln != "" {
				lines = append(lines, ln)
			}
		}
	}
	return lines
}
