// Package causelist locates, within a paginated court cause-list document,
// every row that mentions a named advocate, and returns those rows as clean,
// deduplicated, page-ordered text blocks.
//
// This package contains domain types, interfaces, and the row-extraction
// algorithm itself, following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., pdf/, sqlite/, http/).
package causelist

import (
	"context"
	"time"
)

// CauseList represents one fetched cause-list document: the daily schedule of
// cases published by the court for a single date and jurisdiction side.
type CauseList struct {
	ID          string    `json:"id"`
	Date        ListDate  `json:"date"`
	Side        Side      `json:"side"`
	SourceURL   string    `json:"sourceUrl"`
	Content     []byte    `json:"-"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the cause list contains invalid fields.
func (c *CauseList) Validate() error {
	if c.Date.IsZero() {
		return Errorf(EINVALID, "cause list date required")
	}
	if _, err := ParseSide(string(c.Side)); err != nil {
		return err
	}
	if len(c.Content) == 0 {
		return Errorf(EINVALID, "cause list content required")
	}
	return nil
}

// Fetcher downloads a cause-list document from the court website.
// Implementations hide transport details (TLS quirks, rate limiting,
// timeouts).
type Fetcher interface {
	// Fetch returns the raw document bytes for the given date and side.
	// Returns EUNAVAILABLE when no list is published for that date
	// (weekends, holidays) — callers treat this as a soft outcome,
	// not a failure.
	Fetch(ctx context.Context, date ListDate, side Side) ([]byte, error)
}

// FragmentSource supplies the positioned text fragments of a document,
// one Page per document page, in page-number order.
type FragmentSource interface {
	Pages(ctx context.Context) ([]Page, error)
}

// DocumentOpener turns raw document bytes into a FragmentSource.
// The pdf subpackage provides the production implementation.
type DocumentOpener func(data []byte) (FragmentSource, error)

// CauseListStore caches fetched documents so repeat searches for the same
// date and side do not hit the court website again.
type CauseListStore interface {
	// CreateCauseList stores a fetched document.
	CreateCauseList(ctx context.Context, cl *CauseList) error

	// FindCauseList retrieves a cached document by date and side.
	// Returns ENOTFOUND on a cache miss.
	FindCauseList(ctx context.Context, date ListDate, side Side) (*CauseList, error)

	// DeleteCauseListsBefore removes cached documents fetched before the
	// cutoff and reports how many were deleted.
	DeleteCauseListsBefore(ctx context.Context, cutoff time.Time) (int, error)
}
