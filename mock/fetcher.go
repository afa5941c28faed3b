// Package mock provides function-field mock implementations of causelist
// interfaces for testing.
package mock

import (
	"context"

	"github.com/fwojciec/causelist"
)

var _ causelist.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of causelist.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, date causelist.ListDate, side causelist.Side) ([]byte, error)
}

func (f *Fetcher) Fetch(ctx context.Context, date causelist.ListDate, side causelist.Side) ([]byte, error) {
	return f.FetchFn(ctx, date, side)
}
