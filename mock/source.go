package mock

import (
	"context"

	"github.com/fwojciec/causelist"
)

var _ causelist.FragmentSource = (*FragmentSource)(nil)

// FragmentSource is a mock implementation of causelist.FragmentSource.
type FragmentSource struct {
	PagesFn func(ctx context.Context) ([]causelist.Page, error)
}

func (s *FragmentSource) Pages(ctx context.Context) ([]causelist.Page, error) {
	return s.PagesFn(ctx)
}
