package mock

import (
	"context"
	"time"

	"github.com/fwojciec/causelist"
)

var _ causelist.CauseListStore = (*CauseListStore)(nil)

// CauseListStore is a mock implementation of causelist.CauseListStore.
type CauseListStore struct {
	CreateCauseListFn        func(ctx context.Context, cl *causelist.CauseList) error
	FindCauseListFn          func(ctx context.Context, date causelist.ListDate, side causelist.Side) (*causelist.CauseList, error)
	DeleteCauseListsBeforeFn func(ctx context.Context, cutoff time.Time) (int, error)
}

func (s *CauseListStore) CreateCauseList(ctx context.Context, cl *causelist.CauseList) error {
	return s.CreateCauseListFn(ctx, cl)
}

func (s *CauseListStore) FindCauseList(ctx context.Context, date causelist.ListDate, side causelist.Side) (*causelist.CauseList, error) {
	return s.FindCauseListFn(ctx, date, side)
}

func (s *CauseListStore) DeleteCauseListsBefore(ctx context.Context, cutoff time.Time) (int, error) {
	return s.DeleteCauseListsBeforeFn(ctx, cutoff)
}
