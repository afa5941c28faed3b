package zerolog

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/fwojciec/causelist"
)

// Ensure LoggingStore implements causelist.CauseListStore.
var _ causelist.CauseListStore = (*LoggingStore)(nil)

// LoggingStore wraps a CauseListStore with cache activity logging.
type LoggingStore struct {
	next   causelist.CauseListStore
	logger zerolog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next causelist.CauseListStore, logger zerolog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// CreateCauseList delegates to the wrapped store and logs the write.
func (s *LoggingStore) CreateCauseList(ctx context.Context, cl *causelist.CauseList) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug().Err(err).
			Stringer("date", cl.Date).
			Str("side", string(cl.Side)).
			Int("bytes", len(cl.Content)).
			Dur("duration", time.Since(begin)).
			Msg("cache store")
	}(time.Now())
	return s.next.CreateCauseList(ctx, cl)
}

// FindCauseList delegates to the wrapped store and logs hit or miss.
func (s *LoggingStore) FindCauseList(ctx context.Context, date causelist.ListDate, side causelist.Side) (cl *causelist.CauseList, err error) {
	defer func(begin time.Time) {
		s.logger.Debug().
			Stringer("date", date).
			Str("side", string(side)).
			Bool("hit", err == nil).
			Dur("duration", time.Since(begin)).
			Msg("cache lookup")
	}(time.Now())
	return s.next.FindCauseList(ctx, date, side)
}

// DeleteCauseListsBefore delegates to the wrapped store and logs the sweep.
func (s *LoggingStore) DeleteCauseListsBefore(ctx context.Context, cutoff time.Time) (n int, err error) {
	defer func(begin time.Time) {
		s.logger.Info().Err(err).
			Time("cutoff", cutoff).
			Int("deleted", n).
			Dur("duration", time.Since(begin)).
			Msg("cache prune")
	}(time.Now())
	return s.next.DeleteCauseListsBefore(ctx, cutoff)
}
