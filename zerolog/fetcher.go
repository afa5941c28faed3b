// Package zerolog wraps causelist interfaces with structured logging
// decorators built on github.com/rs/zerolog.
package zerolog

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/fwojciec/causelist"
)

// Ensure LoggingFetcher implements causelist.Fetcher.
var _ causelist.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with download logging.
type LoggingFetcher struct {
	next   causelist.Fetcher
	logger zerolog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next causelist.Fetcher, logger zerolog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, date causelist.ListDate, side causelist.Side) (data []byte, err error) {
	defer func(begin time.Time) {
		evt := f.logger.Info()
		if err != nil && causelist.ErrorCode(err) != causelist.EUNAVAILABLE {
			evt = f.logger.Error().Err(err)
		}
		evt.
			Stringer("date", date).
			Str("side", string(side)).
			Int("bytes", len(data)).
			Dur("duration", time.Since(begin)).
			Bool("unavailable", causelist.ErrorCode(err) == causelist.EUNAVAILABLE).
			Msg("cause list fetch")
	}(time.Now())
	return f.next.Fetch(ctx, date, side)
}
