package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	clhttp "github.com/fwojciec/causelist/http"
	"github.com/fwojciec/causelist/pdf"
)

// shutdownTimeout is how long in-flight requests get to finish on shutdown.
const shutdownTimeout = 10 * time.Second

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	apiKey := os.Getenv("CAUSELIST_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(deps.Stderr, "Warning: CAUSELIST_API_KEY not set; the API will accept unauthenticated requests")
	}

	server := clhttp.NewServer(deps.Fetcher, pdf.Open,
		clhttp.WithAddr(c.Addr),
		clhttp.WithAPIKey(apiKey),
		clhttp.WithStore(deps.Store),
		clhttp.WithLogger(deps.Logger),
		clhttp.WithCourtURL(c.BaseURL),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()
	deps.Logger.Info().Str("addr", c.Addr).Msg("api server listening")

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-deps.Ctx.Done():
	}

	deps.Logger.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(ctx)
}
