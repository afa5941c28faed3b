// Package http provides the HTTP edge of the system: a causelist.Fetcher
// that downloads cause-list documents from the court website, and the JSON
// API server.
package http

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/fwojciec/causelist"
)

// DefaultBaseURL is the court website the lists are published on.
const DefaultBaseURL = "https://www.calcuttahighcourt.gov.in"

// DefaultFetchTimeout is the default timeout for a document download.
const DefaultFetchTimeout = 30 * time.Second

// unavailableMessage is the exact sentinel the API has always emitted when
// no list exists for a date. Downstream consumers match on this string.
const unavailableMessage = "Unable to fetch cause_list details due to weekends or failed to fetch cause list"

// Ensure Client implements causelist.Fetcher at compile time.
var _ causelist.Fetcher = (*Client)(nil)

// Client downloads cause-list PDFs from the court website.
type Client struct {
	client   *http.Client
	baseURL  string
	timeout  time.Duration
	insecure bool
	limiter  *rate.Limiter
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL sets the court website base URL.
// Defaults to DefaultBaseURL.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithTimeout sets the timeout for document downloads.
// Defaults to DefaultFetchTimeout (30s).
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithInsecureTLS disables certificate verification. The court site's
// certificate chain is frequently broken.
func WithInsecureTLS() ClientOption {
	return func(c *Client) {
		c.insecure = true
	}
}

// WithRateLimit caps downloads at the given requests per second with no
// bursting, so repeated searches cannot hammer the court website.
func WithRateLimit(rps float64) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewClient creates a new court-website Client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	transport := http.DefaultTransport
	if c.insecure {
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
	c.client = &http.Client{
		Timeout:   c.timeout,
		Transport: transport,
	}
	return c
}

// BaseURL returns the configured court website base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListURL returns the download URL for the cause list of a date and side.
func (c *Client) ListURL(date causelist.ListDate, side causelist.Side) string {
	return fmt.Sprintf("%s/downloads/old_cause_lists/%s/%s%s.pdf",
		c.baseURL, side.Code(), side.FilePrefix(), date)
}

// Fetch downloads the cause list for the given date and side. A missing list
// or a non-PDF response body means nothing was published for that date
// (weekend, holiday) and is reported as EUNAVAILABLE.
func (c *Client) Fetch(ctx context.Context, date causelist.ListDate, side causelist.Side) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	url := c.ListURL(date, side)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, causelist.Errorf(causelist.EUNAVAILABLE, "%s", unavailableMessage)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", url, err)
	}

	// The site serves an HTML error page with status 200 on dates with no
	// list, so the body prefix is the only reliable signal.
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		return nil, causelist.Errorf(causelist.EUNAVAILABLE, "%s", unavailableMessage)
	}

	return data, nil
}
