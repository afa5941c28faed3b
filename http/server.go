package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/fwojciec/causelist"
)

// DefaultAddr is the default listen address for the API server.
const DefaultAddr = ":5000"

// Server exposes cause-list search over a JSON API.
type Server struct {
	server *http.Server

	addr     string
	apiKey   string
	courtURL string

	fetcher causelist.Fetcher
	open    causelist.DocumentOpener
	store   causelist.CauseListStore
	logger  zerolog.Logger
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithAddr sets the listen address. Defaults to DefaultAddr.
func WithAddr(addr string) ServerOption {
	return func(s *Server) {
		s.addr = addr
	}
}

// WithAPIKey sets the key clients must present. An empty key disables
// authentication.
func WithAPIKey(key string) ServerOption {
	return func(s *Server) {
		s.apiKey = key
	}
}

// WithStore attaches a document cache consulted before downloading.
func WithStore(store causelist.CauseListStore) ServerOption {
	return func(s *Server) {
		s.store = store
	}
}

// WithLogger sets the request logger.
func WithLogger(logger zerolog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithCourtURL sets the base URL echoed back in responses.
func WithCourtURL(u string) ServerOption {
	return func(s *Server) {
		s.courtURL = u
	}
}

// NewServer creates the API server. The fetcher downloads documents and open
// turns their bytes into fragment pages.
func NewServer(fetcher causelist.Fetcher, open causelist.DocumentOpener, opts ...ServerOption) *Server {
	s := &Server{
		addr:     DefaultAddr,
		courtURL: DefaultBaseURL,
		fetcher:  fetcher,
		open:     open,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /fetch-cause-list", s.handleFetchCauseList)
	mux.HandleFunc("/", s.handleNotFound)

	s.server = &http.Server{
		Addr:              s.addr,
		Handler:           s.logRequests(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// ListenAndServe serves until Shutdown is called.
func (s *Server) ListenAndServe() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler returns the server's root handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// fetchRequest is the POST /fetch-cause-list payload.
type fetchRequest struct {
	Date      string  `json:"date"`
	Side      string  `json:"side"`
	Advocate  string  `json:"advocate"`
	Tolerance float64 `json:"tolerance,omitempty"`
	APIKey    string  `json:"api_key,omitempty"`
}

// fetchResponse mirrors the field names the API has always used.
type fetchResponse struct {
	Date     string   `json:"Date"`
	Side     string   `json:"Side"`
	Advocate string   `json:"Advocate"`
	CourtURL string   `json:"Court_URL"`
	Output   []string `json:"Output"`
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "High Court Cause List API",
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse{
		Error:   "Not found",
		Message: "The requested endpoint does not exist",
	})
}

func (s *Server) handleFetchCauseList(w http.ResponseWriter, r *http.Request) {
	var req fetchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "Bad request",
			Message: "JSON payload required",
		})
		return
	}

	if !s.authorized(r, req.APIKey) {
		writeJSON(w, http.StatusUnauthorized, errorResponse{
			Error:   "Invalid API key",
			Message: "Provide a valid API key in the X-API-Key header or api_key field",
		})
		return
	}

	date, err := causelist.ParseListDate(req.Date)
	if err != nil {
		s.writeError(w, err)
		return
	}
	side, err := causelist.ParseSide(req.Side)
	if err != nil {
		s.writeError(w, err)
		return
	}
	query, err := causelist.NewQuery(req.Advocate)
	if err != nil {
		s.writeError(w, err)
		return
	}
	tolerance := req.Tolerance
	if tolerance == 0 {
		tolerance = causelist.DefaultTolerance
	}

	entries, err := s.search(r.Context(), date, side, query, tolerance)
	if err != nil {
		// No list published is a normal outcome: report it in-band so
		// consumers see a successful response with the sentinel text.
		if causelist.ErrorCode(err) == causelist.EUNAVAILABLE {
			writeJSON(w, http.StatusOK, fetchResponse{
				Date:     date.String(),
				Side:     string(side),
				Advocate: query.Name(),
				CourtURL: s.courtURL,
				Output:   []string{causelist.ErrorMessage(err)},
			})
			return
		}
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, fetchResponse{
		Date:     date.String(),
		Side:     string(side),
		Advocate: query.Name(),
		CourtURL: s.courtURL,
		Output:   causelist.FormatEntries(entries),
	})
}

// search resolves the document (cache first, then the court website) and
// runs the extraction over its pages.
func (s *Server) search(ctx context.Context, date causelist.ListDate, side causelist.Side, query causelist.Query, tolerance float64) ([]causelist.Entry, error) {
	data, err := s.document(ctx, date, side)
	if err != nil {
		return nil, err
	}

	source, err := s.open(data)
	if err != nil {
		return nil, err
	}
	pages, err := source.Pages(ctx)
	if err != nil {
		return nil, err
	}

	return causelist.Search(pages, query,
		causelist.WithTolerance(tolerance),
		causelist.WithConcurrency(4),
	), nil
}

func (s *Server) document(ctx context.Context, date causelist.ListDate, side causelist.Side) ([]byte, error) {
	if s.store != nil {
		cached, err := s.store.FindCauseList(ctx, date, side)
		if err == nil {
			return cached.Content, nil
		}
		if causelist.ErrorCode(err) != causelist.ENOTFOUND {
			return nil, err
		}
	}

	data, err := s.fetcher.Fetch(ctx, date, side)
	if err != nil {
		return nil, err
	}

	if s.store != nil {
		cl := &causelist.CauseList{
			Date:      date,
			Side:      side,
			SourceURL: s.courtURL,
			Content:   data,
		}
		if err := s.store.CreateCauseList(ctx, cl); err != nil {
			s.logger.Warn().Err(err).
				Stringer("date", date).
				Str("side", string(side)).
				Msg("cache write failed")
		}
	}
	return data, nil
}

// authorized checks the X-API-Key header, falling back to the request body
// field. An unconfigured key means an open server.
func (s *Server) authorized(r *http.Request, bodyKey string) bool {
	if s.apiKey == "" {
		return true
	}
	if key := r.Header.Get("X-API-Key"); key == s.apiKey {
		return true
	}
	return bodyKey == s.apiKey
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := causelist.ErrorCode(err)
	status := http.StatusInternalServerError
	label := "Internal server error"
	switch code {
	case causelist.EINVALID:
		status, label = http.StatusBadRequest, "Bad request"
	case causelist.ENOTFOUND:
		status, label = http.StatusNotFound, "Not found"
	}

	message := causelist.ErrorMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error().Err(err).Msg("request failed")
	}
	writeJSON(w, status, errorResponse{Error: label, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(begin)).
			Msg("request")
	})
}
