package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/fwojciec/causelist"
)

// Compile-time interface verification.
var _ causelist.CauseListStore = (*CauseListService)(nil)

// CauseListService implements causelist.CauseListStore using SQLite.
type CauseListService struct {
	db *DB
}

// NewCauseListService creates a new CauseListService.
func NewCauseListService(db *DB) *CauseListService {
	return &CauseListService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content []byte) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64(content))
	return hex.EncodeToString(b)
}

// CreateCauseList stores a fetched document. An existing row for the same
// date and side is replaced; the court occasionally republishes a list.
func (s *CauseListService) CreateCauseList(ctx context.Context, cl *causelist.CauseList) error {
	if err := cl.Validate(); err != nil {
		return err
	}

	cl.ID = uuid.New().String()
	cl.FetchedAt = time.Now().UTC()
	cl.ContentHash = hashContent(cl.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cause_lists (id, list_date, side, source_url, content, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(list_date, side) DO UPDATE SET
			id = excluded.id,
			source_url = excluded.source_url,
			content = excluded.content,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, cl.ID, cl.Date.String(), string(cl.Side), cl.SourceURL, cl.Content,
		cl.ContentHash, cl.FetchedAt.Format(time.RFC3339))

	return err
}

// FindCauseList retrieves a cached document by date and side.
// Returns ENOTFOUND on a cache miss.
func (s *CauseListService) FindCauseList(ctx context.Context, date causelist.ListDate, side causelist.Side) (*causelist.CauseList, error) {
	var cl causelist.CauseList
	var rawDate, rawSide, fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, list_date, side, source_url, content, content_hash, fetched_at
		FROM cause_lists
		WHERE list_date = ? AND side = ?
	`, date.String(), string(side)).Scan(&cl.ID, &rawDate, &rawSide,
		&cl.SourceURL, &cl.Content, &cl.ContentHash, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, causelist.Errorf(causelist.ENOTFOUND, "no cached cause list for %s %s", date, side)
	}
	if err != nil {
		return nil, err
	}

	cl.Date, err = causelist.ParseListDate(rawDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse list_date: %w", err)
	}
	cl.Side, err = causelist.ParseSide(rawSide)
	if err != nil {
		return nil, fmt.Errorf("failed to parse side: %w", err)
	}
	cl.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
	}

	return &cl, nil
}

// DeleteCauseListsBefore removes documents fetched before the cutoff and
// reports how many rows were deleted.
func (s *CauseListService) DeleteCauseListsBefore(ctx context.Context, cutoff time.Time) (int, error) {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM cause_lists WHERE fetched_at < ?
	`, cutoff.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
