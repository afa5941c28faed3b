// Package fs provides a file-based causelist.CauseListStore: fetched
// documents are kept as plain PDF files on disk, one per date and side, so
// the cache can be inspected (or seeded) with ordinary file tools.
package fs

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/fwojciec/causelist"
)

// Ensure CauseListStore implements causelist.CauseListStore at compile time.
var _ causelist.CauseListStore = (*CauseListStore)(nil)

// CauseListStore stores cause-list documents under a base directory, laid
// out as <baseDir>/<side code>/<DDMMYYYY>.pdf. Writes go to a temporary
// file first and are moved into place atomically.
type CauseListStore struct {
	baseDir string
}

// NewCauseListStore creates a store rooted at baseDir. The directory is
// created on first write.
func NewCauseListStore(baseDir string) *CauseListStore {
	return &CauseListStore{baseDir: baseDir}
}

func (s *CauseListStore) path(date causelist.ListDate, side causelist.Side) string {
	return filepath.Join(s.baseDir, side.Code(), date.String()+".pdf")
}

func hashContent(content []byte) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64(content))
	return hex.EncodeToString(b)
}

// CreateCauseList writes the document to disk, replacing any existing file
// for the same date and side.
func (s *CauseListStore) CreateCauseList(ctx context.Context, cl *causelist.CauseList) error {
	if err := cl.Validate(); err != nil {
		return err
	}

	cl.ID = uuid.New().String()
	cl.FetchedAt = time.Now().UTC()
	cl.ContentHash = hashContent(cl.Content)

	path := s.path(cl.Date, cl.Side)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, cl.Content, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// FindCauseList reads a cached document. Returns ENOTFOUND when no file
// exists for the date and side. The file's modification time stands in for
// the fetch timestamp.
func (s *CauseListStore) FindCauseList(ctx context.Context, date causelist.ListDate, side causelist.Side) (*causelist.CauseList, error) {
	path := s.path(date, side)

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, causelist.Errorf(causelist.ENOTFOUND, "no cached cause list for %s %s", date, side)
	}
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return &causelist.CauseList{
		Date:        date,
		Side:        side,
		Content:     content,
		ContentHash: hashContent(content),
		FetchedAt:   info.ModTime().UTC(),
	}, nil
}

// DeleteCauseListsBefore removes cached documents whose modification time
// predates the cutoff and reports how many were deleted.
func (s *CauseListStore) DeleteCauseListsBefore(ctx context.Context, cutoff time.Time) (int, error) {
	var deleted int
	err := filepath.WalkDir(s.baseDir, func(path string, d fs.DirEntry, err error) error {
		if errors.Is(err, fs.ErrNotExist) {
			return nil // empty store
		}
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".pdf") {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		if !info.ModTime().Before(cutoff) {
			return nil
		}
		if err := os.Remove(path); err != nil {
			return err
		}
		deleted++
		return nil
	})
	return deleted, err
}
