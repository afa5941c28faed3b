package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/causelist"
	"github.com/fwojciec/causelist/fs"
)

func mustListDate(t *testing.T, s string) causelist.ListDate {
	t.Helper()
	d, err := causelist.ParseListDate(s)
	require.NoError(t, err)
	return d
}

func TestCauseListStore_CreateCauseList(t *testing.T) {
	t.Parallel()

	t.Run("writes the document as a pdf file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewCauseListStore(dir)

		cl := &causelist.CauseList{
			Date:    mustListDate(t, "23052025"),
			Side:    causelist.OriginalSide,
			Content: []byte("%PDF-1.4 test"),
		}
		require.NoError(t, store.CreateCauseList(context.Background(), cl))

		data, err := os.ReadFile(filepath.Join(dir, "OS", "23052025.pdf"))
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-1.4 test"), data)

		assert.NotEmpty(t, cl.ID)
		assert.NotEmpty(t, cl.ContentHash)
		assert.False(t, cl.FetchedAt.IsZero())
	})

	t.Run("returns error for invalid cause list", func(t *testing.T) {
		t.Parallel()

		store := fs.NewCauseListStore(t.TempDir())
		err := store.CreateCauseList(context.Background(), &causelist.CauseList{})
		require.Error(t, err)
		assert.Equal(t, causelist.EINVALID, causelist.ErrorCode(err))
	})

	t.Run("replaces an existing file for the same date and side", func(t *testing.T) {
		t.Parallel()

		store := fs.NewCauseListStore(t.TempDir())
		ctx := context.Background()
		date := mustListDate(t, "23052025")

		require.NoError(t, store.CreateCauseList(ctx, &causelist.CauseList{
			Date: date, Side: causelist.AppellateSide, Content: []byte("first"),
		}))
		require.NoError(t, store.CreateCauseList(ctx, &causelist.CauseList{
			Date: date, Side: causelist.AppellateSide, Content: []byte("second"),
		}))

		found, err := store.FindCauseList(ctx, date, causelist.AppellateSide)
		require.NoError(t, err)
		assert.Equal(t, []byte("second"), found.Content)
	})
}

func TestCauseListStore_FindCauseList(t *testing.T) {
	t.Parallel()

	t.Run("round-trips a stored document", func(t *testing.T) {
		t.Parallel()

		store := fs.NewCauseListStore(t.TempDir())
		ctx := context.Background()

		cl := &causelist.CauseList{
			Date:    mustListDate(t, "01062025"),
			Side:    causelist.OriginalSide,
			Content: []byte("%PDF-1.4 content"),
		}
		require.NoError(t, store.CreateCauseList(ctx, cl))

		found, err := store.FindCauseList(ctx, cl.Date, cl.Side)
		require.NoError(t, err)
		assert.Equal(t, cl.Date, found.Date)
		assert.Equal(t, cl.Side, found.Side)
		assert.Equal(t, cl.Content, found.Content)
		assert.Equal(t, cl.ContentHash, found.ContentHash)
		assert.WithinDuration(t, time.Now(), found.FetchedAt, time.Minute)
	})

	t.Run("returns ENOTFOUND on a cache miss", func(t *testing.T) {
		t.Parallel()

		store := fs.NewCauseListStore(t.TempDir())
		_, err := store.FindCauseList(context.Background(), mustListDate(t, "23052025"), causelist.OriginalSide)
		require.Error(t, err)
		assert.Equal(t, causelist.ENOTFOUND, causelist.ErrorCode(err))
	})
}

func TestCauseListStore_DeleteCauseListsBefore(t *testing.T) {
	t.Parallel()

	t.Run("deletes only files older than the cutoff", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewCauseListStore(dir)
		ctx := context.Background()

		require.NoError(t, store.CreateCauseList(ctx, &causelist.CauseList{
			Date: mustListDate(t, "23052025"), Side: causelist.OriginalSide, Content: []byte("old"),
		}))
		require.NoError(t, store.CreateCauseList(ctx, &causelist.CauseList{
			Date: mustListDate(t, "24052025"), Side: causelist.OriginalSide, Content: []byte("new"),
		}))

		// Age the first file by winding its modification time back.
		old := filepath.Join(dir, "OS", "23052025.pdf")
		stale := time.Now().Add(-48 * time.Hour)
		require.NoError(t, os.Chtimes(old, stale, stale))

		n, err := store.DeleteCauseListsBefore(ctx, time.Now().Add(-24*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		_, err = store.FindCauseList(ctx, mustListDate(t, "23052025"), causelist.OriginalSide)
		assert.Equal(t, causelist.ENOTFOUND, causelist.ErrorCode(err))

		_, err = store.FindCauseList(ctx, mustListDate(t, "24052025"), causelist.OriginalSide)
		assert.NoError(t, err)
	})

	t.Run("empty store deletes nothing", func(t *testing.T) {
		t.Parallel()

		store := fs.NewCauseListStore(t.TempDir() + "/never-written")
		n, err := store.DeleteCauseListsBefore(context.Background(), time.Now())
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
