package zerolog_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/causelist"
	"github.com/fwojciec/causelist/mock"
	clzerolog "github.com/fwojciec/causelist/zerolog"
)

func TestLoggingStore_FindCauseList(t *testing.T) {
	t.Parallel()

	t.Run("logs a hit", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.CauseListStore{
			FindCauseListFn: func(ctx context.Context, date causelist.ListDate, side causelist.Side) (*causelist.CauseList, error) {
				return &causelist.CauseList{Content: []byte("cached")}, nil
			},
		}

		store := clzerolog.NewLoggingStore(inner, zerolog.New(&buf))
		cl, err := store.FindCauseList(context.Background(), testDate(t), causelist.OriginalSide)

		require.NoError(t, err)
		assert.Equal(t, []byte("cached"), cl.Content)
		assert.Contains(t, buf.String(), "cache lookup")
		assert.Contains(t, buf.String(), `"hit":true`)
	})

	t.Run("logs a miss", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.CauseListStore{
			FindCauseListFn: func(ctx context.Context, date causelist.ListDate, side causelist.Side) (*causelist.CauseList, error) {
				return nil, causelist.Errorf(causelist.ENOTFOUND, "no cached cause list")
			},
		}

		store := clzerolog.NewLoggingStore(inner, zerolog.New(&buf))
		_, err := store.FindCauseList(context.Background(), testDate(t), causelist.OriginalSide)

		require.Error(t, err)
		assert.Contains(t, buf.String(), `"hit":false`)
	})
}

func TestLoggingStore_DeleteCauseListsBefore(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.CauseListStore{
		DeleteCauseListsBeforeFn: func(ctx context.Context, cutoff time.Time) (int, error) {
			return 3, nil
		},
	}

	store := clzerolog.NewLoggingStore(inner, zerolog.New(&buf))
	n, err := store.DeleteCauseListsBefore(context.Background(), time.Now())

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Contains(t, buf.String(), "cache prune")
	assert.Contains(t, buf.String(), `"deleted":3`)
}
