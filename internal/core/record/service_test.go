package record

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"mutabaah.dev/backend/internal/constant"
	"mutabaah.dev/backend/internal/core/event"
	"mutabaah.dev/backend/internal/pkg/apperr"
)

func newTestService() (*Service, *MemoryStore, *event.Recorder) {
	store := NewMemoryStore()
	rec := event.NewRecorder()
	return NewService(store, rec), store, rec
}

func TestIngestUpsertsAndPublishes(t *testing.T) {
	ctx := context.Background()
	svc, store, rec := newTestService()

	models, err := svc.Ingest(ctx, 1, []Input{
		{Name: "Subuh", Date: "2024-03-02", Completed: true},
		{Name: "Tilawah Qur'an", Date: "2024-03-01", Completed: true, Value: null.IntFrom(5)},
		{Name: "Subuh", Date: "2024-03-02", Completed: false},
	})
	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.False(t, models[0].Completed, "later duplicate wins")

	got, err := store.QueryRange(ctx, 1, day(1), day(2))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Tilawah Qur'an", got[0].ActivityName)
	assert.Equal(t, int64(5), got[0].Value.Int64)

	changes := rec.Of(constant.RecordsSubjectUpserted)
	require.Len(t, changes, 1)
	assert.Equal(t, "2024-03-01", changes[0].StartDate)
	assert.Equal(t, "2024-03-02", changes[0].EndDate)
	assert.Equal(t, 2, changes[0].Count)
}

func TestIngestIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	svc, store, rec := newTestService()

	for _, bad := range []Input{
		{Name: "", Date: "2024-03-01"},
		{Name: "  ", Date: "2024-03-01"},
		{Name: "Subuh", Date: ""},
		{Name: "Subuh", Date: "2024-02-30"},
	} {
		_, err := svc.Ingest(ctx, 1, []Input{
			{Name: "Dhuha", Date: "2024-03-01", Completed: true},
			bad,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperr.ErrMalformedRecord, "%+v", bad)
		var pe *apperr.Error
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, 1, (*pe.Extras)["index"])
	}

	got, err := store.QueryRange(ctx, 1, day(1), day(31))
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, rec.Of(constant.RecordsSubjectUpserted))
}

func TestIngestStoreFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestService()
	calls := 0
	store.Fault = func(op Op, _ int64) error {
		if op == OpUpsert {
			calls++
			if calls == 2 {
				return errors.New("disk full")
			}
		}
		return nil
	}

	_, err := svc.Ingest(ctx, 1, []Input{
		{Name: "Dhuha", Date: "2024-03-01"},
		{Name: "Isya", Date: "2024-03-01"},
	})
	assert.ErrorIs(t, err, apperr.ErrStoreUnavailable)

	store.Fault = nil
	got, err := store.QueryRange(ctx, 1, day(1), day(1))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListRange(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestService()
	require.NoError(t, store.BulkInsert(ctx, []*Model{
		{UserID: 1, ActivityName: "Subuh", Date: day(1), Completed: true},
	}))

	got, err := svc.ListRange(ctx, 1, day(1), day(3))
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.ListRange(ctx, 1, day(3), day(1))
	assert.ErrorIs(t, err, apperr.ErrInvalidReq)

	store.Fault = func(Op, int64) error { return errors.New("timeout") }
	_, err = svc.ListRange(ctx, 1, day(1), day(3))
	assert.ErrorIs(t, err, apperr.ErrStoreUnavailable)
	assert.Contains(t, err.Error(), "user 1 in [2024-03-01, 2024-03-03]")
}

func TestToViews(t *testing.T) {
	views, err := ToViews([]*Model{
		{UserID: 1, ActivityName: "Subuh", Date: day(7), Completed: true, Value: null.IntFrom(2)},
	})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "2024-03-07", views[0].Date)
	assert.Equal(t, "Subuh", views[0].ActivityName)
	assert.True(t, views[0].Completed)
	assert.Equal(t, null.IntFrom(2), views[0].Value)
}
