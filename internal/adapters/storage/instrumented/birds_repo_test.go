package instrumented

import (
	"context"
	"testing"
	"time"

	"bird-service/internal/adapters/storage/memory"
	"bird-service/internal/domain/birds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	driver, op, status string
	d                  time.Duration
}

type fakeRecorder struct {
	seen []observation
}

func (f *fakeRecorder) RecordStoreOperation(driver, operation, status string, d time.Duration) {
	f.seen = append(f.seen, observation{driver, operation, status, d})
}

func TestBirdsRepo_RecordsEachOperation(t *testing.T) {
	rec := &fakeRecorder{}
	repo := NewBirdsRepo(memory.NewBirdRepo(), "memory", rec)

	tick := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.now = func() time.Time {
		tick = tick.Add(time.Millisecond)
		return tick
	}

	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, birds.FromRecord(birds.Record{ID: "b1"})))
	_, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	_, err = repo.GetByID(ctx, "missing")
	require.ErrorIs(t, err, birds.ErrNotFound)
	_, err = repo.List(ctx)
	require.NoError(t, err)
	require.Error(t, repo.Save(ctx, birds.Bird{}))
	require.NoError(t, repo.Delete(ctx, "b1"))

	want := []observation{
		{"memory", "save", "success", time.Millisecond},
		{"memory", "get", "success", time.Millisecond},
		{"memory", "get", "not_found", time.Millisecond},
		{"memory", "list", "success", time.Millisecond},
		{"memory", "save", "error", time.Millisecond},
		{"memory", "delete", "success", time.Millisecond},
	}
	assert.Equal(t, want, rec.seen)
}
