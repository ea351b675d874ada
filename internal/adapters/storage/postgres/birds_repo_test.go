package postgres

import (
	"context"
	"os"
	"testing"

	"bird-service/internal/domain/birds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Estos tests necesitan un Postgres real: TEST_DB_DSN=postgres://...
func openTestRepo(t *testing.T) *BirdsRepo {
	t.Helper()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}

	ctx := context.Background()
	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(ctx, db))
	_, err = db.ExecContext(ctx, `TRUNCATE birds`)
	require.NoError(t, err)

	return NewBirdsRepo(db)
}

func TestBirdsRepo_SaveGetOverwrite(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, birds.FromRecord(birds.Record{ID: "b1", Species: "Sparrow", Size: "small"})))
	require.NoError(t, repo.Save(ctx, birds.FromRecord(birds.Record{ID: "b1", Species: "Crow", Size: "large"})))

	got, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, birds.Record{ID: "b1", Species: "Crow", Size: "large"}, got.Record())
}

func TestBirdsRepo_ListAndDelete(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, birds.FromRecord(birds.Record{ID: "b2"})))
	require.NoError(t, repo.Save(ctx, birds.FromRecord(birds.Record{ID: "b1"})))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "b1", items[0].ID())

	require.NoError(t, repo.Delete(ctx, "b1"))
	assert.ErrorIs(t, repo.Delete(ctx, "b1"), birds.ErrNotFound)

	_, err = repo.GetByID(ctx, "b1")
	assert.ErrorIs(t, err, birds.ErrNotFound)
}
