package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vitrine/internal/domain"
)

// Runs against a real server only when VITRINE_TEST_POSTGRES_DSN is set.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := os.Getenv("VITRINE_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("VITRINE_TEST_POSTGRES_DSN not set")
	}

	ctx := context.Background()
	store, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	_, err = store.pool.Exec(ctx, `TRUNCATE products RESTART IDENTITY`)
	require.NoError(t, err)
	return store
}

func TestStore_Lifecycle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, domain.ProductFields{
		Name:        "Chair",
		Description: "Wood chair",
		Price:       100,
		OwnerID:     7,
		Image:       "/uploads/product/a.jpg",
		Images:      `["/uploads/product/a.jpg"]`,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := store.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Images, got.Images)

	fields := domain.ProductFields{Name: "Chair", Description: "Oak chair", Price: 120, OwnerID: 7, Images: "[]"}
	updated, err := store.Update(ctx, created.ID, fields)
	require.NoError(t, err)
	assert.Equal(t, "Oak chair", updated.Description)
	assert.Equal(t, "[]", updated.Images)

	mine, err := store.FindManyByOwner(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	require.NoError(t, store.Delete(ctx, created.ID))
	_, err = store.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, created.ID), domain.ErrNotFound)

	_, err = store.Update(ctx, created.ID, fields)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMigrate_ReleasesConnections(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, migrate(store.pool), "migrations are idempotent")

	assert.Zero(t, store.pool.Stat().AcquiredConns())
	_, err := store.FindAll(ctx)
	assert.NoError(t, err, "pool stays usable after the migration handle is closed")
}
