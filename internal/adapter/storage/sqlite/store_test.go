package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vitrine/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func chair(owner int64) domain.ProductFields {
	return domain.ProductFields{
		Name:        "Chair",
		Description: "Wood chair",
		Price:       100,
		OwnerID:     owner,
		Image:       "/uploads/product/a.jpg",
		Images:      `["/uploads/product/a.jpg","/uploads/product/b.jpg"]`,
	}
}

func TestStore_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	created, err := store.Create(ctx, chair(7))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := store.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, `["/uploads/product/a.jpg","/uploads/product/b.jpg"]`, got.Images)
}

func TestStore_FindByID_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.FindByID(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_Update(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	created, err := store.Create(ctx, chair(7))
	require.NoError(t, err)

	fields := chair(7)
	fields.Price = 150
	fields.Image = ""
	fields.Images = "[]"
	updated, err := store.Update(ctx, created.ID, fields)
	require.NoError(t, err)
	assert.Equal(t, int64(150), updated.Price)
	assert.Equal(t, "[]", updated.Images)
	assert.Empty(t, updated.Image)

	_, err = store.Update(ctx, 999, fields)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	created, err := store.Create(ctx, chair(7))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, created.ID))
	_, err = store.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, store.Delete(ctx, created.ID), domain.ErrNotFound)
}

func TestStore_Listing(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	for _, owner := range []int64{1, 2, 1} {
		_, err := store.Create(ctx, chair(owner))
		require.NoError(t, err)
	}

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := store.FindManyByOwner(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, p := range mine {
		assert.Equal(t, int64(1), p.OwnerID)
	}

	none, err := store.FindManyByOwner(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_LegacyNullImages(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.DB().ExecContext(ctx,
		`INSERT INTO products (name, description, price, owner_id, image, images, created_at, updated_at)
		 VALUES ('Old', 'Legacy row', 10, 1, '', NULL, 0, 0)`)
	require.NoError(t, err)

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Empty(t, all[0].Images)
}
