package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bnema/vitrine/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lamp(owner int64) domain.ProductFields {
	return domain.ProductFields{
		Name:        "Lamp",
		Description: "Desk lamp",
		Price:       35,
		OwnerID:     owner,
		Images:      "[]",
	}
}

func TestNewStore(t *testing.T) {
	t.Run("creates empty store if file doesn't exist", func(t *testing.T) {
		tempDir := t.TempDir()

		store, err := NewStore(tempDir)

		assert.NoError(t, err)
		assert.Empty(t, store.products)
		_, err = os.Stat(filepath.Join(tempDir, "products.json"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("loads existing data and continues ids", func(t *testing.T) {
		tempDir := t.TempDir()

		existing := []*domain.ProductRecord{
			{ID: 3, Name: "Chair", OwnerID: 1},
			{ID: 9, Name: "Table", OwnerID: 2},
		}
		data, _ := json.MarshalIndent(existing, "", "  ")
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, "products.json"), data, 0600))

		store, err := NewStore(tempDir)
		require.NoError(t, err)
		assert.Len(t, store.products, 2)

		created, err := store.Create(context.Background(), lamp(1))
		require.NoError(t, err)
		assert.Equal(t, int64(10), created.ID)
	})

	t.Run("returns error for invalid JSON", func(t *testing.T) {
		tempDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, "products.json"), []byte("invalid json"), 0600))

		store, err := NewStore(tempDir)

		assert.Error(t, err)
		assert.Nil(t, store)
	})

	t.Run("handles empty JSON file", func(t *testing.T) {
		tempDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, "products.json"), []byte(""), 0600))

		store, err := NewStore(tempDir)

		assert.NoError(t, err)
		assert.Empty(t, store.products)
	})
}

func TestStoreCRUD(t *testing.T) {
	ctx := context.Background()

	t.Run("create then find", func(t *testing.T) {
		store, _ := NewStore(t.TempDir())

		created, err := store.Create(ctx, lamp(4))
		require.NoError(t, err)

		got, err := store.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Lamp", got.Name)
		assert.Equal(t, int64(4), got.OwnerID)
	})

	t.Run("returned records are copies", func(t *testing.T) {
		store, _ := NewStore(t.TempDir())

		created, err := store.Create(ctx, lamp(4))
		require.NoError(t, err)
		created.Name = "mutated"

		got, err := store.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Lamp", got.Name)
	})

	t.Run("update and not found", func(t *testing.T) {
		store, _ := NewStore(t.TempDir())

		created, err := store.Create(ctx, lamp(4))
		require.NoError(t, err)

		fields := lamp(4)
		fields.Price = 40
		updated, err := store.Update(ctx, created.ID, fields)
		require.NoError(t, err)
		assert.Equal(t, int64(40), updated.Price)

		_, err = store.Update(ctx, 99, fields)
		assert.Equal(t, domain.ErrNotFound, err)
	})

	t.Run("delete persists", func(t *testing.T) {
		tempDir := t.TempDir()
		store, _ := NewStore(tempDir)

		created, err := store.Create(ctx, lamp(4))
		require.NoError(t, err)
		require.NoError(t, store.Delete(ctx, created.ID))

		reopened, err := NewStore(tempDir)
		require.NoError(t, err)
		assert.Empty(t, reopened.products)

		assert.Equal(t, domain.ErrNotFound, store.Delete(ctx, created.ID))
	})

	t.Run("creates temp file then renames for atomic write", func(t *testing.T) {
		tempDir := t.TempDir()
		store, _ := NewStore(tempDir)

		_, err := store.Create(ctx, lamp(1))
		require.NoError(t, err)

		path := filepath.Join(tempDir, "products.json")
		_, err = os.Stat(path)
		assert.NoError(t, err)
		_, err = os.Stat(path + ".tmp")
		assert.True(t, os.IsNotExist(err))
	})
}

func TestStoreListing(t *testing.T) {
	ctx := context.Background()
	store, _ := NewStore(t.TempDir())

	for _, owner := range []int64{1, 2, 1} {
		_, err := store.Create(ctx, lamp(owner))
		require.NoError(t, err)
	}

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{all[0].ID, all[1].ID, all[2].ID})

	mine, err := store.FindManyByOwner(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	store, _ := NewStore(t.TempDir())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Create(ctx, lamp(1))
		}()
	}
	wg.Wait()

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 10)

	seen := make(map[int64]bool)
	for _, p := range all {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
	}
}
