package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vitrine/internal/adapter/blob/disk"
	"github.com/bnema/vitrine/internal/domain"
	"github.com/bnema/vitrine/internal/port"
	"github.com/bnema/vitrine/internal/port/mocks"
)

func TestOrphanSweeper_Sweep(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	blobs := disk.NewStore(root)
	assets := NewAssetStore(blobs, DefaultAssetLimits(), "/uploads", nil, nil)
	require.NoError(t, assets.Initialize(ctx))
	codec := NewImagePathCodec("/uploads", nil)

	kept, err := assets.StoreMany(ctx, []Upload{jpegUpload("a.jpg"), jpegUpload("b.jpg")}, 7, domain.CategoryProduct)
	require.NoError(t, err)
	orphan, err := assets.Store(ctx, jpegUpload("c.jpg"), 7, domain.CategoryProduct)
	require.NoError(t, err)
	fresh, err := assets.Store(ctx, jpegUpload("d.jpg"), 7, domain.CategoryProduct)
	require.NoError(t, err)
	profile, err := assets.Store(ctx, jpegUpload("e.jpg"), 7, domain.CategoryProfile)
	require.NoError(t, err)

	old := time.Now().Add(-2 * time.Hour)
	for _, ref := range append([]string{orphan, profile}, kept...) {
		key, _ := assets.KeyFromRef(ref)
		require.NoError(t, os.Chtimes(filepath.Join(root, filepath.FromSlash(key)), old, old))
	}

	store := mocks.NewProductStoreMock(t)
	store.EXPECT().FindAll(mock.Anything).Return([]*domain.ProductRecord{
		{ID: 1, Image: kept[0], Images: codec.Encode(kept)},
		{ID: 2, Image: "https://cdn.example.com/x.png", Images: EmptyImages},
	}, nil)

	sweeper := NewOrphanSweeper(store, blobs, assets, codec, time.Hour, nil)
	report, err := sweeper.Sweep(ctx)

	require.NoError(t, err)
	assert.Equal(t, SweepReport{Scanned: 4, Young: 1, Removed: 1}, report)
	assert.True(t, assetExists(t, assets, root, kept[0]))
	assert.True(t, assetExists(t, assets, root, kept[1]))
	assert.True(t, assetExists(t, assets, root, fresh))
	assert.True(t, assetExists(t, assets, root, profile), "profile assets are not product owned")
	assert.False(t, assetExists(t, assets, root, orphan))
}

func TestOrphanSweeper_StoreFailure(t *testing.T) {
	store := mocks.NewProductStoreMock(t)
	store.EXPECT().FindAll(mock.Anything).Return(nil, errors.New("db down"))
	blobs := mocks.NewBlobStoreMock(t)
	assets := NewAssetStore(blobs, DefaultAssetLimits(), "/uploads", nil, nil)

	sweeper := NewOrphanSweeper(store, blobs, assets, NewImagePathCodec("/uploads", nil), 0, nil)
	_, err := sweeper.Sweep(context.Background())

	assert.Error(t, err)
}

func TestOrphanSweeper_RemoveFailureIsCounted(t *testing.T) {
	store := mocks.NewProductStoreMock(t)
	store.EXPECT().FindAll(mock.Anything).Return(nil, nil)
	blobs := mocks.NewBlobStoreMock(t)
	blobs.EXPECT().List(mock.Anything, "product").Return([]port.BlobInfo{
		{Key: "product/a.jpg", ModTime: time.Now().Add(-48 * time.Hour)},
	}, nil)
	blobs.EXPECT().Remove(mock.Anything, "product/a.jpg").Return(false, errors.New("busy"))
	assets := NewAssetStore(blobs, DefaultAssetLimits(), "/uploads", nil, nil)

	sweeper := NewOrphanSweeper(store, blobs, assets, NewImagePathCodec("/uploads", nil), time.Hour, nil)
	report, err := sweeper.Sweep(context.Background())

	require.NoError(t, err)
	assert.Equal(t, SweepReport{Scanned: 1, Failed: 1}, report)
}

func TestOrphanSweeper_RunStopsWithContext(t *testing.T) {
	store := mocks.NewProductStoreMock(t)
	store.EXPECT().FindAll(mock.Anything).Return(nil, nil).Maybe()
	blobs := mocks.NewBlobStoreMock(t)
	blobs.EXPECT().List(mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	assets := NewAssetStore(blobs, DefaultAssetLimits(), "/uploads", nil, nil)
	sweeper := NewOrphanSweeper(store, blobs, assets, NewImagePathCodec("/uploads", nil), time.Hour, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
