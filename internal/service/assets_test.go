package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vitrine/internal/adapter/blob/disk"
	"github.com/bnema/vitrine/internal/domain"
	"github.com/bnema/vitrine/internal/infrastructure/metrics"
	"github.com/bnema/vitrine/internal/port/mocks"
)

var refPattern = regexp.MustCompile(`^/uploads/product/product_7_\d+-\d+-[0-9a-f]{8}\.(jpg|png)$`)

func TestAssetStore_Store(t *testing.T) {
	ctx := context.Background()

	t.Run("stores allowed image under generated key", func(t *testing.T) {
		assets, root := newDiskAssets(t)

		ref, err := assets.Store(ctx, jpegUpload("chair.jpg"), 7, domain.CategoryProduct)

		require.NoError(t, err)
		assert.Regexp(t, refPattern, ref)
		assert.True(t, assetExists(t, assets, root, ref))
	})

	t.Run("extension follows detected type, not filename", func(t *testing.T) {
		assets, _ := newDiskAssets(t)

		ref, err := assets.Store(ctx, pngUpload("photo.jpg"), 7, domain.CategoryProduct)

		require.NoError(t, err)
		assert.Equal(t, ".png", filepath.Ext(ref))
	})

	t.Run("rejects disallowed type", func(t *testing.T) {
		assets, root := newDiskAssets(t)

		_, err := assets.Store(ctx, textUpload("notes.jpg"), 7, domain.CategoryProduct)

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Zero(t, countFiles(t, filepath.Join(root, "product")))
	})

	t.Run("rejects declared oversize", func(t *testing.T) {
		assets, _ := newDiskAssets(t)
		up := jpegUpload("huge.jpg")
		up.Size = DefaultMaxFileBytes + 1

		_, err := assets.Store(ctx, up, 7, domain.CategoryProduct)

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("rejects oversize content with understated size", func(t *testing.T) {
		root := t.TempDir()
		assets := NewAssetStore(disk.NewStore(root), AssetLimits{MaxFileBytes: 32, MaxFiles: 5}, "/uploads", nil, nil)
		require.NoError(t, assets.Initialize(ctx))

		data := append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, bytes.Repeat([]byte{1}, 100)...)
		_, err := assets.Store(ctx, Upload{Filename: "big.jpg", Size: -1, Content: bytes.NewReader(data)}, 7, domain.CategoryProduct)

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Zero(t, countFiles(t, filepath.Join(root, "product")))
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		assets, _ := newDiskAssets(t)

		_, err := assets.Store(ctx, jpegUpload("a.jpg"), 7, domain.Category("avatars"))

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("substrate failure is a storage error", func(t *testing.T) {
		blobs := mocks.NewBlobStoreMock(t)
		blobs.EXPECT().Put(mock.Anything, mock.Anything, mock.Anything, mock.Anything, "image/jpeg").Return(errors.New("disk full"))
		assets := NewAssetStore(blobs, DefaultAssetLimits(), "/uploads", nil, nil)

		_, err := assets.Store(ctx, jpegUpload("a.jpg"), 7, domain.CategoryProduct)

		assert.ErrorIs(t, err, domain.ErrStorage)
		var serr *domain.StorageError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, "put", serr.Op)
	})
}

func TestAssetStore_StoreMany(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps upload order", func(t *testing.T) {
		assets, root := newDiskAssets(t)

		refs, err := assets.StoreMany(ctx, []Upload{jpegUpload("1.jpg"), pngUpload("2.png")}, 7, domain.CategoryProduct)

		require.NoError(t, err)
		require.Len(t, refs, 2)
		assert.Equal(t, ".jpg", filepath.Ext(refs[0]))
		assert.Equal(t, ".png", filepath.Ext(refs[1]))
		for _, ref := range refs {
			assert.True(t, assetExists(t, assets, root, ref))
		}
	})

	t.Run("too many files writes nothing", func(t *testing.T) {
		assets, root := newDiskAssets(t)
		uploads := make([]Upload, DefaultMaxFiles+1)
		for i := range uploads {
			uploads[i] = jpegUpload("x.jpg")
		}

		_, err := assets.StoreMany(ctx, uploads, 7, domain.CategoryProduct)

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Zero(t, countFiles(t, filepath.Join(root, "product")))
	})

	t.Run("failure removes files written by the same call", func(t *testing.T) {
		assets, root := newDiskAssets(t)

		_, err := assets.StoreMany(ctx, []Upload{jpegUpload("1.jpg"), jpegUpload("2.jpg"), textUpload("3.txt")}, 7, domain.CategoryProduct)

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Zero(t, countFiles(t, filepath.Join(root, "product")))
	})

	t.Run("cancelled request still cleans up", func(t *testing.T) {
		root := t.TempDir()
		cancelled, cancel := context.WithCancel(ctx)
		blobs := &cancelAfterPut{Store: disk.NewStore(root), cancel: cancel}
		assets := NewAssetStore(blobs, DefaultAssetLimits(), "/uploads", nil, nil)
		require.NoError(t, assets.Initialize(ctx))

		_, err := assets.StoreMany(cancelled, []Upload{jpegUpload("1.jpg"), jpegUpload("2.jpg")}, 7, domain.CategoryProduct)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, countFiles(t, filepath.Join(root, "product")))
	})
}

// cancelAfterPut cancels the request context once the first blob is written.
type cancelAfterPut struct {
	*disk.Store
	cancel context.CancelFunc
}

func (c *cancelAfterPut) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	err := c.Store.Put(ctx, key, r, size, contentType)
	c.cancel()
	return err
}

func TestAssetStore_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("idempotent", func(t *testing.T) {
		assets, root := newDiskAssets(t)
		ref, err := assets.Store(ctx, jpegUpload("a.jpg"), 7, domain.CategoryProduct)
		require.NoError(t, err)

		deleted, err := assets.Delete(ctx, ref)
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.False(t, assetExists(t, assets, root, ref))

		deleted, err = assets.Delete(ctx, ref)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("external refs are never touched", func(t *testing.T) {
		blobs := mocks.NewBlobStoreMock(t)
		assets := NewAssetStore(blobs, DefaultAssetLimits(), "/uploads", nil, nil)

		for _, ref := range []string{"https://cdn.example.com/a.png", "", "/uploads/", "/static/a.png"} {
			deleted, err := assets.Delete(ctx, ref)
			assert.NoError(t, err)
			assert.False(t, deleted)
		}
	})

	t.Run("substrate failure is a storage error", func(t *testing.T) {
		blobs := mocks.NewBlobStoreMock(t)
		blobs.EXPECT().Remove(mock.Anything, "product/a.jpg").Return(false, errors.New("permission denied"))
		assets := NewAssetStore(blobs, DefaultAssetLimits(), "/uploads", nil, nil)

		_, err := assets.Delete(ctx, "/uploads/product/a.jpg")

		assert.ErrorIs(t, err, domain.ErrStorage)
	})
}

func TestAssetStore_DeleteMany(t *testing.T) {
	blobs := mocks.NewBlobStoreMock(t)
	blobs.EXPECT().Remove(mock.Anything, "product/a.jpg").Return(false, errors.New("permission denied"))
	blobs.EXPECT().Remove(mock.Anything, "product/b.jpg").Return(true, nil)
	blobs.EXPECT().Remove(mock.Anything, "product/c.jpg").Return(false, nil)

	reg := prometheus.NewRegistry()
	rec, err := metrics.NewPrometheus(reg)
	require.NoError(t, err)
	assets := NewAssetStore(blobs, DefaultAssetLimits(), "/uploads", nil, rec)

	results := assets.DeleteMany(context.Background(), []string{
		"/uploads/product/a.jpg",
		"/uploads/product/b.jpg",
		"/uploads/product/c.jpg",
		"https://cdn.example.com/d.jpg",
	})

	assert.Equal(t, []DeleteResult{
		{Ref: "/uploads/product/a.jpg", Deleted: false},
		{Ref: "/uploads/product/b.jpg", Deleted: true},
		{Ref: "/uploads/product/c.jpg", Deleted: false},
		{Ref: "https://cdn.example.com/d.jpg", Deleted: false},
	}, results)

	expected := `
# HELP vitrine_assets_deleted_total Asset delete attempts by outcome.
# TYPE vitrine_assets_deleted_total counter
vitrine_assets_deleted_total{outcome="deleted"} 1
vitrine_assets_deleted_total{outcome="failed"} 1
vitrine_assets_deleted_total{outcome="missing"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "vitrine_assets_deleted_total"))
}

func TestAssetStore_KeyForIsUniqueUnderConcurrency(t *testing.T) {
	assets := NewAssetStore(nil, DefaultAssetLimits(), "/uploads", nil, nil)
	frozen := time.UnixMilli(1700000000000)
	assets.now = func() time.Time { return frozen }

	const n = 200
	keys := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			keys <- assets.KeyFor(domain.CategoryProduct, 7, "jpg")
		}()
	}
	wg.Wait()
	close(keys)

	seen := make(map[string]struct{}, n)
	for k := range keys {
		assert.Regexp(t, `^product/product_7_1700000000000-\d+-[0-9a-f]{8}\.jpg$`, k)
		seen[k] = struct{}{}
	}
	assert.Len(t, seen, n)
}

func TestAssetStore_RefRoundTrip(t *testing.T) {
	assets := NewAssetStore(nil, DefaultAssetLimits(), "/uploads/", nil, nil)

	ref := assets.RefFor("product/a.jpg")
	assert.Equal(t, "/uploads/product/a.jpg", ref)

	key, ok := assets.KeyFromRef(ref)
	assert.True(t, ok)
	assert.Equal(t, "product/a.jpg", key)
}

func TestNewAssetStore_LimitDefaults(t *testing.T) {
	tests := []struct {
		name      string
		limits    AssetLimits
		wantFiles int
		wantBytes int64
	}{
		{name: "zero values", limits: AssetLimits{}, wantFiles: DefaultMaxFiles, wantBytes: DefaultMaxFileBytes},
		{name: "lower limits kept", limits: AssetLimits{MaxFiles: 2, MaxFileBytes: 1024}, wantFiles: 2, wantBytes: 1024},
		{name: "file count capped", limits: AssetLimits{MaxFiles: 10}, wantFiles: DefaultMaxFiles, wantBytes: DefaultMaxFileBytes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewAssetStore(nil, tt.limits, "/uploads", nil, nil).Limits()

			assert.Equal(t, tt.wantFiles, got.MaxFiles)
			assert.Equal(t, tt.wantBytes, got.MaxFileBytes)
		})
	}
}
