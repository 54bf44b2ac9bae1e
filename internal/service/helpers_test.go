package service

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/vitrine/internal/adapter/blob/disk"
)

func jpegUpload(name string) Upload {
	data := append([]byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}, bytes.Repeat([]byte{0x42}, 64)...)
	return Upload{Filename: name, Size: int64(len(data)), Content: bytes.NewReader(data)}
}

func pngUpload(name string) Upload {
	data := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0x00}, 32)...)
	return Upload{Filename: name, Size: int64(len(data)), Content: bytes.NewReader(data)}
}

func textUpload(name string) Upload {
	data := []byte("definitely not an image")
	return Upload{Filename: name, Size: int64(len(data)), Content: bytes.NewReader(data)}
}

func newDiskAssets(t *testing.T) (*AssetStore, string) {
	t.Helper()
	root := t.TempDir()
	assets := NewAssetStore(disk.NewStore(root), DefaultAssetLimits(), "/uploads", nil, nil)
	require.NoError(t, assets.Initialize(t.Context()))
	return assets, root
}

// assetExists reports whether the blob behind ref is on disk below root.
func assetExists(t *testing.T, assets *AssetStore, root, ref string) bool {
	t.Helper()
	key, ok := assets.KeyFromRef(ref)
	require.True(t, ok, "ref %s is not owned", ref)
	_, err := os.Stat(filepath.Join(root, filepath.FromSlash(key)))
	return err == nil
}

func countFiles(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return len(entries)
}
