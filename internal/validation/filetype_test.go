package validation

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	jpegMagic = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46, 0x49, 0x46}
	pngMagic  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	webpMagic = []byte{0x52, 0x49, 0x46, 0x46, 0x00, 0x00, 0x00, 0x00, 0x57, 0x45, 0x42, 0x50, 0x56, 0x50, 0x38, 0x20}
	gifMagic  = []byte("GIF89a")
	phpMagic  = []byte("<?php echo 'hello'; ?>")
	htmlMagic = []byte("<!DOCTYPE html><html><body></body></html>")
	exeMagic  = []byte{0x4D, 0x5A, 0x90, 0x00, 0x03, 0x00, 0x00, 0x00}
)

func padBytes(magic []byte, size int) []byte {
	if len(magic) >= size {
		return magic
	}
	result := make([]byte, size)
	copy(result, magic)
	return result
}

func TestValidateMagicBytes(t *testing.T) {
	tests := []struct {
		name        string
		content     []byte
		wantMIME    string
		wantAllowed bool
	}{
		{"jpeg allowed", padBytes(jpegMagic, 512), "image/jpeg", true},
		{"png allowed", padBytes(pngMagic, 512), "image/png", true},
		{"webp allowed", padBytes(webpMagic, 512), "image/webp", true},
		{"gif rejected", padBytes(gifMagic, 512), "image/gif", false},
		{"php rejected", phpMagic, "", false},
		{"html rejected", htmlMagic, "", false},
		{"exe rejected", padBytes(exeMagic, 512), "", false},
		{"empty rejected", []byte{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mime, allowed, err := ValidateMagicBytes(bytes.NewReader(tt.content))

			require.NoError(t, err)
			assert.Equal(t, tt.wantAllowed, allowed)
			if tt.wantMIME != "" {
				assert.Equal(t, tt.wantMIME, mime)
			}
		})
	}
}

func TestValidateMagicBytes_RewindsReader(t *testing.T) {
	content := padBytes(pngMagic, 2048)
	reader := bytes.NewReader(content)

	_, _, err := ValidateMagicBytes(reader)
	require.NoError(t, err)

	rest, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, content, rest)
}

func TestExtensionFor(t *testing.T) {
	ext, ok := ExtensionFor("image/jpeg")
	assert.True(t, ok)
	assert.Equal(t, "jpg", ext)

	_, ok = ExtensionFor("image/gif")
	assert.False(t, ok)
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "image/webp", ContentTypeFor("webp"))
	assert.Equal(t, "image/png", ContentTypeFor("png"))
	assert.Equal(t, "application/octet-stream", ContentTypeFor("exe"))
}
