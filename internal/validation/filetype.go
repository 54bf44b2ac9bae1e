// Package validation sniffs uploaded content and checks it against the image
// allow-list.
package validation

import (
	"errors"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
)

// ErrDisallowedFileType is returned when a file type is not in the allowlist.
var ErrDisallowedFileType = errors.New("only JPEG, PNG, and WebP images are allowed")

// allowedImageTypes maps each accepted MIME type to the extension used in
// generated keys.
var allowedImageTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// ValidateMagicBytes detects the content type of reader from its leading
// bytes and rewinds it. The declared client MIME type is never trusted.
//
// Returns:
//   - mime: the detected MIME type
//   - allowed: whether the type is in the image allow-list
//   - err: any error encountered while reading or seeking
func ValidateMagicBytes(reader io.ReadSeeker) (mime string, allowed bool, err error) {
	detected, err := mimetype.DetectReader(reader)
	if err != nil {
		return "", false, fmt.Errorf("detect content type: %w", err)
	}

	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return "", false, fmt.Errorf("rewind upload: %w", err)
	}

	mime = detected.String()
	_, allowed = allowedImageTypes[mime]
	return mime, allowed, nil
}

// ExtensionFor returns the key extension for an allowed MIME type.
func ExtensionFor(mime string) (string, bool) {
	ext, ok := allowedImageTypes[mime]
	return ext, ok
}

// ContentTypeFor maps a key extension back to the MIME type it was stored as.
func ContentTypeFor(ext string) string {
	for mime, e := range allowedImageTypes {
		if e == ext {
			return mime
		}
	}
	return "application/octet-stream"
}
