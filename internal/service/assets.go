package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bnema/vitrine/internal/domain"
	"github.com/bnema/vitrine/internal/infrastructure/logger"
	"github.com/bnema/vitrine/internal/infrastructure/metrics"
	"github.com/bnema/vitrine/internal/port"
	"github.com/bnema/vitrine/internal/validation"
)

const (
	DefaultMaxFileBytes int64 = 5 << 20
	DefaultMaxFiles           = 5
)

type AssetLimits struct {
	MaxFileBytes int64
	MaxFiles     int
}

func DefaultAssetLimits() AssetLimits {
	return AssetLimits{MaxFileBytes: DefaultMaxFileBytes, MaxFiles: DefaultMaxFiles}
}

// Upload is one incoming file. Size is the size declared by the client, or a
// negative value when unknown; the bytes actually read are checked as well.
type Upload struct {
	Filename string
	Size     int64
	Content  io.ReadSeeker
}

type DeleteResult struct {
	Ref     string
	Deleted bool
}

// AssetStore validates uploads and keeps them on a BlobStore under generated,
// collision-free keys. Refs handed out are the public URL path of the blob.
type AssetStore struct {
	blobs   port.BlobStore
	limits  AssetLimits
	prefix  string
	log     *zap.Logger
	metrics metrics.Recorder

	now func() time.Time
	seq atomic.Uint64
}

func NewAssetStore(blobs port.BlobStore, limits AssetLimits, publicPrefix string, log *zap.Logger, rec metrics.Recorder) *AssetStore {
	if limits.MaxFileBytes <= 0 {
		limits.MaxFileBytes = DefaultMaxFileBytes
	}
	if limits.MaxFiles <= 0 || limits.MaxFiles > DefaultMaxFiles {
		limits.MaxFiles = DefaultMaxFiles
	}
	if rec == nil {
		rec = metrics.Nop
	}
	return &AssetStore{
		blobs:   blobs,
		limits:  limits,
		prefix:  strings.TrimSuffix(publicPrefix, "/"),
		log:     logger.OrNop(log),
		metrics: rec,
		now:     time.Now,
	}
}

func (s *AssetStore) Limits() AssetLimits {
	return s.limits
}

// Initialize prepares the location of every category. It is idempotent.
func (s *AssetStore) Initialize(ctx context.Context) error {
	for _, c := range domain.Categories {
		if err := s.blobs.Prepare(ctx, string(c)); err != nil {
			return &domain.StorageError{Op: "prepare", Key: string(c), Err: err}
		}
	}
	return nil
}

func (s *AssetStore) Store(ctx context.Context, up Upload, ownerID int64, category domain.Category) (string, error) {
	if !category.Valid() {
		return "", domain.NewValidationError("category", fmt.Sprintf("unknown category %q", category))
	}
	if up.Content == nil {
		return "", domain.NewValidationError("file", "is empty")
	}
	if up.Size > s.limits.MaxFileBytes {
		return "", s.tooLarge()
	}

	mime, allowed, err := validation.ValidateMagicBytes(up.Content)
	if err != nil {
		return "", fmt.Errorf("inspect upload: %w", err)
	}
	if !allowed {
		s.log.Info("rejected upload",
			zap.String("filename", logger.SanitizeForLog(up.Filename)),
			zap.String("mime", mime),
		)
		return "", domain.NewValidationError("file", validation.ErrDisallowedFileType.Error())
	}
	ext, _ := validation.ExtensionFor(mime)

	key := s.KeyFor(category, ownerID, ext)
	body := &cappedReader{r: up.Content, remaining: s.limits.MaxFileBytes}

	size := up.Size
	if size <= 0 {
		size = -1
	}
	if err := s.blobs.Put(ctx, key, body, size, mime); err != nil {
		if body.exceeded || errors.Is(err, errFileTooLarge) {
			// the substrate may have kept a partial object
			_, _ = s.blobs.Remove(context.WithoutCancel(ctx), key)
			return "", s.tooLarge()
		}
		return "", &domain.StorageError{Op: "put", Key: key, Err: err}
	}

	s.metrics.AssetStored(string(category))
	ref := s.RefFor(key)
	s.log.Debug("asset stored", zap.String("ref", ref), zap.Int64("owner_id", ownerID))
	return ref, nil
}

// StoreMany stores every upload or none: when one fails, the assets already
// written by this call are removed before the error is returned.
func (s *AssetStore) StoreMany(ctx context.Context, uploads []Upload, ownerID int64, category domain.Category) ([]string, error) {
	if len(uploads) > s.limits.MaxFiles {
		return nil, domain.NewValidationError("images", fmt.Sprintf("at most %d files per request", s.limits.MaxFiles))
	}

	refs := make([]string, 0, len(uploads))
	for _, up := range uploads {
		ref, err := s.Store(ctx, up, ownerID, category)
		if err != nil {
			if len(refs) > 0 {
				s.metrics.Compensated("upload", len(refs))
				s.DeleteMany(context.WithoutCancel(ctx), refs)
			}
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// Delete removes the asset behind ref. A missing asset and a ref this store
// does not own both report false without error.
func (s *AssetStore) Delete(ctx context.Context, ref string) (bool, error) {
	key, ok := s.KeyFromRef(ref)
	if !ok {
		return false, nil
	}

	deleted, err := s.blobs.Remove(ctx, key)
	if err != nil {
		s.metrics.AssetDeleted(metrics.OutcomeFailed)
		return false, &domain.StorageError{Op: "remove", Key: key, Err: err}
	}
	if deleted {
		s.metrics.AssetDeleted(metrics.OutcomeDeleted)
	} else {
		s.metrics.AssetDeleted(metrics.OutcomeMissing)
	}
	return deleted, nil
}

// DeleteMany attempts every ref and never fails. Individual failures are
// logged and reported as not deleted.
func (s *AssetStore) DeleteMany(ctx context.Context, refs []string) []DeleteResult {
	results := make([]DeleteResult, 0, len(refs))
	for _, ref := range refs {
		deleted, err := s.Delete(ctx, ref)
		if err != nil {
			s.log.Warn("failed to delete asset",
				zap.String("ref", logger.SanitizeForLog(ref)),
				zap.Error(err),
			)
		}
		results = append(results, DeleteResult{Ref: ref, Deleted: deleted})
	}
	return results
}

// KeyFor generates {category}/{category}_{owner}_{suffix}.{ext}. The suffix
// combines wall clock, a process-wide counter and random bits.
func (s *AssetStore) KeyFor(category domain.Category, ownerID int64, ext string) string {
	suffix := fmt.Sprintf("%d-%d-%s", s.now().UnixMilli(), s.seq.Add(1), uuid.NewString()[:8])
	return fmt.Sprintf("%s/%s_%d_%s.%s", category, category, ownerID, suffix, ext)
}

func (s *AssetStore) RefFor(key string) string {
	return s.prefix + "/" + key
}

// KeyFromRef is the inverse of RefFor. It fails for refs outside the public
// prefix, such as external URLs.
func (s *AssetStore) KeyFromRef(ref string) (string, bool) {
	key, ok := strings.CutPrefix(ref, s.prefix+"/")
	if !ok || key == "" {
		return "", false
	}
	return key, true
}

func (s *AssetStore) tooLarge() error {
	return domain.NewValidationError("file", fmt.Sprintf("exceeds the %d byte limit", s.limits.MaxFileBytes))
}

var errFileTooLarge = errors.New("file exceeds size limit")

// cappedReader fails once more than remaining bytes have been read, so an
// understated declared size cannot slip an oversize file through.
type cappedReader struct {
	r         io.Reader
	remaining int64
	exceeded  bool
}

func (c *cappedReader) Read(p []byte) (int, error) {
	if c.remaining < 0 {
		c.exceeded = true
		return 0, errFileTooLarge
	}
	if int64(len(p)) > c.remaining+1 {
		p = p[:c.remaining+1]
	}
	n, err := c.r.Read(p)
	c.remaining -= int64(n)
	if c.remaining < 0 {
		c.exceeded = true
		return n, errFileTooLarge
	}
	return n, err
}
