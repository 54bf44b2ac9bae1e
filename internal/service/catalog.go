package service

import (
	"context"
	"errors"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/bnema/vitrine/internal/domain"
	"github.com/bnema/vitrine/internal/infrastructure/logger"
	"github.com/bnema/vitrine/internal/infrastructure/metrics"
	"github.com/bnema/vitrine/internal/port"
)

const (
	opCreate = "create"
	opUpdate = "update"
	opPatch  = "patch"
	opDelete = "delete"
)

// CatalogService keeps product records and their image assets consistent.
// Every mutating call validates and authorizes before touching a store, and
// removes assets the caller already stored whenever the record write does
// not happen. The original error is always returned unchanged.
type CatalogService struct {
	store   port.ProductStore
	assets  *AssetStore
	codec   *ImagePathCodec
	gate    *AuthorizationGate
	log     *zap.Logger
	metrics metrics.Recorder
}

func NewCatalogService(
	store port.ProductStore,
	assets *AssetStore,
	codec *ImagePathCodec,
	gate *AuthorizationGate,
	log *zap.Logger,
	rec metrics.Recorder,
) *CatalogService {
	if gate == nil {
		gate = NewAuthorizationGate()
	}
	if rec == nil {
		rec = metrics.Nop
	}
	return &CatalogService{
		store:   store,
		assets:  assets,
		codec:   codec,
		gate:    gate,
		log:     logger.OrNop(log),
		metrics: rec,
	}
}

// Create persists a new product owned by req. storedRefs are assets the
// caller already wrote; they are removed again if the product is not created.
func (s *CatalogService) Create(ctx context.Context, req domain.Requester, in domain.ProductInput, storedRefs []string) (*domain.Product, error) {
	draft, err := in.Validate()
	if err == nil && len(storedRefs) == 0 {
		err = s.checkExternalImage(draft)
	}
	if err != nil {
		return nil, s.abort(ctx, opCreate, storedRefs, err)
	}

	fields := domain.ProductFields{
		Name:        draft.Name,
		Description: draft.Description,
		Price:       draft.Price,
		OwnerID:     req.ID,
		Image:       draft.Image,
		Images:      EmptyImages,
	}
	if len(storedRefs) > 0 {
		fields.Image = storedRefs[0]
		fields.Images = s.codec.Encode(storedRefs)
	}

	rec, err := s.store.Create(ctx, fields)
	if err != nil {
		return nil, s.abort(ctx, opCreate, storedRefs, err)
	}

	s.metrics.Operation(opCreate, outcomeOf(nil))
	s.log.Info("product created",
		zap.Int64("id", rec.ID),
		zap.Int64("owner_id", rec.OwnerID),
		zap.Int("images", len(storedRefs)),
	)
	return s.present(ctx, rec), nil
}

// Update replaces the product's fields. With newRefs the asset list is
// replaced too and the previous assets are removed once the write succeeded.
// Without newRefs the asset list is kept unless in carries an external image
// URL, which then becomes the only image. Echoing any of the record's own
// images keeps the list; pointing at any other stored asset is rejected.
func (s *CatalogService) Update(ctx context.Context, req domain.Requester, id int64, in domain.ProductInput, newRefs []string) (*domain.Product, error) {
	return s.update(ctx, opUpdate, req, id, in, newRefs)
}

// Patch changes only the fields present in in. The merged result is
// validated like a full update.
func (s *CatalogService) Patch(ctx context.Context, req domain.Requester, id int64, in domain.ProductInput) (*domain.Product, error) {
	return s.update(ctx, opPatch, req, id, in, nil)
}

func (s *CatalogService) update(ctx context.Context, op string, req domain.Requester, id int64, in domain.ProductInput, newRefs []string) (*domain.Product, error) {
	rec, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, s.abort(ctx, op, newRefs, err)
	}
	if err := s.gate.Check(rec.OwnerID, req); err != nil {
		return nil, s.abort(ctx, op, newRefs, err)
	}
	if op == opPatch {
		in = in.Overlay(rec)
	}
	if in.Image != nil && s.isOwnImage(*in.Image, rec) {
		// echo of an image the record already has
		in.Image = nil
	}
	draft, err := in.Validate()
	if err == nil && len(newRefs) == 0 {
		err = s.checkExternalImage(draft)
	}
	if err != nil {
		return nil, s.abort(ctx, op, newRefs, err)
	}

	fields := domain.ProductFields{
		Name:        draft.Name,
		Description: draft.Description,
		Price:       draft.Price,
		OwnerID:     rec.OwnerID,
		Image:       rec.Image,
		Images:      rec.Images,
	}

	var stale []string
	switch {
	case len(newRefs) > 0:
		fields.Image = newRefs[0]
		fields.Images = s.codec.Encode(newRefs)
		stale = s.ownedRefs(rec)
	case draft.Image != "" && draft.Image != rec.Image:
		fields.Image = draft.Image
		fields.Images = EmptyImages
		stale = s.ownedRefs(rec)
	}

	updated, err := s.store.Update(ctx, id, fields)
	if err != nil {
		return nil, s.abort(ctx, op, newRefs, err)
	}

	if len(stale) > 0 {
		s.assets.DeleteMany(context.WithoutCancel(ctx), stale)
	}

	s.metrics.Operation(op, outcomeOf(nil))
	s.log.Info("product updated",
		zap.String("op", op),
		zap.Int64("id", id),
		zap.Int("replaced_images", len(stale)),
	)
	return s.present(ctx, updated), nil
}

// Delete removes the record first and its assets afterwards. A leftover
// asset is an orphan the sweeper can collect; a record pointing at removed
// assets would not be recoverable.
func (s *CatalogService) Delete(ctx context.Context, req domain.Requester, id int64) error {
	rec, err := s.store.FindByID(ctx, id)
	if err != nil {
		return s.abort(ctx, opDelete, nil, err)
	}
	if err := s.gate.Check(rec.OwnerID, req); err != nil {
		return s.abort(ctx, opDelete, nil, err)
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return s.abort(ctx, opDelete, nil, err)
	}

	results := s.assets.DeleteMany(context.WithoutCancel(ctx), s.ownedRefs(rec))

	s.metrics.Operation(opDelete, outcomeOf(nil))
	s.log.Info("product deleted",
		zap.Int64("id", id),
		zap.Int("assets_removed", countDeleted(results)),
	)
	return nil
}

func (s *CatalogService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	rec, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.present(ctx, rec), nil
}

func (s *CatalogService) List(ctx context.Context) ([]*domain.Product, error) {
	recs, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.presentAll(ctx, recs), nil
}

func (s *CatalogService) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Product, error) {
	recs, err := s.store.FindManyByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.presentAll(ctx, recs), nil
}

// abort compensates refs, records the outcome and hands err back untouched.
func (s *CatalogService) abort(ctx context.Context, op string, refs []string, err error) error {
	outcome := outcomeOf(err)
	s.metrics.Operation(op, outcome)

	if len(refs) == 0 {
		if outcome == "error" {
			s.log.Error("product operation failed", zap.String("op", op), zap.Error(err))
		}
		return err
	}

	s.metrics.Compensated(op, len(refs))
	results := s.assets.DeleteMany(context.WithoutCancel(ctx), refs)
	s.log.Warn("product operation aborted, uploaded assets removed",
		zap.String("op", op),
		zap.String("outcome", outcome),
		zap.Int("assets", len(refs)),
		zap.Int("removed", countDeleted(results)),
		zap.Error(err),
	)
	return err
}

func (s *CatalogService) ownedRefs(rec *domain.ProductRecord) []string {
	return referencedAssets(s.codec, rec)
}

// referencedAssets lists every asset of rec this service stored: the decoded
// list plus the primary ref, without duplicates.
func referencedAssets(codec *ImagePathCodec, rec *domain.ProductRecord) []string {
	seen := make(map[string]struct{})
	var refs []string
	for _, ref := range append(codec.Decode(rec.Images), rec.Image) {
		if !codec.Owns(ref) {
			continue
		}
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = struct{}{}
		refs = append(refs, ref)
	}
	return refs
}

// isOwnImage reports whether raw names one of rec's stored assets, either as
// stored or as handed out to a client on any origin.
func (s *CatalogService) isOwnImage(raw string, rec *domain.ProductRecord) bool {
	ref, ok := s.codec.AssetRef(strings.TrimSpace(raw))
	return ok && slices.Contains(referencedAssets(s.codec, rec), ref)
}

// checkExternalImage rejects an image URL that points at a stored asset. Such
// an asset belongs to some record and may be removed with it.
func (s *CatalogService) checkExternalImage(draft domain.ProductDraft) error {
	if draft.Image == "" {
		return nil
	}
	if _, ok := s.codec.AssetRef(draft.Image); ok {
		return domain.NewValidationError("image", "must not point at a stored asset")
	}
	return nil
}

func (s *CatalogService) present(ctx context.Context, rec *domain.ProductRecord) *domain.Product {
	origin := domain.OriginFromContext(ctx)
	return &domain.Product{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Price:       rec.Price,
		OwnerID:     rec.OwnerID,
		Image:       s.codec.MaterializeOne(rec.Image, origin),
		Images:      s.codec.Materialize(s.codec.Decode(rec.Images), origin),
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}

func (s *CatalogService) presentAll(ctx context.Context, recs []*domain.ProductRecord) []*domain.Product {
	out := make([]*domain.Product, len(recs))
	for i, rec := range recs {
		out[i] = s.present(ctx, rec)
	}
	return out
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrValidation):
		return "invalid"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	default:
		return "error"
	}
}

func countDeleted(results []DeleteResult) int {
	n := 0
	for _, r := range results {
		if r.Deleted {
			n++
		}
	}
	return n
}
