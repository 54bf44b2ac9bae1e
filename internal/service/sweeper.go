package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/bnema/vitrine/internal/domain"
	"github.com/bnema/vitrine/internal/infrastructure/logger"
	"github.com/bnema/vitrine/internal/port"
)

const DefaultOrphanGrace = time.Hour

type SweepReport struct {
	Scanned int
	Young   int
	Removed int
	Failed  int
}

// OrphanSweeper removes assets no product references any more. Assets
// younger than the grace period are left alone since their record may still
// be in the middle of being written.
type OrphanSweeper struct {
	store  port.ProductStore
	blobs  port.BlobStore
	assets *AssetStore
	codec  *ImagePathCodec
	grace  time.Duration
	log    *zap.Logger

	// Categories whose assets are owned by products.
	Categories []domain.Category

	now func() time.Time
}

func NewOrphanSweeper(
	store port.ProductStore,
	blobs port.BlobStore,
	assets *AssetStore,
	codec *ImagePathCodec,
	grace time.Duration,
	log *zap.Logger,
) *OrphanSweeper {
	if grace <= 0 {
		grace = DefaultOrphanGrace
	}
	return &OrphanSweeper{
		store:      store,
		blobs:      blobs,
		assets:     assets,
		codec:      codec,
		grace:      grace,
		log:        logger.OrNop(log),
		Categories: []domain.Category{domain.CategoryProduct},
		now:        time.Now,
	}
}

func (w *OrphanSweeper) Sweep(ctx context.Context) (SweepReport, error) {
	var report SweepReport

	// References are collected before blobs are listed, so an asset stored
	// after this point is either young or already referenced.
	recs, err := w.store.FindAll(ctx)
	if err != nil {
		return report, fmt.Errorf("load products: %w", err)
	}
	referenced := make(map[string]struct{})
	for _, rec := range recs {
		for _, ref := range referencedAssets(w.codec, rec) {
			referenced[ref] = struct{}{}
		}
	}

	cutoff := w.now().Add(-w.grace)
	for _, category := range w.Categories {
		blobs, err := w.blobs.List(ctx, string(category))
		if err != nil {
			return report, fmt.Errorf("list %s assets: %w", category, err)
		}
		for _, blob := range blobs {
			report.Scanned++
			ref := w.assets.RefFor(blob.Key)
			if _, ok := referenced[ref]; ok {
				continue
			}
			if blob.ModTime.After(cutoff) {
				report.Young++
				continue
			}
			if _, err := w.assets.Delete(ctx, ref); err != nil {
				report.Failed++
				w.log.Warn("failed to remove orphaned asset", zap.String("ref", ref), zap.Error(err))
				continue
			}
			report.Removed++
		}
	}

	if report.Removed > 0 || report.Failed > 0 {
		w.log.Info("orphan sweep finished",
			zap.Int("scanned", report.Scanned),
			zap.Int("removed", report.Removed),
			zap.Int("failed", report.Failed),
		)
	}
	return report, nil
}

// Run sweeps every interval until ctx is done.
func (w *OrphanSweeper) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if _, err := w.Sweep(ctx); err != nil && ctx.Err() == nil {
				w.log.Error("orphan sweep failed", zap.Error(err))
			}
		case <-ctx.Done():
			return
		}
	}
}
