package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/bnema/vitrine/config"
	"github.com/bnema/vitrine/internal/adapter/blob/disk"
	miniostore "github.com/bnema/vitrine/internal/adapter/blob/minio"
	"github.com/bnema/vitrine/internal/adapter/storage/jsonfile"
	"github.com/bnema/vitrine/internal/adapter/storage/postgres"
	sqlitestore "github.com/bnema/vitrine/internal/adapter/storage/sqlite"
	"github.com/bnema/vitrine/internal/infrastructure/logger"
	"github.com/bnema/vitrine/internal/infrastructure/metrics"
	"github.com/bnema/vitrine/internal/port"
	"github.com/bnema/vitrine/internal/service"
)

// app holds the wired components shared by every command.
type app struct {
	cfg      *config.Config
	log      *zap.Logger
	registry *prometheus.Registry

	store   port.ProductStore
	blobs   port.BlobStore
	assets  *service.AssetStore
	codec   *service.ImagePathCodec
	catalog *service.CatalogService
	sweeper *service.OrphanSweeper
	tokens  *service.AuthService

	closers []func() error
}

func newApp(ctx context.Context, configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	a := &app{cfg: cfg, log: log, registry: prometheus.NewRegistry()}
	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	rec, err := metrics.NewPrometheus(a.registry)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	if err := a.openStore(ctx); err != nil {
		a.Close()
		return nil, err
	}
	if err := a.openBlobs(); err != nil {
		a.Close()
		return nil, err
	}

	limits := service.AssetLimits{MaxFileBytes: cfg.MaxFileBytes(), MaxFiles: cfg.MaxFiles}
	a.assets = service.NewAssetStore(a.blobs, limits, cfg.PublicPrefix, log, rec)
	if err := a.assets.Initialize(ctx); err != nil {
		a.Close()
		return nil, fmt.Errorf("prepare asset storage: %w", err)
	}

	a.codec = service.NewImagePathCodec(cfg.PublicPrefix, log)
	a.catalog = service.NewCatalogService(a.store, a.assets, a.codec, service.NewAuthorizationGate(), log, rec)
	a.sweeper = service.NewOrphanSweeper(a.store, a.blobs, a.assets, a.codec, cfg.OrphanGrace, log)
	a.tokens = service.NewAuthService(cfg.JWTSecret)

	return a, nil
}

func (a *app) openStore(ctx context.Context) error {
	switch a.cfg.DBDriver {
	case config.DBDriverPostgres:
		store, err := postgres.Open(ctx, a.cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("open postgres store: %w", err)
		}
		a.store = store
		a.closers = append(a.closers, store.Close)
	case config.DBDriverJSONFile:
		store, err := jsonfile.NewStore(a.cfg.DataDir)
		if err != nil {
			return fmt.Errorf("open json store: %w", err)
		}
		a.store = store
	default:
		store, err := sqlitestore.NewStore(a.cfg.DataDir)
		if err != nil {
			return fmt.Errorf("open sqlite store: %w", err)
		}
		a.store = store
		a.closers = append(a.closers, store.Close)
	}
	a.log.Info("record store ready", zap.String("driver", a.cfg.DBDriver))
	return nil
}

func (a *app) openBlobs() error {
	switch a.cfg.BlobDriver {
	case config.BlobDriverMinIO:
		m := a.cfg.MinIO
		store, err := miniostore.NewStore(miniostore.Config{
			Endpoint:  m.Endpoint,
			AccessKey: m.AccessKey,
			SecretKey: m.SecretKey,
			Bucket:    m.Bucket,
			Region:    m.Region,
			UseSSL:    m.UseSSL,
		})
		if err != nil {
			return fmt.Errorf("open minio blob store: %w", err)
		}
		a.blobs = store
	default:
		if err := os.MkdirAll(a.cfg.AssetRoot, 0755); err != nil {
			return fmt.Errorf("create asset root: %w", err)
		}
		a.blobs = disk.NewStore(a.cfg.AssetRoot)
	}
	a.log.Info("blob store ready", zap.String("driver", a.cfg.BlobDriver))
	return nil
}

func (a *app) Close() {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	if err := errors.Join(errs...); err != nil {
		a.log.Warn("close failed", zap.Error(err))
	}
	_ = a.log.Sync()
}
