package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	httpadapter "github.com/bnema/vitrine/internal/adapter/http"
	"github.com/bnema/vitrine/internal/adapter/http/ratelimit"
)

const (
	authMaxFailures = 10
	authWindow      = 15 * time.Minute
	authBlock       = 30 * time.Minute
	limiterPrune    = 10 * time.Minute
	shutdownTimeout = 30 * time.Second
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, *configPath)
		},
	}
}

func serve(ctx context.Context, configPath string) error {
	a, err := newApp(ctx, configPath)
	if err != nil {
		return err
	}
	defer a.Close()

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	limiter := ratelimit.NewAuthFailureLimiter(authMaxFailures, authWindow, authBlock)
	server := httpadapter.NewServer(
		httpadapter.ServerConfig{
			BehindProxy:  a.cfg.BehindProxy,
			PublicPrefix: a.cfg.PublicPrefix,
			Gatherer:     a.registry,
		},
		a.catalog, a.assets, a.blobs, a.tokens, limiter, a.log,
	)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", a.cfg.Port),
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       5 * time.Minute,
		WriteTimeout:      5 * time.Minute,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info("server listening",
			zap.String("addr", httpServer.Addr),
			zap.String("version", version),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		limiter.Run(gctx, limiterPrune)
		return nil
	})

	if a.cfg.SweepInterval > 0 {
		g.Go(func() error {
			a.sweeper.Run(gctx, a.cfg.SweepInterval)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		a.log.Error("server stopped with error", zap.Error(err))
		return err
	}
	a.log.Info("shutdown complete")
	return nil
}
