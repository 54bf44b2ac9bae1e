package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/bnema/vitrine/internal/adapter/http/middleware"
	"github.com/bnema/vitrine/internal/adapter/http/ratelimit"
	"github.com/bnema/vitrine/internal/infrastructure/logger"
	"github.com/bnema/vitrine/internal/port"
)

type ServerConfig struct {
	BehindProxy bool
	// PublicPrefix is the URL path assets are served under, e.g. "/uploads".
	PublicPrefix string
	// Gatherer backs /metrics; nil disables the endpoint.
	Gatherer prometheus.Gatherer
}

type Server struct {
	engine   *gin.Engine
	handlers *Handlers
	tokens   TokenValidator
	limiter  *ratelimit.AuthFailureLimiter
	blobs    port.BlobStore
	log      *zap.Logger
	cfg      ServerConfig
}

func NewServer(
	cfg ServerConfig,
	catalog Catalog,
	assets Uploader,
	blobs port.BlobStore,
	tokens TokenValidator,
	limiter *ratelimit.AuthFailureLimiter,
	log *zap.Logger,
) *Server {
	log = logger.OrNop(log)
	if cfg.PublicPrefix == "" {
		cfg.PublicPrefix = "/uploads"
	}

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		middleware.SecurityHeaders(),
		middleware.RequestLogger(log),
		middleware.Origin(cfg.BehindProxy),
	)

	s := &Server{
		engine:   engine,
		handlers: NewHandlers(catalog, assets, log),
		tokens:   tokens,
		limiter:  limiter,
		blobs:    blobs,
		log:      log,
		cfg:      cfg,
	}

	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	requireAuth := RequireAuth(s.tokens, s.limiter, s.log)

	products := s.engine.Group("/api/products")
	products.GET("", s.handlers.ListProducts())
	products.GET("/my-products", requireAuth, s.handlers.MyProducts())
	products.GET("/user/:userId", s.handlers.ProductsByOwner())
	products.GET("/:id", s.handlers.GetProduct())
	products.POST("", requireAuth, s.handlers.CreateProduct())
	products.PUT("/:id", requireAuth, s.handlers.UpdateProduct())
	products.PATCH("/:id", requireAuth, s.handlers.PatchProduct())
	products.DELETE("/:id", requireAuth, s.handlers.DeleteProduct())

	s.engine.GET(s.cfg.PublicPrefix+"/*key", ServeAsset(s.blobs, s.log))

	if s.cfg.Gatherer != nil {
		s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.cfg.Gatherer, promhttp.HandlerOpts{})))
	}
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.engine.NoRoute(func(c *gin.Context) {
		fail(c, http.StatusNotFound, "Route not found", nil)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}
