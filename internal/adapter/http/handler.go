package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bnema/vitrine/internal/domain"
	"github.com/bnema/vitrine/internal/infrastructure/logger"
	"github.com/bnema/vitrine/internal/port"
	"github.com/bnema/vitrine/internal/service"
	"github.com/bnema/vitrine/internal/validation"
)

type Catalog interface {
	Create(ctx context.Context, req domain.Requester, in domain.ProductInput, storedRefs []string) (*domain.Product, error)
	Update(ctx context.Context, req domain.Requester, id int64, in domain.ProductInput, newRefs []string) (*domain.Product, error)
	Patch(ctx context.Context, req domain.Requester, id int64, in domain.ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, req domain.Requester, id int64) error
	Get(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Product, error)
}

type Uploader interface {
	StoreMany(ctx context.Context, uploads []service.Upload, ownerID int64, category domain.Category) ([]string, error)
	Limits() service.AssetLimits
}

type Handlers struct {
	catalog Catalog
	assets  Uploader
	log     *zap.Logger
}

func NewHandlers(catalog Catalog, assets Uploader, log *zap.Logger) *Handlers {
	return &Handlers{
		catalog: catalog,
		assets:  assets,
		log:     logger.OrNop(log),
	}
}

func (h *Handlers) ListProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := h.catalog.List(c.Request.Context())
		if err != nil {
			writeError(c, h.log, err)
			return
		}
		respond(c, http.StatusOK, "Products retrieved successfully", products)
	}
}

func (h *Handlers) MyProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		req := requesterFrom(c)
		products, err := h.catalog.ListByOwner(c.Request.Context(), req.ID)
		if err != nil {
			writeError(c, h.log, err)
			return
		}
		respond(c, http.StatusOK, "Products retrieved successfully", products)
	}
}

func (h *Handlers) ProductsByOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, err := parseID(c.Param("userId"), "userId")
		if err != nil {
			writeError(c, h.log, err)
			return
		}
		products, err := h.catalog.ListByOwner(c.Request.Context(), ownerID)
		if err != nil {
			writeError(c, h.log, err)
			return
		}
		respond(c, http.StatusOK, "Products retrieved successfully", products)
	}
}

func (h *Handlers) GetProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"), "id")
		if err != nil {
			writeError(c, h.log, err)
			return
		}
		product, err := h.catalog.Get(c.Request.Context(), id)
		if err != nil {
			writeError(c, h.log, err)
			return
		}
		respond(c, http.StatusOK, "Product retrieved successfully", product)
	}
}

// CreateProduct stores the uploaded images first and hands their refs to the
// catalog, which removes them again if the product cannot be created.
func (h *Handlers) CreateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		req := requesterFrom(c)
		ctx := c.Request.Context()

		form, err := readProductForm(c, h.assets.Limits(), true)
		if err != nil {
			writeError(c, h.log, err)
			return
		}
		defer form.Close()

		refs, err := h.assets.StoreMany(ctx, form.uploads, req.ID, domain.CategoryProduct)
		if err != nil {
			writeError(c, h.log, err)
			return
		}

		product, err := h.catalog.Create(ctx, req, form.input, refs)
		if err != nil {
			writeError(c, h.log, err)
			return
		}
		respond(c, http.StatusCreated, "Product created successfully", product)
	}
}

func (h *Handlers) UpdateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		req := requesterFrom(c)
		ctx := c.Request.Context()

		id, err := parseID(c.Param("id"), "id")
		if err != nil {
			writeError(c, h.log, err)
			return
		}

		form, err := readProductForm(c, h.assets.Limits(), true)
		if err != nil {
			writeError(c, h.log, err)
			return
		}
		defer form.Close()

		refs, err := h.assets.StoreMany(ctx, form.uploads, req.ID, domain.CategoryProduct)
		if err != nil {
			writeError(c, h.log, err)
			return
		}

		product, err := h.catalog.Update(ctx, req, id, form.input, refs)
		if err != nil {
			writeError(c, h.log, err)
			return
		}
		respond(c, http.StatusOK, "Product updated successfully", product)
	}
}

func (h *Handlers) PatchProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		req := requesterFrom(c)

		id, err := parseID(c.Param("id"), "id")
		if err != nil {
			writeError(c, h.log, err)
			return
		}

		form, err := readProductForm(c, h.assets.Limits(), false)
		if err != nil {
			writeError(c, h.log, err)
			return
		}
		defer form.Close()

		product, err := h.catalog.Patch(c.Request.Context(), req, id, form.input)
		if err != nil {
			writeError(c, h.log, err)
			return
		}
		respond(c, http.StatusOK, "Product updated successfully", product)
	}
}

func (h *Handlers) DeleteProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		req := requesterFrom(c)

		id, err := parseID(c.Param("id"), "id")
		if err != nil {
			writeError(c, h.log, err)
			return
		}

		if err := h.catalog.Delete(c.Request.Context(), req, id); err != nil {
			writeError(c, h.log, err)
			return
		}
		respond(c, http.StatusOK, "Product deleted successfully", nil)
	}
}

// ServeAsset streams a stored asset. Only keys that resolve inside the blob
// store are served.
func ServeAsset(blobs port.BlobStore, log *zap.Logger) gin.HandlerFunc {
	log = logger.OrNop(log)
	return func(c *gin.Context) {
		key := strings.TrimPrefix(c.Param("key"), "/")
		if key == "" || strings.Contains(key, "..") || strings.HasPrefix(path.Base(key), ".") {
			c.Status(http.StatusNotFound)
			return
		}

		rc, err := blobs.Open(c.Request.Context(), key)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.Status(http.StatusNotFound)
				return
			}
			log.Error("open asset",
				zap.String("key", logger.SanitizeForLog(key)),
				zap.Error(err),
			)
			c.Status(http.StatusInternalServerError)
			return
		}
		defer rc.Close() //nolint:errcheck

		c.Header("Cache-Control", "public, max-age=86400")
		c.Header("Content-Type", validation.ContentTypeFor(strings.TrimPrefix(path.Ext(key), ".")))
		c.Status(http.StatusOK)
		if _, err := io.Copy(c.Writer, rc); err != nil {
			log.Debug("asset stream interrupted", zap.Error(err))
		}
	}
}

func parseID(raw, field string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(field, "must be a positive integer")
	}
	return id, nil
}
