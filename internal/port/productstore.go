package port

import (
	"context"

	"github.com/bnema/vitrine/internal/domain"
)

// ProductStore persists the structured half of a product. FindByID returns
// domain.ErrNotFound when no row matches.
type ProductStore interface {
	Create(ctx context.Context, f domain.ProductFields) (*domain.ProductRecord, error)
	FindByID(ctx context.Context, id int64) (*domain.ProductRecord, error)
	Update(ctx context.Context, id int64, f domain.ProductFields) (*domain.ProductRecord, error)
	Delete(ctx context.Context, id int64) error
	FindManyByOwner(ctx context.Context, ownerID int64) ([]*domain.ProductRecord, error)
	FindAll(ctx context.Context) ([]*domain.ProductRecord, error)
}
