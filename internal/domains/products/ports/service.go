package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/Apurer/go-gin-shop-api/internal/domains/products/domain"
)

// Service exposes catalog use cases to adapters.
type Service interface {
	AddProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.Patch) (*domain.Product, error)
	ApplyDiscount(ctx context.Context, discount float64, ids []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}
