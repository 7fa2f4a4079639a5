package ports

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Apurer/go-gin-shop-api/internal/domains/products/domain"
)

var ErrNotFound = errors.New("product not found")

// Repository persists the product collection. Every mutation is a whole
// collection load-modify-rewrite; callers must not assume caching between
// calls.
type Repository interface {
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.Patch) (*domain.Product, error)
	ApplyDiscount(ctx context.Context, discount float64, ids []uuid.UUID) error
	// Delete removes every record matching id; deleting an absent id is a
	// silent no-op.
	Delete(ctx context.Context, id uuid.UUID) error
}
