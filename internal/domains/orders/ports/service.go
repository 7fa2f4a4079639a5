package ports

import (
	"context"

	"github.com/google/uuid"

	orderdomain "github.com/Apurer/go-gin-shop-api/internal/domains/orders/domain"
)

// Service exposes order use cases.
type Service interface {
	AddOrder(ctx context.Context, order *orderdomain.Order) (*orderdomain.Order, error)
	List(ctx context.Context) ([]*orderdomain.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*orderdomain.Order, error)
	// Delete fails with ErrNotFound when the order does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
