package ports

import (
	"context"
	"errors"

	"github.com/google/uuid"

	orderdomain "github.com/Apurer/go-gin-shop-api/internal/domains/orders/domain"
)

// ErrNotFound is returned when an order does not exist.
var ErrNotFound = errors.New("order not found")

// Repository persists orders.
type Repository interface {
	// Save appends the order to the store.
	Save(ctx context.Context, order *orderdomain.Order) error
	// GetByID returns the first order with the given id or ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*orderdomain.Order, error)
	// List returns every stored order.
	List(ctx context.Context) ([]*orderdomain.Order, error)
	// Delete removes every order with the given id. Unknown ids are a no-op.
	Delete(ctx context.Context, id uuid.UUID) error
}
