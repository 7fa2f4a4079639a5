package ports

import (
	"context"

	"github.com/google/uuid"

	orderdomain "github.com/Apurer/go-gin-shop-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-shop-api/internal/domains/users/domain"
)

// Service exposes the user bounded context use cases to adapters.
type Service interface {
	AddUser(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	// OrdersByUser returns the user's embedded orders. An unknown user yields
	// an empty slice, not an error.
	OrdersByUser(ctx context.Context, id uuid.UUID) ([]orderdomain.Order, error)
	// Checkout creates an empty order for the user, appending it to both the
	// user's embedded list and the independent order store. An unknown user is
	// a silent no-op.
	Checkout(ctx context.Context, id uuid.UUID) error
	// RemoveOrder drops the order from the user's embedded list only; the
	// independent order store keeps its copy.
	RemoveOrder(ctx context.Context, userID, orderID uuid.UUID) error
	// EmptyCart is a stub. It validates nothing and mutates nothing.
	EmptyCart(ctx context.Context, id uuid.UUID) error
	// Delete fails with ErrNotFound when the user does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
