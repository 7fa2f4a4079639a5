package ports

import (
	"context"
	"errors"

	"github.com/google/uuid"

	cartdomain "github.com/Apurer/go-gin-shop-api/internal/domains/carts/domain"
	productdomain "github.com/Apurer/go-gin-shop-api/internal/domains/products/domain"
)

// ErrNotFound is returned when a cart does not exist.
var ErrNotFound = errors.New("cart not found")

// Repository persists carts.
type Repository interface {
	// Save appends the cart to the store.
	Save(ctx context.Context, cart *cartdomain.Cart) error
	// GetByID returns the first cart with the given id or ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*cartdomain.Cart, error)
	// GetByUserID returns the first cart owned by userID or ErrNotFound.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*cartdomain.Cart, error)
	// List returns every stored cart.
	List(ctx context.Context) ([]*cartdomain.Cart, error)
	// Delete removes every cart with the given id. Unknown ids are a no-op.
	Delete(ctx context.Context, id uuid.UUID) error
	// AddProduct appends a product snapshot to the cart with the given id.
	// Unknown cart ids are a silent no-op.
	AddProduct(ctx context.Context, cartID uuid.UUID, product productdomain.Product) error
	// RemoveProduct drops every snapshot of productID from the cart. Unknown
	// cart or product ids are a silent no-op.
	RemoveProduct(ctx context.Context, cartID, productID uuid.UUID) error
}
