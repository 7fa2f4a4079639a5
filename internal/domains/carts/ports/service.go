package ports

import (
	"context"

	"github.com/google/uuid"

	cartdomain "github.com/Apurer/go-gin-shop-api/internal/domains/carts/domain"
)

// Service exposes cart use cases. Product resolution errors carry the product
// ports sentinel; cart lookups carry this package's ErrNotFound.
type Service interface {
	AddCart(ctx context.Context, cart *cartdomain.Cart) (*cartdomain.Cart, error)
	List(ctx context.Context) ([]*cartdomain.Cart, error)
	GetByID(ctx context.Context, id uuid.UUID) (*cartdomain.Cart, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*cartdomain.Cart, error)
	// AddProductToCart snapshots the product into the cart. An unknown cart is
	// a silent no-op; an unknown product is an error.
	AddProductToCart(ctx context.Context, cartID, productID uuid.UUID) error
	// RemoveProductFromCart drops every snapshot of the product from the cart.
	// An unknown product is an error; an unknown cart is a silent no-op.
	RemoveProductFromCart(ctx context.Context, cartID, productID uuid.UUID) error
	// AddProductForUser resolves the user's cart, creating one when none
	// exists yet, and snapshots the product into it.
	AddProductForUser(ctx context.Context, userID, productID uuid.UUID) error
	// RemoveProductForUser drops the product from the user's cart. A user
	// without a cart yields ErrNotFound.
	RemoveProductForUser(ctx context.Context, userID, productID uuid.UUID) error
	// Delete removes the cart. Unknown ids are a silent no-op.
	Delete(ctx context.Context, id uuid.UUID) error
}
