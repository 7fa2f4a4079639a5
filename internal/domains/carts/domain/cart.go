package domain

import (
	"github.com/google/uuid"

	productdomain "github.com/Apurer/go-gin-shop-api/internal/domains/products/domain"
)

// Cart holds the products a user intends to order. Products are value
// snapshots copied from the catalog at the moment they were added; the same
// product may appear more than once.
type Cart struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Products []productdomain.Product
}

// NewCart creates an empty cart for the given user.
func NewCart(userID uuid.UUID) *Cart {
	return &Cart{
		ID:       uuid.New(),
		UserID:   userID,
		Products: []productdomain.Product{},
	}
}
