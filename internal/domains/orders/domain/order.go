package domain

import (
	"github.com/google/uuid"

	productdomain "github.com/Apurer/go-gin-shop-api/internal/domains/products/domain"
)

// Order captures a checkout result. Products are value snapshots taken at
// checkout time; later catalog edits do not reach back into an order.
type Order struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	TotalPrice float64
	Products   []productdomain.Product
}

// NewOrder assigns an identifier when the caller did not provide one.
func NewOrder(id, userID uuid.UUID, totalPrice float64, products []productdomain.Product) *Order {
	if id == uuid.Nil {
		id = uuid.New()
	}
	if products == nil {
		products = []productdomain.Product{}
	}
	return &Order{
		ID:         id,
		UserID:     userID,
		TotalPrice: totalPrice,
		Products:   products,
	}
}
