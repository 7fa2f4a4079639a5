package mapper

import (
	"github.com/google/uuid"

	cartdomain "github.com/Apurer/go-gin-shop-api/internal/domains/carts/domain"
	productdomain "github.com/Apurer/go-gin-shop-api/internal/domains/products/domain"
)

// Cart is the transport-level cart payload.
type Cart struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"userId"`
	Products []Product `json:"products"`
}

// Product is the transport shape of a product snapshot inside a cart.
type Product struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price float64   `json:"price"`
}

// ToDomainCart converts a transport cart.
func ToDomainCart(model Cart) *cartdomain.Cart {
	products := make([]productdomain.Product, 0, len(model.Products))
	for _, p := range model.Products {
		products = append(products, productdomain.Product{ID: p.ID, Name: p.Name, Price: p.Price})
	}
	return &cartdomain.Cart{ID: model.ID, UserID: model.UserID, Products: products}
}

// FromDomainCart converts a domain cart to the transport representation.
func FromDomainCart(cart *cartdomain.Cart) Cart {
	if cart == nil {
		return Cart{}
	}
	products := make([]Product, 0, len(cart.Products))
	for _, p := range cart.Products {
		products = append(products, Product{ID: p.ID, Name: p.Name, Price: p.Price})
	}
	return Cart{ID: cart.ID, UserID: cart.UserID, Products: products}
}

// FromDomainCarts converts a slice of domain carts.
func FromDomainCarts(carts []*cartdomain.Cart) []Cart {
	result := make([]Cart, 0, len(carts))
	for _, cart := range carts {
		result = append(result, FromDomainCart(cart))
	}
	return result
}
