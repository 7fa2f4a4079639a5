package mapper

import (
	"github.com/google/uuid"

	orderdomain "github.com/Apurer/go-gin-shop-api/internal/domains/orders/domain"
	productdomain "github.com/Apurer/go-gin-shop-api/internal/domains/products/domain"
)

// Order is the transport-level order payload.
type Order struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"userId"`
	TotalPrice float64   `json:"totalPrice"`
	Products   []Product `json:"products"`
}

// Product is the transport shape of a product snapshot inside an order.
type Product struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price float64   `json:"price"`
}

// ToDomainOrder converts a transport order, assigning an id when the payload
// carries none.
func ToDomainOrder(model Order) *orderdomain.Order {
	products := make([]productdomain.Product, 0, len(model.Products))
	for _, p := range model.Products {
		products = append(products, productdomain.Product{ID: p.ID, Name: p.Name, Price: p.Price})
	}
	return orderdomain.NewOrder(model.ID, model.UserID, model.TotalPrice, products)
}

// FromDomainOrder converts a domain order to the transport representation.
func FromDomainOrder(order *orderdomain.Order) Order {
	if order == nil {
		return Order{}
	}
	products := make([]Product, 0, len(order.Products))
	for _, p := range order.Products {
		products = append(products, Product{ID: p.ID, Name: p.Name, Price: p.Price})
	}
	return Order{ID: order.ID, UserID: order.UserID, TotalPrice: order.TotalPrice, Products: products}
}

// FromDomainOrders converts a slice of domain orders.
func FromDomainOrders(orders []*orderdomain.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, FromDomainOrder(order))
	}
	return result
}
