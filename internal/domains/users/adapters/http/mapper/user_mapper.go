package mapper

import (
	"github.com/google/uuid"

	orderdomain "github.com/Apurer/go-gin-shop-api/internal/domains/orders/domain"
	productdomain "github.com/Apurer/go-gin-shop-api/internal/domains/products/domain"
	userdomain "github.com/Apurer/go-gin-shop-api/internal/domains/users/domain"
)

// User is the transport-level user payload.
type User struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Orders []Order   `json:"orders"`
}

// Order is the transport shape of an order embedded in a user.
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

// ToDomainUser converts a transport user to its domain counterpart.
func ToDomainUser(model User) *userdomain.User {
	orders := make([]orderdomain.Order, 0, len(model.Orders))
	for _, o := range model.Orders {
		orders = append(orders, toDomainOrder(o))
	}
	return &userdomain.User{ID: model.ID, Name: model.Name, Orders: orders}
}

// FromDomainUser converts a domain user to the transport representation.
func FromDomainUser(user *userdomain.User) User {
	if user == nil {
		return User{}
	}
	orders := make([]Order, 0, len(user.Orders))
	for _, o := range user.Orders {
		orders = append(orders, FromDomainOrder(o))
	}
	return User{ID: user.ID, Name: user.Name, Orders: orders}
}

// FromDomainUsers converts a slice of domain users.
func FromDomainUsers(users []*userdomain.User) []User {
	result := make([]User, 0, len(users))
	for _, user := range users {
		result = append(result, FromDomainUser(user))
	}
	return result
}

// FromDomainOrder converts an embedded domain order.
func FromDomainOrder(order orderdomain.Order) Order {
	products := make([]Product, 0, len(order.Products))
	for _, p := range order.Products {
		products = append(products, Product{ID: p.ID, Name: p.Name, Price: p.Price})
	}
	return Order{ID: order.ID, UserID: order.UserID, TotalPrice: order.TotalPrice, Products: products}
}

// FromDomainOrders converts a slice of embedded domain orders.
func FromDomainOrders(orders []orderdomain.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, FromDomainOrder(o))
	}
	return result
}

func toDomainOrder(model Order) orderdomain.Order {
	products := make([]productdomain.Product, 0, len(model.Products))
	for _, p := range model.Products {
		products = append(products, productdomain.Product{ID: p.ID, Name: p.Name, Price: p.Price})
	}
	return orderdomain.Order{ID: model.ID, UserID: model.UserID, TotalPrice: model.TotalPrice, Products: products}
}
