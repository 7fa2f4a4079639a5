package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("product name is required")
	ErrNegativePrice = errors.New("product price must not be negative")
)

// Product is the catalog entry embedded by value into carts and orders.
// Copies taken at add-to-cart or checkout time are snapshots; later price
// changes do not reach them.
type Product struct {
	ID    uuid.UUID
	Name  string
	Price float64
}

// NewProduct validates and constructs a product. A nil id gets a fresh one.
func NewProduct(id uuid.UUID, name string, price float64) (*Product, error) {
	if id == uuid.Nil {
		id = uuid.New()
	}
	product := &Product{ID: id, Price: price}
	if err := product.Rename(name); err != nil {
		return nil, err
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	return product, nil
}

// Rename trims and validates the product name.
func (p *Product) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	p.Name = name
	return nil
}

// Validate re-applies creation invariants. Discounts bypass it on purpose:
// an oversized discount may push a stored price below zero.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

// Patch carries a partial update. A nil field is left unchanged, which is
// distinct from a field explicitly set to its zero value.
type Patch struct {
	Name  *string
	Price *float64
}
