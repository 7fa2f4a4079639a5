// Package jsonfile stores the cart collection in a single JSON array file.
package jsonfile

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Apurer/go-gin-shop-api/internal/domains/carts/domain"
	"github.com/Apurer/go-gin-shop-api/internal/domains/carts/ports"
	productdomain "github.com/Apurer/go-gin-shop-api/internal/domains/products/domain"
	"github.com/Apurer/go-gin-shop-api/internal/platform/jsonstore"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is the file-backed cart persistence adapter. Nested product
// mutations rewrite the whole cart collection.
type Repository struct {
	col *jsonstore.Collection[cartRecord]
}

func NewRepository(path string) *Repository {
	return &Repository{col: jsonstore.NewCollection[cartRecord](path)}
}

// cartRecord maps a cart to its on-disk JSON shape.
type cartRecord struct {
	ID       uuid.UUID       `json:"id"`
	UserID   uuid.UUID       `json:"userId"`
	Products []productRecord `json:"products"`
}

type productRecord struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price float64   `json:"price"`
}

func (r *Repository) Save(_ context.Context, cart *domain.Cart) error {
	if cart == nil {
		return errors.New("cart is nil")
	}
	return r.col.Append(toRecord(cart))
}

func (r *Repository) GetByID(_ context.Context, id uuid.UUID) (*domain.Cart, error) {
	records, err := r.col.LoadAll()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return records[i].toDomain(), nil
		}
	}
	return nil, ports.ErrNotFound
}

// GetByUserID returns the first cart owned by userID even when several exist.
func (r *Repository) GetByUserID(_ context.Context, userID uuid.UUID) (*domain.Cart, error) {
	records, err := r.col.LoadAll()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].UserID == userID {
			return records[i].toDomain(), nil
		}
	}
	return nil, ports.ErrNotFound
}

func (r *Repository) List(_ context.Context) ([]*domain.Cart, error) {
	records, err := r.col.LoadAll()
	if err != nil {
		return nil, err
	}
	carts := make([]*domain.Cart, 0, len(records))
	for i := range records {
		carts = append(carts, records[i].toDomain())
	}
	return carts, nil
}

// Delete removes every record matching id. An absent id skips the rewrite.
func (r *Repository) Delete(_ context.Context, id uuid.UUID) error {
	return r.col.Update(func(records []cartRecord) ([]cartRecord, bool, error) {
		kept := records[:0]
		for i := range records {
			if records[i].ID != id {
				kept = append(kept, records[i])
			}
		}
		return kept, len(kept) != len(records), nil
	})
}

// AddProduct appends the snapshot to the first cart matching cartID. An
// unknown cart is a silent no-op.
func (r *Repository) AddProduct(_ context.Context, cartID uuid.UUID, product productdomain.Product) error {
	return r.col.Update(func(records []cartRecord) ([]cartRecord, bool, error) {
		for i := range records {
			if records[i].ID == cartID {
				records[i].Products = append(records[i].Products, productRecord{
					ID:    product.ID,
					Name:  product.Name,
					Price: product.Price,
				})
				return records, true, nil
			}
		}
		return records, false, nil
	})
}

// RemoveProduct drops every snapshot of productID from the first cart
// matching cartID. Unknown cart or product ids are a silent no-op.
func (r *Repository) RemoveProduct(_ context.Context, cartID, productID uuid.UUID) error {
	return r.col.Update(func(records []cartRecord) ([]cartRecord, bool, error) {
		for i := range records {
			if records[i].ID == cartID {
				kept := records[i].Products[:0]
				for _, p := range records[i].Products {
					if p.ID != productID {
						kept = append(kept, p)
					}
				}
				changed := len(kept) != len(records[i].Products)
				records[i].Products = kept
				return records, changed, nil
			}
		}
		return records, false, nil
	})
}

func toRecord(cart *domain.Cart) cartRecord {
	products := make([]productRecord, 0, len(cart.Products))
	for _, p := range cart.Products {
		products = append(products, productRecord{ID: p.ID, Name: p.Name, Price: p.Price})
	}
	return cartRecord{ID: cart.ID, UserID: cart.UserID, Products: products}
}

func (r cartRecord) toDomain() *domain.Cart {
	products := make([]productdomain.Product, 0, len(r.Products))
	for _, p := range r.Products {
		products = append(products, productdomain.Product{ID: p.ID, Name: p.Name, Price: p.Price})
	}
	return &domain.Cart{ID: r.ID, UserID: r.UserID, Products: products}
}
