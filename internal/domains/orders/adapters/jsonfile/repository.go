// Package jsonfile stores the order collection in a single JSON array file.
package jsonfile

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Apurer/go-gin-shop-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-shop-api/internal/domains/orders/ports"
	productdomain "github.com/Apurer/go-gin-shop-api/internal/domains/products/domain"
	"github.com/Apurer/go-gin-shop-api/internal/platform/jsonstore"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is the file-backed order persistence adapter.
type Repository struct {
	col *jsonstore.Collection[orderRecord]
}

func NewRepository(path string) *Repository {
	return &Repository{col: jsonstore.NewCollection[orderRecord](path)}
}

// orderRecord maps an order to its on-disk JSON shape. Product snapshots are
// embedded in full rather than referenced by id.
type orderRecord struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"userId"`
	TotalPrice float64         `json:"totalPrice"`
	Products   []productRecord `json:"products"`
}

type productRecord struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price float64   `json:"price"`
}

func (r *Repository) Save(_ context.Context, order *domain.Order) error {
	if order == nil {
		return errors.New("order is nil")
	}
	return r.col.Append(toRecord(order))
}

func (r *Repository) GetByID(_ context.Context, id uuid.UUID) (*domain.Order, error) {
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

func (r *Repository) List(_ context.Context) ([]*domain.Order, error) {
	records, err := r.col.LoadAll()
	if err != nil {
		return nil, err
	}
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders, nil
}

// Delete removes every record matching id. An absent id skips the rewrite.
func (r *Repository) Delete(_ context.Context, id uuid.UUID) error {
	return r.col.Update(func(records []orderRecord) ([]orderRecord, bool, error) {
		kept := records[:0]
		for i := range records {
			if records[i].ID != id {
				kept = append(kept, records[i])
			}
		}
		return kept, len(kept) != len(records), nil
	})
}

func toRecord(order *domain.Order) orderRecord {
	products := make([]productRecord, 0, len(order.Products))
	for _, p := range order.Products {
		products = append(products, productRecord{ID: p.ID, Name: p.Name, Price: p.Price})
	}
	return orderRecord{
		ID:         order.ID,
		UserID:     order.UserID,
		TotalPrice: order.TotalPrice,
		Products:   products,
	}
}

func (r orderRecord) toDomain() *domain.Order {
	products := make([]productdomain.Product, 0, len(r.Products))
	for _, p := range r.Products {
		products = append(products, productdomain.Product{ID: p.ID, Name: p.Name, Price: p.Price})
	}
	return &domain.Order{
		ID:         r.ID,
		UserID:     r.UserID,
		TotalPrice: r.TotalPrice,
		Products:   products,
	}
}
