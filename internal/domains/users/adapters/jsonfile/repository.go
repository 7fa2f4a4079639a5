// Package jsonfile stores the user collection in a single JSON array file.
// Orders are embedded inline in each user record, product snapshots inline in
// each order.
package jsonfile

import (
	"context"
	"errors"

	"github.com/google/uuid"

	orderdomain "github.com/Apurer/go-gin-shop-api/internal/domains/orders/domain"
	productdomain "github.com/Apurer/go-gin-shop-api/internal/domains/products/domain"
	"github.com/Apurer/go-gin-shop-api/internal/domains/users/domain"
	"github.com/Apurer/go-gin-shop-api/internal/domains/users/ports"
	"github.com/Apurer/go-gin-shop-api/internal/platform/jsonstore"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is the file-backed user persistence adapter.
type Repository struct {
	col *jsonstore.Collection[userRecord]
}

func NewRepository(path string) *Repository {
	return &Repository{col: jsonstore.NewCollection[userRecord](path)}
}

type userRecord struct {
	ID     uuid.UUID     `json:"id"`
	Name   string        `json:"name"`
	Orders []orderRecord `json:"orders"`
}

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

func (r *Repository) Save(_ context.Context, user *domain.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	return r.col.Append(toRecord(user))
}

func (r *Repository) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
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

func (r *Repository) List(_ context.Context) ([]*domain.User, error) {
	records, err := r.col.LoadAll()
	if err != nil {
		return nil, err
	}
	users := make([]*domain.User, 0, len(records))
	for i := range records {
		users = append(users, records[i].toDomain())
	}
	return users, nil
}

// Delete removes every record matching id. An absent id skips the rewrite.
func (r *Repository) Delete(_ context.Context, id uuid.UUID) error {
	return r.col.Update(func(records []userRecord) ([]userRecord, bool, error) {
		kept := records[:0]
		for i := range records {
			if records[i].ID != id {
				kept = append(kept, records[i])
			}
		}
		return kept, len(kept) != len(records), nil
	})
}

func toRecord(user *domain.User) userRecord {
	orders := make([]orderRecord, 0, len(user.Orders))
	for _, o := range user.Orders {
		products := make([]productRecord, 0, len(o.Products))
		for _, p := range o.Products {
			products = append(products, productRecord{ID: p.ID, Name: p.Name, Price: p.Price})
		}
		orders = append(orders, orderRecord{
			ID:         o.ID,
			UserID:     o.UserID,
			TotalPrice: o.TotalPrice,
			Products:   products,
		})
	}
	return userRecord{ID: user.ID, Name: user.Name, Orders: orders}
}

func (r userRecord) toDomain() *domain.User {
	orders := make([]orderdomain.Order, 0, len(r.Orders))
	for _, o := range r.Orders {
		products := make([]productdomain.Product, 0, len(o.Products))
		for _, p := range o.Products {
			products = append(products, productdomain.Product{ID: p.ID, Name: p.Name, Price: p.Price})
		}
		orders = append(orders, orderdomain.Order{
			ID:         o.ID,
			UserID:     o.UserID,
			TotalPrice: o.TotalPrice,
			Products:   products,
		})
	}
	return &domain.User{ID: r.ID, Name: r.Name, Orders: orders}
}
