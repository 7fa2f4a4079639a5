// Package jsonfile stores the product collection in a single JSON array file.
package jsonfile

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Apurer/go-gin-shop-api/internal/domains/products/domain"
	"github.com/Apurer/go-gin-shop-api/internal/domains/products/ports"
	"github.com/Apurer/go-gin-shop-api/internal/platform/jsonstore"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is the file-backed product persistence adapter. Every call
// re-reads the whole file; there is no cache between the store and disk.
type Repository struct {
	col *jsonstore.Collection[productRecord]
}

func NewRepository(path string) *Repository {
	return &Repository{col: jsonstore.NewCollection[productRecord](path)}
}

// productRecord maps a product to its on-disk JSON shape.
type productRecord struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price float64   `json:"price"`
}

func (r *Repository) Save(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	if err := r.col.Append(toRecord(product)); err != nil {
		return nil, err
	}
	clone := *product
	return &clone, nil
}

func (r *Repository) GetByID(_ context.Context, id uuid.UUID) (*domain.Product, error) {
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

func (r *Repository) List(_ context.Context) ([]*domain.Product, error) {
	records, err := r.col.LoadAll()
	if err != nil {
		return nil, err
	}
	products := make([]*domain.Product, 0, len(records))
	for i := range records {
		products = append(products, records[i].toDomain())
	}
	return products, nil
}

// Update applies the non-nil patch fields to the first record matching id
// and rewrites the collection.
func (r *Repository) Update(_ context.Context, id uuid.UUID, patch domain.Patch) (*domain.Product, error) {
	var updated *domain.Product
	err := r.col.Update(func(records []productRecord) ([]productRecord, bool, error) {
		for i := range records {
			if records[i].ID == id {
				if patch.Name != nil {
					records[i].Name = *patch.Name
				}
				if patch.Price != nil {
					records[i].Price = *patch.Price
				}
				updated = records[i].toDomain()
				return records, true, nil
			}
		}
		return records, false, ports.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ApplyDiscount multiplies matched prices by (1 - discount/100) in one pass.
// Ids without a matching record are ignored.
func (r *Repository) ApplyDiscount(_ context.Context, discount float64, ids []uuid.UUID) error {
	matched := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		matched[id] = true
	}
	return r.col.Update(func(records []productRecord) ([]productRecord, bool, error) {
		for i := range records {
			if matched[records[i].ID] {
				records[i].Price *= 1 - discount/100
			}
		}
		return records, true, nil
	})
}

// Delete removes every record matching id. An absent id skips the rewrite
// entirely.
func (r *Repository) Delete(_ context.Context, id uuid.UUID) error {
	return r.col.Update(func(records []productRecord) ([]productRecord, bool, error) {
		kept := records[:0]
		for i := range records {
			if records[i].ID != id {
				kept = append(kept, records[i])
			}
		}
		return kept, len(kept) != len(records), nil
	})
}

func toRecord(product *domain.Product) productRecord {
	return productRecord{ID: product.ID, Name: product.Name, Price: product.Price}
}

func (r productRecord) toDomain() *domain.Product {
	return &domain.Product{ID: r.ID, Name: r.Name, Price: r.Price}
}
