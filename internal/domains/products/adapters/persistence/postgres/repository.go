package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Apurer/go-gin-shop-api/internal/domains/products/domain"
	"github.com/Apurer/go-gin-shop-api/internal/domains/products/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists products in PostgreSQL using GORM. Unlike the JSON
// file backend it enforces id uniqueness through the primary key.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&productRecord{})
	}
	return repo
}

// productRecord maps the product to a relational table.
type productRecord struct {
	ID        uuid.UUID `gorm:"primaryKey;column:id;type:uuid"`
	Name      string    `gorm:"column:name"`
	Price     float64   `gorm:"column:price"`
	CreatedAt time.Time `gorm:"column:created_at;index"`
	UpdatedAt time.Time `gorm:"column:updated_at;index"`
}

func (productRecord) TableName() string { return "products" }

// Save inserts or updates a product.
func (r *Repository) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.New("product is nil")
	}
	record := toRecord(product)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"name":       record.Name,
				"price":      record.Price,
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches a product by identifier.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record productRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// List returns all products.
func (r *Repository) List(ctx context.Context) ([]*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []productRecord
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	products := make([]*domain.Product, 0, len(records))
	for i := range records {
		products = append(products, records[i].toDomain())
	}
	return products, nil
}

// Update applies the non-nil patch fields to an existing product.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, patch domain.Patch) (*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	assignments := map[string]any{"updated_at": gorm.Expr("NOW()")}
	if patch.Name != nil {
		assignments["name"] = *patch.Name
	}
	if patch.Price != nil {
		assignments["price"] = *patch.Price
	}
	result := r.db.WithContext(ctx).Model(&productRecord{}).Where("id = ?", id).Updates(assignments)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// ApplyDiscount rewrites the matched prices in one statement.
func (r *Repository) ApplyDiscount(ctx context.Context, discount float64, ids []uuid.UUID) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&productRecord{}).
		Where("id IN ?", ids).
		Updates(map[string]any{
			"price":      gorm.Expr("price * ?", 1-discount/100),
			"updated_at": gorm.Expr("NOW()"),
		}).Error
}

// Delete removes a product by identifier; an absent id is a silent no-op.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&productRecord{}, "id = ?", id).Error
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres product repository not configured")
	}
	return nil
}

func toRecord(product *domain.Product) productRecord {
	return productRecord{ID: product.ID, Name: product.Name, Price: product.Price}
}

func (r productRecord) toDomain() *domain.Product {
	return &domain.Product{ID: r.ID, Name: r.Name, Price: r.Price}
}
