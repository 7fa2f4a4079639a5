package migrations

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Run applies the relational schema. Only the product catalog has a postgres
// backend; carts, orders, and users stay on the file store.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(&productRecord{})
}

// Product schema mirrors the products Postgres adapter.
type productRecord struct {
	ID        uuid.UUID `gorm:"primaryKey;column:id;type:uuid"`
	Name      string    `gorm:"column:name"`
	Price     float64   `gorm:"column:price"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }
