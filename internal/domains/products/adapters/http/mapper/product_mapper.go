package mapper

import (
	"github.com/google/uuid"

	productdomain "github.com/Apurer/go-gin-shop-api/internal/domains/products/domain"
)

// Product is the transport-level product payload.
type Product struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price float64   `json:"price"`
}

// Patch is the transport-level partial update. Absent fields stay nil and
// leave the stored value unchanged.
type Patch struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

// ToDomainProduct converts a transport product to its domain counterpart,
// assigning an id when the payload carries none.
func ToDomainProduct(model Product) (*productdomain.Product, error) {
	return productdomain.NewProduct(model.ID, model.Name, model.Price)
}

// ToDomainPatch converts a transport patch.
func ToDomainPatch(model Patch) productdomain.Patch {
	return productdomain.Patch{Name: model.Name, Price: model.Price}
}

// FromDomainProduct converts a domain product to the transport representation.
func FromDomainProduct(product *productdomain.Product) Product {
	if product == nil {
		return Product{}
	}
	return Product{ID: product.ID, Name: product.Name, Price: product.Price}
}

// FromDomainProducts converts a slice of domain products.
func FromDomainProducts(products []*productdomain.Product) []Product {
	result := make([]Product, 0, len(products))
	for _, product := range products {
		result = append(result, FromDomainProduct(product))
	}
	return result
}
