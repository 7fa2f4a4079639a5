package shopserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	productmapper "github.com/Apurer/go-gin-shop-api/internal/domains/products/adapters/http/mapper"
	productapp "github.com/Apurer/go-gin-shop-api/internal/domains/products/application"
	productports "github.com/Apurer/go-gin-shop-api/internal/domains/products/ports"
)

// ProductAPI serves the product catalog endpoints.
type ProductAPI struct {
	service productports.Service
}

// NewProductAPI wires dependencies.
func NewProductAPI(service productports.Service) ProductAPI {
	return ProductAPI{service: service}
}

// discountRequest is the applyDiscount body: the product ids to discount.
type discountRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

// Post /product/
// Add a product to the catalog
func (api *ProductAPI) AddProduct(c *gin.Context) {
	var payload productmapper.Product
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	product, err := productmapper.ToDomainProduct(payload)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	created, err := api.service.AddProduct(c.Request.Context(), product)
	if err != nil {
		respondProductError(c, err)
		return
	}
	c.JSON(http.StatusOK, productmapper.FromDomainProduct(created))
}

// Get /product/
// List all products
func (api *ProductAPI) ListProducts(c *gin.Context) {
	products, err := api.service.List(c.Request.Context())
	if err != nil {
		respondProductError(c, err)
		return
	}
	c.JSON(http.StatusOK, productmapper.FromDomainProducts(products))
}

// Get /product/:id
// Get a product by id
func (api *ProductAPI) GetProduct(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	product, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondProductError(c, err)
		return
	}
	c.JSON(http.StatusOK, productmapper.FromDomainProduct(product))
}

// Put /product/update/:id
// Partially update a product; absent fields keep their stored value
func (api *ProductAPI) UpdateProduct(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var payload productmapper.Patch
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	updated, err := api.service.Update(c.Request.Context(), id, productmapper.ToDomainPatch(payload))
	if err != nil {
		respondProductError(c, err)
		return
	}
	c.JSON(http.StatusOK, productmapper.FromDomainProduct(updated))
}

// Put /product/applyDiscount?discount=
// Apply a percentage discount to the products named in the body
func (api *ProductAPI) ApplyDiscount(c *gin.Context) {
	var discount float64
	if err := bindFloatQuery(c, "discount", &discount); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	var payload discountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if err := api.service.ApplyDiscount(c.Request.Context(), discount, payload.IDs); err != nil {
		respondProductError(c, err)
		return
	}
	c.String(http.StatusOK, "Discount applied successfully")
}

// Delete /product/delete/:id
// Delete a product
func (api *ProductAPI) DeleteProduct(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, productports.ErrNotFound) {
			c.String(http.StatusNotFound, "Product not found")
			return
		}
		respondProductError(c, err)
		return
	}
	c.String(http.StatusOK, "Product deleted successfully")
}

func respondProductError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, productports.ErrNotFound):
		respondError(c, http.StatusNotFound, err)
	case errors.Is(err, productapp.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, err)
	default:
		respondError(c, http.StatusInternalServerError, err)
	}
}
