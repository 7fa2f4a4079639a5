package shopserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	cartmapper "github.com/Apurer/go-gin-shop-api/internal/domains/carts/adapters/http/mapper"
	cartports "github.com/Apurer/go-gin-shop-api/internal/domains/carts/ports"
	productports "github.com/Apurer/go-gin-shop-api/internal/domains/products/ports"
)

// CartAPI serves the cart endpoints.
type CartAPI struct {
	service cartports.Service
}

// NewCartAPI wires dependencies.
func NewCartAPI(service cartports.Service) CartAPI {
	return CartAPI{service: service}
}

// Post /cart/
// Create a cart
func (api *CartAPI) CreateCart(c *gin.Context) {
	var payload cartmapper.Cart
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	created, err := api.service.AddCart(c.Request.Context(), cartmapper.ToDomainCart(payload))
	if err != nil {
		respondCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartmapper.FromDomainCart(created))
}

// Get /cart/
// List carts
func (api *CartAPI) ListCarts(c *gin.Context) {
	carts, err := api.service.List(c.Request.Context())
	if err != nil {
		respondCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartmapper.FromDomainCarts(carts))
}

// Get /cart/:cartId and Get /cart/user/:userId
// The static "user" segment cannot sit beside the :cartId wildcard in gin's
// tree, so the by-user lookup registers as /cart/:cartId/:userId and the
// handler insists on the "user" literal.
func (api *CartAPI) GetCart(c *gin.Context) {
	id, ok := parseUUIDParam(c, "cartId")
	if !ok {
		return
	}
	cart, err := api.service.GetByID(c.Request.Context(), id)
	if errors.Is(err, cartports.ErrNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		respondCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartmapper.FromDomainCart(cart))
}

// GetCartByUser handles /cart/user/:userId via the two-wildcard registration.
func (api *CartAPI) GetCartByUser(c *gin.Context) {
	if c.Param("cartId") != "user" {
		respondError(c, http.StatusNotFound, errors.New("no route for "+c.Request.URL.Path))
		return
	}
	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}
	cart, err := api.service.GetByUserID(c.Request.Context(), userID)
	if errors.Is(err, cartports.ErrNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		respondCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartmapper.FromDomainCart(cart))
}

// Put /cart/addProduct/:cartId?productId=
// Snapshot a product into the cart; an unknown cart still confirms
func (api *CartAPI) AddProduct(c *gin.Context) {
	cartID, ok := parseUUIDParam(c, "cartId")
	if !ok {
		return
	}
	productID, ok := parseUUIDQuery(c, "productId")
	if !ok {
		return
	}
	if err := api.service.AddProductToCart(c.Request.Context(), cartID, productID); err != nil {
		if errors.Is(err, productports.ErrNotFound) {
			c.String(http.StatusNotFound, "Product not found")
			return
		}
		respondCartError(c, err)
		return
	}
	c.String(http.StatusOK, "Product added to cart")
}

// Put /cart/deleteProduct/:cartId?productId=
// Remove a product from the cart
func (api *CartAPI) DeleteProduct(c *gin.Context) {
	cartID, ok := parseUUIDParam(c, "cartId")
	if !ok {
		return
	}
	productID, ok := parseUUIDQuery(c, "productId")
	if !ok {
		return
	}
	if err := api.service.RemoveProductFromCart(c.Request.Context(), cartID, productID); err != nil {
		if errors.Is(err, productports.ErrNotFound) {
			c.String(http.StatusNotFound, "Product not found")
			return
		}
		respondCartError(c, err)
		return
	}
	c.String(http.StatusOK, "Product removed from cart")
}

// Delete /cart/delete/:id
// Delete a cart; an unknown id still confirms
func (api *CartAPI) DeleteCart(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		respondCartError(c, err)
		return
	}
	c.String(http.StatusOK, "Cart deleted successfully")
}

func respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cartports.ErrNotFound), errors.Is(err, productports.ErrNotFound):
		respondError(c, http.StatusNotFound, err)
	default:
		respondError(c, http.StatusInternalServerError, err)
	}
}
