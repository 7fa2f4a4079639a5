package shopserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	cartports "github.com/Apurer/go-gin-shop-api/internal/domains/carts/ports"
	productports "github.com/Apurer/go-gin-shop-api/internal/domains/products/ports"
	userapp "github.com/Apurer/go-gin-shop-api/internal/domains/users/application"
	usermapper "github.com/Apurer/go-gin-shop-api/internal/domains/users/adapters/http/mapper"
	userports "github.com/Apurer/go-gin-shop-api/internal/domains/users/ports"
)

// UserAPI serves the user endpoints, including the checkout and cart
// orchestration entry points.
type UserAPI struct {
	service  userports.Service
	checkout userports.CheckoutOrchestrator
	carts    cartports.Service
}

// NewUserAPI wires dependencies.
func NewUserAPI(service userports.Service, checkout userports.CheckoutOrchestrator, carts cartports.Service) UserAPI {
	return UserAPI{service: service, checkout: checkout, carts: carts}
}

// Post /user/
// Create user
func (api *UserAPI) CreateUser(c *gin.Context) {
	var payload usermapper.User
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	created, err := api.service.AddUser(c.Request.Context(), usermapper.ToDomainUser(payload))
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, usermapper.FromDomainUser(created))
}

// Get /user/
// List users
func (api *UserAPI) ListUsers(c *gin.Context) {
	users, err := api.service.List(c.Request.Context())
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, usermapper.FromDomainUsers(users))
}

// Get /user/:id
// Get user by id; an unknown id yields a null body, not an error
func (api *UserAPI) GetUser(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	user, err := api.service.GetByID(c.Request.Context(), id)
	if errors.Is(err, userports.ErrNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, usermapper.FromDomainUser(user))
}

// Get /user/:id/orders
// List the user's orders; an unknown user yields an empty sequence
func (api *UserAPI) ListUserOrders(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	orders, err := api.service.OrdersByUser(c.Request.Context(), id)
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, usermapper.FromDomainOrders(orders))
}

// Post /user/:id/checkout
// Create an order for the user; an unknown user still confirms
func (api *UserAPI) Checkout(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.checkout.Checkout(c.Request.Context(), id); err != nil {
		respondUserError(c, err)
		return
	}
	c.String(http.StatusOK, "Order added successfully")
}

// Post /user/:id/removeOrder?orderId=
// Remove an order from the user's list; the order store keeps its copy
func (api *UserAPI) RemoveOrder(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	orderID, ok := parseUUIDQuery(c, "orderId")
	if !ok {
		return
	}
	if err := api.service.RemoveOrder(c.Request.Context(), id, orderID); err != nil {
		respondUserError(c, err)
		return
	}
	c.String(http.StatusOK, "Order removed successfully")
}

// Delete /user/delete/:id and Delete /user/:id/emptyCart
// Gin's router tree cannot hold a static segment beside a wildcard at the
// same position, so one dispatcher owns both two-segment DELETE shapes.
func (api *UserAPI) DeleteDispatch(c *gin.Context) {
	head := c.Param("head")
	tail := c.Param("tail")
	switch {
	case head == "delete":
		api.deleteUser(c, tail)
	case tail == "emptyCart":
		api.emptyCart(c, head)
	default:
		respondError(c, http.StatusNotFound, errors.New("no route for "+c.Request.URL.Path))
	}
}

func (api *UserAPI) deleteUser(c *gin.Context, rawID string) {
	id, err := parseRawUUID(c, rawID)
	if err != nil {
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, userports.ErrNotFound) {
			c.String(http.StatusNotFound, "User not found")
			return
		}
		respondUserError(c, err)
		return
	}
	c.String(http.StatusOK, "User deleted successfully")
}

// emptyCart confirms without touching any state.
func (api *UserAPI) emptyCart(c *gin.Context, rawID string) {
	id, err := parseRawUUID(c, rawID)
	if err != nil {
		return
	}
	if err := api.service.EmptyCart(c.Request.Context(), id); err != nil {
		respondUserError(c, err)
		return
	}
	c.String(http.StatusOK, "Cart emptied successfully")
}

// Put /user/addProductToCart?userId=&productId=
// Snapshot a product into the user's cart, creating the cart when needed
func (api *UserAPI) AddProductToCart(c *gin.Context) {
	userID, ok := parseUUIDQuery(c, "userId")
	if !ok {
		return
	}
	productID, ok := parseUUIDQuery(c, "productId")
	if !ok {
		return
	}
	if err := api.carts.AddProductForUser(c.Request.Context(), userID, productID); err != nil {
		if errors.Is(err, productports.ErrNotFound) {
			c.String(http.StatusNotFound, "Product not found")
			return
		}
		respondUserError(c, err)
		return
	}
	c.String(http.StatusOK, "Product added to cart")
}

// Put /user/deleteProductFromCart?userId=&productId=
// Remove a product from the user's cart
func (api *UserAPI) DeleteProductFromCart(c *gin.Context) {
	userID, ok := parseUUIDQuery(c, "userId")
	if !ok {
		return
	}
	productID, ok := parseUUIDQuery(c, "productId")
	if !ok {
		return
	}
	if err := api.carts.RemoveProductForUser(c.Request.Context(), userID, productID); err != nil {
		if errors.Is(err, cartports.ErrNotFound) {
			c.String(http.StatusNotFound, "Cart is empty")
			return
		}
		respondUserError(c, err)
		return
	}
	c.String(http.StatusOK, "Product removed from cart")
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, userports.ErrNotFound):
		respondError(c, http.StatusNotFound, err)
	case errors.Is(err, userapp.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, err)
	default:
		respondError(c, http.StatusInternalServerError, err)
	}
}
