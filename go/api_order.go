package shopserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	ordermapper "github.com/Apurer/go-gin-shop-api/internal/domains/orders/adapters/http/mapper"
	orderports "github.com/Apurer/go-gin-shop-api/internal/domains/orders/ports"
)

// OrderAPI serves the order endpoints.
type OrderAPI struct {
	service orderports.Service
}

// NewOrderAPI wires dependencies.
func NewOrderAPI(service orderports.Service) OrderAPI {
	return OrderAPI{service: service}
}

// Post /order/
// Create an order
func (api *OrderAPI) CreateOrder(c *gin.Context) {
	var payload ordermapper.Order
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	created, err := api.service.AddOrder(c.Request.Context(), ordermapper.ToDomainOrder(payload))
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.FromDomainOrder(created))
}

// Get /order/
// List orders
func (api *OrderAPI) ListOrders(c *gin.Context) {
	orders, err := api.service.List(c.Request.Context())
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.FromDomainOrders(orders))
}

// Get /order/:id
// Get an order by id; an unknown id yields a null body
func (api *OrderAPI) GetOrder(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	order, err := api.service.GetByID(c.Request.Context(), id)
	if errors.Is(err, orderports.ErrNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.FromDomainOrder(order))
}

// Delete /order/delete/:id
// Delete an order; an unknown id reports not found
func (api *OrderAPI) DeleteOrder(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, orderports.ErrNotFound) {
			c.String(http.StatusNotFound, "Order not found")
			return
		}
		respondOrderError(c, err)
		return
	}
	c.String(http.StatusOK, "Order deleted successfully")
}

func respondOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, orderports.ErrNotFound):
		respondError(c, http.StatusNotFound, err)
	default:
		respondError(c, http.StatusInternalServerError, err)
	}
}
