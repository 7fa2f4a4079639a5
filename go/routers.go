// Package shopserver exposes the HTTP surface of the shop API over gin.
package shopserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route binds an HTTP method and pattern to a handler.
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc gin.HandlerFunc
}

// Routes is the list of the server's registered routes.
type Routes []Route

// ApiHandleFunctions groups the per-resource API handlers.
type ApiHandleFunctions struct {
	UserAPI    UserAPI
	CartAPI    CartAPI
	OrderAPI   OrderAPI
	ProductAPI ProductAPI
}

// NewRouter returns a new gin engine with all routes registered.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine registers all routes on an existing engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = defaultFunc
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

func defaultFunc(c *gin.Context) {}

func getRoutes(h ApiHandleFunctions) Routes {
	return Routes{
		// Users. DELETE /user/delete/:id and DELETE /user/:id/emptyCart would
		// collide in gin's tree, so a single dispatcher owns both shapes.
		{"CreateUser", http.MethodPost, "/user/", h.UserAPI.CreateUser},
		{"ListUsers", http.MethodGet, "/user/", h.UserAPI.ListUsers},
		{"GetUser", http.MethodGet, "/user/:id", h.UserAPI.GetUser},
		{"ListUserOrders", http.MethodGet, "/user/:id/orders", h.UserAPI.ListUserOrders},
		{"Checkout", http.MethodPost, "/user/:id/checkout", h.UserAPI.Checkout},
		{"RemoveOrder", http.MethodPost, "/user/:id/removeOrder", h.UserAPI.RemoveOrder},
		{"UserDeleteDispatch", http.MethodDelete, "/user/:head/:tail", h.UserAPI.DeleteDispatch},
		{"AddProductToCart", http.MethodPut, "/user/addProductToCart", h.UserAPI.AddProductToCart},
		{"DeleteProductFromCart", http.MethodPut, "/user/deleteProductFromCart", h.UserAPI.DeleteProductFromCart},

		// Carts. /cart/user/:userId registers as /cart/:cartId/:userId for the
		// same tree reason; the handler checks the "user" literal.
		{"CreateCart", http.MethodPost, "/cart/", h.CartAPI.CreateCart},
		{"ListCarts", http.MethodGet, "/cart/", h.CartAPI.ListCarts},
		{"GetCart", http.MethodGet, "/cart/:cartId", h.CartAPI.GetCart},
		{"GetCartByUser", http.MethodGet, "/cart/:cartId/:userId", h.CartAPI.GetCartByUser},
		{"CartAddProduct", http.MethodPut, "/cart/addProduct/:cartId", h.CartAPI.AddProduct},
		{"CartDeleteProduct", http.MethodPut, "/cart/deleteProduct/:cartId", h.CartAPI.DeleteProduct},
		{"DeleteCart", http.MethodDelete, "/cart/delete/:id", h.CartAPI.DeleteCart},

		// Orders.
		{"CreateOrder", http.MethodPost, "/order/", h.OrderAPI.CreateOrder},
		{"ListOrders", http.MethodGet, "/order/", h.OrderAPI.ListOrders},
		{"GetOrder", http.MethodGet, "/order/:id", h.OrderAPI.GetOrder},
		{"DeleteOrder", http.MethodDelete, "/order/delete/:id", h.OrderAPI.DeleteOrder},

		// Products.
		{"AddProduct", http.MethodPost, "/product/", h.ProductAPI.AddProduct},
		{"ListProducts", http.MethodGet, "/product/", h.ProductAPI.ListProducts},
		{"GetProduct", http.MethodGet, "/product/:id", h.ProductAPI.GetProduct},
		{"UpdateProduct", http.MethodPut, "/product/update/:id", h.ProductAPI.UpdateProduct},
		{"ApplyDiscount", http.MethodPut, "/product/applyDiscount", h.ProductAPI.ApplyDiscount},
		{"DeleteProduct", http.MethodDelete, "/product/delete/:id", h.ProductAPI.DeleteProduct},
	}
}
