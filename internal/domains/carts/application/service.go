package application

import (
	"context"
	"errors"

	"github.com/google/uuid"

	cartdomain "github.com/Apurer/go-gin-shop-api/internal/domains/carts/domain"
	cartports "github.com/Apurer/go-gin-shop-api/internal/domains/carts/ports"
	productports "github.com/Apurer/go-gin-shop-api/internal/domains/products/ports"
)

// Service implements the cart use cases. It depends on the product repository
// directly because every cart mutation snapshots the product's current state.
type Service struct {
	carts    cartports.Repository
	products productports.Repository
}

// NewService wires the cart service.
func NewService(carts cartports.Repository, products productports.Repository) *Service {
	return &Service{carts: carts, products: products}
}

func (s *Service) AddCart(ctx context.Context, cart *cartdomain.Cart) (*cartdomain.Cart, error) {
	if cart == nil {
		return nil, errors.New("cart is nil")
	}
	created := cartdomain.NewCart(cart.UserID)
	if cart.ID != uuid.Nil {
		created.ID = cart.ID
	}
	created.Products = append(created.Products, cart.Products...)
	if err := s.carts.Save(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) List(ctx context.Context) ([]*cartdomain.Cart, error) {
	return s.carts.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*cartdomain.Cart, error) {
	return s.carts.GetByID(ctx, id)
}

func (s *Service) GetByUserID(ctx context.Context, userID uuid.UUID) (*cartdomain.Cart, error) {
	return s.carts.GetByUserID(ctx, userID)
}

// AddProductToCart resolves the product and appends its snapshot to the cart.
// The repository swallows unknown cart ids; an unknown product surfaces the
// product sentinel.
func (s *Service) AddProductToCart(ctx context.Context, cartID, productID uuid.UUID) error {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	return s.carts.AddProduct(ctx, cartID, *product)
}

func (s *Service) RemoveProductFromCart(ctx context.Context, cartID, productID uuid.UUID) error {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return err
	}
	return s.carts.RemoveProduct(ctx, cartID, productID)
}

// AddProductForUser finds the user's cart, creating one when the user has
// none yet, and snapshots the product into it.
func (s *Service) AddProductForUser(ctx context.Context, userID, productID uuid.UUID) error {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	cart, err := s.carts.GetByUserID(ctx, userID)
	if errors.Is(err, cartports.ErrNotFound) {
		cart = cartdomain.NewCart(userID)
		if err := s.carts.Save(ctx, cart); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}
	return s.carts.AddProduct(ctx, cart.ID, *product)
}

// RemoveProductForUser drops the product from the user's cart. A user without
// a cart yields ErrNotFound so the transport can report the cart as empty.
func (s *Service) RemoveProductForUser(ctx context.Context, userID, productID uuid.UUID) error {
	cart, err := s.carts.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return s.carts.RemoveProduct(ctx, cart.ID, productID)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.carts.Delete(ctx, id)
}

var _ cartports.Service = (*Service)(nil)
