package application

import (
	"context"
	"errors"

	"github.com/google/uuid"

	orderdomain "github.com/Apurer/go-gin-shop-api/internal/domains/orders/domain"
	orderports "github.com/Apurer/go-gin-shop-api/internal/domains/orders/ports"
)

// Service implements the order use cases on top of a repository.
type Service struct {
	orders orderports.Repository
}

// NewService wires the order service.
func NewService(orders orderports.Repository) *Service {
	return &Service{orders: orders}
}

func (s *Service) AddOrder(ctx context.Context, order *orderdomain.Order) (*orderdomain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	created := orderdomain.NewOrder(order.ID, order.UserID, order.TotalPrice, order.Products)
	if err := s.orders.Save(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) List(ctx context.Context) ([]*orderdomain.Order, error) {
	return s.orders.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*orderdomain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

// Delete checks existence first so callers can distinguish a missing order
// from a successful removal.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.orders.GetByID(ctx, id); err != nil {
		return err
	}
	return s.orders.Delete(ctx, id)
}

var _ orderports.Service = (*Service)(nil)
