package application

import (
	"context"
	"errors"

	"github.com/google/uuid"

	orderdomain "github.com/Apurer/go-gin-shop-api/internal/domains/orders/domain"
	orderports "github.com/Apurer/go-gin-shop-api/internal/domains/orders/ports"
	"github.com/Apurer/go-gin-shop-api/internal/domains/users/domain"
	"github.com/Apurer/go-gin-shop-api/internal/domains/users/ports"
)

// Service implements the user use cases, including the checkout and
// remove-order orchestration across the user and order stores.
type Service struct {
	users  ports.Repository
	orders orderports.Repository
}

// NewService wires the user service.
func NewService(users ports.Repository, orders orderports.Repository) *Service {
	return &Service{users: users, orders: orders}
}

func (s *Service) AddUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}
	created, err := domain.NewUser(user.ID, user.Name)
	if err != nil {
		return nil, mapError(err)
	}
	created.Orders = append(created.Orders, user.Orders...)
	if err := s.users.Save(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// OrdersByUser returns the user's embedded orders; an unknown user yields an
// empty slice.
func (s *Service) OrdersByUser(ctx context.Context, id uuid.UUID) ([]orderdomain.Order, error) {
	user, err := s.users.GetByID(ctx, id)
	if errors.Is(err, ports.ErrNotFound) {
		return []orderdomain.Order{}, nil
	}
	if err != nil {
		return nil, err
	}
	return user.Orders, nil
}

// Checkout appends a fresh empty order to the user's embedded list and to the
// independent order store. The user record is updated by removing it and
// re-appending the mutated copy; the two writes are not transactional, so a
// failure between them leaves the stores out of step. An unknown user changes
// neither store.
func (s *Service) Checkout(ctx context.Context, id uuid.UUID) error {
	user, err := s.users.GetByID(ctx, id)
	if errors.Is(err, ports.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	order := orderdomain.NewOrder(uuid.Nil, user.ID, 0, nil)
	user.Orders = append(user.Orders, *order)
	if err := s.users.Delete(ctx, user.ID); err != nil {
		return err
	}
	if err := s.users.Save(ctx, user); err != nil {
		return err
	}
	return s.orders.Save(ctx, order)
}

// RemoveOrder drops every copy of the order from the user's embedded list and
// rewrites the user record. The independent order store is left untouched.
// Unknown users and unknown orders are silent no-ops.
func (s *Service) RemoveOrder(ctx context.Context, userID, orderID uuid.UUID) error {
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, ports.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	kept := user.Orders[:0]
	for _, o := range user.Orders {
		if o.ID != orderID {
			kept = append(kept, o)
		}
	}
	user.Orders = kept
	if err := s.users.Delete(ctx, user.ID); err != nil {
		return err
	}
	return s.users.Save(ctx, user)
}

// EmptyCart does nothing. The endpoint exists but the behavior was never
// implemented; callers still receive a confirmation.
func (s *Service) EmptyCart(context.Context, uuid.UUID) error {
	return nil
}

// Delete checks existence first so the transport can report a missing user.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return err
	}
	return s.users.Delete(ctx, id)
}

var _ ports.Service = (*Service)(nil)
