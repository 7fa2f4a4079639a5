package application

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Apurer/go-gin-shop-api/internal/domains/products/domain"
	"github.com/Apurer/go-gin-shop-api/internal/domains/products/ports"
)

// Service orchestrates catalog use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) AddProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	if err := product.Validate(); err != nil {
		return nil, mapError(err)
	}
	return s.repo.Save(ctx, product)
}

func (s *Service) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, patch domain.Patch) (*domain.Product, error) {
	return s.repo.Update(ctx, id, patch)
}

// ApplyDiscount multiplies every matched product's price by (1 - discount/100)
// in a single rewrite. The discount is not bounds-checked; values above 100
// produce negative prices.
func (s *Service) ApplyDiscount(ctx context.Context, discount float64, ids []uuid.UUID) error {
	return s.repo.ApplyDiscount(ctx, discount, ids)
}

// Delete reports ErrNotFound for an unknown id; the repository-level delete
// stays a silent no-op for other callers.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

var _ ports.Service = (*Service)(nil)
