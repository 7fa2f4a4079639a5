package application

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-shop-api/internal/domains/products/domain"
	"github.com/Apurer/go-gin-shop-api/internal/domains/products/ports"
)

type fakeProductRepo struct {
	products []*domain.Product
}

func (f *fakeProductRepo) Save(_ context.Context, product *domain.Product) (*domain.Product, error) {
	clone := *product
	f.products = append(f.products, &clone)
	return &clone, nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, ports.ErrNotFound
}

func (f *fakeProductRepo) List(_ context.Context) ([]*domain.Product, error) {
	list := make([]*domain.Product, 0, len(f.products))
	for _, p := range f.products {
		clone := *p
		list = append(list, &clone)
	}
	return list, nil
}

func (f *fakeProductRepo) Update(_ context.Context, id uuid.UUID, patch domain.Patch) (*domain.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			if patch.Name != nil {
				p.Name = *patch.Name
			}
			if patch.Price != nil {
				p.Price = *patch.Price
			}
			clone := *p
			return &clone, nil
		}
	}
	return nil, ports.ErrNotFound
}

func (f *fakeProductRepo) ApplyDiscount(_ context.Context, discount float64, ids []uuid.UUID) error {
	matched := map[uuid.UUID]bool{}
	for _, id := range ids {
		matched[id] = true
	}
	for _, p := range f.products {
		if matched[p.ID] {
			p.Price *= 1 - discount/100
		}
	}
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	kept := f.products[:0]
	for _, p := range f.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	f.products = kept
	return nil
}

func TestAddProduct_ValidatesAndPersists(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewService(repo)

	product, err := domain.NewProduct(uuid.Nil, "keyboard", 49.99)
	require.NoError(t, err)

	saved, err := svc.AddProduct(context.Background(), product)
	require.NoError(t, err)
	require.Equal(t, product.ID, saved.ID)
	require.Equal(t, "keyboard", saved.Name)
}

func TestAddProduct_Nil(t *testing.T) {
	svc := NewService(&fakeProductRepo{})
	_, err := svc.AddProduct(context.Background(), nil)
	require.Error(t, err)
}

func TestAddProduct_InvalidPrice(t *testing.T) {
	svc := NewService(&fakeProductRepo{})
	_, err := svc.AddProduct(context.Background(), &domain.Product{ID: uuid.New(), Name: "x", Price: -1})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestApplyDiscount_MatchedOnly(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewService(repo)

	a, _ := domain.NewProduct(uuid.Nil, "a", 100.00)
	b, _ := domain.NewProduct(uuid.Nil, "b", 200.00)
	c, _ := domain.NewProduct(uuid.Nil, "c", 50.00)
	for _, p := range []*domain.Product{a, b, c} {
		_, err := svc.AddProduct(context.Background(), p)
		require.NoError(t, err)
	}

	// Unmatched ids in the set are ignored.
	err := svc.ApplyDiscount(context.Background(), 20, []uuid.UUID{a.ID, b.ID, uuid.New()})
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	require.InDelta(t, 80.00, got.Price, 0.01)

	got, err = svc.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	require.InDelta(t, 160.00, got.Price, 0.01)

	got, err = svc.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	require.InDelta(t, 50.00, got.Price, 0.01)
}

func TestApplyDiscount_NoBoundsCheck(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewService(repo)

	p, _ := domain.NewProduct(uuid.Nil, "p", 10.00)
	_, err := svc.AddProduct(context.Background(), p)
	require.NoError(t, err)

	require.NoError(t, svc.ApplyDiscount(context.Background(), 150, []uuid.UUID{p.ID}))
	got, err := svc.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.InDelta(t, -5.00, got.Price, 0.01)
}

func TestDelete_UnknownIDReportsNotFound(t *testing.T) {
	svc := NewService(&fakeProductRepo{})
	err := svc.Delete(context.Background(), uuid.New())
	require.ErrorIs(t, err, ports.ErrNotFound)
}
