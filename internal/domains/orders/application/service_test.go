package application

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderdomain "github.com/Apurer/go-gin-shop-api/internal/domains/orders/domain"
	orderports "github.com/Apurer/go-gin-shop-api/internal/domains/orders/ports"
	productdomain "github.com/Apurer/go-gin-shop-api/internal/domains/products/domain"
)

type fakeOrderRepo struct {
	orders []*orderdomain.Order
}

func (f *fakeOrderRepo) Save(_ context.Context, order *orderdomain.Order) error {
	clone := *order
	f.orders = append(f.orders, &clone)
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*orderdomain.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			clone := *o
			return &clone, nil
		}
	}
	return nil, orderports.ErrNotFound
}

func (f *fakeOrderRepo) List(_ context.Context) ([]*orderdomain.Order, error) {
	out := make([]*orderdomain.Order, 0, len(f.orders))
	for _, o := range f.orders {
		clone := *o
		out = append(out, &clone)
	}
	return out, nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	kept := f.orders[:0]
	for _, o := range f.orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	f.orders = kept
	return nil
}

func TestAddOrderAssignsID(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewService(repo)

	created, err := svc.AddOrder(context.Background(), &orderdomain.Order{
		UserID:     uuid.New(),
		TotalPrice: 42.5,
		Products:   []productdomain.Product{{ID: uuid.New(), Name: "keyboard", Price: 42.5}},
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEqual(t, uuid.Nil, created.ID)
	require.Len(t, repo.orders, 1)
	assert.Equal(t, created.ID, repo.orders[0].ID)
}

func TestAddOrderNil(t *testing.T) {
	svc := NewService(&fakeOrderRepo{})

	_, err := svc.AddOrder(context.Background(), nil)
	require.Error(t, err)
}

func TestDeleteUnknownOrder(t *testing.T) {
	svc := NewService(&fakeOrderRepo{})

	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, orderports.ErrNotFound)
}

func TestDeleteExistingOrder(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewService(repo)

	created, err := svc.AddOrder(context.Background(), &orderdomain.Order{UserID: uuid.New()})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Empty(t, repo.orders)
}
