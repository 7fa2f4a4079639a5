package jsonfile

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-shop-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-shop-api/internal/domains/orders/ports"
	productdomain "github.com/Apurer/go-gin-shop-api/internal/domains/products/domain"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(filepath.Join(t.TempDir(), "orders.json"))
}

func TestSaveAndGetByID(t *testing.T) {
	repo := newTestRepository(t)
	order := domain.NewOrder(uuid.Nil, uuid.New(), 120, []productdomain.Product{
		{ID: uuid.New(), Name: "mouse", Price: 40},
		{ID: uuid.New(), Name: "mat", Price: 80},
	})

	require.NoError(t, repo.Save(context.Background(), order))

	loaded, err := repo.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.UserID, loaded.UserID)
	assert.Equal(t, order.TotalPrice, loaded.TotalPrice)
	require.Len(t, loaded.Products, 2)
	assert.Equal(t, "mouse", loaded.Products[0].Name)
}

func TestGetByIDUnknown(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestListEmptyWithoutFile(t *testing.T) {
	repo := newTestRepository(t)

	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestDeleteRemovesAllMatches(t *testing.T) {
	repo := newTestRepository(t)
	id := uuid.New()
	userID := uuid.New()
	require.NoError(t, repo.Save(context.Background(), &domain.Order{ID: id, UserID: userID}))
	require.NoError(t, repo.Save(context.Background(), &domain.Order{ID: id, UserID: userID}))
	other := domain.NewOrder(uuid.Nil, userID, 10, nil)
	require.NoError(t, repo.Save(context.Background(), other))

	require.NoError(t, repo.Delete(context.Background(), id))

	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, other.ID, orders[0].ID)
}

func TestDeleteUnknownIsSilent(t *testing.T) {
	repo := newTestRepository(t)
	order := domain.NewOrder(uuid.Nil, uuid.New(), 5, nil)
	require.NoError(t, repo.Save(context.Background(), order))

	require.NoError(t, repo.Delete(context.Background(), uuid.New()))

	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestOrderSnapshotSurvivesRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	product := productdomain.Product{ID: uuid.New(), Name: "lamp", Price: 25}
	order := domain.NewOrder(uuid.Nil, uuid.New(), 25, []productdomain.Product{product})
	require.NoError(t, repo.Save(context.Background(), order))

	loaded, err := repo.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Products, 1)
	assert.Equal(t, product, loaded.Products[0])
}
