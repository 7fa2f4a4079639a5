package jsonfile

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-shop-api/internal/domains/carts/domain"
	"github.com/Apurer/go-gin-shop-api/internal/domains/carts/ports"
	productdomain "github.com/Apurer/go-gin-shop-api/internal/domains/products/domain"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(filepath.Join(t.TempDir(), "carts.json"))
}

func TestSaveAndGetByID(t *testing.T) {
	repo := newTestRepository(t)
	cart := domain.NewCart(uuid.New())

	require.NoError(t, repo.Save(context.Background(), cart))

	loaded, err := repo.GetByID(context.Background(), cart.ID)
	require.NoError(t, err)
	assert.Equal(t, cart.UserID, loaded.UserID)
	assert.Empty(t, loaded.Products)
}

func TestGetByUserIDFirstMatch(t *testing.T) {
	repo := newTestRepository(t)
	userID := uuid.New()
	first := domain.NewCart(userID)
	second := domain.NewCart(userID)
	require.NoError(t, repo.Save(context.Background(), first))
	require.NoError(t, repo.Save(context.Background(), second))

	loaded, err := repo.GetByUserID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, loaded.ID)
}

func TestGetByUserIDUnknown(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetByUserID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestAddProductAllowsDuplicates(t *testing.T) {
	repo := newTestRepository(t)
	cart := domain.NewCart(uuid.New())
	require.NoError(t, repo.Save(context.Background(), cart))
	product := productdomain.Product{ID: uuid.New(), Name: "cup", Price: 7}

	require.NoError(t, repo.AddProduct(context.Background(), cart.ID, product))
	require.NoError(t, repo.AddProduct(context.Background(), cart.ID, product))

	loaded, err := repo.GetByID(context.Background(), cart.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Products, 2)
}

func TestAddProductUnknownCartIsSilent(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.AddProduct(context.Background(), uuid.New(), productdomain.Product{ID: uuid.New()})
	require.NoError(t, err)

	carts, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, carts)
}

func TestRemoveProductDropsAllCopies(t *testing.T) {
	repo := newTestRepository(t)
	cart := domain.NewCart(uuid.New())
	require.NoError(t, repo.Save(context.Background(), cart))
	product := productdomain.Product{ID: uuid.New(), Name: "cup", Price: 7}
	other := productdomain.Product{ID: uuid.New(), Name: "plate", Price: 9}
	require.NoError(t, repo.AddProduct(context.Background(), cart.ID, product))
	require.NoError(t, repo.AddProduct(context.Background(), cart.ID, product))
	require.NoError(t, repo.AddProduct(context.Background(), cart.ID, other))

	require.NoError(t, repo.RemoveProduct(context.Background(), cart.ID, product.ID))

	loaded, err := repo.GetByID(context.Background(), cart.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Products, 1)
	assert.Equal(t, other.ID, loaded.Products[0].ID)
}

func TestRemoveProductUnknownCartIsSilent(t *testing.T) {
	repo := newTestRepository(t)

	assert.NoError(t, repo.RemoveProduct(context.Background(), uuid.New(), uuid.New()))
}

func TestDeleteRemovesCart(t *testing.T) {
	repo := newTestRepository(t)
	cart := domain.NewCart(uuid.New())
	require.NoError(t, repo.Save(context.Background(), cart))

	require.NoError(t, repo.Delete(context.Background(), cart.ID))

	_, err := repo.GetByID(context.Background(), cart.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
