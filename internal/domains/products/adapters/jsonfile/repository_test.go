package jsonfile

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-shop-api/internal/domains/products/domain"
	"github.com/Apurer/go-gin-shop-api/internal/domains/products/ports"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(filepath.Join(t.TempDir(), "products.json"))
}

func mustProduct(t *testing.T, name string, price float64) *domain.Product {
	t.Helper()
	product, err := domain.NewProduct(uuid.Nil, name, price)
	require.NoError(t, err)
	return product
}

func TestSaveAndGetByID(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	product := mustProduct(t, "keyboard", 49.99)
	_, err := repo.Save(ctx, product)
	require.NoError(t, err)

	fetched, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.ID, fetched.ID)
	assert.Equal(t, product.Name, fetched.Name)
	assert.Equal(t, product.Price, fetched.Price)
}

func TestGetByID_Unknown(t *testing.T) {
	repo := newTestRepository(t)
	_, err := repo.GetByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestList_EmptyWithoutFile(t *testing.T) {
	repo := newTestRepository(t)
	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdate_PartialFields(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	product := mustProduct(t, "mouse", 25.00)
	_, err := repo.Save(ctx, product)
	require.NoError(t, err)

	name := "trackball"
	updated, err := repo.Update(ctx, product.ID, domain.Patch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "trackball", updated.Name)
	// Omitted price stays untouched.
	assert.Equal(t, 25.00, updated.Price)

	zero := 0.0
	updated, err = repo.Update(ctx, product.ID, domain.Patch{Price: &zero})
	require.NoError(t, err)
	// Explicit zero is applied, unlike an absent field.
	assert.Equal(t, 0.0, updated.Price)
	assert.Equal(t, "trackball", updated.Name)
}

func TestUpdate_Unknown(t *testing.T) {
	repo := newTestRepository(t)
	name := "x"
	_, err := repo.Update(context.Background(), uuid.New(), domain.Patch{Name: &name})
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestApplyDiscount(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	a := mustProduct(t, "a", 100.00)
	b := mustProduct(t, "b", 200.00)
	c := mustProduct(t, "c", 10.00)
	for _, p := range []*domain.Product{a, b, c} {
		_, err := repo.Save(ctx, p)
		require.NoError(t, err)
	}

	err := repo.ApplyDiscount(ctx, 20, []uuid.UUID{a.ID, b.ID, uuid.New()})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.InDelta(t, 80.00, got.Price, 0.01)

	got, err = repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.InDelta(t, 160.00, got.Price, 0.01)

	got, err = repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.InDelta(t, 10.00, got.Price, 0.01)
}

func TestDelete_RemovesAndIgnoresUnknown(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	keep := mustProduct(t, "keep", 1.00)
	drop := mustProduct(t, "drop", 2.00)
	for _, p := range []*domain.Product{keep, drop} {
		_, err := repo.Save(ctx, p)
		require.NoError(t, err)
	}

	require.NoError(t, repo.Delete(ctx, drop.ID))
	_, err := repo.GetByID(ctx, drop.ID)
	require.ErrorIs(t, err, ports.ErrNotFound)

	// Unknown id is a silent no-op and leaves other records alone.
	require.NoError(t, repo.Delete(ctx, uuid.New()))
	got, err := repo.GetByID(ctx, keep.ID)
	require.NoError(t, err)
	assert.Equal(t, "keep", got.Name)
}

func TestDelete_RemovesAllDuplicates(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	// The store never rejects a duplicate id on add.
	id := uuid.New()
	for i := 0; i < 2; i++ {
		_, err := repo.Save(ctx, &domain.Product{ID: id, Name: "dup", Price: 1})
		require.NoError(t, err)
	}
	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	require.NoError(t, repo.Delete(ctx, id))
	list, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFilePath(t *testing.T) {
	dir := t.TempDir()
	repo := NewRepository(filepath.Join(dir, "products.json"))
	_, err := repo.Save(context.Background(), mustProduct(t, "x", 1))
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "products.json"))
}
