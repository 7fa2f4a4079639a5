//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Apurer/go-gin-shop-api/internal/domains/products/domain"
	"github.com/Apurer/go-gin-shop-api/internal/domains/products/ports"
	"github.com/Apurer/go-gin-shop-api/internal/platform/migrations"
)

func setupProductPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("shop_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func TestRepository_SaveAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupProductPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	product, err := domain.NewProduct(uuid.Nil, "keyboard", 49.99)
	require.NoError(t, err)

	saved, err := repo.Save(ctx, product)
	require.NoError(t, err)
	assert.Equal(t, product.ID, saved.ID)

	fetched, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.Name, fetched.Name)
	assert.InDelta(t, product.Price, fetched.Price, 0.001)
}

func TestRepository_UpdatePartial(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupProductPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	product, err := domain.NewProduct(uuid.Nil, "mouse", 25.00)
	require.NoError(t, err)
	_, err = repo.Save(ctx, product)
	require.NoError(t, err)

	name := "trackball"
	updated, err := repo.Update(ctx, product.ID, domain.Patch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "trackball", updated.Name)
	assert.InDelta(t, 25.00, updated.Price, 0.001)

	_, err = repo.Update(ctx, uuid.New(), domain.Patch{Name: &name})
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRepository_ApplyDiscount(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupProductPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	a, err := domain.NewProduct(uuid.Nil, "a", 100.00)
	require.NoError(t, err)
	b, err := domain.NewProduct(uuid.Nil, "b", 200.00)
	require.NoError(t, err)
	for _, p := range []*domain.Product{a, b} {
		_, err := repo.Save(ctx, p)
		require.NoError(t, err)
	}

	err = repo.ApplyDiscount(ctx, 20, []uuid.UUID{a.ID})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.InDelta(t, 80.00, got.Price, 0.01)

	got, err = repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.InDelta(t, 200.00, got.Price, 0.01)
}

func TestRepository_Delete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupProductPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	product, err := domain.NewProduct(uuid.Nil, "gone", 5.00)
	require.NoError(t, err)
	_, err = repo.Save(ctx, product)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, product.ID))
	_, err = repo.GetByID(ctx, product.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)

	// Deleting an absent id stays a silent no-op.
	require.NoError(t, repo.Delete(ctx, product.ID))
}
