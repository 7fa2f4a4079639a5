package ports

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Apurer/go-gin-shop-api/internal/domains/users/domain"
)

// ErrNotFound is returned when a user does not exist.
var ErrNotFound = errors.New("user not found")

// Repository persists users with their embedded order lists.
type Repository interface {
	// Save appends the user to the store.
	Save(ctx context.Context, user *domain.User) error
	// GetByID returns the first user with the given id or ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	// List returns every stored user.
	List(ctx context.Context) ([]*domain.User, error)
	// Delete removes every user with the given id. Unknown ids are a no-op.
	Delete(ctx context.Context, id uuid.UUID) error
}
