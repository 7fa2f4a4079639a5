package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	orderdomain "github.com/Apurer/go-gin-shop-api/internal/domains/orders/domain"
)

// ErrEmptyName rejects users created without a name.
var ErrEmptyName = errors.New("user name must not be empty")

// User is the account aggregate. Orders holds value snapshots of every order
// the user checked out; the independent order store keeps its own copies.
type User struct {
	ID     uuid.UUID
	Name   string
	Orders []orderdomain.Order
}

// NewUser builds a validated user, assigning an id when the caller did not
// provide one.
func NewUser(id uuid.UUID, name string) (*User, error) {
	if id == uuid.Nil {
		id = uuid.New()
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &User{
		ID:     id,
		Name:   name,
		Orders: []orderdomain.Order{},
	}, nil
}
