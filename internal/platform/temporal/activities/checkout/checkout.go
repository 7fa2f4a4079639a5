package checkout

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.temporal.io/sdk/activity"

	usersports "github.com/Apurer/go-gin-shop-api/internal/domains/users/ports"
)

// RunCheckoutActivityName executes the checkout dual write.
const RunCheckoutActivityName = "users.activities.RunCheckout"

// Activities groups activities that operate on the users bounded context.
type Activities struct {
	users usersports.Service
}

// NewActivities wires the user service into the Temporal activities bundle.
func NewActivities(users usersports.Service) *Activities {
	return &Activities{users: users}
}

// RunCheckout appends an order to the user's embedded list and to the
// independent order store.
func (a *Activities) RunCheckout(ctx context.Context, userID uuid.UUID) error {
	logger := activity.GetLogger(ctx)
	if a == nil || a.users == nil {
		logger.Error("checkout activity not initialized", "userId", userID)
		return errors.New("checkout activity not initialized")
	}
	logger.Info("RunCheckout activity started", "userId", userID)
	if err := a.users.Checkout(ctx, userID); err != nil {
		logger.Error("RunCheckout activity failed", "userId", userID, "error", err)
		return err
	}
	logger.Info("RunCheckout activity completed", "userId", userID)
	return nil
}
