package ports

import (
	"context"

	"github.com/google/uuid"
)

// CheckoutOrchestrator runs the checkout dual write, durably when a workflow
// backend is configured.
type CheckoutOrchestrator interface {
	Checkout(ctx context.Context, userID uuid.UUID) error
}
