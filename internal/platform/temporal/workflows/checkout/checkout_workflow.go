package checkout

import (
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	checkoutactivities "github.com/Apurer/go-gin-shop-api/internal/platform/temporal/activities/checkout"
)

const (
	// CheckoutWorkflowName is the public identifier for registering the workflow.
	CheckoutWorkflowName = "users.workflows.Checkout"
	// CheckoutTaskQueue is the queue consumed by the worker processing checkouts.
	CheckoutTaskQueue = "USER_CHECKOUT"
)

// CheckoutWorkflowInput captures the payload required to run a checkout.
type CheckoutWorkflowInput struct {
	UserID  uuid.UUID
	TraceID string
}

// CheckoutWorkflow runs the checkout dual write as a durable activity. The
// write to the user store and the write to the order store stay a single
// activity because the underlying stores offer no partial-write recovery.
func CheckoutWorkflow(ctx workflow.Context, input CheckoutWorkflowInput) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("CheckoutWorkflow started", withTraceID(input.TraceID, "userId", input.UserID)...)

	options := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	err := workflow.ExecuteActivity(
		workflow.WithActivityOptions(ctx, options),
		checkoutactivities.RunCheckoutActivityName,
		input.UserID,
	).Get(ctx, nil)
	if err != nil {
		logger.Error("CheckoutWorkflow failed", withTraceID(input.TraceID, "userId", input.UserID, "error", err)...)
		return err
	}
	logger.Info("CheckoutWorkflow completed", withTraceID(input.TraceID, "userId", input.UserID)...)
	return nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
