package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/sdk/client"

	"github.com/Apurer/go-gin-shop-api/internal/domains/users/ports"
	checkoutworkflows "github.com/Apurer/go-gin-shop-api/internal/platform/temporal/workflows/checkout"
)

var (
	_ ports.CheckoutOrchestrator = (*TemporalCheckout)(nil)
	_ ports.CheckoutOrchestrator = (*InlineCheckout)(nil)
)

// TemporalCheckout starts checkout workflows on a Temporal cluster.
type TemporalCheckout struct {
	client    client.Client
	taskQueue string
}

// NewTemporalCheckout wires a Temporal client into the orchestrator.
func NewTemporalCheckout(c client.Client) *TemporalCheckout {
	return &TemporalCheckout{client: c, taskQueue: checkoutworkflows.CheckoutTaskQueue}
}

// Checkout starts the durable checkout workflow and waits for its result.
func (o *TemporalCheckout) Checkout(ctx context.Context, userID uuid.UUID) error {
	if o == nil || o.client == nil {
		return errors.New("temporal checkout not configured")
	}
	traceComponent := workflowTraceComponent(ctx)
	options := client.StartWorkflowOptions{
		ID:        fmt.Sprintf("checkout-%s-%s", userID, traceComponent),
		TaskQueue: o.taskQueue,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		checkoutworkflows.CheckoutWorkflow,
		checkoutworkflows.CheckoutWorkflowInput{UserID: userID, TraceID: traceComponent},
	)
	if err != nil {
		return err
	}
	return run.Get(ctx, nil)
}

// InlineCheckout executes the service directly without Temporal, useful for
// tests or dev fallbacks.
type InlineCheckout struct {
	service ports.Service
}

// NewInlineCheckout wraps the user service for synchronous execution.
func NewInlineCheckout(service ports.Service) *InlineCheckout {
	return &InlineCheckout{service: service}
}

// Checkout delegates to the application service without durable orchestration.
func (o *InlineCheckout) Checkout(ctx context.Context, userID uuid.UUID) error {
	if o == nil || o.service == nil {
		return errors.New("inline checkout not configured")
	}
	return o.service.Checkout(ctx, userID)
}

func workflowTraceComponent(ctx context.Context) string {
	if traceID := workflowTraceID(ctx); traceID != "" {
		return traceID
	}
	return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
}

func workflowTraceID(ctx context.Context) string {
	span := oteltrace.SpanFromContext(ctx)
	if span == nil {
		return ""
	}
	spanCtx := span.SpanContext()
	if !spanCtx.IsValid() {
		return ""
	}
	traceID := spanCtx.TraceID()
	if !traceID.IsValid() {
		return ""
	}
	return traceID.String()
}
