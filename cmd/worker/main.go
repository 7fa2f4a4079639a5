package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	ordersjsonfile "github.com/Apurer/go-gin-shop-api/internal/domains/orders/adapters/jsonfile"
	usersjsonfile "github.com/Apurer/go-gin-shop-api/internal/domains/users/adapters/jsonfile"
	usersobs "github.com/Apurer/go-gin-shop-api/internal/domains/users/adapters/observability"
	usersapp "github.com/Apurer/go-gin-shop-api/internal/domains/users/application"
	platformobservability "github.com/Apurer/go-gin-shop-api/internal/platform/observability"
	checkoutactivities "github.com/Apurer/go-gin-shop-api/internal/platform/temporal/activities/checkout"
	checkoutworkflows "github.com/Apurer/go-gin-shop-api/internal/platform/temporal/workflows/checkout"
)

func main() {
	ctx := context.Background()
	const serviceName = "shop-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	dataDir := envOrDefault("DATA_DIR", "data")
	userRepo := usersjsonfile.NewRepository(envOrDefault("USER_DATA_PATH", filepath.Join(dataDir, "users.json")))
	orderRepo := ordersjsonfile.NewRepository(envOrDefault("ORDER_DATA_PATH", filepath.Join(dataDir, "orders.json")))
	userService := usersobs.New(
		usersapp.NewService(userRepo, orderRepo),
		usersobs.WithLogger(logger),
		usersobs.WithTracer(instruments.Tracer("internal.users.application")),
		usersobs.WithMeter(instruments.Meter("internal.users.application")),
	)
	activities := checkoutactivities.NewActivities(userService)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  envOrDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		Namespace: envOrDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, checkoutworkflows.CheckoutTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(checkoutworkflows.CheckoutWorkflow, workflow.RegisterOptions{Name: checkoutworkflows.CheckoutWorkflowName})
	w.RegisterActivityWithOptions(activities.RunCheckout, activity.RegisterOptions{Name: checkoutactivities.RunCheckoutActivityName})

	logger.Info("worker listening", slog.String("taskQueue", checkoutworkflows.CheckoutTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

func envOrDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
