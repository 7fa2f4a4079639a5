package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"

	shopserver "github.com/Apurer/go-gin-shop-api/go"

	cartsjsonfile "github.com/Apurer/go-gin-shop-api/internal/domains/carts/adapters/jsonfile"
	cartsapp "github.com/Apurer/go-gin-shop-api/internal/domains/carts/application"
	ordersjsonfile "github.com/Apurer/go-gin-shop-api/internal/domains/orders/adapters/jsonfile"
	ordersapp "github.com/Apurer/go-gin-shop-api/internal/domains/orders/application"
	productsjsonfile "github.com/Apurer/go-gin-shop-api/internal/domains/products/adapters/jsonfile"
	productsobs "github.com/Apurer/go-gin-shop-api/internal/domains/products/adapters/observability"
	productspostgres "github.com/Apurer/go-gin-shop-api/internal/domains/products/adapters/persistence/postgres"
	productsapp "github.com/Apurer/go-gin-shop-api/internal/domains/products/application"
	productsports "github.com/Apurer/go-gin-shop-api/internal/domains/products/ports"
	usersjsonfile "github.com/Apurer/go-gin-shop-api/internal/domains/users/adapters/jsonfile"
	usersobs "github.com/Apurer/go-gin-shop-api/internal/domains/users/adapters/observability"
	usersworkflows "github.com/Apurer/go-gin-shop-api/internal/domains/users/adapters/workflows"
	usersapp "github.com/Apurer/go-gin-shop-api/internal/domains/users/application"
	usersports "github.com/Apurer/go-gin-shop-api/internal/domains/users/ports"
	platformmigrations "github.com/Apurer/go-gin-shop-api/internal/platform/migrations"
	platformobservability "github.com/Apurer/go-gin-shop-api/internal/platform/observability"
	platformpostgres "github.com/Apurer/go-gin-shop-api/internal/platform/postgres"
)

// Run boots the shop HTTP API with observability, repositories, and the
// checkout orchestrator wired.
func Run(ctx context.Context) error {
	const serviceName = "shop-api"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger
	cfg := LoadConfig()

	productRepo, cleanupRepo := buildProductRepository(ctx, cfg, logger)
	defer cleanupRepo()
	productService := productsobs.New(
		productsapp.NewService(productRepo),
		productsobs.WithLogger(logger),
		productsobs.WithTracer(instruments.Tracer("internal.products.application")),
		productsobs.WithMeter(instruments.Meter("internal.products.application")),
	)

	orderRepo := ordersjsonfile.NewRepository(cfg.OrderDataPath)
	orderService := ordersapp.NewService(orderRepo)

	cartRepo := cartsjsonfile.NewRepository(cfg.CartDataPath)
	cartService := cartsapp.NewService(cartRepo, productRepo)

	userRepo := usersjsonfile.NewRepository(cfg.UserDataPath)
	userService := usersobs.New(
		usersapp.NewService(userRepo, orderRepo),
		usersobs.WithLogger(logger),
		usersobs.WithTracer(instruments.Tracer("internal.users.application")),
		usersobs.WithMeter(instruments.Meter("internal.users.application")),
	)

	var checkout usersports.CheckoutOrchestrator = usersworkflows.NewInlineCheckout(userService)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, running checkout inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		checkout = usersworkflows.NewTemporalCheckout(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	handlers := shopserver.ApiHandleFunctions{
		UserAPI:    shopserver.NewUserAPI(userService, checkout, cartService),
		CartAPI:    shopserver.NewCartAPI(cartService),
		OrderAPI:   shopserver.NewOrderAPI(orderService),
		ProductAPI: shopserver.NewProductAPI(productService),
	}

	router := shopserver.NewRouter(handlers)
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("shop API listening", slog.String("addr", addr), slog.String("dataDir", cfg.DataDir))
	if err := router.Run(addr); err != nil {
		logger.Error("shop API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// buildProductRepository prefers postgres when POSTGRES_DSN is set, falling
// back to the JSON file store.
func buildProductRepository(ctx context.Context, cfg Config, logger *slog.Logger) (productsports.Repository, func()) {
	if cfg.PostgresDSN == "" {
		logger.Info("product repository configured with JSON file store", slog.String("path", cfg.ProductDataPath))
		return productsjsonfile.NewRepository(cfg.ProductDataPath), func() {}
	}
	db, err := platformpostgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Warn("failed to connect to postgres, falling back to JSON file store", slog.String("error", err.Error()))
		return productsjsonfile.NewRepository(cfg.ProductDataPath), func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("failed to unwrap postgres connection, falling back to JSON file store", slog.String("error", err.Error()))
		return productsjsonfile.NewRepository(cfg.ProductDataPath), func() {}
	}
	if err := platformmigrations.Run(db); err != nil {
		logger.Warn("failed to run migrations, falling back to JSON file store", slog.String("error", err.Error()))
		_ = sqlDB.Close()
		return productsjsonfile.NewRepository(cfg.ProductDataPath), func() {}
	}
	logger.Info("product repository configured with postgres")
	return productspostgres.NewRepository(db), func() { _ = sqlDB.Close() }
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	logger := workerlog.NewStructuredLogger(effectiveLogger(instruments))
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    logger,
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
