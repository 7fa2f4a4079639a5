package observability

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	orderdomain "github.com/Apurer/go-gin-shop-api/internal/domains/orders/domain"
	userdomain "github.com/Apurer/go-gin-shop-api/internal/domains/users/domain"
	userports "github.com/Apurer/go-gin-shop-api/internal/domains/users/ports"
)

const tracerName = "github.com/Apurer/go-gin-shop-api/internal/domains/users/adapters/observability/service"

// Service decorates the user service with tracing, logging, and metrics.
type Service struct {
	inner   userports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) { s.tracer = tr }
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) { s.metrics = newServiceMetrics(m) }
}

// New wraps the core user service.
func New(inner userports.Service, opts ...Option) userports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

func (s *Service) AddUser(ctx context.Context, user *userdomain.User) (*userdomain.User, error) {
	name := ""
	if user != nil {
		name = user.Name
	}
	ctx, span := s.tracer.Start(ctx, "UserService.AddUser", trace.WithAttributes(attribute.String("user.name", name)))
	defer span.End()
	s.logInfo(ctx, "adding user", slog.String("name", name))
	result, err := s.inner.AddUser(ctx, user)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to add user", slog.String("name", name))
	}
	s.metrics.recordCreated(ctx)
	s.logInfo(ctx, "user added", slog.String("userId", result.ID.String()))
	return result, nil
}

func (s *Service) List(ctx context.Context) ([]*userdomain.User, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.List")
	defer span.End()
	return s.inner.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*userdomain.User, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.GetByID", trace.WithAttributes(attribute.String("user.id", id.String())))
	defer span.End()
	return s.inner.GetByID(ctx, id)
}

func (s *Service) OrdersByUser(ctx context.Context, id uuid.UUID) ([]orderdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.OrdersByUser", trace.WithAttributes(attribute.String("user.id", id.String())))
	defer span.End()
	return s.inner.OrdersByUser(ctx, id)
}

func (s *Service) Checkout(ctx context.Context, id uuid.UUID) error {
	ctx, span := s.tracer.Start(ctx, "UserService.Checkout", trace.WithAttributes(attribute.String("user.id", id.String())))
	defer span.End()
	s.logInfo(ctx, "checkout started", slog.String("userId", id.String()))
	if err := s.inner.Checkout(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "checkout failed", slog.String("userId", id.String()))
	}
	s.metrics.recordCheckout(ctx)
	s.logInfo(ctx, "checkout completed", slog.String("userId", id.String()))
	return nil
}

func (s *Service) RemoveOrder(ctx context.Context, userID, orderID uuid.UUID) error {
	ctx, span := s.tracer.Start(ctx, "UserService.RemoveOrder",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("order.id", orderID.String()),
		))
	defer span.End()
	if err := s.inner.RemoveOrder(ctx, userID, orderID); err != nil {
		return s.handleError(ctx, span, err, "failed to remove order", slog.String("userId", userID.String()))
	}
	s.metrics.recordOrderRemoved(ctx)
	return nil
}

func (s *Service) EmptyCart(ctx context.Context, id uuid.UUID) error {
	ctx, span := s.tracer.Start(ctx, "UserService.EmptyCart", trace.WithAttributes(attribute.String("user.id", id.String())))
	defer span.End()
	return s.inner.EmptyCart(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := s.tracer.Start(ctx, "UserService.Delete", trace.WithAttributes(attribute.String("user.id", id.String())))
	defer span.End()
	if err := s.inner.Delete(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete user", slog.String("userId", id.String()))
	}
	s.metrics.recordDeleted(ctx)
	return nil
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

type serviceMetrics struct {
	usersCreated  metric.Int64Counter
	usersDeleted  metric.Int64Counter
	checkouts     metric.Int64Counter
	ordersRemoved metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	created, _ := m.Int64Counter("users.service.created", metric.WithDescription("Number of users created"))
	deleted, _ := m.Int64Counter("users.service.deleted", metric.WithDescription("Number of users deleted"))
	checkouts, _ := m.Int64Counter("users.service.checkouts", metric.WithDescription("Number of completed checkouts"))
	removed, _ := m.Int64Counter("users.service.orders_removed", metric.WithDescription("Number of orders removed from users"))
	return serviceMetrics{usersCreated: created, usersDeleted: deleted, checkouts: checkouts, ordersRemoved: removed}
}

func (m serviceMetrics) recordCreated(ctx context.Context) {
	if m.usersCreated != nil {
		m.usersCreated.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	if m.usersDeleted != nil {
		m.usersDeleted.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordCheckout(ctx context.Context) {
	if m.checkouts != nil {
		m.checkouts.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordOrderRemoved(ctx context.Context) {
	if m.ordersRemoved != nil {
		m.ordersRemoved.Add(ctx, 1)
	}
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var _ userports.Service = (*Service)(nil)
