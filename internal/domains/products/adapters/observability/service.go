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

	productdomain "github.com/Apurer/go-gin-shop-api/internal/domains/products/domain"
	productports "github.com/Apurer/go-gin-shop-api/internal/domains/products/ports"
)

const tracerName = "github.com/Apurer/go-gin-shop-api/internal/domains/products/adapters/observability/service"

// Service decorates the product service with tracing, logging, and metrics.
type Service struct {
	inner   productports.Service
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

// New wraps the core product service.
func New(inner productports.Service, opts ...Option) productports.Service {
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

func (s *Service) AddProduct(ctx context.Context, product *productdomain.Product) (*productdomain.Product, error) {
	name := ""
	if product != nil {
		name = product.Name
	}
	ctx, span := s.tracer.Start(ctx, "ProductService.AddProduct", trace.WithAttributes(attribute.String("product.name", name)))
	defer span.End()
	s.logInfo(ctx, "adding product", slog.String("name", name))
	result, err := s.inner.AddProduct(ctx, product)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to add product", slog.String("name", name))
	}
	s.metrics.recordCreated(ctx)
	s.logInfo(ctx, "product added", slog.String("productId", result.ID.String()))
	return result, nil
}

func (s *Service) List(ctx context.Context) ([]*productdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.List")
	defer span.End()
	return s.inner.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*productdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.GetByID", trace.WithAttributes(attribute.String("product.id", id.String())))
	defer span.End()
	return s.inner.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, patch productdomain.Patch) (*productdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.Update", trace.WithAttributes(attribute.String("product.id", id.String())))
	defer span.End()
	result, err := s.inner.Update(ctx, id, patch)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update product", slog.String("productId", id.String()))
	}
	s.metrics.recordUpdated(ctx)
	return result, nil
}

func (s *Service) ApplyDiscount(ctx context.Context, discount float64, ids []uuid.UUID) error {
	ctx, span := s.tracer.Start(ctx, "ProductService.ApplyDiscount",
		trace.WithAttributes(
			attribute.Float64("discount.percent", discount),
			attribute.Int("discount.ids", len(ids)),
		))
	defer span.End()
	if err := s.inner.ApplyDiscount(ctx, discount, ids); err != nil {
		return s.handleError(ctx, span, err, "failed to apply discount", slog.Float64("discount", discount))
	}
	s.metrics.recordDiscounted(ctx, int64(len(ids)))
	s.logInfo(ctx, "discount applied", slog.Float64("discount", discount), slog.Int("ids", len(ids)))
	return nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := s.tracer.Start(ctx, "ProductService.Delete", trace.WithAttributes(attribute.String("product.id", id.String())))
	defer span.End()
	if err := s.inner.Delete(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete product", slog.String("productId", id.String()))
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
	productsCreated    metric.Int64Counter
	productsUpdated    metric.Int64Counter
	productsDeleted    metric.Int64Counter
	productsDiscounted metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	created, _ := m.Int64Counter("products.service.created", metric.WithDescription("Number of products created"))
	updated, _ := m.Int64Counter("products.service.updated", metric.WithDescription("Number of products updated"))
	deleted, _ := m.Int64Counter("products.service.deleted", metric.WithDescription("Number of products deleted"))
	discounted, _ := m.Int64Counter("products.service.discounted", metric.WithDescription("Number of products targeted by discounts"))
	return serviceMetrics{productsCreated: created, productsUpdated: updated, productsDeleted: deleted, productsDiscounted: discounted}
}

func (m serviceMetrics) recordCreated(ctx context.Context) {
	if m.productsCreated != nil {
		m.productsCreated.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordUpdated(ctx context.Context) {
	if m.productsUpdated != nil {
		m.productsUpdated.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	if m.productsDeleted != nil {
		m.productsDeleted.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordDiscounted(ctx context.Context, count int64) {
	if m.productsDiscounted != nil {
		m.productsDiscounted.Add(ctx, count)
	}
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var _ productports.Service = (*Service)(nil)
