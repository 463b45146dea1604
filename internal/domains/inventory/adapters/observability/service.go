package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/invtrack/invtrack/internal/domains/inventory/domain"
	"github.com/invtrack/invtrack/internal/domains/inventory/ports"
)

const tracerName = "github.com/invtrack/invtrack/internal/domains/inventory/adapters/observability/service"

// Service decorates the inventory service with logging, tracing, and
// metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core inventory service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
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
	return s
}

func (s *Service) AddProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	id := ""
	if product != nil {
		id = product.ID
	}
	ctx, span := s.tracer.Start(ctx, "InventoryService.AddProduct",
		trace.WithAttributes(attribute.String("product.id", id)))
	defer span.End()

	result, err := s.inner.AddProduct(ctx, product)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to add product", slog.String("product.id", id))
	}
	s.metrics.recordProductAdded(ctx)
	s.logInfo(ctx, "product added", slog.String("product.id", result.ID), slog.Int("stock", result.Stock))
	return result, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id string, update domain.ProductUpdate) (*domain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "InventoryService.UpdateProduct",
		trace.WithAttributes(attribute.String("product.id", id)))
	defer span.End()

	result, err := s.inner.UpdateProduct(ctx, id, update)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update product", slog.String("product.id", id))
	}
	s.logInfo(ctx, "product updated", slog.String("product.id", result.ID))
	return result, nil
}

func (s *Service) AddSupplier(ctx context.Context, id, name, contact string) (*domain.Supplier, error) {
	ctx, span := s.tracer.Start(ctx, "InventoryService.AddSupplier",
		trace.WithAttributes(attribute.String("supplier.id", id)))
	defer span.End()

	result, err := s.inner.AddSupplier(ctx, id, name, contact)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to add supplier", slog.String("supplier.id", id))
	}
	s.logInfo(ctx, "supplier added", slog.String("supplier.id", result.ID))
	return result, nil
}

func (s *Service) PlaceCustomerOrder(ctx context.Context, productID string, quantity int) (*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "InventoryService.PlaceCustomerOrder",
		trace.WithAttributes(attribute.String("product.id", productID), attribute.Int("quantity", quantity)))
	defer span.End()

	result, err := s.inner.PlaceCustomerOrder(ctx, productID, quantity)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to place customer order",
			slog.String("product.id", productID), slog.Int("quantity", quantity))
	}
	s.metrics.recordOrderPlaced(ctx)
	s.logInfo(ctx, "customer order placed",
		slog.String("order.id", result.ID), slog.String("product.id", result.ProductID), slog.Int("quantity", result.Quantity))
	return result, nil
}

func (s *Service) PlaceSupplierOrder(ctx context.Context, supplierID, productID string, quantity int) (*domain.SupplierOrder, error) {
	ctx, span := s.tracer.Start(ctx, "InventoryService.PlaceSupplierOrder",
		trace.WithAttributes(
			attribute.String("supplier.id", supplierID),
			attribute.String("product.id", productID),
			attribute.Int("quantity", quantity)))
	defer span.End()

	result, err := s.inner.PlaceSupplierOrder(ctx, supplierID, productID, quantity)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to place supplier order",
			slog.String("supplier.id", supplierID), slog.String("product.id", productID))
	}
	s.metrics.recordRestockPlaced(ctx)
	s.logInfo(ctx, "supplier order placed",
		slog.String("order.id", result.ID), slog.String("supplier.id", result.SupplierID), slog.Int("quantity", result.Quantity))
	return result, nil
}

func (s *Service) Suppliers(ctx context.Context) ([]*domain.Supplier, error) {
	ctx, span := s.tracer.Start(ctx, "InventoryService.Suppliers")
	defer span.End()

	result, err := s.inner.Suppliers(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list suppliers")
	}
	span.SetAttributes(attribute.Int("suppliers.count", len(result)))
	return result, nil
}

func (s *Service) Inventory(ctx context.Context) ([]ports.InventoryItem, error) {
	ctx, span := s.tracer.Start(ctx, "InventoryService.Inventory")
	defer span.End()

	result, err := s.inner.Inventory(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to project inventory")
	}
	span.SetAttributes(attribute.Int("inventory.count", len(result)))
	return result, nil
}

func (s *Service) LowStock(ctx context.Context) ([]ports.LowStockItem, error) {
	ctx, span := s.tracer.Start(ctx, "InventoryService.LowStock")
	defer span.End()

	result, err := s.inner.LowStock(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to build low stock report")
	}
	span.SetAttributes(attribute.Int("low_stock.count", len(result)))
	return result, nil
}

func (s *Service) SalesReport(ctx context.Context) ([]ports.SalesLine, error) {
	ctx, span := s.tracer.Start(ctx, "InventoryService.SalesReport")
	defer span.End()

	result, err := s.inner.SalesReport(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to build sales report")
	}
	span.SetAttributes(attribute.Int("sales.lines", len(result)))
	return result, nil
}

func (s *Service) SupplierOrderHistory(ctx context.Context) ([]ports.SupplierOrderLine, error) {
	ctx, span := s.tracer.Start(ctx, "InventoryService.SupplierOrderHistory")
	defer span.End()

	result, err := s.inner.SupplierOrderHistory(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to build supplier order history")
	}
	span.SetAttributes(attribute.Int("history.lines", len(result)))
	return result, nil
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

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	productsAdded  metric.Int64Counter
	ordersPlaced   metric.Int64Counter
	restocksPlaced metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	productsAdded, _ := m.Int64Counter("inventory.service.products_added",
		metric.WithDescription("Number of products added"))
	ordersPlaced, _ := m.Int64Counter("inventory.service.orders_placed",
		metric.WithDescription("Number of customer orders placed"))
	restocksPlaced, _ := m.Int64Counter("inventory.service.supplier_orders_placed",
		metric.WithDescription("Number of supplier orders placed"))
	return serviceMetrics{productsAdded: productsAdded, ordersPlaced: ordersPlaced, restocksPlaced: restocksPlaced}
}

func (m serviceMetrics) recordProductAdded(ctx context.Context) {
	if m.productsAdded != nil {
		m.productsAdded.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordOrderPlaced(ctx context.Context) {
	if m.ordersPlaced != nil {
		m.ordersPlaced.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordRestockPlaced(ctx context.Context) {
	if m.restocksPlaced != nil {
		m.restocksPlaced.Add(ctx, 1)
	}
}

var _ ports.Service = (*Service)(nil)
