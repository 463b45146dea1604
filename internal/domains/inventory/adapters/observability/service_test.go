package observability

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invtrack/invtrack/internal/domains/inventory/domain"
	"github.com/invtrack/invtrack/internal/domains/inventory/ports"
)

type stubService struct {
	calls []string
	err   error
}

func (s *stubService) record(name string) {
	s.calls = append(s.calls, name)
}

func (s *stubService) AddProduct(_ context.Context, product *domain.Product) (*domain.Product, error) {
	s.record("AddProduct")
	if s.err != nil {
		return nil, s.err
	}
	return product, nil
}

func (s *stubService) UpdateProduct(_ context.Context, id string, _ domain.ProductUpdate) (*domain.Product, error) {
	s.record("UpdateProduct")
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Product{ID: id}, nil
}

func (s *stubService) AddSupplier(_ context.Context, id, name, contact string) (*domain.Supplier, error) {
	s.record("AddSupplier")
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Supplier{ID: id, Name: name, Contact: contact}, nil
}

func (s *stubService) PlaceCustomerOrder(_ context.Context, productID string, quantity int) (*domain.Order, error) {
	s.record("PlaceCustomerOrder")
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Order{ID: "O001", ProductID: productID, Quantity: quantity}, nil
}

func (s *stubService) PlaceSupplierOrder(_ context.Context, supplierID, productID string, quantity int) (*domain.SupplierOrder, error) {
	s.record("PlaceSupplierOrder")
	if s.err != nil {
		return nil, s.err
	}
	return &domain.SupplierOrder{ID: "SO001", SupplierID: supplierID, ProductID: productID, Quantity: quantity}, nil
}

func (s *stubService) Suppliers(_ context.Context) ([]*domain.Supplier, error) {
	s.record("Suppliers")
	return nil, s.err
}

func (s *stubService) Inventory(_ context.Context) ([]ports.InventoryItem, error) {
	s.record("Inventory")
	return nil, s.err
}

func (s *stubService) LowStock(_ context.Context) ([]ports.LowStockItem, error) {
	s.record("LowStock")
	return nil, s.err
}

func (s *stubService) SalesReport(_ context.Context) ([]ports.SalesLine, error) {
	s.record("SalesReport")
	return nil, s.err
}

func (s *stubService) SupplierOrderHistory(_ context.Context) ([]ports.SupplierOrderLine, error) {
	s.record("SupplierOrderHistory")
	return nil, s.err
}

var _ ports.Service = (*stubService)(nil)

func TestDecorator_DelegatesAndLogs(t *testing.T) {
	ctx := context.Background()
	inner := &stubService{}
	var logBuf bytes.Buffer
	svc := New(inner, WithLogger(slog.New(slog.NewTextHandler(&logBuf, nil))))

	product := &domain.Product{ID: "P1", Name: "Widget"}
	result, err := svc.AddProduct(ctx, product)
	require.NoError(t, err)
	assert.Equal(t, "P1", result.ID)

	order, err := svc.PlaceCustomerOrder(ctx, "P1", 3)
	require.NoError(t, err)
	assert.Equal(t, "O001", order.ID)

	_, err = svc.Inventory(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"AddProduct", "PlaceCustomerOrder", "Inventory"}, inner.calls)
	assert.Contains(t, logBuf.String(), "product added")
	assert.Contains(t, logBuf.String(), "customer order placed")
}

func TestDecorator_PassesErrorsThroughUnchanged(t *testing.T) {
	ctx := context.Background()
	inner := &stubService{err: ports.ErrInsufficientStock}
	var logBuf bytes.Buffer
	svc := New(inner, WithLogger(slog.New(slog.NewTextHandler(&logBuf, nil))))

	_, err := svc.PlaceCustomerOrder(ctx, "P1", 99)
	require.ErrorIs(t, err, ports.ErrInsufficientStock)
	assert.Contains(t, logBuf.String(), "failed to place customer order")
}

func TestDecorator_WorksWithoutOptions(t *testing.T) {
	inner := &stubService{}
	svc := New(inner)

	_, err := svc.AddSupplier(context.Background(), "S1", "Acme", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"AddSupplier"}, inner.calls)
}
