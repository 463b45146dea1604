package ports

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/invtrack/invtrack/internal/domains/inventory/domain"
)

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrSupplierNotFound    = errors.New("supplier not found")
	ErrDuplicateProductID  = errors.New("product id already exists")
	ErrDuplicateSupplierID = errors.New("supplier id already exists")
	ErrInsufficientStock   = errors.New("insufficient stock")
)

// Service exposes the inventory use cases to driving adapters. Mutating
// operations validate all inputs and references before touching state
// and flush the dataset on success.
type Service interface {
	AddProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, update domain.ProductUpdate) (*domain.Product, error)
	AddSupplier(ctx context.Context, id, name, contact string) (*domain.Supplier, error)
	PlaceCustomerOrder(ctx context.Context, productID string, quantity int) (*domain.Order, error)
	PlaceSupplierOrder(ctx context.Context, supplierID, productID string, quantity int) (*domain.SupplierOrder, error)

	Suppliers(ctx context.Context) ([]*domain.Supplier, error)
	Inventory(ctx context.Context) ([]InventoryItem, error)
	LowStock(ctx context.Context) ([]LowStockItem, error)
	SalesReport(ctx context.Context) ([]SalesLine, error)
	SupplierOrderHistory(ctx context.Context) ([]SupplierOrderLine, error)
}

// InventoryItem is one row of the inventory view. SupplierName degrades to
// "N/A" when the product has no supplier or the reference dangles.
type InventoryItem struct {
	ProductID    string
	Name         string
	Stock        int
	Description  string
	Price        decimal.Decimal
	SupplierName string
}

// LowStockItem is one row of the low stock report.
type LowStockItem struct {
	ProductID string
	Name      string
	Stock     int
}

// SalesLine aggregates customer orders for one product. Revenue is the
// total quantity sold times the product's current price.
type SalesLine struct {
	ProductID    string
	Name         string
	QuantitySold int
	Revenue      decimal.Decimal
}

// SupplierOrderLine is one row of the supplier order history. Names
// degrade to "Unknown Supplier" / "Unknown Product" on dangling
// references.
type SupplierOrderLine struct {
	OrderID      string
	SupplierName string
	ProductName  string
	Quantity     int
	Date         string
}
