package application

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/invtrack/invtrack/internal/domains/inventory/domain"
	"github.com/invtrack/invtrack/internal/domains/inventory/ports"
)

const (
	customerOrderPrefix = "O"
	supplierOrderPrefix = "SO"
	orderSeqWidth       = 3

	lowStockThreshold = 5

	supplierFallback        = "N/A"
	unknownSupplierFallback = "Unknown Supplier"
	unknownProductFallback  = "Unknown Product"
)

// Service implements the inventory use cases. It owns the dataset loaded
// at construction time and flushes it through the repository after every
// successful mutation; validation failures leave both the dataset and the
// backing files untouched.
type Service struct {
	repo ports.Repository
	data *domain.Dataset
	now  func() time.Time

	nextOrderSeq         int
	nextSupplierOrderSeq int
}

type Option func(*Service)

// WithClock overrides the time source used to date new orders.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService loads the dataset through repo and seeds the order ID
// counters from the highest numeric suffix already in use.
func NewService(ctx context.Context, repo ports.Repository, opts ...Option) (*Service, error) {
	if repo == nil {
		return nil, errors.New("repository is nil")
	}
	data, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	s := &Service{repo: repo, data: data, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.nextOrderSeq = 1
	for _, o := range data.Orders() {
		if n, ok := numericSuffix(o.ID, customerOrderPrefix); ok && n >= s.nextOrderSeq {
			s.nextOrderSeq = n + 1
		}
	}
	s.nextSupplierOrderSeq = 1
	for _, o := range data.SupplierOrders() {
		if n, ok := numericSuffix(o.ID, supplierOrderPrefix); ok && n >= s.nextSupplierOrderSeq {
			s.nextSupplierOrderSeq = n + 1
		}
	}
	return s, nil
}

func (s *Service) AddProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	if err := product.Validate(); err != nil {
		return nil, mapError(err)
	}
	if _, exists := s.data.Product(product.ID); exists {
		return nil, mapError(ports.ErrDuplicateProductID)
	}
	if product.SupplierID != "" {
		if _, ok := s.data.Supplier(product.SupplierID); !ok {
			return nil, ports.ErrSupplierNotFound
		}
	}
	clone := *product
	s.data.PutProduct(&clone)
	if err := s.repo.Flush(ctx, s.data); err != nil {
		return nil, err
	}
	return &clone, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id string, update domain.ProductUpdate) (*domain.Product, error) {
	product, ok := s.data.Product(id)
	if !ok {
		return nil, ports.ErrProductNotFound
	}
	if update.NewID != nil {
		newID := strings.TrimSpace(*update.NewID)
		if newID == "" {
			return nil, mapError(domain.ErrEmptyProductID)
		}
		if newID != id {
			if _, taken := s.data.Product(newID); taken {
				return nil, mapError(ports.ErrDuplicateProductID)
			}
		}
	}
	if update.SupplierID != nil {
		if ref := strings.TrimSpace(*update.SupplierID); ref != "" {
			if _, ok := s.data.Supplier(ref); !ok {
				return nil, ports.ErrSupplierNotFound
			}
		}
	}

	updated, err := update.Applied(product)
	if err != nil {
		return nil, mapError(err)
	}
	newID := updated.ID
	*product = updated
	product.ID = id
	if newID != id {
		s.data.RenameProduct(id, newID)
	}
	if err := s.repo.Flush(ctx, s.data); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *Service) AddSupplier(ctx context.Context, id, name, contact string) (*domain.Supplier, error) {
	supplier, err := domain.NewSupplier(id, name, contact)
	if err != nil {
		return nil, mapError(err)
	}
	if _, exists := s.data.Supplier(supplier.ID); exists {
		return nil, mapError(ports.ErrDuplicateSupplierID)
	}
	s.data.PutSupplier(supplier)
	if err := s.repo.Flush(ctx, s.data); err != nil {
		return nil, err
	}
	clone := *supplier
	return &clone, nil
}

func (s *Service) PlaceCustomerOrder(ctx context.Context, productID string, quantity int) (*domain.Order, error) {
	if quantity < 1 {
		return nil, mapError(domain.ErrInvalidQuantity)
	}
	product, ok := s.data.Product(productID)
	if !ok {
		return nil, ports.ErrProductNotFound
	}
	if quantity > product.Stock {
		return nil, mapError(ports.ErrInsufficientStock)
	}
	order := &domain.Order{
		ID:        formatOrderID(customerOrderPrefix, s.nextOrderSeq),
		ProductID: product.ID,
		Quantity:  quantity,
		Date:      s.now().Format(domain.DateLayout),
	}
	s.data.AppendOrder(order)
	s.nextOrderSeq++
	product.Stock -= quantity
	if err := s.repo.Flush(ctx, s.data); err != nil {
		return nil, err
	}
	clone := *order
	return &clone, nil
}

func (s *Service) PlaceSupplierOrder(ctx context.Context, supplierID, productID string, quantity int) (*domain.SupplierOrder, error) {
	if _, ok := s.data.Supplier(supplierID); !ok {
		return nil, ports.ErrSupplierNotFound
	}
	product, ok := s.data.Product(productID)
	if !ok {
		return nil, ports.ErrProductNotFound
	}
	if quantity < 1 {
		return nil, mapError(domain.ErrInvalidQuantity)
	}
	order := &domain.SupplierOrder{
		ID:         formatOrderID(supplierOrderPrefix, s.nextSupplierOrderSeq),
		SupplierID: supplierID,
		ProductID:  product.ID,
		Quantity:   quantity,
		Date:       s.now().Format(domain.DateLayout),
	}
	s.data.AppendSupplierOrder(order)
	s.nextSupplierOrderSeq++
	product.Stock += quantity
	if err := s.repo.Flush(ctx, s.data); err != nil {
		return nil, err
	}
	clone := *order
	return &clone, nil
}

// Suppliers lists all suppliers in insertion order.
func (s *Service) Suppliers(_ context.Context) ([]*domain.Supplier, error) {
	suppliers := s.data.Suppliers()
	list := make([]*domain.Supplier, 0, len(suppliers))
	for _, supplier := range suppliers {
		clone := *supplier
		list = append(list, &clone)
	}
	return list, nil
}

// Inventory projects every product with its supplier name resolved, or
// "N/A" when the product has no supplier or the reference dangles.
func (s *Service) Inventory(_ context.Context) ([]ports.InventoryItem, error) {
	products := s.data.Products()
	items := make([]ports.InventoryItem, 0, len(products))
	for _, p := range products {
		supplierName := supplierFallback
		if p.SupplierID != "" {
			if supplier, ok := s.data.Supplier(p.SupplierID); ok {
				supplierName = supplier.Name
			}
		}
		items = append(items, ports.InventoryItem{
			ProductID:    p.ID,
			Name:         p.Name,
			Stock:        p.Stock,
			Description:  p.Description,
			Price:        p.Price,
			SupplierName: supplierName,
		})
	}
	return items, nil
}

// LowStock lists products with stock below the fixed threshold of 5.
func (s *Service) LowStock(_ context.Context) ([]ports.LowStockItem, error) {
	var items []ports.LowStockItem
	for _, p := range s.data.Products() {
		if p.Stock < lowStockThreshold {
			items = append(items, ports.LowStockItem{ProductID: p.ID, Name: p.Name, Stock: p.Stock})
		}
	}
	return items, nil
}

// SalesReport aggregates ordered quantities per product in first-seen
// order. Products that no longer resolve are omitted.
func (s *Service) SalesReport(_ context.Context) ([]ports.SalesLine, error) {
	totals := map[string]int{}
	var firstSeen []string
	for _, o := range s.data.Orders() {
		if _, ok := totals[o.ProductID]; !ok {
			firstSeen = append(firstSeen, o.ProductID)
		}
		totals[o.ProductID] += o.Quantity
	}
	var lines []ports.SalesLine
	for _, id := range firstSeen {
		product, ok := s.data.Product(id)
		if !ok {
			continue
		}
		sold := totals[id]
		lines = append(lines, ports.SalesLine{
			ProductID:    id,
			Name:         product.Name,
			QuantitySold: sold,
			Revenue:      product.Price.Mul(decimal.NewFromInt(int64(sold))),
		})
	}
	return lines, nil
}

// SupplierOrderHistory lists every supplier order with names resolved,
// degrading to placeholders on dangling references.
func (s *Service) SupplierOrderHistory(_ context.Context) ([]ports.SupplierOrderLine, error) {
	orders := s.data.SupplierOrders()
	lines := make([]ports.SupplierOrderLine, 0, len(orders))
	for _, o := range orders {
		supplierName := unknownSupplierFallback
		if supplier, ok := s.data.Supplier(o.SupplierID); ok {
			supplierName = supplier.Name
		}
		productName := unknownProductFallback
		if product, ok := s.data.Product(o.ProductID); ok {
			productName = product.Name
		}
		lines = append(lines, ports.SupplierOrderLine{
			OrderID:      o.ID,
			SupplierName: supplierName,
			ProductName:  productName,
			Quantity:     o.Quantity,
			Date:         o.Date,
		})
	}
	return lines, nil
}

func formatOrderID(prefix string, seq int) string {
	return fmt.Sprintf("%s%0*d", prefix, orderSeqWidth, seq)
}

func numericSuffix(id, prefix string) (int, bool) {
	if !strings.HasPrefix(id, prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(id[len(prefix):])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

var _ ports.Service = (*Service)(nil)
