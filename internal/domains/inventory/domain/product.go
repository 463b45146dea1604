package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyProductID = errors.New("product id is required")
	ErrNegativePrice  = errors.New("price must not be negative")
	ErrNegativeStock  = errors.New("stock must not be negative")
)

// Product is a stocked item. SupplierID is empty when the product has no
// supplier; a non-empty SupplierID is not guaranteed to resolve once the
// data has been reloaded, readers degrade to a placeholder instead.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	SupplierID  string
}

// NewProduct builds a product ensuring required invariants.
func NewProduct(id, name, description string, price decimal.Decimal, stock int, supplierID string) (*Product, error) {
	product := &Product{
		ID:          strings.TrimSpace(id),
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		SupplierID:  strings.TrimSpace(supplierID),
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	return product, nil
}

// Validate enforces invariants on the product.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return ErrEmptyProductID
	}
	if p.Price.IsNegative() {
		return ErrNegativePrice
	}
	if p.Stock < 0 {
		return ErrNegativeStock
	}
	return nil
}

// ProductUpdate carries optional replacement values for an update. A nil
// field keeps the current value. SupplierID pointing at the empty string
// clears the supplier assignment; any other value must resolve to an
// existing supplier.
type ProductUpdate struct {
	NewID       *string
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
	SupplierID  *string
}

// apply copies the requested field changes onto p. Reference checks
// (supplier existence, new-ID uniqueness) are the caller's responsibility.
func (u ProductUpdate) apply(p *Product) {
	if u.NewID != nil {
		p.ID = strings.TrimSpace(*u.NewID)
	}
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Stock != nil {
		p.Stock = *u.Stock
	}
	if u.SupplierID != nil {
		p.SupplierID = strings.TrimSpace(*u.SupplierID)
	}
}

// Applied returns a copy of p with the update applied and validated.
func (u ProductUpdate) Applied(p *Product) (Product, error) {
	updated := *p
	u.apply(&updated)
	if err := updated.Validate(); err != nil {
		return Product{}, err
	}
	return updated, nil
}
