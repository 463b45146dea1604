package domain

import "errors"

// DateLayout is the calendar date format used on order records.
const DateLayout = "2006-01-02"

var ErrInvalidQuantity = errors.New("quantity must be greater than zero")

// Order is a customer order. Orders are append-only: they are never
// updated or deleted, though their ProductID follows a product rename.
type Order struct {
	ID        string
	ProductID string
	Quantity  int
	Date      string
}

// SupplierOrder is a restock order placed with a supplier. Append-only.
type SupplierOrder struct {
	ID         string
	SupplierID string
	ProductID  string
	Quantity   int
	Date       string
}
