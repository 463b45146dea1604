package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptySupplierID   = errors.New("supplier id is required")
	ErrEmptySupplierName = errors.New("supplier name is required")
)

// Supplier is a restock source. Suppliers are created once and never
// updated or deleted.
type Supplier struct {
	ID      string
	Name    string
	Contact string
}

// NewSupplier builds a supplier ensuring required invariants. Contact may
// be empty.
func NewSupplier(id, name, contact string) (*Supplier, error) {
	supplier := &Supplier{
		ID:      strings.TrimSpace(id),
		Name:    strings.TrimSpace(name),
		Contact: contact,
	}
	if err := supplier.Validate(); err != nil {
		return nil, err
	}
	return supplier, nil
}

// Validate enforces invariants on the supplier.
func (s *Supplier) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return ErrEmptySupplierID
	}
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptySupplierName
	}
	return nil
}
