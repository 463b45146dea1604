package application

import (
	"errors"
	"fmt"

	"github.com/invtrack/invtrack/internal/domains/inventory/domain"
	"github.com/invtrack/invtrack/internal/domains/inventory/ports"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid inventory input")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyProductID) ||
		errors.Is(err, domain.ErrNegativePrice) ||
		errors.Is(err, domain.ErrNegativeStock) ||
		errors.Is(err, domain.ErrEmptySupplierID) ||
		errors.Is(err, domain.ErrEmptySupplierName) ||
		errors.Is(err, domain.ErrInvalidQuantity) ||
		errors.Is(err, ports.ErrDuplicateProductID) ||
		errors.Is(err, ports.ErrDuplicateSupplierID) ||
		errors.Is(err, ports.ErrInsufficientStock) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
