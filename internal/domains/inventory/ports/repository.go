package ports

import (
	"context"

	"github.com/invtrack/invtrack/internal/domains/inventory/domain"
)

// Repository is the persistence boundary for the inventory dataset. Load
// and Flush always move all four collections as a unit: there is no
// partial or selective write. A missing backing store loads as an empty
// dataset, not an error.
type Repository interface {
	Load(ctx context.Context) (*domain.Dataset, error)
	Flush(ctx context.Context, ds *domain.Dataset) error
}
