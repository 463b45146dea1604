package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/invtrack/invtrack/internal/domains/inventory/domain"
	"github.com/invtrack/invtrack/internal/domains/inventory/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory dataset store. It backs tests and serves as
// the wiring fallback when the data directory cannot be prepared; flushed
// data lives only as long as the process.
type Repository struct {
	mu   sync.RWMutex
	data *domain.Dataset
}

func NewRepository() *Repository {
	return &Repository{data: domain.NewDataset()}
}

func (r *Repository) Load(_ context.Context) (*domain.Dataset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.data.Clone(), nil
}

func (r *Repository) Flush(_ context.Context, ds *domain.Dataset) error {
	if ds == nil {
		return errors.New("dataset is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = ds.Clone()
	return nil
}
