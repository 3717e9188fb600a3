package repo

import (
	"context"
	"sync"

	"promptforge/internal/domain"
)

// PromptRepositoryMem is the in-process history store used when no
// database is configured.
type PromptRepositoryMem struct {
	mu      sync.RWMutex
	records []domain.PromptRecord
}

func NewMemoryPromptRepository() *PromptRepositoryMem {
	return &PromptRepositoryMem{}
}

func (r *PromptRepositoryMem) Save(_ context.Context, rec *domain.PromptRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, *rec)
	return nil
}

// List returns the most recent records first.
func (r *PromptRepositoryMem) List(_ context.Context, limit int) ([]domain.PromptRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if limit <= 0 || limit > len(r.records) {
		limit = len(r.records)
	}
	out := make([]domain.PromptRecord, 0, limit)
	for i := len(r.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.records[i])
	}
	return out, nil
}

func (r *PromptRepositoryMem) GetByID(_ context.Context, id string) (*domain.PromptRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.records {
		if r.records[i].ID == id {
			rec := r.records[i]
			return &rec, nil
		}
	}
	return nil, domain.ErrNotFound
}

var _ domain.PromptRepository = (*PromptRepositoryMem)(nil)
