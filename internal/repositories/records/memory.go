package records

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/dmitrijs2005/gophroster/internal/common"
	"github.com/dmitrijs2005/gophroster/internal/models"
)

// MemoryRepository keeps documents in process memory. Stored and returned
// records are copies, so callers cannot mutate the store behind its back.
type MemoryRepository struct {
	mu   sync.RWMutex
	docs map[string]models.Record
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{docs: make(map[string]models.Record)}
}

func (r *MemoryRepository) Set(ctx context.Context, key string, rec models.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[key] = rec.Clone()
	return nil
}

func (r *MemoryRepository) Get(ctx context.Context, key string) (models.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.docs[key]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return rec.Clone(), nil
}

func (r *MemoryRepository) Update(ctx context.Context, key string, changes models.Changes) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.docs[key]
	if !ok {
		return common.ErrorNotFound
	}
	maps.Copy(rec, changes)
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.docs, key)
	return nil
}

func (r *MemoryRepository) GetAll(ctx context.Context) ([]models.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := slices.SortedFunc(maps.Keys(r.docs), compareKeys)
	out := make([]models.Record, 0, len(keys))
	for _, k := range keys {
		out = append(out, r.docs[k].Clone())
	}
	return out, nil
}

func (r *MemoryRepository) Close() error { return nil }
