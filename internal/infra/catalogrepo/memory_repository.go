package catalogrepo

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/yanqian/carbon-planner/internal/domain/catalog"
)

// MemoryRepository is an in-memory catalog used for tests/dev. Insertion
// order is preserved so ListActive keeps stable catalog order.
type MemoryRepository struct {
	mu     sync.RWMutex
	order  []string
	byName map[string]catalog.Action
}

// NewMemoryRepository constructs a repo backed by memory.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byName: make(map[string]catalog.Action)}
}

// ListActive implements catalog.Repository.
func (r *MemoryRepository) ListActive(_ context.Context) ([]catalog.Action, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	actions := make([]catalog.Action, 0, len(r.order))
	for _, name := range r.order {
		if action := r.byName[name]; action.Active {
			actions = append(actions, action)
		}
	}
	return actions, nil
}

// SeedMissing implements catalog.Repository.
func (r *MemoryRepository) SeedMissing(_ context.Context, actions []catalog.Action) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	added := 0
	for _, action := range actions {
		if _, exists := r.byName[action.Name]; exists {
			continue
		}
		if action.ID == "" {
			action.ID = uuid.NewString()
		}
		r.order = append(r.order, action.Name)
		r.byName[action.Name] = action
		added++
	}
	return added, nil
}

var _ catalog.Repository = (*MemoryRepository)(nil)
