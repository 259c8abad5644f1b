package trendstore

import (
	"context"
	"sort"
	"sync"

	"github.com/yanqian/carbon-planner/internal/domain/planner"
)

// MemoryStore is an in-memory implementation of the trend store for
// tests/dev.
type MemoryStore struct {
	mu     sync.RWMutex
	counts map[string]int64
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{counts: make(map[string]int64)}
}

// IncrementActions implements planner.TrendStore.
func (s *MemoryStore) IncrementActions(_ context.Context, names []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, name := range names {
		if name == "" {
			continue
		}
		s.counts[name]++
	}
	return nil
}

// TopActions returns the most frequently selected actions.
func (s *MemoryStore) TopActions(_ context.Context, limit int) ([]planner.ActionCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	// Same default as the Valkey store so dev and prod agree.
	if limit <= 0 {
		limit = 10
	}
	items := make([]planner.ActionCount, 0, len(s.counts))
	for name, count := range s.counts {
		items = append(items, planner.ActionCount{Name: name, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Name < items[j].Name
		}
		return items[i].Count > items[j].Count
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

var _ planner.TrendStore = (*MemoryStore)(nil)
