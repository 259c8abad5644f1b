package planrepo

import (
	"context"
	"sync"
	"time"

	"github.com/yanqian/carbon-planner/internal/domain/planner"
)

// MemoryRepository keeps each user's current plan in process memory for
// tests/dev.
type MemoryRepository struct {
	mu    sync.RWMutex
	plans map[string]planner.Plan
}

// NewMemoryRepository constructs a new in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{plans: make(map[string]planner.Plan)}
}

// FindCurrent implements planner.Repository.
func (r *MemoryRepository) FindCurrent(_ context.Context, userID string) (planner.Plan, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	plan, ok := r.plans[userID]
	if !ok {
		return planner.Plan{}, false, nil
	}
	return clonePlan(plan), true, nil
}

// Replace implements planner.Repository.
func (r *MemoryRepository) Replace(_ context.Context, plan planner.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plans[plan.UserID] = clonePlan(plan)
	return nil
}

// SetActionCompletion implements planner.Repository.
func (r *MemoryRepository) SetActionCompletion(_ context.Context, userID, planID, actionID string, completed bool, at time.Time) (int, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	plan, ok := r.plans[userID]
	if !ok || plan.ID != planID {
		return 0, 0, planner.ErrPlanNotFound
	}

	found := false
	completedCount, total := 0, 0
	for pi := range plan.Phases {
		for ai := range plan.Phases[pi].Actions {
			entry := &plan.Phases[pi].Actions[ai]
			if entry.Action.ID == actionID {
				found = true
				entry.Completed = completed
				if completed {
					ts := at
					entry.CompletedAt = &ts
				} else {
					entry.CompletedAt = nil
				}
			}
			total++
			if entry.Completed {
				completedCount++
			}
		}
	}
	if !found {
		return 0, 0, planner.ErrActionNotFound
	}
	r.plans[userID] = plan
	return completedCount, total, nil
}

func clonePlan(plan planner.Plan) planner.Plan {
	phases := make([]planner.PhasePlan, len(plan.Phases))
	for i, phase := range plan.Phases {
		actions := make([]planner.ScoredAction, len(phase.Actions))
		copy(actions, phase.Actions)
		phase.Actions = actions
		phases[i] = phase
	}
	plan.Phases = phases
	return plan
}

var _ planner.Repository = (*MemoryRepository)(nil)
