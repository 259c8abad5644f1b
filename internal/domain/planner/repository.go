package planner

import (
	"context"
	"errors"
	"time"
)

// ErrPlanNotFound means the user has no plan with the given id.
var ErrPlanNotFound = errors.New("plan not found")

// ErrActionNotFound means the plan does not contain the given action.
var ErrActionNotFound = errors.New("action not part of plan")

// Repository persists generated plans, one current plan per user.
type Repository interface {
	// FindCurrent returns the user's current plan, if any.
	FindCurrent(ctx context.Context, userID string) (Plan, bool, error)
	// Replace atomically swaps the user's current plan for the given one.
	Replace(ctx context.Context, plan Plan) error
	// SetActionCompletion flips one action's completion flag inside the
	// user's plan and returns the plan's completed and total action counts.
	SetActionCompletion(ctx context.Context, userID, planID, actionID string, completed bool, at time.Time) (int, int, error)
}
