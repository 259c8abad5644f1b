package planner

import "context"

// TrendStore counts how often catalog actions land in generated plans.
type TrendStore interface {
	IncrementActions(ctx context.Context, names []string) error
	TopActions(ctx context.Context, limit int) ([]ActionCount, error)
}
