package catalog

import "context"

// Repository encapsulates catalog persistence. ListActive must return
// actions in stable catalog order; the planner relies on that order to
// break score ties.
type Repository interface {
	ListActive(ctx context.Context) ([]Action, error)
	// SeedMissing inserts any action whose name is not present yet and
	// reports how many rows were added. Safe to call concurrently.
	SeedMissing(ctx context.Context, actions []Action) (int, error)
}
