package quickwins

import (
	"context"
	"fmt"
	"log/slog"

	apperrors "github.com/yanqian/carbon-planner/pkg/errors"
)

// Config bounds the accepted effort budget.
type Config struct {
	MinBudget int
	MaxBudget int
}

// Service exposes the effort-budgeted quick action optimizer.
type Service interface {
	OptimizeByEffort(ctx context.Context, effortBudget int) (Result, error)
}

type service struct {
	cfg    Config
	logger *slog.Logger
}

// NewService is a wire provider for the quick wins domain.
func NewService(cfg Config, logger *slog.Logger) Service {
	return &service{cfg: cfg, logger: logger.With("component", "quickwins.service")}
}

func (s *service) OptimizeByEffort(_ context.Context, effortBudget int) (Result, error) {
	if effortBudget < s.cfg.MinBudget || effortBudget > s.cfg.MaxBudget {
		message := fmt.Sprintf("effortBudget must be between %d and %d", s.cfg.MinBudget, s.cfg.MaxBudget)
		return Result{}, apperrors.Wrap("invalid_input", message, nil)
	}
	result := Optimize(effortBudget, Catalog())
	s.logger.Debug("quick actions optimized", "budget", effortBudget, "selected", len(result.Actions), "savedKg", result.TotalSavingsKg)
	return result, nil
}
