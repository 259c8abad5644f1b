package catalog

import (
	"context"
	"log/slog"

	apperrors "github.com/yanqian/carbon-planner/pkg/errors"
)

// Service exposes catalog reads and the explicit startup seeding step.
type Service interface {
	ListActive(ctx context.Context) ([]Action, error)
	EnsureSeeded(ctx context.Context) error
}

type service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService is a wire provider for the catalog domain.
func NewService(repo Repository, logger *slog.Logger) Service {
	return &service{repo: repo, logger: logger.With("component", "catalog.service")}
}

func (s *service) ListActive(ctx context.Context) ([]Action, error) {
	actions, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, apperrors.Wrap("storage_error", "failed to list catalog actions", err)
	}
	return actions, nil
}

// EnsureSeeded runs once at startup. The repository keys inserts by action
// name, so a concurrent double-seed cannot duplicate entries.
func (s *service) EnsureSeeded(ctx context.Context) error {
	added, err := s.repo.SeedMissing(ctx, DefaultActions())
	if err != nil {
		return apperrors.Wrap("storage_error", "failed to seed catalog", err)
	}
	if added > 0 {
		s.logger.Info("catalog seeded", "added", added)
	}
	return nil
}
