package planner

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/yanqian/carbon-planner/internal/domain/catalog"
	"github.com/yanqian/carbon-planner/internal/domain/footprint"
	apperrors "github.com/yanqian/carbon-planner/pkg/errors"
	"github.com/yanqian/carbon-planner/pkg/util"
)

// Service exposes plan generation and tracking.
type Service interface {
	GeneratePlan(ctx context.Context, userID string, profile footprint.Profile) (Result, error)
	CurrentPlan(ctx context.Context, userID string) (Plan, error)
	UpdateActionCompletion(ctx context.Context, userID, planID, actionID string, completed bool) (CompletionStatus, error)
	PopularActions(ctx context.Context) ([]ActionCount, error)
}

type service struct {
	cfg     Config
	catalog catalog.Service
	repo    Repository
	trends  TrendStore
	logger  *slog.Logger
	now     func() time.Time
}

// NewService wires up the planner domain.
func NewService(cfg Config, catalogSvc catalog.Service, repo Repository, trends TrendStore, logger *slog.Logger) Service {
	return &service{
		cfg:     cfg,
		catalog: catalogSvc,
		repo:    repo,
		trends:  trends,
		logger:  logger.With("component", "planner.service"),
		now:     util.NowUTC,
	}
}

func (s *service) GeneratePlan(ctx context.Context, userID string, profile footprint.Profile) (Result, error) {
	if err := profile.Validate(); err != nil {
		return Result{}, apperrors.Wrap("invalid_input", err.Error(), nil)
	}

	now := s.now()
	existing, found, err := s.repo.FindCurrent(ctx, userID)
	if err != nil {
		return Result{}, apperrors.Wrap("storage_error", "failed to load current plan", err)
	}
	if found && now.Before(existing.CreatedAt.Add(s.cfg.RegenCooldown)) && now.Before(existing.ExpiresAt) {
		s.logger.Info("returning existing plan within cooldown", "planId", existing.ID)
		return Result{Plan: existing, Reused: true}, nil
	}

	actions, err := s.catalog.ListActive(ctx)
	if err != nil {
		return Result{}, err
	}

	estimate := footprint.EstimateFootprint(profile)
	phases, totals, summary := buildPlan(actions, profile, estimate)

	plan := Plan{
		ID:          uuid.NewString(),
		UserID:      userID,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.cfg.PlanTTL),
		AnnualCO2Kg: estimate.AnnualCO2Kg,
		TreesNeeded: estimate.TreesNeeded,
		Phases:      phases,
		Totals:      totals,
		Summary:     summary,
	}

	if err := s.repo.Replace(ctx, plan); err != nil {
		return Result{}, apperrors.Wrap("storage_error", "failed to persist plan", err)
	}

	if names := selectedNames(phases); len(names) > 0 {
		if err := s.trends.IncrementActions(ctx, names); err != nil {
			s.logger.Warn("failed to record action trends", "error", err)
		}
	}

	s.logger.Info("plan generated", "planId", plan.ID, "actions", len(selectedNames(phases)), "treesNeeded", plan.TreesNeeded)
	return Result{Plan: plan}, nil
}

func (s *service) CurrentPlan(ctx context.Context, userID string) (Plan, error) {
	plan, found, err := s.repo.FindCurrent(ctx, userID)
	if err != nil {
		return Plan{}, apperrors.Wrap("storage_error", "failed to load current plan", err)
	}
	if !found || !s.now().Before(plan.ExpiresAt) {
		return Plan{}, apperrors.Wrap("plan_not_found", "no current plan", nil)
	}
	return plan, nil
}

func (s *service) UpdateActionCompletion(ctx context.Context, userID, planID, actionID string, completed bool) (CompletionStatus, error) {
	completedCount, total, err := s.repo.SetActionCompletion(ctx, userID, planID, actionID, completed, s.now())
	if err != nil {
		switch {
		case errors.Is(err, ErrPlanNotFound):
			return CompletionStatus{}, apperrors.Wrap("plan_not_found", "plan not found", err)
		case errors.Is(err, ErrActionNotFound):
			return CompletionStatus{}, apperrors.Wrap("action_not_found", "action not part of plan", err)
		}
		return CompletionStatus{}, apperrors.Wrap("storage_error", "failed to update completion", err)
	}
	return CompletionStatus{
		CompletionPercent: completionPercent(completedCount, total),
		CompletedCount:    completedCount,
		TotalCount:        total,
	}, nil
}

func (s *service) PopularActions(ctx context.Context) ([]ActionCount, error) {
	items, err := s.trends.TopActions(ctx, s.cfg.TopPopular)
	if err != nil {
		return nil, apperrors.Wrap("storage_error", "failed to load popular actions", err)
	}
	return items, nil
}

func completionPercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

func selectedNames(phases []PhasePlan) []string {
	var names []string
	for _, phase := range phases {
		for _, entry := range phase.Actions {
			names = append(names, entry.Action.Name)
		}
	}
	return names
}
