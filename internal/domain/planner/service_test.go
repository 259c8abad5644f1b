package planner

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/carbon-planner/internal/domain/catalog"
	apperrors "github.com/yanqian/carbon-planner/pkg/errors"
)

type fakeCatalog struct {
	actions []catalog.Action
}

func (f *fakeCatalog) ListActive(context.Context) ([]catalog.Action, error) { return f.actions, nil }
func (f *fakeCatalog) EnsureSeeded(context.Context) error                   { return nil }

type fakeRepo struct {
	plans map[string]Plan
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{plans: make(map[string]Plan)}
}

func (f *fakeRepo) FindCurrent(_ context.Context, userID string) (Plan, bool, error) {
	plan, ok := f.plans[userID]
	return plan, ok, nil
}

func (f *fakeRepo) Replace(_ context.Context, plan Plan) error {
	f.plans[plan.UserID] = plan
	return nil
}

func (f *fakeRepo) SetActionCompletion(_ context.Context, userID, planID, actionID string, completed bool, at time.Time) (int, int, error) {
	plan, ok := f.plans[userID]
	if !ok || plan.ID != planID {
		return 0, 0, ErrPlanNotFound
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
					entry.CompletedAt = &at
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
		return 0, 0, ErrActionNotFound
	}
	f.plans[userID] = plan
	return completedCount, total, nil
}

type fakeTrends struct {
	counts map[string]int64
}

func newFakeTrends() *fakeTrends {
	return &fakeTrends{counts: make(map[string]int64)}
}

func (f *fakeTrends) IncrementActions(_ context.Context, names []string) error {
	for _, name := range names {
		f.counts[name]++
	}
	return nil
}

func (f *fakeTrends) TopActions(_ context.Context, limit int) ([]ActionCount, error) {
	items := make([]ActionCount, 0, len(f.counts))
	for name, count := range f.counts {
		items = append(items, ActionCount{Name: name, Count: count})
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func testActions() []catalog.Action {
	return []catalog.Action{
		{ID: "led-bulbs", Name: "Switch to LED bulbs", Category: catalog.CategoryEnergy, CarbonSavedKgPerMonth: 12, MonthlySavings: 150, Difficulty: 1, Phase: catalog.PhaseImmediate, Active: true},
		{ID: "bus-commute", Name: "Commute by bus", Category: catalog.CategoryTransport, CarbonSavedKgPerMonth: 30, MonthlySavings: 800, Difficulty: 3, Phase: catalog.PhaseShortTerm, Active: true},
		{ID: "compost", Name: "Compost kitchen waste", Category: catalog.CategoryWaste, CarbonSavedKgPerMonth: 8, Difficulty: 2, Phase: catalog.PhaseShortTerm, Active: true},
	}
}

func newServiceUnderTest(t *testing.T, now *time.Time) (*service, *fakeRepo, *fakeTrends) {
	t.Helper()
	repo := newFakeRepo()
	trends := newFakeTrends()
	svc := &service{
		cfg:     Config{RegenCooldown: 30 * 24 * time.Hour, PlanTTL: 365 * 24 * time.Hour, TopPopular: 10},
		catalog: &fakeCatalog{actions: testActions()},
		repo:    repo,
		trends:  trends,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:     func() time.Time { return *now },
	}
	return svc, repo, trends
}

func TestService_GeneratePlan(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc, _, trends := newServiceUnderTest(t, &now)

	result, err := svc.GeneratePlan(context.Background(), "user-1", scoringProfile())
	require.NoError(t, err)
	require.False(t, result.Reused)
	require.NotEmpty(t, result.Plan.ID)
	require.Equal(t, now, result.Plan.CreatedAt)
	require.Equal(t, now.Add(365*24*time.Hour), result.Plan.ExpiresAt)
	require.Greater(t, result.Plan.AnnualCO2Kg, 0.0)
	require.Len(t, result.Plan.Phases, 4)

	// Every selected action was recorded as a trend increment.
	require.Equal(t, int64(1), trends.counts["Switch to LED bulbs"])
}

func TestService_GeneratePlanRejectsInvalidProfile(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc, _, _ := newServiceUnderTest(t, &now)

	profile := scoringProfile()
	profile.HouseholdSize = 0

	_, err := svc.GeneratePlan(context.Background(), "user-1", profile)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestService_GeneratePlanReusedWithinCooldown(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc, _, _ := newServiceUnderTest(t, &now)

	first, err := svc.GeneratePlan(context.Background(), "user-1", scoringProfile())
	require.NoError(t, err)

	now = now.Add(10 * 24 * time.Hour)
	second, err := svc.GeneratePlan(context.Background(), "user-1", scoringProfile())
	require.NoError(t, err)
	require.True(t, second.Reused)
	require.Equal(t, first.Plan.ID, second.Plan.ID)
}

func TestService_GeneratePlanRegeneratesAfterCooldown(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc, _, _ := newServiceUnderTest(t, &now)

	first, err := svc.GeneratePlan(context.Background(), "user-1", scoringProfile())
	require.NoError(t, err)

	now = now.Add(31 * 24 * time.Hour)
	second, err := svc.GeneratePlan(context.Background(), "user-1", scoringProfile())
	require.NoError(t, err)
	require.False(t, second.Reused)
	require.NotEqual(t, first.Plan.ID, second.Plan.ID)
}

func TestService_CurrentPlanExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc, _, _ := newServiceUnderTest(t, &now)

	_, err := svc.GeneratePlan(context.Background(), "user-1", scoringProfile())
	require.NoError(t, err)

	now = now.Add(366 * 24 * time.Hour)
	_, err = svc.CurrentPlan(context.Background(), "user-1")
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "plan_not_found"))
}

func TestService_CurrentPlanMissing(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc, _, _ := newServiceUnderTest(t, &now)

	_, err := svc.CurrentPlan(context.Background(), "nobody")
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "plan_not_found"))
}

func TestService_UpdateActionCompletion(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc, _, _ := newServiceUnderTest(t, &now)

	result, err := svc.GeneratePlan(context.Background(), "user-1", scoringProfile())
	require.NoError(t, err)

	var total int
	var firstAction string
	for _, phase := range result.Plan.Phases {
		for _, entry := range phase.Actions {
			if firstAction == "" {
				firstAction = entry.Action.ID
			}
			total++
		}
	}
	require.NotEmpty(t, firstAction)

	status, err := svc.UpdateActionCompletion(context.Background(), "user-1", result.Plan.ID, firstAction, true)
	require.NoError(t, err)
	require.Equal(t, 1, status.CompletedCount)
	require.Equal(t, total, status.TotalCount)
	require.Equal(t, int(float64(1)/float64(total)*100+0.5), status.CompletionPercent)

	status, err = svc.UpdateActionCompletion(context.Background(), "user-1", result.Plan.ID, firstAction, false)
	require.NoError(t, err)
	require.Equal(t, 0, status.CompletedCount)
	require.Equal(t, 0, status.CompletionPercent)
}

func TestService_UpdateActionCompletionUnknownPlan(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc, _, _ := newServiceUnderTest(t, &now)

	_, err := svc.UpdateActionCompletion(context.Background(), "user-1", "missing-plan", "led-bulbs", true)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "plan_not_found"))
}

func TestService_UpdateActionCompletionUnknownAction(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc, _, _ := newServiceUnderTest(t, &now)

	result, err := svc.GeneratePlan(context.Background(), "user-1", scoringProfile())
	require.NoError(t, err)

	_, err = svc.UpdateActionCompletion(context.Background(), "user-1", result.Plan.ID, "not-an-action", true)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "action_not_found"))
}

func TestService_PopularActions(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc, _, _ := newServiceUnderTest(t, &now)

	_, err := svc.GeneratePlan(context.Background(), "user-1", scoringProfile())
	require.NoError(t, err)

	items, err := svc.PopularActions(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, items)
	for _, item := range items {
		require.Equal(t, int64(1), item.Count)
	}
}
