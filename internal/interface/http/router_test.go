package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/yanqian/carbon-planner/internal/domain/activity"
	"github.com/yanqian/carbon-planner/internal/domain/footprint"
	"github.com/yanqian/carbon-planner/internal/domain/planner"
	"github.com/yanqian/carbon-planner/internal/domain/quickwins"
	"github.com/yanqian/carbon-planner/internal/infra/config"
	apperrors "github.com/yanqian/carbon-planner/pkg/errors"
)

const profileJSON = `{
	"commuteKmPerDay": 10,
	"vehicleType": "car",
	"monthlyElectricityKwh": 200,
	"diet": "vegetarian",
	"householdSize": 2,
	"homeOwnership": "rent",
	"acUsageHoursPerDay": 2,
	"wasteRecycling": "sometimes",
	"monthlyGroceryBill": 300,
	"willingnessChangeDiet": 3,
	"willingnessPublicTransport": 3,
	"timeAvailability": "medium"
}`

func TestRouter_EstimateFootprint(t *testing.T) {
	recorder := performRequest(http.MethodPost, "/api/v1/footprint", profileJSON, nil, newRouterUnderTest(t, deps{}))
	require.Equal(t, http.StatusOK, recorder.Code)

	var got footprint.Estimate
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Greater(t, got.AnnualCO2Kg, 0.0)
	require.Greater(t, got.TreesNeeded, 0)
}

func TestRouter_EstimateFootprintInvalidProfile(t *testing.T) {
	recorder := performRequest(http.MethodPost, "/api/v1/footprint", `{"vehicleType":"hovercraft"}`, nil, newRouterUnderTest(t, deps{}))
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
	require.NotEmpty(t, errBody["error"]["message"])
}

func TestRouter_GeneratePlanRequiresIdentity(t *testing.T) {
	recorder := performRequest(http.MethodPost, "/api/v1/plans", profileJSON, nil, newRouterUnderTest(t, deps{}))
	require.Equal(t, http.StatusUnauthorized, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "unauthorized", errBody["error"]["code"])
}

func TestRouter_GeneratePlanWithHeaderIdentity(t *testing.T) {
	plan := planner.Plan{ID: "plan-1", AnnualCO2Kg: 5000, TreesNeeded: 228}
	svc := &stubPlanner{
		generateFn: func(ctx context.Context, userID string, profile footprint.Profile) (planner.Result, error) {
			require.Equal(t, "user-7", userID)
			require.Equal(t, footprint.VehicleCar, profile.VehicleType)
			return planner.Result{Plan: plan}, nil
		},
	}

	headers := map[string]string{"X-User-ID": "user-7"}
	recorder := performRequest(http.MethodPost, "/api/v1/plans", profileJSON, headers, newRouterUnderTest(t, deps{planner: svc}))
	require.Equal(t, http.StatusOK, recorder.Code)

	var got planner.Result
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, plan.ID, got.Plan.ID)
	require.False(t, got.Reused)
}

func TestRouter_GeneratePlanWithBearerToken(t *testing.T) {
	const secret = "test-secret"
	token := signedToken(t, secret, "user-42")

	svc := &stubPlanner{
		generateFn: func(ctx context.Context, userID string, profile footprint.Profile) (planner.Result, error) {
			require.Equal(t, "user-42", userID)
			return planner.Result{Plan: planner.Plan{ID: "plan-2"}}, nil
		},
	}

	server := newRouterWithConfig(t, deps{planner: svc}, func(cfg *config.Config) {
		cfg.Identity.Enabled = true
		cfg.Identity.Secret = secret
	})

	headers := map[string]string{"Authorization": "Bearer " + token}
	recorder := performRequest(http.MethodPost, "/api/v1/plans", profileJSON, headers, server)
	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestRouter_GeneratePlanRejectsBadToken(t *testing.T) {
	server := newRouterWithConfig(t, deps{}, func(cfg *config.Config) {
		cfg.Identity.Enabled = true
		cfg.Identity.Secret = "right-secret"
	})

	headers := map[string]string{"Authorization": "Bearer " + signedToken(t, "wrong-secret", "user-42")}
	recorder := performRequest(http.MethodPost, "/api/v1/plans", profileJSON, headers, server)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_token", errBody["error"]["code"])
}

func TestRouter_CurrentPlanNotFound(t *testing.T) {
	svc := &stubPlanner{
		currentFn: func(ctx context.Context, userID string) (planner.Plan, error) {
			return planner.Plan{}, apperrors.Wrap("plan_not_found", "no current plan", nil)
		},
	}

	headers := map[string]string{"X-User-ID": "user-7"}
	recorder := performRequest(http.MethodGet, "/api/v1/plans/current", "", headers, newRouterUnderTest(t, deps{planner: svc}))
	require.Equal(t, http.StatusNotFound, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "plan_not_found", errBody["error"]["code"])
}

func TestRouter_UpdateActionCompletion(t *testing.T) {
	svc := &stubPlanner{
		completeFn: func(ctx context.Context, userID, planID, actionID string, completed bool) (planner.CompletionStatus, error) {
			require.Equal(t, "user-7", userID)
			require.Equal(t, "plan-1", planID)
			require.Equal(t, "led-bulbs", actionID)
			require.True(t, completed)
			return planner.CompletionStatus{CompletionPercent: 25, CompletedCount: 2, TotalCount: 8}, nil
		},
	}

	headers := map[string]string{"X-User-ID": "user-7"}
	recorder := performRequest(http.MethodPatch, "/api/v1/plans/plan-1/actions/led-bulbs", `{"isCompleted":true}`, headers, newRouterUnderTest(t, deps{planner: svc}))
	require.Equal(t, http.StatusOK, recorder.Code)

	var got planner.CompletionStatus
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, 25, got.CompletionPercent)
}

func TestRouter_UpdateActionCompletionUnknownAction(t *testing.T) {
	svc := &stubPlanner{
		completeFn: func(ctx context.Context, userID, planID, actionID string, completed bool) (planner.CompletionStatus, error) {
			return planner.CompletionStatus{}, apperrors.Wrap("action_not_found", "action not in plan", nil)
		},
	}

	headers := map[string]string{"X-User-ID": "user-7"}
	recorder := performRequest(http.MethodPatch, "/api/v1/plans/plan-1/actions/nope", `{"isCompleted":true}`, headers, newRouterUnderTest(t, deps{planner: svc}))
	require.Equal(t, http.StatusNotFound, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "action_not_found", errBody["error"]["code"])
}

func TestRouter_OptimizeQuickActions(t *testing.T) {
	svc := &stubQuickWins{
		optimizeFn: func(ctx context.Context, budget int) (quickwins.Result, error) {
			require.Equal(t, 12, budget)
			return quickwins.Result{TotalSavingsKg: 321.5, DifficultyUsed: 11, MaxDifficulty: 12}, nil
		},
	}

	recorder := performRequest(http.MethodPost, "/api/v1/quick-actions/optimize", `{"effortBudget":12}`, nil, newRouterUnderTest(t, deps{quick: svc}))
	require.Equal(t, http.StatusOK, recorder.Code)

	var got quickwins.Result
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, 321.5, got.TotalSavingsKg)
}

func TestRouter_OptimizeQuickActionsBudgetOutOfRange(t *testing.T) {
	svc := &stubQuickWins{
		optimizeFn: func(ctx context.Context, budget int) (quickwins.Result, error) {
			return quickwins.Result{}, apperrors.Wrap("invalid_input", "effortBudget must be between 5 and 50", nil)
		},
	}

	recorder := performRequest(http.MethodPost, "/api/v1/quick-actions/optimize", `{"effortBudget":99}`, nil, newRouterUnderTest(t, deps{quick: svc}))
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
	require.Contains(t, errBody["error"]["message"], "effortBudget")
}

func TestRouter_PopularActions(t *testing.T) {
	svc := &stubPlanner{
		popularFn: func(ctx context.Context) ([]planner.ActionCount, error) {
			return []planner.ActionCount{{Name: "Switch to LED bulbs", Count: 12}}, nil
		},
	}

	recorder := performRequest(http.MethodGet, "/api/v1/actions/popular", "", nil, newRouterUnderTest(t, deps{planner: svc}))
	require.Equal(t, http.StatusOK, recorder.Code)

	var got struct {
		Actions []planner.ActionCount `json:"actions"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Len(t, got.Actions, 1)
	require.Equal(t, int64(12), got.Actions[0].Count)
}

func TestRouter_EstimateActivityUnknownKind(t *testing.T) {
	svc := &stubActivity{
		estimateFn: func(ctx context.Context, req activity.Request) (activity.Response, error) {
			return activity.Response{}, apperrors.Wrap("unknown_activity", "unknown activity: teleport", nil)
		},
	}

	recorder := performRequest(http.MethodPost, "/api/v1/activities/estimate", `{"activity":"teleport","quantity":1}`, nil, newRouterUnderTest(t, deps{activity: svc}))
	require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "unknown_activity", errBody["error"]["code"])
}

func decodeErrorBody(t *testing.T, body []byte) map[string]map[string]string {
	t.Helper()
	var decoded map[string]map[string]string
	require.NoError(t, json.Unmarshal(body, &decoded))
	return decoded
}

func performRequest(method, path, body string, headers map[string]string, server *http.Server) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

type deps struct {
	planner  planner.Service
	quick    quickwins.Service
	activity activity.Service
}

func newRouterUnderTest(t *testing.T, d deps) *http.Server {
	t.Helper()
	return newRouterWithConfig(t, d, nil)
}

func newRouterWithConfig(t *testing.T, d deps, mutate func(cfg *config.Config)) *http.Server {
	t.Helper()
	if d.planner == nil {
		d.planner = &stubPlanner{}
	}
	if d.quick == nil {
		d.quick = &stubQuickWins{}
	}
	if d.activity == nil {
		d.activity = &stubActivity{}
	}
	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
	}
	if mutate != nil {
		mutate(cfg)
	}
	handler := NewHandler(d.planner, d.quick, d.activity, newTestLogger())
	return NewRouter(cfg, handler)
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

func signedToken(t *testing.T, secret, subject string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

type stubPlanner struct {
	generateFn func(ctx context.Context, userID string, profile footprint.Profile) (planner.Result, error)
	currentFn  func(ctx context.Context, userID string) (planner.Plan, error)
	completeFn func(ctx context.Context, userID, planID, actionID string, completed bool) (planner.CompletionStatus, error)
	popularFn  func(ctx context.Context) ([]planner.ActionCount, error)
}

func (s *stubPlanner) GeneratePlan(ctx context.Context, userID string, profile footprint.Profile) (planner.Result, error) {
	if s.generateFn != nil {
		return s.generateFn(ctx, userID, profile)
	}
	return planner.Result{}, nil
}

func (s *stubPlanner) CurrentPlan(ctx context.Context, userID string) (planner.Plan, error) {
	if s.currentFn != nil {
		return s.currentFn(ctx, userID)
	}
	return planner.Plan{}, nil
}

func (s *stubPlanner) UpdateActionCompletion(ctx context.Context, userID, planID, actionID string, completed bool) (planner.CompletionStatus, error) {
	if s.completeFn != nil {
		return s.completeFn(ctx, userID, planID, actionID, completed)
	}
	return planner.CompletionStatus{}, nil
}

func (s *stubPlanner) PopularActions(ctx context.Context) ([]planner.ActionCount, error) {
	if s.popularFn != nil {
		return s.popularFn(ctx)
	}
	return nil, nil
}

type stubQuickWins struct {
	optimizeFn func(ctx context.Context, budget int) (quickwins.Result, error)
}

func (s *stubQuickWins) OptimizeByEffort(ctx context.Context, budget int) (quickwins.Result, error) {
	if s.optimizeFn != nil {
		return s.optimizeFn(ctx, budget)
	}
	return quickwins.Result{}, nil
}

type stubActivity struct {
	estimateFn func(ctx context.Context, req activity.Request) (activity.Response, error)
}

func (s *stubActivity) Estimate(ctx context.Context, req activity.Request) (activity.Response, error) {
	if s.estimateFn != nil {
		return s.estimateFn(ctx, req)
	}
	return activity.Response{}, nil
}
