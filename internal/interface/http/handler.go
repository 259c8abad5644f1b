package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/carbon-planner/internal/domain/activity"
	"github.com/yanqian/carbon-planner/internal/domain/footprint"
	"github.com/yanqian/carbon-planner/internal/domain/planner"
	"github.com/yanqian/carbon-planner/internal/domain/quickwins"
	apperrors "github.com/yanqian/carbon-planner/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	plannerSvc  planner.Service
	quickSvc    quickwins.Service
	activitySvc activity.Service
	logger      *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(plannerSvc planner.Service, quickSvc quickwins.Service, activitySvc activity.Service, logger *slog.Logger) *Handler {
	return &Handler{
		plannerSvc:  plannerSvc,
		quickSvc:    quickSvc,
		activitySvc: activitySvc,
		logger:      logger.With("component", "http.handler"),
	}
}

// EstimateFootprint converts a lifestyle profile into an annual estimate.
func (h *Handler) EstimateFootprint(c *gin.Context) {
	var profile footprint.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	if err := profile.Validate(); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, footprint.EstimateFootprint(profile))
}

// GeneratePlan creates (or, within the cooldown, returns) the caller's plan.
func (h *Handler) GeneratePlan(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing user identity", nil))
		return
	}
	var profile footprint.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	result, err := h.plannerSvc.GeneratePlan(c.Request.Context(), userID, profile)
	if err != nil {
		status := http.StatusInternalServerError
		code := "plan_failed"
		if apperrors.IsCode(err, "invalid_input") {
			status = http.StatusBadRequest
			code = "invalid_request"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, result)
}

// CurrentPlan returns the caller's current, non-expired plan.
func (h *Handler) CurrentPlan(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing user identity", nil))
		return
	}

	plan, err := h.plannerSvc.CurrentPlan(c.Request.Context(), userID)
	if err != nil {
		status := http.StatusInternalServerError
		code := "plan_failed"
		if apperrors.IsCode(err, "plan_not_found") {
			status = http.StatusNotFound
			code = "plan_not_found"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, plan)
}

type completionRequest struct {
	IsCompleted bool `json:"isCompleted"`
}

// UpdateActionCompletion toggles one plan action and reports progress.
func (h *Handler) UpdateActionCompletion(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing user identity", nil))
		return
	}
	var req completionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	status, err := h.plannerSvc.UpdateActionCompletion(c.Request.Context(), userID, c.Param("planId"), c.Param("actionId"), req.IsCompleted)
	if err != nil {
		httpStatus := http.StatusInternalServerError
		code := "completion_failed"
		switch {
		case apperrors.IsCode(err, "plan_not_found"):
			httpStatus = http.StatusNotFound
			code = "plan_not_found"
		case apperrors.IsCode(err, "action_not_found"):
			httpStatus = http.StatusNotFound
			code = "action_not_found"
		}
		abortWithError(c, NewHTTPError(httpStatus, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, status)
}

type optimizeRequest struct {
	EffortBudget int `json:"effortBudget"`
}

// OptimizeQuickActions runs the effort-budgeted quick action optimizer.
func (h *Handler) OptimizeQuickActions(c *gin.Context) {
	var req optimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	result, err := h.quickSvc.OptimizeByEffort(c.Request.Context(), req.EffortBudget)
	if err != nil {
		status := http.StatusInternalServerError
		code := "optimize_failed"
		if apperrors.IsCode(err, "invalid_input") {
			status = http.StatusBadRequest
			code = "invalid_request"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, result)
}

// PopularActions lists the actions most often selected into plans.
func (h *Handler) PopularActions(c *gin.Context) {
	items, err := h.plannerSvc.PopularActions(c.Request.Context())
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "popular_failed", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"actions": items})
}

// EstimateActivity converts one logged activity into a CO2 figure.
func (h *Handler) EstimateActivity(c *gin.Context) {
	var req activity.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.activitySvc.Estimate(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		code := "activity_failed"
		switch {
		case apperrors.IsCode(err, "invalid_input"):
			status = http.StatusBadRequest
			code = "invalid_request"
		case apperrors.IsCode(err, "unknown_activity"):
			// Data-integrity error: the activity key is not part of the
			// closed catalog.
			status = http.StatusUnprocessableEntity
			code = "unknown_activity"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
