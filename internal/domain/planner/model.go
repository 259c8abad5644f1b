package planner

import (
	"time"

	"github.com/yanqian/carbon-planner/internal/domain/catalog"
)

// Config holds runtime knobs for the planner service.
type Config struct {
	// RegenCooldown is how long an existing plan is returned as-is before a
	// new request regenerates it.
	RegenCooldown time.Duration
	// PlanTTL is how long a plan stays current before it expires outright.
	PlanTTL time.Duration
	// TopPopular bounds the popular-actions listing.
	TopPopular int
}

// ScoredAction is a catalog action with its personal relevance score and
// completion state inside one plan.
type ScoredAction struct {
	Action      catalog.Action `json:"action"`
	Score       int            `json:"score"`
	Completed   bool           `json:"completed"`
	CompletedAt *time.Time     `json:"completedAt,omitempty"`
}

// PhasePlan is one time bucket of the generated plan.
type PhasePlan struct {
	Phase              catalog.Phase  `json:"phase"`
	Actions            []ScoredAction `json:"actions"`
	MonthlySavings     float64        `json:"monthlySavings"`
	UpfrontCost        float64        `json:"upfrontCost"`
	AnnualCO2ReducedKg float64        `json:"annualCo2ReducedKg"`
}

// Totals aggregates the plan-wide financial and environmental projections.
type Totals struct {
	MonthlySavings     float64 `json:"monthlySavings"`
	UpfrontCost        float64 `json:"upfrontCost"`
	YearlySavings      float64 `json:"yearlySavings"`
	AnnualCO2ReducedKg float64 `json:"annualCo2ReducedKg"`
	TreesReduced       float64 `json:"treesReduced"`
	TreesRemaining     float64 `json:"treesRemaining"`
	SponsorshipCost    float64 `json:"sponsorshipCost"`
	NetSavingsYear1    float64 `json:"netSavingsYear1"`
}

// ImpactSummary carries the qualitative benefit flags derived from the
// selected actions.
type ImpactSummary struct {
	HealthBenefits    []string `json:"healthBenefits"`
	CommunityBenefits []string `json:"communityBenefits"`
}

// Plan is the generated, persisted aggregate for one user.
type Plan struct {
	ID          string        `json:"id"`
	UserID      string        `json:"-"`
	CreatedAt   time.Time     `json:"createdAt"`
	ExpiresAt   time.Time     `json:"expiresAt"`
	AnnualCO2Kg float64       `json:"annualCo2Kg"`
	TreesNeeded int           `json:"treesNeeded"`
	Phases      []PhasePlan   `json:"phases"`
	Totals      Totals        `json:"totals"`
	Summary     ImpactSummary `json:"summary"`
}

// Result wraps a plan with whether it was reused under the cooldown policy.
type Result struct {
	Plan   Plan `json:"plan"`
	Reused bool `json:"reused"`
}

// CompletionStatus reports plan progress after a completion toggle.
type CompletionStatus struct {
	CompletionPercent int `json:"completionPercent"`
	CompletedCount    int `json:"completedCount"`
	TotalCount        int `json:"totalCount"`
}

// ActionCount is one entry of the popular-actions listing.
type ActionCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}
