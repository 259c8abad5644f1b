package catalog

import (
	"github.com/yanqian/carbon-planner/internal/domain/footprint"
)

// Category groups candidate actions for diversity capping.
type Category string

const (
	CategoryEnergy       Category = "energy"
	CategoryTransport    Category = "transport"
	CategoryDiet         Category = "diet"
	CategoryWaste        Category = "waste"
	CategoryTreePlanting Category = "tree_planting"
)

// Phase is the time bucket an action is scheduled into within a plan.
type Phase string

const (
	PhaseImmediate  Phase = "immediate"
	PhaseShortTerm  Phase = "short_term"
	PhaseMediumTerm Phase = "medium_term"
	PhaseLongTerm   Phase = "long_term"
)

// Phases lists the plan buckets in schedule order.
func Phases() []Phase {
	return []Phase{PhaseImmediate, PhaseShortTerm, PhaseMediumTerm, PhaseLongTerm}
}

// Tags carry behavior-relevant attributes decided at authoring time, so
// scoring never has to sniff display names.
type Tags struct {
	ACRelated bool `json:"acRelated"`
	Cardio    bool `json:"cardio"`
}

// Action is one seeded catalog entry.
type Action struct {
	ID                    string                        `json:"id"`
	Name                  string                        `json:"name"`
	Category              Category                      `json:"category"`
	Description           string                        `json:"description"`
	CarbonSavedKgPerMonth float64                       `json:"carbonSavedKgPerMonth"`
	MonthlySavings        float64                       `json:"monthlySavings"`
	UpfrontCost           float64                       `json:"upfrontCost"`
	Difficulty            int                           `json:"difficulty"`
	Phase                 Phase                         `json:"phase"`
	TreeEquivalent        float64                       `json:"treeEquivalent"`
	RequiresGarden        bool                          `json:"requiresGarden"`
	RequiresHomeOwnership bool                          `json:"requiresHomeOwnership"`
	MinHouseholdSize      int                           `json:"minHouseholdSize"`
	ApplicableVehicles    []footprint.VehicleType       `json:"applicableVehicles,omitempty"`
	ApplicableDiets       []footprint.DietaryPreference `json:"applicableDiets,omitempty"`
	Tags                  Tags                          `json:"tags"`
	Active                bool                          `json:"active"`
}

// AppliesToVehicle reports whether the action's vehicle filter admits v.
// An empty filter admits any vehicle.
func (a Action) AppliesToVehicle(v footprint.VehicleType) bool {
	if len(a.ApplicableVehicles) == 0 {
		return true
	}
	for _, candidate := range a.ApplicableVehicles {
		if candidate == v {
			return true
		}
	}
	return false
}

// AppliesToDiet reports whether the action's diet filter admits d.
func (a Action) AppliesToDiet(d footprint.DietaryPreference) bool {
	if len(a.ApplicableDiets) == 0 {
		return true
	}
	for _, candidate := range a.ApplicableDiets {
		if candidate == d {
			return true
		}
	}
	return false
}
