package planner

import (
	"math"

	"github.com/yanqian/carbon-planner/internal/domain/catalog"
	"github.com/yanqian/carbon-planner/internal/domain/footprint"
)

// Score computes the personal relevance of an action for a profile, in
// [0,100]. Hard applicability filters short-circuit to exactly 0 regardless
// of every other attribute.
func Score(a catalog.Action, p footprint.Profile) int {
	if a.RequiresGarden && !p.HasGarden {
		return 0
	}
	if a.RequiresHomeOwnership && p.HomeOwnership != footprint.OwnershipOwn {
		return 0
	}
	if a.MinHouseholdSize > p.HouseholdSize {
		return 0
	}
	if !a.AppliesToVehicle(p.VehicleType) {
		return 0
	}
	if !a.AppliesToDiet(p.Diet) {
		return 0
	}

	score := 50.0

	difficulty := float64(a.Difficulty)
	if difficulty < 1 {
		difficulty = 1
	}
	score += math.Min(20, a.CarbonSavedKgPerMonth/difficulty*2)

	switch a.Category {
	case catalog.CategoryDiet:
		score += float64(p.WillingnessChangeDiet) / 5 * 15
	case catalog.CategoryTransport:
		score += float64(p.WillingnessPublicTransport) / 5 * 15
	}

	if a.Difficulty >= 4 && p.TimeAvailability == footprint.TimeLow {
		// Demanding actions are penalised outright for time-poor users;
		// the availability bonus does not apply on top.
		score -= 15
	} else {
		switch p.TimeAvailability {
		case footprint.TimeMedium:
			score += 5
		case footprint.TimeHigh:
			score += 10
		}
	}

	if p.HouseholdSize >= 3 && a.MonthlySavings > 0 {
		score += 5
	}

	if a.MonthlySavings > 0 {
		bill := p.MonthlyGroceryBill
		if bill < 1000 {
			bill = 1000
		}
		score += math.Min(10, a.MonthlySavings/bill*100)
	}

	if a.Category == catalog.CategoryEnergy && a.Tags.ACRelated {
		if p.ACUsageHoursPerDay > 4 {
			score += 10
		} else if p.ACUsageHoursPerDay <= 1 {
			score -= 20
		}
	}

	if a.Category == catalog.CategoryTransport {
		if p.CommuteKmPerDay > 20 {
			score += 10
		} else if p.CommuteKmPerDay < 5 {
			score -= 10
		}
	}

	if a.Category == catalog.CategoryWaste && p.WasteRecycling == footprint.RecyclingAlways {
		score -= 10
	}

	rounded := int(math.Round(score))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}
