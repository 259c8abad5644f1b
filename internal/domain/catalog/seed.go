package catalog

import "github.com/yanqian/carbon-planner/internal/domain/footprint"

// DefaultActions returns the seeded candidate catalog. Money figures are
// rupees per month unless noted; carbon figures are kg CO2 per month.
func DefaultActions() []Action {
	return []Action{
		{
			ID:                    "led-bulbs",
			Name:                  "Switch to LED bulbs",
			Category:              CategoryEnergy,
			Description:           "Replace incandescent and CFL bulbs with LEDs across the home.",
			CarbonSavedKgPerMonth: 4,
			MonthlySavings:        150,
			UpfrontCost:           500,
			Difficulty:            1,
			Phase:                 PhaseImmediate,
			TreeEquivalent:        2,
			Active:                true,
		},
		{
			ID:                    "ac-26-degrees",
			Name:                  "Raise AC setpoint to 26°C",
			Category:              CategoryEnergy,
			Description:           "Each degree higher cuts compressor runtime noticeably in summer.",
			CarbonSavedKgPerMonth: 15,
			MonthlySavings:        400,
			Difficulty:            2,
			Phase:                 PhaseImmediate,
			TreeEquivalent:        8,
			Tags:                  Tags{ACRelated: true},
			Active:                true,
		},
		{
			ID:                    "ac-servicing",
			Name:                  "Get the AC serviced before summer",
			Category:              CategoryEnergy,
			Description:           "Clean filters and coils restore efficiency lost over the year.",
			CarbonSavedKgPerMonth: 8,
			MonthlySavings:        200,
			UpfrontCost:           600,
			Difficulty:            2,
			Phase:                 PhaseShortTerm,
			TreeEquivalent:        4,
			Tags:                  Tags{ACRelated: true},
			Active:                true,
		},
		{
			ID:                    "five-star-fridge",
			Name:                  "Upgrade to a 5-star refrigerator",
			Category:              CategoryEnergy,
			Description:           "Swap an old refrigerator for a BEE 5-star rated model.",
			CarbonSavedKgPerMonth: 12,
			MonthlySavings:        300,
			UpfrontCost:           30000,
			Difficulty:            3,
			Phase:                 PhaseMediumTerm,
			TreeEquivalent:        6,
			Active:                true,
		},
		{
			ID:                    "solar-water-heater",
			Name:                  "Install a solar water heater",
			Category:              CategoryEnergy,
			Description:           "Rooftop solar thermal covers most household hot water needs.",
			CarbonSavedKgPerMonth: 25,
			MonthlySavings:        600,
			UpfrontCost:           25000,
			Difficulty:            4,
			Phase:                 PhaseLongTerm,
			TreeEquivalent:        13,
			RequiresHomeOwnership: true,
			Active:                true,
		},
		{
			ID:                    "rooftop-solar",
			Name:                  "Install rooftop solar panels",
			Category:              CategoryEnergy,
			Description:           "A 3 kW rooftop array offsets most of a household's grid draw.",
			CarbonSavedKgPerMonth: 80,
			MonthlySavings:        2500,
			UpfrontCost:           150000,
			Difficulty:            5,
			Phase:                 PhaseLongTerm,
			TreeEquivalent:        43,
			RequiresHomeOwnership: true,
			Active:                true,
		},
		{
			ID:                    "walk-short-errands",
			Name:                  "Walk for errands under 2 km",
			Category:              CategoryTransport,
			Description:           "Skip the vehicle for nearby shops and daily errands.",
			CarbonSavedKgPerMonth: 5,
			MonthlySavings:        200,
			Difficulty:            1,
			Phase:                 PhaseImmediate,
			TreeEquivalent:        3,
			Tags:                  Tags{Cardio: true},
			Active:                true,
		},
		{
			ID:                    "cycle-short-trips",
			Name:                  "Cycle for trips under 5 km",
			Category:              CategoryTransport,
			Description:           "A bicycle covers most short city trips faster than traffic allows.",
			CarbonSavedKgPerMonth: 10,
			MonthlySavings:        500,
			UpfrontCost:           6000,
			Difficulty:            2,
			Phase:                 PhaseImmediate,
			TreeEquivalent:        5,
			Tags:                  Tags{Cardio: true},
			Active:                true,
		},
		{
			ID:                    "carpool-coworkers",
			Name:                  "Carpool with coworkers",
			Category:              CategoryTransport,
			Description:           "Share the commute with two or three colleagues on the same route.",
			CarbonSavedKgPerMonth: 25,
			MonthlySavings:        800,
			Difficulty:            2,
			Phase:                 PhaseShortTerm,
			TreeEquivalent:        13,
			ApplicableVehicles:    []footprint.VehicleType{footprint.VehicleCar},
			Active:                true,
		},
		{
			ID:                    "metro-commute",
			Name:                  "Take the metro or bus to work",
			Category:              CategoryTransport,
			Description:           "Shift the daily commute from a private vehicle to public transport.",
			CarbonSavedKgPerMonth: 40,
			MonthlySavings:        1500,
			Difficulty:            3,
			Phase:                 PhaseShortTerm,
			TreeEquivalent:        21,
			ApplicableVehicles:    []footprint.VehicleType{footprint.VehicleCar, footprint.VehicleBike},
			Active:                true,
		},
		{
			ID:                    "electric-scooter",
			Name:                  "Switch to an electric scooter",
			Category:              CategoryTransport,
			Description:           "Replace petrol two-wheeler or short car trips with an EV scooter.",
			CarbonSavedKgPerMonth: 30,
			MonthlySavings:        1000,
			UpfrontCost:           90000,
			Difficulty:            4,
			Phase:                 PhaseLongTerm,
			TreeEquivalent:        16,
			ApplicableVehicles:    []footprint.VehicleType{footprint.VehicleCar, footprint.VehicleBike},
			Active:                true,
		},
		{
			ID:                    "meatless-days",
			Name:                  "Try two meatless days a week",
			Category:              CategoryDiet,
			Description:           "Pick two fixed days a week for fully vegetarian meals.",
			CarbonSavedKgPerMonth: 20,
			MonthlySavings:        400,
			Difficulty:            2,
			Phase:                 PhaseImmediate,
			TreeEquivalent:        11,
			ApplicableDiets:       []footprint.DietaryPreference{footprint.DietNonVegetarian, footprint.DietFlexitarian},
			Active:                true,
		},
		{
			ID:                    "seasonal-produce",
			Name:                  "Buy seasonal local produce",
			Category:              CategoryDiet,
			Description:           "Local mandi produce skips cold chains and long freight legs.",
			CarbonSavedKgPerMonth: 8,
			MonthlySavings:        300,
			Difficulty:            1,
			Phase:                 PhaseImmediate,
			TreeEquivalent:        4,
			Active:                true,
		},
		{
			ID:                    "meal-planning",
			Name:                  "Plan meals to cut food waste",
			Category:              CategoryDiet,
			Description:           "A weekly meal plan keeps groceries from ending up in the bin.",
			CarbonSavedKgPerMonth: 10,
			MonthlySavings:        600,
			Difficulty:            2,
			Phase:                 PhaseShortTerm,
			TreeEquivalent:        5,
			Active:                true,
		},
		{
			ID:                    "flexitarian-shift",
			Name:                  "Shift to a flexitarian diet",
			Category:              CategoryDiet,
			Description:           "Keep meat for occasions and make plants the default plate.",
			CarbonSavedKgPerMonth: 45,
			MonthlySavings:        700,
			Difficulty:            4,
			Phase:                 PhaseMediumTerm,
			TreeEquivalent:        25,
			ApplicableDiets:       []footprint.DietaryPreference{footprint.DietNonVegetarian},
			Active:                true,
		},
		{
			ID:                    "waste-segregation",
			Name:                  "Segregate wet and dry waste",
			Category:              CategoryWaste,
			Description:           "Two bins at home keep recyclables out of landfill.",
			CarbonSavedKgPerMonth: 6,
			Difficulty:            1,
			Phase:                 PhaseImmediate,
			TreeEquivalent:        3,
			Active:                true,
		},
		{
			ID:                    "kitchen-composting",
			Name:                  "Compost kitchen scraps",
			Category:              CategoryWaste,
			Description:           "A balcony composter turns wet waste into garden soil.",
			CarbonSavedKgPerMonth: 10,
			MonthlySavings:        100,
			UpfrontCost:           1500,
			Difficulty:            2,
			Phase:                 PhaseShortTerm,
			TreeEquivalent:        5,
			Active:                true,
		},
		{
			ID:                    "bulk-buying",
			Name:                  "Buy staples in bulk",
			Category:              CategoryWaste,
			Description:           "Larger packs cut packaging waste and delivery trips.",
			CarbonSavedKgPerMonth: 7,
			MonthlySavings:        250,
			Difficulty:            1,
			Phase:                 PhaseShortTerm,
			TreeEquivalent:        4,
			MinHouseholdSize:      3,
			Active:                true,
		},
		{
			ID:                    "garden-trees",
			Name:                  "Plant native trees in your garden",
			Category:              CategoryTreePlanting,
			Description:           "Native species need little water once established.",
			CarbonSavedKgPerMonth: 15,
			UpfrontCost:           500,
			Difficulty:            2,
			Phase:                 PhaseImmediate,
			TreeEquivalent:        4,
			RequiresGarden:        true,
			Active:                true,
		},
		{
			ID:                    "sponsor-planting",
			Name:                  "Sponsor urban tree planting",
			Category:              CategoryTreePlanting,
			Description:           "Fund saplings through a verified urban forestry program.",
			CarbonSavedKgPerMonth: 20,
			UpfrontCost:           1500,
			Difficulty:            1,
			Phase:                 PhaseShortTerm,
			TreeEquivalent:        5,
			Active:                true,
		},
		{
			ID:                    "community-planting",
			Name:                  "Join a community planting drive",
			Category:              CategoryTreePlanting,
			Description:           "Weekend drives green public land near your neighbourhood.",
			CarbonSavedKgPerMonth: 10,
			Difficulty:            3,
			Phase:                 PhaseMediumTerm,
			TreeEquivalent:        3,
			Active:                true,
		},
	}
}
