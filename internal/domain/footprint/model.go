package footprint

import "errors"

// VehicleType identifies the commute vehicle used daily.
type VehicleType string

const (
	VehicleCar             VehicleType = "car"
	VehicleBike            VehicleType = "bike"
	VehiclePublicTransport VehicleType = "public_transport"
	VehicleNone            VehicleType = "none"
)

// DietaryPreference identifies the household diet style.
type DietaryPreference string

const (
	DietNonVegetarian DietaryPreference = "non_vegetarian"
	DietFlexitarian   DietaryPreference = "flexitarian"
	DietVegetarian    DietaryPreference = "vegetarian"
	DietVegan         DietaryPreference = "vegan"
)

// RecyclingHabit captures how consistently household waste is recycled.
type RecyclingHabit string

const (
	RecyclingAlways    RecyclingHabit = "always"
	RecyclingSometimes RecyclingHabit = "sometimes"
	RecyclingNever     RecyclingHabit = "never"
)

// HomeOwnership distinguishes owners from renters for applicability checks.
type HomeOwnership string

const (
	OwnershipOwn  HomeOwnership = "own"
	OwnershipRent HomeOwnership = "rent"
)

// TimeAvailability reflects how much spare time the user reports.
type TimeAvailability string

const (
	TimeLow    TimeAvailability = "low"
	TimeMedium TimeAvailability = "medium"
	TimeHigh   TimeAvailability = "high"
)

// Profile is the immutable lifestyle snapshot a plan is generated from.
type Profile struct {
	CommuteKmPerDay            float64           `json:"commuteKmPerDay"`
	VehicleType                VehicleType       `json:"vehicleType"`
	MonthlyElectricityKWh      float64           `json:"monthlyElectricityKwh"`
	Age                        int               `json:"age"`
	City                       string            `json:"city"`
	Diet                       DietaryPreference `json:"diet"`
	MeatMealsPerWeek           int               `json:"meatMealsPerWeek"`
	HasGarden                  bool              `json:"hasGarden"`
	HomeOwnership              HomeOwnership     `json:"homeOwnership"`
	HouseholdSize              int               `json:"householdSize"`
	ACUsageHoursPerDay         float64           `json:"acUsageHoursPerDay"`
	WasteRecycling             RecyclingHabit    `json:"wasteRecycling"`
	MonthlyGroceryBill         float64           `json:"monthlyGroceryBill"`
	WillingnessChangeDiet      int               `json:"willingnessChangeDiet"`
	WillingnessPublicTransport int               `json:"willingnessPublicTransport"`
	TimeAvailability           TimeAvailability  `json:"timeAvailability"`
}

// Breakdown itemises the annual estimate per emission source.
type Breakdown struct {
	TransportKg         float64 `json:"transportKg"`
	ElectricityKg       float64 `json:"electricityKg"`
	ACKg                float64 `json:"acKg"`
	DietKg              float64 `json:"dietKg"`
	WasteKg             float64 `json:"wasteKg"`
	HouseholdMultiplier float64 `json:"householdMultiplier"`
}

// Estimate is the annual footprint derived from a profile.
type Estimate struct {
	AnnualCO2Kg float64   `json:"annualCo2Kg"`
	TreesNeeded int       `json:"treesNeeded"`
	Breakdown   Breakdown `json:"breakdown"`
}

// Validate rejects out-of-range or unknown field values. The estimator and
// scorer assume profiles have passed this check.
func (p Profile) Validate() error {
	switch p.VehicleType {
	case VehicleCar, VehicleBike, VehiclePublicTransport, VehicleNone:
	default:
		return errors.New("unknown vehicle type")
	}
	switch p.Diet {
	case DietNonVegetarian, DietFlexitarian, DietVegetarian, DietVegan:
	default:
		return errors.New("unknown dietary preference")
	}
	switch p.WasteRecycling {
	case RecyclingAlways, RecyclingSometimes, RecyclingNever:
	default:
		return errors.New("unknown waste recycling habit")
	}
	switch p.HomeOwnership {
	case OwnershipOwn, OwnershipRent:
	default:
		return errors.New("unknown home ownership")
	}
	switch p.TimeAvailability {
	case TimeLow, TimeMedium, TimeHigh:
	default:
		return errors.New("unknown time availability")
	}
	if p.CommuteKmPerDay < 0 {
		return errors.New("commuteKmPerDay cannot be negative")
	}
	if p.MonthlyElectricityKWh < 0 {
		return errors.New("monthlyElectricityKwh cannot be negative")
	}
	if p.MeatMealsPerWeek < 0 || p.MeatMealsPerWeek > 21 {
		return errors.New("meatMealsPerWeek must be between 0 and 21")
	}
	if p.HouseholdSize < 1 {
		return errors.New("householdSize must be at least 1")
	}
	if p.ACUsageHoursPerDay < 0 || p.ACUsageHoursPerDay > 24 {
		return errors.New("acUsageHoursPerDay must be between 0 and 24")
	}
	if p.MonthlyGroceryBill < 0 {
		return errors.New("monthlyGroceryBill cannot be negative")
	}
	if p.WillingnessChangeDiet < 1 || p.WillingnessChangeDiet > 5 {
		return errors.New("willingnessChangeDiet must be between 1 and 5")
	}
	if p.WillingnessPublicTransport < 1 || p.WillingnessPublicTransport > 5 {
		return errors.New("willingnessPublicTransport must be between 1 and 5")
	}
	return nil
}
