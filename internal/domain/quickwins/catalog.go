package quickwins

// QuickAction is one entry of the short-term "carbon diet" list. This
// catalog is fixed and independent of the seeded plan catalog.
type QuickAction struct {
	Name          string  `json:"name"`
	CarbonSavedKg float64 `json:"carbonSavedKg"`
	Difficulty    int     `json:"difficulty"`
}

// Catalog returns the quick actions, ordered easiest first.
func Catalog() []QuickAction {
	return []QuickAction{
		{Name: "Switch off appliances at the plug", CarbonSavedKg: 8, Difficulty: 1},
		{Name: "Carry a reusable water bottle", CarbonSavedKg: 4, Difficulty: 1},
		{Name: "Take shorter showers", CarbonSavedKg: 6.5, Difficulty: 1},
		{Name: "Use cold water for laundry", CarbonSavedKg: 9, Difficulty: 2},
		{Name: "Air-dry clothes instead of the dryer", CarbonSavedKg: 12, Difficulty: 2},
		{Name: "Skip one online delivery a week", CarbonSavedKg: 7.5, Difficulty: 2},
		{Name: "Go meat-free on Mondays", CarbonSavedKg: 15, Difficulty: 3},
		{Name: "Batch errands into one trip", CarbonSavedKg: 11, Difficulty: 3},
		{Name: "Work from home one extra day", CarbonSavedKg: 18, Difficulty: 3},
		{Name: "Swap five bulbs for LEDs", CarbonSavedKg: 10, Difficulty: 3},
		{Name: "Compost wet kitchen waste", CarbonSavedKg: 14, Difficulty: 4},
		{Name: "Commute by bus twice a week", CarbonSavedKg: 22, Difficulty: 4},
		{Name: "Install a low-flow showerhead", CarbonSavedKg: 16, Difficulty: 4},
		{Name: "Cycle to work once a week", CarbonSavedKg: 20, Difficulty: 5},
		{Name: "Host a zero-waste week at home", CarbonSavedKg: 25, Difficulty: 5},
	}
}
