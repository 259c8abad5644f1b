package planner

import (
	"math"
	"sort"

	"github.com/yanqian/carbon-planner/internal/domain/catalog"
	"github.com/yanqian/carbon-planner/internal/domain/footprint"
)

// sponsorCostPerTree is the rupee cost of sponsoring one tree for the
// remaining debt.
const sponsorCostPerTree = 300.0

func categoryCap(c catalog.Category) int {
	switch c {
	case catalog.CategoryEnergy:
		return 5
	case catalog.CategoryTransport:
		return 4
	case catalog.CategoryDiet:
		return 4
	case catalog.CategoryWaste:
		return 3
	case catalog.CategoryTreePlanting:
		return 3
	}
	return 3
}

// buildPlan scores, selects and buckets catalog actions for one profile.
// Ties in score keep catalog order (the sort is stable over the order the
// repository returned). Once a category hits its cap further actions from
// it are dropped with no backfill from other categories.
func buildPlan(actions []catalog.Action, profile footprint.Profile, estimate footprint.Estimate) ([]PhasePlan, Totals, ImpactSummary) {
	scored := make([]ScoredAction, 0, len(actions))
	for _, action := range actions {
		if !action.Active {
			continue
		}
		if s := Score(action, profile); s > 0 {
			scored = append(scored, ScoredAction{Action: action, Score: s})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	counts := make(map[catalog.Category]int)
	admitted := scored[:0]
	for _, candidate := range scored {
		if counts[candidate.Action.Category] >= categoryCap(candidate.Action.Category) {
			continue
		}
		counts[candidate.Action.Category]++
		admitted = append(admitted, candidate)
	}

	phases := bucketByPhase(admitted)
	totals := computeTotals(phases, estimate.TreesNeeded)
	summary := summarizeImpact(admitted)
	return phases, totals, summary
}

func bucketByPhase(admitted []ScoredAction) []PhasePlan {
	byPhase := make(map[catalog.Phase][]ScoredAction)
	for _, entry := range admitted {
		byPhase[entry.Action.Phase] = append(byPhase[entry.Action.Phase], entry)
	}

	phases := make([]PhasePlan, 0, 4)
	for _, phase := range catalog.Phases() {
		entries := byPhase[phase]
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Score > entries[j].Score
		})
		plan := PhasePlan{Phase: phase, Actions: entries}
		for _, entry := range entries {
			plan.MonthlySavings += entry.Action.MonthlySavings
			plan.UpfrontCost += entry.Action.UpfrontCost
			plan.AnnualCO2ReducedKg += entry.Action.CarbonSavedKgPerMonth * 12
		}
		phases = append(phases, plan)
	}
	return phases
}

func computeTotals(phases []PhasePlan, treesNeeded int) Totals {
	var totals Totals
	for _, phase := range phases {
		totals.MonthlySavings += phase.MonthlySavings
		totals.UpfrontCost += phase.UpfrontCost
		totals.AnnualCO2ReducedKg += phase.AnnualCO2ReducedKg
	}
	totals.YearlySavings = totals.MonthlySavings * 12
	totals.TreesReduced = totals.AnnualCO2ReducedKg / footprint.TreeAbsorptionKgPerYear
	totals.TreesRemaining = math.Max(0, float64(treesNeeded)-totals.TreesReduced)
	totals.SponsorshipCost = math.Round(totals.TreesRemaining * sponsorCostPerTree)
	totals.NetSavingsYear1 = totals.YearlySavings - totals.UpfrontCost - totals.SponsorshipCost
	return totals
}

type impactRule struct {
	category  catalog.Category
	needsTag  func(catalog.Tags) bool
	health    string
	community string
}

// impactRules is a fixed table keyed on category and authoring-time tags.
var impactRules = []impactRule{
	{
		category: catalog.CategoryDiet,
		health:   "More plant-forward meals improve everyday nutrition",
	},
	{
		category: catalog.CategoryEnergy,
		health:   "Efficient appliances and lighting lower indoor heat load",
	},
	{
		category: catalog.CategoryTransport,
		needsTag: func(t catalog.Tags) bool { return t.Cardio },
		health:   "Walking and cycling build cardiovascular fitness",
	},
	{
		category:  catalog.CategoryTransport,
		community: "Fewer private vehicle trips mean cleaner local air",
	},
	{
		category:  catalog.CategoryWaste,
		community: "Less household waste keeps the neighbourhood cleaner",
	},
	{
		category:  catalog.CategoryTreePlanting,
		community: "New trees add green cover and shade to your locality",
	},
}

func summarizeImpact(admitted []ScoredAction) ImpactSummary {
	var summary ImpactSummary
	for _, rule := range impactRules {
		for _, entry := range admitted {
			if entry.Action.Category != rule.category {
				continue
			}
			if rule.needsTag != nil && !rule.needsTag(entry.Action.Tags) {
				continue
			}
			if rule.health != "" {
				summary.HealthBenefits = appendUnique(summary.HealthBenefits, rule.health)
			}
			if rule.community != "" {
				summary.CommunityBenefits = appendUnique(summary.CommunityBenefits, rule.community)
			}
			break
		}
	}
	return summary
}

func appendUnique(items []string, value string) []string {
	for _, existing := range items {
		if existing == value {
			return items
		}
	}
	return append(items, value)
}
