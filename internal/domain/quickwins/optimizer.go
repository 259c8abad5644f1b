package quickwins

import "math"

// Result is the outcome of one knapsack run.
type Result struct {
	TotalSavingsKg float64       `json:"totalSavingsKg"`
	DifficultyUsed int           `json:"difficultyUsed"`
	MaxDifficulty  int           `json:"maxDifficulty"`
	Actions        []QuickAction `json:"actions"`
}

// Optimize solves the 0/1 knapsack over the given actions: maximise carbon
// saved subject to the difficulty budget. The budget must already be
// validated by the caller. Deterministic.
func Optimize(budget int, actions []QuickAction) Result {
	n := len(actions)
	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, budget+1)
	}

	for i := 1; i <= n; i++ {
		weight := actions[i-1].Difficulty
		value := actions[i-1].CarbonSavedKg
		for w := 0; w <= budget; w++ {
			dp[i][w] = dp[i-1][w]
			if weight <= w {
				if candidate := value + dp[i-1][w-weight]; candidate > dp[i][w] {
					dp[i][w] = candidate
				}
			}
		}
	}

	var selected []QuickAction
	w := budget
	for i := n; i > 0; i-- {
		if dp[i][w] != dp[i-1][w] {
			selected = append(selected, actions[i-1])
			w -= actions[i-1].Difficulty
		}
	}
	// Backtracking walks last-to-first; reverse so the easiest come first.
	for i, j := 0, len(selected)-1; i < j; i, j = i+1, j-1 {
		selected[i], selected[j] = selected[j], selected[i]
	}

	return Result{
		TotalSavingsKg: math.Round(dp[n][budget]*100) / 100,
		DifficultyUsed: budget - w,
		MaxDifficulty:  budget,
		Actions:        selected,
	}
}
