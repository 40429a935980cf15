package planner

import "strings"

var (
	fatCalorieWords     = []string{"oil", "ghee", "butter"}
	carbCalorieWords    = []string{"rice", "flour", "bread"}
	proteinCalorieWords = []string{"meat", "paneer", "egg"}
	lightCalorieWords   = []string{"vegetable", "fruit"}

	proteinWords   = []string{"paneer", "dal", "lentil", "egg", "meat", "fish"}
	healthyWords   = []string{"vegetable", "fruit", "dal", "lentil"}
	unhealthyWords = []string{"oil", "sugar", "fried"}
)

// estimateNutrition derives a rough nutrition profile from the ingredient
// names alone. It is keyword driven and intentionally crude; the point is
// ranking hints, not dietary advice.
func estimateNutrition(matches []IngredientMatch) NutritionEstimate {
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.ToLower(m.Ingredient))
	}

	calories := 200
	for _, name := range names {
		switch {
		case containsAny(name, fatCalorieWords):
			calories += 100
		case containsAny(name, carbCalorieWords):
			calories += 150
		case containsAny(name, proteinCalorieWords):
			calories += 120
		case containsAny(name, lightCalorieWords):
			calories += 30
		}
	}

	proteinCount := countMatching(names, proteinWords)
	proteinLevel := "low"
	switch {
	case proteinCount >= 2:
		proteinLevel = "high"
	case proteinCount == 1:
		proteinLevel = "medium"
	}

	healthy := countMatching(names, healthyWords)
	unhealthy := countMatching(names, unhealthyWords)
	healthiness := 0.5 + float64(healthy)*0.2 - float64(unhealthy)*0.1
	if healthiness < 0.1 {
		healthiness = 0.1
	}
	if healthiness > 1.0 {
		healthiness = 1.0
	}

	return NutritionEstimate{
		CaloriesEstimate: calories,
		ProteinLevel:     proteinLevel,
		CarbLevel:        "medium",
		FatLevel:         "low",
		FiberLevel:       "medium",
		HealthinessScore: healthiness,
	}
}

func containsAny(name string, words []string) bool {
	for _, w := range words {
		if strings.Contains(name, w) {
			return true
		}
	}
	return false
}

func countMatching(names []string, words []string) int {
	count := 0
	for _, name := range names {
		if containsAny(name, words) {
			count++
		}
	}
	return count
}
