package planner

// DefaultPlanDays is how many meals a plan holds when the caller does not
// say otherwise.
const DefaultPlanDays = 3

const (
	varietyPenalty  = 1.0
	conflictPenalty = 0.5
)

// PlanMeals walks the scored recipes in rank order and greedily builds a
// plan of up to days meals. Each recipe title appears at most once, a recipe
// sharing its main category with the previous pick is penalized, and
// ingredients already reserved by earlier picks penalize recipes that would
// overdraw them. A recipe joins the plan only while its adjusted score stays
// positive. The input slice is not modified.
func PlanMeals(scored []ScoredRecipe, days int) []PlanEntry {
	if days <= 0 {
		days = DefaultPlanDays
	}

	plan := make([]PlanEntry, 0, days)
	usedTitles := make(map[string]struct{})
	lastCategory := ""
	reserved := make(map[string]float64)

	for _, sr := range scored {
		if len(plan) >= days {
			break
		}
		if sr.Score <= 0 {
			continue
		}
		if _, seen := usedTitles[sr.Recipe.Title]; seen {
			continue
		}

		adjusted := sr.Score
		category := sr.Recipe.MainCategory()
		if lastCategory != "" && category == lastCategory {
			adjusted -= varietyPenalty
		}
		adjusted -= conflictPenalty * float64(countConflicts(sr.Match.IngredientMatches, reserved))

		if adjusted <= 0 {
			continue
		}

		reserve(sr.Match.IngredientMatches, reserved)
		plan = append(plan, PlanEntry{
			Title:               sr.Recipe.Title,
			TimeMin:             sr.Recipe.TimeMin,
			Difficulty:          sr.Recipe.DifficultyOrDefault(),
			Tags:                sr.Recipe.Tags,
			Score:               round2(adjusted),
			ExpiringIngredients: sr.Match.ExpiringIngredients,
			CoverageRatio:       sr.Match.CoverageRatio,
			EstimatedPortions:   sr.Match.EstimatedPortions,
			Nutrition:           sr.Match.Nutrition,
			Ingredients:         sr.Recipe.Ingredients,
		})
		usedTitles[sr.Recipe.Title] = struct{}{}
		lastCategory = category
	}
	return plan
}

// countConflicts counts matched ingredients whose required quantity no
// longer fits alongside what earlier picks reserved.
func countConflicts(matches []IngredientMatch, reserved map[string]float64) int {
	conflicts := 0
	for _, m := range matches {
		if m.Status != StatusMatched || m.Match.RequiredQty <= 0 {
			continue
		}
		if reserved[m.Ingredient]+m.Match.RequiredQty > m.Match.AvailableQty {
			conflicts++
		}
	}
	return conflicts
}

// reserve records each matched ingredient's required quantity against the
// shared ledger. Reservations are uncapped; an accepted recipe books what it
// needs even past availability, and later recipes pay the conflict penalty.
func reserve(matches []IngredientMatch, reserved map[string]float64) {
	for _, m := range matches {
		if m.Status != StatusMatched || m.Match.RequiredQty <= 0 {
			continue
		}
		reserved[m.Ingredient] += m.Match.RequiredQty
	}
}
