package planner

import (
	"testing"

	"pantry-planner/internal/recipe"
)

func scoredRecipe(title string, score float64, tags []string, matches ...IngredientMatch) ScoredRecipe {
	return ScoredRecipe{
		Score:  score,
		Recipe: recipe.Recipe{Title: title, Tags: tags},
		Match:  MatchInfo{IngredientMatches: matches},
	}
}

func TestPlanMealsVarietyPenalty(t *testing.T) {
	scored := []ScoredRecipe{
		scoredRecipe("Aloo Gobi", 5.0, []string{"curry"}),
		scoredRecipe("Chana Masala", 5.0, []string{"curry"}),
		scoredRecipe("Veg Pulao", 4.0, []string{"rice"}),
	}

	plan := PlanMeals(scored, 3)
	if len(plan) != 3 {
		t.Fatalf("expected 3 meals, got %d", len(plan))
	}
	if plan[0].Score != 5.0 {
		t.Errorf("first pick should keep its score, got %v", plan[0].Score)
	}
	// Second curry in a row loses 1.0 but still makes the plan.
	if plan[1].Title != "Chana Masala" || plan[1].Score != 4.0 {
		t.Errorf("expected Chana Masala at 4.0, got %q at %v", plan[1].Title, plan[1].Score)
	}
	if plan[2].Title != "Veg Pulao" || plan[2].Score != 4.0 {
		t.Errorf("expected Veg Pulao at 4.0, got %q at %v", plan[2].Title, plan[2].Score)
	}
}

func TestPlanMealsIngredientConflict(t *testing.T) {
	riceMatch := IngredientMatch{
		Ingredient: "rice",
		Status:     StatusMatched,
		Match:      &MatchDetail{RequiredQty: 300, AvailableQty: 500},
	}

	scored := []ScoredRecipe{
		scoredRecipe("Fried Rice", 5.0, []string{"rice"}, riceMatch),
		scoredRecipe("Rice Pudding", 5.0, []string{"dessert"}, riceMatch),
	}

	plan := PlanMeals(scored, 3)
	if len(plan) != 2 {
		t.Fatalf("expected 2 meals, got %d", len(plan))
	}
	// Fried Rice reserved 300 of 500, so the pudding's 300 overdraws.
	if plan[1].Score != 4.5 {
		t.Errorf("expected conflict-adjusted score 4.5, got %v", plan[1].Score)
	}
}

func TestPlanMealsSkipsNonPositiveAndDuplicates(t *testing.T) {
	scored := []ScoredRecipe{
		scoredRecipe("Pasta", 3.0, []string{"pasta"}),
		scoredRecipe("Pasta", 2.5, []string{"pasta"}),
		scoredRecipe("Soup", 0.0, []string{"soup"}),
		scoredRecipe("Toast", -1.0, []string{"snack"}),
	}

	plan := PlanMeals(scored, 3)
	if len(plan) != 1 {
		t.Fatalf("expected only the viable unique recipe, got %d meals", len(plan))
	}
	if plan[0].Title != "Pasta" {
		t.Errorf("expected Pasta, got %q", plan[0].Title)
	}
}

func TestPlanMealsDropsRecipeWhenPenaltiesSinkIt(t *testing.T) {
	scored := []ScoredRecipe{
		scoredRecipe("Dal Fry", 2.0, []string{"dal"}),
		scoredRecipe("Dal Tadka", 0.8, []string{"dal"}),
	}

	plan := PlanMeals(scored, 3)
	// 0.8 - 1.0 variety penalty goes non-positive.
	if len(plan) != 1 {
		t.Fatalf("expected the penalized recipe to be dropped, got %d meals", len(plan))
	}
}

func TestPlanMealsRespectsDayLimit(t *testing.T) {
	scored := []ScoredRecipe{
		scoredRecipe("A", 5.0, []string{"a"}),
		scoredRecipe("B", 4.0, []string{"b"}),
		scoredRecipe("C", 3.0, []string{"c"}),
		scoredRecipe("D", 2.0, []string{"d"}),
	}

	if got := len(PlanMeals(scored, 2)); got != 2 {
		t.Errorf("expected 2 meals, got %d", got)
	}
	// Zero days falls back to the default plan length.
	if got := len(PlanMeals(scored, 0)); got != DefaultPlanDays {
		t.Errorf("expected %d meals, got %d", DefaultPlanDays, got)
	}
}
