package planner

import (
	"context"
	"time"

	"go.uber.org/zap"

	"pantry-planner/internal/inventory"
	"pantry-planner/internal/recipe"
)

// DefaultTopN caps the suggestion list unless overridden.
const DefaultTopN = 5

// RecipeSource loads the recipe catalog.
type RecipeSource interface {
	Load(ctx context.Context) ([]recipe.Recipe, error)
}

// Suggestion is one recommended recipe with its match breakdown.
type Suggestion struct {
	Title               string              `json:"title"`
	Score               float64             `json:"score"`
	TimeMin             int                 `json:"time_min"`
	Difficulty          string              `json:"difficulty"`
	Tags                []string            `json:"tags"`
	Coverage            float64             `json:"coverage"`
	ExpiringIngredients int                 `json:"expiring_ingredients"`
	MissingIngredients  int                 `json:"missing_ingredients"`
	Nutrition           NutritionEstimate   `json:"nutrition"`
	EstimatedPortions   int                 `json:"estimated_portions"`
	Ingredients         []recipe.Ingredient `json:"ingredients"`
	IngredientMatches   []IngredientMatch   `json:"ingredient_matches"`
}

// Meta summarizes a suggestion run.
type Meta struct {
	TotalRecipesEvaluated int    `json:"total_recipes_evaluated"`
	ViableRecipes         int    `json:"viable_recipes"`
	PreferencesApplied    bool   `json:"preferences_applied"`
	Error                 string `json:"error,omitempty"`
}

// Result bundles the ranked suggestions with a multi-day plan.
type Result struct {
	Suggestions []Suggestion `json:"suggestions"`
	MealPlan    []PlanEntry  `json:"meal_plan"`
	Meta        Meta         `json:"meta"`
}

// Suggester ties the recipe catalog and scoring into one entry point.
type Suggester struct {
	recipes RecipeSource
	scorer  *Scorer
	logger  *zap.Logger
	topN    int
	now     func() time.Time
}

// NewSuggester creates a Suggester. A nil logger falls back to a no-op one.
func NewSuggester(recipes RecipeSource, scorer *Scorer, logger *zap.Logger) *Suggester {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Suggester{
		recipes: recipes,
		scorer:  scorer,
		logger:  logger,
		topN:    DefaultTopN,
		now:     time.Now,
	}
}

// SetTopN overrides how many suggestions Generate returns. Non-positive
// values are ignored.
func (s *Suggester) SetTopN(n int) {
	if n > 0 {
		s.topN = n
	}
}

// Generate scores the whole catalog against the given pantry snapshot and
// returns the top suggestions plus a greedy multi-day meal plan. The pantry
// is plain data: callers load it however they like and Generate never
// mutates it. Recipes with a non-positive score never appear as
// suggestions. A missing or unreadable catalog is not an error: it yields
// an empty result with the problem noted in the meta block.
func (s *Suggester) Generate(ctx context.Context, pantry []inventory.Item, prefs Preferences, days int) (*Result, error) {
	recipes, err := s.recipes.Load(ctx)
	if err != nil {
		s.logger.Warn("recipe catalog unreadable", zap.Error(err))
		recipes = nil
	}
	if len(recipes) == 0 {
		return &Result{
			Suggestions: []Suggestion{},
			MealPlan:    []PlanEntry{},
			Meta: Meta{
				PreferencesApplied: !prefs.IsZero(),
				Error:              "no recipes available",
			},
		}, nil
	}

	scored := s.scorer.ScoreRecipes(recipes, pantry, s.now(), prefs)

	viable := 0
	for _, sr := range scored {
		if sr.Score > 0 {
			viable++
		}
	}

	suggestions := make([]Suggestion, 0, s.topN)
	for _, sr := range scored {
		if len(suggestions) >= s.topN {
			break
		}
		if sr.Score <= 0 {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Title:               sr.Recipe.Title,
			Score:               round2(sr.Score),
			TimeMin:             sr.Recipe.TimeMin,
			Difficulty:          sr.Recipe.DifficultyOrDefault(),
			Tags:                sr.Recipe.Tags,
			Coverage:            sr.Match.CoverageRatio,
			ExpiringIngredients: sr.Match.ExpiringIngredients,
			MissingIngredients:  sr.Match.MissingIngredients,
			Nutrition:           sr.Match.Nutrition,
			EstimatedPortions:   sr.Match.EstimatedPortions,
			Ingredients:         sr.Recipe.Ingredients,
			IngredientMatches:   sr.Match.IngredientMatches,
		})
	}

	result := &Result{
		Suggestions: suggestions,
		MealPlan:    PlanMeals(scored, days),
		Meta: Meta{
			TotalRecipesEvaluated: len(recipes),
			ViableRecipes:         viable,
			PreferencesApplied:    !prefs.IsZero(),
		},
	}

	s.logger.Info("generated suggestions",
		zap.Int("recipes_evaluated", result.Meta.TotalRecipesEvaluated),
		zap.Int("viable", result.Meta.ViableRecipes),
		zap.Int("pantry_items", len(pantry)),
		zap.Int("suggestions", len(result.Suggestions)),
		zap.Int("planned_meals", len(result.MealPlan)),
	)
	return result, nil
}
