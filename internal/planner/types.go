// Package planner is the recipe matching and meal-planning engine: it scores
// the recipe catalog against a pantry snapshot, greedily assembles a
// multi-day plan, and exposes both through a suggestion facade.
package planner

import (
	"math"

	"pantry-planner/internal/inventory"
	"pantry-planner/internal/recipe"
)

// MatchStatus marks an ingredient as matched or missing in a scoring pass.
type MatchStatus string

const (
	StatusMatched MatchStatus = "matched"
	StatusMissing MatchStatus = "missing"
)

// MatchDetail links a recipe ingredient to the best pantry item found for it.
type MatchDetail struct {
	Item         inventory.Item `json:"pantry_item"`
	Confidence   float64        `json:"confidence"`
	AvailableQty float64        `json:"available_qty"` // converted to the ingredient's unit
	RequiredQty  float64        `json:"required_qty"`
	Coverage     float64        `json:"coverage"` // min(1, available/required)
	Expiring     bool           `json:"is_expiring"`
	DaysLeft     *int           `json:"days_left,omitempty"`
	UnitMatch    bool           `json:"unit_match"`
}

// IngredientMatch is the per-ingredient outcome of a scoring pass.
type IngredientMatch struct {
	Ingredient string       `json:"ingredient"`
	Status     MatchStatus  `json:"status"`
	Match      *MatchDetail `json:"match,omitempty"`
}

// MatchInfo aggregates the per-ingredient outcomes for one recipe. It is
// created fresh per scoring call and never persisted.
type MatchInfo struct {
	IngredientMatches   []IngredientMatch `json:"ingredient_matches"`
	CoverageRatio       float64           `json:"coverage_ratio"`
	AvgConfidence       float64           `json:"avg_confidence"`
	ExpiringIngredients int               `json:"expiring_ingredients"`
	MissingIngredients  int               `json:"missing_ingredients"`
	EstimatedPortions   int               `json:"estimated_portions"`
	Nutrition           NutritionEstimate `json:"nutrition_estimate"`
}

// ScoredRecipe pairs a recipe with its score and match detail.
type ScoredRecipe struct {
	Score  float64       `json:"score"`
	Recipe recipe.Recipe `json:"recipe"`
	Match  MatchInfo     `json:"match_info"`
}

// PlanEntry is one recipe placed into the meal plan, carrying the adjusted
// score it was accepted with.
type PlanEntry struct {
	Title               string              `json:"title"`
	TimeMin             int                 `json:"time_min"`
	Difficulty          string              `json:"difficulty"`
	Tags                []string            `json:"tags,omitempty"`
	Score               float64             `json:"score"`
	ExpiringIngredients int                 `json:"expiring_ingredients"`
	CoverageRatio       float64             `json:"coverage_ratio"`
	EstimatedPortions   int                 `json:"estimated_portions"`
	Nutrition           NutritionEstimate   `json:"nutrition"`
	Ingredients         []recipe.Ingredient `json:"ingredients"`
}

// NutritionEstimate is a coarse keyword-derived guess, not a database lookup.
type NutritionEstimate struct {
	CaloriesEstimate int     `json:"calories_estimate"`
	ProteinLevel     string  `json:"protein_level"`
	CarbLevel        string  `json:"carb_level"`
	FatLevel         string  `json:"fat_level"`
	FiberLevel       string  `json:"fiber_level"`
	HealthinessScore float64 `json:"healthiness_score"`
}

// Preferences tune scoring bonuses. Zero values fall back to the documented
// defaults via the accessor methods.
type Preferences struct {
	MaxCookTime   int      `json:"max_cook_time,omitempty"`
	PreferredTags []string `json:"preferred_tags,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty"`
}

// DefaultMaxCookTime is the cook-time bonus threshold in minutes.
const DefaultMaxCookTime = 60

// MaxCookTimeOrDefault returns the configured threshold or the default for
// malformed (non-positive) values.
func (p Preferences) MaxCookTimeOrDefault() int {
	if p.MaxCookTime <= 0 {
		return DefaultMaxCookTime
	}
	return p.MaxCookTime
}

// DifficultyOrDefault returns the preferred difficulty or "medium".
func (p Preferences) DifficultyOrDefault() string {
	if p.Difficulty == "" {
		return recipe.DefaultDifficulty
	}
	return p.Difficulty
}

// IsZero reports whether no preference was supplied at all.
func (p Preferences) IsZero() bool {
	return p.MaxCookTime == 0 && len(p.PreferredTags) == 0 && p.Difficulty == ""
}

// round2 rounds display values the way the rest of the app presents them.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
