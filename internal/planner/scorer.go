package planner

import (
	"sort"
	"strings"
	"time"

	"pantry-planner/internal/expiry"
	"pantry-planner/internal/inventory"
	"pantry-planner/internal/match"
	"pantry-planner/internal/recipe"
	"pantry-planner/internal/units"
)

// Score weights. Using up expiring stock outranks raw coverage, coverage
// outranks match confidence, and missing ingredients cost a mild penalty so
// almost-makeable recipes still surface.
const (
	expiringWeight   = 3.0
	coverageWeight   = 2.0
	confidenceWeight = 1.5
	missingPenalty   = 0.5

	cookTimeBonus   = 0.5
	tagBonus        = 0.3
	difficultyBonus = 0.2
)

// Scorer matches recipes against a pantry snapshot and ranks them.
type Scorer struct {
	matcher *match.Matcher
}

// NewScorer creates a Scorer around the given matcher.
func NewScorer(matcher *match.Matcher) *Scorer {
	return &Scorer{matcher: matcher}
}

// ScoreRecipes scores every recipe against the pantry snapshot and returns
// them sorted by descending score, ties keeping catalog order. Nothing is
// filtered out: zero- and negative-scoring recipes stay visible so callers
// can inspect what is missing. Neither the pantry nor the recipes are
// mutated.
func (s *Scorer) ScoreRecipes(recipes []recipe.Recipe, pantry []inventory.Item, today time.Time, prefs Preferences) []ScoredRecipe {
	scored := make([]ScoredRecipe, 0, len(recipes))
	for _, rec := range recipes {
		info, coverage, confidence := s.matchRecipe(rec, pantry, today)
		score := baseScore(info, coverage, confidence) + preferenceBonus(rec, prefs)
		scored = append(scored, ScoredRecipe{Score: score, Recipe: rec, Match: info})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// matchRecipe finds the best pantry match for each required ingredient and
// aggregates the results. The coverage ratio and average confidence are
// returned unrounded; MatchInfo carries their rounded display forms.
func (s *Scorer) matchRecipe(rec recipe.Recipe, pantry []inventory.Item, today time.Time) (MatchInfo, float64, float64) {
	total := len(rec.Ingredients)
	matches := make([]IngredientMatch, 0, total)

	matched := 0
	expiring := 0
	confidenceSum := 0.0

	for _, ing := range rec.Ingredients {
		best := s.bestMatch(ing, pantry, today)
		if best == nil {
			matches = append(matches, IngredientMatch{Ingredient: ing.Name, Status: StatusMissing})
			continue
		}
		matched++
		confidenceSum += best.Confidence
		if best.Expiring {
			expiring++
		}
		matches = append(matches, IngredientMatch{Ingredient: ing.Name, Status: StatusMatched, Match: best})
	}

	coverageRatio := 0.0
	if total > 0 {
		coverageRatio = float64(matched) / float64(total)
	}
	avgConfidence := 0.0
	if matched > 0 {
		avgConfidence = confidenceSum / float64(matched)
	}

	info := MatchInfo{
		IngredientMatches:   matches,
		CoverageRatio:       round2(coverageRatio),
		AvgConfidence:       round2(avgConfidence),
		ExpiringIngredients: expiring,
		MissingIngredients:  total - matched,
		EstimatedPortions:   estimatePortions(matches),
		Nutrition:           estimateNutrition(matches),
	}
	return info, coverageRatio, avgConfidence
}

// bestMatch scans the whole pantry and keeps the single item with the
// highest confidence. Ties keep the first item in pantry order; the pantry
// is never re-sorted.
func (s *Scorer) bestMatch(ing recipe.Ingredient, pantry []inventory.Item, today time.Time) *MatchDetail {
	requiredUnit := strings.ToLower(ing.Unit)

	var best *MatchDetail
	bestConfidence := 0.0

	for i := range pantry {
		item := pantry[i]
		ok, confidence := s.matcher.Match(item.Name, ing.Name, ing.Substitutes)
		if !ok || confidence <= bestConfidence {
			continue
		}
		bestConfidence = confidence

		available := units.Convert(item.Remaining, strings.ToLower(item.Unit), requiredUnit)
		status, daysLeft := expiry.Compute(item.Expiry, today)

		coverage := 0.0
		if ing.Qty > 0 {
			coverage = available / ing.Qty
			if coverage > 1.0 {
				coverage = 1.0
			}
		}

		best = &MatchDetail{
			Item:         item,
			Confidence:   confidence,
			AvailableQty: available,
			RequiredQty:  ing.Qty,
			Coverage:     coverage,
			Expiring:     expiry.Urgent(status),
			DaysLeft:     daysLeft,
			UnitMatch:    requiredUnit == strings.ToLower(item.Unit),
		}
	}
	return best
}

// baseScore uses the exact aggregates, never the rounded display values.
func baseScore(info MatchInfo, coverageRatio, avgConfidence float64) float64 {
	return expiringWeight*float64(info.ExpiringIngredients) +
		coverageWeight*coverageRatio +
		confidenceWeight*avgConfidence -
		missingPenalty*float64(info.MissingIngredients)
}

// preferenceBonus is additive only; preferences can never sink a recipe.
func preferenceBonus(rec recipe.Recipe, prefs Preferences) float64 {
	bonus := 0.0
	if rec.CookTime() <= prefs.MaxCookTimeOrDefault() {
		bonus += cookTimeBonus
	}
	for _, preferred := range prefs.PreferredTags {
		for _, tag := range rec.Tags {
			if tag == preferred {
				bonus += tagBonus
				break
			}
		}
	}
	if rec.DifficultyOrDefault() == prefs.DifficultyOrDefault() {
		bonus += difficultyBonus
	}
	return bonus
}

// estimatePortions is the floor of the tightest available/required ratio
// across matched ingredients, at least 1. With nothing matched it stays at
// the historical optimistic default of 2.
func estimatePortions(matches []IngredientMatch) int {
	minPortions := -1.0
	for _, m := range matches {
		if m.Status != StatusMatched || m.Match.RequiredQty <= 0 {
			continue
		}
		portions := m.Match.AvailableQty / m.Match.RequiredQty
		if minPortions < 0 || portions < minPortions {
			minPortions = portions
		}
	}
	if minPortions < 0 {
		return 2
	}
	if minPortions < 1 {
		return 1
	}
	return int(minPortions)
}
