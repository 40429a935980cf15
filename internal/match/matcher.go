// Package match decides whether a pantry item can stand in for a recipe
// ingredient. Strategies are tried in a fixed priority order and the first
// one that fires wins; reordering them changes outcomes, so don't.
package match

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"pantry-planner/internal/category"
	"pantry-planner/internal/naming"
)

// Common substitution terms per category. A category-level match only counts
// when one of these appears in both names.
var categorySubstitutions = map[string][]string{
	"vegetables":        {"onion", "shallot", "scallion", "leek"},
	"dairy":             {"milk", "cream", "yogurt", "buttermilk"},
	"oils_fats":         {"oil", "butter", "ghee"},
	"spices_condiments": {"salt", "pepper", "spice", "seasoning"},
	"grains_cereals":    {"flour", "wheat", "rice", "grain"},
}

// SimilarityFunc scores two normalized strings in [0,1].
type SimilarityFunc func(a, b string) float64

// Matcher evaluates the layered matching strategies. It is stateless apart
// from its read-only collaborators and safe for concurrent use.
type Matcher struct {
	categorizer *category.Categorizer
	similarity  SimilarityFunc
}

// New creates a Matcher using Levenshtein similarity for the fuzzy tier.
func New(categorizer *category.Categorizer) *Matcher {
	return &Matcher{categorizer: categorizer, similarity: Similarity}
}

// NewWithSimilarity creates a Matcher with a custom similarity function.
// A nil fn falls back to token-overlap ratio rather than disabling the tier.
func NewWithSimilarity(categorizer *category.Categorizer, fn SimilarityFunc) *Matcher {
	if fn == nil {
		fn = tokenOverlap
	}
	return &Matcher{categorizer: categorizer, similarity: fn}
}

// Match reports whether pantryName can satisfy ingredientName, with a
// confidence in [0,1]. substitutes are the ingredient's configured
// substitute names. The first strategy that fires determines the result:
//
//  1. normalized equality            -> 1.0
//  2. substring either way           -> 0.8
//  3. token overlap > 0.5            -> overlap ratio
//  4. same category + shared term    -> 0.6
//  5. substitute term in both names  -> 0.7, substring of either -> 0.6
//  6. fuzzy similarity > 0.7         -> similarity
func (m *Matcher) Match(pantryName, ingredientName string, substitutes []string) (bool, float64) {
	pn := naming.Normalize(pantryName)
	in := naming.Normalize(ingredientName)

	if in == pn {
		return true, 1.0
	}

	if pn != "" && in != "" && (strings.Contains(pn, in) || strings.Contains(in, pn)) {
		return true, 0.8
	}

	if overlap := tokenOverlap(pn, in); overlap > 0.5 {
		return true, overlap
	}

	if ok := m.categoryMatch(pantryName, ingredientName, pn, in); ok {
		return true, 0.6
	}

	if ok, conf := substituteMatch(pn, in, substitutes); ok {
		return true, conf
	}

	if sim := m.similarity(pn, in); sim > 0.7 {
		return true, sim
	}

	return false, 0.0
}

// categoryMatch fires when both names classify into the same non-unknown
// category with confidence > 0.7 each and share a substitution term.
func (m *Matcher) categoryMatch(pantryName, ingredientName, pn, in string) bool {
	pCat, pConf := m.categorizer.Categorize(pantryName)
	iCat, iConf := m.categorizer.Categorize(ingredientName)

	if pCat != iCat || pCat == category.Unknown || pConf <= 0.7 || iConf <= 0.7 {
		return false
	}

	for _, term := range categorySubstitutions[pCat] {
		if strings.Contains(pn, term) && strings.Contains(in, term) {
			return true
		}
	}
	return false
}

func substituteMatch(pn, in string, substitutes []string) (bool, float64) {
	// A substitute term appearing on both sides is a stronger signal than a
	// one-sided substring hit.
	both := func(term string) bool {
		t := strings.ToLower(term)
		return strings.Contains(pn, t) && strings.Contains(in, t)
	}
	for _, sub := range substitutes {
		if both(sub) {
			return true, 0.7
		}
	}

	for _, sub := range substitutes {
		sn := naming.Normalize(sub)
		if sn == "" {
			continue
		}
		if strings.Contains(pn, sn) || (pn != "" && strings.Contains(sn, pn)) {
			return true, 0.6
		}
	}
	return false, 0.0
}

// Similarity is the default fuzzy tier: a normalized Levenshtein ratio in
// [0,1], 1.0 meaning identical strings.
func Similarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}

// tokenOverlap is the Jaccard ratio of the whitespace token sets.
func tokenOverlap(a, b string) float64 {
	at := naming.Tokens(a)
	bt := naming.Tokens(b)
	if len(at) == 0 && len(bt) == 0 {
		return 0.0
	}

	intersection := 0
	for tok := range at {
		if _, ok := bt[tok]; ok {
			intersection++
		}
	}
	union := len(at) + len(bt) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}
