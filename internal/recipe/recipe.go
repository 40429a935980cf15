// Package recipe holds the recipe catalog: the read-only recipe model and a
// JSON file-backed store for it.
package recipe

// Ingredient is one requirement of a recipe. Qty is in Unit; Substitutes are
// alternative names the matcher may accept.
type Ingredient struct {
	Name        string   `json:"name"`
	Qty         float64  `json:"qty"`
	Unit        string   `json:"unit,omitempty"`
	Substitutes []string `json:"sub,omitempty"`
}

// Recipe is a catalog entry. Title is the unique key used during planning.
type Recipe struct {
	ID          string       `json:"id,omitempty"`
	Title       string       `json:"title"`
	Ingredients []Ingredient `json:"ingredients"`
	Tags        []string     `json:"tags,omitempty"`
	TimeMin     int          `json:"time_min,omitempty"`
	Difficulty  string       `json:"difficulty,omitempty"`
	SourceURL   string       `json:"source_url,omitempty"`
}

// DefaultTimeMin is assumed when a recipe does not state a cooking time.
const DefaultTimeMin = 30

// DefaultDifficulty is assumed when a recipe does not state one.
const DefaultDifficulty = "medium"

// CookTime returns the cooking time with the default applied.
func (r Recipe) CookTime() int {
	if r.TimeMin <= 0 {
		return DefaultTimeMin
	}
	return r.TimeMin
}

// DifficultyOrDefault returns the difficulty with the default applied.
func (r Recipe) DifficultyOrDefault() string {
	if r.Difficulty == "" {
		return DefaultDifficulty
	}
	return r.Difficulty
}

// MainCategory is the first tag, used for variety checks during planning.
func (r Recipe) MainCategory() string {
	if len(r.Tags) == 0 {
		return "other"
	}
	return r.Tags[0]
}
