// Package category classifies grocery item names into a fixed set of
// categories using keyword and pattern tables. The tables are read-only, so
// one Categorizer can be shared freely.
package category

import (
	"regexp"
	"strings"
)

// Unknown is returned when no category table matches a name.
const Unknown = "unknown"

type categoryDef struct {
	keywords []string
	patterns []*regexp.Regexp
}

// Order in which categories are evaluated. Ties keep the earliest entry, so
// the order is part of the classifier's behavior.
var categoryOrder = []string{
	"fruits", "vegetables", "dairy", "meat_fish", "bakery", "grains_cereals",
	"legumes", "spices_condiments", "oils_fats", "beverages", "snacks_sweets",
	"frozen", "household",
}

// Categorizer scores item names against the category tables. Construct once
// with New and pass by handle into whatever needs it.
type Categorizer struct {
	categories map[string]categoryDef

	// Whole-word regexes precompiled per keyword so Categorize stays cheap
	// inside matching loops.
	wordPatterns map[string]*regexp.Regexp

	// Default shelf life per category, in days. Used to predict an expiry
	// date for items added without one.
	shelfLifeDays map[string]int
}

// New builds a Categorizer with the built-in tables.
func New() *Categorizer {
	c := &Categorizer{
		categories: map[string]categoryDef{
			"fruits": {
				keywords: []string{
					"apple", "banana", "orange", "mango", "grape", "strawberry", "blueberry",
					"pineapple", "watermelon", "melon", "papaya", "guava", "pomegranate",
					"kiwi", "peach", "pear", "plum", "cherry", "apricot", "lemon", "lime",
					"coconut", "avocado", "fig", "date", "raisin", "cranberry",
				},
				patterns: compile(`\b(fruit|fruits)\b`, `\b\w+berry\b`),
			},
			"vegetables": {
				keywords: []string{
					"tomato", "onion", "potato", "carrot", "cabbage", "spinach", "lettuce",
					"broccoli", "cauliflower", "cucumber", "bell pepper", "capsicum",
					"eggplant", "brinjal", "okra", "peas", "beans", "corn", "beetroot",
					"radish", "turnip", "ginger", "garlic", "chilli", "chili",
					"pepper", "mushroom", "celery", "asparagus", "zucchini",
					"squash", "pumpkin", "sweet potato", "drumstick",
				},
				patterns: compile(`\b(vegetable|vegetables|veggie|veggies)\b`, `\b\w+root\b`, `\bchil+i\b`),
			},
			"dairy": {
				keywords: []string{
					"milk", "cheese", "butter", "yogurt", "yoghurt", "curd", "cream",
					"paneer", "ghee", "lassi", "buttermilk", "ice cream", "cottage cheese",
					"mozzarella", "cheddar", "parmesan", "feta",
				},
				patterns: compile(`\b(dairy|milk)\b`, `\bcheese\b`),
			},
			"meat_fish": {
				keywords: []string{
					"chicken", "mutton", "beef", "pork", "lamb", "fish", "salmon", "tuna",
					"prawns", "shrimp", "crab", "lobster", "eggs", "egg", "bacon", "ham",
					"sausage", "meat", "turkey", "duck",
				},
				patterns: compile(`\b(meat|fish|seafood|poultry)\b`, `\begg[s]?\b`),
			},
			"bakery": {
				keywords: []string{
					"bread", "bun", "pav", "baguette", "croissant", "bagel", "roll",
					"toast", "loaf", "roti", "chapati", "naan", "paratha", "kulcha",
				},
				patterns: compile(`\b(bread|bun|pav|roti|chapati)\b`),
			},
			"grains_cereals": {
				keywords: []string{
					"rice", "wheat", "flour", "atta", "maida", "pasta", "noodles",
					"oats", "quinoa", "barley", "millet", "ragi", "jowar", "bajra",
					"cereal", "cornflakes", "muesli", "granola", "biscuit", "cookie",
					"cracker", "rusk",
				},
				patterns: compile(`\b(grain|grains|cereal|flour)\b`, `\b\w*atta\b`),
			},
			"legumes": {
				keywords: []string{
					"dal", "lentil", "chickpea", "chana", "rajma", "kidney bean",
					"black bean", "soybean", "tofu", "tempeh", "hummus",
					"moong", "toor", "urad", "masoor",
				},
				patterns: compile(`\b(dal|lentil|bean|legume)\b`, `\b\w+dal\b`),
			},
			"spices_condiments": {
				keywords: []string{
					"salt", "sugar", "pepper", "turmeric", "cumin", "coriander", "cardamom",
					"cinnamon", "clove", "nutmeg", "bay leaf", "oregano", "basil", "thyme",
					"rosemary", "paprika", "chili powder", "garam masala", "curry powder",
					"vinegar", "soy sauce", "ketchup", "mustard", "mayonnaise", "pickle",
					"jam", "jelly", "honey", "syrup", "sauce",
				},
				patterns: compile(`\b(spice|spices|masala|powder|sauce)\b`, `\b\w+masala\b`),
			},
			"oils_fats": {
				keywords: []string{
					"oil", "olive oil", "coconut oil", "sunflower oil", "mustard oil",
					"sesame oil", "groundnut oil", "ghee", "butter", "margarine",
					"cooking oil", "vegetable oil",
				},
				patterns: compile(`\b(oil|ghee|fat)\b`, `\b\w+oil\b`),
			},
			"beverages": {
				keywords: []string{
					"water", "juice", "tea", "coffee", "soda", "cola",
					"energy drink", "coconut water", "lemonade", "smoothie", "shake", "lassi",
				},
				patterns: compile(`\b(drink|beverage|juice|tea|coffee)\b`, `\b\w+juice\b`),
			},
			"snacks_sweets": {
				keywords: []string{
					"chips", "crackers", "nuts", "almonds", "cashews", "peanuts", "walnuts",
					"chocolate", "candy", "sweet", "mithai", "laddu", "barfi", "halwa",
					"cake", "pastry", "donut", "muffin", "cookies", "biscuits",
				},
				patterns: compile(`\b(snack|sweet|chocolate|candy|nuts)\b`, `\b\w+nuts?\b`),
			},
			"frozen": {
				keywords: []string{
					"frozen", "ice cream", "popsicle", "ice",
				},
				patterns: compile(`\b(frozen|ice)\b`),
			},
			"household": {
				keywords: []string{
					"detergent", "soap", "shampoo", "toothpaste", "tissue", "toilet paper",
					"cleaning", "disinfectant", "bleach", "fabric softener",
				},
				patterns: compile(`\b(cleaning|soap|detergent)\b`),
			},
		},
		shelfLifeDays: map[string]int{
			"fruits":            7,
			"vegetables":        5,
			"dairy":             7,
			"meat_fish":         3,
			"bakery":            4,
			"grains_cereals":    365,
			"legumes":           730,
			"spices_condiments": 730,
			"oils_fats":         365,
			"beverages":         30,
			"snacks_sweets":     180,
			"frozen":            90,
			"household":         365,
		},
	}

	c.wordPatterns = make(map[string]*regexp.Regexp)
	for _, def := range c.categories {
		for _, kw := range def.keywords {
			if _, ok := c.wordPatterns[kw]; !ok {
				c.wordPatterns[kw] = regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
			}
		}
	}
	return c
}

// Categorize returns the best-matching category for an item name with a
// confidence in [0,1], or ("unknown", 0) when nothing matches.
//
// Scoring per category: each contained keyword adds 1.0 on a whole-word hit
// or 0.5 on a substring hit, each pattern hit adds 0.8, and the sum is
// normalized by the number of criteria that fired.
func (c *Categorizer) Categorize(itemName string) (string, float64) {
	if itemName == "" {
		return Unknown, 0.0
	}

	name := strings.ToLower(strings.TrimSpace(itemName))
	bestCategory := Unknown
	bestScore := 0.0

	for _, category := range categoryOrder {
		def := c.categories[category]
		score := 0.0
		matched := 0

		for _, keyword := range def.keywords {
			if !strings.Contains(name, keyword) {
				continue
			}
			matched++
			if c.wordPatterns[keyword].MatchString(name) {
				score += 1.0
			} else {
				score += 0.5
			}
		}

		for _, pattern := range def.patterns {
			if pattern.MatchString(name) {
				matched++
				score += 0.8
			}
		}

		if matched > 0 {
			score /= float64(matched)
		}
		if score > bestScore {
			bestScore = score
			bestCategory = category
		}
	}

	if bestScore > 1.0 {
		bestScore = 1.0
	}
	return bestCategory, bestScore
}

// PredictExpiryDays estimates shelf life in days for an item of the given
// category. Canned/dried goods get double the base, fresh produce half.
// Returns 0 when the category has no default.
func (c *Categorizer) PredictExpiryDays(category, itemName string) int {
	base, ok := c.shelfLifeDays[category]
	if !ok {
		return 0
	}

	name := strings.ToLower(itemName)
	for _, word := range []string{"canned", "packaged", "dried", "powder"} {
		if strings.Contains(name, word) {
			return base * 2
		}
	}
	for _, word := range []string{"fresh", "organic", "ripe"} {
		if strings.Contains(name, word) {
			if half := base / 2; half > 1 {
				return half
			}
			return 1
		}
	}
	return base
}

// Categories lists the known category labels in evaluation order.
func (c *Categorizer) Categories() []string {
	out := make([]string, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

func compile(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(p)
	}
	return out
}
