package clipper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"pantry-planner/internal/recipe"
)

// Clipper fetches recipe web pages and extracts structured recipes.
type Clipper struct {
	client *http.Client
}

// New creates a Clipper with a sane fetch timeout.
func New() *Clipper {
	return &Clipper{
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// ClipURL fetches the URL and extracts the recipe it describes.
func (c *Clipper) ClipURL(ctx context.Context, url string) (*recipe.Recipe, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch content: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch URL: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	rec, err := extract(doc)
	if err != nil {
		return nil, err
	}
	rec.SourceURL = url
	return rec, nil
}

// Extract parses a recipe out of raw HTML. It tries schema.org JSON-LD
// first, then microdata attributes, then a plain heading heuristic.
func Extract(html string) (*recipe.Recipe, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	return extract(doc)
}

func extract(doc *goquery.Document) (*recipe.Recipe, error) {
	if rec := fromJSONLD(doc); rec != nil {
		return rec, nil
	}
	if rec := fromMicrodata(doc); rec != nil {
		return rec, nil
	}
	if rec := fromHeadings(doc); rec != nil {
		return rec, nil
	}
	return nil, fmt.Errorf("no recipe found in page")
}

// ldRecipe mirrors the schema.org Recipe fields we care about. recipeYield
// and keywords come in several shapes in the wild, so they stay loose.
type ldRecipe struct {
	Type             any               `json:"@type"`
	Name             string            `json:"name"`
	RecipeIngredient []string          `json:"recipeIngredient"`
	Ingredients      []string          `json:"ingredients"`
	TotalTime        string            `json:"totalTime"`
	Keywords         any               `json:"keywords"`
	RecipeCuisine    any               `json:"recipeCuisine"`
	Graph            []json.RawMessage `json:"@graph"`
}

func fromJSONLD(doc *goquery.Document) *recipe.Recipe {
	var found *recipe.Recipe
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if rec := decodeLD([]byte(s.Text())); rec != nil {
			found = rec
			return false
		}
		return true
	})
	return found
}

// decodeLD handles the three common JSON-LD layouts: a single object, a
// top-level array, and an object wrapping an @graph array.
func decodeLD(data []byte) *recipe.Recipe {
	data = []byte(strings.TrimSpace(string(data)))
	if len(data) == 0 {
		return nil
	}

	if data[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return nil
		}
		for _, item := range items {
			if rec := decodeLD(item); rec != nil {
				return rec
			}
		}
		return nil
	}

	var ld ldRecipe
	if err := json.Unmarshal(data, &ld); err != nil {
		return nil
	}
	for _, node := range ld.Graph {
		if rec := decodeLD(node); rec != nil {
			return rec
		}
	}
	if !isRecipeType(ld.Type) {
		return nil
	}

	lines := ld.RecipeIngredient
	if len(lines) == 0 {
		lines = ld.Ingredients
	}
	if ld.Name == "" || len(lines) == 0 {
		return nil
	}

	rec := &recipe.Recipe{
		Title:   ld.Name,
		TimeMin: parseISODuration(ld.TotalTime),
		Tags:    ldTags(ld.Keywords, ld.RecipeCuisine),
	}
	for _, line := range lines {
		rec.Ingredients = append(rec.Ingredients, ParseIngredient(line))
	}
	return rec
}

func isRecipeType(t any) bool {
	switch v := t.(type) {
	case string:
		return v == "Recipe"
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && s == "Recipe" {
				return true
			}
		}
	}
	return false
}

func ldTags(keywords, cuisine any) []string {
	var tags []string
	var add func(v any)
	add = func(v any) {
		switch t := v.(type) {
		case string:
			for _, part := range strings.Split(t, ",") {
				if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
					tags = append(tags, part)
				}
			}
		case []any:
			for _, item := range t {
				add(item)
			}
		}
	}
	add(keywords)
	add(cuisine)
	return tags
}

func fromMicrodata(doc *goquery.Document) *recipe.Recipe {
	var lines []string
	doc.Find(`[itemprop="recipeIngredient"], [itemprop="ingredients"]`).Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			lines = append(lines, text)
		}
	})
	if len(lines) == 0 {
		return nil
	}

	title := strings.TrimSpace(doc.Find(`[itemtype$="/Recipe"] [itemprop="name"]`).First().Text())
	if title == "" {
		title = pageTitle(doc)
	}
	if title == "" {
		return nil
	}

	rec := &recipe.Recipe{Title: title}
	for _, line := range lines {
		rec.Ingredients = append(rec.Ingredients, ParseIngredient(line))
	}
	return rec
}

// fromHeadings is the last resort: the first list following a heading that
// mentions ingredients.
func fromHeadings(doc *goquery.Document) *recipe.Recipe {
	var lines []string
	doc.Find("h1, h2, h3, h4").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !strings.Contains(strings.ToLower(s.Text()), "ingredient") {
			return true
		}
		s.NextAllFiltered("ul, ol").First().Find("li").Each(func(_ int, li *goquery.Selection) {
			if text := strings.TrimSpace(li.Text()); text != "" {
				lines = append(lines, text)
			}
		})
		return len(lines) == 0
	})
	if len(lines) == 0 {
		return nil
	}

	title := pageTitle(doc)
	if title == "" {
		return nil
	}

	rec := &recipe.Recipe{Title: title}
	for _, line := range lines {
		rec.Ingredients = append(rec.Ingredients, ParseIngredient(line))
	}
	return rec
}

func pageTitle(doc *goquery.Document) string {
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())
	// Drop common "Recipe Name | Site Name" suffixes.
	for _, sep := range []string{" | ", " - ", " – "} {
		if idx := strings.Index(title, sep); idx > 0 {
			title = title[:idx]
			break
		}
	}
	return strings.TrimSpace(title)
}

var ingredientLineRe = regexp.MustCompile(`^(\d+(?:[.,]\d+)?(?:\s*/\s*\d+)?)\s*(.*)$`)

var unitAliases = map[string]string{
	"g": "g", "gm": "g", "gram": "g", "grams": "g",
	"kg": "kg", "kilo": "kg", "kilogram": "kg", "kilograms": "kg",
	"ml": "ml", "milliliter": "ml", "milliliters": "ml", "millilitre": "ml",
	"l": "l", "lt": "l", "liter": "l", "liters": "l", "litre": "l", "litres": "l",
	"tsp": "tsp", "teaspoon": "tsp", "teaspoons": "tsp",
	"tbsp": "tbsp", "tablespoon": "tbsp", "tablespoons": "tbsp",
	"cup": "cup", "cups": "cup",
	"pc": "pcs", "pcs": "pcs", "piece": "pcs", "pieces": "pcs",
	"pinch": "pinch",
}

// ParseIngredient splits a free-text ingredient line into quantity, unit and
// name. Lines without a leading quantity keep qty zero; an unrecognized
// second token stays part of the name.
func ParseIngredient(line string) recipe.Ingredient {
	line = strings.TrimSpace(line)

	m := ingredientLineRe.FindStringSubmatch(line)
	if m == nil {
		return recipe.Ingredient{Name: line}
	}

	qty := parseQuantity(m[1])
	rest := strings.TrimSpace(m[2])

	unit := ""
	fields := strings.Fields(rest)
	if len(fields) > 1 {
		token := strings.ToLower(strings.TrimRight(fields[0], "."))
		if canonical, ok := unitAliases[token]; ok {
			unit = canonical
			rest = strings.TrimSpace(strings.Join(fields[1:], " "))
		}
	}
	rest = strings.TrimPrefix(rest, "of ")

	return recipe.Ingredient{Name: rest, Qty: qty, Unit: unit}
}

// parseQuantity accepts decimals with dot or comma and simple fractions
// like "1/2".
func parseQuantity(token string) float64 {
	token = strings.ReplaceAll(token, " ", "")
	if num, den, ok := strings.Cut(token, "/"); ok {
		n, err1 := strconv.ParseFloat(num, 64)
		d, err2 := strconv.ParseFloat(den, 64)
		if err1 == nil && err2 == nil && d != 0 {
			return n / d
		}
		return 0
	}
	token = strings.ReplaceAll(token, ",", ".")
	qty, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0
	}
	return qty
}

// parseISODuration converts a schema.org duration such as "PT1H30M" into
// minutes. Anything unparseable comes back as zero so the catalog default
// applies.
func parseISODuration(value string) int {
	value = strings.ToUpper(strings.TrimSpace(value))
	if !strings.HasPrefix(value, "PT") {
		return 0
	}
	value = strings.TrimPrefix(value, "PT")

	minutes := 0
	num := strings.Builder{}
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			num.WriteRune(r)
		case r == 'H':
			n, err := strconv.Atoi(num.String())
			if err != nil {
				return 0
			}
			minutes += n * 60
			num.Reset()
		case r == 'M':
			n, err := strconv.Atoi(num.String())
			if err != nil {
				return 0
			}
			minutes += n
			num.Reset()
		default:
			return 0
		}
	}
	return minutes
}
