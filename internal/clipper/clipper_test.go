package clipper

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"pantry-planner/internal/recipe"
)

const jsonLDPage = `<!DOCTYPE html>
<html><head><title>Paneer Butter Masala | Some Food Blog</title>
<script type="application/ld+json">
{
  "@context": "https://schema.org",
  "@type": "Recipe",
  "name": "Paneer Butter Masala",
  "totalTime": "PT45M",
  "keywords": "curry, dinner",
  "recipeIngredient": [
    "200 g paneer",
    "2 tomatoes",
    "1/2 tsp turmeric",
    "1 tbsp butter"
  ]
}
</script></head><body><h1>Paneer Butter Masala</h1></body></html>`

const microdataPage = `<!DOCTYPE html>
<html><head><title>Veg Pulao - Example Kitchen</title></head>
<body itemscope itemtype="https://schema.org/Recipe">
<h2 itemprop="name">Veg Pulao</h2>
<ul>
<li itemprop="recipeIngredient">2 cups of rice</li>
<li itemprop="recipeIngredient">1 onion</li>
</ul>
</body></html>`

const headingPage = `<!DOCTYPE html>
<html><head><title>Masala Chai - Example Kitchen</title></head>
<body>
<h1>Masala Chai</h1>
<p>A warming drink.</p>
<h2>Ingredients</h2>
<ul>
<li>250 ml milk</li>
<li>1 tsp tea leaves</li>
</ul>
<h2>Steps</h2>
<ol><li>Boil everything.</li></ol>
</body></html>`

func TestExtractJSONLD(t *testing.T) {
	rec, err := Extract(jsonLDPage)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if rec.Title != "Paneer Butter Masala" {
		t.Errorf("expected title, got %q", rec.Title)
	}
	if rec.TimeMin != 45 {
		t.Errorf("expected 45 minutes, got %d", rec.TimeMin)
	}
	if len(rec.Tags) != 2 || rec.Tags[0] != "curry" || rec.Tags[1] != "dinner" {
		t.Errorf("unexpected tags: %v", rec.Tags)
	}
	if len(rec.Ingredients) != 4 {
		t.Fatalf("expected 4 ingredients, got %d", len(rec.Ingredients))
	}

	first := rec.Ingredients[0]
	if first.Name != "paneer" || first.Qty != 200 || first.Unit != "g" {
		t.Errorf("unexpected first ingredient: %+v", first)
	}
	turmeric := rec.Ingredients[2]
	if turmeric.Name != "turmeric" || math.Abs(turmeric.Qty-0.5) > 1e-9 || turmeric.Unit != "tsp" {
		t.Errorf("unexpected turmeric ingredient: %+v", turmeric)
	}
}

func TestExtractGraphWrappedJSONLD(t *testing.T) {
	page := `<html><head><script type="application/ld+json">
	{"@context": "https://schema.org", "@graph": [
		{"@type": "WebPage", "name": "ignored"},
		{"@type": ["Recipe", "Thing"], "name": "Dal Tadka", "recipeIngredient": ["200 g toor dal"]}
	]}
	</script></head><body></body></html>`

	rec, err := Extract(page)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if rec.Title != "Dal Tadka" {
		t.Errorf("expected Dal Tadka, got %q", rec.Title)
	}
}

func TestExtractMicrodata(t *testing.T) {
	rec, err := Extract(microdataPage)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if rec.Title != "Veg Pulao" {
		t.Errorf("expected Veg Pulao, got %q", rec.Title)
	}
	if len(rec.Ingredients) != 2 {
		t.Fatalf("expected 2 ingredients, got %d", len(rec.Ingredients))
	}
	if rec.Ingredients[0].Name != "rice" || rec.Ingredients[0].Qty != 2 || rec.Ingredients[0].Unit != "cup" {
		t.Errorf("unexpected rice ingredient: %+v", rec.Ingredients[0])
	}
}

func TestExtractHeadingFallback(t *testing.T) {
	rec, err := Extract(headingPage)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if rec.Title != "Masala Chai" {
		t.Errorf("expected Masala Chai, got %q", rec.Title)
	}
	if len(rec.Ingredients) != 2 {
		t.Fatalf("expected 2 ingredients, got %d", len(rec.Ingredients))
	}
	if rec.Ingredients[0].Name != "milk" || rec.Ingredients[0].Qty != 250 || rec.Ingredients[0].Unit != "ml" {
		t.Errorf("unexpected milk ingredient: %+v", rec.Ingredients[0])
	}
}

func TestExtractNoRecipe(t *testing.T) {
	if _, err := Extract(`<html><body><p>Nothing to see.</p></body></html>`); err == nil {
		t.Fatal("expected an error for a page without a recipe")
	}
}

func TestClipURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(jsonLDPage))
	}))
	defer srv.Close()

	rec, err := New().ClipURL(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("ClipURL failed: %v", err)
	}
	if rec.Title != "Paneer Butter Masala" {
		t.Errorf("expected title, got %q", rec.Title)
	}
	if rec.SourceURL != srv.URL {
		t.Errorf("expected source URL %q, got %q", srv.URL, rec.SourceURL)
	}
}

func TestClipURLBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if _, err := New().ClipURL(context.Background(), srv.URL); err == nil {
		t.Fatal("expected an error for a 404 page")
	}
}

func TestParseIngredient(t *testing.T) {
	tests := []struct {
		line string
		want recipe.Ingredient
	}{
		{"200 g paneer", recipe.Ingredient{Name: "paneer", Qty: 200, Unit: "g"}},
		{"1.5 kg potatoes", recipe.Ingredient{Name: "potatoes", Qty: 1.5, Unit: "kg"}},
		{"2 tomatoes", recipe.Ingredient{Name: "tomatoes", Qty: 2}},
		{"salt to taste", recipe.Ingredient{Name: "salt to taste"}},
		{"2 cups of rice", recipe.Ingredient{Name: "rice", Qty: 2, Unit: "cup"}},
		{"1/4 tsp asafoetida", recipe.Ingredient{Name: "asafoetida", Qty: 0.25, Unit: "tsp"}},
		{"0,5 l water", recipe.Ingredient{Name: "water", Qty: 0.5, Unit: "l"}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := ParseIngredient(tt.line)
			if got.Name != tt.want.Name || math.Abs(got.Qty-tt.want.Qty) > 1e-9 || got.Unit != tt.want.Unit {
				t.Errorf("ParseIngredient(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseISODuration(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"PT45M", 45},
		{"PT1H30M", 90},
		{"PT2H", 120},
		{"", 0},
		{"45 mins", 0},
	}
	for _, tt := range tests {
		if got := parseISODuration(tt.in); got != tt.want {
			t.Errorf("parseISODuration(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
