package category

import "testing"

func TestCategorize(t *testing.T) {
	c := New()

	tests := []struct {
		name string
		item string
		want string
	}{
		{"Vegetable", "Tomato", "vegetables"},
		{"Dairy", "Amul Milk", "dairy"},
		{"Fruit", "Alphonso Mango", "fruits"},
		{"Grain", "Basmati Rice", "grains_cereals"},
		{"Legume", "Moong Dal", "legumes"},
		{"MeatFish", "Chicken Breast", "meat_fish"},
		{"OilViaPattern", "Sunflower Oil", "oils_fats"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, conf := c.Categorize(tt.item)
			if got != tt.want {
				t.Errorf("Categorize(%q) = %q (conf %v), want %q", tt.item, got, conf, tt.want)
			}
			if conf <= 0 || conf > 1 {
				t.Errorf("confidence %v out of (0,1]", conf)
			}
		})
	}
}

func TestCategorizeUnknown(t *testing.T) {
	c := New()

	got, conf := c.Categorize("xyzzy widget")
	if got != Unknown || conf != 0 {
		t.Errorf("Categorize(unmatchable) = %q, %v; want %q, 0", got, conf, Unknown)
	}

	got, conf = c.Categorize("")
	if got != Unknown || conf != 0 {
		t.Errorf("Categorize(\"\") = %q, %v; want %q, 0", got, conf, Unknown)
	}
}

func TestCategorizeTieBreakStable(t *testing.T) {
	c := New()

	// "butter" scores 1.0 in both dairy and oils_fats; evaluation order must
	// break the tie the same way on every call.
	for i := 0; i < 100; i++ {
		got, conf := c.Categorize("amul butter")
		if got != "dairy" || conf != 1.0 {
			t.Fatalf("call %d: Categorize(\"amul butter\") = %q, %v; want \"dairy\", 1.0", i, got, conf)
		}
	}
}

func TestCategorizeConfidenceBounds(t *testing.T) {
	c := New()
	for _, item := range []string{"milk", "fresh organic vegetable mix", "chicken fish meat", "oil ghee butter"} {
		if _, conf := c.Categorize(item); conf < 0 || conf > 1 {
			t.Errorf("Categorize(%q) confidence %v out of [0,1]", item, conf)
		}
	}
}

func TestPredictExpiryDays(t *testing.T) {
	c := New()

	if got := c.PredictExpiryDays("dairy", "milk"); got != 7 {
		t.Errorf("dairy base = %d, want 7", got)
	}
	if got := c.PredictExpiryDays("vegetables", "dried peas"); got != 10 {
		t.Errorf("dried doubles base: got %d, want 10", got)
	}
	if got := c.PredictExpiryDays("vegetables", "fresh spinach"); got != 2 {
		t.Errorf("fresh halves base: got %d, want 2", got)
	}
	if got := c.PredictExpiryDays("meat_fish", "fresh fish"); got != 1 {
		t.Errorf("halving clamps at 1 day: got %d, want 1", got)
	}
	if got := c.PredictExpiryDays(Unknown, "thing"); got != 0 {
		t.Errorf("unknown category = %d, want 0", got)
	}
}
