package units

import "testing"

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		from     string
		to       string
		want     float64
	}{
		{"SameUnit", 2.5, "kg", "kg", 2.5},
		{"SameUnitCaseInsensitive", 2.5, "KG", "kg", 2.5},
		{"EmptyFromUnit", 3.0, "", "kg", 3.0},
		{"EmptyToUnit", 3.0, "g", "", 3.0},
		{"GramsToKilograms", 500, "g", "kg", 0.5},
		{"KilogramsToGrams", 1.5, "kg", "g", 1500},
		{"GmSpelling", 250, "gm", "kg", 0.25},
		{"GramSpelling", 2, "kg", "gram", 2000},
		{"MillilitersToLiters", 750, "ml", "l", 0.75},
		{"LitersToMilliliters", 1.2, "l", "ml", 1200},
		{"LitreSpelling", 2, "litre", "l", 2},
		{"UnknownPairIsIdentity", 1.0, "l", "g", 1.0},
		{"PiecesToKilogramsIsIdentity", 6, "pcs", "kg", 6},
		{"WhitespaceTrimmed", 100, " g ", "kg", 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Convert(tt.quantity, tt.from, tt.to)
			if got != tt.want {
				t.Errorf("Convert(%v, %q, %q) = %v, want %v", tt.quantity, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestConvertToOwnUnitIsIdentity(t *testing.T) {
	for _, unit := range []string{"g", "kg", "ml", "l", "pcs", "packet", ""} {
		if got := Convert(7.3, unit, unit); got != 7.3 {
			t.Errorf("Convert(7.3, %q, %q) = %v, want 7.3", unit, unit, got)
		}
	}
}
