// Package units converts quantities between the unit spellings that show up
// in pantry inventories. Unit metadata is frequently missing or free-text, so
// an unknown pair degrades to an identity conversion instead of an error.
package units

import "strings"

type unitPair struct {
	from string
	to   string
}

// Weight and volume factors. Only the pairs that actually occur in grocery
// data are listed; everything else falls through unchanged.
var weightFactors = map[unitPair]float64{
	{"g", "kg"}:    0.001,
	{"kg", "g"}:    1000,
	{"gm", "kg"}:   0.001,
	{"kg", "gm"}:   1000,
	{"gram", "kg"}: 0.001,
	{"kg", "gram"}: 1000,
}

var volumeFactors = map[unitPair]float64{
	{"ml", "l"}:    0.001,
	{"l", "ml"}:    1000,
	{"litre", "l"}: 1.0,
	{"l", "litre"}: 1.0,
	{"liter", "l"}: 1.0,
	{"l", "liter"}: 1.0,
}

// Convert returns quantity expressed in toUnit. When either unit is empty,
// the units are equal (case-insensitive), or no conversion is known, the
// input quantity is returned unchanged. Convert never fails.
func Convert(quantity float64, fromUnit, toUnit string) float64 {
	if fromUnit == "" || toUnit == "" {
		return quantity
	}

	from := strings.ToLower(strings.TrimSpace(fromUnit))
	to := strings.ToLower(strings.TrimSpace(toUnit))
	if from == to {
		return quantity
	}

	pair := unitPair{from, to}
	if factor, ok := weightFactors[pair]; ok {
		return quantity * factor
	}
	if factor, ok := volumeFactors[pair]; ok {
		return quantity * factor
	}
	return quantity
}
