// Package inventory manages the persisted pantry and produces the immutable
// snapshots the scoring engine consumes.
package inventory

import "time"

// Item is one pantry entry. A snapshot of Items is read at the start of a
// scoring/planning pass and never mutated by it; quantity deductions after a
// recipe is actually cooked happen through the repository, not the engine.
type Item struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Unit      string     `json:"unit,omitempty"`
	Remaining float64    `json:"remaining"`
	Expiry    *time.Time `json:"expiry,omitempty"`
	Category  string     `json:"category,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
