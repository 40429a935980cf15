// Package naming normalizes free-text item names so the same product matches
// regardless of how a bill or a recipe spells it.
package naming

import (
	"regexp"
	"strings"
)

var (
	packSizePattern   = regexp.MustCompile(`(?i)\b(\d+\s*(g|gm|kg|ml|l|lt))\b`)
	nonAlphanumeric   = regexp.MustCompile(`[^a-z0-9\s]+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize lower-cases a name, strips packaging-size tokens ("500 g",
// "1 l"), replaces punctuation with spaces and collapses whitespace.
// Deterministic and side-effect-free; both sides of any comparison must go
// through it.
func Normalize(name string) string {
	n := strings.ToLower(name)
	n = packSizePattern.ReplaceAllString(n, "")
	n = nonAlphanumeric.ReplaceAllString(n, " ")
	n = whitespacePattern.ReplaceAllString(n, " ")
	return strings.TrimSpace(n)
}

// Tokens returns the whitespace-split token set of a normalized name.
func Tokens(name string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, tok := range strings.Fields(Normalize(name)) {
		tokens[tok] = struct{}{}
	}
	return tokens
}
