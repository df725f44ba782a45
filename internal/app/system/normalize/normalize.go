// Package normalize applies the canonical forms used for stored lookup keys.
package normalize

import "strings"

// Email lowercases and trims an email address so lookups are
// case-insensitive.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace and collapses inner runs to single
// spaces.
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Username trims surrounding whitespace. Case is preserved; usernames are
// matched exactly.
func Username(s string) string {
	return strings.TrimSpace(s)
}
