package catalog

import (
	"strings"
)

// NormalizeName is the canonical form used for uniqueness checks and the
// unique index: lowercased with whitespace collapsed. Historical imports
// produced pairs like "Villa F3" / "villa f3 " that only this form catches.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// SearchFilter is a conjunction of optional predicates. Zero values mean
// "no constraint".
type SearchFilter struct {
	Destination string
	MinGuests   int
	Category    string
	Status      string
}
