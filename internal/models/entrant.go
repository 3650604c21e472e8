package models

import "strings"

// Entrant represents one named participant on the roster.
// Names may repeat across entrants; only ID is unique.
type Entrant struct {
	// ID is the unique identifier for the entrant (UUID format in production).
	ID string `json:"id"`

	// Name is the trimmed, non-empty display name.
	Name string `json:"name"`
}

// NormalizeName trims surrounding whitespace from a raw name.
// The second return value is false when nothing is left.
func NormalizeName(raw string) (string, bool) {
	name := strings.TrimSpace(raw)
	return name, name != ""
}
