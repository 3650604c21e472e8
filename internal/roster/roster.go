// Package roster holds the ordered list of entrants eligible for grouping.
//
// A Roster is not safe for concurrent use; the session that owns it
// serializes access.
package roster

import (
	"slices"

	"github.com/mmynk/teamrandomizer/internal/ids"
	"github.com/mmynk/teamrandomizer/internal/models"
)

// Roster is an ordered sequence of entrants with no duplicate detection.
type Roster struct {
	entrants []models.Entrant
	ids      ids.Generator
}

// New creates an empty roster that assigns IDs from generator.
func New(generator ids.Generator) *Roster {
	return &Roster{ids: generator}
}

// Add trims rawName and appends a new entrant. Blank names are ignored and
// reported with ok=false.
func (r *Roster) Add(rawName string) (entrant models.Entrant, ok bool) {
	name, ok := models.NormalizeName(rawName)
	if !ok {
		return models.Entrant{}, false
	}
	entrant = models.Entrant{ID: r.ids.NewID(), Name: name}
	r.entrants = append(r.entrants, entrant)
	return entrant, true
}

// Import appends one entrant per usable token, in order. Tokens that are
// not strings or are blank after trimming are dropped silently. The batch
// is built first and appended in a single step.
func (r *Roster) Import(tokens []any) []models.Entrant {
	batch := make([]models.Entrant, 0, len(tokens))
	for _, tok := range tokens {
		raw, isText := tok.(string)
		if !isText {
			continue
		}
		name, ok := models.NormalizeName(raw)
		if !ok {
			continue
		}
		batch = append(batch, models.Entrant{ID: r.ids.NewID(), Name: name})
	}
	r.entrants = append(r.entrants, batch...)
	return batch
}

// Remove deletes the entrant with the given id. Absent ids are a no-op.
func (r *Roster) Remove(id string) bool {
	i := slices.IndexFunc(r.entrants, func(e models.Entrant) bool { return e.ID == id })
	if i < 0 {
		return false
	}
	r.entrants = slices.Delete(r.entrants, i, i+1)
	return true
}

// Clear empties the roster and returns how many entrants were removed.
func (r *Roster) Clear() int {
	n := len(r.entrants)
	r.entrants = nil
	return n
}

// Entrants returns a copy of the roster in order.
func (r *Roster) Entrants() []models.Entrant {
	return slices.Clone(r.entrants)
}

// Len returns the number of entrants.
func (r *Roster) Len() int {
	return len(r.entrants)
}
