package session

import (
	"context"

	"github.com/mmynk/teamrandomizer/internal/models"
)

// Store defines the operations the presentation layer may perform on the
// session. It exists so the service layer does not depend on the concrete
// state holder.
type Store interface {
	// Snapshot returns a copy of the current state.
	Snapshot() State

	// AddEntrant trims rawName and appends a new entrant.
	// Blank names are a no-op reported with ok=false.
	AddEntrant(rawName string) (entrant models.Entrant, ok bool)

	// ImportEntrants appends one entrant per usable token, atomically.
	ImportEntrants(tokens []any) []models.Entrant

	// ImportFrom awaits the token source and applies its result atomically.
	// A failed source counts as zero tokens.
	ImportFrom(ctx context.Context, src TokenSource) []models.Entrant

	// RemoveEntrant removes the entrant with id; absent ids are a no-op.
	RemoveEntrant(id string) bool

	// ClearEntrants empties the roster. Existing groups are kept.
	ClearEntrants()

	// SetPolicy selects the grouping method and stores its parameter,
	// clamped to at least 1.
	SetPolicy(method models.Method, value int) models.SizingPolicy

	// GenerateGroups runs the partitioner over the current roster and
	// replaces the previous groups. With an empty roster it leaves the
	// previous groups in place and reports generated=false.
	GenerateGroups() (groups []models.Group, generated bool)

	// Reset discards entrants and groups and restores the default policy.
	Reset()
}

// TokenSource is the import collaborator: it delivers a completed sequence
// of raw cell values.
type TokenSource interface {
	Tokens(ctx context.Context) ([]any, error)
}
