// Package ids provides the opaque identifier service used for entrants and groups.
package ids

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces a fresh unique identifier on every call.
// Implementations must never return the same value twice and cannot fail.
type Generator interface {
	NewID() string
}

// UUID generates random (version 4) UUID strings.
type UUID struct{}

// NewID returns a new random UUID string.
func (UUID) NewID() string {
	return uuid.NewString()
}

// Sequence generates "<prefix>-1", "<prefix>-2", ... and is safe for
// concurrent use. Useful in tests, where predictable IDs help.
type Sequence struct {
	Prefix string
	n      atomic.Int64
}

// NewSequence returns a Sequence using the given prefix.
func NewSequence(prefix string) *Sequence {
	return &Sequence{Prefix: prefix}
}

// NewID returns the next identifier in the sequence.
func (s *Sequence) NewID() string {
	return s.Prefix + "-" + strconv.FormatInt(s.n.Add(1), 10)
}
