// Package partition shuffles a roster and slices it into teams according to
// a sizing policy.
package partition

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/mmynk/teamrandomizer/internal/ids"
	"github.com/mmynk/teamrandomizer/internal/models"
)

// ErrEmptyRoster is returned when there is nothing to partition.
// Callers treat it as a no-op and keep any previous groups.
var ErrEmptyRoster = errors.New("roster is empty")

// Source supplies random indices. *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a uniformly random integer in [0, n).
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Partitioner produces fresh randomized groups on every call.
type Partitioner struct {
	src Source
	ids ids.Generator
}

// Option configures a Partitioner.
type Option func(*Partitioner)

// WithSource overrides the random source. Intended for tests.
func WithSource(src Source) Option {
	return func(p *Partitioner) {
		p.src = src
	}
}

// New creates a Partitioner that names groups with the given generator.
func New(generator ids.Generator, opts ...Option) *Partitioner {
	p := &Partitioner{src: globalSource{}, ids: generator}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Partition shuffles entrants and chunks them by policy. The input slice is
// never modified. Every returned group has a new ID and at least one member.
func (p *Partitioner) Partition(entrants []models.Entrant, policy models.SizingPolicy) ([]models.Group, error) {
	if len(entrants) == 0 {
		return nil, ErrEmptyRoster
	}
	policy = policy.Clamped()

	shuffled := Shuffle(entrants, p.src)

	var chunks [][]models.Entrant
	switch policy.Method {
	case models.MethodSize:
		chunks = ChunkBySize(shuffled, policy.Value)
	case models.MethodCount:
		chunks = ChunkByCount(shuffled, policy.Value)
	default:
		return nil, fmt.Errorf("unsupported grouping method %q", policy.Method)
	}

	groups := make([]models.Group, len(chunks))
	for i, members := range chunks {
		groups[i] = models.Group{
			ID:      p.ids.NewID(),
			Members: members,
		}
	}
	return groups, nil
}

// Shuffle returns a uniformly random permutation of items using the
// Fisher-Yates algorithm. The input is left untouched.
func Shuffle[T any](items []T, src Source) []T {
	out := slices.Clone(items)
	for i := len(out) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// ChunkBySize walks items in non-overlapping windows of length size.
// The final window may be shorter. Yields ceil(len(items)/size) chunks.
func ChunkBySize[T any](items []T, size int) [][]T {
	size = models.ClampParam(size)
	chunks := make([][]T, 0, models.CeilDiv(len(items), size))
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, slices.Clone(items[start:end]))
	}
	return chunks
}

// ChunkByCount walks items in at most count windows of length
// ceil(len(items)/count). Empty trailing windows are dropped, so fewer than
// count chunks come back when the fixed length fills the input early.
func ChunkByCount[T any](items []T, count int) [][]T {
	if len(items) == 0 {
		return nil
	}
	count = models.ClampParam(count)
	length := models.CeilDiv(len(items), count)

	chunks := make([][]T, 0, min(count, len(items)))
	for i := 0; i < count; i++ {
		start := i * length
		if start >= len(items) {
			break
		}
		end := min(start+length, len(items))
		chunks = append(chunks, slices.Clone(items[start:end]))
	}
	return chunks
}
