// Package session holds the single in-process state of a team randomizer:
// the roster, the sizing policy selection and the latest groups.
package session

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/mmynk/teamrandomizer/internal/ids"
	"github.com/mmynk/teamrandomizer/internal/metrics"
	"github.com/mmynk/teamrandomizer/internal/models"
	"github.com/mmynk/teamrandomizer/internal/partition"
	"github.com/mmynk/teamrandomizer/internal/roster"
)

// Ensure Session implements Store
var _ Store = (*Session)(nil)

// State is a point-in-time copy of the session.
type State struct {
	Entrants  []models.Entrant
	Groups    []models.Group
	Method    models.Method
	TeamSize  int
	TeamCount int
}

// Policy returns the policy for the selected method.
func (st State) Policy() models.SizingPolicy {
	if st.Method == models.MethodCount {
		return models.ByCount(st.TeamCount)
	}
	return models.BySize(st.TeamSize)
}

// Estimate is the preview figure for the current roster and policy.
func (st State) Estimate() int {
	return st.Policy().Estimate(len(st.Entrants))
}

// SuggestedMax is the advisory upper bound for the selected parameter.
func (st State) SuggestedMax() int {
	return st.Policy().SuggestedMax(len(st.Entrants))
}

// Session serializes every operation behind one mutex, so concurrent
// callers observe the same run-to-completion ordering as a UI event loop.
type Session struct {
	mu sync.Mutex

	roster      *roster.Roster
	partitioner *partition.Partitioner
	groups      []models.Group

	method    models.Method
	teamSize  int
	teamCount int

	defaultSize  int
	defaultCount int
	observer     metrics.Observer
}

// Option configures a Session.
type Option func(*sessionConfig)

type sessionConfig struct {
	defaultSize    int
	defaultCount   int
	observer       metrics.Observer
	partitionOpts  []partition.Option
	groupGenerator ids.Generator
}

// WithDefaults overrides the initial team size and team count.
func WithDefaults(teamSize, teamCount int) Option {
	return func(c *sessionConfig) {
		c.defaultSize = teamSize
		c.defaultCount = teamCount
	}
}

// WithObserver reports session events to o.
func WithObserver(o metrics.Observer) Option {
	return func(c *sessionConfig) {
		c.observer = o
	}
}

// WithPartitionOptions passes options through to the partitioner.
func WithPartitionOptions(opts ...partition.Option) Option {
	return func(c *sessionConfig) {
		c.partitionOpts = append(c.partitionOpts, opts...)
	}
}

// WithGroupIDs uses a separate generator for group IDs.
func WithGroupIDs(g ids.Generator) Option {
	return func(c *sessionConfig) {
		c.groupGenerator = g
	}
}

// New creates an empty session. generator supplies entrant IDs and, unless
// WithGroupIDs is given, group IDs.
func New(generator ids.Generator, opts ...Option) *Session {
	cfg := sessionConfig{
		defaultSize:  models.DefaultTeamSize,
		defaultCount: models.DefaultTeamCount,
		observer:     metrics.Nop{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.groupGenerator == nil {
		cfg.groupGenerator = generator
	}

	s := &Session{
		roster:       roster.New(generator),
		partitioner:  partition.New(cfg.groupGenerator, cfg.partitionOpts...),
		defaultSize:  models.ClampParam(cfg.defaultSize),
		defaultCount: models.ClampParam(cfg.defaultCount),
		observer:     cfg.observer,
	}
	s.resetPolicy()
	return s
}

func (s *Session) resetPolicy() {
	s.method = models.DefaultMethod
	s.teamSize = s.defaultSize
	s.teamCount = s.defaultCount
}

// Snapshot returns a deep copy of the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() State {
	return State{
		Entrants:  s.roster.Entrants(),
		Groups:    cloneGroups(s.groups),
		Method:    s.method,
		TeamSize:  s.teamSize,
		TeamCount: s.teamCount,
	}
}

// AddEntrant trims rawName and appends a new entrant.
func (s *Session) AddEntrant(rawName string) (models.Entrant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entrant, ok := s.roster.Add(rawName)
	if ok {
		s.observer.EntrantsAdded(1)
		s.observer.RosterSize(s.roster.Len())
	}
	return entrant, ok
}

// ImportEntrants appends one entrant per usable token in a single step.
func (s *Session) ImportEntrants(tokens []any) []models.Entrant {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := s.roster.Import(tokens)
	s.observer.ImportCompleted(len(added), len(tokens)-len(added), false)
	s.observer.EntrantsAdded(len(added))
	s.observer.RosterSize(s.roster.Len())
	return added
}

// ImportFrom waits for src outside the lock, then applies the tokens.
// Failures are logged and treated as an empty result.
func (s *Session) ImportFrom(ctx context.Context, src TokenSource) []models.Entrant {
	tokens, err := src.Tokens(ctx)
	if err != nil {
		slog.Warn("Import source failed, treating as empty", "error", err)
		s.observer.ImportCompleted(0, 0, true)
		return nil
	}
	return s.ImportEntrants(tokens)
}

// RemoveEntrant removes the entrant with id if present.
func (s *Session) RemoveEntrant(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.roster.Remove(id)
	if removed {
		s.observer.EntrantsRemoved(1)
		s.observer.RosterSize(s.roster.Len())
	}
	return removed
}

// ClearEntrants empties the roster.
func (s *Session) ClearEntrants() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observer.EntrantsRemoved(s.roster.Clear())
	s.observer.RosterSize(0)
}

// SetPolicy selects method and stores value for it. The parameter of the
// other method is remembered unchanged.
func (s *Session) SetPolicy(method models.Method, value int) models.SizingPolicy {
	s.mu.Lock()
	defer s.mu.Unlock()

	value = models.ClampParam(value)
	switch method {
	case models.MethodCount:
		s.method = models.MethodCount
		s.teamCount = value
	default:
		s.method = models.MethodSize
		s.teamSize = value
	}
	return s.snapshotLocked().Policy()
}

// GenerateGroups replaces the groups with a fresh partition of the roster.
func (s *Session) GenerateGroups() ([]models.Group, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	policy := s.snapshotLocked().Policy()
	groups, err := s.partitioner.Partition(s.roster.Entrants(), policy)
	if err != nil {
		if !errors.Is(err, partition.ErrEmptyRoster) {
			slog.Error("Partitioning failed", "policy", policy.String(), "error", err)
		}
		return cloneGroups(s.groups), false
	}

	s.groups = groups
	s.observer.GroupsGenerated(policy.Method, len(groups))
	return cloneGroups(groups), true
}

// Reset discards all entrants and groups and restores the default policy.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observer.EntrantsRemoved(s.roster.Clear())
	s.observer.RosterSize(0)
	s.groups = nil
	s.resetPolicy()
}

func cloneGroups(groups []models.Group) []models.Group {
	if groups == nil {
		return nil
	}
	out := make([]models.Group, len(groups))
	for i, g := range groups {
		out[i] = models.Group{ID: g.ID, Members: slices.Clone(g.Members)}
	}
	return out
}
