package models

import "strconv"

// Group represents one team produced by a partitioning run.
// Groups have no identity continuity between runs: re-running the
// partitioner on an unchanged roster yields new IDs.
type Group struct {
	// ID is the unique identifier for the group, fresh on every run.
	ID string `json:"id"`

	// Members are the entrants assigned to this group, in shuffled order.
	// Never empty.
	Members []Entrant `json:"members"`
}

// Label returns the human-facing team name for the group at index i.
func Label(i int) string {
	return "Team " + strconv.Itoa(i+1)
}

// MemberCount returns the total number of entrants across groups.
func MemberCount(groups []Group) int {
	n := 0
	for _, g := range groups {
		n += len(g.Members)
	}
	return n
}
