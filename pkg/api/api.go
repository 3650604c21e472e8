// Package api defines the request and response messages of the
// teamrandomizer.v1.TeamService RPC API. Messages travel as JSON.
package api

// Entrant is one roster entry.
type Entrant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Group is one team of a partitioning run.
type Group struct {
	ID      string    `json:"id"`
	Label   string    `json:"label"`
	Members []Entrant `json:"members"`
}

// Policy describes the grouping selection and its preview figures.
type Policy struct {
	// Method is "size" or "count".
	Method    string `json:"method"`
	TeamSize  int    `json:"teamSize"`
	TeamCount int    `json:"teamCount"`

	// Estimate is the number of teams (size) or members per team (count)
	// the current roster would produce; 0 for an empty roster.
	Estimate int `json:"estimate"`

	// SuggestedMax is advisory only.
	SuggestedMax int `json:"suggestedMax"`
}

// State is the full session as seen by the browser.
type State struct {
	Entrants []Entrant `json:"entrants"`
	Groups   []Group   `json:"groups"`
	Policy   Policy    `json:"policy"`
}

type GetStateRequest struct{}

type GetStateResponse struct {
	State *State `json:"state"`
}

type AddEntrantRequest struct {
	Name string `json:"name"`
}

type AddEntrantResponse struct {
	// Entrant is nil when the name was blank.
	Entrant *Entrant `json:"entrant,omitempty"`
	Added   bool     `json:"added"`
	State   *State   `json:"state"`
}

// ImportEntrantsRequest carries an uploaded file's content.
type ImportEntrantsRequest struct {
	Filename string `json:"filename"`
	// Format overrides detection from Filename: "csv", "json" or "yaml".
	Format  string `json:"format,omitempty"`
	Content string `json:"content"`
}

type ImportEntrantsResponse struct {
	Entrants []Entrant `json:"entrants"`
	State    *State    `json:"state"`
}

type RemoveEntrantRequest struct {
	EntrantID string `json:"entrantId"`
}

type RemoveEntrantResponse struct {
	Removed bool   `json:"removed"`
	State   *State `json:"state"`
}

type ClearEntrantsRequest struct{}

type ClearEntrantsResponse struct {
	State *State `json:"state"`
}

// SetPolicyRequest selects a method. Value is the raw text of the number
// field; it is parsed leniently and clamped to at least 1. An empty Value
// keeps the remembered parameter for Method.
type SetPolicyRequest struct {
	Method string `json:"method"`
	Value  string `json:"value,omitempty"`
}

type SetPolicyResponse struct {
	State *State `json:"state"`
}

type GenerateGroupsRequest struct{}

type GenerateGroupsResponse struct {
	// Generated is false when the roster was empty and the previous
	// groups were left in place.
	Generated bool   `json:"generated"`
	State     *State `json:"state"`
}

type ResetRequest struct{}

type ResetResponse struct {
	State *State `json:"state"`
}
