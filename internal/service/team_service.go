package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/teamrandomizer/internal/importer"
	"github.com/mmynk/teamrandomizer/internal/models"
	"github.com/mmynk/teamrandomizer/internal/session"
	"github.com/mmynk/teamrandomizer/pkg/api"
	"github.com/mmynk/teamrandomizer/pkg/api/apiconnect"
)

// TeamService implements the Connect TeamService on top of a session.
type TeamService struct {
	apiconnect.UnimplementedTeamServiceHandler
	store    session.Store
	importer *importer.Importer
}

// NewTeamService creates a new TeamService over the given session store.
func NewTeamService(store session.Store, imp *importer.Importer) *TeamService {
	if imp == nil {
		imp = importer.New(0)
	}
	return &TeamService{store: store, importer: imp}
}

// GetState returns the whole session.
func (s *TeamService) GetState(ctx context.Context, req *connect.Request[api.GetStateRequest]) (*connect.Response[api.GetStateResponse], error) {
	return connect.NewResponse(&api.GetStateResponse{
		State: toAPIState(s.store.Snapshot()),
	}), nil
}

// AddEntrant adds one entrant by name. Blank names are ignored.
func (s *TeamService) AddEntrant(ctx context.Context, req *connect.Request[api.AddEntrantRequest]) (*connect.Response[api.AddEntrantResponse], error) {
	slog.Info("AddEntrant request received", "name_length", len(req.Msg.Name))

	resp := &api.AddEntrantResponse{}
	if entrant, ok := s.store.AddEntrant(req.Msg.Name); ok {
		resp.Added = true
		resp.Entrant = toAPIEntrant(entrant)
		slog.Info("Entrant added", "entrant_id", entrant.ID)
	} else {
		slog.Debug("AddEntrant ignored blank name")
	}
	resp.State = toAPIState(s.store.Snapshot())

	return connect.NewResponse(resp), nil
}

// ImportEntrants parses an uploaded file and appends every usable cell.
// Unreadable files import nothing; no error is returned to the caller.
func (s *TeamService) ImportEntrants(ctx context.Context, req *connect.Request[api.ImportEntrantsRequest]) (*connect.Response[api.ImportEntrantsResponse], error) {
	slog.Info("ImportEntrants request received",
		"filename", req.Msg.Filename,
		"format", req.Msg.Format,
		"bytes", len(req.Msg.Content),
	)

	format, err := importer.ParseFormat(req.Msg.Format)
	if err != nil {
		// keep the bad name so the import fails and counts as empty
		format = importer.Format(req.Msg.Format)
	}

	added := s.store.ImportFrom(ctx, importer.Upload{
		Importer: s.importer,
		Filename: req.Msg.Filename,
		Format:   format,
		Body:     strings.NewReader(req.Msg.Content),
	})

	slog.Info("ImportEntrants successful", "added", len(added))

	return connect.NewResponse(&api.ImportEntrantsResponse{
		Entrants: toAPIEntrants(added),
		State:    toAPIState(s.store.Snapshot()),
	}), nil
}

// RemoveEntrant removes an entrant by ID. Unknown IDs are ignored.
func (s *TeamService) RemoveEntrant(ctx context.Context, req *connect.Request[api.RemoveEntrantRequest]) (*connect.Response[api.RemoveEntrantResponse], error) {
	slog.Info("RemoveEntrant request received", "entrant_id", req.Msg.EntrantID)

	removed := s.store.RemoveEntrant(req.Msg.EntrantID)
	if !removed {
		slog.Debug("RemoveEntrant found nothing", "entrant_id", req.Msg.EntrantID)
	}

	return connect.NewResponse(&api.RemoveEntrantResponse{
		Removed: removed,
		State:   toAPIState(s.store.Snapshot()),
	}), nil
}

// ClearEntrants empties the roster.
func (s *TeamService) ClearEntrants(ctx context.Context, req *connect.Request[api.ClearEntrantsRequest]) (*connect.Response[api.ClearEntrantsResponse], error) {
	slog.Info("ClearEntrants request received")

	s.store.ClearEntrants()

	return connect.NewResponse(&api.ClearEntrantsResponse{
		State: toAPIState(s.store.Snapshot()),
	}), nil
}

// SetPolicy selects the grouping method and its parameter.
func (s *TeamService) SetPolicy(ctx context.Context, req *connect.Request[api.SetPolicyRequest]) (*connect.Response[api.SetPolicyResponse], error) {
	slog.Info("SetPolicy request received", "method", req.Msg.Method, "value", req.Msg.Value)

	current := s.store.Snapshot()

	method := current.Method
	if req.Msg.Method != "" {
		parsed, err := models.ParseMethod(req.Msg.Method)
		if err != nil {
			slog.Warn("SetPolicy rejected", "error", err)
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		method = parsed
	}

	var value int
	switch {
	case req.Msg.Value != "":
		value = models.ParseParam(req.Msg.Value)
	case method == models.MethodCount:
		value = current.TeamCount
	default:
		value = current.TeamSize
	}

	policy := s.store.SetPolicy(method, value)
	slog.Info("Policy updated", "policy", policy.String())

	return connect.NewResponse(&api.SetPolicyResponse{
		State: toAPIState(s.store.Snapshot()),
	}), nil
}

// GenerateGroups shuffles the roster into fresh groups. With an empty
// roster the previous groups are returned unchanged.
func (s *TeamService) GenerateGroups(ctx context.Context, req *connect.Request[api.GenerateGroupsRequest]) (*connect.Response[api.GenerateGroupsResponse], error) {
	slog.Info("GenerateGroups request received")

	groups, generated := s.store.GenerateGroups()
	if generated {
		slog.Info("GenerateGroups successful", "groups_count", len(groups))
	} else {
		slog.Info("GenerateGroups skipped, roster is empty")
	}

	return connect.NewResponse(&api.GenerateGroupsResponse{
		Generated: generated,
		State:     toAPIState(s.store.Snapshot()),
	}), nil
}

// Reset discards everything and restores the default policy.
func (s *TeamService) Reset(ctx context.Context, req *connect.Request[api.ResetRequest]) (*connect.Response[api.ResetResponse], error) {
	slog.Info("Reset request received")

	s.store.Reset()

	return connect.NewResponse(&api.ResetResponse{
		State: toAPIState(s.store.Snapshot()),
	}), nil
}

func toAPIEntrant(e models.Entrant) *api.Entrant {
	return &api.Entrant{ID: e.ID, Name: e.Name}
}

func toAPIEntrants(entrants []models.Entrant) []api.Entrant {
	out := make([]api.Entrant, len(entrants))
	for i, e := range entrants {
		out[i] = api.Entrant{ID: e.ID, Name: e.Name}
	}
	return out
}

func toAPIState(st session.State) *api.State {
	groups := make([]api.Group, len(st.Groups))
	for i, g := range st.Groups {
		groups[i] = api.Group{
			ID:      g.ID,
			Label:   models.Label(i),
			Members: toAPIEntrants(g.Members),
		}
	}

	return &api.State{
		Entrants: toAPIEntrants(st.Entrants),
		Groups:   groups,
		Policy: api.Policy{
			Method:       string(st.Method),
			TeamSize:     st.TeamSize,
			TeamCount:    st.TeamCount,
			Estimate:     st.Estimate(),
			SuggestedMax: st.SuggestedMax(),
		},
	}
}
