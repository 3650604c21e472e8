package service

import (
	"context"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/teamrandomizer/internal/ids"
	"github.com/mmynk/teamrandomizer/internal/importer"
	"github.com/mmynk/teamrandomizer/internal/middleware"
	"github.com/mmynk/teamrandomizer/internal/partition"
	"github.com/mmynk/teamrandomizer/internal/session"
	"github.com/mmynk/teamrandomizer/pkg/api"
	"github.com/mmynk/teamrandomizer/pkg/api/apiconnect"
)

// setupTestServer creates a test server over a fresh session
func setupTestServer(t *testing.T) (apiconnect.TeamServiceClient, func()) {
	t.Helper()

	store := session.New(ids.NewSequence("e"),
		session.WithGroupIDs(ids.NewSequence("g")),
		session.WithPartitionOptions(partition.WithSource(rand.New(rand.NewPCG(3, 5)))),
	)
	svc := NewTeamService(store, importer.New(64))

	path, handler := apiconnect.NewTeamServiceHandler(svc,
		connect.WithInterceptors(middleware.LoggingInterceptor()),
	)
	mux := http.NewServeMux()
	mux.Handle(path, handler)

	server := httptest.NewServer(mux)
	client := apiconnect.NewTeamServiceClient(http.DefaultClient, server.URL)

	return client, server.Close
}

func addAll(t *testing.T, client apiconnect.TeamServiceClient, names ...string) *api.State {
	t.Helper()
	var st *api.State
	for _, n := range names {
		resp, err := client.AddEntrant(context.Background(), connect.NewRequest(&api.AddEntrantRequest{Name: n}))
		if err != nil {
			t.Fatalf("AddEntrant(%q) failed: %v", n, err)
		}
		st = resp.Msg.State
	}
	return st
}

func groupSizes(st *api.State) []int {
	out := make([]int, len(st.Groups))
	for i, g := range st.Groups {
		out[i] = len(g.Members)
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestGetState_Initial(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()

	resp, err := client.GetState(context.Background(), connect.NewRequest(&api.GetStateRequest{}))
	if err != nil {
		t.Fatalf("GetState failed: %v", err)
	}

	st := resp.Msg.State
	if len(st.Entrants) != 0 || len(st.Groups) != 0 {
		t.Errorf("expected empty session, got %d entrants and %d groups", len(st.Entrants), len(st.Groups))
	}
	if st.Policy.Method != "size" || st.Policy.TeamSize != 2 || st.Policy.TeamCount != 2 {
		t.Errorf("unexpected default policy: %+v", st.Policy)
	}
}

func TestAddEntrant(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()

	resp, err := client.AddEntrant(context.Background(), connect.NewRequest(&api.AddEntrantRequest{Name: "  Alice  "}))
	if err != nil {
		t.Fatalf("AddEntrant failed: %v", err)
	}
	if !resp.Msg.Added || resp.Msg.Entrant == nil {
		t.Fatal("expected entrant to be added")
	}
	if resp.Msg.Entrant.Name != "Alice" {
		t.Errorf("name: expected 'Alice', got '%s'", resp.Msg.Entrant.Name)
	}
	if resp.Msg.Entrant.ID == "" {
		t.Error("expected non-empty entrant ID")
	}
	if len(resp.Msg.State.Entrants) != 1 {
		t.Errorf("entrants: expected 1, got %d", len(resp.Msg.State.Entrants))
	}
}

func TestAddEntrant_BlankIsNoOp(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()

	for _, name := range []string{"", "   "} {
		resp, err := client.AddEntrant(context.Background(), connect.NewRequest(&api.AddEntrantRequest{Name: name}))
		if err != nil {
			t.Fatalf("AddEntrant(%q) returned error: %v", name, err)
		}
		if resp.Msg.Added || resp.Msg.Entrant != nil {
			t.Errorf("AddEntrant(%q) should not add anything", name)
		}
		if len(resp.Msg.State.Entrants) != 0 {
			t.Errorf("roster size changed to %d", len(resp.Msg.State.Entrants))
		}
	}
}

func TestImportEntrants(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()
	addAll(t, client, "Zed")

	resp, err := client.ImportEntrants(context.Background(), connect.NewRequest(&api.ImportEntrantsRequest{
		Filename: "players.json",
		Content:  `["Alice", "", "  Bob  ", 42]`,
	}))
	if err != nil {
		t.Fatalf("ImportEntrants failed: %v", err)
	}

	if len(resp.Msg.Entrants) != 2 {
		t.Fatalf("imported: expected 2, got %d", len(resp.Msg.Entrants))
	}
	if resp.Msg.Entrants[0].Name != "Alice" || resp.Msg.Entrants[1].Name != "Bob" {
		t.Errorf("unexpected imported names: %+v", resp.Msg.Entrants)
	}

	names := resp.Msg.State.Entrants
	if len(names) != 3 || names[0].Name != "Zed" || names[2].Name != "Bob" {
		t.Errorf("unexpected roster order: %+v", names)
	}
}

func TestImportEntrants_CSV(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()

	resp, err := client.ImportEntrants(context.Background(), connect.NewRequest(&api.ImportEntrantsRequest{
		Filename: "players.csv",
		Content:  "Alice,Bob\n,Carol\n",
	}))
	if err != nil {
		t.Fatalf("ImportEntrants failed: %v", err)
	}
	if len(resp.Msg.Entrants) != 3 {
		t.Errorf("imported: expected 3, got %d", len(resp.Msg.Entrants))
	}
}

func TestImportEntrants_FailuresAreSilent(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()

	tests := []struct {
		name string
		req  *api.ImportEntrantsRequest
	}{
		{"malformed json", &api.ImportEntrantsRequest{Filename: "x.json", Content: `["open`}},
		{"too large", &api.ImportEntrantsRequest{Filename: "x.csv", Content: string(make([]byte, 100))}},
		{"unknown format", &api.ImportEntrantsRequest{Filename: "x.csv", Format: "xlsx", Content: "Alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := client.ImportEntrants(context.Background(), connect.NewRequest(tt.req))
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(resp.Msg.Entrants) != 0 {
				t.Errorf("expected nothing imported, got %d", len(resp.Msg.Entrants))
			}
		})
	}
}

func TestRemoveEntrant(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()
	st := addAll(t, client, "A", "B")

	resp, err := client.RemoveEntrant(context.Background(), connect.NewRequest(&api.RemoveEntrantRequest{
		EntrantID: st.Entrants[0].ID,
	}))
	if err != nil {
		t.Fatalf("RemoveEntrant failed: %v", err)
	}
	if !resp.Msg.Removed {
		t.Error("expected removal")
	}
	if len(resp.Msg.State.Entrants) != 1 || resp.Msg.State.Entrants[0].Name != "B" {
		t.Errorf("unexpected roster: %+v", resp.Msg.State.Entrants)
	}
}

func TestRemoveEntrant_NotFoundIsNoOp(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()
	addAll(t, client, "A")

	resp, err := client.RemoveEntrant(context.Background(), connect.NewRequest(&api.RemoveEntrantRequest{
		EntrantID: "nonexistent-id",
	}))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Msg.Removed {
		t.Error("expected Removed=false")
	}
	if len(resp.Msg.State.Entrants) != 1 {
		t.Errorf("roster changed: %d entrants", len(resp.Msg.State.Entrants))
	}
}

func TestClearEntrants(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()
	addAll(t, client, "A", "B", "C")

	resp, err := client.ClearEntrants(context.Background(), connect.NewRequest(&api.ClearEntrantsRequest{}))
	if err != nil {
		t.Fatalf("ClearEntrants failed: %v", err)
	}
	if len(resp.Msg.State.Entrants) != 0 {
		t.Errorf("expected empty roster, got %d", len(resp.Msg.State.Entrants))
	}
}

func TestSetPolicy(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()
	addAll(t, client, "A", "B", "C", "D", "E", "F", "G")

	tests := []struct {
		name         string
		req          *api.SetPolicyRequest
		wantMethod   string
		wantSize     int
		wantCount    int
		wantEstimate int
		wantMax      int
	}{
		{"size three", &api.SetPolicyRequest{Method: "size", Value: "3"}, "size", 3, 2, 3, 7},
		{"count clamps zero", &api.SetPolicyRequest{Method: "count", Value: "0"}, "count", 3, 1, 7, 4},
		{"count non-numeric", &api.SetPolicyRequest{Method: "count", Value: "abc"}, "count", 3, 1, 7, 4},
		{"count three", &api.SetPolicyRequest{Method: "count", Value: "3"}, "count", 3, 3, 3, 4},
		{"switch back keeps size", &api.SetPolicyRequest{Method: "size"}, "size", 3, 3, 3, 7},
		{"above soft max permitted", &api.SetPolicyRequest{Value: "40"}, "size", 40, 3, 1, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := client.SetPolicy(context.Background(), connect.NewRequest(tt.req))
			if err != nil {
				t.Fatalf("SetPolicy failed: %v", err)
			}
			p := resp.Msg.State.Policy
			if p.Method != tt.wantMethod || p.TeamSize != tt.wantSize || p.TeamCount != tt.wantCount {
				t.Errorf("policy = %+v, want method=%s size=%d count=%d", p, tt.wantMethod, tt.wantSize, tt.wantCount)
			}
			if p.Estimate != tt.wantEstimate {
				t.Errorf("estimate = %d, want %d", p.Estimate, tt.wantEstimate)
			}
			if p.SuggestedMax != tt.wantMax {
				t.Errorf("suggested max = %d, want %d", p.SuggestedMax, tt.wantMax)
			}
		})
	}
}

func TestSetPolicy_UnknownMethod(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()

	_, err := client.SetPolicy(context.Background(), connect.NewRequest(&api.SetPolicyRequest{Method: "pairs"}))
	if err == nil {
		t.Fatal("expected error for unknown method")
	}
	if code := connect.CodeOf(err); code != connect.CodeInvalidArgument {
		t.Errorf("expected CodeInvalidArgument, got %v", code)
	}
}

func TestGenerateGroups_BySize(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()
	addAll(t, client, "A", "B", "C", "D", "E")

	first, err := client.GenerateGroups(context.Background(), connect.NewRequest(&api.GenerateGroupsRequest{}))
	if err != nil {
		t.Fatalf("GenerateGroups failed: %v", err)
	}
	if !first.Msg.Generated {
		t.Fatal("expected groups to be generated")
	}
	if got := groupSizes(first.Msg.State); !equalInts(got, []int{2, 2, 1}) {
		t.Errorf("group sizes = %v, want [2 2 1]", got)
	}
	if first.Msg.State.Groups[0].Label != "Team 1" {
		t.Errorf("label = %q, want Team 1", first.Msg.State.Groups[0].Label)
	}

	second, err := client.GenerateGroups(context.Background(), connect.NewRequest(&api.GenerateGroupsRequest{}))
	if err != nil {
		t.Fatalf("GenerateGroups failed: %v", err)
	}
	if got := groupSizes(second.Msg.State); !equalInts(got, []int{2, 2, 1}) {
		t.Errorf("group sizes after reshuffle = %v, want [2 2 1]", got)
	}
	if first.Msg.State.Groups[0].ID == second.Msg.State.Groups[0].ID {
		t.Error("expected fresh group IDs on reshuffle")
	}
}

func TestGenerateGroups_ByCount(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()
	addAll(t, client, "A", "B", "C", "D", "E", "F", "G")

	if _, err := client.SetPolicy(context.Background(), connect.NewRequest(&api.SetPolicyRequest{Method: "count", Value: "3"})); err != nil {
		t.Fatalf("SetPolicy failed: %v", err)
	}
	resp, err := client.GenerateGroups(context.Background(), connect.NewRequest(&api.GenerateGroupsRequest{}))
	if err != nil {
		t.Fatalf("GenerateGroups failed: %v", err)
	}
	if got := groupSizes(resp.Msg.State); !equalInts(got, []int{3, 3, 1}) {
		t.Errorf("group sizes = %v, want [3 3 1]", got)
	}
}

func TestGenerateGroups_EmptyRosterKeepsStaleGroups(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()
	addAll(t, client, "A", "B", "C")

	first, err := client.GenerateGroups(context.Background(), connect.NewRequest(&api.GenerateGroupsRequest{}))
	if err != nil {
		t.Fatalf("GenerateGroups failed: %v", err)
	}
	if _, err := client.ClearEntrants(context.Background(), connect.NewRequest(&api.ClearEntrantsRequest{})); err != nil {
		t.Fatalf("ClearEntrants failed: %v", err)
	}

	resp, err := client.GenerateGroups(context.Background(), connect.NewRequest(&api.GenerateGroupsRequest{}))
	if err != nil {
		t.Fatalf("GenerateGroups on empty roster returned error: %v", err)
	}
	if resp.Msg.Generated {
		t.Error("expected Generated=false for empty roster")
	}
	if len(resp.Msg.State.Groups) != len(first.Msg.State.Groups) ||
		resp.Msg.State.Groups[0].ID != first.Msg.State.Groups[0].ID {
		t.Error("expected previous groups to remain visible")
	}
}

func TestReset(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()
	addAll(t, client, "A", "B", "C")
	client.SetPolicy(context.Background(), connect.NewRequest(&api.SetPolicyRequest{Method: "count", Value: "5"}))
	client.GenerateGroups(context.Background(), connect.NewRequest(&api.GenerateGroupsRequest{}))

	resp, err := client.Reset(context.Background(), connect.NewRequest(&api.ResetRequest{}))
	if err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	st := resp.Msg.State
	if len(st.Entrants) != 0 || len(st.Groups) != 0 {
		t.Errorf("expected empty session after reset, got %d entrants, %d groups", len(st.Entrants), len(st.Groups))
	}
	if st.Policy.Method != "size" || st.Policy.TeamSize != 2 || st.Policy.TeamCount != 2 {
		t.Errorf("policy not restored: %+v", st.Policy)
	}
}
