// Package apiconnect wires the TeamService messages to Connect handlers and
// clients using a JSON codec.
package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/teamrandomizer/pkg/api"
)

// TeamServiceName is the fully-qualified name of the TeamService service.
const TeamServiceName = "teamrandomizer.v1.TeamService"

// Procedure paths, usable as HTTP routes.
const (
	TeamServiceGetStateProcedure       = "/teamrandomizer.v1.TeamService/GetState"
	TeamServiceAddEntrantProcedure     = "/teamrandomizer.v1.TeamService/AddEntrant"
	TeamServiceImportEntrantsProcedure = "/teamrandomizer.v1.TeamService/ImportEntrants"
	TeamServiceRemoveEntrantProcedure  = "/teamrandomizer.v1.TeamService/RemoveEntrant"
	TeamServiceClearEntrantsProcedure  = "/teamrandomizer.v1.TeamService/ClearEntrants"
	TeamServiceSetPolicyProcedure      = "/teamrandomizer.v1.TeamService/SetPolicy"
	TeamServiceGenerateGroupsProcedure = "/teamrandomizer.v1.TeamService/GenerateGroups"
	TeamServiceResetProcedure          = "/teamrandomizer.v1.TeamService/Reset"
)

// TeamServiceHandler is implemented by the server side of TeamService.
type TeamServiceHandler interface {
	GetState(context.Context, *connect.Request[api.GetStateRequest]) (*connect.Response[api.GetStateResponse], error)
	AddEntrant(context.Context, *connect.Request[api.AddEntrantRequest]) (*connect.Response[api.AddEntrantResponse], error)
	ImportEntrants(context.Context, *connect.Request[api.ImportEntrantsRequest]) (*connect.Response[api.ImportEntrantsResponse], error)
	RemoveEntrant(context.Context, *connect.Request[api.RemoveEntrantRequest]) (*connect.Response[api.RemoveEntrantResponse], error)
	ClearEntrants(context.Context, *connect.Request[api.ClearEntrantsRequest]) (*connect.Response[api.ClearEntrantsResponse], error)
	SetPolicy(context.Context, *connect.Request[api.SetPolicyRequest]) (*connect.Response[api.SetPolicyResponse], error)
	GenerateGroups(context.Context, *connect.Request[api.GenerateGroupsRequest]) (*connect.Response[api.GenerateGroupsResponse], error)
	Reset(context.Context, *connect.Request[api.ResetRequest]) (*connect.Response[api.ResetResponse], error)
}

// NewTeamServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewTeamServiceHandler(svc TeamServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append(handlerCodecs(), opts...)

	getState := connect.NewUnaryHandler(TeamServiceGetStateProcedure, svc.GetState, opts...)
	addEntrant := connect.NewUnaryHandler(TeamServiceAddEntrantProcedure, svc.AddEntrant, opts...)
	importEntrants := connect.NewUnaryHandler(TeamServiceImportEntrantsProcedure, svc.ImportEntrants, opts...)
	removeEntrant := connect.NewUnaryHandler(TeamServiceRemoveEntrantProcedure, svc.RemoveEntrant, opts...)
	clearEntrants := connect.NewUnaryHandler(TeamServiceClearEntrantsProcedure, svc.ClearEntrants, opts...)
	setPolicy := connect.NewUnaryHandler(TeamServiceSetPolicyProcedure, svc.SetPolicy, opts...)
	generateGroups := connect.NewUnaryHandler(TeamServiceGenerateGroupsProcedure, svc.GenerateGroups, opts...)
	reset := connect.NewUnaryHandler(TeamServiceResetProcedure, svc.Reset, opts...)

	return "/" + TeamServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case TeamServiceGetStateProcedure:
			getState.ServeHTTP(w, r)
		case TeamServiceAddEntrantProcedure:
			addEntrant.ServeHTTP(w, r)
		case TeamServiceImportEntrantsProcedure:
			importEntrants.ServeHTTP(w, r)
		case TeamServiceRemoveEntrantProcedure:
			removeEntrant.ServeHTTP(w, r)
		case TeamServiceClearEntrantsProcedure:
			clearEntrants.ServeHTTP(w, r)
		case TeamServiceSetPolicyProcedure:
			setPolicy.ServeHTTP(w, r)
		case TeamServiceGenerateGroupsProcedure:
			generateGroups.ServeHTTP(w, r)
		case TeamServiceResetProcedure:
			reset.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedTeamServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedTeamServiceHandler struct{}

func unimplemented(method string) error {
	return connect.NewError(connect.CodeUnimplemented, errors.New(TeamServiceName+"."+method+" is not implemented"))
}

func (UnimplementedTeamServiceHandler) GetState(context.Context, *connect.Request[api.GetStateRequest]) (*connect.Response[api.GetStateResponse], error) {
	return nil, unimplemented("GetState")
}

func (UnimplementedTeamServiceHandler) AddEntrant(context.Context, *connect.Request[api.AddEntrantRequest]) (*connect.Response[api.AddEntrantResponse], error) {
	return nil, unimplemented("AddEntrant")
}

func (UnimplementedTeamServiceHandler) ImportEntrants(context.Context, *connect.Request[api.ImportEntrantsRequest]) (*connect.Response[api.ImportEntrantsResponse], error) {
	return nil, unimplemented("ImportEntrants")
}

func (UnimplementedTeamServiceHandler) RemoveEntrant(context.Context, *connect.Request[api.RemoveEntrantRequest]) (*connect.Response[api.RemoveEntrantResponse], error) {
	return nil, unimplemented("RemoveEntrant")
}

func (UnimplementedTeamServiceHandler) ClearEntrants(context.Context, *connect.Request[api.ClearEntrantsRequest]) (*connect.Response[api.ClearEntrantsResponse], error) {
	return nil, unimplemented("ClearEntrants")
}

func (UnimplementedTeamServiceHandler) SetPolicy(context.Context, *connect.Request[api.SetPolicyRequest]) (*connect.Response[api.SetPolicyResponse], error) {
	return nil, unimplemented("SetPolicy")
}

func (UnimplementedTeamServiceHandler) GenerateGroups(context.Context, *connect.Request[api.GenerateGroupsRequest]) (*connect.Response[api.GenerateGroupsResponse], error) {
	return nil, unimplemented("GenerateGroups")
}

func (UnimplementedTeamServiceHandler) Reset(context.Context, *connect.Request[api.ResetRequest]) (*connect.Response[api.ResetResponse], error) {
	return nil, unimplemented("Reset")
}

// TeamServiceClient is a client for TeamService.
type TeamServiceClient interface {
	GetState(context.Context, *connect.Request[api.GetStateRequest]) (*connect.Response[api.GetStateResponse], error)
	AddEntrant(context.Context, *connect.Request[api.AddEntrantRequest]) (*connect.Response[api.AddEntrantResponse], error)
	ImportEntrants(context.Context, *connect.Request[api.ImportEntrantsRequest]) (*connect.Response[api.ImportEntrantsResponse], error)
	RemoveEntrant(context.Context, *connect.Request[api.RemoveEntrantRequest]) (*connect.Response[api.RemoveEntrantResponse], error)
	ClearEntrants(context.Context, *connect.Request[api.ClearEntrantsRequest]) (*connect.Response[api.ClearEntrantsResponse], error)
	SetPolicy(context.Context, *connect.Request[api.SetPolicyRequest]) (*connect.Response[api.SetPolicyResponse], error)
	GenerateGroups(context.Context, *connect.Request[api.GenerateGroupsRequest]) (*connect.Response[api.GenerateGroupsResponse], error)
	Reset(context.Context, *connect.Request[api.ResetRequest]) (*connect.Response[api.ResetResponse], error)
}

// NewTeamServiceClient constructs a client for TeamService at baseURL
// (for example, http://localhost:8080).
func NewTeamServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TeamServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{clientCodec()}, opts...)

	return &teamServiceClient{
		getState:       connect.NewClient[api.GetStateRequest, api.GetStateResponse](httpClient, baseURL+TeamServiceGetStateProcedure, opts...),
		addEntrant:     connect.NewClient[api.AddEntrantRequest, api.AddEntrantResponse](httpClient, baseURL+TeamServiceAddEntrantProcedure, opts...),
		importEntrants: connect.NewClient[api.ImportEntrantsRequest, api.ImportEntrantsResponse](httpClient, baseURL+TeamServiceImportEntrantsProcedure, opts...),
		removeEntrant:  connect.NewClient[api.RemoveEntrantRequest, api.RemoveEntrantResponse](httpClient, baseURL+TeamServiceRemoveEntrantProcedure, opts...),
		clearEntrants:  connect.NewClient[api.ClearEntrantsRequest, api.ClearEntrantsResponse](httpClient, baseURL+TeamServiceClearEntrantsProcedure, opts...),
		setPolicy:      connect.NewClient[api.SetPolicyRequest, api.SetPolicyResponse](httpClient, baseURL+TeamServiceSetPolicyProcedure, opts...),
		generateGroups: connect.NewClient[api.GenerateGroupsRequest, api.GenerateGroupsResponse](httpClient, baseURL+TeamServiceGenerateGroupsProcedure, opts...),
		reset:          connect.NewClient[api.ResetRequest, api.ResetResponse](httpClient, baseURL+TeamServiceResetProcedure, opts...),
	}
}

type teamServiceClient struct {
	getState       *connect.Client[api.GetStateRequest, api.GetStateResponse]
	addEntrant     *connect.Client[api.AddEntrantRequest, api.AddEntrantResponse]
	importEntrants *connect.Client[api.ImportEntrantsRequest, api.ImportEntrantsResponse]
	removeEntrant  *connect.Client[api.RemoveEntrantRequest, api.RemoveEntrantResponse]
	clearEntrants  *connect.Client[api.ClearEntrantsRequest, api.ClearEntrantsResponse]
	setPolicy      *connect.Client[api.SetPolicyRequest, api.SetPolicyResponse]
	generateGroups *connect.Client[api.GenerateGroupsRequest, api.GenerateGroupsResponse]
	reset          *connect.Client[api.ResetRequest, api.ResetResponse]
}

func (c *teamServiceClient) GetState(ctx context.Context, req *connect.Request[api.GetStateRequest]) (*connect.Response[api.GetStateResponse], error) {
	return c.getState.CallUnary(ctx, req)
}

func (c *teamServiceClient) AddEntrant(ctx context.Context, req *connect.Request[api.AddEntrantRequest]) (*connect.Response[api.AddEntrantResponse], error) {
	return c.addEntrant.CallUnary(ctx, req)
}

func (c *teamServiceClient) ImportEntrants(ctx context.Context, req *connect.Request[api.ImportEntrantsRequest]) (*connect.Response[api.ImportEntrantsResponse], error) {
	return c.importEntrants.CallUnary(ctx, req)
}

func (c *teamServiceClient) RemoveEntrant(ctx context.Context, req *connect.Request[api.RemoveEntrantRequest]) (*connect.Response[api.RemoveEntrantResponse], error) {
	return c.removeEntrant.CallUnary(ctx, req)
}

func (c *teamServiceClient) ClearEntrants(ctx context.Context, req *connect.Request[api.ClearEntrantsRequest]) (*connect.Response[api.ClearEntrantsResponse], error) {
	return c.clearEntrants.CallUnary(ctx, req)
}

func (c *teamServiceClient) SetPolicy(ctx context.Context, req *connect.Request[api.SetPolicyRequest]) (*connect.Response[api.SetPolicyResponse], error) {
	return c.setPolicy.CallUnary(ctx, req)
}

func (c *teamServiceClient) GenerateGroups(ctx context.Context, req *connect.Request[api.GenerateGroupsRequest]) (*connect.Response[api.GenerateGroupsResponse], error) {
	return c.generateGroups.CallUnary(ctx, req)
}

func (c *teamServiceClient) Reset(ctx context.Context, req *connect.Request[api.ResetRequest]) (*connect.Response[api.ResetResponse], error) {
	return c.reset.CallUnary(ctx, req)
}
