package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"rig-lab/controller"
	"rig-lab/domain/collab"
	"rig-lab/errors"
	"rig-lab/runtime"
	"rig-lab/runtime/workers"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testServer struct {
	http     *httptest.Server
	registry *runtime.SessionRegistry
	manager  *runtime.CollaborationManager
}

func newTestServer(t *testing.T) testServer {
	log := slog.Default()
	registry := runtime.NewSessionRegistry()
	manager := runtime.NewCollaborationManager(log, workers.NewSupervisor(log, time.Millisecond), registry, nil, time.Millisecond)
	collabServer := NewCollabServer(log, controller.NewCollaborationController(log, manager), registry, manager)
	httpServer := httptest.NewServer(collabServer.Routes())
	t.Cleanup(httpServer.Close)
	return testServer{http: httpServer, registry: registry, manager: manager}
}

func (s testServer) post(t *testing.T, path string, body any) *http.Response {
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(s.http.URL+path, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestCollabServer_Join_Then_Primitive(t *testing.T) {
	req := require.New(t)
	s := newTestServer(t)

	// Given alice joins an empty rig
	resp := s.post(t, "/session/join", JoinRequest{User: "alice", Role: "MASTER"})
	req.Equal(http.StatusOK, resp.StatusCode)
	var joined JoinResponse
	req.NoError(json.NewDecoder(resp.Body).Decode(&joined))
	req.True(joined.Restarted)

	// And bob joins while she is there
	resp = s.post(t, "/session/join", JoinRequest{User: "bob", Role: "slave_active"})
	req.Equal(http.StatusOK, resp.StatusCode)
	s.manager.Engine().Reconcile()

	// When alice hands control to bob
	resp = s.post(t, "/primitive/toggleControlAction", PrimitiveRequest{
		Requestor:  "alice",
		Parameters: map[string]string{controller.ParamUser: "bob"},
	})
	req.Equal(http.StatusOK, resp.StatusCode)

	// Then bob sees it in his snapshot
	resp = s.post(t, "/primitive/dataAction", PrimitiveRequest{Requestor: "bob"})
	req.Equal(http.StatusOK, resp.StatusCode)
	var snapshot PrimitiveResponse
	req.NoError(json.NewDecoder(resp.Body).Decode(&snapshot))
	req.True(snapshot.Successful)
	req.Equal("alice", snapshot.Results[controller.ResultMaster])
	req.Equal("true", snapshot.Results[controller.ResultControl])
	req.Equal(collab.MasterSlave.String(), snapshot.Results[controller.ResultMode])
}

func TestCollabServer_Unknown_Action(t *testing.T) {
	s := newTestServer(t)

	resp := s.post(t, "/primitive/selfDestructAction", PrimitiveRequest{Requestor: "alice"})

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCollabServer_Rejects_Invalid_Requests(t *testing.T) {
	s := newTestServer(t)

	cases := map[string]struct {
		path string
		body any
	}{
		"missing requestor":  {path: "/primitive/dataAction", body: PrimitiveRequest{}},
		"not json":           {path: "/primitive/dataAction", body: "nope"},
		"join without user":  {path: "/session/join", body: JoinRequest{Role: "MASTER"}},
		"join unknown role":  {path: "/session/join", body: JoinRequest{User: "alice", Role: "ADMIN"}},
		"leave without user": {path: "/session/leave", body: LeaveRequest{}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			resp := s.post(t, tc.path, tc.body)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
	require.Zero(t, s.registry.Count())
}

func TestCollabServer_Leave(t *testing.T) {
	req := require.New(t)
	s := newTestServer(t)
	s.post(t, "/session/join", JoinRequest{User: "alice", Role: "MASTER"})

	resp := s.post(t, "/session/leave", LeaveRequest{User: "alice"})

	req.Equal(http.StatusNoContent, resp.StatusCode)
	req.Zero(s.registry.Count())
}

type closedController struct {
	*controller.CollaborationController
}

func (closedController) PreRoute() bool { return false }

func TestCollabServer_Primitive_Refused_When_Controller_Not_Ready(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	registry := runtime.NewSessionRegistry()
	manager := runtime.NewCollaborationManager(log, workers.NewSupervisor(log, time.Millisecond), registry, nil, time.Millisecond)

	// Given a controller refusing to route
	closed := closedController{controller.NewCollaborationController(log, manager)}
	httpServer := httptest.NewServer(NewCollabServer(log, closed, registry, manager).Routes())
	t.Cleanup(httpServer.Close)
	s := testServer{http: httpServer, registry: registry, manager: manager}

	// When a primitive is sent
	resp := s.post(t, "/primitive/pushMessageAction", PrimitiveRequest{
		Requestor:  "alice",
		Parameters: map[string]string{controller.ParamMessage: "hi"},
	})

	// Then it is rejected and nothing reached the collaboration
	req.Equal(http.StatusServiceUnavailable, resp.StatusCode)
	var body errorResponse
	req.NoError(json.NewDecoder(resp.Body).Decode(&body))
	req.Equal(errors.ErrNotReady.Error(), body.Error)
	req.Zero(manager.Engine().GetDirectory().Len())
}
