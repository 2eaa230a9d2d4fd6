package server

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"rig-lab/controller"
	"rig-lab/domain/collab"
	"rig-lab/errors"
)

// Sessions is the part of the session layer fed by this server.
type Sessions interface {
	Join(user string, role collab.Role)
	Leave(user string)
}

// Primitives is the command-routing side of the controller, lifecycle hooks included.
type Primitives interface {
	InitController() bool
	PreRoute() bool
	PostRoute() bool
	Cleanup()
	Route(action string, request controller.Request) (controller.Response, error)
}

// Restarter starts a new collaboration when the rig is free.
type Restarter interface {
	Restart() bool
}

type PrimitiveRequest struct {
	Requestor  string            `json:"requestor"`
	Parameters map[string]string `json:"parameters"`
}

type PrimitiveResponse struct {
	Successful bool              `json:"successful"`
	Results    map[string]string `json:"results"`
}

type JoinRequest struct {
	User string `json:"user"`
	Role string `json:"role"`
}

type JoinResponse struct {
	Restarted bool `json:"restarted"`
}

type LeaveRequest struct {
	User string `json:"user"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// CollabServer exposes the primitive handlers and the session hooks over HTTP.
// The requestor is trusted as sent, authentication happens in front of it.
type CollabServer struct {
	log        *slog.Logger
	controller Primitives
	sessions   Sessions
	restarter  Restarter
}

func NewCollabServer(log *slog.Logger, controller Primitives,
	sessions Sessions, restarter Restarter) *CollabServer {
	return &CollabServer{log: log, controller: controller, sessions: sessions, restarter: restarter}
}

func (s *CollabServer) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /primitive/{action}", s.handlePrimitive)
	mux.HandleFunc("POST /session/join", s.handleJoin)
	mux.HandleFunc("POST /session/leave", s.handleLeave)
	return mux
}

// handlePrimitive runs the controller lifecycle around one routed call.
func (s *CollabServer) handlePrimitive(w http.ResponseWriter, r *http.Request) {
	var body PrimitiveRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err))
		return
	}
	if body.Requestor == "" {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("%w: missing requestor", errors.ErrInvalidRequest))
		return
	}

	c := s.controller
	if !c.InitController() || !c.PreRoute() {
		s.writeError(w, http.StatusServiceUnavailable, errors.ErrNotReady)
		return
	}
	defer c.Cleanup()

	action := r.PathValue("action")
	response, err := c.Route(action, controller.Request{
		Requestor:  body.Requestor,
		Parameters: body.Parameters,
	})
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	c.PostRoute()

	s.writeJSON(w, http.StatusOK, PrimitiveResponse{
		Successful: response.Successful,
		Results:    response.Results,
	})
}

// handleJoin registers a user and asks for a new collaboration, which is
// only created when the rig was empty.
func (s *CollabServer) handleJoin(w http.ResponseWriter, r *http.Request) {
	var body JoinRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.User == "" {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("%w: user is required", errors.ErrInvalidRequest))
		return
	}
	role, err := collab.ParseRole(body.Role)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	restarted := s.restarter.Restart()
	s.sessions.Join(body.User, role)
	s.log.Info("User joined the rig", "user", body.User, "role", role.String(), "restarted", restarted)
	s.writeJSON(w, http.StatusOK, JoinResponse{Restarted: restarted})
}

func (s *CollabServer) handleLeave(w http.ResponseWriter, r *http.Request) {
	var body LeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.User == "" {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("%w: user is required", errors.ErrInvalidRequest))
		return
	}
	s.sessions.Leave(body.User)
	s.log.Info("User left the rig", "user", body.User)
	w.WriteHeader(http.StatusNoContent)
}

func (s *CollabServer) writeError(w http.ResponseWriter, status int, err error) {
	if stderrors.Is(err, errors.ErrInvalidRequest) || stderrors.Is(err, errors.ErrUnknownAction) {
		s.log.Debug("Request rejected", "status", status, "error", err)
	} else {
		s.log.Warn("Request failed", "status", status, "error", err)
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *CollabServer) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("Failed to write response", "error", err)
	}
}
