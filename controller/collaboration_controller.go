// Package controller turns primitive requests, already parsed and
// authenticated by the routing layer, into collaboration operations.
package controller

import (
	"fmt"
	"log/slog"
	"rig-lab/contract"
	"rig-lab/domain/collab"
	"rig-lab/errors"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// Handler names, as expected by the routing layer.
const (
	DataAction          = "dataAction"
	ToggleControlAction = "toggleControlAction"
	SetModeAction       = "setModeAction"
	PushMessageAction   = "pushMessageAction"
)

// Request parameter keys.
const (
	ParamUser    = "user"
	ParamMode    = "mode"
	ParamMessage = "message"
)

// Result keys.
const (
	ResultMaster    = "master"
	ResultUsers     = "users"
	ResultRequestor = "requestor"
	ResultControl   = "control"
	ResultMode      = "mode"
	ResultMessages  = "messages"
)

const (
	authorSeparator = ": "
	lineBreak       = "\n"
	userSeparator   = ","
)

var validate = validator.New()

type Request struct {
	Requestor  string
	Parameters map[string]string
}

func (r Request) Param(key string) string {
	return r.Parameters[key]
}

type Response struct {
	Successful bool
	Results    map[string]string
}

type Handler func(Request) Response

type toggleControlParams struct {
	Requestor string `validate:"required"`
	User      string `validate:"required"`
}

type setModeParams struct {
	Requestor string `validate:"required"`
	Mode      string `validate:"required"`
}

// CollaborationController is stateless: every call resolves the current
// collaboration through the provider, so it keeps working across restarts.
type CollaborationController struct {
	log      *slog.Logger
	provider contract.CollaborationProvider
}

func NewCollaborationController(log *slog.Logger, provider contract.CollaborationProvider) *CollaborationController {
	return &CollaborationController{log: log, provider: provider}
}

func (c *CollaborationController) InitController() bool { return true }

func (c *CollaborationController) PreRoute() bool { return true }

func (c *CollaborationController) PostRoute() bool { return true }

// Cleanup has nothing to release, the controller owns no collaboration resource.
func (c *CollaborationController) Cleanup() {}

// Handlers maps every handler name to its implementation.
func (c *CollaborationController) Handlers() map[string]Handler {
	return map[string]Handler{
		DataAction:          c.DataAction,
		ToggleControlAction: c.ToggleControlAction,
		SetModeAction:       c.SetModeAction,
		PushMessageAction:   c.PushMessageAction,
	}
}

// Route dispatches a request by handler name.
func (c *CollaborationController) Route(action string, request Request) (Response, error) {
	handler, ok := c.Handlers()[action]
	if !ok {
		return Response{}, fmt.Errorf("%w: %q", errors.ErrUnknownAction, action)
	}
	return handler(request), nil
}

// DataAction returns the collaboration snapshot seen by the requestor.
// Messages the requestor has not received yet are delivered, and marked
// delivered, in the same call. The messages entry is absent when there is
// nothing new.
func (c *CollaborationController) DataAction(request Request) Response {
	collaboration := c.provider.Current()
	results := map[string]string{
		ResultMaster:    collaboration.GetMasterUser(),
		ResultUsers:     renderUsers(collaboration.GetUserList()),
		ResultRequestor: request.Requestor,
		ResultControl:   strconv.FormatBool(collaboration.HasControl(request.Requestor)),
		ResultMode:      collaboration.GetMode().String(),
	}

	remaining := collaboration.GetDirectory().GetRemainingMessages(request.Requestor)
	if len(remaining) > 0 {
		results[ResultMessages] = renderMessages(remaining)
	}
	return Response{Successful: true, Results: results}
}

// ToggleControlAction lets the master grant or revoke control of a user, and
// the baton holder pass it on. Anything else is ignored.
func (c *CollaborationController) ToggleControlAction(request Request) Response {
	params := toggleControlParams{Requestor: request.Requestor, User: request.Param(ParamUser)}
	if err := validate.Struct(params); err != nil {
		c.log.Debug("Toggle control ignored", "requestor", request.Requestor, "error", err)
		return c.DataAction(request)
	}

	collaboration := c.provider.Current()
	switch {
	case params.Requestor == collaboration.GetMasterUser():
		if collaboration.HasControl(params.User) {
			collaboration.RemoveControlFromUser(params.User)
		} else {
			collaboration.AssignControlToUser(params.User)
		}
	case collaboration.GetMode() == collab.BatonPass && collaboration.HasControl(params.Requestor):
		collaboration.AssignControlToUser(params.User)
	default:
		c.log.Debug("Toggle control ignored, requestor not allowed",
			"requestor", params.Requestor, "user", params.User)
	}
	return c.DataAction(request)
}

// SetModeAction changes the control mode when asked by the master.
// Other requestors and unknown modes are silently ignored.
func (c *CollaborationController) SetModeAction(request Request) Response {
	params := setModeParams{Requestor: request.Requestor, Mode: request.Param(ParamMode)}
	if err := validate.Struct(params); err != nil {
		c.log.Debug("Set mode ignored", "requestor", request.Requestor, "error", err)
		return c.DataAction(request)
	}

	collaboration := c.provider.Current()
	if params.Requestor != collaboration.GetMasterUser() {
		c.log.Debug("Set mode ignored, requestor is not master", "requestor", params.Requestor)
		return c.DataAction(request)
	}
	mode, err := collab.ParseMode(params.Mode)
	if err != nil {
		c.log.Debug("Set mode ignored", "requestor", params.Requestor, "error", err)
		return c.DataAction(request)
	}
	collaboration.SetMode(mode)
	return c.DataAction(request)
}

// PushMessageAction appends a message under the requestor's name.
func (c *CollaborationController) PushMessageAction(request Request) Response {
	c.provider.Current().GetDirectory().AddMessage(request.Requestor, request.Param(ParamMessage))
	return c.DataAction(request)
}

func (c *CollaborationController) HasControl(request Request) bool {
	return c.provider.Current().HasControl(request.Requestor)
}

// renderUsers writes "user=ROLE" pairs sorted by user.
func renderUsers(users map[string]collab.Role) string {
	pairs := lo.MapToSlice(users, func(user string, role collab.Role) string {
		return user + "=" + role.String()
	})
	sort.Strings(pairs)
	return strings.Join(pairs, userSeparator)
}

func renderMessages(messages []collab.Message) string {
	return strings.Join(lo.Map(messages, func(m collab.Message, _ int) string {
		return m.Author + authorSeparator + m.Text
	}), lineBreak)
}
