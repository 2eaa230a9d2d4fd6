package controller

import (
	"log/slog"
	"rig-lab/domain/collab"
	"rig-lab/errors"
	"rig-lab/mocks"
	"rig-lab/runtime"
	"rig-lab/runtime/workers"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	registry   *runtime.SessionRegistry
	manager    *runtime.CollaborationManager
	controller *CollaborationController
}

// newFixture wires a controller to a real engine whose polls are driven by the test.
func newFixture(users map[string]collab.Role) fixture {
	log := slog.Default()
	registry := runtime.NewSessionRegistry()
	for user, role := range users {
		registry.Join(user, role)
	}
	manager := runtime.NewCollaborationManager(log, workers.NewSupervisor(log, time.Millisecond), registry, nil, time.Millisecond)
	manager.Engine().Reconcile()
	return fixture{
		registry:   registry,
		manager:    manager,
		controller: NewCollaborationController(log, manager),
	}
}

func (f fixture) call(action, requestor string, params map[string]string) Response {
	response, err := f.controller.Route(action, Request{Requestor: requestor, Parameters: params})
	if err != nil {
		panic(err)
	}
	return response
}

var aliceAndBob = map[string]collab.Role{
	"alice": collab.Master,
	"bob":   collab.SlaveActive,
	"carol": collab.SlavePassive,
}

func TestController_Lifecycle_Hooks(t *testing.T) {
	req := require.New(t)
	controller := NewCollaborationController(slog.Default(), nil)

	req.True(controller.InitController())
	req.True(controller.PreRoute())
	req.True(controller.PostRoute())
	controller.Cleanup()
}

func TestController_Route_Unknown_Action(t *testing.T) {
	f := newFixture(aliceAndBob)

	_, err := f.controller.Route("rebootAction", Request{Requestor: "alice"})

	require.ErrorIs(t, err, errors.ErrUnknownAction)
}

func TestController_DataAction_Snapshot(t *testing.T) {
	req := require.New(t)
	f := newFixture(aliceAndBob)

	response := f.call(DataAction, "bob", nil)

	req.True(response.Successful)
	req.Equal(map[string]string{
		ResultMaster:    "alice",
		ResultUsers:     "alice=MASTER,bob=SLAVE_ACTIVE,carol=SLAVE_PASSIVE",
		ResultRequestor: "bob",
		ResultControl:   "false",
		ResultMode:      "MasterSlave",
	}, response.Results)
	req.NotContains(response.Results, ResultMessages)
}

func TestController_DataAction_Delivers_Messages_Once(t *testing.T) {
	req := require.New(t)
	f := newFixture(aliceAndBob)

	// Given two messages were pushed
	f.call(PushMessageAction, "bob", map[string]string{ParamMessage: "hi"})
	f.call(PushMessageAction, "alice", map[string]string{ParamMessage: "yo"})

	// When carol polls
	response := f.call(DataAction, "carol", nil)

	// Then both are delivered in order
	req.Equal("bob: hi\nalice: yo", response.Results[ResultMessages])

	// And the next poll has no messages entry at all
	response = f.call(DataAction, "carol", nil)
	req.NotContains(response.Results, ResultMessages)
}

func TestController_DataAction_Concurrent_Polls_Deliver_Once(t *testing.T) {
	req := require.New(t)
	f := newFixture(aliceAndBob)

	// Given one pending message for carol
	f.call(PushMessageAction, "bob", map[string]string{ParamMessage: "hi"})

	// When carol polls from many goroutines at once
	var wg sync.WaitGroup
	var mu sync.Mutex
	responses := make([]Response, 0, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			response := f.call(DataAction, "carol", nil)
			mu.Lock()
			responses = append(responses, response)
			mu.Unlock()
		}()
	}
	wg.Wait()

	// Then exactly one response carries the message and the others omit the entry
	delivered := 0
	for _, response := range responses {
		messages, ok := response.Results[ResultMessages]
		if !ok {
			continue
		}
		req.Equal("bob: hi", messages)
		delivered++
	}
	req.Equal(1, delivered)
}

func TestController_PushMessageAction_Echoes_To_Pusher(t *testing.T) {
	req := require.New(t)
	f := newFixture(aliceAndBob)

	response := f.call(PushMessageAction, "bob", map[string]string{ParamMessage: "hi"})

	req.True(response.Successful)
	req.Equal("bob: hi", response.Results[ResultMessages])
	req.Equal(1, f.manager.Engine().GetDirectory().Len())
}

func TestController_ToggleControlAction_By_Master(t *testing.T) {
	req := require.New(t)
	f := newFixture(aliceAndBob)

	// When the master toggles bob
	response := f.call(ToggleControlAction, "alice", map[string]string{ParamUser: "bob"})

	// Then bob gets control
	req.True(response.Successful)
	req.True(f.controller.HasControl(Request{Requestor: "bob"}))

	// When the master toggles bob again
	f.call(ToggleControlAction, "alice", map[string]string{ParamUser: "bob"})

	// Then bob loses it
	req.False(f.controller.HasControl(Request{Requestor: "bob"}))
}

func TestController_ToggleControlAction_Ignored_For_Slaves(t *testing.T) {
	req := require.New(t)
	f := newFixture(aliceAndBob)

	// Given bob holds control in MasterSlave
	f.call(ToggleControlAction, "alice", map[string]string{ParamUser: "bob"})

	// When bob tries to give control to carol
	response := f.call(ToggleControlAction, "bob", map[string]string{ParamUser: "carol"})

	// Then nothing changed, but the call still succeeded
	req.True(response.Successful)
	req.Equal("true", response.Results[ResultControl])
	req.Equal([]string{"bob"}, f.manager.Engine().ControlHolders())
}

func TestController_ToggleControlAction_Passes_Baton(t *testing.T) {
	req := require.New(t)
	f := newFixture(aliceAndBob)
	f.call(SetModeAction, "alice", map[string]string{ParamMode: "BatonPass"})
	f.call(ToggleControlAction, "alice", map[string]string{ParamUser: "bob"})

	// When bob passes the baton to carol
	response := f.call(ToggleControlAction, "bob", map[string]string{ParamUser: "carol"})

	// Then carol is the only holder
	req.Equal("false", response.Results[ResultControl])
	req.Equal([]string{"carol"}, f.manager.Engine().ControlHolders())

	// And bob cannot take it back
	f.call(ToggleControlAction, "bob", map[string]string{ParamUser: "bob"})
	req.Equal([]string{"carol"}, f.manager.Engine().ControlHolders())
}

func TestController_ToggleControlAction_Without_Target(t *testing.T) {
	req := require.New(t)
	f := newFixture(aliceAndBob)

	response := f.call(ToggleControlAction, "alice", map[string]string{})

	req.True(response.Successful)
	req.Empty(f.manager.Engine().ControlHolders())
}

func TestController_SetModeAction(t *testing.T) {
	req := require.New(t)
	f := newFixture(aliceAndBob)
	f.call(ToggleControlAction, "alice", map[string]string{ParamUser: "bob"})

	// When the master switches to FreeForAll
	response := f.call(SetModeAction, "alice", map[string]string{ParamMode: "FreeForAll"})

	// Then the mode changed and delegations were revoked
	req.True(response.Successful)
	req.Equal("FreeForAll", response.Results[ResultMode])
	req.Empty(f.manager.Engine().ControlHolders())
	req.True(f.controller.HasControl(Request{Requestor: "carol"}))
}

func TestController_SetModeAction_Ignored(t *testing.T) {
	cases := map[string]struct {
		requestor string
		mode      string
	}{
		"non master":   {requestor: "bob", mode: "FreeForAll"},
		"unknown mode": {requestor: "alice", mode: "Anarchy"},
		"missing mode": {requestor: "alice", mode: ""},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			f := newFixture(aliceAndBob)
			f.call(ToggleControlAction, "alice", map[string]string{ParamUser: "bob"})

			response := f.call(SetModeAction, tc.requestor, map[string]string{ParamMode: tc.mode})

			req.True(response.Successful)
			req.Equal("MasterSlave", response.Results[ResultMode])
			req.Equal([]string{"bob"}, f.manager.Engine().ControlHolders())
		})
	}
}

func TestController_SetModeAction_NonMaster_Never_Touches_Mode(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockCollaborationProvider(ctrl)
	collaboration := mocks.NewMockCollaboration(ctrl)
	directory := collab.NewDirectory()

	provider.EXPECT().Current().Return(collaboration).AnyTimes()
	collaboration.EXPECT().GetMasterUser().Return("alice").AnyTimes()
	collaboration.EXPECT().GetUserList().Return(map[string]collab.Role{"alice": collab.Master}).AnyTimes()
	collaboration.EXPECT().HasControl("mallory").Return(false).AnyTimes()
	collaboration.EXPECT().GetMode().Return(collab.MasterSlave).AnyTimes()
	collaboration.EXPECT().GetDirectory().Return(directory).AnyTimes()
	collaboration.EXPECT().SetMode(gomock.Any()).Times(0)
	collaboration.EXPECT().AssignControlToUser(gomock.Any()).Times(0)
	collaboration.EXPECT().RemoveControlFromUser(gomock.Any()).Times(0)

	controller := NewCollaborationController(slog.Default(), provider)
	request := Request{Requestor: "mallory", Parameters: map[string]string{
		ParamMode: "FreeForAll",
		ParamUser: "mallory",
	}}

	require.True(t, controller.SetModeAction(request).Successful)
	require.True(t, controller.ToggleControlAction(request).Successful)
}

func TestController_Follows_Restarted_Collaboration(t *testing.T) {
	req := require.New(t)
	f := newFixture(aliceAndBob)
	f.call(PushMessageAction, "bob", map[string]string{ParamMessage: "hi"})

	// Given everybody left and a new collaboration started
	f.registry.Leave("alice")
	f.registry.Leave("bob")
	f.registry.Leave("carol")
	f.manager.Engine().Reconcile()
	req.True(f.manager.Restart())

	// When dave joins as master
	f.registry.Join("dave", collab.Master)
	f.manager.Engine().Reconcile()
	response := f.call(DataAction, "dave", nil)

	// Then the controller answers for the new collaboration
	req.Equal("dave", response.Results[ResultMaster])
	req.Equal("true", response.Results[ResultControl])
	req.NotContains(response.Results, ResultMessages)
}
