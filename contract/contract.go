//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"rig-lab/domain/collab"
)

type ISupervisor interface {
	Start(ctx context.Context, worker Worker)
	Stop()
	Wait()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// SessionView is owned by the session layer. It reports who is connected
// to the rig and with which role. Implementations must return a map the
// caller may keep.
type SessionView interface {
	GetSessionUsers() map[string]collab.Role
}

// TranscriptSink receives the message log of a finished collaboration.
type TranscriptSink interface {
	Archive(ctx context.Context, transcript collab.Transcript) error
}

// Collaboration is the floor-control surface of a running engine.
type Collaboration interface {
	GetMasterUser() string
	HasControl(user string) bool
	AssignControlToUser(user string)
	RemoveControlFromUser(user string)
	SetMode(mode collab.ControlMode)
	GetMode() collab.ControlMode
	GetUserList() map[string]collab.Role
	GetDirectory() *collab.Directory
}

// CollaborationProvider hands out the engine of the current collaboration.
// The instance changes when a collaboration is restarted, callers must not cache it.
type CollaborationProvider interface {
	Current() Collaboration
}
