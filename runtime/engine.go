// Package runtime runs the collaboration: it polls the session layer,
// holds the floor-control state, and restarts the collaboration between
// occupancy periods. Floor-control rules themselves live in domain/collab.
package runtime

import (
	"context"
	"log/slog"
	"rig-lab/contract"
	"rig-lab/domain/collab"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const DefaultPollInterval = 500 * time.Millisecond

// Engine is the authority on floor control for one occupancy period of the rig.
//
// Two locks guard its state:
//   - controlMu covers the policy (mode and delegated control set);
//   - membershipMu covers what the last poll observed (master, users, occupancy).
//
// When both are needed, membershipMu is taken first.
type Engine struct {
	id           uuid.UUID
	startedAt    time.Time
	log          *slog.Logger
	sessionView  contract.SessionView
	sink         contract.TranscriptSink
	pollInterval time.Duration
	directory    *collab.Directory

	controlMu sync.Mutex
	policy    *collab.Policy

	membershipMu sync.RWMutex
	master       string
	knownUsers   map[string]collab.Role
	occupancy    int
	launched     bool
	stopped      bool

	done     chan struct{}
	stopOnce sync.Once
}

// NewEngine builds an engine in MasterSlave mode with an empty control set
// and a fresh message directory. sink may be nil when transcripts are not kept.
func NewEngine(log *slog.Logger, sessionView contract.SessionView,
	sink contract.TranscriptSink, pollInterval time.Duration) *Engine {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	id := uuid.New()
	return &Engine{
		id:           id,
		startedAt:    time.Now().UTC(),
		log:          log.With("collaboration", id.String()),
		sessionView:  sessionView,
		sink:         sink,
		pollInterval: pollInterval,
		directory:    collab.NewDirectory(),
		policy:       collab.NewPolicy(),
		knownUsers:   make(map[string]collab.Role),
		done:         make(chan struct{}),
	}
}

func (e *Engine) ID() uuid.UUID {
	return e.id
}

// Run polls the session layer every poll interval until nobody is connected
// anymore. Reaching zero occupancy is a normal end and returns nil; a
// canceled context returns its error.
func (e *Engine) Run(ctx context.Context) error {
	if e.Stopped() {
		e.stop(ctx)
		return nil
	}
	e.log.Info("Collaboration started", "poll_interval", e.pollInterval)

	ticker := time.NewTicker(e.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if e.Reconcile() > 0 {
				continue
			}
			e.stop(ctx)
			return nil
		}
	}
}

// Reconcile runs one poll cycle and returns the new occupancy.
// It records the master, rebuilds the known users, and drops delegated
// control of users who disconnected. It never grants control.
// An empty poll marks the engine stopped in the same critical section, so a
// restart never sees a drained engine as still running.
func (e *Engine) Reconcile() int {
	users := e.sessionView.GetSessionUsers()
	if users == nil {
		users = make(map[string]collab.Role)
	}

	e.membershipMu.Lock()
	defer e.membershipMu.Unlock()

	for user, role := range users {
		if role.IsMaster() {
			e.master = user
		}
	}
	e.knownUsers = users
	e.occupancy = len(users)
	if e.occupancy == 0 {
		e.stopped = true
	}

	e.retain(users)
	return e.occupancy
}

func (e *Engine) retain(users map[string]collab.Role) {
	e.controlMu.Lock()
	defer e.controlMu.Unlock()
	e.policy.Retain(users)
}

// markLaunched records that a reconciliation loop was handed to a supervisor.
func (e *Engine) markLaunched() {
	e.membershipMu.Lock()
	defer e.membershipMu.Unlock()
	e.launched = true
}

func (e *Engine) stop(ctx context.Context) {
	e.stopOnce.Do(func() {
		e.membershipMu.Lock()
		e.stopped = true
		e.membershipMu.Unlock()
		close(e.done)

		e.log.Info("Collaboration ended, nobody connected")
		e.archive(ctx)
	})
}

func (e *Engine) archive(ctx context.Context) {
	if e.sink == nil || e.directory.Len() == 0 {
		return
	}
	transcript := collab.Transcript{
		SessionID: e.id,
		StartedAt: e.startedAt,
		EndedAt:   time.Now().UTC(),
		Messages:  e.directory.GetMessages(0),
	}
	if err := e.sink.Archive(ctx, transcript); err != nil {
		e.log.Error("Failed to archive transcript", "error", err, "messages", len(transcript.Messages))
	}
}

// Done is closed once the engine reached zero occupancy.
func (e *Engine) Done() <-chan struct{} {
	return e.done
}

// Running reports whether the reconciliation loop was launched and has not
// reached zero occupancy yet.
func (e *Engine) Running() bool {
	e.membershipMu.RLock()
	defer e.membershipMu.RUnlock()
	return e.launched && !e.stopped
}

func (e *Engine) Stopped() bool {
	e.membershipMu.RLock()
	defer e.membershipMu.RUnlock()
	return e.stopped
}

// Occupancy is the number of users seen by the last poll.
func (e *Engine) Occupancy() int {
	e.membershipMu.RLock()
	defer e.membershipMu.RUnlock()
	return e.occupancy
}

// GetMasterUser returns the last observed master, empty before the first poll.
func (e *Engine) GetMasterUser() string {
	e.membershipMu.RLock()
	defer e.membershipMu.RUnlock()
	return e.master
}

func (e *Engine) HasControl(user string) bool {
	master := e.GetMasterUser()

	e.controlMu.Lock()
	defer e.controlMu.Unlock()
	return e.policy.Allows(user, master)
}

func (e *Engine) AssignControlToUser(user string) {
	e.controlMu.Lock()
	defer e.controlMu.Unlock()
	e.policy.Grant(user)
}

func (e *Engine) RemoveControlFromUser(user string) {
	e.controlMu.Lock()
	defer e.controlMu.Unlock()
	e.policy.Revoke(user)
}

// SetMode switches the floor-control mode and revokes all delegated control.
func (e *Engine) SetMode(mode collab.ControlMode) {
	e.controlMu.Lock()
	defer e.controlMu.Unlock()
	e.policy.SetMode(mode)
	e.log.Debug("Control mode changed", "mode", mode.String())
}

func (e *Engine) GetMode() collab.ControlMode {
	e.controlMu.Lock()
	defer e.controlMu.Unlock()
	return e.policy.Mode()
}

// ControlHolders returns the users holding delegated control, sorted.
func (e *Engine) ControlHolders() []string {
	e.controlMu.Lock()
	defer e.controlMu.Unlock()
	return e.policy.Holders()
}

// GetUserList returns a snapshot of the users seen by the last poll.
func (e *Engine) GetUserList() map[string]collab.Role {
	e.membershipMu.RLock()
	defer e.membershipMu.RUnlock()
	return lo.Assign(e.knownUsers)
}

// GetDirectory returns the message log shared by every user of this collaboration.
func (e *Engine) GetDirectory() *collab.Directory {
	return e.directory
}
