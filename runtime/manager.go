package runtime

import (
	"context"
	"log/slog"
	"rig-lab/contract"
	"sync"
	"time"
)

// CollaborationManager owns the engine of the current collaboration and
// replaces it between occupancy periods.
type CollaborationManager struct {
	// restartMu serializes restarts so that two callers racing on an empty
	// rig cannot both launch an engine.
	restartMu sync.Mutex

	mu            sync.RWMutex
	ctx           context.Context
	current       *Engine
	cancelCurrent context.CancelFunc

	log          *slog.Logger
	supervisor   contract.ISupervisor
	sessionView  contract.SessionView
	sink         contract.TranscriptSink
	pollInterval time.Duration
}

func NewCollaborationManager(log *slog.Logger, supervisor contract.ISupervisor,
	sessionView contract.SessionView, sink contract.TranscriptSink, pollInterval time.Duration) *CollaborationManager {
	m := &CollaborationManager{
		log:          log,
		supervisor:   supervisor,
		sessionView:  sessionView,
		sink:         sink,
		pollInterval: pollInterval,
	}
	m.current = m.newEngine()
	return m
}

func (m *CollaborationManager) newEngine() *Engine {
	return NewEngine(m.log, m.sessionView, m.sink, m.pollInterval)
}

// Start launches the initial engine. Engines created by Restart are tied to ctx.
func (m *CollaborationManager) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ctx = ctx
	m.launch(m.current)
}

// launch must be called with mu held.
func (m *CollaborationManager) launch(engine *Engine) {
	if m.ctx == nil {
		return
	}
	engineCtx, cancel := context.WithCancel(m.ctx)
	m.cancelCurrent = cancel
	engine.markLaunched()
	m.supervisor.Start(engineCtx, engine)
}

// Restart replaces the current engine with a fresh one, in MasterSlave mode
// with no delegated control and an empty message log.
// The request is ignored while the current engine still sees users, or is
// running but has not polled yet, so an ongoing collaboration is never reset.
// It reports whether a new engine was created.
func (m *CollaborationManager) Restart() bool {
	m.restartMu.Lock()
	defer m.restartMu.Unlock()

	m.mu.RLock()
	previous := m.current
	m.mu.RUnlock()

	if occupancy := previous.Occupancy(); occupancy > 0 {
		m.log.Info("Restart ignored, collaboration in progress", "occupancy", occupancy)
		return false
	}
	if previous.Running() {
		m.log.Info("Restart ignored, collaboration waiting for its first poll")
		return false
	}

	engine := m.newEngine()

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancelCurrent != nil {
		m.cancelCurrent()
	}
	m.current = engine
	m.launch(engine)
	m.log.Info("Collaboration restarted", "previous", previous.ID().String(), "current", engine.ID().String())
	return true
}

// Current returns the live engine. It changes after a successful Restart.
func (m *CollaborationManager) Current() contract.Collaboration {
	return m.Engine()
}

func (m *CollaborationManager) Engine() *Engine {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Stop cancels the running engine and waits for the supervisor to drain.
func (m *CollaborationManager) Stop() {
	m.mu.Lock()
	if m.cancelCurrent != nil {
		m.cancelCurrent()
		m.cancelCurrent = nil
	}
	m.mu.Unlock()

	m.supervisor.Stop()
	m.supervisor.Wait()
}
