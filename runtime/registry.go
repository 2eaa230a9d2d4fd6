package runtime

import (
	"rig-lab/domain/collab"
	"sync"

	"github.com/samber/lo"
)

// SessionRegistry is the in-process session layer: it records who is
// connected to the rig and with which role, and serves that view to the
// collaboration engine.
type SessionRegistry struct {
	mu    sync.RWMutex
	users map[string]collab.Role
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		users: make(map[string]collab.Role),
	}
}

// Join registers a user, or updates the role of an already connected one.
// Joining as master demotes a previous master to active slave so at most
// one master is ever reported.
func (r *SessionRegistry) Join(user string, role collab.Role) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if role.IsMaster() {
		for other, otherRole := range r.users {
			if other != user && otherRole.IsMaster() {
				r.users[other] = collab.SlaveActive
			}
		}
	}
	r.users[user] = role
}

// Leave removes a user, unknown users are ignored.
func (r *SessionRegistry) Leave(user string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, user)
}

// GetSessionUsers returns a copy of the current user to role mapping.
func (r *SessionRegistry) GetSessionUsers() map[string]collab.Role {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Assign(r.users)
}

func (r *SessionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
