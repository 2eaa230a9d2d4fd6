package collab

import (
	"sort"

	"github.com/samber/lo"
)

// Policy is the floor-control state of a collaboration: the current mode and
// the set of non-master users that were handed control.
// Policy is not safe for concurrent use, the engine owning it serializes access.
type Policy struct {
	mode       ControlMode
	authorized map[string]struct{}
}

func NewPolicy() *Policy {
	return &Policy{
		mode:       MasterSlave,
		authorized: make(map[string]struct{}),
	}
}

func (p *Policy) Mode() ControlMode {
	return p.mode
}

// SetMode switches mode and revokes every delegated control, even when the
// mode does not change.
func (p *Policy) SetMode(mode ControlMode) {
	p.mode = mode
	clear(p.authorized)
}

// Allows tells whether user may drive the rig while master holds the session.
func (p *Policy) Allows(user, master string) bool {
	if user != "" && user == master {
		return true
	}
	if p.mode == FreeForAll {
		return true
	}
	return p.Holds(user)
}

func (p *Policy) Holds(user string) bool {
	_, ok := p.authorized[user]
	return ok
}

// Grant hands control to user according to the mode:
// added alongside other holders in MasterSlave, replacing them in BatonPass,
// ignored in FreeForAll where everybody already has it.
func (p *Policy) Grant(user string) {
	switch p.mode {
	case MasterSlave:
		p.authorized[user] = struct{}{}
	case BatonPass:
		clear(p.authorized)
		p.authorized[user] = struct{}{}
	case FreeForAll:
	}
}

func (p *Policy) Revoke(user string) {
	delete(p.authorized, user)
}

// Retain drops holders that are no longer connected as non-master users.
// It never grants anything.
func (p *Policy) Retain(users map[string]Role) {
	for holder := range p.authorized {
		role, ok := users[holder]
		if !ok || role.IsMaster() {
			delete(p.authorized, holder)
		}
	}
}

// Holders returns the sorted identities currently holding delegated control.
func (p *Policy) Holders() []string {
	holders := lo.Keys(p.authorized)
	sort.Strings(holders)
	return holders
}
