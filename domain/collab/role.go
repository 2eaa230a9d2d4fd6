// Package collab contains the core concepts of rig collaboration:
// session roles, floor-control modes, the shared message log.
// No runtime, network, or storage logic should be added here.
package collab

import (
	"fmt"
	"rig-lab/errors"
	"strings"
)

// Role is assigned to every connected user by the session layer.
// The collaboration engine reads it, never changes it.
type Role string

const (
	Master       Role = "MASTER"
	SlaveActive  Role = "SLAVE_ACTIVE"
	SlavePassive Role = "SLAVE_PASSIVE"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsMaster() bool {
	return r == Master
}

func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case Master:
		return Master, nil
	case SlaveActive:
		return SlaveActive, nil
	case SlavePassive:
		return SlavePassive, nil
	default:
		return "", fmt.Errorf("%w: %q", errors.ErrUnknownRole, s)
	}
}
