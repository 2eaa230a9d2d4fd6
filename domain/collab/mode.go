package collab

import (
	"fmt"
	"rig-lab/errors"
	"strings"
)

// ControlMode decides who, besides the master, may drive the rig.
type ControlMode int

const (
	// MasterSlave lets the master delegate control to any number of users.
	MasterSlave ControlMode = iota
	// FreeForAll gives control to everybody connected.
	FreeForAll
	// BatonPass allows at most one non-master holder, who may hand it on.
	BatonPass
)

var modeNames = map[ControlMode]string{
	MasterSlave: "MasterSlave",
	FreeForAll:  "FreeForAll",
	BatonPass:   "BatonPass",
}

func (m ControlMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("ControlMode(%d)", int(m))
}

// ParseMode accepts the mode names case-insensitively.
func ParseMode(s string) (ControlMode, error) {
	for mode, name := range modeNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return mode, nil
		}
	}
	return MasterSlave, fmt.Errorf("%w: %q", errors.ErrUnknownMode, s)
}
