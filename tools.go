//go:build tools
// +build tools

// Package tools pins the code generators invoked through go generate.
package rig_lab

import (
	_ "go.uber.org/mock/mockgen"
)
