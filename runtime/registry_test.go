package runtime

import (
	"rig-lab/domain/collab"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSessionRegistry_Join_One_User(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()
	user := uuid.NewString()

	// Given nobody is connected
	req.Empty(registry.GetSessionUsers())
	req.Zero(registry.Count())

	// When a user joins
	registry.Join(user, collab.SlaveActive)

	// Then
	req.Equal(1, registry.Count())
	req.Equal(map[string]collab.Role{user: collab.SlaveActive}, registry.GetSessionUsers())
}

func TestSessionRegistry_Join_New_Master_Demotes_Previous(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()

	registry.Join("alice", collab.Master)
	registry.Join("bob", collab.SlavePassive)

	// When bob is promoted
	registry.Join("bob", collab.Master)

	// Then alice is no longer master
	req.Equal(map[string]collab.Role{
		"alice": collab.SlaveActive,
		"bob":   collab.Master,
	}, registry.GetSessionUsers())
}

func TestSessionRegistry_Leave(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()
	registry.Join("alice", collab.Master)
	registry.Join("bob", collab.SlaveActive)

	registry.Leave("alice")
	registry.Leave("unknown")

	req.Equal(1, registry.Count())
	req.Contains(registry.GetSessionUsers(), "bob")
}

func TestSessionRegistry_GetSessionUsers_Returns_Copy(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()
	registry.Join("alice", collab.Master)

	users := registry.GetSessionUsers()
	users["mallory"] = collab.Master

	req.Equal(1, registry.Count())
}
