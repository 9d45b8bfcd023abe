package websocket

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyNewMatchPayload(t *testing.T) {
	m := NewManager()
	alice := NewClient("alice", nil, 8)
	bob := NewClient("bob", nil, 8)
	m.Register(alice)
	m.Register(bob)

	n := NewMatchNotifier(m)
	n.NotifyNewMatch("alice", "bob", 42, "Inception")

	// each side gets the other as friend_username
	assert.JSONEq(t,
		`{"type":"new_match","match_id":42,"movie_title":"Inception","friend_username":"bob"}`,
		string(<-alice.Send),
	)
	assert.JSONEq(t,
		`{"type":"new_match","match_id":42,"movie_title":"Inception","friend_username":"alice"}`,
		string(<-bob.Send),
	)
}

func TestNotifyNewMatchFieldNames(t *testing.T) {
	m := NewManager()
	alice := NewClient("alice", nil, 8)
	m.Register(alice)

	NewMatchNotifier(m).NotifyNewMatch("alice", "bob", 7, "Parasite")

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(<-alice.Send, &payload))

	// wire format is relied on by deployed clients
	assert.Len(t, payload, 4)
	assert.Equal(t, "new_match", payload["type"])
	assert.Equal(t, float64(7), payload["match_id"])
	assert.Equal(t, "Parasite", payload["movie_title"])
	assert.Equal(t, "bob", payload["friend_username"])
}

func TestNotifyNewMatchOfflineUsers(t *testing.T) {
	m := NewManager()
	alice := NewClient("alice", nil, 8)
	m.Register(alice)

	// bob has no connection; alice still gets her notification
	NewMatchNotifier(m).NotifyNewMatch("alice", "bob", 1, "Dune")

	assert.Len(t, alice.Send, 1)

	// neither side online: nothing happens, no panic
	NewMatchNotifier(NewManager()).NotifyNewMatch("x", "y", 2, "Soul")
}
