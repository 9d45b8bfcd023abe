package service_test

import (
	"testing"

	"movie-tinder/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWatchSession(t *testing.T) {
	s := setupStack(t)
	alice := s.createUser(t, "alice")
	bob := s.createUser(t, "bob")
	s.makeFriends(t, alice, bob)

	detail, err := s.sessions.CreateSession(bob.ID, alice.ID)
	require.NoError(t, err)

	// canonical pair order
	assert.Equal(t, alice.ID, detail.Session.User1ID)
	assert.Equal(t, bob.ID, detail.Session.User2ID)
	assert.Equal(t, "alice", detail.Friend.Username)

	sessions, err := s.sessions.ListSessions(alice.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "bob", sessions[0].Friend.Username)
}

func TestWatchSessionRequiresFriendship(t *testing.T) {
	s := setupStack(t)
	alice := s.createUser(t, "alice")
	bob := s.createUser(t, "bob")

	_, err := s.sessions.CreateSession(alice.ID, bob.ID)
	assert.True(t, errs.IsConflict(err))
}

func TestWatchSessionWithSelf(t *testing.T) {
	s := setupStack(t)
	alice := s.createUser(t, "alice")

	_, err := s.sessions.CreateSession(alice.ID, alice.ID)
	assert.True(t, errs.IsConflict(err))
}

func TestWatchSessionUnknownFriend(t *testing.T) {
	s := setupStack(t)
	alice := s.createUser(t, "alice")

	_, err := s.sessions.CreateSession(alice.ID, 9999)
	assert.True(t, errs.IsNotFound(err))
}
