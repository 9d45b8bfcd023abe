package service_test

import (
	"testing"

	"movie-tinder/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendFriendRequestByInviteCode(t *testing.T) {
	s := setupStack(t)
	alice := s.createUser(t, "alice")
	bob := s.createUser(t, "bob")

	detail, err := s.friends.SendRequestByInviteCode(alice.ID, bob.InviteCode)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, detail.Request.SenderID)
	assert.Equal(t, bob.ID, detail.Request.ReceiverID)
	assert.Equal(t, "pending", detail.Request.Status)
}

func TestSendFriendRequestUnknownInviteCode(t *testing.T) {
	s := setupStack(t)
	alice := s.createUser(t, "alice")

	_, err := s.friends.SendRequestByInviteCode(alice.ID, "NOPE1234")
	assert.True(t, errs.IsNotFound(err))
}

func TestSendFriendRequestToSelf(t *testing.T) {
	s := setupStack(t)
	alice := s.createUser(t, "alice")

	_, err := s.friends.SendRequestByInviteCode(alice.ID, alice.InviteCode)
	assert.True(t, errs.IsConflict(err))
}

func TestDuplicatePendingRequestRejected(t *testing.T) {
	s := setupStack(t)
	alice := s.createUser(t, "alice")
	bob := s.createUser(t, "bob")

	_, err := s.friends.SendRequestByInviteCode(alice.ID, bob.InviteCode)
	require.NoError(t, err)

	// same direction
	_, err = s.friends.SendRequestByInviteCode(alice.ID, bob.InviteCode)
	assert.True(t, errs.IsConflict(err))

	// opposite direction is also blocked while pending
	_, err = s.friends.SendRequestByInviteCode(bob.ID, alice.InviteCode)
	assert.True(t, errs.IsConflict(err))
}

func TestAcceptFriendRequest(t *testing.T) {
	s := setupStack(t)
	alice := s.createUser(t, "alice")
	bob := s.createUser(t, "bob")

	detail, err := s.friends.SendRequestByInviteCode(bob.ID, alice.InviteCode)
	require.NoError(t, err)

	friendship, err := s.friends.AcceptRequest(detail.Request.ID, alice.ID)
	require.NoError(t, err)

	// pair stored in canonical order
	assert.Equal(t, alice.ID, friendship.User1ID)
	assert.Equal(t, bob.ID, friendship.User2ID)

	// request no longer pending for the receiver
	pending, err := s.friends.ListPendingRequests(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, pending)

	// both sides see the friendship
	aliceFriends, err := s.friends.ListFriends(alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceFriends, 1)
	assert.Equal(t, "bob", aliceFriends[0].Friend.Username)

	bobFriends, err := s.friends.ListFriends(bob.ID)
	require.NoError(t, err)
	require.Len(t, bobFriends, 1)
	assert.Equal(t, "alice", bobFriends[0].Friend.Username)
}

func TestOnlyReceiverCanAccept(t *testing.T) {
	s := setupStack(t)
	alice := s.createUser(t, "alice")
	bob := s.createUser(t, "bob")

	detail, err := s.friends.SendRequestByInviteCode(alice.ID, bob.InviteCode)
	require.NoError(t, err)

	// the sender must not be able to accept their own request
	_, err = s.friends.AcceptRequest(detail.Request.ID, alice.ID)
	assert.True(t, errs.IsConflict(err))
}

func TestAcceptHandledRequestRejected(t *testing.T) {
	s := setupStack(t)
	alice := s.createUser(t, "alice")
	bob := s.createUser(t, "bob")

	detail, err := s.friends.SendRequestByInviteCode(alice.ID, bob.InviteCode)
	require.NoError(t, err)

	_, err = s.friends.AcceptRequest(detail.Request.ID, bob.ID)
	require.NoError(t, err)

	_, err = s.friends.AcceptRequest(detail.Request.ID, bob.ID)
	assert.True(t, errs.IsConflict(err))
}

func TestRejectFriendRequest(t *testing.T) {
	s := setupStack(t)
	alice := s.createUser(t, "alice")
	bob := s.createUser(t, "bob")

	detail, err := s.friends.SendRequestByInviteCode(alice.ID, bob.InviteCode)
	require.NoError(t, err)

	require.NoError(t, s.friends.RejectRequest(detail.Request.ID, bob.ID))

	friends, err := s.friends.ListFriends(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, friends)

	// after a rejection a fresh request can be sent
	_, err = s.friends.SendRequestByInviteCode(alice.ID, bob.InviteCode)
	assert.NoError(t, err)
}

func TestAlreadyFriendsRejected(t *testing.T) {
	s := setupStack(t)
	alice := s.createUser(t, "alice")
	bob := s.createUser(t, "bob")
	s.makeFriends(t, alice, bob)

	_, err := s.friends.SendRequestByInviteCode(alice.ID, bob.InviteCode)
	assert.True(t, errs.IsConflict(err))
}
