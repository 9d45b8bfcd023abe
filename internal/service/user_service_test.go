package service_test

import (
	"strings"
	"testing"

	"movie-tinder/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserGeneratesInviteCode(t *testing.T) {
	s := setupStack(t)

	user, token, err := s.users.CreateUser("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEmpty(t, token)

	// 8 chars, uppercase letters and digits only
	assert.Len(t, user.InviteCode, 8)
	for _, r := range user.InviteCode {
		assert.True(t, strings.ContainsRune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789", r),
			"unexpected invite code character: %c", r)
	}
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	s := setupStack(t)

	_, _, err := s.users.CreateUser("alice")
	require.NoError(t, err)

	_, _, err = s.users.CreateUser("alice")
	assert.True(t, errs.IsConflict(err))
}

func TestCreateUserEmptyUsername(t *testing.T) {
	s := setupStack(t)

	_, _, err := s.users.CreateUser("   ")
	assert.Error(t, err)
}

func TestInviteCodesAreUnique(t *testing.T) {
	s := setupStack(t)

	seen := make(map[string]bool)
	for _, name := range []string{"alice", "bob", "carol", "dave"} {
		user, _, err := s.users.CreateUser(name)
		require.NoError(t, err)
		assert.False(t, seen[user.InviteCode], "invite code collision: %s", user.InviteCode)
		seen[user.InviteCode] = true
	}
}

func TestGetUserByUsername(t *testing.T) {
	s := setupStack(t)
	created := s.createUser(t, "alice")

	user, err := s.users.GetUserByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = s.users.GetUserByUsername("ghost")
	assert.True(t, errs.IsNotFound(err))
}
