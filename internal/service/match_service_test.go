package service_test

import (
	"testing"

	"movie-tinder/internal/model"
	"movie-tinder/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMatches(t *testing.T) {
	s := setupStack(t)
	alice := s.createUser(t, "alice")
	bob := s.createUser(t, "bob")
	s.makeFriends(t, alice, bob)
	movie := s.createMovie(t, "Inception")

	_, _, err := s.swipes.CreateSwipe(bob.ID, movie.ID, model.SwipeRight)
	require.NoError(t, err)
	_, _, err = s.swipes.CreateSwipe(alice.ID, movie.ID, model.SwipeRight)
	require.NoError(t, err)

	// each side sees the other as the friend
	aliceMatches, err := s.matches.ListMatches(alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceMatches, 1)
	assert.Equal(t, "bob", aliceMatches[0].Friend.Username)
	assert.Equal(t, "Inception", aliceMatches[0].Movie.Movie.Title)

	bobMatches, err := s.matches.ListMatches(bob.ID)
	require.NoError(t, err)
	require.Len(t, bobMatches, 1)
	assert.Equal(t, "alice", bobMatches[0].Friend.Username)
}

func TestAcknowledgeNotification(t *testing.T) {
	s := setupStack(t)
	alice := s.createUser(t, "alice")
	bob := s.createUser(t, "bob")
	s.makeFriends(t, alice, bob)
	movie := s.createMovie(t, "Parasite")

	_, _, err := s.swipes.CreateSwipe(bob.ID, movie.ID, model.SwipeRight)
	require.NoError(t, err)
	_, matches, err := s.swipes.CreateSwipe(alice.ID, movie.ID, model.SwipeRight)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	matchID := matches[0].ID

	// alice is user1 (lower id)
	detail, err := s.matches.AcknowledgeNotification(matchID, alice.ID)
	require.NoError(t, err)
	assert.True(t, detail.Match.NotifiedUser1)
	assert.False(t, detail.Match.NotifiedUser2)

	detail, err = s.matches.AcknowledgeNotification(matchID, bob.ID)
	require.NoError(t, err)
	assert.True(t, detail.Match.NotifiedUser1)
	assert.True(t, detail.Match.NotifiedUser2)
}

func TestAcknowledgeNotificationOutsider(t *testing.T) {
	s := setupStack(t)
	alice := s.createUser(t, "alice")
	bob := s.createUser(t, "bob")
	mallory := s.createUser(t, "mallory")
	s.makeFriends(t, alice, bob)
	movie := s.createMovie(t, "Dune")

	_, _, err := s.swipes.CreateSwipe(bob.ID, movie.ID, model.SwipeRight)
	require.NoError(t, err)
	_, matches, err := s.swipes.CreateSwipe(alice.ID, movie.ID, model.SwipeRight)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	_, err = s.matches.AcknowledgeNotification(matches[0].ID, mallory.ID)
	assert.True(t, errs.IsConflict(err))
}

func TestAcknowledgeUnknownMatch(t *testing.T) {
	s := setupStack(t)
	alice := s.createUser(t, "alice")

	_, err := s.matches.AcknowledgeNotification(9999, alice.ID)
	assert.True(t, errs.IsNotFound(err))
}
