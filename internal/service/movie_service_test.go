package service_test

import (
	"testing"

	"movie-tinder/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMovieWithStreamingServices(t *testing.T) {
	s := setupStack(t)

	detail, err := s.movies.CreateMovie(
		&model.Movie{Title: "Inception", Genre: "Sci-Fi"},
		[]string{"Netflix", "Hulu"},
	)
	require.NoError(t, err)
	require.Len(t, detail.Services, 2)

	// services are created on demand and reused afterwards
	detail2, err := s.movies.CreateMovie(
		&model.Movie{Title: "Interstellar", Genre: "Sci-Fi"},
		[]string{"Netflix"},
	)
	require.NoError(t, err)
	require.Len(t, detail2.Services, 1)

	all, err := s.movies.ListStreamingServices()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListMoviesExcludesSwiped(t *testing.T) {
	s := setupStack(t)
	alice := s.createUser(t, "alice")
	m1 := s.createMovie(t, "Movie A")
	_ = s.createMovie(t, "Movie B")

	_, _, err := s.swipes.CreateSwipe(alice.ID, m1.ID, model.SwipeLeft)
	require.NoError(t, err)

	// alice only sees the movie she has not swiped yet
	details, err := s.movies.ListMovies(alice.ID, nil, 0, 20)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "Movie B", details[0].Movie.Title)

	// anonymous listing still returns everything
	details, err = s.movies.ListMovies(0, nil, 0, 20)
	require.NoError(t, err)
	assert.Len(t, details, 2)
}

func TestListMoviesFilterByService(t *testing.T) {
	s := setupStack(t)

	_, err := s.movies.CreateMovie(&model.Movie{Title: "On Netflix", Genre: "Drama"}, []string{"Netflix"})
	require.NoError(t, err)
	_, err = s.movies.CreateMovie(&model.Movie{Title: "On Hulu", Genre: "Drama"}, []string{"Hulu"})
	require.NoError(t, err)
	_, err = s.movies.CreateMovie(&model.Movie{Title: "Nowhere", Genre: "Drama"}, nil)
	require.NoError(t, err)

	details, err := s.movies.ListMovies(0, []string{"Netflix"}, 0, 20)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "On Netflix", details[0].Movie.Title)

	details, err = s.movies.ListMovies(0, []string{"Netflix", "Hulu"}, 0, 20)
	require.NoError(t, err)
	assert.Len(t, details, 2)
}

func TestListMoviesPagination(t *testing.T) {
	s := setupStack(t)
	for _, title := range []string{"A", "B", "C"} {
		s.createMovie(t, title)
	}

	page1, err := s.movies.ListMovies(0, nil, 0, 2)
	require.NoError(t, err)
	assert.Len(t, page1, 2)

	page2, err := s.movies.ListMovies(0, nil, 2, 2)
	require.NoError(t, err)
	assert.Len(t, page2, 1)
}
