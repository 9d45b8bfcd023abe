package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"movie-tinder/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(serverURL string) *Client {
	return NewClient(config.TMDBConfig{
		APIKey:  "test-key",
		BaseURL: serverURL,
		Region:  "US",
		Timeout: 2 * time.Second,
	})
}

func TestSearchMovie(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "The Matrix", r.URL.Query().Get("query"))
		assert.Equal(t, "1999", r.URL.Query().Get("year"))
		w.Write([]byte(`{"results":[{"id":603,"title":"The Matrix","original_title":"The Matrix","overview":"A hacker learns the truth.","release_date":"1999-03-31","poster_path":"/abc.jpg"}]}`))
	}))
	defer server.Close()

	year := 1999
	result, err := testClient(server.URL).SearchMovie(context.Background(), "The Matrix", &year)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, int64(603), result.ID)
	assert.Equal(t, "The Matrix", result.Title)

	gotYear := result.ReleaseYear()
	require.NotNil(t, gotYear)
	assert.Equal(t, 1999, *gotYear)
}

func TestSearchMovieNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	result, err := testClient(server.URL).SearchMovie(context.Background(), "no such movie", nil)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestGetWatchProvidersNormalizesAndDedupes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/603/watch/providers", r.URL.Path)
		w.Write([]byte(`{"results":{"US":{"flatrate":[
			{"provider_name":"Amazon Prime Video"},
			{"provider_name":"Amazon Video"},
			{"provider_name":"Disney Plus"},
			{"provider_name":"Some Obscure Channel"}
		]}}}`))
	}))
	defer server.Close()

	names, err := testClient(server.URL).GetWatchProviders(context.Background(), 603)
	require.NoError(t, err)
	// both Amazon aliases collapse into one canonical name
	assert.Equal(t, []string{"Amazon Prime Video", "Disney+", "Some Obscure Channel"}, names)
}

func TestGetWatchProvidersMissingRegion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":{"DE":{"flatrate":[{"provider_name":"Netflix"}]}}}`))
	}))
	defer server.Close()

	names, err := testClient(server.URL).GetWatchProviders(context.Background(), 603)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestDisabledClient(t *testing.T) {
	client := NewClient(config.TMDBConfig{BaseURL: "http://example.invalid"})
	assert.False(t, client.Enabled())

	result, err := client.SearchMovie(context.Background(), "anything", nil)
	assert.NoError(t, err)
	assert.Nil(t, result)

	names, err := client.GetWatchProviders(context.Background(), 1)
	assert.NoError(t, err)
	assert.Nil(t, names)

	results, raw, err := client.GetPopularMovies(context.Background(), 1)
	assert.NoError(t, err)
	assert.Nil(t, results)
	assert.Empty(t, raw)
}

func TestGetPopularMoviesReturnsRawPage(t *testing.T) {
	body := `{"results":[{"id":1,"title":"A"},{"id":2,"title":"B"}]}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/popular", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		w.Write([]byte(body))
	}))
	defer server.Close()

	results, raw, err := testClient(server.URL).GetPopularMovies(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, body, raw)

	// the raw page round-trips through the cache parser
	parsed, err := ParsePopularPage(raw)
	require.NoError(t, err)
	assert.Equal(t, results, parsed)
}

func TestServerErrorSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := testClient(server.URL).SearchMovie(context.Background(), "x", nil)
	assert.Error(t, err)
}

func TestNormalizeProviderName(t *testing.T) {
	cases := map[string]string{
		"Netflix":            "Netflix",
		"netflix":            "Netflix",
		"Amazon Video":       "Amazon Prime Video",
		"Prime Video":        "Amazon Prime Video",
		"Disney Plus":        "Disney+",
		"HBO Max":            "HBO Max",
		"  hulu  ":           "Hulu",
		"Unknown Service":    "Unknown Service",
		" Criterion Channel": "Criterion Channel",
	}
	for raw, want := range cases {
		assert.Equal(t, want, NormalizeProviderName(raw), "raw=%q", raw)
	}
}

func TestPosterImageURL(t *testing.T) {
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/abc.jpg", PosterImageURL("/abc.jpg"))
	assert.Empty(t, PosterImageURL(""))
}

func TestReleaseYearInvalidDate(t *testing.T) {
	r := &MovieResult{ReleaseDate: ""}
	assert.Nil(t, r.ReleaseYear())

	r = &MovieResult{ReleaseDate: "n/a"}
	assert.Nil(t, r.ReleaseYear())
}
