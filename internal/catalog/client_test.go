package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-assistant/internal/common/config"
	"movie-assistant/internal/common/logger"
)

func newTestClient(serverURL string) *Client {
	return NewClient(config.TMDBConfig{
		BaseURL:  serverURL,
		APIKey:   "test-key",
		Language: "en-US",
		Timeout:  2 * time.Second,
	}, logger.NewNoOpLogger())
}

func TestClient_PopularMovies(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": [
			{"id": 1, "title": "First", "vote_average": 8.2},
			{"id": 2, "title": "Second", "vote_average": 7.9}
		]}`))
	}))
	defer server.Close()

	movies, err := newTestClient(server.URL).PopularMovies(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/movie/popular", gotPath)
	assert.Equal(t, []string{"test-key"}, gotQuery["api_key"])
	assert.Equal(t, []string{"en-US"}, gotQuery["language"])
	assert.Equal(t, []string{"1"}, gotQuery["page"])
	require.Len(t, movies, 2)
	assert.Equal(t, "First", movies[0].Title)
	assert.Equal(t, 8.2, movies[0].VoteAverage)
}

func TestClient_SearchMovie_EmptyResultsIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "Zzzznonexistent", r.URL.Query().Get("query"))
		w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	movies, err := newTestClient(server.URL).SearchMovie(context.Background(), "Zzzznonexistent")

	assert.NoError(t, err, "zero matches is a legitimate, non-exceptional outcome")
	assert.Empty(t, movies)
}

func TestClient_MovieDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/603", r.URL.Path)
		w.Write([]byte(`{"id": 603, "title": "The Matrix", "overview": "A hacker.", "vote_average": 8.2, "release_date": "1999-03-30"}`))
	}))
	defer server.Close()

	movie, err := newTestClient(server.URL).MovieDetails(context.Background(), 603)

	require.NoError(t, err)
	assert.Equal(t, "The Matrix", movie.Title)
	assert.Equal(t, "1999-03-30", movie.ReleaseDate)
}

func TestClient_SearchPerson(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/person", r.URL.Path)
		w.Write([]byte(`{"results": [{"id": 31, "name": "Tom Hanks"}]}`))
	}))
	defer server.Close()

	people, err := newTestClient(server.URL).SearchPerson(context.Background(), "Tom Hanks")

	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, 31, people[0].ID)
}

func TestClient_PersonMovieCredits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/person/31/movie_credits", r.URL.Path)
		w.Write([]byte(`{"cast": [
			{"title": "Forrest Gump", "character": "Forrest", "popularity": 60.5},
			{"title": "Cast Away", "character": "Chuck", "popularity": 45.1}
		]}`))
	}))
	defer server.Close()

	credits, err := newTestClient(server.URL).PersonMovieCredits(context.Background(), 31)

	require.NoError(t, err)
	require.Len(t, credits, 2)
	assert.Equal(t, "Forrest", credits[0].Character)
}

func TestClient_NonSuccessStatusIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status_message": "Invalid API key"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).PopularMovies(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
	assert.Contains(t, err.Error(), "Invalid API key")
}

func TestClient_TransportFailureIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	_, err := newTestClient(server.URL).SearchMovie(context.Background(), "Heat")

	assert.Error(t, err)
}
