package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-portal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettings struct {
	key string
	err error
}

func (f *fakeSettings) GetValue(ctx context.Context, keyName string) (string, error) {
	return f.key, f.err
}

func newTestClient(serverURL, key string) *Client {
	return NewClient(&config.TMDBConfig{
		BaseURL:      serverURL,
		ImageBaseURL: "https://image.example.com/t/p",
		Language:     "en-US",
	}, &fakeSettings{key: key})
}

func TestSearchMovies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "inception", r.URL.Query().Get("query"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"page":1,"results":[{"id":27205,"title":"Inception","vote_average":8.4}],"total_results":1}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-key")

	results, err := client.SearchMovies(context.Background(), "inception")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(27205), results[0].ID)
	assert.Equal(t, "Inception", results[0].Title)
}

func TestSearchMoviesMissingKey(t *testing.T) {
	client := newTestClient("http://unused", "")

	_, err := client.SearchMovies(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrMetadataUnavailable)
}

func TestSearchMoviesSettingsError(t *testing.T) {
	client := NewClient(&config.TMDBConfig{BaseURL: "http://unused"}, &fakeSettings{err: errors.New("db down")})

	_, err := client.SearchMovies(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrMetadataUnavailable)
}

func TestGetMovieDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/27205", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":27205,"title":"Inception","runtime":148,"genres":[{"id":28,"name":"Action"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-key")

	movie, err := client.GetMovieDetails(context.Background(), 27205)
	require.NoError(t, err)
	assert.Equal(t, "Inception", movie.Title)
	assert.Equal(t, 148, movie.Runtime)
	require.Len(t, movie.Genres, 1)
	assert.Equal(t, "Action", movie.Genres[0].Name)
}

func TestGetMovieCreditsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(server.URL, "revoked-key")

	_, err := client.GetMovieCredits(context.Background(), 27205)
	assert.ErrorIs(t, err, ErrMetadataUnavailable)
}

func TestImageURL(t *testing.T) {
	client := newTestClient("http://unused", "key")

	assert.Equal(t, "https://image.example.com/t/p/w500/abc.jpg", client.ImageURL("/abc.jpg", PosterSize))
	assert.Equal(t, "", client.ImageURL("", PosterSize))
}
