package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"movie-portal/pkg/config"
	"movie-portal/pkg/logger"
	"movie-portal/pkg/model"
)

// ErrMetadataUnavailable covers every upstream failure mode: missing or
// inactive API key, network errors and non-2xx responses.
var ErrMetadataUnavailable = errors.New("metadata unavailable")

// Image size tokens used when composing CDN URLs.
const (
	PosterSize   = "w500"
	CardSize     = "w300"
	BackdropSize = "w800"
)

// SettingsProvider resolves named settings from storage. The TMDB API key is
// looked up through it on every call; caching is the provider's decision,
// not the client's.
type SettingsProvider interface {
	GetValue(ctx context.Context, keyName string) (string, error)
}

// Client calls the TMDB read endpoints used to prefill the upload form.
type Client struct {
	baseURL      string
	imageBaseURL string
	language     string
	settings     SettingsProvider
	httpc        *http.Client
}

// NewClient creates a metadata client backed by the given settings provider.
func NewClient(cfg *config.TMDBConfig, settings SettingsProvider) *Client {
	return &Client{
		baseURL:      cfg.BaseURL,
		imageBaseURL: cfg.ImageBaseURL,
		language:     cfg.Language,
		settings:     settings,
		httpc:        &http.Client{Timeout: 15 * time.Second},
	}
}

// apiKey fetches the access key from the settings table. Deliberately not
// cached so key rotation in the admin panel takes effect immediately.
func (c *Client) apiKey(ctx context.Context) (string, error) {
	key, err := c.settings.GetValue(ctx, model.SettingTMDBAPIKey)
	if err != nil {
		return "", fmt.Errorf("%w: failed to fetch API key: %v", ErrMetadataUnavailable, err)
	}
	if key == "" {
		return "", fmt.Errorf("%w: API key not configured", ErrMetadataUnavailable)
	}
	return key, nil
}

func (c *Client) doGET(ctx context.Context, endpoint string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMetadataUnavailable, err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMetadataUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: upstream returned %s", ErrMetadataUnavailable, resp.Status)
	}

	err = json.NewDecoder(resp.Body).Decode(v)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMetadataUnavailable, err)
	}
	return nil
}

// SearchMovies returns candidate titles for a search query, in upstream order.
func (c *Client) SearchMovies(ctx context.Context, query string) ([]SearchResult, error) {
	key, err := c.apiKey(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/search/movie?api_key=%s&query=%s&language=%s&page=1&include_adult=false",
		c.baseURL, key, url.QueryEscape(query), c.language)

	var response SearchResponse
	err = c.doGET(ctx, endpoint, &response)
	if err != nil {
		logger.Errorf(err, "tmdb search failed for query %q", query)
		return nil, err
	}

	return response.Results, nil
}

// GetMovieDetails returns the full metadata record for one title.
func (c *Client) GetMovieDetails(ctx context.Context, movieID int64) (*Movie, error) {
	key, err := c.apiKey(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/movie/%d?api_key=%s&language=%s", c.baseURL, movieID, key, c.language)

	var movie Movie
	err = c.doGET(ctx, endpoint, &movie)
	if err != nil {
		logger.Errorf(err, "tmdb details failed for movie %d", movieID)
		return nil, err
	}

	return &movie, nil
}

// GetMovieCredits returns the ordered cast list for one title.
func (c *Client) GetMovieCredits(ctx context.Context, movieID int64) (*CreditsResponse, error) {
	key, err := c.apiKey(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/movie/%d/credits?api_key=%s&language=%s", c.baseURL, movieID, key, c.language)

	var credits CreditsResponse
	err = c.doGET(ctx, endpoint, &credits)
	if err != nil {
		logger.Errorf(err, "tmdb credits failed for movie %d", movieID)
		return nil, err
	}

	return &credits, nil
}

// GetPopularMovies returns the current popular titles page.
func (c *Client) GetPopularMovies(ctx context.Context) (*SearchResponse, error) {
	key, err := c.apiKey(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/movie/popular?api_key=%s&language=%s&page=1", c.baseURL, key, c.language)

	var response SearchResponse
	err = c.doGET(ctx, endpoint, &response)
	if err != nil {
		logger.Error(err, "tmdb popular movies failed")
		return nil, err
	}

	return &response, nil
}

// ImageURL composes a full CDN URL for a stored image path fragment.
func (c *Client) ImageURL(path, size string) string {
	if path == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s%s", c.imageBaseURL, size, path)
}
