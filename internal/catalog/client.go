package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"movie-assistant/internal/common/config"
	commonhttp "movie-assistant/internal/common/http"
	"movie-assistant/internal/common/logger"
	"movie-assistant/internal/common/metrics"
)

// Client is a stateless wrapper around the TMDB v3 API. It is safe to reuse
// across workflow invocations.
type Client struct {
	baseURL    string
	apiKey     string
	language   string
	httpClient *commonhttp.Client
	logger     logger.Logger
}

func NewClient(cfg config.TMDBConfig, log logger.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		language:   cfg.Language,
		httpClient: commonhttp.NewClient(cfg.Timeout),
		logger:     log.With(map[string]interface{}{"component": "catalog"}),
	}
}

// PopularMovies returns the first page of the catalog's popular listing in
// catalog order.
func (c *Client) PopularMovies(ctx context.Context) ([]Movie, error) {
	params := url.Values{}
	params.Set("page", "1")

	var resp movieListResponse
	if err := c.get(ctx, "/movie/popular", params, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// SearchMovie searches movies by title. Zero matches is a legitimate outcome
// and returns an empty slice, not an error.
func (c *Client) SearchMovie(ctx context.Context, query string) ([]Movie, error) {
	params := url.Values{}
	params.Set("query", query)

	var resp movieListResponse
	if err := c.get(ctx, "/search/movie", params, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// MovieDetails fetches a single movie by its catalog identifier.
func (c *Client) MovieDetails(ctx context.Context, id int) (*Movie, error) {
	var movie Movie
	if err := c.get(ctx, "/movie/"+strconv.Itoa(id), nil, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

// SearchPerson searches people by name. Zero matches returns an empty slice.
func (c *Client) SearchPerson(ctx context.Context, query string) ([]Person, error) {
	params := url.Values{}
	params.Set("query", query)

	var resp personListResponse
	if err := c.get(ctx, "/search/person", params, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// PersonMovieCredits fetches the cast credits of a person by identifier, in
// the order the catalog returns them.
func (c *Client) PersonMovieCredits(ctx context.Context, id int) ([]Credit, error) {
	var resp creditsResponse
	if err := c.get(ctx, "/person/"+strconv.Itoa(id)+"/movie_credits", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Cast, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	params.Set("language", c.language)

	reqURL := c.baseURL + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.CatalogRequests.WithLabelValues(endpoint, "transport_error").Inc()
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	metrics.CatalogRequests.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Warn("catalog request failed", map[string]interface{}{
			"endpoint": endpoint,
			"status":   resp.StatusCode,
		})
		return fmt.Errorf("catalog request failed (status %d): %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
