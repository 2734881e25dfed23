package sleeper

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	BaseURL        = "https://api.sleeper.app/v1"
	DefaultTimeout = 10 * time.Second
)

// Client defines the interface for interacting with the Sleeper API
type Client interface {
	// League methods
	GetLeague(ctx context.Context, leagueID string) (*League, error)
	GetLeagueUsers(ctx context.Context, leagueID string) ([]User, error)
	GetLeagueRosters(ctx context.Context, leagueID string) ([]Roster, error)
	GetMatchups(ctx context.Context, leagueID string, week int) ([]Matchup, error)
	GetWinnersBracket(ctx context.Context, leagueID string) ([]BracketMatchup, error)

	// State methods
	GetNFLState(ctx context.Context) (*NFLState, error)
}

// ClientConfig tunes the HTTP client. Zero values fall back to defaults and
// a non-positive RequestsPerMinute disables throttling.
type ClientConfig struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerMinute int
}

// HTTPClient implements the Client interface using HTTP requests
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *logrus.Logger
}

// NewHTTPClient creates a new HTTP client for the Sleeper API
func NewHTTPClient(cfg ClientConfig, logger *logrus.Logger) *HTTPClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = BaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60.0), 1)
	}

	return &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: limiter,
		logger:  logger,
	}
}

// makeRequest performs an HTTP GET request to the Sleeper API
func (c *HTTPClient) makeRequest(ctx context.Context, endpoint string, result interface{}) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
	}

	url := fmt.Sprintf("%s%s", c.baseURL, endpoint)

	c.logger.WithField("url", url).Debug("Making API request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).Error("HTTP request failed")
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.WithError(err).Error("Failed to read response body")
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"response":    string(body),
		}).Error("API request failed")

		return &SleeperError{
			Type:       "api_error",
			Message:    fmt.Sprintf("API request failed with status %d: %s", resp.StatusCode, string(body)),
			StatusCode: resp.StatusCode,
		}
	}

	// Sleeper answers unknown ids with 200 and a literal null.
	if bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return &SleeperError{
			Type:       "not_found",
			Message:    fmt.Sprintf("resource not found: %s", endpoint),
			StatusCode: http.StatusNotFound,
		}
	}

	if err := json.Unmarshal(body, result); err != nil {
		c.logger.WithError(err).WithField("body", string(body)).Error("Failed to unmarshal response")
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	c.logger.Debug("API request completed successfully")
	return nil
}

// GetLeague retrieves a single league season
func (c *HTTPClient) GetLeague(ctx context.Context, leagueID string) (*League, error) {
	endpoint := fmt.Sprintf("/league/%s", leagueID)
	var league League

	if err := c.makeRequest(ctx, endpoint, &league); err != nil {
		return nil, fmt.Errorf("failed to get league %s: %w", leagueID, err)
	}

	return &league, nil
}

// GetLeagueUsers retrieves all users in a league
func (c *HTTPClient) GetLeagueUsers(ctx context.Context, leagueID string) ([]User, error) {
	endpoint := fmt.Sprintf("/league/%s/users", leagueID)
	var users []User

	if err := c.makeRequest(ctx, endpoint, &users); err != nil {
		return nil, fmt.Errorf("failed to get users for league %s: %w", leagueID, err)
	}

	return users, nil
}

// GetLeagueRosters retrieves all rosters in a league
func (c *HTTPClient) GetLeagueRosters(ctx context.Context, leagueID string) ([]Roster, error) {
	endpoint := fmt.Sprintf("/league/%s/rosters", leagueID)
	var rosters []Roster

	if err := c.makeRequest(ctx, endpoint, &rosters); err != nil {
		return nil, fmt.Errorf("failed to get rosters for league %s: %w", leagueID, err)
	}

	return rosters, nil
}

// GetMatchups retrieves matchups for a specific week
func (c *HTTPClient) GetMatchups(ctx context.Context, leagueID string, week int) ([]Matchup, error) {
	endpoint := fmt.Sprintf("/league/%s/matchups/%d", leagueID, week)
	var matchups []Matchup

	if err := c.makeRequest(ctx, endpoint, &matchups); err != nil {
		return nil, fmt.Errorf("failed to get matchups for league %s week %d: %w", leagueID, week, err)
	}

	return matchups, nil
}

// GetWinnersBracket retrieves the winners bracket for a league
func (c *HTTPClient) GetWinnersBracket(ctx context.Context, leagueID string) ([]BracketMatchup, error) {
	endpoint := fmt.Sprintf("/league/%s/winners_bracket", leagueID)
	var bracket []BracketMatchup

	if err := c.makeRequest(ctx, endpoint, &bracket); err != nil {
		return nil, fmt.Errorf("failed to get winners bracket: %w", err)
	}

	return bracket, nil
}

// GetNFLState retrieves the current NFL season and week
func (c *HTTPClient) GetNFLState(ctx context.Context) (*NFLState, error) {
	var state NFLState

	if err := c.makeRequest(ctx, "/state/nfl", &state); err != nil {
		return nil, fmt.Errorf("failed to get nfl state: %w", err)
	}

	return &state, nil
}

// IsNotFound reports whether err came from a Sleeper lookup of an unknown id
func IsNotFound(err error) bool {
	var se *SleeperError
	if !errors.As(err, &se) {
		return false
	}
	return se.Type == "not_found" || se.StatusCode == http.StatusNotFound
}
