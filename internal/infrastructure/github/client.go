// Package github implements the external repository-listing gateway against
// the GitHub REST API, with a Redis cache in front of it.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/devsocial/social-api/internal/core/domain"
	"github.com/devsocial/social-api/internal/core/ports"
)

const defaultEndpoint = "https://api.github.com"

// Cache is the lookup cache in front of the API. Both methods are
// best-effort; a cache failure falls through to the live lookup.
type Cache interface {
	Get(ctx context.Context, username string) ([]byte, bool, error)
	Set(ctx context.Context, username string, payload []byte) error
}

// Client lists a user's five most recently created public repositories.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	cache      Cache
	log        zerolog.Logger
}

func NewClient(token string, cache Cache, log zerolog.Logger) *Client {
	return &Client{
		endpoint: defaultEndpoint,
		token:    token,
		httpClient: &http.Client{
			Timeout: 8 * time.Second,
		},
		cache: cache,
		log:   log,
	}
}

// Repos implements ports.GithubGateway. An unknown username fails with
// domain.ErrUserNotFound.
func (c *Client) Repos(ctx context.Context, username string) ([]ports.GithubRepo, error) {
	if c.cache != nil {
		raw, hit, err := c.cache.Get(ctx, username)
		if err != nil {
			c.log.Warn().Err(err).Str("username", username).Msg("repo cache read failed, querying live")
		} else if hit {
			var repos []ports.GithubRepo
			if err := json.Unmarshal(raw, &repos); err == nil {
				return repos, nil
			}
		}
	}

	u := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created&direction=desc",
		c.endpoint, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github lookup: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrUserNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("github lookup: unexpected status %d", resp.StatusCode)
	}

	var repos []ports.GithubRepo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, fmt.Errorf("github lookup: decode: %w", err)
	}

	if c.cache != nil {
		if payload, err := json.Marshal(repos); err == nil {
			if err := c.cache.Set(ctx, username, payload); err != nil {
				c.log.Warn().Err(err).Str("username", username).Msg("repo cache write failed")
			}
		}
	}

	return repos, nil
}
