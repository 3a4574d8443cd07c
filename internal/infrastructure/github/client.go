package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/buildloghq/buildlog-backend/internal/domain/dto"
)

const defaultBaseURL = "https://api.github.com"

// Client is a thin wrapper over the GitHub REST API v3. The token is
// optional; without it requests run against the unauthenticated quota.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a GitHub API client.
func NewClient(token string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// NewClientWithBaseURL creates a client against a custom API endpoint.
// Used by tests to point the client at a local server.
func NewClientWithBaseURL(baseURL, token string, logger *zap.Logger) *Client {
	c := NewClient(token, logger)
	c.baseURL = baseURL
	return c
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("github api returned %d for %s: %s", resp.StatusCode, path, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// FetchRepo returns the repository metadata.
func (c *Client) FetchRepo(ctx context.Context, owner, repo string) (*dto.GitHubRepo, error) {
	var result dto.GitHubRepo
	if err := c.get(ctx, fmt.Sprintf("/repos/%s/%s", owner, repo), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// FetchRecentCommits returns the latest commits on the default branch.
func (c *Client) FetchRecentCommits(ctx context.Context, owner, repo string, limit int) ([]dto.GitHubCommit, error) {
	var result []dto.GitHubCommit
	path := fmt.Sprintf("/repos/%s/%s/commits?per_page=%d", owner, repo, limit)
	if err := c.get(ctx, path, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// FetchOpenIssues returns the newest open issues.
func (c *Client) FetchOpenIssues(ctx context.Context, owner, repo string, limit int) ([]dto.GitHubIssue, error) {
	var result []dto.GitHubIssue
	path := fmt.Sprintf("/repos/%s/%s/issues?state=open&per_page=%d", owner, repo, limit)
	if err := c.get(ctx, path, &result); err != nil {
		return nil, err
	}
	return result, nil
}
