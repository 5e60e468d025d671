package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Vovarama1992/bestelerim/internal/models"
	"github.com/Vovarama1992/bestelerim/internal/ports"
)

const DefaultRemoteTimeout = 30 * time.Second

// GitHubContentsClient lists a repository root through the GitHub contents API.
type GitHubContentsClient struct {
	apiHost string
	token   string
	client  *http.Client
}

func NewGitHubContentsClient(apiHost, token string, timeout time.Duration) *GitHubContentsClient {
	if timeout <= 0 {
		timeout = DefaultRemoteTimeout
	}
	return &GitHubContentsClient{
		apiHost: strings.TrimSuffix(apiHost, "/"),
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *GitHubContentsClient) ListContents(ctx context.Context, repo string) ([]models.RepoItem, error) {
	url := c.apiHost + "/repos/" + repo + "/contents"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build listing request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "bestelerim-gateway")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &ports.ConnectivityError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ports.ConnectivityError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ports.UpstreamError{Status: resp.StatusCode, Detail: githubMessage(raw)}
	}

	var items []models.RepoItem
	if err := json.Unmarshal(raw, &items); err != nil {
		// GitHub отдаёт объект вместо массива, если путь указывает на файл
		return nil, &ports.UpstreamError{Status: http.StatusBadGateway, Detail: "malformed listing"}
	}

	return items, nil
}

func githubMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(raw, &body)
	return body.Message
}
