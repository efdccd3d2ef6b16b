// Package roster implements the HTTP client for the external employee
// directory service. The directory owns identity and roster data; this core
// only ever reads it.
package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/clockwise-hq/attendance-backend-go/internal/domain/roster"
	"github.com/redis/go-redis/v9"
)

const cacheKey = "roster:all"

// envelope mirrors the directory service's uniform response shape.
type envelope struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Data    []roster.Employee `json:"data"`
}

type Client struct {
	baseURL  string
	http     *http.Client
	cache    *redis.Client // nil disables caching
	cacheTTL time.Duration
}

// NewClient builds a roster client for the directory at baseURL. cache may be
// nil; when set, successful roster responses are cached for cacheTTL.
func NewClient(baseURL string, cache *redis.Client, cacheTTL time.Duration) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: 10 * time.Second},
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// All implements roster.Client.
func (c *Client) All(ctx context.Context) ([]roster.Employee, error) {
	if employees, ok := c.fromCache(ctx); ok {
		return employees, nil
	}

	url := c.baseURL + "/api/employee/all"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", roster.ErrUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", roster.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", roster.ErrUnavailable, resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", roster.ErrUnavailable, err)
	}
	if env.Status != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", roster.ErrUnavailable, env.Message)
	}

	c.toCache(ctx, env.Data)
	return env.Data, nil
}

func (c *Client) fromCache(ctx context.Context) ([]roster.Employee, bool) {
	if c.cache == nil {
		return nil, false
	}

	raw, err := c.cache.Get(ctx, cacheKey).Result()
	if err != nil {
		if err != redis.Nil {
			slog.Debug("roster cache read failed", "error", err)
		}
		return nil, false
	}

	var employees []roster.Employee
	if err := json.Unmarshal([]byte(raw), &employees); err != nil {
		return nil, false
	}
	return employees, true
}

func (c *Client) toCache(ctx context.Context, employees []roster.Employee) {
	if c.cache == nil {
		return
	}

	raw, err := json.Marshal(employees)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, cacheKey, raw, c.cacheTTL).Err(); err != nil {
		slog.Debug("roster cache write failed", "error", err)
	}
}
