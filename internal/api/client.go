// Package api implements the HTTP client for the gram bridge server. The
// bridge holds the authenticated messaging session; every command talks to
// it over localhost HTTP with JSON bodies.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gram-cli/gram/internal/config"
	"github.com/gram-cli/gram/internal/logging"
)

// Client calls the bridge server. Transport and decode failures are returned
// as errors; business failures travel inside the decoded response.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient creates a client for the given server configuration.
func NewClient(cfg config.ServerConfig) *Client {
	return &Client{
		baseURL: cfg.URL,
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     logging.Component("api"),
	}
}

type loginRequest struct {
	Username       string `json:"username"`
	Password       string `json:"password,omitempty"`
	SealedPassword string `json:"sealed_password,omitempty"`
}

// Login authenticates against the bridge server. When the server advertises
// a seal key via /api/health the password is sealed before transmission and
// never sent in the clear.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	health, err := c.Health(ctx)
	if err != nil {
		return nil, err
	}

	req := loginRequest{Username: username}
	if health.SealKey != nil && *health.SealKey != "" {
		sealed, err := SealPassword(password, *health.SealKey)
		if err != nil {
			return nil, fmt.Errorf("seal password: %w", err)
		}
		req.SealedPassword = sealed
	} else {
		req.Password = password
	}

	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout ends the bridge server's session.
func (c *Client) Logout(ctx context.Context) (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.do(ctx, http.MethodPost, "/api/logout", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health reports server reachability and authentication state.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SearchUser looks up a user by exact username.
func (c *Client) SearchUser(ctx context.Context, username string) (*UserResponse, error) {
	var resp UserResponse
	path := "/api/users/" + url.PathEscape(username)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetInbox fetches up to limit threads, newest activity first.
func (c *Client) GetInbox(ctx context.Context, limit int) (*InboxResponse, error) {
	var resp InboxResponse
	path := "/api/inbox?limit=" + strconv.Itoa(limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetThread fetches a single thread with up to limit messages, newest first.
func (c *Client) GetThread(ctx context.Context, id string, limit int) (*ThreadResponse, error) {
	var resp ThreadResponse
	path := "/api/threads/" + url.PathEscape(id) + "?limit=" + strconv.Itoa(limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// do performs one JSON round-trip against the bridge server.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().
			Str("method", method).
			Str("path", path).
			Str("request_id", requestID).
			Err(err).
			Msg("request failed")
		return fmt.Errorf("cannot reach server at %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("request complete")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("server returned %s: %s", resp.Status, logging.Redact(string(data)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
