package api

import "github.com/gram-cli/gram/internal/models"

// LoginResponse is returned by POST /api/login.
type LoginResponse struct {
	Success bool         `json:"success"`
	Message *string      `json:"message,omitempty"`
	User    *models.User `json:"user,omitempty"`
}

// StatusResponse is the generic success/error envelope.
type StatusResponse struct {
	Success bool    `json:"success"`
	Error   *string `json:"error,omitempty"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status        string  `json:"status"`
	Authenticated bool    `json:"authenticated"`
	Username      *string `json:"username,omitempty"`

	// SealKey is the server's base64-encoded NaCl public key. When present,
	// login seals the password with it before transmission.
	SealKey *string `json:"seal_key,omitempty"`
}

// UserResponse is returned by GET /api/users/{username}.
type UserResponse struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user,omitempty"`
	Error   *string      `json:"error,omitempty"`
}

// InboxResponse is returned by GET /api/inbox.
type InboxResponse struct {
	Success bool            `json:"success"`
	Threads []models.Thread `json:"threads,omitempty"`
	Error   *string         `json:"error,omitempty"`
}

// ThreadResponse is returned by GET /api/threads/{id}.
type ThreadResponse struct {
	Success bool           `json:"success"`
	Thread  *models.Thread `json:"thread,omitempty"`
	Error   *string        `json:"error,omitempty"`
}

// ErrorText returns the server-supplied error text or the given fallback.
func (r *StatusResponse) ErrorText(fallback string) string {
	if r.Error != nil && *r.Error != "" {
		return *r.Error
	}
	return fallback
}

// ErrorText returns the server-supplied error text or the given fallback.
func (r *InboxResponse) ErrorText(fallback string) string {
	if r.Error != nil && *r.Error != "" {
		return *r.Error
	}
	return fallback
}

// ErrorText returns the server-supplied error text or the given fallback.
func (r *ThreadResponse) ErrorText(fallback string) string {
	if r.Error != nil && *r.Error != "" {
		return *r.Error
	}
	return fallback
}
