package inbox

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gram-cli/gram/internal/api"
	"github.com/gram-cli/gram/internal/models"
)

// usernameSearchLimit is how many threads to scan when resolving a target
// by participant username.
const usernameSearchLimit = 100

// InboxClient is the slice of the API client the inbox engine needs.
type InboxClient interface {
	GetInbox(ctx context.Context, limit int) (*api.InboxResponse, error)
	GetThread(ctx context.Context, id string, limit int) (*api.ThreadResponse, error)
}

// ErrNoMatch reports that no thread contained the requested participant.
// A non-fatal not-found outcome, never a transport failure.
var ErrNoMatch = errors.New("no conversation matched")

// ErrInvalidPosition reports an ordinal below 1. Raised before any fetch.
var ErrInvalidPosition = errors.New("position must be 1 or greater")

// PositionError reports an ordinal beyond the fetched inbox length.
type PositionError struct {
	Position int
	Count    int
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("no conversation at position %d, you have %d conversations", e.Position, e.Count)
}

// ServerError carries a business-level failure text from the server. The
// call itself succeeded; the response reported failure.
type ServerError struct {
	Text string
}

func (e *ServerError) Error() string {
	return e.Text
}

// Resolver maps user-supplied targets to threads from the most recent
// inbox fetch. Positions are ephemeral: the inbox has no stable ordering
// key, so an ordinal is only meaningful against the fetch that produced it.
type Resolver struct {
	Client InboxClient
}

// ParseTarget classifies a target string: "@name" addresses a participant
// username, anything else is an opaque thread identifier.
func ParseTarget(target string) (username string, byUsername bool) {
	if strings.HasPrefix(target, "@") {
		return strings.TrimPrefix(target, "@"), true
	}
	return "", false
}

// ByUsername finds the first thread (in inbox order) containing a
// participant whose username matches case-insensitively. Returns ErrNoMatch
// when no thread qualifies.
func (r *Resolver) ByUsername(ctx context.Context, username string) (*models.Thread, error) {
	resp, err := r.Client.GetInbox(ctx, usernameSearchLimit)
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &ServerError{Text: resp.ErrorText("Failed to fetch inbox")}
	}

	for i := range resp.Threads {
		thread := &resp.Threads[i]
		for _, user := range thread.Users {
			if strings.EqualFold(user.Username, username) {
				return thread, nil
			}
		}
	}
	return nil, ErrNoMatch
}

// ByPosition selects the thread at the given 1-based inbox position. The
// fetch is bounded by the position itself; a position beyond the fetched
// list yields a PositionError naming both the position and the count.
func (r *Resolver) ByPosition(ctx context.Context, position int) (*models.Thread, error) {
	if position < 1 {
		return nil, ErrInvalidPosition
	}

	resp, err := r.Client.GetInbox(ctx, position)
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &ServerError{Text: resp.ErrorText("Failed to fetch inbox")}
	}

	if position > len(resp.Threads) {
		return nil, &PositionError{Position: position, Count: len(resp.Threads)}
	}
	return &resp.Threads[position-1], nil
}
