// Package models defines the value types returned by the messaging API.
package models

// User is a messaging-platform account as returned by the bridge server.
type User struct {
	// PK is the server-assigned primary key for the account.
	PK string `json:"pk"`

	// Username is the unique handle. Matching against it is
	// case-insensitive.
	Username string `json:"username"`

	// FullName is the optional display name.
	FullName *string `json:"full_name,omitempty"`

	// IsVerified indicates a verified account.
	IsVerified *bool `json:"is_verified,omitempty"`

	// IsPrivate indicates a private account.
	IsPrivate *bool `json:"is_private,omitempty"`

	FollowerCount  *int64 `json:"follower_count,omitempty"`
	FollowingCount *int64 `json:"following_count,omitempty"`
}

// Message is a single message inside a thread. All fields other than the
// envelope are optional: a missing UserID means the authenticated user sent
// it, a missing Text means a non-text (media) payload.
type Message struct {
	UserID *string `json:"user_id,omitempty"`
	Text   *string `json:"text,omitempty"`

	// Timestamp is in the server's local-naive YYYY-MM-DDTHH:MM:SS form.
	Timestamp *string `json:"timestamp,omitempty"`
}

// Thread is one conversation. Messages is only populated when the thread is
// fetched individually; inbox list responses carry the last-message preview
// fields instead.
type Thread struct {
	// ID is the opaque server-assigned thread identifier.
	ID string `json:"id"`

	// Users are the participants in server order. The first participant is
	// conventionally the counterparty in a 1:1 chat.
	Users []User `json:"users"`

	ThreadTitle          *string `json:"thread_title,omitempty"`
	LastMessageText      *string `json:"last_message_text,omitempty"`
	LastMessageTimestamp *string `json:"last_message_timestamp,omitempty"`
	HasUnread            *bool   `json:"has_unread,omitempty"`

	Messages []Message `json:"messages,omitempty"`
}

// Unread reports the unread flag with the absent case defaulting to false.
func (t *Thread) Unread() bool {
	return t.HasUnread != nil && *t.HasUnread
}

// FirstUsername returns the first participant's username, or the "unknown"
// sentinel when the participant list is empty.
func (t *Thread) FirstUsername() string {
	if len(t.Users) == 0 {
		return "unknown"
	}
	return t.Users[0].Username
}

// Title returns the explicit thread title when present, otherwise the first
// participant's username.
func (t *Thread) Title() string {
	if t.ThreadTitle != nil && *t.ThreadTitle != "" {
		return *t.ThreadTitle
	}
	return t.FirstUsername()
}
