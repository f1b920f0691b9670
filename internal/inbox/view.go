package inbox

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gram-cli/gram/internal/models"
	"github.com/gram-cli/gram/internal/styles"
)

const separatorWidth = 60

// View orchestrates the two read flows: the inbox list and a single
// conversation. Business failures and not-found outcomes are rendered as
// styled text and swallowed; only transport failures return an error.
type View struct {
	Client InboxClient
	Theme  styles.Theme
	Out    io.Writer

	// Now supplies the current instant for age labels. Defaults to
	// time.Now when nil.
	Now func() time.Time
}

// List fetches up to limit threads and renders the inbox. With unreadOnly
// the list is filtered client-side to threads carrying the unread flag.
func (v *View) List(ctx context.Context, limit int, unreadOnly bool) error {
	fmt.Fprintln(v.Out, v.Theme.Muted("Fetching inbox..."))

	resp, err := v.Client.GetInbox(ctx, limit)
	if err != nil {
		return err
	}
	if !resp.Success {
		v.printError(resp.ErrorText("Failed to fetch inbox"))
		return nil
	}

	threads := resp.Threads
	if unreadOnly {
		threads = FilterUnread(threads)
	}

	if len(threads) == 0 {
		if unreadOnly {
			fmt.Fprintln(v.Out, v.Theme.Muted("No unread conversations."))
		} else {
			fmt.Fprintln(v.Out, v.Theme.Muted("No conversations found."))
		}
		return nil
	}

	fmt.Fprintln(v.Out)
	if unreadOnly {
		fmt.Fprintf(v.Out, "%s %s\n", v.Theme.Header("Inbox"), v.Theme.Username("(unread)"))
	} else {
		fmt.Fprintln(v.Out, v.Theme.Header("Inbox"))
	}
	v.printSeparator()

	formatter := SummaryFormatter{Theme: v.Theme, Now: v.Now}
	for i, thread := range threads {
		fmt.Fprintln(v.Out, formatter.FormatSummary(i+1, thread))
	}

	v.printSeparator()
	fmt.Fprintln(v.Out, v.Theme.Muted(fmt.Sprintf("Showing %d conversations", len(threads))))
	return nil
}

// Show renders one conversation. A "@username" target is resolved against
// the inbox; anything else is treated as an opaque thread id and fetched
// directly.
func (v *View) Show(ctx context.Context, target string, limit int) error {
	if username, byUsername := ParseTarget(target); byUsername {
		return v.showByUsername(ctx, username, limit)
	}
	return v.showThread(ctx, target, limit)
}

// Open selects a thread by its 1-based inbox position, then re-addresses
// the conversation by the first participant's username. The position is
// only meaningful against the fetch performed here; the inbox may have
// shifted since it was displayed.
func (v *View) Open(ctx context.Context, position int, limit int) error {
	if position < 1 {
		v.printError("Number must be 1 or greater")
		return nil
	}

	fmt.Fprintln(v.Out, v.Theme.Muted("Fetching inbox..."))

	resolver := Resolver{Client: v.Client}
	thread, err := resolver.ByPosition(ctx, position)
	if err != nil {
		return v.renderResolveOutcome(err)
	}

	return v.showByUsername(ctx, thread.FirstUsername(), limit)
}

func (v *View) showByUsername(ctx context.Context, username string, limit int) error {
	fmt.Fprintln(v.Out, v.Theme.Muted(fmt.Sprintf("Finding conversation with @%s...", username)))

	resolver := Resolver{Client: v.Client}
	thread, err := resolver.ByUsername(ctx, username)
	if errors.Is(err, ErrNoMatch) {
		fmt.Fprintf(v.Out, "%s %s\n", v.Theme.Warning("✗"), v.Theme.Warning(fmt.Sprintf("No conversation found with @%s", username)))
		return nil
	}
	if err != nil {
		return v.renderResolveOutcome(err)
	}

	return v.showThread(ctx, thread.ID, limit)
}

func (v *View) showThread(ctx context.Context, threadID string, limit int) error {
	fmt.Fprintln(v.Out, v.Theme.Muted("Fetching messages..."))

	resp, err := v.Client.GetThread(ctx, threadID, limit)
	if err != nil {
		return err
	}
	if !resp.Success {
		v.printError(resp.ErrorText("Failed to fetch thread"))
		return nil
	}
	if resp.Thread == nil {
		fmt.Fprintln(v.Out, v.Theme.Muted("Thread not found."))
		return nil
	}

	thread := resp.Thread

	participants := make([]string, 0, len(thread.Users))
	for _, user := range thread.Users {
		participants = append(participants, user.Username)
	}

	fmt.Fprintln(v.Out)
	fmt.Fprintf(v.Out, "%s %s\n", v.Theme.Header("Conversation with:"), v.Theme.Bold(strings.Join(participants, ", ")))
	v.printSeparator()

	if len(thread.Messages) == 0 {
		fmt.Fprintln(v.Out, v.Theme.Muted("No messages in this thread."))
		return nil
	}

	now := time.Now
	if v.Now != nil {
		now = v.Now
	}

	// The server returns messages newest-first; display oldest-first,
	// top-to-bottom, matching chat-reading order.
	for i := len(thread.Messages) - 1; i >= 0; i-- {
		msg := thread.Messages[i]

		sender := senderName(thread, msg)
		text := MediaPlaceholder
		if msg.Text != nil {
			text = *msg.Text
		}
		age := ""
		if msg.Timestamp != nil {
			age = RelativeAge(*msg.Timestamp, now())
		}

		fmt.Fprintf(v.Out, "%s %s\n", v.Theme.Username(v.Theme.Bold(sender)), v.Theme.Muted(age))
		fmt.Fprintf(v.Out, "  %s\n", text)
		fmt.Fprintln(v.Out)
	}

	v.printSeparator()
	fmt.Fprintln(v.Out, v.Theme.Muted("Thread ID: "+thread.ID))
	return nil
}

// renderResolveOutcome turns resolver outcomes into styled text. Transport
// errors pass through untouched.
func (v *View) renderResolveOutcome(err error) error {
	var positionErr *PositionError
	var serverErr *ServerError

	switch {
	case errors.Is(err, ErrInvalidPosition):
		v.printError("Number must be 1 or greater")
		return nil
	case errors.As(err, &positionErr):
		v.printError(fmt.Sprintf("No conversation at position %d. You have %d conversations.", positionErr.Position, positionErr.Count))
		return nil
	case errors.As(err, &serverErr):
		v.printError(serverErr.Text)
		return nil
	default:
		return err
	}
}

func (v *View) printError(text string) {
	fmt.Fprintf(v.Out, "%s %s\n", v.Theme.Error("✗"), v.Theme.Error(text))
}

func (v *View) printSeparator() {
	fmt.Fprintln(v.Out, v.Theme.Muted(strings.Repeat("━", separatorWidth)))
}

// FilterUnread keeps only threads carrying the unread flag, preserving
// inbox order.
func FilterUnread(threads []models.Thread) []models.Thread {
	filtered := make([]models.Thread, 0, len(threads))
	for _, thread := range threads {
		if thread.Unread() {
			filtered = append(filtered, thread)
		}
	}
	return filtered
}

func senderName(thread *models.Thread, msg models.Message) string {
	if msg.UserID == nil {
		return "You"
	}
	for _, user := range thread.Users {
		if user.PK == *msg.UserID {
			return user.Username
		}
	}
	return "You"
}
