package inbox

import (
	"fmt"
	"time"

	"github.com/gram-cli/gram/internal/models"
	"github.com/gram-cli/gram/internal/styles"
)

// MediaPlaceholder is rendered in place of message text for non-text
// payloads.
const MediaPlaceholder = "[media]"

// previewLimit bounds the preview line width regardless of content. Counted
// in characters, not bytes.
const previewLimit = 35

// SummaryFormatter renders one thread as a two-line inbox entry.
type SummaryFormatter struct {
	Theme styles.Theme

	// Now supplies the current instant for age labels. Defaults to
	// time.Now when nil.
	Now func() time.Time
}

// FormatSummary renders the thread at the given 1-based inbox position:
//
//	  1. Display Name @username 13d ●
//	     └ preview text
//
// The position reflects the most recent fetch and is not stable across
// fetches.
func (f SummaryFormatter) FormatSummary(index int, thread models.Thread) string {
	now := time.Now
	if f.Now != nil {
		now = f.Now
	}

	username := thread.FirstUsername()
	title := thread.Title()

	preview := MediaPlaceholder
	if thread.LastMessageText != nil {
		preview = *thread.LastMessageText
	}
	preview = truncateRunes(preview, previewLimit)

	unread := " "
	if thread.Unread() {
		unread = f.Theme.Unread("●")
	}

	age := ""
	if thread.LastMessageTimestamp != nil {
		age = RelativeAge(*thread.LastMessageTimestamp, now())
	}

	// Pad before styling so ANSI sequences don't count against the width.
	first := fmt.Sprintf(
		"%s %s %s %s %s",
		f.Theme.Muted(fmt.Sprintf("%3d.", index)),
		f.Theme.Bold(title),
		f.Theme.Username("@"+username),
		f.Theme.Muted(age),
		unread,
	)
	second := fmt.Sprintf("     %s %s", f.Theme.Muted("└"), preview)

	return first + "\n" + second
}

// truncateRunes caps s at limit characters, appending an ellipsis marker
// when anything was cut.
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
