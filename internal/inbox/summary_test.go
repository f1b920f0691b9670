package inbox

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gram-cli/gram/internal/models"
	"github.com/gram-cli/gram/internal/styles"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func plainFormatter() SummaryFormatter {
	return SummaryFormatter{
		Theme: styles.Plain(),
		Now:   func() time.Time { return time.Unix(approxUnix(2026, 3, 10, 12, 30), 0) },
	}
}

func summaryLines(t *testing.T, f SummaryFormatter, index int, thread models.Thread) (string, string) {
	t.Helper()
	lines := strings.Split(f.FormatSummary(index, thread), "\n")
	require.Len(t, lines, 2)
	return lines[0], lines[1]
}

func TestFormatSummaryBasic(t *testing.T) {
	thread := models.Thread{
		ID:                   "t1",
		Users:                []models.User{{PK: "1", Username: "alice"}},
		LastMessageText:      strPtr("hello there"),
		LastMessageTimestamp: strPtr("2026-03-10T12:28:00"),
		HasUnread:            boolPtr(true),
	}

	first, second := summaryLines(t, plainFormatter(), 1, thread)

	require.Contains(t, first, "  1.")
	require.Contains(t, first, "alice")
	require.Contains(t, first, "@alice")
	require.Contains(t, first, "2m")
	require.Contains(t, first, "●")
	require.Equal(t, "     └ hello there", second)
}

func TestFormatSummaryReadThreadHasBlankMarker(t *testing.T) {
	thread := models.Thread{
		ID:    "t1",
		Users: []models.User{{PK: "1", Username: "alice"}},
	}

	first, _ := summaryLines(t, plainFormatter(), 3, thread)
	require.NotContains(t, first, "●")
	require.True(t, strings.HasSuffix(first, " "), "read threads keep a blank placeholder: %q", first)
}

func TestFormatSummaryTitleFallsBackToUsername(t *testing.T) {
	withTitle := models.Thread{
		Users:       []models.User{{PK: "1", Username: "bob"}},
		ThreadTitle: strPtr("Weekend plans"),
	}
	first, _ := summaryLines(t, plainFormatter(), 1, withTitle)
	require.Contains(t, first, "Weekend plans")

	withoutTitle := models.Thread{
		Users: []models.User{{PK: "1", Username: "bob"}},
	}
	first, _ = summaryLines(t, plainFormatter(), 1, withoutTitle)
	require.Contains(t, first, "bob @bob")
}

func TestFormatSummaryEmptyParticipants(t *testing.T) {
	first, _ := summaryLines(t, plainFormatter(), 1, models.Thread{ID: "t9"})
	require.Contains(t, first, "unknown")
	require.Contains(t, first, "@unknown")
}

func TestFormatSummaryMediaPlaceholder(t *testing.T) {
	thread := models.Thread{
		Users: []models.User{{PK: "1", Username: "carol"}},
	}
	_, second := summaryLines(t, plainFormatter(), 1, thread)
	require.Equal(t, "     └ "+MediaPlaceholder, second)
}

func TestFormatSummaryMissingTimestampHasNoAge(t *testing.T) {
	thread := models.Thread{
		Users:           []models.User{{PK: "1", Username: "carol"}},
		LastMessageText: strPtr("hey"),
	}
	first, _ := summaryLines(t, plainFormatter(), 1, thread)
	require.Contains(t, first, "carol @carol  ")
}

func TestTruncateRunes(t *testing.T) {
	exactly35 := strings.Repeat("a", 35)
	require.Equal(t, exactly35, truncateRunes(exactly35, 35))

	over := strings.Repeat("a", 36)
	require.Equal(t, exactly35+"...", truncateRunes(over, 35))
}

func TestTruncateRunesCountsCharactersNotBytes(t *testing.T) {
	// 36 two-byte characters: 72 bytes, 36 characters.
	over := strings.Repeat("é", 36)
	got := truncateRunes(over, 35)
	require.Equal(t, strings.Repeat("é", 35)+"...", got)
	require.Equal(t, 38, len([]rune(got)))

	exactly35 := strings.Repeat("é", 35)
	require.Equal(t, exactly35, truncateRunes(exactly35, 35))
}

func TestFormatSummaryTruncatesPreview(t *testing.T) {
	thread := models.Thread{
		Users:           []models.User{{PK: "1", Username: "dave"}},
		LastMessageText: strPtr(strings.Repeat("x", 80)),
	}
	_, second := summaryLines(t, plainFormatter(), 1, thread)
	require.Equal(t, "     └ "+strings.Repeat("x", 35)+"...", second)
}
