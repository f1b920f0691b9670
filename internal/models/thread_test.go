package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThreadDefaults(t *testing.T) {
	thread := Thread{ID: "t1"}

	require.False(t, thread.Unread())
	require.Equal(t, "unknown", thread.FirstUsername())
	require.Equal(t, "unknown", thread.Title())
}

func TestThreadTitlePrefersExplicitTitle(t *testing.T) {
	title := "Group chat"
	thread := Thread{
		Users:       []User{{PK: "1", Username: "alice"}},
		ThreadTitle: &title,
	}
	require.Equal(t, "Group chat", thread.Title())

	empty := ""
	thread.ThreadTitle = &empty
	require.Equal(t, "alice", thread.Title())
}

func TestThreadOptionalFieldsDecode(t *testing.T) {
	payload := `{
		"id": "t1",
		"users": [{"pk": "1", "username": "alice"}],
		"last_message_timestamp": "2026-01-14T12:33:38",
		"has_unread": true,
		"messages": [{"text": "hi"}, {"user_id": "1"}]
	}`

	var thread Thread
	require.NoError(t, json.Unmarshal([]byte(payload), &thread))

	require.True(t, thread.Unread())
	require.Nil(t, thread.LastMessageText)
	require.NotNil(t, thread.LastMessageTimestamp)
	require.Len(t, thread.Messages, 2)
	require.Nil(t, thread.Messages[0].UserID, "absent sender key means the authenticated user")
	require.Nil(t, thread.Messages[1].Text, "absent text means a media payload")
}
