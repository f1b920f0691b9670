package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCommandWiring(t *testing.T) {
	root := newRootCmd("dev")

	for _, name := range []string{"login", "logout", "status", "whoami", "search", "inbox", "thread", "open"} {
		found, _, err := root.Find([]string{name})
		require.NoError(t, err)
		require.Equal(t, name, found.Name())
	}

	found, _, err := root.Find([]string{"ls"})
	require.NoError(t, err)
	require.Equal(t, "inbox", found.Name())
}

func TestThreadCommandFlagDefaults(t *testing.T) {
	cmd := newThreadCmd()
	limit, err := cmd.Flags().GetInt("limit")
	require.NoError(t, err)
	require.Equal(t, 20, limit)
}

func TestInboxCommandFlags(t *testing.T) {
	cmd := newInboxCmd()
	unreadOnly, err := cmd.Flags().GetBool("unread-only")
	require.NoError(t, err)
	require.False(t, unreadOnly)
	require.NotNil(t, cmd.Flags().Lookup("limit"))
}

func TestFormatCount(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.0K"},
		{1200, "1.2K"},
		{999_999, "1000.0K"},
		{1_000_000, "1.0M"},
		{3_400_000, "3.4M"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, formatCount(tc.in), "n=%d", tc.in)
	}
}

// startBridge serves a canned inbox and points the CLI at it via env.
func startBridge(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	t.Setenv("GRAM_SERVER_URL", server.URL)
}

func TestInboxCommandEndToEnd(t *testing.T) {
	startBridge(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/inbox", r.URL.Path)
		// Default limit comes from config when --limit is not given.
		require.Equal(t, "20", r.URL.Query().Get("limit"))

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"threads": []map[string]any{
				{
					"id":                "t1",
					"users":             []map[string]any{{"pk": "1", "username": "alice"}},
					"last_message_text": "see you at 8",
					"has_unread":        true,
				},
			},
		})
	})

	root := newRootCmd("dev")
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs([]string{"inbox"})

	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "@alice")
	require.Contains(t, out.String(), "see you at 8")
	require.Contains(t, out.String(), "Showing 1 conversations")
}

func TestInboxCommandEmpty(t *testing.T) {
	startBridge(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	root := newRootCmd("dev")
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs([]string{"inbox"})

	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "No conversations found.")
}

func TestThreadCommandEndToEnd(t *testing.T) {
	startBridge(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/threads/t1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"thread": map[string]any{
				"id":    "t1",
				"users": []map[string]any{{"pk": "1", "username": "alice"}},
				"messages": []map[string]any{
					{"user_id": "1", "text": "hello"},
				},
			},
		})
	})

	root := newRootCmd("dev")
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs([]string{"thread", "t1"})

	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "Conversation with: alice")
	require.Contains(t, out.String(), "hello")
}

func TestSearchCommandStripsAtPrefix(t *testing.T) {
	startBridge(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/users/alice", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"user": map[string]any{
				"pk":             "1",
				"username":       "alice",
				"full_name":      "Alice Example",
				"follower_count": 1200,
			},
		})
	})

	root := newRootCmd("dev")
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs([]string{"search", "@alice"})

	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "User Found")
	require.Contains(t, out.String(), "Alice Example")
	require.Contains(t, out.String(), "1.2K")
}

func TestSearchCommandUserNotFound(t *testing.T) {
	startBridge(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false})
	})

	root := newRootCmd("dev")
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs([]string{"search", "ghost"})

	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "User @ghost not found")
}

func TestOpenCommandRejectsNonNumeric(t *testing.T) {
	startBridge(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	root := newRootCmd("dev")
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"open", "abc"})

	err := root.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "position must be a number")
}

func TestStatusCommandEndToEnd(t *testing.T) {
	startBridge(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/health", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"status":        "ok",
			"authenticated": true,
			"username":      "alice",
		})
	})

	root := newRootCmd("dev")
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs([]string{"status"})

	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "Server Status")
	require.Contains(t, out.String(), "Authenticated")
	require.Contains(t, out.String(), "alice")
}
