package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Look up a user by username",
		Long:  "Look up a user by exact username. A leading @ is accepted and ignored.",
		Args:  cobra.ExactArgs(1),
		RunE:  runSearch,
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	app, err := loadApp(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	theme := app.Theme

	username := strings.TrimPrefix(args[0], "@")

	fmt.Fprintln(out, theme.Muted(fmt.Sprintf("Searching for @%s...", username)))

	resp, err := app.Client.SearchUser(context.Background(), username)
	if err != nil {
		fmt.Fprintf(out, "%s %s\n", theme.Error("✗"), theme.Error(err.Error()))
		return err
	}

	if resp.User == nil {
		fmt.Fprintf(out, "%s %s\n", theme.Warning("✗"), theme.Warning(fmt.Sprintf("User @%s not found", username)))
		return nil
	}

	user := resp.User
	rows := []cardRow{
		{label: "Username:", value: "@" + theme.Bold(user.Username)},
	}
	if user.FullName != nil && *user.FullName != "" {
		rows = append(rows, cardRow{label: "Name:", value: *user.FullName})
	}
	if user.IsVerified != nil && *user.IsVerified {
		rows = append(rows, cardRow{label: "Verified:", value: theme.Username("✓")})
	}
	if user.IsPrivate != nil {
		account := theme.Success("Public")
		if *user.IsPrivate {
			account = theme.Warning("Private")
		}
		rows = append(rows, cardRow{label: "Account:", value: account})
	}
	if user.FollowerCount != nil {
		rows = append(rows, cardRow{label: "Followers:", value: formatCount(*user.FollowerCount)})
	}
	if user.FollowingCount != nil {
		rows = append(rows, cardRow{label: "Following:", value: formatCount(*user.FollowingCount)})
	}

	writeCard(out, theme, "User Found", rows)
	fmt.Fprintln(out)
	fmt.Fprintln(out, theme.Muted(fmt.Sprintf("View conversation: gram thread @%s", user.Username)))
	return nil
}

// formatCount abbreviates large counts (1200 -> 1.2K, 3400000 -> 3.4M).
func formatCount(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}
