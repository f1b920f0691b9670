package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gram-cli/gram/internal/inbox"
)

func newInboxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "inbox",
		Aliases: []string{"ls"},
		Short:   "List conversations",
		Long:    "List the conversation inbox, newest activity first.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}

			limit, _ := cmd.Flags().GetInt("limit")
			if !cmd.Flags().Changed("limit") {
				limit = app.Config.Inbox.DefaultLimit
			}
			unreadOnly, _ := cmd.Flags().GetBool("unread-only")

			view := inbox.View{
				Client: app.Client,
				Theme:  app.Theme,
				Out:    cmd.OutOrStdout(),
			}
			return view.List(context.Background(), limit, unreadOnly)
		},
	}
	cmd.Flags().IntP("limit", "l", 0, "Maximum number of conversations to fetch")
	cmd.Flags().Bool("unread-only", false, "Only show conversations with unread messages")
	return cmd
}

func newThreadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "thread <id-or-@username>",
		Short: "Show a conversation",
		Long:  "Show a conversation's messages. Pass a thread ID, or @username to find the conversation with that user.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}

			limit, _ := cmd.Flags().GetInt("limit")

			view := inbox.View{
				Client: app.Client,
				Theme:  app.Theme,
				Out:    cmd.OutOrStdout(),
			}
			return view.Show(context.Background(), args[0], limit)
		},
	}
	cmd.Flags().IntP("limit", "l", 20, "Maximum number of messages to fetch")
	return cmd
}

func newOpenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open <position>",
		Short: "Open a conversation by its inbox position",
		Long:  "Open the conversation at the given 1-based inbox position. Positions are not stable across fetches; the inbox is re-fetched here.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}

			position, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("position must be a number, got %q", args[0])
			}

			limit, _ := cmd.Flags().GetInt("limit")

			view := inbox.View{
				Client: app.Client,
				Theme:  app.Theme,
				Out:    cmd.OutOrStdout(),
			}
			return view.Open(context.Background(), position, limit)
		},
	}
	cmd.Flags().IntP("limit", "l", 20, "Maximum number of messages to fetch")
	return cmd
}
