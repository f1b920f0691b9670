package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the messaging platform",
		Long:  "Authenticate through the bridge server. Prompts for credentials when flags are omitted; the password is never echoed.",
		Args:  cobra.NoArgs,
		RunE:  runLogin,
	}
	cmd.Flags().StringP("username", "u", "", "Username")
	cmd.Flags().StringP("password", "p", "", "Password (prompted when omitted)")
	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	app, err := loadApp(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	theme := app.Theme

	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")

	interactive := username == "" || password == ""
	if interactive {
		if !hasTTY() {
			return errors.New("login requires --username and --password without a terminal")
		}
		fmt.Fprintln(out, theme.Header("Login"))
		fmt.Fprintln(out, theme.Muted(strings.Repeat("━", cardWidth)))
		fmt.Fprintln(out, theme.Muted("Your password will be encrypted before transmission."))
		fmt.Fprintln(out)
	}

	if username == "" {
		username, err = promptLine(out, "Username: ")
		if err != nil {
			return err
		}
	}
	if password == "" {
		password, err = promptPassword(out, "Password: ")
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, theme.Muted("Authenticating..."))

	resp, err := app.Client.Login(context.Background(), username, password)
	if err != nil {
		fmt.Fprintf(out, "%s %s\n", theme.Error("✗"), theme.Error(err.Error()))
		return err
	}

	if !resp.Success {
		message := "Login failed"
		if resp.Message != nil && *resp.Message != "" {
			message = *resp.Message
		}
		fmt.Fprintf(out, "%s %s\n", theme.Error("✗"), theme.Error(message))
		return nil
	}

	fmt.Fprintf(out, "%s %s\n", theme.Success("✓"), theme.Success("Login successful!"))
	if resp.User != nil {
		fullName := ""
		if resp.User.FullName != nil {
			fullName = *resp.User.FullName
		}
		fmt.Fprintf(out, "  %s %s (%s)\n", theme.Muted("Logged in as:"), theme.Bold(resp.User.Username), fullName)
	}
	return nil
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out of the messaging platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			theme := app.Theme

			fmt.Fprintln(out, theme.Muted("Logging out..."))

			resp, err := app.Client.Logout(context.Background())
			if err != nil {
				fmt.Fprintf(out, "%s %s\n", theme.Error("✗"), theme.Error(err.Error()))
				return err
			}
			if !resp.Success {
				fmt.Fprintf(out, "%s %s\n", theme.Error("✗"), theme.Error(resp.ErrorText("Logout failed")))
				return nil
			}

			fmt.Fprintf(out, "%s %s\n", theme.Success("✓"), theme.Success("Logged out successfully"))
			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show server and authentication status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			theme := app.Theme

			health, err := app.Client.Health(context.Background())
			if err != nil {
				fmt.Fprintf(out, "%s %s %v\n", theme.Error("✗"), theme.Error("Cannot connect to server:"), err)
				return err
			}

			rows := []cardRow{
				{label: "Server:", value: theme.Success(health.Status)},
			}
			if health.Authenticated {
				username := ""
				if health.Username != nil {
					username = *health.Username
				}
				rows = append(rows, cardRow{label: "Status:", value: fmt.Sprintf("%s (%s)", theme.Success("Authenticated"), theme.Bold(username))})
			} else {
				rows = append(rows, cardRow{label: "Status:", value: theme.Warning("Not authenticated")})
			}

			writeCard(out, theme, "Server Status", rows)
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			theme := app.Theme

			health, err := app.Client.Health(context.Background())
			if err != nil {
				fmt.Fprintf(out, "%s %s %v\n", theme.Error("✗"), theme.Error("Cannot connect to server:"), err)
				return err
			}

			if !health.Authenticated {
				fmt.Fprintf(out, "%s %s\n", theme.Warning("✗"), theme.Warning("Not logged in. Use 'gram login' first."))
				return nil
			}

			username := ""
			if health.Username != nil {
				username = *health.Username
			}
			writeCard(out, theme, "Current User", []cardRow{
				{label: "Username:", value: "@" + theme.Bold(username)},
			})
			fmt.Fprintln(out)
			return nil
		},
	}
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func promptLine(out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads a masked line from the terminal. Input is never
// echoed.
func promptPassword(out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	data, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(data), nil
}
