package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/acwang/folio-core/pkg/client"
	"github.com/spf13/cobra"
)

var apiBase string

func main() {
	root := &cobra.Command{
		Use:   "folioctl",
		Short: "Admin CLI for the folio-core API",
		Long:  "folioctl manages portfolio items, blog posts and hero settings against a running folio-core server.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&apiBase, "api", defaultAPIBase(), "base URL of the API server")

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newMeCmd(),
		newPortfolioCmd(),
		newBlogCmd(),
		newHeroCmd(),
		newSubscribeCmd(),
		newContactCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if discardSessionOnAuthError(err, tokenPath()) {
			fmt.Fprintln(os.Stderr, "Run `folioctl login` to authenticate again.")
		}
		os.Exit(1)
	}
}

// discardSessionOnAuthError drops the stored token after a 401 so the
// next command starts logged out instead of retrying a stale token.
func discardSessionOnAuthError(err error, path string) bool {
	if !client.IsAuthError(err) {
		return false
	}
	if session, serr := client.LoadSession(path); serr == nil {
		session.Invalidate()
	}
	return true
}

func defaultAPIBase() string {
	if v := os.Getenv("FOLIO_API"); v != "" {
		return v
	}
	return "http://localhost:8000"
}

func tokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".folioctl-token"
	}
	return filepath.Join(home, ".folioctl", "token")
}

func newClient() (*client.Client, error) {
	session, err := client.LoadSession(tokenPath())
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return client.New(apiBase, session), nil
}

// confirmDelete asks a blocking yes/no question on stdin before a
// destructive action runs.
func confirmDelete(id string) bool {
	fmt.Printf("Delete %s? [y/N] ", id)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func newLoginCmd() *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Authenticate and store a session token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				fmt.Print("Password: ")
				reader := bufio.NewReader(os.Stdin)
				line, err := reader.ReadString('\n')
				if err != nil {
					return err
				}
				password = strings.TrimSpace(line)
			}

			c, err := newClient()
			if err != nil {
				return err
			}
			if err := c.Login(args[0], password); err != nil {
				return err
			}
			fmt.Println("Logged in.")
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			if err := c.Logout(); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func newMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the authenticated admin profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			profile, err := c.Me()
			if err != nil {
				return err
			}
			fmt.Printf("%s <%s>\n", profile.Nickname, profile.Email)
			return nil
		},
	}
}

func newSubscribeCmd() *cobra.Command {
	var source string
	cmd := &cobra.Command{
		Use:   "subscribe <email>",
		Short: "Sign an email up for the newsletter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			msg, err := c.Subscribe(args[0], source)
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "signup source label")
	return cmd
}

func newContactCmd() *cobra.Command {
	var name, email, message string
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a contact form message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			msg, err := c.SubmitContact(name, email, message)
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "sender name")
	cmd.Flags().StringVar(&email, "email", "", "sender email")
	cmd.Flags().StringVar(&message, "message", "", "message body")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("message")
	return cmd
}
