package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minimarket/admin-api/internal/client"
)

var apiURL string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "posctl",
	Short: "Minimarket admin console",
	Long: `posctl is the command line console for the minimarket admin API.

It covers the daily back-office flows: managing categories, suppliers,
customers, products and users, registering and annulling sales, and
checking the dashboard.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultURL := os.Getenv("MINIMARKET_API_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:3000"
	}
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultURL, "Admin API base URL")
}

// api returns a client without a session, for login.
func api() *client.Client {
	return client.New(apiURL)
}

// authedAPI returns a client carrying the persisted session token.
func authedAPI() (*client.Client, *client.Session, error) {
	session, err := client.LoadSession()
	if err != nil {
		return nil, nil, err
	}
	c := client.New(apiURL)
	c.SetToken(session.Token)
	return c, session, nil
}
