package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minimarket/admin-api/internal/client"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the admin API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if loginEmail == "" || loginPassword == "" {
			return fmt.Errorf("--email and --password are required")
		}

		resp, err := api().Login(context.Background(), loginEmail, loginPassword)
		if err != nil {
			return err
		}

		if err := client.SaveSession(&client.Session{Token: resp.Token, User: resp.User}); err != nil {
			return err
		}

		fmt.Printf("Logged in as %s (%s)\n", resp.User.Name, resp.User.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := client.ClearSession(); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)

	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
}
