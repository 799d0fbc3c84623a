package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minimarket/admin-api/internal/client"
	userdomain "github.com/minimarket/admin-api/internal/user/domain"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users (admin only)",
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := authedAPI()
		if err != nil {
			return err
		}

		store := client.NewStore(c.Users)
		items, err := store.Load(context.Background())
		if err != nil {
			return err
		}

		items = client.Filter(items, listSearch, client.ParseStatus(listStatus),
			func(u userdomain.User) string { return u.Name + " " + u.Email },
			func(u userdomain.User) bool { return u.IsActive })

		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tSTATUS")
		for _, item := range items {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
				item.ID, item.Name, item.Email, item.Role, activeLabel(item.IsActive))
		}
		return w.Flush()
	},
}

var (
	newUserName     string
	newUserEmail    string
	newUserPassword string
	newUserRole     string
)

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := authedAPI()
		if err != nil {
			return err
		}

		user, err := c.CreateUser(context.Background(), newUserName, newUserEmail, newUserPassword, newUserRole)
		if err != nil {
			return err
		}
		fmt.Printf("Created user %d: %s (%s)\n", user.ID, user.Name, user.Role)
		return nil
	},
}

var userDeactivateCmd = &cobra.Command{
	Use:   "deactivate <id>",
	Short: "Deactivate a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}

		c, _, err := authedAPI()
		if err != nil {
			return err
		}

		if err := c.DeactivateUser(context.Background(), id); err != nil {
			return err
		}
		fmt.Printf("User %d deactivated\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userListCmd, userCreateCmd, userDeactivateCmd)
	addListFlags(userListCmd)

	userCreateCmd.Flags().StringVar(&newUserName, "name", "", "Name")
	userCreateCmd.Flags().StringVar(&newUserEmail, "email", "", "Email")
	userCreateCmd.Flags().StringVar(&newUserPassword, "password", "", "Password")
	userCreateCmd.Flags().StringVar(&newUserRole, "role", "employee", "Role: employee or admin")
}
