package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	categorydomain "github.com/minimarket/admin-api/internal/category/domain"
	"github.com/minimarket/admin-api/internal/client"
	customerdomain "github.com/minimarket/admin-api/internal/customer/domain"
	supplierdomain "github.com/minimarket/admin-api/internal/supplier/domain"
)

var (
	listSearch string
	listStatus string
)

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&listSearch, "search", "", "Substring filter")
	cmd.Flags().StringVar(&listStatus, "status", "all", "active, inactive or all")
}

func activeLabel(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}

func parseIDArg(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return uint(id), nil
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

// Categories

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage categories",
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := authedAPI()
		if err != nil {
			return err
		}

		store := client.NewStore(c.Categories)
		items, err := store.Load(context.Background())
		if err != nil {
			return err
		}

		items = client.Filter(items, listSearch, client.ParseStatus(listStatus),
			func(c categorydomain.Category) string { return c.Name },
			func(c categorydomain.Category) bool { return c.IsActive })

		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION\tSTATUS")
		for _, item := range items {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", item.ID, item.Name, item.Description, activeLabel(item.IsActive))
		}
		return w.Flush()
	},
}

var (
	categoryName        string
	categoryDescription string
)

var categoryCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a category",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := authedAPI()
		if err != nil {
			return err
		}

		category, err := c.CreateCategory(context.Background(), categoryName, categoryDescription)
		if err != nil {
			return err
		}
		fmt.Printf("Created category %d: %s\n", category.ID, category.Name)
		return nil
	},
}

var categoryDeactivateCmd = &cobra.Command{
	Use:   "deactivate <id>",
	Short: "Deactivate a category",
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

		if err := c.DeactivateCategory(context.Background(), id); err != nil {
			return err
		}
		fmt.Printf("Category %d deactivated\n", id)
		return nil
	},
}

// Suppliers

var supplierCmd = &cobra.Command{
	Use:   "supplier",
	Short: "Manage suppliers",
}

var supplierListCmd = &cobra.Command{
	Use:   "list",
	Short: "List suppliers",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := authedAPI()
		if err != nil {
			return err
		}

		store := client.NewStore(c.Suppliers)
		items, err := store.Load(context.Background())
		if err != nil {
			return err
		}

		items = client.Filter(items, listSearch, client.ParseStatus(listStatus),
			func(s supplierdomain.Supplier) string { return s.CompanyName + " " + s.ContactName },
			func(s supplierdomain.Supplier) bool { return s.IsActive })

		w := newTable()
		fmt.Fprintln(w, "ID\tCOMPANY\tCONTACT\tPHONE\tEMAIL\tSTATUS")
		for _, item := range items {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				item.ID, item.CompanyName, item.ContactName, item.Phone, item.Email, activeLabel(item.IsActive))
		}
		return w.Flush()
	},
}

var (
	supplierCompany string
	supplierContact string
	supplierPhone   string
	supplierEmail   string
)

var supplierCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a supplier",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := authedAPI()
		if err != nil {
			return err
		}

		supplier, err := c.CreateSupplier(context.Background(), supplierCompany, supplierContact, supplierPhone, supplierEmail)
		if err != nil {
			return err
		}
		fmt.Printf("Created supplier %d: %s\n", supplier.ID, supplier.CompanyName)
		return nil
	},
}

var supplierDeactivateCmd = &cobra.Command{
	Use:   "deactivate <id>",
	Short: "Deactivate a supplier",
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

		if err := c.DeactivateSupplier(context.Background(), id); err != nil {
			return err
		}
		fmt.Printf("Supplier %d deactivated\n", id)
		return nil
	},
}

// Customers

var customerCmd = &cobra.Command{
	Use:   "customer",
	Short: "Manage customers",
}

var customerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List customers",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := authedAPI()
		if err != nil {
			return err
		}

		store := client.NewStore(c.Customers)
		items, err := store.Load(context.Background())
		if err != nil {
			return err
		}

		items = client.Filter(items, listSearch, client.ParseStatus(listStatus),
			func(c customerdomain.Customer) string { return c.FullName + " " + c.Email },
			func(c customerdomain.Customer) bool { return c.IsActive })

		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE\tSTATUS")
		for _, item := range items {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
				item.ID, item.FullName, item.Email, item.Phone, activeLabel(item.IsActive))
		}
		return w.Flush()
	},
}

var (
	customerName  string
	customerEmail string
	customerPhone string
)

var customerCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a customer",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := authedAPI()
		if err != nil {
			return err
		}

		customer, err := c.CreateCustomer(context.Background(), customerName, customerEmail, customerPhone)
		if err != nil {
			return err
		}
		fmt.Printf("Created customer %d: %s\n", customer.ID, customer.FullName)
		return nil
	},
}

var customerDeactivateCmd = &cobra.Command{
	Use:   "deactivate <id>",
	Short: "Deactivate a customer",
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

		if err := c.DeactivateCustomer(context.Background(), id); err != nil {
			return err
		}
		fmt.Printf("Customer %d deactivated\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoryCmd)
	categoryCmd.AddCommand(categoryListCmd, categoryCreateCmd, categoryDeactivateCmd)
	addListFlags(categoryListCmd)
	categoryCreateCmd.Flags().StringVar(&categoryName, "name", "", "Category name")
	categoryCreateCmd.Flags().StringVar(&categoryDescription, "description", "", "Category description")

	rootCmd.AddCommand(supplierCmd)
	supplierCmd.AddCommand(supplierListCmd, supplierCreateCmd, supplierDeactivateCmd)
	addListFlags(supplierListCmd)
	supplierCreateCmd.Flags().StringVar(&supplierCompany, "company", "", "Company name")
	supplierCreateCmd.Flags().StringVar(&supplierContact, "contact", "", "Contact name")
	supplierCreateCmd.Flags().StringVar(&supplierPhone, "phone", "", "Phone")
	supplierCreateCmd.Flags().StringVar(&supplierEmail, "email", "", "Email")

	rootCmd.AddCommand(customerCmd)
	customerCmd.AddCommand(customerListCmd, customerCreateCmd, customerDeactivateCmd)
	addListFlags(customerListCmd)
	customerCreateCmd.Flags().StringVar(&customerName, "name", "", "Full name")
	customerCreateCmd.Flags().StringVar(&customerEmail, "email", "", "Email")
	customerCreateCmd.Flags().StringVar(&customerPhone, "phone", "", "Phone")
}
