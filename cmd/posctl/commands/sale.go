package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	purchasedomain "github.com/minimarket/admin-api/internal/purchase/domain"
)

var saleCmd = &cobra.Command{
	Use:   "sale",
	Short: "Register and inspect sales",
}

var (
	saleCustomerID uint
	saleItems      []string
)

var saleNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Register a sale",
	Long: `Register a sale for a customer. Each --item flag adds one line in
product:quantity form, for example --item 3:2 for two units of
product 3. The employee is taken from the logged-in session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if saleCustomerID == 0 {
			return fmt.Errorf("--customer is required")
		}
		if len(saleItems) == 0 {
			return fmt.Errorf("at least one --item is required")
		}

		c, session, err := authedAPI()
		if err != nil {
			return err
		}
		if session.User == nil {
			return fmt.Errorf("session has no user, log in again")
		}

		ctx := context.Background()
		cart := purchasedomain.NewCart()

		for i, item := range saleItems {
			productID, quantity, err := parseItem(item)
			if err != nil {
				return err
			}

			product, err := c.Product(ctx, productID)
			if err != nil {
				return fmt.Errorf("item %s: %w", item, err)
			}

			if i > 0 {
				cart.AddLine()
			}
			if err := cart.SelectProduct(i, product); err != nil {
				return err
			}
			if err := cart.SetQuantity(i, quantity); err != nil {
				return err
			}
		}

		input, err := cart.Build(saleCustomerID, session.User.ID)
		if err != nil {
			return err
		}

		purchase, err := c.CreatePurchase(ctx, input)
		if err != nil {
			return err
		}

		fmt.Printf("Sale %d registered, total %.2f\n", purchase.ID, purchase.Total)
		return nil
	},
}

var saleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sales, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := authedAPI()
		if err != nil {
			return err
		}

		purchases, err := c.Purchases(context.Background())
		if err != nil {
			return err
		}

		w := newTable()
		fmt.Fprintln(w, "ID\tDATE\tCUSTOMER\tTOTAL\tSTATUS")
		for _, p := range purchases {
			customer := "-"
			if p.Customer != nil {
				customer = p.Customer.FullName
			}
			status := "active"
			if !p.IsActive {
				status = "annulled"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%s\n",
				p.ID, p.Date.Format("2006-01-02 15:04"), customer, p.Total, status)
		}
		return w.Flush()
	},
}

var saleAnnulCmd = &cobra.Command{
	Use:   "annul <id>",
	Short: "Annul a sale and restore its stock",
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

		if err := c.AnnulPurchase(context.Background(), id); err != nil {
			return err
		}
		fmt.Printf("Sale %d annulled\n", id)
		return nil
	},
}

var saleReceiptCmd = &cobra.Command{
	Use:   "receipt <id>",
	Short: "Print the ticket for a sale",
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

		receipt, err := c.Receipt(context.Background(), id)
		if err != nil {
			return err
		}

		fmt.Printf("Ticket #%d  %s\n", receipt.PurchaseID, receipt.Date.Format("2006-01-02 15:04"))
		fmt.Printf("Customer: %s\n\n", receipt.Customer)
		w := newTable()
		fmt.Fprintln(w, "PRODUCT\tQTY\tSUBTOTAL")
		for _, line := range receipt.Lines {
			fmt.Fprintf(w, "%s\t%d\t%.2f\n", line.ProductName, line.Quantity, line.Subtotal)
		}
		w.Flush()
		fmt.Printf("\nSubtotal: %.2f\nIVA:      %.2f\nTotal:    %.2f\n",
			receipt.Subtotal, receipt.Tax, receipt.Total)
		return nil
	},
}

func parseItem(s string) (uint, int, error) {
	parts := strings.SplitN(s, ":", 2)
	id, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil || id == 0 {
		return 0, 0, fmt.Errorf("invalid item %q, expected product:quantity", s)
	}

	quantity := 1
	if len(parts) == 2 {
		quantity, err = strconv.Atoi(parts[1])
		if err != nil || quantity < 1 {
			return 0, 0, fmt.Errorf("invalid quantity in %q", s)
		}
	}
	return uint(id), quantity, nil
}

func init() {
	rootCmd.AddCommand(saleCmd)
	saleCmd.AddCommand(saleNewCmd, saleListCmd, saleAnnulCmd, saleReceiptCmd)

	saleNewCmd.Flags().UintVar(&saleCustomerID, "customer", 0, "Customer id")
	saleNewCmd.Flags().StringArrayVar(&saleItems, "item", nil, "Sale line as product:quantity (repeatable)")
}
