package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the sales and inventory dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := authedAPI()
		if err != nil {
			return err
		}

		summary, err := c.Dashboard(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("Sales:           %d\n", summary.TotalSales)
		fmt.Printf("Revenue:         %.2f\n", summary.TotalRevenue)
		fmt.Printf("Customers:       %d active\n", summary.ActiveCustomers)
		fmt.Printf("Inventory value: %.2f\n", summary.InventoryValue)
		fmt.Printf("Stock status:    %d normal / %d low / %d out\n\n",
			summary.StockStatus.Normal, summary.StockStatus.Low, summary.StockStatus.Out)

		fmt.Println("Revenue by month:")
		for _, bucket := range summary.MonthlyRevenue {
			fmt.Printf("  %s  %.2f\n", bucket.Label, bucket.Revenue)
		}

		if len(summary.TopProducts) > 0 {
			fmt.Println("\nTop products:")
			for _, p := range summary.TopProducts {
				fmt.Printf("  %s  x%d\n", p.Name, p.Quantity)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
