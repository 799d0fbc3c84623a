package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minimarket/admin-api/internal/client"
	productdomain "github.com/minimarket/admin-api/internal/product/domain"
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Manage products",
}

var productListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := authedAPI()
		if err != nil {
			return err
		}

		store := client.NewStore(c.Products)
		items, err := store.Load(context.Background())
		if err != nil {
			return err
		}

		items = client.Filter(items, listSearch, client.ParseStatus(listStatus),
			func(p productdomain.Product) string { return p.Name },
			func(p productdomain.Product) bool { return p.IsActive })

		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tPRICE\tSTOCK\tCATEGORY\tSTATUS")
		for _, item := range items {
			category := "Sin categoría"
			if item.Category != nil {
				category = item.Category.Name
			}
			fmt.Fprintf(w, "%d\t%s\t%.2f\t%d\t%s\t%s\n",
				item.ID, item.Name, item.Price, item.Stock, category, activeLabel(item.IsActive))
		}
		return w.Flush()
	},
}

var productInput client.ProductInput

var productCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a product",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := authedAPI()
		if err != nil {
			return err
		}

		product, err := c.CreateProduct(context.Background(), productInput)
		if err != nil {
			return err
		}
		fmt.Printf("Created product %d: %s\n", product.ID, product.Name)
		return nil
	},
}

var uploadImagePath string

var productUploadImageCmd = &cobra.Command{
	Use:   "upload-image <id>",
	Short: "Attach an image to a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		if uploadImagePath == "" {
			return fmt.Errorf("--image is required")
		}

		c, _, err := authedAPI()
		if err != nil {
			return err
		}

		product, err := c.UploadProductImage(context.Background(), id, uploadImagePath)
		if err != nil {
			return err
		}
		if product.ImageURL != nil {
			fmt.Printf("Image stored at %s\n", *product.ImageURL)
		}
		return nil
	},
}

var productDeactivateCmd = &cobra.Command{
	Use:   "deactivate <id>",
	Short: "Deactivate a product",
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

		if err := c.DeactivateProduct(context.Background(), id); err != nil {
			return err
		}
		fmt.Printf("Product %d deactivated\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(productCmd)
	productCmd.AddCommand(productListCmd, productCreateCmd, productUploadImageCmd, productDeactivateCmd)
	addListFlags(productListCmd)

	productCreateCmd.Flags().StringVar(&productInput.Name, "name", "", "Product name")
	productCreateCmd.Flags().StringVar(&productInput.Description, "description", "", "Description")
	productCreateCmd.Flags().Float64Var(&productInput.Price, "price", 0, "Unit price")
	productCreateCmd.Flags().IntVar(&productInput.Stock, "stock", 0, "Initial stock")
	productCreateCmd.Flags().UintVar(&productInput.CategoryID, "category", 0, "Category id")
	productCreateCmd.Flags().UintVar(&productInput.SupplierID, "supplier", 0, "Supplier id")
	productCreateCmd.Flags().StringVar(&productInput.ImagePath, "image", "", "Image file to upload")

	productUploadImageCmd.Flags().StringVar(&uploadImagePath, "image", "", "Image file to upload")
}
