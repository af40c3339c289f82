package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/shopmate/internal/domain/catalog"
	shoperrors "github.com/alexisbeaulieu97/shopmate/pkg/errors"
)

type productsOptions struct {
	category    string
	subcategory string
	search      string
	sort        string
	page        int
	jsonOutput  bool
}

func newProductsCmd(root *rootFlags) *cobra.Command {
	opts := &productsOptions{}

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products with filters, sorting and paging",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProducts(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.category, "category", catalog.CategoryAll, "Category to show")
	cmd.Flags().StringVar(&opts.subcategory, "subcategory", "", "Subcategory within the category")
	cmd.Flags().StringVar(&opts.search, "search", "", "Match title, description or subcategory")
	cmd.Flags().StringVar(&opts.sort, "sort", string(catalog.SortNewest), "newest, priceLow, priceHigh or popular")
	cmd.Flags().IntVar(&opts.page, "page", 1, "Page number, 8 products per page")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runProducts(cmd *cobra.Command, root *rootFlags, opts *productsOptions) error {
	sortKey, err := catalog.ParseSortKey(opts.sort)
	if err != nil {
		return newCommandError("list products", "reading --sort", err, "Use one of newest, priceLow, priceHigh or popular.")
	}

	app, err := newAppContext(cmd, root, logToStderr)
	if err != nil {
		return err
	}
	defer app.close()

	state := catalog.DefaultFilterState().
		WithCategory(opts.category).
		WithSubcategory(opts.subcategory).
		WithSearch(opts.search).
		WithSort(sortKey).
		WithPage(opts.page)

	page, err := app.service.Browse(app.ctx, state)
	if err != nil {
		return newCommandError("list products", "fetching the catalog", err, "Check that the API at "+app.cfg.APIURL+" is running.")
	}

	if opts.jsonOutput {
		return renderProductsJSON(cmd, page)
	}
	return renderProductsTable(cmd, page)
}

type productsJSONPayload struct {
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	Total      int               `json:"total"`
	TotalPages int               `json:"total_pages"`
	Products   []catalog.Product `json:"products"`
}

func renderProductsJSON(cmd *cobra.Command, page catalog.Page) error {
	products := page.Products
	if products == nil {
		products = []catalog.Product{}
	}
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(productsJSONPayload{
		Page:       page.Page,
		PageSize:   page.PageSize,
		Total:      page.Total,
		TotalPages: page.TotalPages,
		Products:   products,
	})
}

func renderProductsTable(cmd *cobra.Command, page catalog.Page) error {
	out := cmd.OutOrStdout()
	if page.Empty() {
		fmt.Fprintln(out, "No products found.")
		fmt.Fprintln(out, "\nTry different filters, or drop --category and --search.")
		return nil
	}
	if len(page.Products) == 0 {
		fmt.Fprintf(out, "Page %d is past the last page (%d).\n", page.Page, page.TotalPages)
		return nil
	}

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tTITLE\tCATEGORY\tPRICE\tRATING")
	for _, p := range page.Products {
		fmt.Fprintf(writer, "%s\t%s\t%s\t$%s\t%.1f\n",
			p.ID,
			p.Title,
			p.Category,
			p.Price.StringFixed(2),
			p.Rating.Rate,
		)
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nPage %d of %d (%d products)\n", page.Page, page.TotalPages, page.Total)
	return nil
}

func newProductCmd(root *rootFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "product <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root, logToStderr)
			if err != nil {
				return err
			}
			defer app.close()

			product, err := app.service.Product(app.ctx, args[0])
			if err != nil {
				if shoperrors.IsNotFound(err) {
					return newCommandError("show product", args[0], err, "Run 'shopmate products' to list product ids.")
				}
				return newCommandError("show product", args[0], err, "Check that the API at "+app.cfg.APIURL+" is running.")
			}

			if jsonOutput {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(product)
			}
			renderProduct(cmd, *product)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}

func renderProduct(cmd *cobra.Command, p catalog.Product) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", p.Title)
	fmt.Fprintf(out, "ID:       %s\n", p.ID)
	category := p.Category
	if p.Subcategory != "" {
		category += " / " + p.Subcategory
	}
	fmt.Fprintf(out, "Category: %s\n", category)
	fmt.Fprintf(out, "Price:    $%s\n", p.Price.StringFixed(2))
	fmt.Fprintf(out, "Rating:   %.1f/5 (%d reviews)\n", p.Rating.Rate, p.Rating.Count)
	if p.Description != "" {
		fmt.Fprintf(out, "\n%s\n", p.Description)
	}
}
