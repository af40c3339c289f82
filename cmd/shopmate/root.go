package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	apiURL     string
	dataDir    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	var start string

	cmd := &cobra.Command{
		Use:           "shopmate",
		Short:         "ShopMate is a terminal storefront",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, open the interactive storefront
			return runStorefront(cmd, flags, start)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Config file (default ~/.shopmate/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.apiURL, "api-url", "", "Product and auth API base URL")
	cmd.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "Directory for the local store and logs")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().StringVar(&start, "open", "/", "Route to open first, e.g. /products?category=Fashion")

	cmd.AddCommand(newProductsCmd(flags))
	cmd.AddCommand(newProductCmd(flags))
	cmd.AddCommand(newLoginCmd(flags))
	cmd.AddCommand(newRegisterCmd(flags))
	cmd.AddCommand(newLogoutCmd(flags))
	cmd.AddCommand(newWhoamiCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
