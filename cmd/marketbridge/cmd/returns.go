package cmd

import (
	"github.com/spf13/cobra"

	domain "github.com/donaldgifford/marketbridge/pkg/types"
)

func returnsCmd() *cobra.Command {
	returnsRoot := &cobra.Command{
		Use:   "returns",
		Short: "Query marketplace returns",
		Long:  "Fetch return requests from marketplaces that expose a returns API (eBay, Walmart).",
	}

	returnsRoot.AddCommand(&cobra.Command{
		Use:   "get <marketplace> <return-id>",
		Short: "Get a single return",
		Example: `  # Fetch an eBay return (IAF-authenticated post-order API)
  marketbridge returns get ebay 5000012345`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := domain.ParseMarketplace(args[0])
			if err != nil {
				return err
			}

			svc, err := service()
			if err != nil {
				return err
			}

			ret, err := svc.Return(cmd.Context(), m, args[1])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), ret)
			}
			return printReturnDetail(cmd.OutOrStdout(), ret)
		},
	})

	return returnsRoot
}
