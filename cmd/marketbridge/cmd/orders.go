package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	domain "github.com/donaldgifford/marketbridge/pkg/types"
)

// orderService is satisfied by both the local bridge and the API client.
type orderService interface {
	Order(ctx context.Context, m domain.Marketplace, id string) (*domain.Order, error)
	Orders(ctx context.Context, m domain.Marketplace, q domain.OrderQuery) ([]domain.Order, error)
	Return(ctx context.Context, m domain.Marketplace, id string) (*domain.Return, error)
}

func ordersCmd() *cobra.Command {
	ordersRoot := &cobra.Command{
		Use:   "orders",
		Short: "Query marketplace orders",
		Long: "Fetch and list orders from a configured marketplace. Orders are\n" +
			"normalized to id, status and creation time; --output json also\n" +
			"prints the marketplace's raw document.",
	}

	ordersRoot.AddCommand(
		ordersListCmd(),
		ordersGetCmd(),
	)

	return ordersRoot
}

func ordersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <marketplace> <order-id>",
		Short: "Get a single order",
		Example: `  # Fetch an eBay order
  marketbridge orders get ebay 12-34567-89012

  # Fetch a Walmart production order as JSON
  marketbridge orders get walmart 1796277083022 --production --output json`,
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

			order, err := svc.Order(cmd.Context(), m, args[1])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), order)
			}
			return printOrderDetail(cmd.OutOrStdout(), order)
		},
	}
}

func ordersListCmd() *cobra.Command {
	var (
		since          time.Duration
		createdAfter   string
		status         string
		limit          int
		marketplaceIDs []string
	)

	cmd := &cobra.Command{
		Use:   "list <marketplace>",
		Short: "List orders with optional filters",
		Example: `  # Orders created in the last day
  marketbridge orders list backmarket --since 24h

  # Amazon orders for one marketplace ID since a date
  marketbridge orders list amazon --created-after 2026-03-01T00:00:00Z \
    --marketplace-id ATVPDKIKX0DER

  # Fulfilled eBay orders
  marketbridge orders list ebay --status FULFILLED --limit 20`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := domain.ParseMarketplace(args[0])
			if err != nil {
				return err
			}

			q := domain.OrderQuery{
				Status:         status,
				Limit:          limit,
				MarketplaceIDs: marketplaceIDs,
			}
			switch {
			case createdAfter != "":
				q.CreatedAfter, err = time.Parse(time.RFC3339, createdAfter)
				if err != nil {
					return fmt.Errorf("--created-after: %w", err)
				}
			case since > 0:
				q.CreatedAfter = time.Now().Add(-since).UTC()
			}

			svc, err := service()
			if err != nil {
				return err
			}

			orders, err := svc.Orders(cmd.Context(), m, q)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), orders)
			}

			if len(orders) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No orders found.")
				return err
			}
			return printOrdersTable(cmd.OutOrStdout(), orders)
		},
	}

	cmd.Flags().DurationVar(&since, "since", 0, "only orders created within this duration")
	cmd.Flags().StringVar(&createdAfter, "created-after", "", "only orders created after this RFC 3339 time")
	cmd.Flags().StringVar(&status, "status", "", "marketplace-specific order status")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of orders")
	cmd.Flags().StringSliceVar(&marketplaceIDs, "marketplace-id", nil, "Amazon marketplace ID (repeatable)")
	cmd.MarkFlagsMutuallyExclusive("since", "created-after")

	return cmd
}
