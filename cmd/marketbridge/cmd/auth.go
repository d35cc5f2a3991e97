package cmd

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/marketbridge/internal/bridge"
	domain "github.com/donaldgifford/marketbridge/pkg/types"
)

// authResult is one row of `auth check` output.
type authResult struct {
	Marketplace domain.Marketplace `json:"marketplace"`
	Environment domain.Environment `json:"environment"`
	OK          bool               `json:"ok"`
	Error       string             `json:"error,omitempty"`
}

var errAuthCheckFailed = errors.New("one or more marketplaces failed to authenticate")

func authCmd() *cobra.Command {
	authRoot := &cobra.Command{
		Use:   "auth",
		Short: "Inspect marketplace credentials",
	}

	var timeout time.Duration

	check := &cobra.Command{
		Use:   "check [marketplace...]",
		Short: "Acquire a token from each marketplace",
		Long: "Runs a forced token acquisition against every configured marketplace\n" +
			"(or the ones named) and reports which credentials work. Tokens are\n" +
			"never printed.",
		Example: `  # Check every configured marketplace
  marketbridge auth check

  # Check eBay production credentials only
  marketbridge auth check ebay --production`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			b, err := newBridge(cfg, newLogger(cfg))
			if err != nil {
				return err
			}

			targets := b.Marketplaces()
			if len(args) > 0 {
				targets = targets[:0]
				for _, a := range args {
					m, err := domain.ParseMarketplace(a)
					if err != nil {
						return err
					}
					targets = append(targets, m)
				}
			}

			results := make([]authResult, 0, len(targets))
			failed := false
			for _, m := range targets {
				p, err := b.Provider(m)
				if err != nil {
					return err
				}

				ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
				err = p.Authenticate(ctx)
				cancel()

				r := authResult{Marketplace: m, Environment: p.Environment(), OK: err == nil}
				if err != nil {
					r.Error = err.Error()
					failed = true
				}
				results = append(results, r)
			}

			if jsonOutput() {
				err = outputJSON(cmd.OutOrStdout(), results)
			} else {
				err = printAuthResults(cmd.OutOrStdout(), results)
			}
			if err != nil {
				return err
			}
			if failed {
				return errAuthCheckFailed
			}
			return nil
		},
	}
	check.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "per-marketplace authentication timeout")

	authRoot.AddCommand(check)
	return authRoot
}

func envCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Show each marketplace's environment, base URL and token state",
		Example: `  # Local configuration
  marketbridge env --config config.yaml

  # What a running server is using
  marketbridge env --server http://localhost:8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var statuses []bridge.ProviderStatus

			if c := remoteClient(); c != nil {
				s, err := c.Statuses(cmd.Context())
				if err != nil {
					return err
				}
				statuses = s
			} else {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				b, err := newBridge(cfg, newLogger(cfg))
				if err != nil {
					return err
				}
				statuses = b.Status()
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), statuses)
			}
			return printStatusTable(cmd.OutOrStdout(), statuses)
		},
	}
}
