// Package cmd implements the marketbridge CLI commands.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/donaldgifford/marketbridge/internal/api/client"
	"github.com/donaldgifford/marketbridge/internal/bridge"
	"github.com/donaldgifford/marketbridge/internal/config"
	"github.com/donaldgifford/marketbridge/pkg/dispatch"
	"github.com/donaldgifford/marketbridge/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "marketbridge",
	Short: "Unified access to Amazon, eBay, Walmart and Backmarket seller APIs",
	Long: "marketbridge authenticates against Amazon SP-API, eBay, Walmart and\n" +
		"Backmarket, and exposes their orders and returns through one CLI\n" +
		"and one HTTP API.",
	SilenceUsage: true,
}

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		String("config", "config.yaml", "config file path")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")
	rootCmd.PersistentFlags().
		Bool("production", false, "target production for every marketplace (overrides the config file)")
	rootCmd.PersistentFlags().
		String("server", "", "query a running marketbridge server instead of the marketplaces directly")

	for _, name := range []string{"config", "output", "production", "server"} {
		cobra.CheckErr(viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)))
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(ordersCmd())
	rootCmd.AddCommand(returnsCmd())
	rootCmd.AddCommand(authCmd())
	rootCmd.AddCommand(envCmd())
	rootCmd.AddCommand(versionCmd())
}

func initConfig() {
	viper.SetEnvPrefix("MARKETBRIDGE")
	viper.AutomaticEnv()
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.GetString("config"))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	return logger.New(cfg.Logging.Level, cfg.Logging.Format)
}

// newBridge builds the in-process bridge from the config file. An explicit
// --production flag (or MARKETBRIDGE_PRODUCTION) overrides every
// marketplace's environment.
func newBridge(cfg *config.Config, log *slog.Logger) (*bridge.Bridge, error) {
	b, err := bridge.FromConfig(cfg,
		bridge.WithHTTPClient(dispatch.NewHTTPClient(cfg.HTTP.Timeout)),
		bridge.WithFactoryLogger(log),
	)
	if err != nil {
		return nil, err
	}
	if viper.IsSet("production") {
		b.SetProduction(viper.GetBool("production"))
	}
	return b, nil
}

// service returns the order/return API the data commands use: a remote
// server when --server is set, the local bridge otherwise.
func service() (orderService, error) {
	if c := remoteClient(); c != nil {
		return c, nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	b, err := newBridge(cfg, newLogger(cfg))
	if err != nil {
		return nil, err
	}
	return b, nil
}

// remoteClient returns an API client when --server is set, nil otherwise.
func remoteClient() *apiclient.Client {
	server := viper.GetString("server")
	if server == "" {
		return nil
	}
	return apiclient.New(server, apiclient.WithHTTPClient(dispatch.NewHTTPClient(0)))
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
