package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"realty-agent/config"
	"realty-agent/logging"
	"realty-agent/service"
)

var (
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "realty",
	Short: "Property listings API with a mortgage estimator",
	Long: `realty serves a catalog of property listings together with a mortgage
payment estimator and local engagement analytics.

Run "realty serve" to start the HTTP API, or use "realty estimate" to price a
loan from the command line.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if verbose {
			cfg.Logging.Level = "debug"
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		logger, err = logging.New(cfg.Logging)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd, estimateCmd, propertiesCmd)
}

// mortgagePolicy translates the configured limits into the estimator's policy.
func mortgagePolicy(c config.MortgageConfig) service.MortgagePolicy {
	return service.MortgagePolicy{
		PropertyTaxRate:        c.PropertyTaxRate,
		InsuranceRate:          c.InsuranceRate,
		DefaultLoanTermYears:   c.DefaultLoanTermYears,
		MaxLoanTermYears:       c.MaxLoanTermYears,
		MaxInterestRatePercent: c.MaxInterestRatePercent,
	}
}

func seed(c config.AnalyticsConfig) uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
