package main

import (
	"fmt"
	"os"

	aggregatorClient "github.com/KirkDiggler/choicetrail/internal/clients/aggregator"
	"github.com/KirkDiggler/choicetrail/internal/common/clock"
	"github.com/KirkDiggler/choicetrail/internal/common/uuid"
	"github.com/KirkDiggler/choicetrail/internal/config"
	"github.com/KirkDiggler/choicetrail/internal/services/collector"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	endpoint   string
	debug      bool

	cfg    *config.Collector
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "collector",
	Short: "Record survey answers from visual novel play-throughs",
	Long: `collector turns engine action records into survey answers and posts
them to the aggregator.

Answers are de-duplicated, rate limited and filtered to records that look like
an executing choice before they are sent.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadCollector(configPath)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("endpoint") {
			cfg.Endpoint = endpoint
		}
		if debug {
			cfg.Debug = true
		}

		logger, err = config.NewLogger(cfg.Debug)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "collector.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "aggregator URL, overrides the config file")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")

	rootCmd.AddCommand(replayCmd, testAnswerCmd, pingCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newClient() (aggregatorClient.Client, error) {
	return aggregatorClient.New(&aggregatorClient.Config{
		Endpoint: cfg.Endpoint,
		Timeout:  cfg.Timeout,
		Logger:   logger.Named("client"),
	})
}

func newCollector(clk clock.Clock) (collector.Service, error) {
	client, err := newClient()
	if err != nil {
		return nil, err
	}

	return collector.New(&collector.Config{
		Client:       client,
		Clock:        clk,
		UUID:         uuid.New(),
		Logger:       logger.Named("collector"),
		CapturePhone: cfg.CapturePhone,
		Cooldown:     cfg.Cooldown,
		RecentWindow: cfg.RecentWindow,
		MaxDepth:     cfg.MaxDepth,
		MaxInFlight:  cfg.MaxInFlight,
	})
}
