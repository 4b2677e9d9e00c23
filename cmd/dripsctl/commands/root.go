// Package commands implements the dripsctl CLI.
package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/drips-network/go-drips"
)

var (
	chainID     uint64
	subgraphURL string
	verbose     bool

	log zerolog.Logger
)

// Execute runs the dripsctl root command.
func Execute() error {
	root := &cobra.Command{
		Use:           "dripsctl",
		Short:         "Inspect Drips protocol accounts, streams and splits",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			chainID = viper.GetUint64("chain-id")
			subgraphURL = viper.GetString("subgraph-url")

			log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
			if !verbose {
				log = log.Level(zerolog.WarnLevel)
			}
			return nil
		},
	}

	root.PersistentFlags().Uint64Var(&chainID, "chain-id", 1, "chain ID of the deployment to use")
	root.PersistentFlags().StringVar(&subgraphURL, "subgraph-url", "", "subgraph endpoint (default: the deployment's)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	viper.SetEnvPrefix("DRIPSCTL")
	viper.AutomaticEnv()
	if err := viper.BindPFlag("chain-id", root.PersistentFlags().Lookup("chain-id")); err != nil {
		return err
	}
	if err := viper.BindPFlag("subgraph-url", root.PersistentFlags().Lookup("subgraph-url")); err != nil {
		return err
	}

	root.AddCommand(configCmd(), accountCmd(), splitsCmd())
	return root.Execute()
}

// network resolves the deployment selected by --chain-id.
func network() (drips.NetworkConfig, error) {
	cfg, ok := drips.NetworkByChainID(chainID)
	if !ok {
		return drips.NetworkConfig{}, fmt.Errorf("%w %d", drips.ErrUnknownNetwork, chainID)
	}
	if subgraphURL != "" {
		cfg.SubgraphURL = subgraphURL
	}
	return cfg, nil
}
