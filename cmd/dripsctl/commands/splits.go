package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drips-network/go-drips"
	"github.com/drips-network/go-drips/subgraph"
)

func splitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "splits <account-id>",
		Short: "List an account's splits receivers from the subgraph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accountID, err := parseWord(args[0])
			if err != nil {
				return err
			}
			cfg, err := network()
			if err != nil {
				return err
			}

			client := subgraph.New(cfg.SubgraphURL, subgraph.WithLogger(log))
			entries, err := client.SplitsEntries(cmd.Context(), accountID)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("no splits receivers")
				return nil
			}
			for _, entry := range entries {
				percent := float64(entry.Weight.Int64()) * 100 / drips.TotalSplitsWeight
				fmt.Printf("%s  weight %s (%.4f%%)\n", entry.ReceiverAccountID.String(), entry.Weight.String(), percent)
			}
			return nil
		},
	}
}
