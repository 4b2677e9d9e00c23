package commands

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/drips-network/go-drips"
)

func accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Work with Drips account IDs",
	}
	cmd.AddCommand(accountIDCmd())
	return cmd
}

func accountIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "id <address>",
		Short: "Derive the AddressDriver account ID of an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !common.IsHexAddress(args[0]) {
				return fmt.Errorf("invalid address %q", args[0])
			}
			id := drips.AddressDriverAccountID(common.HexToAddress(args[0]))
			fmt.Println(id)
			return nil
		},
	}
}
