package commands

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/drips-network/go-drips"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Encode and decode packed stream configurations",
	}
	cmd.AddCommand(configDecodeCmd(), configEncodeCmd())
	return cmd
}

func configDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <word>",
		Short: "Decode a packed uint256 stream configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word, err := parseWord(args[0])
			if err != nil {
				return err
			}
			cfg, err := drips.UnpackStreamConfigBig(word)
			if err != nil {
				return err
			}
			fmt.Printf("dripId:    %d\n", cfg.DripID)
			fmt.Printf("amtPerSec: %s (with %d extra decimals)\n", cfg.AmtPerSec, drips.AmtPerSecExtraDecimals)
			fmt.Printf("start:     %d\n", cfg.Start)
			fmt.Printf("duration:  %d\n", cfg.Duration)
			return nil
		},
	}
}

func configEncodeCmd() *cobra.Command {
	var (
		dripID    uint32
		amtPerSec string
		start     uint32
		duration  uint32
	)
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Pack a stream configuration into its uint256 form",
		RunE: func(cmd *cobra.Command, args []string) error {
			amt, ok := new(big.Int).SetString(amtPerSec, 10)
			if !ok {
				return fmt.Errorf("invalid amtPerSec %q", amtPerSec)
			}
			cfg := drips.StreamConfig{
				DripID:    dripID,
				AmtPerSec: amt,
				Start:     start,
				Duration:  duration,
			}
			packed, err := cfg.Pack()
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", packed.ToBig())
			fmt.Printf("%s\n", packed.Hex())
			return nil
		},
	}
	cmd.Flags().Uint32Var(&dripID, "drip-id", 0, "stream identifier")
	cmd.Flags().StringVar(&amtPerSec, "amt-per-sec", "", "amount per second, with extra decimals")
	cmd.Flags().Uint32Var(&start, "start", 0, "start timestamp (0 = at update time)")
	cmd.Flags().Uint32Var(&duration, "duration", 0, "duration in seconds (0 = until balance runs out)")
	_ = cmd.MarkFlagRequired("amt-per-sec")
	return cmd
}

// parseWord parses a decimal or 0x-prefixed hex uint256.
func parseWord(s string) (*big.Int, error) {
	word, ok := new(big.Int).SetString(s, 0)
	if !ok || word.Sign() < 0 {
		return nil, fmt.Errorf("invalid configuration word %q", s)
	}
	return word, nil
}
