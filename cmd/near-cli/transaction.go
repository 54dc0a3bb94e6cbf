// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"github.com/spf13/cobra"

	"github.com/ava-labs/nearsdk/cli"
	"github.com/ava-labs/nearsdk/math"
	"github.com/ava-labs/nearsdk/utils"
)

var txCmd = &cobra.Command{
	Use:   "tx",
	Short: "Build, sign and submit transactions",
}

var txTransferCmd = &cobra.Command{
	Use:   "transfer [receiver] [amount]",
	Short: "Send NEAR from the default key's account",
	Long:  "Send NEAR from the default key's account. Missing arguments are prompted for.",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, err := cmd.Flags().GetBool("yes")
		if err != nil {
			return err
		}
		if len(args) < 2 {
			return handler.PromptTransfer(cmd.Context(), optionalArg(args), yes)
		}
		amount, err := utils.ParseNear(args[1])
		if err != nil {
			return err
		}
		return handler.Transfer(cmd.Context(), args[0], amount, yes)
	},
}

var txCallCmd = &cobra.Command{
	Use:   "call <contract> <method> [json args]",
	Short: "Call a contract method from the default key's account",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		gas, err := cmd.Flags().GetUint64("gas")
		if err != nil {
			return err
		}
		rawDeposit, err := cmd.Flags().GetString("deposit")
		if err != nil {
			return err
		}
		deposit := math.Zero
		if len(rawDeposit) > 0 {
			deposit, err = utils.ParseNear(rawDeposit)
			if err != nil {
				return err
			}
		}
		yes, err := cmd.Flags().GetBool("yes")
		if err != nil {
			return err
		}
		return handler.Call(cmd.Context(), args[0], args[1], optionalArg(args[2:]), gas, deposit, yes)
	},
}

var txDecodeCmd = &cobra.Command{
	Use:   "decode <base64>",
	Short: "Decode a signed transaction and check its signature",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return handler.Decode(args[0])
	},
}

var txBroadcastCmd = &cobra.Command{
	Use:   "broadcast <base64>...",
	Short: "Verify and submit pre-signed transactions without waiting",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workers, err := cmd.Flags().GetInt("workers")
		if err != nil {
			return err
		}
		return handler.Broadcast(cmd.Context(), args, workers)
	},
}

func init() {
	rootCmd.AddCommand(txCmd)
	txCmd.AddCommand(
		txTransferCmd,
		txCallCmd,
		txDecodeCmd,
		txBroadcastCmd,
	)
	for _, cmd := range []*cobra.Command{txTransferCmd, txCallCmd} {
		cmd.Flags().BoolP("yes", "y", false, "Submit without asking for confirmation")
	}
	txCallCmd.Flags().Uint64("gas", cli.DefaultGas, "Gas attached to the call")
	txCallCmd.Flags().String("deposit", "", "NEAR attached to the call")
	txBroadcastCmd.Flags().Int("workers", 4, "Signature verification workers")
}
