// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import "github.com/spf13/cobra"

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Read account state",
}

var accountViewCmd = &cobra.Command{
	Use:   "view [account]",
	Short: "Show account state (defaults to the default key's account)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return handler.ViewAccount(cmd.Context(), optionalArg(args))
	},
}

var accountBalanceCmd = &cobra.Command{
	Use:   "balance [account]",
	Short: "Show total, staked and available balance",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return handler.Balance(cmd.Context(), optionalArg(args))
	},
}

var accountKeysCmd = &cobra.Command{
	Use:   "keys [account]",
	Short: "List the access keys of an account",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return handler.AccessKeys(cmd.Context(), optionalArg(args))
	},
}

func optionalArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func init() {
	rootCmd.AddCommand(accountCmd)
	accountCmd.AddCommand(
		accountViewCmd,
		accountBalanceCmd,
		accountKeysCmd,
	)
}
