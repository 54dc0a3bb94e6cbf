// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import "github.com/spf13/cobra"

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Manage networks",
}

var networkAddCmd = &cobra.Command{
	Use:   "add <name> <endpoint>",
	Short: "Register a network",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return handler.AddNetwork(args[0], args[1])
	},
}

var networkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List networks",
	Args:  cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		return handler.ListNetworks()
	},
}

var networkSetCmd = &cobra.Command{
	Use:   "set [name]",
	Short: "Set the default network (prompts when omitted)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return handler.SetNetwork(optionalArg(args))
	},
}

var networkStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the chain id and head of the connected node",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return handler.NetworkStatus(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(networkCmd)
	networkCmd.AddCommand(
		networkAddCmd,
		networkListCmd,
		networkSetCmd,
		networkStatusCmd,
	)
}
