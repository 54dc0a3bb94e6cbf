// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"github.com/spf13/cobra"

	"github.com/ava-labs/nearsdk/cli/prompt"
	"github.com/ava-labs/nearsdk/crypto"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage keys",
}

var keyGenerateCmd = &cobra.Command{
	Use:   "generate [ed25519|secp256k1]",
	Short: "Generate a key for an account and make it the default",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		accountID, err := cmd.Flags().GetString("account")
		if err != nil {
			return err
		}
		var keyType crypto.KeyType
		if len(args) == 1 {
			keyType, err = crypto.ParseKeyType(args[0])
		} else {
			keyType, err = prompt.KeyType("key type")
		}
		if err != nil {
			return err
		}
		return handler.GenerateKey(accountID, keyType)
	},
}

var keyImportCmd = &cobra.Command{
	Use:   "import [secret]",
	Short: "Import a \"<curve>:<base58>\" secret key (prompts when omitted)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		accountID, err := cmd.Flags().GetString("account")
		if err != nil {
			return err
		}
		return handler.ImportKey(accountID, optionalArg(args))
	},
}

var keyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored keys",
	Args:  cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		return handler.ListKeys()
	},
}

var keySetCmd = &cobra.Command{
	Use:   "set [public key]",
	Short: "Set the default key (prompts when omitted)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return handler.SetKey(optionalArg(args))
	},
}

var keyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the default key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		showSecret, err := cmd.Flags().GetBool("secret")
		if err != nil {
			return err
		}
		return handler.ShowKey(showSecret)
	},
}

func init() {
	rootCmd.AddCommand(keyCmd)
	keyCmd.AddCommand(
		keyGenerateCmd,
		keyImportCmd,
		keyListCmd,
		keySetCmd,
		keyShowCmd,
	)
	for _, cmd := range []*cobra.Command{keyGenerateCmd, keyImportCmd} {
		cmd.Flags().String("account", "", "Account the key signs for")
		if err := cmd.MarkFlagRequired("account"); err != nil {
			panic(err)
		}
	}
	keyShowCmd.Flags().Bool("secret", false, "Also print the secret key")
}
