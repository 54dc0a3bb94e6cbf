// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ava-labs/nearsdk/cli"
)

var (
	handler    *cli.Handler
	controller *Controller

	rootCmd = &cobra.Command{
		Use:        "near-cli",
		Short:      "CLI for building, signing and submitting NEAR transactions",
		SuggestFor: []string{"near-cli", "nearcli"},
	}
)

func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cancel()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cancel()
	os.Exit(0)
}

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	flags := rootCmd.PersistentFlags()
	flags.StringP("output", "o", string(cli.OutputText), "Output format (text or json)")
	flags.String("endpoint", "", "Override the default network's RPC endpoint")
	flags.String("network", "", "Use this network instead of the stored default")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("data-dir", "", "Directory holding the keystore and logs (default ~/.near-cli)")
	flags.Bool("metrics", false, "Print RPC and keystore metrics on exit")
	for _, name := range []string{"output", "endpoint", "network", "log-level", "data-dir", "metrics"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		if err := loadConfig(); err != nil {
			return err
		}
		c, err := NewController()
		if err != nil {
			return err
		}
		h, err := cli.New(c)
		if err != nil {
			_ = c.Close()
			return err
		}
		controller = c
		handler = h
		return nil
	}
	rootCmd.PersistentPostRunE = func(*cobra.Command, []string) error {
		if viper.GetBool("metrics") {
			if err := cli.WriteMetrics(os.Stderr, controller.Registry(), handler.DatabaseRegistry()); err != nil {
				return err
			}
		}
		if err := handler.CloseDatabase(); err != nil {
			return err
		}
		return controller.Close()
	}
}

func main() {
	Execute()
}
