// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/ava-labs/nearsdk/cli"
	"github.com/ava-labs/nearsdk/requester"
	"github.com/ava-labs/nearsdk/trace"
	"github.com/ava-labs/nearsdk/utils"

	avatrace "github.com/ava-labs/avalanchego/trace"
)

const (
	configDirName  = ".near-cli"
	configFileName = "config.yaml"
	databaseDir    = "db"
	logsDir        = "logs"
)

// loadConfig reads ~/.near-cli/config.yaml, creating it when missing.
// Flags and NEAR_CLI_* environment variables take precedence over it.
func loadConfig() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	configDir, err := utils.InitSubDirectory(homeDir, configDirName)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	configFile := filepath.Join(configDir, configFileName)
	if _, err := os.Stat(configFile); errors.Is(err, os.ErrNotExist) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)
	viper.SetEnvPrefix("NEAR_CLI")
	viper.AutomaticEnv()

	viper.SetDefault("data-dir", configDir)
	viper.SetDefault("log-display-level", "warn")
	viper.SetDefault("trace.enabled", false)
	viper.SetDefault("trace.endpoint", trace.DefaultEndpoint)
	viper.SetDefault("trace.sampleRate", 1.0)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// Controller feeds the resolved configuration to the cli handler.
type Controller struct {
	dataDir  string
	output   cli.Output
	log      *zap.Logger
	closeLog func() error
	tracer   avatrace.Tracer
	registry *prometheus.Registry
	headers  map[string]string
}

func NewController() (*Controller, error) {
	output, err := cli.ParseOutput(viper.GetString("output"))
	if err != nil {
		return nil, err
	}
	dataDir := viper.GetString("data-dir")
	logDir, err := utils.InitSubDirectory(dataDir, logsDir)
	if err != nil {
		return nil, err
	}
	log, closeLog, err := newLogger(
		viper.GetString("log-level"),
		viper.GetString("log-display-level"),
		logDir,
	)
	if err != nil {
		return nil, err
	}

	var traceConfig trace.Config
	if err := viper.UnmarshalKey("trace", &traceConfig); err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("invalid trace config: %w", err)
	}
	tracer, err := trace.New(traceConfig)
	if err != nil {
		_ = closeLog()
		return nil, err
	}
	log.Debug("loaded config",
		zap.String("dataDir", dataDir),
		zap.String("output", string(output)),
		zap.Bool("tracing", traceConfig.Enabled),
	)
	return &Controller{
		dataDir:  dataDir,
		output:   output,
		log:      log,
		closeLog: closeLog,
		tracer:   tracer,
		registry: prometheus.NewRegistry(),
		headers:  viper.GetStringMapString("headers"),
	}, nil
}

func (c *Controller) DatabasePath() string {
	return filepath.Join(c.dataDir, databaseDir)
}

func (*Controller) Endpoint() string {
	return viper.GetString("endpoint")
}

func (*Controller) Network() string {
	return viper.GetString("network")
}

func (c *Controller) Output() cli.Output {
	return c.output
}

func (c *Controller) RequesterOptions() []requester.Option {
	opts := []requester.Option{
		requester.WithLogger(c.log),
		requester.WithRegistry(c.registry),
		requester.WithTracer(c.tracer),
	}
	keys := maps.Keys(c.headers)
	slices.Sort(keys)
	for _, key := range keys {
		opts = append(opts, requester.WithHeader(key, c.headers[key]))
	}
	return opts
}

// Registry holds the RPC metrics.
func (c *Controller) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Controller) Close() error {
	errs := []error{c.tracer.Close()}
	_ = c.log.Sync()
	errs = append(errs, c.closeLog())
	return errors.Join(errs...)
}
