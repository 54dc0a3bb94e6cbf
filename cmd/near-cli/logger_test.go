// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	log, closeLog, err := newLogger("debug", "error", dir)
	require.NoError(err)
	log.Debug("hello")
	_ = log.Sync()
	require.NoError(closeLog())

	b, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(err)
	require.Contains(string(b), `"msg":"hello"`)
}

func TestNewLoggerInvalidLevel(t *testing.T) {
	require := require.New(t)

	_, _, err := newLogger("loud", "warn", t.TempDir())
	require.ErrorContains(err, "invalid log level")

	_, _, err = newLogger("info", "loud", t.TempDir())
	require.ErrorContains(err, "invalid display level")
}

func TestOptionalArg(t *testing.T) {
	require := require.New(t)

	require.Empty(optionalArg(nil))
	require.Equal("alice.testnet", optionalArg([]string{"alice.testnet"}))
}
