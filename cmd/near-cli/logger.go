// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const logFileName = "near-cli.log"

// newLogger writes human readable logs at [displayLevel] to stderr and json
// logs at [logLevel] to a rotated file in [dir].
func newLogger(logLevel string, displayLevel string, dir string) (*zap.Logger, func() error, error) {
	var fileLevel, consoleLevel zapcore.Level
	if err := fileLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	if err := consoleLevel.UnmarshalText([]byte(displayLevel)); err != nil {
		return nil, nil, fmt.Errorf("invalid display level %q: %w", displayLevel, err)
	}

	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		consoleLevel,
	)
	rw := &lumberjack.Logger{
		Filename:   filepath.Join(dir, logFileName),
		MaxSize:    8, // megabytes
		MaxAge:     7, // days
		MaxBackups: 3, // files
		Compress:   true,
	}
	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(rw),
		fileLevel,
	)
	return zap.New(zapcore.NewTee(consoleCore, fileCore)).Named("near-cli"), rw.Close, nil
}
