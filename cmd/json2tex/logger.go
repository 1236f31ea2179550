package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/alnah/go-json2tex/internal/config"
)

// newLogger builds the CLI logger: a console core on stderr plus an
// optional file core when the config names a log file. The verbose and
// quiet flags shift the console level; the file always gets debug.
func newLogger(cfg config.LoggingConfig, verbose, quiet bool) (*zap.SugaredLogger, func(), error) {
	consoleLevel := zapcore.InfoLevel
	switch {
	case verbose || cfg.Verbose:
		consoleLevel = zapcore.DebugLevel
	case quiet:
		consoleLevel = zapcore.WarnLevel
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(ec),
		zapcore.Lock(os.Stderr),
		consoleLevel,
	)

	cores := []zapcore.Core{consoleCore}
	cleanup := func() {}

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o750); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) // #nosec G304 -- log path is user-provided
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}

		fileEC := zap.NewProductionEncoderConfig()
		fileEC.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(fileEC),
			zapcore.Lock(f),
			zapcore.DebugLevel,
		))
		cleanup = func() { _ = f.Close() }
	}

	logger := zap.New(zapcore.NewTee(cores...))
	return logger.Sugar(), func() {
		_ = logger.Sync()
		cleanup()
	}, nil
}
