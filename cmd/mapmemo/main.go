// Package main реализует консольный клиент хранилища геозаметок.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"mapmemo/pkg/logger"
	"mapmemo/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "MAPMEMO_LOGGER_MODE"
	EnvLoggerLevel = "MAPMEMO_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger = "failed to initialize logger"
	ErrSyncLogger = "failed to sync logger"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == string(logger.Production) {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx, stop := shutdown.Context(logger.NewOperationContext(context.Background(), ""))

	exitCode := run(ctx, newCLI(), os.Args[1:], os.Stdout, os.Stderr)

	stop()
	syncLogger(logger.Log(context.Background()))

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

func syncLogger(log *logger.Logger) {
	if err := log.Sync(); err != nil {
		errMsg := err.Error()
		if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
			return
		}
		if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
			panic(writeErr)
		}
	}
}
