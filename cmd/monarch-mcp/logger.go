package main

import (
	"log/slog"
	"os"

	"github.com/monarch-agent/monarch-mcp/internal/types"
)

// slogAdapter bridges slog to the client's structured Logger interface.
// Logs go to stderr: on the stdio transport, stdout carries the protocol.
type slogAdapter struct {
	logger *slog.Logger
}

func newLogger(level string) types.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return &slogAdapter{logger: slog.New(handler)}
}

func (l *slogAdapter) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *slogAdapter) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, keysAndValues...)
}

func (l *slogAdapter) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, keysAndValues...)
}

func (l *slogAdapter) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, keysAndValues...)
}
