// Package root contains the root command and the shared logger
package root

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = slog.Default()

	// LogLevel and LogFormat back the persistent logging flags
	LogLevel  string
	LogFormat string

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "finance-dashboard",
		Short: "Sync bank transactions and track recurring charges.",
		Long: `finance-dashboard pulls transactions from an account aggregation provider,
categorizes them, and detects recurring series such as subscriptions and paychecks
with their next due dates.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Log = ConfigureLogging(os.Stderr, LogLevel, LogFormat)
			slog.SetDefault(Log)
		},
	}
)

// Init registers the persistent flags. Defaults come from LOG_LEVEL and LOG_FORMAT,
// so it must run after the .env file is loaded.
func Init() {
	Cmd.PersistentFlags().StringVar(&LogLevel, "log-level", envOrDefault("LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&LogFormat, "log-format", envOrDefault("LOG_FORMAT", "text"), "Log format (text, json)")
}

// ConfigureLogging builds the process logger. Unknown levels fall back to info.
func ConfigureLogging(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
