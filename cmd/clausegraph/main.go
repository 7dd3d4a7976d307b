// Package main provides the clausegraph binary entry point. Clausegraph
// converts the FIDIC Red Book 1999 General Conditions into a structured,
// machine-readable clause tree for downstream retrieval and QA systems.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c360studio/clausegraph/commands"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "clausegraph"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   appName,
		Short: "FIDIC contract clause parser",
		Long: `Clausegraph parses the FIDIC Red Book 1999 General Conditions into a
structured clause tree: one node per clause, carrying extracted obligations,
party references, cross-references, keywords, a classification, and a
generated summary.

It provides:
- run: parse a plain-text contract into per-clause JSON artifacts
- extract: convert a contract PDF into plain text
- serve: expose the parsed clause collection over HTTP`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: &dynamicLevel{flag: &logLevel},
	}))
	slog.SetDefault(logger)

	cmd.AddCommand(commands.NewRunCommand(logger))
	cmd.AddCommand(commands.NewExtractCommand(logger))
	cmd.AddCommand(commands.NewServeCommand(logger))

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

// dynamicLevel resolves the log level from the flag value at log time, so
// the handler can be built before cobra parses flags.
type dynamicLevel struct {
	flag *string
}

func (d *dynamicLevel) Level() slog.Level {
	switch strings.ToLower(*d.flag) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
