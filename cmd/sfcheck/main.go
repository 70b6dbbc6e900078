// Command sfcheck checks that software floats produce the same bits on every host.
//
// Run `sfcheck digest` on two machines with the same flags and compare the digests,
// or evaluate a single operation with `sfcheck eval add 0.1 0.2`.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
)

type globalOptions struct {
	logFormat string
	logLevel  string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts globalOptions
	cmd := &cobra.Command{
		Use:           "sfcheck",
		Short:         "Deterministic binary32 checks",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	cmd.AddCommand(newDigestCmd(&opts), newEvalCmd(&opts))
	return cmd
}

// newLogger builds a logger writing to stderr, so that stdout keeps only the results.
func newLogger(opts *globalOptions) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
		return nil, fmt.Errorf("bad log level %q: %w", opts.logLevel, err)
	}
	handlerOpts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(opts.logFormat) {
	case "text":
		return slog.New(slog.NewTextHandler(os.Stderr, handlerOpts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stderr, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("bad log format %q", opts.logFormat)
	}
}
