package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/avdva/softfloat/internal/workload"
)

type digestOptions struct {
	seed    int64
	count   int
	workers int
	asJSON  bool
}

type digestReport struct {
	Seed    int64    `json:"seed"`
	Count   int      `json:"count"`
	Workers int      `json:"workers"`
	Digest  string   `json:"digest"`
	Host    hostInfo `json:"host"`
}

func newDigestCmd(global *globalOptions) *cobra.Command {
	var opts digestOptions
	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Evaluate a seeded operation stream and print the digest of all results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(global)
			if err != nil {
				return err
			}
			if opts.count < 0 {
				return fmt.Errorf("count must not be negative, got %d", opts.count)
			}
			if opts.workers < 1 {
				return fmt.Errorf("workers must be positive, got %d", opts.workers)
			}
			logger.Debug("computing digest", "seed", opts.seed, "count", opts.count, "workers", opts.workers)
			start := time.Now()
			digest, err := workload.Digest(cmd.Context(), opts.seed, opts.count, opts.workers)
			if err != nil {
				logger.Error("digest failed", "error", err)
				return err
			}
			logger.Info("digest computed", "elapsed", time.Since(start), "count", opts.count)
			report := digestReport{
				Seed:    opts.seed,
				Count:   opts.count,
				Workers: opts.workers,
				Digest:  fmt.Sprintf("%016x", digest),
				Host:    currentHost(),
			}
			return writeReport(cmd.OutOrStdout(), report, opts.asJSON)
		},
	}
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "seed of the operation stream")
	cmd.Flags().IntVar(&opts.count, "count", 1_000_000, "number of operations")
	cmd.Flags().IntVar(&opts.workers, "workers", 4, "number of goroutines evaluating the stream")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the report as json")
	return cmd
}

func writeReport(w io.Writer, report digestReport, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	_, err := fmt.Fprintf(w, "digest:  %s\nseed:    %d\ncount:   %d\nhost:    %s/%s %s\nfeatures: %v\n",
		report.Digest, report.Seed, report.Count,
		report.Host.GOOS, report.Host.GOARCH, report.Host.GoVersion, report.Host.Features)
	return err
}
