package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mahdiidarabi/ed25519ref/pkg/vectors"
)

var cmdVectors = &cobra.Command{
	Use:   "vectors",
	Short: "Check a known-answer vector file",
	Args:  cobra.NoArgs,
	RunE:  runVectors,
}

var flagVectors struct {
	File       string
	Format     string
	Workers    int
	Limit      int
	FailFast   bool
	CrossCheck bool
	Progress   time.Duration
}

func init() {
	cmdMain.AddCommand(cmdVectors)
	cmdVectors.Flags().StringVarP(&flagVectors.File, "file", "f", "", "Path to the vector file")
	cmdVectors.Flags().StringVar(&flagVectors.Format, "format", "line", "Vector file format (line or json)")
	cmdVectors.Flags().IntVar(&flagVectors.Workers, "workers", 0, "Number of parallel workers (0 = auto-detect based on CPU cores)")
	cmdVectors.Flags().IntVar(&flagVectors.Limit, "limit", 0, "Only check the first N vectors of a line file (0 = all)")
	cmdVectors.Flags().BoolVar(&flagVectors.FailFast, "fail-fast", false, "Stop at the first failing vector")
	cmdVectors.Flags().BoolVar(&flagVectors.CrossCheck, "cross-check", false, "Also validate with filippo.io/edwards25519")
	cmdVectors.Flags().DurationVar(&flagVectors.Progress, "progress", 5*time.Second, "Progress log interval (0 disables)")
	_ = cmdVectors.MarkFlagRequired("file")
}

func runVectors(cmd *cobra.Command, args []string) error {
	var parser vectors.VectorParser
	switch flagVectors.Format {
	case "line":
		parser = &vectors.LineParser{Limit: flagVectors.Limit}
	case "json":
		parser = &vectors.JSONParser{}
	default:
		return fmt.Errorf("unknown format %q", flagVectors.Format)
	}

	config := vectors.DefaultConfig().
		WithWorkers(flagVectors.Workers).
		WithFailFast(flagVectors.FailFast).
		WithCrossCheck(flagVectors.CrossCheck)
	config.ProgressInterval = flagVectors.Progress

	h := vectors.NewHarness().
		WithParser(parser).
		WithConfig(config).
		WithLogger(logger)

	report, err := h.Run(cmd.Context(), flagVectors.File)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d/%d vectors passed in %v\n", report.Passed, report.Total, report.Elapsed.Round(time.Millisecond))
	for _, f := range report.Failures {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", f)
	}
	if !report.OK() {
		return fmt.Errorf("%d vectors failed", report.Failed)
	}
	return nil
}
