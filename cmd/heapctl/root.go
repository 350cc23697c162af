package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/heapkit/heap"
)

var (
	// Global flags
	verbose bool
	jsonOut bool
)

// log is the CLI logger; discards everything unless --verbose is set.
var log = slog.New(slog.NewTextHandler(io.Discard, nil))

var rootCmd = &cobra.Command{
	Use:   "heapctl",
	Short: "Exercise and inspect heapkit memory pools",
	Long: `heapctl drives the heapkit fixed-pool allocator with synthetic
workloads and reports pool statistics, fragmentation layouts, and
operation counters. It exists for benchmarking allocation strategies
and for eyeballing allocator behavior before embedding the pool.`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printJSON outputs data as indented JSON.
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// parseStrategy maps a flag value onto a pool strategy.
func parseStrategy(s string) (heap.Strategy, error) {
	switch s {
	case "full-scan":
		return heap.FullScan, nil
	case "first-fit":
		return heap.FirstFit, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q (want full-scan or first-fit)", s)
	}
}

// printUsage renders one Summary class as text.
func printUsage(name string, u heap.Usage) {
	fmt.Printf("  %-5s %6d block(s)  %10d bytes total  %10d bytes largest\n",
		name, u.Blocks, u.TotalSize, u.MaxBlockSize)
}
