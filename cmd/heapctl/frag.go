package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/internal/region"
)

var (
	fragPoolSize  int
	fragBlockSize int
	fragStrategy  string
)

func init() {
	cmd := newFragCmd()
	cmd.Flags().IntVar(&fragPoolSize, "pool", 64<<10, "Pool size in bytes")
	cmd.Flags().IntVar(&fragBlockSize, "block", 512, "Block size for the checkerboard")
	cmd.Flags().
		StringVar(&fragStrategy, "strategy", "full-scan", "Scan strategy: full-scan or first-fit")
	rootCmd.AddCommand(cmd)
}

func newFragCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "frag",
		Short: "Show a worst-case fragmentation layout",
		Long: `The frag command fills a pool with equal-sized blocks, frees every
other one, and dumps the resulting checkerboard so the effect of the
chosen scan strategy on a fragmented pool can be inspected directly.

Example:
  heapctl frag --pool 65536 --block 256
  heapctl frag --strategy first-fit --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFrag()
		},
	}
}

func runFrag() error {
	strategy, err := parseStrategy(fragStrategy)
	if err != nil {
		return err
	}

	backing, cleanup, err := region.Alloc(fragPoolSize)
	if err != nil {
		return err
	}
	defer cleanup()

	p, err := heap.New(backing, &heap.Config{Strategy: strategy})
	if err != nil {
		return err
	}

	var refs []heap.Ref
	for {
		ref, _, err := p.Acquire(fragBlockSize)
		if err != nil {
			break
		}
		refs = append(refs, ref)
	}
	log.Debug("pool filled", "blocks", len(refs))

	for i := 0; i < len(refs); i += 2 {
		p.Release(refs[i])
	}
	if err := p.Check(); err != nil {
		return fmt.Errorf("invariant check failed: %w", err)
	}

	s := p.Summary()
	if jsonOut {
		return printJSON(struct {
			Blocks  int          `json:"blocks"`
			Summary heap.Summary `json:"summary"`
		}{len(refs), s})
	}

	fmt.Printf("frag: %d block(s) of %d bytes, every other one freed\n",
		len(refs), fragBlockSize)
	printUsage("free", s.Free)
	printUsage("used", s.Used)
	fmt.Println()
	p.Dump(os.Stdout)
	return nil
}
