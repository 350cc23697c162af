package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/internal/region"
)

var (
	stressPoolSize int
	stressOps      int
	stressMaxAlloc int
	stressSeed     int64
	stressStrategy string
	stressExtend   int
)

func init() {
	cmd := newStressCmd()
	cmd.Flags().IntVar(&stressPoolSize, "pool", 1<<20, "Pool size in bytes")
	cmd.Flags().IntVar(&stressOps, "ops", 100000, "Number of random operations")
	cmd.Flags().IntVar(&stressMaxAlloc, "max-alloc", 4096, "Largest single request in bytes")
	cmd.Flags().Int64Var(&stressSeed, "seed", 1, "Workload RNG seed")
	cmd.Flags().
		StringVar(&stressStrategy, "strategy", "full-scan", "Scan strategy: full-scan or first-fit")
	cmd.Flags().IntVar(&stressExtend, "extend", 0, "Extra regions spliced in on first exhaustion")
	rootCmd.AddCommand(cmd)
}

func newStressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stress",
		Short: "Run a randomized acquire/release workload",
		Long: `The stress command hammers one pool with a seeded random mix of
acquires and releases, verifies the pool invariants afterwards, and
reports the resulting statistics.

Example:
  heapctl stress --pool 4194304 --ops 500000 --strategy first-fit
  heapctl stress --seed 42 --extend 2 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStress()
		},
	}
}

// stressReport is the JSON shape of a stress run.
type stressReport struct {
	PoolBytes   int           `json:"pool_bytes"`
	Ops         int           `json:"ops"`
	Strategy    string        `json:"strategy"`
	Seed        int64         `json:"seed"`
	Duration    time.Duration `json:"duration_ns"`
	OpsPerSec   float64       `json:"ops_per_sec"`
	Exhaustions int           `json:"exhaustions"`
	Summary     heap.Summary  `json:"summary"`
	Metrics     heap.Metrics  `json:"metrics"`
}

func runStress() error {
	strategy, err := parseStrategy(stressStrategy)
	if err != nil {
		return err
	}

	backing, cleanup, err := region.Alloc(stressPoolSize)
	if err != nil {
		return err
	}
	defer cleanup()

	p, err := heap.New(backing, &heap.Config{Strategy: strategy})
	if err != nil {
		return err
	}
	log.Debug("pool ready", "bytes", stressPoolSize, "strategy", stressStrategy)

	rng := rand.New(rand.NewSource(stressSeed))
	var (
		refs        []heap.Ref
		exhaustions int
		extendsLeft = stressExtend
	)

	start := time.Now()
	for i := 0; i < stressOps; i++ {
		if len(refs) == 0 || rng.Intn(100) < 55 {
			ref, _, err := p.Acquire(rng.Intn(stressMaxAlloc + 1))
			if err != nil {
				exhaustions++
				if extendsLeft > 0 {
					extra, extraCleanup, err := region.Alloc(stressPoolSize)
					if err != nil {
						return err
					}
					defer extraCleanup()
					if err := p.Extend(extra); err != nil {
						return err
					}
					extendsLeft--
					log.Debug("extended pool", "bytes", stressPoolSize)
				}
				continue
			}
			refs = append(refs, ref)
		} else {
			n := rng.Intn(len(refs))
			p.Release(refs[n])
			refs[n] = refs[len(refs)-1]
			refs = refs[:len(refs)-1]
		}
	}
	elapsed := time.Since(start)

	for _, ref := range refs {
		p.Release(ref)
	}
	if err := p.Check(); err != nil {
		return fmt.Errorf("invariant check failed after workload: %w", err)
	}

	report := stressReport{
		PoolBytes:   stressPoolSize,
		Ops:         stressOps,
		Strategy:    stressStrategy,
		Seed:        stressSeed,
		Duration:    elapsed,
		OpsPerSec:   float64(stressOps) / elapsed.Seconds(),
		Exhaustions: exhaustions,
		Summary:     p.Summary(),
		Metrics:     p.Metrics(),
	}
	if jsonOut {
		return printJSON(report)
	}

	fmt.Printf("stress: %d ops in %v (%.0f ops/s), %d exhaustion(s)\n",
		report.Ops, report.Duration.Round(time.Millisecond), report.OpsPerSec,
		report.Exhaustions)
	m := report.Metrics
	fmt.Printf("  acquires %d (failed %d)  releases %d  splits %d  coalesces %d/%d\n",
		m.AcquireCalls, m.FailedAcquires, m.ReleaseCalls, m.Splits,
		m.CoalesceForward, m.CoalesceBackward)
	printUsage("free", report.Summary.Free)
	printUsage("used", report.Summary.Used)
	return nil
}
