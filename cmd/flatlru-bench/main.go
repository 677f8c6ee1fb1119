// Command flatlru-bench runs a synthetic workload against a flatlru cache and
// reports hit rates and throughput.
package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mgordeev/flatlru"
)

type workload struct {
	capacity int
	keyspace int
	ops      int
	readFrac float64
	skew     float64
	seed     uint64
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var w workload

	cmd := &cobra.Command{
		Use:   "flatlru-bench",
		Short: "run a synthetic read/write workload against a flatlru cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer logger.Sync()
			return run(logger, w)
		},
		SilenceUsage: true,
	}

	cmd.Flags().IntVar(&w.capacity, "capacity", 1024, "cache capacity")
	cmd.Flags().IntVar(&w.keyspace, "keys", 4096, "number of distinct keys in the workload")
	cmd.Flags().IntVar(&w.ops, "ops", 1_000_000, "total operations to run")
	cmd.Flags().Float64Var(&w.readFrac, "reads", 0.8, "fraction of operations that are reads")
	cmd.Flags().Float64Var(&w.skew, "skew", 1.1, "zipf skew of key popularity (<=1 for uniform)")
	cmd.Flags().Uint64Var(&w.seed, "seed", 1, "workload rng seed")

	return cmd
}

func run(logger *zap.Logger, w workload) error {
	if w.keyspace <= 0 || w.ops <= 0 {
		return fmt.Errorf("keys and ops must be positive")
	}
	if w.readFrac < 0 || w.readFrac > 1 {
		return fmt.Errorf("reads must be in [0, 1]")
	}

	cache, err := flatlru.New[uint64, uint64](w.capacity)
	if err != nil {
		return err
	}

	logger.Info("starting workload",
		zap.Int("capacity", cache.Capacity()),
		zap.Int("pointer_width", flatlru.PointerWidth(cache.Capacity())),
		zap.Int("keys", w.keyspace),
		zap.Int("ops", w.ops),
		zap.Float64("reads", w.readFrac),
		zap.Float64("skew", w.skew),
	)

	rng := rand.New(rand.NewPCG(w.seed, w.seed^0x9e3779b97f4a7c15))
	nextKey := func() uint64 { return rng.Uint64N(uint64(w.keyspace)) }
	if w.skew > 1 {
		zipf := rand.NewZipf(rng, w.skew, 1, uint64(w.keyspace-1))
		nextKey = zipf.Uint64
	}

	var hits, misses, inserts, evictions int
	start := time.Now()

	for i := 0; i < w.ops; i++ {
		k := nextKey()
		if rng.Float64() < w.readFrac {
			if _, ok := cache.Get(k); ok {
				hits++
			} else {
				misses++
			}
			continue
		}
		if !cache.Has(k) {
			inserts++
			if cache.Len() == cache.Capacity() {
				evictions++
			}
		}
		cache.Set(k, uint64(i))
	}

	elapsed := time.Since(start)
	reads := hits + misses
	hitRate := 0.0
	if reads > 0 {
		hitRate = float64(hits) / float64(reads)
	}

	logger.Info("workload finished",
		zap.Duration("elapsed", elapsed),
		zap.Float64("mops_per_sec", float64(w.ops)/elapsed.Seconds()/1e6),
		zap.Int("hits", hits),
		zap.Int("misses", misses),
		zap.Float64("hit_rate", hitRate),
		zap.Int("inserts", inserts),
		zap.Int("evictions", evictions),
		zap.Int("resident", cache.Len()),
	)
	return nil
}
