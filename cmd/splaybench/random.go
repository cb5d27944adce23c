package main

import (
	"github.com/hupe1980/splaycache/bench"
	"github.com/urfave/cli/v2"
)

var cmdRandom = &cli.Command{
	Name:  "random",
	Usage: "replay a seeded, skewed read-through workload against each cache",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "queries",
			Usage:   "number of lookups",
			Value:   bench.DefaultAccessConfig().Queries,
			EnvVars: []string{"SPLAYBENCH_QUERIES"},
		},
		&cli.IntFlag{
			Name:    "keys",
			Usage:   "size of the key space",
			Value:   bench.DefaultAccessConfig().KeySpace,
			EnvVars: []string{"SPLAYBENCH_KEYS"},
		},
		&cli.IntFlag{
			Name:    "hot-keys",
			Usage:   "size of the hot key set",
			Value:   bench.DefaultAccessConfig().HotKeys,
			EnvVars: []string{"SPLAYBENCH_HOT_KEYS"},
		},
		&cli.Float64Flag{
			Name:    "hot-ratio",
			Usage:   "probability that a lookup targets the hot key set",
			Value:   bench.DefaultAccessConfig().HotRatio,
			EnvVars: []string{"SPLAYBENCH_HOT_RATIO"},
		},
		&cli.IntFlag{
			Name:    "lru-size",
			Usage:   "LRU/ARC capacity",
			Value:   bench.DefaultAccessCacheSize,
			EnvVars: []string{"SPLAYBENCH_LRU_SIZE"},
		},
		&cli.Uint64Flag{
			Name:    "seed",
			Usage:   "workload seed",
			Value:   1,
			EnvVars: []string{"SPLAYBENCH_SEED"},
		},
	},
	Action: runRandom,
}

func runRandom(cctx *cli.Context) error {
	e, err := newEnv(cctx)
	if err != nil {
		return err
	}

	cfg := bench.AccessConfig{
		Queries:  cctx.Int("queries"),
		KeySpace: cctx.Int("keys"),
		HotKeys:  cctx.Int("hot-keys"),
		HotRatio: cctx.Float64("hot-ratio"),
	}

	opts := append(e.options(cctx), bench.WithSeed(cctx.Uint64("seed")))
	results, err := bench.RunAccess(cctx.Context, cfg, opts...)
	if err != nil {
		return err
	}

	bench.WriteAccessTable(cctx.App.Writer, results)
	return e.finish(cctx)
}
