package main

import (
	"github.com/hupe1980/splaycache/bench"
	"github.com/urfave/cli/v2"
)

var cmdFib = &cli.Command{
	Name:  "fib",
	Usage: "time memoized Fibonacci for n in [0, max) with LRU, ARC and splay caches",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "max",
			Usage:   "exclusive upper bound for n",
			Value:   bench.DefaultFibonacciConfig().Max,
			EnvVars: []string{"SPLAYBENCH_FIB_MAX"},
		},
		&cli.IntFlag{
			Name:    "step",
			Usage:   "increment between successive n",
			Value:   bench.DefaultFibonacciConfig().Step,
			EnvVars: []string{"SPLAYBENCH_FIB_STEP"},
		},
		&cli.IntFlag{
			Name:    "lru-size",
			Usage:   "LRU/ARC capacity, at least 3 (0 sizes the caches to never evict)",
			EnvVars: []string{"SPLAYBENCH_FIB_LRU_SIZE"},
		},
	},
	Action: runFib,
}

func runFib(cctx *cli.Context) error {
	e, err := newEnv(cctx)
	if err != nil {
		return err
	}

	cfg := bench.FibonacciConfig{
		Max:  cctx.Int("max"),
		Step: cctx.Int("step"),
	}

	rows, err := bench.RunFibonacci(cctx.Context, cfg, e.options(cctx)...)
	if err != nil {
		return err
	}

	bench.WriteFibonacciTable(cctx.App.Writer, rows)
	return e.finish(cctx)
}
