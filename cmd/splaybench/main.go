package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/hupe1980/splaycache"
	"github.com/hupe1980/splaycache/bench"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	app := cli.App{
		Name:    "splaybench",
		Usage:   "compare a splay tree memo cache against LRU and ARC caches",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity (debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"SPLAYBENCH_LOG_LEVEL", "LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:    "log-json",
				Usage:   "emit logs as JSON",
				EnvVars: []string{"SPLAYBENCH_LOG_JSON"},
			},
			&cli.BoolFlag{
				Name:    "metrics",
				Usage:   "print collected Prometheus metrics after the run",
				EnvVars: []string{"SPLAYBENCH_METRICS"},
			},
		},
		Commands: []*cli.Command{
			cmdFib,
			cmdRandom,
		},
	}
	return app.RunContext(ctx, args)
}

// env carries what every subcommand needs.
type env struct {
	logger   *splaycache.Logger
	registry *prometheus.Registry
	metrics  *bench.PrometheusCollector
}

func newEnv(cctx *cli.Context) (*env, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cctx.String("log-level"))); err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	logger := splaycache.NewTextLogger(level)
	if cctx.Bool("log-json") {
		logger = splaycache.NewJSONLogger(level)
	}

	reg := prometheus.NewRegistry()
	metrics, err := bench.NewPrometheusCollector(reg)
	if err != nil {
		return nil, err
	}

	return &env{logger: logger, registry: reg, metrics: metrics}, nil
}

func (e *env) options(cctx *cli.Context) []bench.Option {
	return []bench.Option{
		bench.WithLogger(e.logger),
		bench.WithMetricsCollector(e.metrics),
		bench.WithLRUSize(cctx.Int("lru-size")),
	}
}

// finish prints gathered metrics when --metrics is set.
func (e *env) finish(cctx *cli.Context) error {
	if !cctx.Bool("metrics") {
		return nil
	}

	summaries, err := bench.Summarize(e.registry)
	if err != nil {
		return err
	}

	fmt.Fprintln(cctx.App.Writer)
	bench.WriteMetricsTable(cctx.App.Writer, summaries)
	return nil
}
