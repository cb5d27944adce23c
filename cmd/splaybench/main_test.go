package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestNewEnv_RejectsUnknownLevel(t *testing.T) {
	app := &cli.App{
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level"},
			&cli.BoolFlag{Name: "log-json"},
		},
		Action: func(cctx *cli.Context) error {
			_, err := newEnv(cctx)
			return err
		},
	}

	err := app.Run([]string{"test", "--log-level", "chatty"})
	assert.Error(t, err)
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "fib",
			args: []string{"fib", "--max", "60", "--step", "20"},
			want: []string{"Splay Tree Time (s)", "40"},
		},
		{
			name: "random with metrics",
			args: []string{"--metrics", "--log-level", "error", "random", "--queries", "200", "--keys", "50", "--hot-keys", "5"},
			want: []string{"Hit Ratio", "arc", "splaycache_bench_lookups_total"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			app := &cli.App{
				Flags:    []cli.Flag{&cli.StringFlag{Name: "log-level", Value: "error"}, &cli.BoolFlag{Name: "log-json"}, &cli.BoolFlag{Name: "metrics"}},
				Commands: []*cli.Command{cmdFib, cmdRandom},
				Writer:   &out,
			}

			err := app.RunContext(context.Background(), append([]string{"splaybench"}, tt.args...))
			require.NoError(t, err)

			for _, w := range tt.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}

func TestCommands_InvalidStep(t *testing.T) {
	err := run(context.Background(), []string{"splaybench", "fib", "--step", "0"})
	assert.ErrorContains(t, err, "step")
}

func TestCommands_FibRejectsTinyLRU(t *testing.T) {
	err := run(context.Background(), []string{"splaybench", "fib", "--lru-size", "1"})
	assert.ErrorContains(t, err, "lru size")
}

func TestCommands_RandomEnvFallback(t *testing.T) {
	t.Setenv("SPLAYBENCH_HOT_KEYS", "500")

	err := run(context.Background(), []string{"splaybench", "random", "--queries", "10", "--keys", "100"})
	assert.ErrorContains(t, err, "hot keys")
}
