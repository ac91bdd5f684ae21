// Command pdsctl replays trie scripts and buffer access traces against the
// persistent trie store and the LRU-K replacer.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/urfave/cli"

	"github.com/aglyzov/go-pds/internal/config"
	"github.com/aglyzov/go-pds/internal/log"
	"github.com/aglyzov/go-pds/lruk"
	"github.com/aglyzov/go-pds/triestore"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "pdsctl"))

var errMissingInput = errors.New("missing input file")

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "pdsctl"
	app.Usage = "replay trie scripts and LRU-K access traces"
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = globalFlags
	app.Commands = []cli.Command{
		{
			Name:      "trie",
			Usage:     "run a trie script (put, get, remove, version, checkout, dump)",
			ArgsUsage: "<script>",
			Action:    trieAction,
		},
		{
			Name:      "replay",
			Usage:     "replay an access trace (access, pin, unpin, evict, remove, size)",
			ArgsUsage: "<trace>",
			Flags:     []cli.Flag{FramesFlag, KFlag},
			Action:    replayAction,
		},
	}

	return app
}

// setupConfig loads the configuration and applies the log settings.
func setupConfig(ctx *cli.Context) (cfg config.Config, err error) {
	cfg = config.Default()

	if path := ctx.GlobalString(ConfigFlag.Name); path != "" {
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}

	if lvl := ctx.GlobalString(LogFlag.Name); lvl != "" {
		cfg.Log.Level = lvl
	}
	if ctx.GlobalBool(LogColourFlag.Name) {
		cfg.Log.Colour = true
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return cfg, err
	}

	log.Patch(
		log.SetWriter(ctx.App.ErrWriter),
		log.SetColour(cfg.Log.Colour),
	)
	log.PatchLevel(level)

	return cfg, nil
}

// openInput opens the named file, or stdin for "-". The returned release
// function closes the file but leaves stdin open.
func openInput(path string) (in *os.File, release func(), err error) {
	if path == "" {
		return nil, nil, errMissingInput
	}

	if path == "-" {
		return os.Stdin, func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open input: %w", err)
	}

	release = func() {
		if err := f.Close(); err != nil {
			logger.Warnf("cannot close %s: %s", path, err)
		}
	}

	return f, release, nil
}

func trieAction(ctx *cli.Context) error {
	if _, err := setupConfig(ctx); err != nil {
		return err
	}

	in, release, err := openInput(ctx.Args().First())
	if err != nil {
		return err
	}
	defer release()

	reg := prometheus.NewRegistry()

	var opts []triestore.Option
	if ctx.GlobalBool(MetricsFlag.Name) {
		m, err := triestore.NewPrometheusMetrics(reg)
		if err != nil {
			return err
		}
		opts = append(opts, triestore.WithMetrics(m))
	}

	runner := newScriptRunner(triestore.New(opts...), ctx.App.Writer)
	if err := runner.run(in); err != nil {
		return fmt.Errorf("%s: %w", in.Name(), err)
	}

	logger.Debugf("script %s produced %d versions", in.Name(), len(runner.versions))

	return printMetrics(ctx, reg)
}

func replayAction(ctx *cli.Context) error {
	cfg, err := setupConfig(ctx)
	if err != nil {
		return err
	}

	if ctx.IsSet(FramesFlag.Name) {
		cfg.Replacer.Frames = ctx.Int(FramesFlag.Name)
	}
	if ctx.IsSet(KFlag.Name) {
		cfg.Replacer.K = ctx.Int(KFlag.Name)
	}

	in, release, err := openInput(ctx.Args().First())
	if err != nil {
		return err
	}
	defer release()

	reg := prometheus.NewRegistry()

	var opts []lruk.Option
	if ctx.GlobalBool(MetricsFlag.Name) {
		m, err := lruk.NewPrometheusMetrics(reg)
		if err != nil {
			return err
		}
		opts = append(opts, lruk.WithMetrics(m))
	}

	replacer, err := lruk.New(cfg.Replacer.Frames, cfg.Replacer.K, opts...)
	if err != nil {
		return err
	}

	logger.Debugf("replaying %s with %d frames, k=%d", in.Name(), cfg.Replacer.Frames, cfg.Replacer.K)

	runner := &replayRunner{replacer: replacer, out: ctx.App.Writer}
	if err := runner.run(in); err != nil {
		return fmt.Errorf("%s: %w", in.Name(), err)
	}

	return printMetrics(ctx, reg)
}

func printMetrics(ctx *cli.Context, g prometheus.Gatherer) error {
	if !ctx.GlobalBool(MetricsFlag.Name) {
		return nil
	}

	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("cannot gather metrics: %w", err)
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(ctx.App.Writer, mf); err != nil {
			return fmt.Errorf("cannot write metrics: %w", err)
		}
	}

	return nil
}
