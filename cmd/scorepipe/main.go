package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kbukum/scorepipe/cleanse"
	"github.com/kbukum/scorepipe/config"
	"github.com/kbukum/scorepipe/decode"
	"github.com/kbukum/scorepipe/gen"
	"github.com/kbukum/scorepipe/logger"
	"github.com/kbukum/scorepipe/observability"
	"github.com/kbukum/scorepipe/report"
	"github.com/kbukum/scorepipe/server"
	"github.com/kbukum/scorepipe/version"
)

const usage = `scorepipe cleanses raw score records into validated ones.

Usage:
  scorepipe run   [-config path] [-strategy eager|optimized|stream] [-records] <input.json>
  scorepipe gen   [-config path] [-count n] [-seed n] [-ratio f] [-out path]
  scorepipe serve [-config path]
  scorepipe version
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "run":
		err = runCmd(os.Args[2:])
	case "gen":
		err = genCmd(os.Args[2:])
	case "serve":
		err = serveCmd(os.Args[2:])
	case "version":
		fmt.Println(version.Get().String())
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.Logging)
	return cfg, nil
}

func runCmd(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	configPath := fs.String("config", "", "path to config file")
	strategy := fs.String("strategy", string(cleanse.StrategyStream), "cleansing strategy")
	showRecords := fs.Bool("records", false, "print the accepted records before the summary")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("run expects exactly one input file, got %d", fs.NArg())
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	log := logger.New(&cfg.Logging, cfg.Name).WithComponent("run")

	strat, err := cleanse.ParseStrategy(*strategy)
	if err != nil {
		return err
	}

	ctx := context.Background()
	path := fs.Arg(0)
	raw, err := decode.DecodeFile(path)
	if err != nil {
		return err
	}

	start := time.Now()
	valid, err := cleanse.Run(ctx, strat, raw)
	if err != nil {
		return err
	}
	log.Info("cleanse complete", logger.Fields(
		logger.FieldStrategy, string(strat),
		logger.FieldDataset, path,
	), logger.DurationFields("cleanse", time.Since(start)))

	if *showRecords {
		if err := report.RenderRecords(os.Stdout, valid); err != nil {
			return err
		}
	}
	return report.Render(os.Stdout, report.Summarize(valid, len(raw)))
}

func genCmd(args []string) error {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	configPath := fs.String("config", "", "path to config file")
	count := fs.Int("count", 0, "number of records to generate")
	seed := fs.Int64("seed", 0, "random seed (0 means time-based)")
	ratio := fs.Float64("ratio", 0, "fraction of records that pass validation")
	out := fs.String("out", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	log := logger.New(&cfg.Logging, cfg.Name).WithComponent("gen")

	opts := gen.Options{
		Count:      cfg.Gen.Count,
		Seed:       cfg.Gen.Seed,
		ValidRatio: cfg.Gen.ValidRatio,
	}
	if *count > 0 {
		opts.Count = *count
	}
	if *seed != 0 {
		opts.Seed = *seed
	}
	if *ratio > 0 {
		opts.ValidRatio = *ratio
	}

	ds := gen.New(opts)

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := ds.WriteJSON(w); err != nil {
		return err
	}
	log.Info("dataset generated", logger.Fields(
		logger.FieldDataset, ds.ID.String(),
		"count", len(ds.Records),
		"seed", ds.Seed,
	))
	return nil
}

func serveCmd(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "", "path to config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	log := logger.New(&cfg.Logging, cfg.Name)
	logger.SetGlobalLogger(log)

	// SIGINT/SIGTERM cancel the context, which drives the server's graceful
	// shutdown and flushes the telemetry providers on the way out.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []server.Option{server.WithLogger(log)}
	if cfg.Metrics.Enabled {
		mp, err := observability.InitMeter(ctx, observability.MeterConfig{
			ServiceName:    cfg.Name,
			ServiceVersion: version.Version,
			Environment:    cfg.Environment,
			Endpoint:       cfg.Metrics.Endpoint,
			Insecure:       cfg.Metrics.Insecure,
			Interval:       cfg.Metrics.Interval,
		})
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := mp.Shutdown(shutdownCtx); err != nil {
				log.WithError(err).Warn("meter provider shutdown")
			}
		}()

		tp, err := observability.InitTracer(ctx, observability.TracerConfig{
			ServiceName:    cfg.Name,
			ServiceVersion: version.Version,
			Environment:    cfg.Environment,
			Endpoint:       cfg.Metrics.Endpoint,
			Insecure:       cfg.Metrics.Insecure,
			SampleRate:     1.0,
		})
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(shutdownCtx); err != nil {
				log.WithError(err).Warn("tracer provider shutdown")
			}
		}()

		metrics, err := observability.NewPipelineMetrics(observability.Meter("scorepipe"))
		if err != nil {
			return err
		}
		opts = append(opts, server.WithMetrics(metrics))
	}

	srv := server.New(cfg.Server, opts...)
	return srv.Run(ctx)
}
