package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/mason-leap-lab/go-utils/config"
	"github.com/mason-leap-lab/go-utils/logger"

	"github.com/mason-leap-lab/runningmedian/evaluation/benchmark/options"
	"github.com/mason-leap-lab/runningmedian/evaluation/benchmark/recorder"
	"github.com/mason-leap-lab/runningmedian/evaluation/benchmark/runner"
	"github.com/mason-leap-lab/runningmedian/evaluation/benchmark/samples"
)

var (
	log logger.Logger = logger.NilLogger
)

func main() {
	opts := options.NewOptions()
	flags, err := config.ValidateOptions(opts)
	if err == config.ErrPrintUsage {
		fmt.Fprintf(os.Stderr, "Usage: ./benchmark [options]\n")
		fmt.Fprintf(os.Stderr, "Available options:\n")
		flags.PrintDefaults()
		os.Exit(0)
	} else if err != nil {
		panic(err)
	}

	log = config.GetDefaultLogger()
	if err := run(opts, os.Stdout); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}

// run returns instead of exiting so that buffered records get flushed.
func run(opts *options.Options, out io.Writer) error {
	runId := uuid.New().String()

	set, err := loadSamples(opts)
	if err != nil {
		return fmt.Errorf("failed to prepare samples: %w", err)
	}

	if opts.Output != "" {
		if err := recorder.Create(opts.Output); err != nil {
			return fmt.Errorf("failed to create record file %s: %w", opts.Output, err)
		}
		defer func() {
			if err := recorder.Flush(); err != nil {
				log.Warn("Failed to flush records: %v", err)
			}
		}()
	}

	bench := runner.NewRunner(len(set.Values), opts.Window, opts.Trace, log)
	log.Info("Run %s: %s samples of %d bits, seed %d", runId, humanize.Comma(int64(len(set.Values))), set.Bits, set.Seed)
	var total time.Duration
	for round := 0; round < opts.Rounds; round++ {
		if err := recorder.Run(runId, round, len(set.Values), set.Bits, set.Seed); err != nil {
			log.Warn("Failed to record run: %v", err)
		}

		ret, err := bench.Run(round, set.Values)
		if err != nil {
			return fmt.Errorf("round %d failed: %w", round, err)
		}
		total += ret.Elapsed
		fmt.Fprintf(out, "Median: %v, %v (avg insertion %v)\n", ret.Median, ret.Elapsed, time.Duration(ret.Latency))
	}
	if opts.Rounds > 1 {
		log.Info("Run %s: %d rounds in %v", runId, opts.Rounds, total)
	}
	return nil
}

func loadSamples(opts *options.Options) (*samples.Set, error) {
	if opts.Samples != "" {
		log.Info("Loading samples from %s", opts.Samples)
		return samples.Load(opts.Samples)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	set, err := samples.Generate(opts.N, opts.Bits, seed)
	if err != nil {
		return nil, err
	}
	if opts.Dump != "" {
		if err := set.Save(opts.Dump); err != nil {
			return nil, fmt.Errorf("failed to save samples to %s: %w", opts.Dump, err)
		}
		log.Info("Samples saved to %s", opts.Dump)
	}
	return set, nil
}
