package runner

import (
	"errors"
	"time"

	"github.com/mason-leap-lab/go-utils/logger"

	"github.com/mason-leap-lab/runningmedian/common/stats"
	"github.com/mason-leap-lab/runningmedian/evaluation/benchmark/recorder"
)

var (
	ErrNoSamples = errors.New("no samples to feed")
)

// Result summarizes one round.
type Result struct {
	Round   int
	N       int64
	Median  float64
	OK      bool
	Medians []float64
	Elapsed time.Duration
	// Average insertion latency in nanoseconds: the moving average if per
	// insertion timing is on, Elapsed/N otherwise.
	Latency float64
}

// Runner feeds samples to a RunningMedian and collects the medians.
type Runner struct {
	Tracker *stats.RunningMedian
	// Latency tracks per insertion latency. Nil disables per insertion timing
	// unless recording is enabled, which keeps Elapsed free of instrumentation.
	Latency *stats.MovingStats
	// KeepMedians retains the median after each insertion in Result.Medians.
	KeepMedians bool

	log logger.Logger
}

// NewRunner creates a runner. A window of 0 disables per insertion timing.
// trace passes log to the tracker to dump heap boundaries on every insertion.
func NewRunner(capacity int, window int64, trace bool, log logger.Logger) *Runner {
	if log == nil {
		log = logger.NilLogger
	}
	runner := &Runner{
		Tracker:     stats.NewRunningMedianWithCapacity(capacity),
		KeepMedians: true,
		log:         log,
	}
	if trace {
		runner.Tracker.SetLogger(log)
	}
	if window > 0 {
		runner.Latency = stats.NewMovingSum(window)
	}
	return runner
}

// Run resets the tracker, then adds each value and queries the median after it.
func (r *Runner) Run(round int, values []int32) (*Result, error) {
	if len(values) == 0 {
		return nil, ErrNoSamples
	}

	r.Tracker.Reset()
	ret := &Result{Round: round}
	if r.KeepMedians {
		ret.Medians = make([]float64, 0, len(values))
	}
	timed := r.Latency != nil || recorder.Enabled()

	r.log.Debug("Round %d: feeding %d samples", round, len(values))
	start := time.Now()
	for i, val := range values {
		var begin time.Time
		if timed {
			begin = time.Now()
		}

		r.Tracker.Add(stats.Value(val))
		median, ok := r.Tracker.Median()
		if r.KeepMedians {
			ret.Medians = append(ret.Medians, median)
		}

		if timed {
			latency := time.Since(begin)
			if r.Latency != nil {
				r.Latency.Add(float64(latency))
			}
			if err := recorder.Insert(round, i, val, median, ok, latency); err != nil {
				r.log.Warn("Failed to record insertion %d of round %d: %v", i, round, err)
			}
		}
	}
	ret.Elapsed = time.Since(start)

	ret.N = r.Tracker.N()
	ret.Median, ret.OK = r.Tracker.Median()
	if r.Latency != nil {
		ret.Latency = r.Latency.Average()
	} else {
		ret.Latency = float64(ret.Elapsed) / float64(ret.N)
	}
	r.log.Debug("Round %d: median %v after %v", round, ret.Median, ret.Elapsed)
	return ret, nil
}
