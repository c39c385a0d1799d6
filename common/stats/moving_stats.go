package stats

import "sync"

// StepStater folds one sample into a statistic. removed is the sample that
// falls out of the window, or 0 while the window is filling.
type StepStater func(stats HistoryProvider, old float64, removed float64, val float64) (new float64)

type StatHandler int

// MovingStats keeps fixed-window statistics over float samples.
type MovingStats struct {
	window         int64
	n              int64
	values         []float64
	last           int64
	stats          []float64
	staters        []StepStater
	defaultHandler StatHandler
	mu             sync.RWMutex
}

// NewMovingSum creates a MovingStats whose Value is the sum of the window.
func NewMovingSum(window int64) *MovingStats {
	stats := NewMovingStats(window)
	stats.defaultHandler = stats.AddStater(SumStater)
	return stats
}

func NewMovingStats(window int64) *MovingStats {
	if window < 1 {
		window = 1
	}
	return &MovingStats{
		window:  window,
		values:  make([]float64, window),
		stats:   make([]float64, 0, 1),
		staters: make([]StepStater, 0, 1),
	}
}

func (stats *MovingStats) AddStater(stater StepStater) StatHandler {
	stats.stats = append(stats.stats, 0.0)
	stats.staters = append(stats.staters, stater)
	return StatHandler(len(stats.stats) - 1)
}

func SumStater(_ HistoryProvider, old float64, removed float64, val float64) (new float64) {
	return old - removed + val
}

func (stats *MovingStats) Add(val float64) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	stats.last = (stats.last + 1) % stats.window
	for i, stater := range stats.staters {
		stats.stats[i] = stater(stats, stats.stats[i], stats.values[stats.last], val)
	}
	stats.values[stats.last] = val
	if stats.n < stats.window {
		stats.n++
	}
}

// Value returns the default statistic.
func (stats *MovingStats) Value() float64 {
	return stats.Stat(stats.defaultHandler)
}

// Stat returns the statistic registered under handler.
func (stats *MovingStats) Stat(handler StatHandler) float64 {
	stats.mu.RLock()
	defer stats.mu.RUnlock()

	if int(handler) >= len(stats.stats) {
		return 0
	}
	return stats.stats[handler]
}

// Average divides the default statistic by the samples in the window.
// Meaningful for sums only.
func (stats *MovingStats) Average() float64 {
	n := stats.N()
	if n == 0 {
		return 0
	}
	return stats.Value() / float64(n)
}

func (stats *MovingStats) Window() int64 {
	return stats.window
}

func (stats *MovingStats) N() int64 {
	stats.mu.RLock()
	defer stats.mu.RUnlock()

	return stats.n
}

func (stats *MovingStats) Last() float64 {
	stats.mu.RLock()
	defer stats.mu.RUnlock()

	return stats.values[stats.last]
}

// LastN returns the sample added n steps before the last one.
func (stats *MovingStats) LastN(n int64) float64 {
	stats.mu.RLock()
	defer stats.mu.RUnlock()

	if n > stats.n {
		n = stats.n
	}
	return stats.values[(stats.last+stats.window-n)%stats.window]
}

// History returns the raw ring buffer. Callers must not modify it.
func (stats *MovingStats) History() []float64 {
	return stats.values
}
