package stats

// StatsProvider exposes the sample count of a statistic.
type StatsProvider interface {
	N() int64
}

// HistoryProvider exposes the samples still inside a moving window.
type HistoryProvider interface {
	StatsProvider
	History() []float64
}

var (
	_ StatsProvider   = (*RunningMedian)(nil)
	_ HistoryProvider = (*MovingStats)(nil)
)
