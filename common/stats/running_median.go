package stats

import (
	"container/heap"
	"fmt"
)

// DebugLogger receives the heap boundaries after every Add.
// go-utils logger.Logger satisfies it.
type DebugLogger interface {
	Debug(format string, args ...interface{})
}

// RunningMedian tracks the median of all values added so far.
// The smaller half lives in a max heap (low), the larger half in a min heap
// (high). After every Add, len(high) is len(low) or len(low)+1.
//
// RunningMedian is not safe for concurrent use.
type RunningMedian struct {
	log  DebugLogger
	low  lowHeap
	high highHeap
}

func NewRunningMedian() *RunningMedian {
	return NewRunningMedianWithCapacity(0)
}

// NewRunningMedianWithCapacity preallocates room for n values.
func NewRunningMedianWithCapacity(n int) *RunningMedian {
	if n < 0 {
		n = 0
	}
	return &RunningMedian{
		low:  make(lowHeap, 0, n/2),
		high: make(highHeap, 0, n/2+1),
	}
}

// SetLogger enables tracing of the heap boundaries, nil disables it.
// Debug is called on every Add regardless of the logger level.
func (rm *RunningMedian) SetLogger(log DebugLogger) {
	rm.log = log
}

// Add inserts a value in O(log n).
func (rm *RunningMedian) Add(val Value) {
	if len(rm.low) == len(rm.high) {
		// Route through low so that high receives the largest of low.
		heap.Push(&rm.low, val)
		heap.Push(&rm.high, heap.Pop(&rm.low))
	} else {
		heap.Push(&rm.high, val)
		heap.Push(&rm.low, heap.Pop(&rm.high))
	}
	if rm.log != nil {
		rm.log.Debug("Added %d: %v", val, rm)
	}
}

// Median returns the median of all values added so far in O(1).
// On an empty tracker it returns (0, false).
func (rm *RunningMedian) Median() (float64, bool) {
	if len(rm.high) == 0 {
		return 0, false
	}
	if len(rm.low) == len(rm.high) {
		return float64(int64(rm.low[0])+int64(rm.high[0])) / 2, true
	}
	return float64(rm.high[0]), true
}

// N returns the number of values added.
func (rm *RunningMedian) N() int64 {
	return int64(len(rm.low) + len(rm.high))
}

// Reset drops all values and keeps the allocated capacity.
func (rm *RunningMedian) Reset() {
	rm.low = rm.low[:0]
	rm.high = rm.high[:0]
}

func (rm *RunningMedian) String() string {
	switch {
	case len(rm.high) == 0:
		return "[|]"
	case len(rm.low) == 0:
		return fmt.Sprintf("[0:-|%d:%d]", len(rm.high), rm.high[0])
	default:
		return fmt.Sprintf("[%d:%d|%d:%d]", len(rm.low), rm.low[0], len(rm.high), rm.high[0])
	}
}
