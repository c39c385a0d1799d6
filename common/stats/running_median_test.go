package stats

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

type traceLogger struct {
	lines []string
}

func (l *traceLogger) Debug(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func sortedMedian(values []Value) float64 {
	sorted := make([]Value, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}
	return float64(int64(sorted[mid-1])+int64(sorted[mid])) / 2
}

func expectBalanced(rm *RunningMedian) {
	ExpectWithOffset(1, len(rm.high)-len(rm.low)).To(BeElementOf(0, 1))
	if len(rm.low) == 0 {
		return
	}
	for _, low := range rm.low {
		ExpectWithOffset(1, low).To(BeNumerically("<=", rm.low[0]))
	}
	for _, high := range rm.high {
		ExpectWithOffset(1, high).To(BeNumerically(">=", rm.high[0]))
	}
	ExpectWithOffset(1, rm.low[0]).To(BeNumerically("<=", rm.high[0]))
}

func medianOf(rm *RunningMedian) float64 {
	median, ok := rm.Median()
	ExpectWithOffset(1, ok).To(BeTrue())
	return median
}

func addAll(rm *RunningMedian, values ...Value) {
	for _, val := range values {
		rm.Add(val)
	}
}

var _ = Describe("RunningMedian", func() {
	var rm *RunningMedian

	BeforeEach(func() {
		rm = NewRunningMedian()
	})

	It("should report no data on empty tracker", func() {
		median, ok := rm.Median()
		Expect(ok).To(BeFalse())
		Expect(median).To(Equal(0.0))
		Expect(rm.N()).To(Equal(int64(0)))
		Expect(rm.String()).To(Equal("[|]"))
	})

	table.DescribeTable("should get median of small streams",
		func(expected float64, values ...Value) {
			addAll(rm, values...)
			median, ok := rm.Median()
			Expect(ok).To(BeTrue())
			Expect(median).To(Equal(expected))
		},
		table.Entry("single value", 5.0, Value(5)),
		table.Entry("two values", 3.5, Value(5), Value(2)),
		table.Entry("three values", 5.0, Value(5), Value(2), Value(8)),
		table.Entry("negative values", -2.5, Value(-1), Value(-4)),
		table.Entry("max int32 pair", float64(math.MaxInt32), Value(math.MaxInt32), Value(math.MaxInt32)),
		table.Entry("min int32 pair", float64(math.MinInt32), Value(math.MinInt32), Value(math.MinInt32)),
		table.Entry("extreme pair", -0.5, Value(math.MinInt32), Value(math.MaxInt32)),
	)

	It("should get median after each insertion of ordered values", func() {
		expected := []float64{1.0, 1.5, 2.0, 2.5, 3.0}
		for i, want := range expected {
			rm.Add(Value(i + 1))
			Expect(medianOf(rm)).To(Equal(want))
		}
	})

	It("should get median of repeated values", func() {
		for i := 0; i < 1000; i++ {
			rm.Add(7)
			Expect(medianOf(rm)).To(Equal(7.0))
			expectBalanced(rm)
		}
		Expect(rm.N()).To(Equal(int64(1000)))
	})

	It("should return same median on repeated queries", func() {
		addAll(rm, 9, 1, 4, 4)
		first, _ := rm.Median()
		for i := 0; i < 3; i++ {
			Expect(medianOf(rm)).To(Equal(first))
		}
		Expect(rm.N()).To(Equal(int64(4)))
	})

	It("should match sorted median on every prefix of random stream", func() {
		rnd := rand.New(rand.NewSource(20221116))
		values := make([]Value, 0, 2000)
		for i := 0; i < cap(values); i++ {
			val := Value(rnd.Int63n(2001) - 1000)
			values = append(values, val)
			rm.Add(val)

			expectBalanced(rm)
			median, ok := rm.Median()
			Expect(ok).To(BeTrue())
			Expect(median).To(Equal(sortedMedian(values)))
		}
	})

	It("should keep the inserted multiset", func() {
		values := []Value{3, -7, 3, 12, 0, math.MaxInt32, -7, 5, math.MinInt32}
		addAll(rm, values...)

		kept := make([]Value, 0, len(values))
		kept = append(kept, rm.low...)
		kept = append(kept, rm.high...)
		Expect(kept).To(ConsistOf(values))
	})

	It("should match sorted median on full int32 range", func() {
		rnd := rand.New(rand.NewSource(7))
		values := make([]Value, 501)
		for i := range values {
			values[i] = Value(int32(rnd.Uint32()))
		}
		addAll(rm, values...)
		expectBalanced(rm)
		Expect(medianOf(rm)).To(Equal(sortedMedian(values)))
	})

	It("should reset to empty", func() {
		rm = NewRunningMedianWithCapacity(16)
		addAll(rm, 1, 2, 3)
		rm.Reset()

		_, ok := rm.Median()
		Expect(ok).To(BeFalse())
		Expect(rm.N()).To(Equal(int64(0)))
		Expect(cap(rm.high)).To(BeNumerically(">=", 9))

		rm.Add(42)
		Expect(medianOf(rm)).To(Equal(42.0))
	})

	It("should trace heap boundaries", func() {
		trace := &traceLogger{}
		rm.SetLogger(trace)
		rm.Add(2)
		Expect(rm.String()).To(Equal("[0:-|1:2]"))
		rm.Add(6)
		Expect(rm.String()).To(Equal("[1:2|1:6]"))
		Expect(trace.lines).To(Equal([]string{"Added 2: [0:-|1:2]", "Added 6: [1:2|1:6]"}))

		rm.SetLogger(nil)
		rm.Add(4)
		Expect(rm.String()).To(Equal("[1:2|2:4]"))
		Expect(trace.lines).To(HaveLen(2))
	})
})
