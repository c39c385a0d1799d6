package stats

// Value is a sample of the running median stream.
type Value int32

// lowHeap keeps the smaller half of the stream, largest on top.
type lowHeap []Value

func (h lowHeap) Len() int {
	return len(h)
}

func (h lowHeap) Less(i, j int) bool {
	// Pop gives the largest, so use greater than here.
	return h[i] > h[j]
}

func (h lowHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *lowHeap) Push(x interface{}) {
	*h = append(*h, x.(Value))
}

func (h *lowHeap) Pop() interface{} {
	old := *h
	n := len(old)
	val := old[n-1]
	*h = old[0 : n-1]
	return val
}

// highHeap keeps the larger half of the stream, smallest on top.
type highHeap []Value

func (h highHeap) Len() int {
	return len(h)
}

func (h highHeap) Less(i, j int) bool {
	return h[i] < h[j]
}

func (h highHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *highHeap) Push(x interface{}) {
	*h = append(*h, x.(Value))
}

func (h *highHeap) Pop() interface{} {
	old := *h
	n := len(old)
	val := old[n-1]
	*h = old[0 : n-1]
	return val
}
