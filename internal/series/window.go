// Package series holds the bounded history of samples shown on the chart.
package series

import (
	"iter"

	"github.com/gammazero/deque"
)

// DefaultCapacity is the number of samples kept when no capacity is given.
const DefaultCapacity = 10

// Sample is one timestamped observation.
type Sample struct {
	Epoch float64
	Value float64
}

// Window is a FIFO of the most recent samples, oldest first.
// It is not safe for concurrent use.
type Window struct {
	q   deque.Deque[Sample]
	cap int
}

// New creates a Window holding at most capacity samples. A capacity below 1
// falls back to DefaultCapacity.
func New(capacity int) *Window {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Window{cap: capacity}
}

// Push appends a sample and evicts from the front until the window is back
// within capacity.
func (w *Window) Push(epoch, value float64) {
	w.q.PushBack(Sample{Epoch: epoch, Value: value})
	for w.q.Len() > w.cap {
		w.q.PopFront()
	}
}

// Len returns the number of samples held.
func (w *Window) Len() int { return w.q.Len() }

// Cap returns the configured capacity.
func (w *Window) Cap() int { return w.cap }

// LatestEpoch returns the epoch of the newest sample, or 0 when empty.
func (w *Window) LatestEpoch() float64 {
	if w.q.Len() == 0 {
		return 0
	}
	return w.q.Back().Epoch
}

// Samples returns a copy of the held samples, oldest first.
func (w *Window) Samples() []Sample {
	if w.q.Len() == 0 {
		return nil
	}
	out := make([]Sample, w.q.Len())
	for i := range out {
		out[i] = w.q.At(i)
	}
	return out
}

// Pairs yields each pair of adjacent samples in arrival order. A window of
// length L yields max(L-1, 0) pairs. The sequence reads the window lazily, so
// it must not be consumed across a Push.
func (w *Window) Pairs() iter.Seq2[Sample, Sample] {
	return func(yield func(Sample, Sample) bool) {
		for i := 1; i < w.q.Len(); i++ {
			if !yield(w.q.At(i-1), w.q.At(i)) {
				return
			}
		}
	}
}
