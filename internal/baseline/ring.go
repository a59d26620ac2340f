package baseline

import (
	"sync/atomic"
)

// Ring is a lock-free bounded SPSC ring buffer.
//
// Each side keeps a local copy of the other side's last observed index
// and only refreshes it from the shared atomic when the cached value
// would block the operation. In the steady state an operation performs
// one atomic load and one atomic store instead of two loads and a
// store.
//
// WARNING: not safe for multiple producers or multiple consumers.
type Ring[T any] struct {
	buf  []T
	mask uint64

	// Cache line padding to prevent false sharing
	_pad0 [56]byte //nolint:unused

	head       atomic.Uint64 // written by producer, read by consumer
	cachedTail uint64        // producer's last observed tail

	_pad1 [56]byte //nolint:unused

	tail       atomic.Uint64 // written by consumer, read by producer
	cachedHead uint64        // consumer's last observed head

	_pad2 [56]byte //nolint:unused
}

// NewRing creates a Ring with the specified size.
// Size will be rounded up to the next power of 2.
func NewRing[T any](size int) *Ring[T] {
	n := uint64(1)
	for n < uint64(size) {
		n <<= 1
	}

	return &Ring[T]{
		buf:  make([]T, n),
		mask: n - 1,
	}
}

// Push adds an item to the queue.
// Returns false if the queue is full.
func (r *Ring[T]) Push(v T) bool {
	head := r.head.Load()
	if head-r.cachedTail >= uint64(len(r.buf)) {
		r.cachedTail = r.tail.Load()
		if head-r.cachedTail >= uint64(len(r.buf)) {
			return false
		}
	}

	r.buf[head&r.mask] = v
	r.head.Store(head + 1)

	return true
}

// Pop removes and returns an item from the queue.
// Returns false if the queue is empty.
func (r *Ring[T]) Pop() (T, bool) {
	tail := r.tail.Load()
	if tail >= r.cachedHead {
		r.cachedHead = r.head.Load()
		if tail >= r.cachedHead {
			var zero T
			return zero, false
		}
	}

	v := r.buf[tail&r.mask]
	r.tail.Store(tail + 1)

	return v, true
}

// Len returns the current number of items in the queue.
// This is an approximation and may be slightly stale.
func (r *Ring[T]) Len() int {
	return int(r.head.Load() - r.tail.Load())
}

// Cap returns the capacity of the queue.
func (r *Ring[T]) Cap() int {
	return len(r.buf)
}
