// Package baseline provides the bounded SPSC queues the chunked queue
// is benchmarked against: a buffered channel and a classic power-of-two
// ring buffer.
//
// Both are non-blocking (Push returns false when full, Pop returns
// false when empty), which is the usual shape for bounded SPSC queues.
// The chunked queue differs on purpose: it is unbounded, so its Push
// has no failure mode and its Pop has a non-emptiness precondition
// instead of an ok result.
//
// The ring buffer follows the same SPSC contract as the chunked queue:
// exactly one goroutine pushes, exactly one pops.
package baseline

// Queue is a bounded single-producer single-consumer queue.
type Queue[T any] interface {
	// Push adds an item to the queue.
	// Returns false if the queue is full.
	Push(T) bool

	// Pop removes and returns an item from the queue.
	// Returns false if the queue is empty.
	Pop() (T, bool)

	// Len returns the current number of items in the queue.
	Len() int

	// Cap returns the capacity of the queue.
	Cap() int
}
