package chunkq

import (
	"sync/atomic"
)

// chunk is a fixed-capacity block of queue slots and the unit of
// allocation and recycling. values holds the elements; pos holds each
// slot's global position in the infinite stream of pushed elements.
type chunk[T any] struct {
	values []T
	pos    []uint64
	prev   *chunk[T]
	next   *chunk[T]
}

// Queue is an unbounded chunked SPSC queue.
//
// Three (chunk, offset) cursors partition ownership between the two
// goroutines. begin is touched only by the consumer. back and end are
// touched only by the producer; end always leads back by exactly one
// slot, so back is the slot the next Push fills and end is the slot
// after it. The spare cell is the only field both sides touch.
//
// The zero value is not usable; create instances with New.
type Queue[T any] struct {
	size int // slots per chunk

	// Consumer side: oldest occupied slot. Valid only while non-empty.
	beginChunk *chunk[T]
	beginPos   int

	// Producer side. back is the write cursor: one past the newest
	// committed element, and the slot holding the rolled-back element
	// immediately after an Unpush.
	backChunk *chunk[T]
	backPos   int
	endChunk  *chunk[T]
	endPos    int

	// nextPos is the next unleased global position. Producer only.
	nextPos uint64

	// spare is a single-slot handoff cell holding at most one detached
	// chunk. The consumer publishes the chunk it drains; the producer
	// claims it on rollover. Holding onto the most recently freed chunk
	// saves an alloc/free pair when the two sides run at similar rates.
	spare atomic.Pointer[chunk[T]]

	allocs   atomic.Uint64
	recycles atomic.Uint64

	pushGuard guard
	popGuard  guard
}

// New creates a Queue whose chunks hold chunkSize slots each.
// Larger chunks amortize allocation further at the cost of a coarser
// recycling granularity. Panics if chunkSize < 1.
func New[T any](chunkSize int) *Queue[T] {
	if chunkSize < 1 {
		panic("chunkq: chunk size must be at least 1")
	}
	q := &Queue[T]{size: chunkSize}
	c := q.newChunk()
	q.beginChunk = c
	q.backChunk = c
	q.endChunk = c
	// Establish the one-slot gap between back and end. For chunkSize 1
	// this rolls straight into a second chunk, keeping end on a valid
	// slot.
	q.advanceEnd()
	return q
}

// newChunk allocates a chunk and leases it the next global-position
// range. Producer side only (construction counts as the producer).
func (q *Queue[T]) newChunk() *chunk[T] {
	c := &chunk[T]{
		values: make([]T, q.size),
		pos:    make([]uint64, q.size),
	}
	q.lease(c)
	q.allocs.Add(1)
	return c
}

// lease assigns c the next chunkSize global positions. The chunk must
// be exclusively owned by the producer when called.
func (q *Queue[T]) lease(c *chunk[T]) {
	for i := range c.pos {
		c.pos[i] = q.nextPos
		q.nextPos++
	}
}

// advanceEnd moves the end cursor forward one slot, rolling over into a
// recycled or freshly allocated chunk at the chunk boundary.
func (q *Queue[T]) advanceEnd() {
	q.endPos++
	if q.endPos != q.size {
		return
	}

	// Rollover. Prefer the spare chunk the consumer handed back; the
	// Swap leaves the cell empty so a chunk is never linked in twice.
	next := q.spare.Swap(nil)
	if next != nil {
		// A recycled chunk starts a new lifetime with a fresh position
		// range. It is producer-owned from the moment the Swap returns.
		q.lease(next)
		next.next = nil
		q.recycles.Add(1)
	} else {
		next = q.newChunk()
	}
	next.prev = q.endChunk
	q.endChunk.next = next
	q.endChunk = next
	q.endPos = 0
}

// Push appends v to the queue. It never fails and never blocks; the
// amortized cost is O(1) with at most one chunk allocation (or spare
// reuse) per chunkSize pushes. Producer side.
func (q *Queue[T]) Push(v T) {
	q.pushGuard.enter(guardMsgPush)
	q.backChunk.values[q.backPos] = v
	q.backChunk = q.endChunk
	q.backPos = q.endPos
	q.advanceEnd()
	q.pushGuard.exit()
}

// Unpush rolls back the most recent Push, restoring the cursors to
// their state before it. The element itself is not touched: after
// Unpush returns, Back addresses it, and disposing of it is the
// caller's responsibility. Producer side.
//
// Precondition: at least one Push has happened since the queue was last
// fully unwound. The consumer side is unsynchronised, so the queue
// cannot verify this itself; calling Unpush with nothing to roll back
// is undefined.
func (q *Queue[T]) Unpush() {
	q.pushGuard.enter(guardMsgUnpush)

	// Move back one slot backwards.
	if q.backPos > 0 {
		q.backPos--
	} else {
		q.backPos = q.size - 1
		q.backChunk = q.backChunk.prev
	}

	// Move end one slot backwards. A boundary crossing severs the tail
	// chunk: it is dropped rather than handed to the spare cell, since
	// publishing it safely would cost an atomic per chunk on this path.
	// Its position range was never exposed (no element ever committed
	// there), so the range is returned to the allocator to keep
	// positions contiguous.
	if q.endPos > 0 {
		q.endPos--
	} else {
		q.endPos = q.size - 1
		q.endChunk = q.endChunk.prev
		q.endChunk.next = nil
		q.nextPos -= uint64(q.size)
	}

	q.pushGuard.exit()
}

// Pop removes and returns the oldest element. The vacated slot is
// zeroed so the queue does not pin memory the element referenced.
// Consumer side.
//
// Precondition: the queue is non-empty. Popping an empty queue is
// undefined.
func (q *Queue[T]) Pop() T {
	q.popGuard.enter(guardMsgPop)
	var zero T
	v := q.beginChunk.values[q.beginPos]
	q.beginChunk.values[q.beginPos] = zero
	q.beginPos++
	if q.beginPos == q.size {
		// Drained the head chunk: detach it and publish it as the
		// spare. An older spare still in the cell is simply dropped,
		// keeping at most one retained chunk.
		drained := q.beginChunk
		q.beginChunk = drained.next
		q.beginChunk.prev = nil
		q.beginPos = 0
		q.spare.Swap(drained)
	}
	q.popGuard.exit()
	return v
}

// Front returns the oldest element without removing it. Consumer side.
//
// Precondition: the queue is non-empty.
func (q *Queue[T]) Front() T {
	return q.beginChunk.values[q.beginPos]
}

// FrontPos returns the global position of the oldest element.
// Consumer side. Precondition: the queue is non-empty.
func (q *Queue[T]) FrontPos() uint64 {
	return q.beginChunk.pos[q.beginPos]
}

// Back returns the element at the write cursor. Immediately after an
// Unpush this is the rolled-back element; after a Push it is whatever
// the slot last held. Producer side.
func (q *Queue[T]) Back() T {
	return q.backChunk.values[q.backPos]
}

// BackPos returns the global position of the write cursor, which is one
// past the newest committed element. Producer side.
func (q *Queue[T]) BackPos() uint64 {
	return q.backChunk.pos[q.backPos]
}

// Fill returns BackPos()-FrontPos(): the number of elements currently
// queued. It reads both cursor sides without synchronisation, so under
// concurrent use it is advisory only; it is exact when the opposite
// side is quiescent.
func (q *Queue[T]) Fill() int {
	return int(q.backChunk.pos[q.backPos] - q.beginChunk.pos[q.beginPos])
}

// ChunkSize returns the number of slots per chunk.
func (q *Queue[T]) ChunkSize() int {
	return q.size
}
