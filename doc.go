// Package chunkq provides an unbounded SPSC queue that allocates in
// fixed-size chunks.
//
// Memory is organized as a linked chain of chunks of chunkSize slots:
//
//	Chunk 0                      Chunk 1
//	[ 0 1 ... size-1 ] <------> [ size size+1 ... 2*size-1 ]
//
// Chunks are allocated when pushes fill the tail chunk and detached when
// pops drain the head chunk. The most recently drained chunk is retained
// in a spare cell and reused by the next rollover, so a producer and
// consumer running at similar rates stop allocating entirely.
//
// Every slot carries a global position: a uint64 assigned when the slot
// is leased, strictly increasing by one per element across the whole
// lifetime of the queue and never reused. Callers can treat positions as
// opaque sequence handles (flow-control accounting, correlation with
// external bookkeeping).
//
// # SPSC Safety (IMPORTANT)
//
// Queue is a Single-Producer Single-Consumer queue. It is NOT safe for
// multiple goroutines to call Push, Unpush, or the Back accessors
// concurrently, nor for multiple goroutines to call Pop or the Front
// accessors concurrently.
//
// Correct usage:
//   - Exactly ONE goroutine calls Push, Unpush, Back, BackPos
//   - Exactly ONE goroutine calls Pop, Front, FrontPos
//   - These may be the same goroutine or two different goroutines
//
// The queue never blocks and has no notion of "empty" it can report
// safely across goroutines: Pop, Front, and Unpush have non-emptiness
// preconditions the caller must uphold by tracking transferred counts
// through an external signal (an atomic counter, a channel notification).
// See cmd/spsc for the pattern.
//
// Building with the chunkqguard tag compiles in guards that panic on
// concurrent misuse of the producer or consumer side. The default build
// carries no checks.
package chunkq
