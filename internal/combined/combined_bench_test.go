package combined_test

import (
	"sync/atomic"
	"testing"

	ring "github.com/randomizedcoder/go-lock-free-ring"

	chunkq "github.com/randomizedcoder/go-chunked-queue"
	"github.com/randomizedcoder/go-chunked-queue/internal/baseline"
)

// Sink variables to prevent compiler from eliminating benchmark loops
var sinkInt int
var sinkBool bool

// ============================================================================
// Same-goroutine floors: push immediately followed by pop
// ============================================================================

func BenchmarkCombined_PushPop_Chunked(b *testing.B) {
	q := chunkq.New[int](256)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	for i := 0; i < b.N; i++ {
		q.Push(i)
		val = q.Pop()
	}
	sinkInt = val
}

func BenchmarkCombined_PushPop_Chan(b *testing.B) {
	q := baseline.NewChan[int](1024)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var ok bool
	for i := 0; i < b.N; i++ {
		q.Push(i)
		val, ok = q.Pop()
	}
	sinkInt = val
	sinkBool = ok
}

func BenchmarkCombined_PushPop_Ring(b *testing.B) {
	q := baseline.NewRing[int](1024)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var ok bool
	for i := 0; i < b.N; i++ {
		q.Push(i)
		val, ok = q.Pop()
	}
	sinkInt = val
	sinkBool = ok
}

// ============================================================================
// SPSC pipelines: 1 producer goroutine -> 1 consumer goroutine
// ============================================================================
//
// The bounded queues signal fullness/emptiness themselves; the chunked
// queue never fills, so its consumer is driven by the published-count
// signal its callers are expected to provide.

func BenchmarkCombined_SPSC_Chunked(b *testing.B) {
	q := chunkq.New[int](256)
	var published atomic.Uint64
	done := make(chan struct{})

	go func() {
		popped := uint64(0)
		for {
			select {
			case <-done:
				return
			default:
				if popped < published.Load() {
					q.Pop()
					popped++
				}
			}
		}
	}()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Push(i)
		published.Add(1)
	}
	b.StopTimer()
	close(done)
}

func BenchmarkCombined_SPSC_Chan(b *testing.B) {
	q := baseline.NewChan[int](1024)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			default:
				q.Pop()
			}
		}
	}()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for !q.Push(i) {
		}
	}
	b.StopTimer()
	close(done)
}

func BenchmarkCombined_SPSC_Ring(b *testing.B) {
	q := baseline.NewRing[int](1024)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			default:
				q.Pop()
			}
		}
	}()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for !q.Push(i) {
		}
	}
	b.StopTimer()
	close(done)
}

// BenchmarkCombined_SPSC_ShardedRing1 - go-lock-free-ring with 1 shard,
// the external comparison point. It is an MPSC design; with one shard it
// degenerates to the SPSC case benchmarked here.
func BenchmarkCombined_SPSC_ShardedRing1(b *testing.B) {
	r, _ := ring.NewShardedRing(1024, 1)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			default:
				r.TryRead()
			}
		}
	}()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for !r.Write(0, i) {
		}
	}
	b.StopTimer()
	close(done)
}

// ============================================================================
// Burst/drain: the access pattern chunked allocation is built for
// ============================================================================
//
// A pipe fills with a burst of messages while the I/O side is busy, then
// drains. Bounded queues need to be sized for the worst burst up front;
// the chunked queue grows by a chunk and hands it back on drain.

func BenchmarkCombined_BurstDrain_Chunked(b *testing.B) {
	const burst = 512
	q := chunkq.New[int](256)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	for i := 0; i < b.N; i++ {
		for j := 0; j < burst; j++ {
			q.Push(j)
		}
		for j := 0; j < burst; j++ {
			val = q.Pop()
		}
	}
	sinkInt = val
}

func BenchmarkCombined_BurstDrain_Ring(b *testing.B) {
	const burst = 512
	q := baseline.NewRing[int](burst)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var ok bool
	for i := 0; i < b.N; i++ {
		for j := 0; j < burst; j++ {
			q.Push(j)
		}
		for j := 0; j < burst; j++ {
			val, ok = q.Pop()
		}
	}
	sinkInt = val
	sinkBool = ok
}
