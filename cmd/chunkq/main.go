// Command chunkq benchmarks the chunked queue against the bounded
// baselines on a single goroutine.
//
// Usage:
//
//	go run ./cmd/chunkq -n 10000000 -chunk 256 -size 1024
package main

import (
	"flag"
	"fmt"
	"time"

	chunkq "github.com/randomizedcoder/go-chunked-queue"
	"github.com/randomizedcoder/go-chunked-queue/internal/baseline"
)

func main() {
	iterations := flag.Int("n", 10_000_000, "number of iterations")
	chunkSize := flag.Int("chunk", 256, "chunked queue chunk size")
	size := flag.Int("size", 1024, "bounded queue capacity")
	flag.Parse()

	fmt.Printf("Benchmarking SPSC queues (%d iterations, chunk=%d, size=%d)\n", *iterations, *chunkSize, *size)
	fmt.Println("─────────────────────────────────────────────────")

	// Benchmark chunked queue
	cq := chunkq.New[int](*chunkSize)
	start := time.Now()
	for i := 0; i < *iterations; i++ {
		cq.Push(i)
		cq.Pop()
	}
	cqDur := time.Since(start)

	// Benchmark channel queue
	ch := baseline.NewChan[int](*size)
	start = time.Now()
	for i := 0; i < *iterations; i++ {
		ch.Push(i)
		ch.Pop()
	}
	chDur := time.Since(start)

	// Benchmark ring buffer
	ring := baseline.NewRing[int](*size)
	start = time.Now()
	for i := 0; i < *iterations; i++ {
		ring.Push(i)
		ring.Pop()
	}
	ringDur := time.Since(start)

	// Results
	cqPerOp := float64(cqDur.Nanoseconds()) / float64(*iterations)
	chPerOp := float64(chDur.Nanoseconds()) / float64(*iterations)
	ringPerOp := float64(ringDur.Nanoseconds()) / float64(*iterations)

	fmt.Printf("\nResults (push + pop per iteration):\n")
	fmt.Printf("  Chunked:  %v (%.2f ns/op)\n", cqDur, cqPerOp)
	fmt.Printf("  Channel:  %v (%.2f ns/op)\n", chDur, chPerOp)
	fmt.Printf("  Ring:     %v (%.2f ns/op)\n", ringDur, ringPerOp)

	fmt.Printf("\nChunked queue chunk accounting:\n")
	fmt.Printf("  Allocs:   %d\n", cq.Allocs())
	fmt.Printf("  Recycles: %d\n", cq.Recycles())

	// Extrapolate to ops/second
	fmt.Printf("\nThroughput (theoretical max):\n")
	fmt.Printf("  Chunked:  %.2f M ops/sec\n", 1000/cqPerOp)
	fmt.Printf("  Channel:  %.2f M ops/sec\n", 1000/chPerOp)
	fmt.Printf("  Ring:     %.2f M ops/sec\n", 1000/ringPerOp)
}
