// Command spsc moves messages through a chunked queue between a
// producer goroutine and a consumer goroutine, verifying FIFO order and
// position monotonicity while measuring throughput.
//
// The queue itself has no blocking or emptiness reporting, so the
// producer publishes its progress through an atomic counter and the
// consumer only pops elements it knows exist. This is the signaling
// pattern the library expects its callers to provide.
//
// Usage:
//
//	go run ./cmd/spsc -n 10000000 -chunk 256
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	chunkq "github.com/randomizedcoder/go-chunked-queue"
)

func main() {
	count := flag.Int("n", 10_000_000, "number of messages to transfer")
	chunkSize := flag.Int("chunk", 256, "chunk size")
	flag.Parse()

	fmt.Printf("Transferring %d messages (chunk=%d)\n", *count, *chunkSize)

	q := chunkq.New[int](*chunkSize)
	var published atomic.Uint64

	start := time.Now()

	go func() {
		for i := 0; i < *count; i++ {
			q.Push(i)
			published.Add(1)
		}
	}()

	popped := 0
	for popped < *count {
		avail := published.Load()
		if uint64(popped) == avail {
			runtime.Gosched()
			continue
		}
		for uint64(popped) < avail {
			if pos := q.FrontPos(); pos != uint64(popped) {
				fmt.Printf("position violation at %d: got %d\n", popped, pos)
				os.Exit(1)
			}
			if got := q.Pop(); got != popped {
				fmt.Printf("FIFO violation at %d: got %d\n", popped, got)
				os.Exit(1)
			}
			popped++
		}
	}

	elapsed := time.Since(start)
	perOp := float64(elapsed.Nanoseconds()) / float64(*count)

	fmt.Printf("\nResults:\n")
	fmt.Printf("  Elapsed:    %v (%.2f ns/msg)\n", elapsed, perOp)
	fmt.Printf("  Throughput: %.2f M msgs/sec\n", 1000/perOp)
	fmt.Printf("  Allocs:     %d chunks\n", q.Allocs())
	fmt.Printf("  Recycles:   %d chunks\n", q.Recycles())
}
