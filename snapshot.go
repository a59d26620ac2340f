package chunkq

import "fmt"

// Snapshot returns a copy of the queued elements in FIFO order.
// Debugging aid: it walks both cursor sides without synchronisation, so
// it must not run concurrently with Push or Pop.
func (q *Queue[T]) Snapshot() []T {
	n := q.Fill()
	if n <= 0 {
		return nil
	}
	out := make([]T, 0, n)
	c, i := q.beginChunk, q.beginPos
	for len(out) < n {
		out = append(out, c.values[i])
		i++
		if i == q.size {
			c, i = c.next, 0
		}
	}
	return out
}

// String reports the fill and chunk size, e.g. "chunkq{3/16}".
// Same caveat as Snapshot.
func (q *Queue[T]) String() string {
	return fmt.Sprintf("chunkq{%d/%d}", q.Fill(), q.size)
}
