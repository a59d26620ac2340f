package chunkq

// Allocs returns the number of chunks allocated over the queue's
// lifetime, including the chunk created by New. A workload whose
// producer and consumer keep pace shows this counter go flat while
// Recycles keeps climbing.
func (q *Queue[T]) Allocs() uint64 {
	return q.allocs.Load()
}

// Recycles returns the number of rollovers satisfied by reusing the
// spare chunk instead of allocating.
func (q *Queue[T]) Recycles() uint64 {
	return q.recycles.Load()
}
