package baseline

// Chan wraps a buffered channel as a Queue. This is the standard
// library answer to SPSC hand-off; each Push/Pop is a non-blocking
// channel operation via select with default.
type Chan[T any] struct {
	ch chan T
}

// NewChan creates a Chan with the specified buffer size.
func NewChan[T any](size int) *Chan[T] {
	return &Chan[T]{
		ch: make(chan T, size),
	}
}

func (q *Chan[T]) Push(v T) bool {
	select {
	case q.ch <- v:
		return true
	default:
		return false
	}
}

func (q *Chan[T]) Pop() (T, bool) {
	select {
	case v := <-q.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}

func (q *Chan[T]) Len() int {
	return len(q.ch)
}

func (q *Chan[T]) Cap() int {
	return cap(q.ch)
}
