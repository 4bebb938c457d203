package poslist

import "github.com/cockroachdb/errors"

// ArrayQueue is a FIFO queue backed by a circular buffer. Unlike the List
// types it has no positional access: Add appends at the tail and Remove takes
// from the head.
//
// The buffer doubles before an Add would fill it and halves once it is at
// least three times larger than the number of elements.
type ArrayQueue[T any] struct {
	meter
	buf  []T
	j, n int
}

// MakeArrayQueue allocates a default sized buffer for an ArrayQueue.
func MakeArrayQueue[T any](opts ...Option) *ArrayQueue[T] {
	const defaultCapacity = 16
	q, _ := MakeArrayQueueWithCapacity[T](defaultCapacity, opts...)
	return q
}

// MakeArrayQueueWithCapacity takes in the desired capacity. Returns an error
// if passed a negative value.
func MakeArrayQueueWithCapacity[T any](capacity int, opts ...Option) (*ArrayQueue[T], error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	return &ArrayQueue[T]{
		meter: meter{config: newConfig("ArrayQueue", opts)},
		buf:   make([]T, capacity),
	}, nil
}

// Size returns the number of queued elements.
func (q *ArrayQueue[T]) Size() int { return q.n }

// Cap returns the current buffer capacity.
func (q *ArrayQueue[T]) Cap() int { return len(q.buf) }

// Stats returns the work counters of the ArrayQueue.
func (q *ArrayQueue[T]) Stats() Stats { return q.stats }

// Add puts x at the tail of the queue.
func (q *ArrayQueue[T]) Add(x T) {
	if q.n+1 >= len(q.buf) {
		q.resize(grownCap(q.n))
	}
	q.buf[(q.j+q.n)%len(q.buf)] = x
	q.n++
}

// Remove takes the element at the head of the queue. It returns an error
// wrapping ErrEmpty if there is none.
func (q *ArrayQueue[T]) Remove() (T, error) {
	if q.n == 0 {
		var zero T
		return zero, errors.Wrapf(ErrEmpty, "%s: remove", q.name)
	}
	x := q.buf[q.j]
	var zero T
	q.buf[q.j] = zero
	q.j = (q.j + 1) % len(q.buf)
	q.n--
	if len(q.buf) >= 3*q.n {
		q.resize(shrunkCap(q.n))
	}
	return x, nil
}

// Peek returns the element at the head of the queue without removing it. It
// returns an error wrapping ErrEmpty if there is none.
func (q *ArrayQueue[T]) Peek() (T, error) {
	if q.n == 0 {
		var zero T
		return zero, errors.Wrapf(ErrEmpty, "%s: peek", q.name)
	}
	return q.buf[q.j], nil
}

// Clear empties the queue, zeroing existing elements and keeping the capacity.
func (q *ArrayQueue[T]) Clear() {
	for k := range q.n {
		var zero T
		q.buf[(q.j+k)%len(q.buf)] = zero
	}
	q.j, q.n = 0, 0
}

func (q *ArrayQueue[T]) resize(newCap int) {
	if newCap == len(q.buf) {
		return
	}
	b := make([]T, newCap)
	for k := range q.n {
		b[k] = q.buf[(q.j+k)%len(q.buf)]
	}
	q.logResize("queue resize", q.n, len(q.buf), newCap)
	q.stats.Moves += q.n
	q.stats.Resizes++
	q.buf = b
	q.j = 0
}
