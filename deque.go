package poslist

import "github.com/cockroachdb/errors"

// ArrayDeque is a List backed by a circular buffer. Logical element i lives at
// physical slot (j+i) mod Cap(), where j is the head offset.
//
// Add and Remove shift whichever side of i holds fewer elements, so both ends
// of the ArrayDeque take O(1) amortized while the middle takes O(Size()).
// The buffer doubles before an Add would fill it and halves once it is at
// least three times larger than the number of elements. Every reallocation
// linearizes the elements starting at slot 0.
//
// To create an ArrayDeque instance, you must use one of the available
// constructors, MakeArrayDeque, MakeArrayDequeWithCapacity or
// CopySliceToArrayDeque.
type ArrayDeque[T any] struct {
	meter
	buf  []T
	j, n int
}

/*****************************************************************************
 * CONSTRUCTORS
 *****************************************************************************/

// MakeArrayDeque allocates a default sized buffer for an ArrayDeque.
func MakeArrayDeque[T any](opts ...Option) *ArrayDeque[T] {
	const defaultCapacity = 16
	d, _ := MakeArrayDequeWithCapacity[T](defaultCapacity, opts...)
	return d
}

// MakeArrayDequeWithCapacity takes in the desired capacity. Returns an error
// if passed a negative value.
func MakeArrayDequeWithCapacity[T any](capacity int, opts ...Option) (*ArrayDeque[T], error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	return &ArrayDeque[T]{
		meter: meter{config: newConfig("ArrayDeque", opts)},
		buf:   make([]T, capacity),
	}, nil
}

// CopySliceToArrayDeque allocates a buffer twice the length of s and copies
// every element of s to the ArrayDeque. Memory is not shared.
func CopySliceToArrayDeque[T any](s []T, opts ...Option) *ArrayDeque[T] {
	d, _ := MakeArrayDequeWithCapacity[T](shrunkCap(len(s)), opts...)
	d.n = copy(d.buf, s)
	return d
}

/*****************************************************************************
 * LIST API
 *****************************************************************************/

// Size returns the number of elements in the ArrayDeque.
func (d *ArrayDeque[T]) Size() int { return d.n }

// Get indexes into the i-th position in the ArrayDeque. Panics if out of
// bounds.
func (d *ArrayDeque[T]) Get(i int) T {
	checkIndex(d.name, i, d.n)
	return d.buf[d.slot(i)]
}

// Set writes x to the i-th position and returns the element it replaced.
// Panics if out of bounds.
func (d *ArrayDeque[T]) Set(i int, x T) T {
	checkIndex(d.name, i, d.n)
	k := d.slot(i)
	y := d.buf[k]
	d.buf[k] = x
	return y
}

// Add inserts x at position i. If i is in the front half, the elements before
// it move one slot towards the head, otherwise the elements from i on move one
// slot towards the tail. Panics unless 0 <= i <= Size().
func (d *ArrayDeque[T]) Add(i int, x T) {
	checkInsert(d.name, i, d.n)
	if d.n+1 >= len(d.buf) {
		_ = d.resize(grownCap(d.n))
	}
	c := len(d.buf)
	if i < d.n/2 {
		d.j = (d.j - 1 + c) % c
		for k := 0; k < i; k++ {
			d.buf[(d.j+k)%c] = d.buf[(d.j+k+1)%c]
		}
		d.stats.Moves += i
	} else {
		for k := d.n; k > i; k-- {
			d.buf[(d.j+k)%c] = d.buf[(d.j+k-1)%c]
		}
		d.stats.Moves += d.n - i
	}
	d.buf[d.slot(i)] = x
	d.n++
}

// Remove deletes the i-th element and returns it, closing the gap from
// whichever side is shorter. Panics if out of bounds.
func (d *ArrayDeque[T]) Remove(i int) T {
	checkIndex(d.name, i, d.n)
	c := len(d.buf)
	x := d.buf[d.slot(i)]
	var zero T
	if i < d.n/2 {
		for k := i; k > 0; k-- {
			d.buf[(d.j+k)%c] = d.buf[(d.j+k-1)%c]
		}
		d.stats.Moves += i
		d.buf[d.j] = zero
		d.j = (d.j + 1) % c
	} else {
		for k := i; k < d.n-1; k++ {
			d.buf[(d.j+k)%c] = d.buf[(d.j+k+1)%c]
		}
		d.stats.Moves += d.n - i - 1
		d.buf[d.slot(d.n-1)] = zero
	}
	d.n--
	if c >= 3*d.n {
		_ = d.resize(shrunkCap(d.n))
	}
	return x
}

/*****************************************************************************
 * SLICE API
 *****************************************************************************/

// Cap returns the current buffer capacity.
func (d *ArrayDeque[T]) Cap() int { return len(d.buf) }

// Stats returns the work counters of the ArrayDeque.
func (d *ArrayDeque[T]) Stats() Stats { return d.stats }

// Clear empties the ArrayDeque in O(Size()), zeroing existing elements and
// keeping the capacity.
func (d *ArrayDeque[T]) Clear() {
	a, b := d.slices()
	clear(a)
	clear(b)
	d.j, d.n = 0, 0
}

// CopySlice has the same semantics as the copy() built-in function. It copies
// elements in the ArrayDeque starting at the start index up until buf is full
// or the ArrayDeque is over, whichever happens first, and returns the number
// of elements copied. Panics if start is outside [0, Size()].
func (d *ArrayDeque[T]) CopySlice(start int, buf []T) int {
	checkInsert(d.name, start, d.n)
	s1, s2 := d.slices()
	if start < len(s1) {
		result := copy(buf, s1[start:])
		if result < len(buf) {
			result += copy(buf[result:], s2)
		}
		return result
	}
	return copy(buf, s2[start-len(s1):])
}

// Swap swaps the elements in the i-th and k-th positions. Panics if out of
// bounds.
func (d *ArrayDeque[T]) Swap(i, k int) {
	checkIndex(d.name, i, d.n)
	checkIndex(d.name, k, d.n)
	a, b := d.slot(i), d.slot(k)
	d.buf[a], d.buf[b] = d.buf[b], d.buf[a]
}

/*****************************************************************************
 * HELPERS
 *****************************************************************************/

func (d *ArrayDeque[T]) slot(i int) int { return (d.j + i) % len(d.buf) }

// slices returns the live elements as at most two runs of the buffer.
func (d *ArrayDeque[T]) slices() (a, b []T) {
	if d.n == 0 {
		return nil, nil
	}
	if end := d.j + d.n; end <= len(d.buf) {
		return d.buf[d.j:end], nil
	}
	return d.buf[d.j:], d.buf[:d.j+d.n-len(d.buf)]
}

// resize moves the elements into a new buffer of newCap slots, starting at
// slot 0.
func (d *ArrayDeque[T]) resize(newCap int) error {
	if newCap == len(d.buf) {
		return ErrSameCapacity
	}
	if d.n > newCap {
		return errors.Wrapf(ErrNotEnoughCapacity, "%d elements into %d slots", d.n, newCap)
	}
	newBuf := make([]T, newCap)
	s1, s2 := d.slices()
	copy(newBuf[copy(newBuf, s1):], s2)
	d.logResize("deque resize", d.n, len(d.buf), newCap)
	d.stats.Moves += d.n
	d.stats.Resizes++
	d.buf = newBuf
	d.j = 0
	return nil
}
