package poslist

import "github.com/cockroachdb/errors"

// Array is a List backed by a single slice. Elements 0..Size()-1 occupy the
// first Size() slots in order and every slot after them is zeroed.
//
// Get and Set take O(1). Add and Remove shift every element after i, so they
// are O(1) amortized only at the back of the Array. The backing slice doubles
// before an Add would fill it and halves once it is at least three times
// larger than the number of elements, so Size() < Cap() always holds.
//
// To create an Array, use MakeArray, MakeArrayWithCapacity or
// CopySliceToArray. The zero value is not ready to use.
type Array[T any] struct {
	meter
	a []T
	n int
}

/*****************************************************************************
 * CONSTRUCTORS
 *****************************************************************************/

// MakeArray allocates an empty Array with a default sized buffer.
func MakeArray[T any](opts ...Option) *Array[T] {
	const defaultCapacity = 16
	a, _ := MakeArrayWithCapacity[T](defaultCapacity, opts...)
	return a
}

// MakeArrayWithCapacity allocates an empty Array holding capacity slots.
// Returns an error if passed a negative value.
func MakeArrayWithCapacity[T any](capacity int, opts ...Option) (*Array[T], error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	return &Array[T]{
		meter: meter{config: newConfig("Array", opts)},
		a:     make([]T, capacity),
	}, nil
}

// CopySliceToArray allocates an Array with room for twice len(s) elements and
// copies s into it. Memory is not shared with s.
func CopySliceToArray[T any](s []T, opts ...Option) *Array[T] {
	a, _ := MakeArrayWithCapacity[T](shrunkCap(len(s)), opts...)
	a.n = copy(a.a, s)
	return a
}

/*****************************************************************************
 * LIST API
 *****************************************************************************/

// Size returns the number of elements in the Array.
func (a *Array[T]) Size() int { return a.n }

// Get returns the i-th element. Panics if out of bounds.
func (a *Array[T]) Get(i int) T {
	checkIndex(a.name, i, a.n)
	return a.a[i]
}

// Set writes x to the i-th position and returns the element it replaced.
// Panics if out of bounds.
func (a *Array[T]) Set(i int, x T) T {
	checkIndex(a.name, i, a.n)
	y := a.a[i]
	a.a[i] = x
	return y
}

// Add inserts x at position i, moving the elements at i..Size()-1 one slot to
// the right. Panics unless 0 <= i <= Size().
func (a *Array[T]) Add(i int, x T) {
	checkInsert(a.name, i, a.n)
	if a.n+1 >= len(a.a) {
		_ = a.resize(grownCap(a.n))
	}
	copy(a.a[i+1:a.n+1], a.a[i:a.n])
	a.stats.Moves += a.n - i
	a.a[i] = x
	a.n++
}

// Remove deletes the i-th element and returns it, moving the elements after
// it one slot to the left. Panics if out of bounds.
func (a *Array[T]) Remove(i int) T {
	checkIndex(a.name, i, a.n)
	x := a.a[i]
	copy(a.a[i:a.n-1], a.a[i+1:a.n])
	a.stats.Moves += a.n - i - 1
	a.n--
	var zero T
	a.a[a.n] = zero
	if len(a.a) >= 3*a.n {
		_ = a.resize(shrunkCap(a.n))
	}
	return x
}

/*****************************************************************************
 * CAPACITY
 *****************************************************************************/

// Cap returns the number of slots in the backing slice.
func (a *Array[T]) Cap() int { return len(a.a) }

// Clear zeroes every element and empties the Array, keeping its capacity.
func (a *Array[T]) Clear() {
	clear(a.a[:a.n])
	a.n = 0
}

// Stats returns the work counters of the Array.
func (a *Array[T]) Stats() Stats { return a.stats }

// resize moves the elements into a new slice of newCap slots.
func (a *Array[T]) resize(newCap int) error {
	if newCap == len(a.a) {
		return ErrSameCapacity
	}
	if a.n > newCap {
		return errors.Wrapf(ErrNotEnoughCapacity, "%d elements into %d slots", a.n, newCap)
	}
	b := make([]T, newCap)
	copy(b, a.a[:a.n])
	a.logResize("array resize", a.n, len(a.a), newCap)
	a.stats.Moves += a.n
	a.stats.Resizes++
	a.a = b
	return nil
}

// fill replaces the contents with s, allocating exactly capacity slots.
func (a *Array[T]) fill(s []T, capacity int) {
	a.a = make([]T, capacity)
	a.n = copy(a.a, s)
}
