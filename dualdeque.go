package poslist

// DualArrayDeque is a List made of two Arrays placed back to back. The front
// Array holds the first elements in reverse order, so both ends of the
// DualArrayDeque are the cheap back ends of an Array.
//
// After every Add and Remove, if one side holds more than three times as many
// elements as the other, all elements are redistributed evenly into freshly
// allocated buffers.
type DualArrayDeque[T any] struct {
	meter
	front, back *Array[T]
}

// MakeDualArrayDeque creates an empty DualArrayDeque. The options also apply
// to both inner Arrays.
func MakeDualArrayDeque[T any](opts ...Option) *DualArrayDeque[T] {
	d := &DualArrayDeque[T]{meter: meter{config: newConfig("DualArrayDeque", opts)}}
	opts = opts[:len(opts):len(opts)]
	d.front, _ = MakeArrayWithCapacity[T](0, append(opts, WithName(d.name+".front"))...)
	d.back, _ = MakeArrayWithCapacity[T](0, append(opts, WithName(d.name+".back"))...)
	return d
}

// Size returns the number of elements in the DualArrayDeque.
func (d *DualArrayDeque[T]) Size() int { return d.front.Size() + d.back.Size() }

// FrontSize returns the number of elements held by the front Array.
func (d *DualArrayDeque[T]) FrontSize() int { return d.front.Size() }

// BackSize returns the number of elements held by the back Array.
func (d *DualArrayDeque[T]) BackSize() int { return d.back.Size() }

// Get returns the i-th element. Panics if out of bounds.
func (d *DualArrayDeque[T]) Get(i int) T {
	checkIndex(d.name, i, d.Size())
	if fs := d.front.Size(); i < fs {
		return d.front.Get(fs - i - 1)
	}
	return d.back.Get(i - d.front.Size())
}

// Set writes x to the i-th position and returns the element it replaced.
// Panics if out of bounds.
func (d *DualArrayDeque[T]) Set(i int, x T) T {
	checkIndex(d.name, i, d.Size())
	if fs := d.front.Size(); i < fs {
		return d.front.Set(fs-i-1, x)
	}
	return d.back.Set(i-d.front.Size(), x)
}

// Add inserts x at position i. Panics unless 0 <= i <= Size().
func (d *DualArrayDeque[T]) Add(i int, x T) {
	checkInsert(d.name, i, d.Size())
	if fs := d.front.Size(); i < fs {
		d.front.Add(fs-i, x)
	} else {
		d.back.Add(i-fs, x)
	}
	d.balance()
}

// Remove deletes the i-th element and returns it. Panics if out of bounds.
func (d *DualArrayDeque[T]) Remove(i int) T {
	checkIndex(d.name, i, d.Size())
	var x T
	if fs := d.front.Size(); i < fs {
		x = d.front.Remove(fs - i - 1)
	} else {
		x = d.back.Remove(i - fs)
	}
	d.balance()
	return x
}

// Cap returns the combined capacity of both Arrays.
func (d *DualArrayDeque[T]) Cap() int { return d.front.Cap() + d.back.Cap() }

// Stats returns the work counters of the DualArrayDeque, including those of
// its inner Arrays.
func (d *DualArrayDeque[T]) Stats() Stats {
	return d.stats.add(d.front.Stats()).add(d.back.Stats())
}

// Clear empties the DualArrayDeque, zeroing existing elements.
func (d *DualArrayDeque[T]) Clear() {
	d.front.Clear()
	d.back.Clear()
}

func (d *DualArrayDeque[T]) balance() {
	fs, bs := d.front.Size(), d.back.Size()
	if 3*fs >= bs && 3*bs >= fs {
		return
	}
	n := fs + bs
	nf := n / 2
	nb := n - nf
	af := make([]T, nf)
	for i := range nf {
		af[nf-i-1] = d.Get(i)
	}
	ab := make([]T, nb)
	for i := range nb {
		ab[i] = d.Get(nf + i)
	}
	d.front.fill(af, max(2*nf, 1))
	d.back.fill(ab, max(2*nb, 1))
	d.logResize("deque rebalance", n, fs, nf)
	d.stats.Moves += n
	d.stats.Rebalances++
}
