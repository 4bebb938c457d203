package poslist

import "math"

// RootishArrayStack is a List stored in r blocks of sizes 1, 2, ..., r. Block b
// holds the elements b(b+1)/2 through (b+1)(b+2)/2-1, so the capacity is
// r(r+1)/2 and at most O(sqrt(Size())) slots are ever unused.
//
// Blocks are added one at a time as the list grows and never copied. Add and
// Remove shift every element after i, so they are O(1) amortized only at the
// back.
type RootishArrayStack[T any] struct {
	meter
	blocks *Array[[]T]
	n      int
}

// MakeRootishArrayStack creates an empty RootishArrayStack with no blocks.
func MakeRootishArrayStack[T any](opts ...Option) *RootishArrayStack[T] {
	s := &RootishArrayStack[T]{meter: meter{config: newConfig("RootishArrayStack", opts)}}
	opts = opts[:len(opts):len(opts)]
	s.blocks, _ = MakeArrayWithCapacity[[]T](1, append(opts, WithName(s.name+".blocks"))...)
	return s
}

// Size returns the number of elements in the RootishArrayStack.
func (s *RootishArrayStack[T]) Size() int { return s.n }

// Get returns the i-th element. Panics if out of bounds.
func (s *RootishArrayStack[T]) Get(i int) T {
	checkIndex(s.name, i, s.n)
	return s.get(i)
}

// Set writes x to the i-th position and returns the element it replaced.
// Panics if out of bounds.
func (s *RootishArrayStack[T]) Set(i int, x T) T {
	checkIndex(s.name, i, s.n)
	return s.set(i, x)
}

// Add inserts x at position i, moving the elements at i..Size()-1 one position
// up across block boundaries. Panics unless 0 <= i <= Size().
func (s *RootishArrayStack[T]) Add(i int, x T) {
	checkInsert(s.name, i, s.n)
	if r := s.blocks.Size(); r*(r+1)/2 < s.n+1 {
		s.grow()
	}
	s.n++
	for k := s.n - 1; k > i; k-- {
		s.set(k, s.get(k-1))
	}
	s.stats.Moves += s.n - 1 - i
	s.set(i, x)
}

// Remove deletes the i-th element and returns it. Panics if out of bounds.
func (s *RootishArrayStack[T]) Remove(i int) T {
	checkIndex(s.name, i, s.n)
	x := s.get(i)
	for k := i; k < s.n-1; k++ {
		s.set(k, s.get(k+1))
	}
	s.stats.Moves += s.n - 1 - i
	var zero T
	s.set(s.n-1, zero)
	s.n--
	s.shrink()
	return x
}

// Cap returns the total number of slots in all blocks.
func (s *RootishArrayStack[T]) Cap() int {
	r := s.blocks.Size()
	return r * (r + 1) / 2
}

// Blocks returns the number of allocated blocks.
func (s *RootishArrayStack[T]) Blocks() int { return s.blocks.Size() }

// Stats returns the work counters of the RootishArrayStack.
func (s *RootishArrayStack[T]) Stats() Stats { return s.stats }

// Clear drops every element and every block.
func (s *RootishArrayStack[T]) Clear() {
	s.blocks.Clear()
	s.n = 0
}

// i2b returns the block holding position i: the smallest b with
// (b+1)(b+2)/2 > i. The floating point estimate can be off by one for large
// i, so it is corrected with integer arithmetic.
func i2b(i int) int {
	b := int(math.Ceil((-3.0 + math.Sqrt(9.0+8.0*float64(i))) / 2.0))
	for b > 0 && b*(b+1)/2 > i {
		b--
	}
	for (b+1)*(b+2)/2 <= i {
		b++
	}
	return b
}

func (s *RootishArrayStack[T]) locate(i int) (block []T, j int) {
	b := i2b(i)
	return s.blocks.Get(b), i - b*(b+1)/2
}

func (s *RootishArrayStack[T]) get(i int) T {
	block, j := s.locate(i)
	return block[j]
}

func (s *RootishArrayStack[T]) set(i int, x T) T {
	block, j := s.locate(i)
	y := block[j]
	block[j] = x
	return y
}

func (s *RootishArrayStack[T]) grow() {
	r := s.blocks.Size()
	s.blocks.Add(r, make([]T, r+1))
	s.logResize("rootish grow", s.n, r, r+1)
	s.stats.Resizes++
}

// shrink drops trailing blocks while the remaining ones still leave room to
// spare for Size() elements.
func (s *RootishArrayStack[T]) shrink() {
	r := s.blocks.Size()
	from := r
	for r > 0 && s.n <= (max(2, r)-2)*(r-1)/2 {
		s.blocks.Remove(r - 1)
		r--
	}
	if r != from {
		s.logResize("rootish shrink", s.n, from, r)
		s.stats.Resizes++
	}
}
