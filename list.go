// Package poslist implements array-backed positional lists. Each list keeps
// its elements in one or more slices that are reallocated as the list grows
// and shrinks, so that every mutation costs O(1) amortized element copies
// (for insertions and removals near the cheap end of each structure) and the
// allocated memory stays within a constant factor of the number of elements.
//
// None of the types are safe for concurrent use. Callers that share a list
// across goroutines must serialize access themselves.
package poslist

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// List is an ordered sequence addressed by position. Indices run from 0 to
// Size()-1. Get, Set and Remove panic if i is outside [0, Size()), and Add
// panics if i is outside [0, Size()]. The panic value is an error for which
// errors.Is(v, ErrOutOfBounds) holds.
type List[T any] interface {
	// Size returns the number of elements.
	Size() int
	// Get returns the element at position i.
	Get(i int) T
	// Set replaces the element at position i and returns the previous one.
	Set(i int, x T) T
	// Add inserts x at position i, shifting elements at i and after by one.
	Add(i int, x T)
	// Remove deletes the element at position i and returns it.
	Remove(i int) T
}

var (
	_ List[int] = (*Array[int])(nil)
	_ List[int] = (*ArrayDeque[int])(nil)
	_ List[int] = (*DualArrayDeque[int])(nil)
	_ List[int] = (*RootishArrayStack[int])(nil)
)

/*****************************************************************************
 * SENTINEL ERRORS
 *****************************************************************************/

// ErrOutOfBounds is the cause of every index panic.
var ErrOutOfBounds = errors.New("index out of bounds")

// ErrEmpty is returned when removing from or peeking into an empty queue.
var ErrEmpty = errors.New("empty queue")

// ErrNegativeCapacity is returned when asking for a negative capacity.
var ErrNegativeCapacity = errors.New("capacity cannot be negative")

// ErrSameCapacity is returned when trying to resize a buffer to its current
// capacity.
var ErrSameCapacity = errors.New("already at asked capacity")

// ErrNotEnoughCapacity is returned when trying to resize a buffer to a
// capacity that cannot hold its existing elements.
var ErrNotEnoughCapacity = errors.New("cannot hold existing elements in asked capacity")

/*****************************************************************************
 * OPTIONS
 *****************************************************************************/

type config struct {
	logger *zap.Logger
	name   string
}

// Option configures a list at construction time.
type Option func(*config)

// WithLogger makes the list report reallocations to l at debug level.
func WithLogger(l *zap.Logger) Option {
	return Option(func(c *config) {
		if l != nil {
			c.logger = l
		}
	})
}

// WithName sets the name reported in the list's log entries.
func WithName(name string) Option {
	return Option(func(c *config) {
		c.name = name
	})
}

func newConfig(name string, opts []Option) config {
	c := config{logger: zap.NewNop(), name: name}
	for _, o := range opts {
		o(&c)
	}
	return c
}

/*****************************************************************************
 * STATS
 *****************************************************************************/

// Stats counts the work a list has done since it was created.
type Stats struct {
	// Moves is the number of element copies made while shifting, resizing
	// or rebalancing.
	Moves int
	// Resizes is the number of backing slice reallocations.
	Resizes int
	// Rebalances is the number of DualArrayDeque redistributions.
	Rebalances int
}

func (s Stats) add(o Stats) Stats {
	return Stats{
		Moves:      s.Moves + o.Moves,
		Resizes:    s.Resizes + o.Resizes,
		Rebalances: s.Rebalances + o.Rebalances,
	}
}

// meter is embedded by every list to hold its logger and counters.
type meter struct {
	config
	stats Stats
}

func (m *meter) logResize(event string, size, from, to int) {
	if ce := m.logger.Check(zap.DebugLevel, event); ce != nil {
		ce.Write(
			zap.String("list", m.name),
			zap.Int("size", size),
			zap.Int("from", from),
			zap.Int("to", to),
		)
	}
}

/*****************************************************************************
 * HELPERS
 *****************************************************************************/

// grownCap is the capacity reallocated to before an insertion into a buffer
// holding n elements, keeping n+1 below capacity afterwards.
func grownCap(n int) int { return 2 * (n + 1) }

// shrunkCap is the capacity reallocated to after a removal leaves n elements.
func shrunkCap(n int) int { return max(2*n, 1) }

func checkIndex(name string, i, n int) {
	if i < 0 || i >= n {
		panic(errors.Wrapf(ErrOutOfBounds, "%s: index %d with length %d", name, i, n))
	}
}

func checkInsert(name string, i, n int) {
	if i < 0 || i > n {
		panic(errors.Wrapf(ErrOutOfBounds, "%s: insertion index %d with length %d", name, i, n))
	}
}

func checkCapacity(capacity int) error {
	if capacity < 0 {
		return errors.Wrapf(ErrNegativeCapacity, "asked for %d", capacity)
	}
	return nil
}

// Slice copies the elements of l into a new slice, in order.
func Slice[T any](l List[T]) []T {
	s := make([]T, l.Size())
	for i := range s {
		s[i] = l.Get(i)
	}
	return s
}

// Equal returns whether both lists have the same length and the same elements
// in the same order. This must not be a method, otherwise lists would be
// constrained to comparable elements.
func Equal[T comparable](a, b List[T]) bool {
	if a.Size() != b.Size() {
		return false
	}
	for i := range a.Size() {
		if a.Get(i) != b.Get(i) {
			return false
		}
	}
	return true
}

// Index returns the position of the first occurrence of x in l, or -1 if
// absent.
func Index[T comparable](l List[T], x T) int {
	for i := range l.Size() {
		if l.Get(i) == x {
			return i
		}
	}
	return -1
}
