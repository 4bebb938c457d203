package poslist

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testList interface {
	List[int]
	Cap() int
	Stats() Stats
	Clear()
}

type listFactory struct {
	name string
	make func() testList
	// strict is set for lists that keep Size() < Cap().
	strict bool
}

var listFactories = []listFactory{
	{"Array", func() testList { return MakeArray[int]() }, true},
	{"ArrayDeque", func() testList { return MakeArrayDeque[int]() }, true},
	{"DualArrayDeque", func() testList { return MakeDualArrayDeque[int]() }, true},
	{"RootishArrayStack", func() testList { return MakeRootishArrayStack[int]() }, false},
}

func requireOutOfBounds(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected an index panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, ErrOutOfBounds)
	}()
	f()
}

func requireCapacity(t *testing.T, f listFactory, l testList) {
	t.Helper()
	if f.strict {
		require.Greater(t, l.Cap(), l.Size())
	} else {
		require.GreaterOrEqual(t, l.Cap(), l.Size())
	}
}

func TestListContract(t *testing.T) {
	for _, f := range listFactories {
		t.Run(f.name, func(t *testing.T) {
			l := f.make()
			require.Equal(t, 0, l.Size())

			for i := range 10 {
				l.Add(i, i)
				requireCapacity(t, f, l)
			}
			assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, Slice[int](l))

			l.Add(0, -1)
			assert.Equal(t, -1, l.Get(0))
			assert.Equal(t, 0, l.Get(1))
			assert.Equal(t, 11, l.Size())

			l.Add(5, 42)
			assert.Equal(t, 42, l.Get(5))
			assert.Equal(t, 3, l.Get(4))
			assert.Equal(t, 4, l.Get(6))

			assert.Equal(t, 42, l.Set(5, 43))
			assert.Equal(t, 43, l.Get(5))

			assert.Equal(t, 43, l.Remove(5))
			assert.Equal(t, -1, l.Remove(0))
			assert.Equal(t, 9, l.Remove(l.Size()-1))
			assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, Slice[int](l))
			assert.Equal(t, 4, Index[int](l, 4))
			assert.Equal(t, -1, Index[int](l, 99))

			l.Clear()
			assert.Equal(t, 0, l.Size())
			l.Add(0, 7)
			assert.Equal(t, []int{7}, Slice[int](l))
		})
	}
}

func TestListOutOfBounds(t *testing.T) {
	for _, f := range listFactories {
		t.Run(f.name, func(t *testing.T) {
			l := f.make()
			requireOutOfBounds(t, func() { l.Get(0) })
			requireOutOfBounds(t, func() { l.Set(0, 1) })
			requireOutOfBounds(t, func() { l.Remove(0) })
			requireOutOfBounds(t, func() { l.Add(1, 1) })
			requireOutOfBounds(t, func() { l.Add(-1, 1) })

			l.Add(0, 1)
			l.Add(1, 2)
			requireOutOfBounds(t, func() { l.Get(2) })
			requireOutOfBounds(t, func() { l.Get(-1) })
			requireOutOfBounds(t, func() { l.Set(2, 3) })
			requireOutOfBounds(t, func() { l.Remove(2) })
			requireOutOfBounds(t, func() { l.Add(3, 3) })

			// A failed call leaves the list untouched.
			assert.Equal(t, []int{1, 2}, Slice[int](l))
		})
	}
}

// TestListMatchesSlice drives every list with random operations and compares
// it against a plain slice after each one.
func TestListMatchesSlice(t *testing.T) {
	for _, f := range listFactories {
		t.Run(f.name, func(t *testing.T) {
			rng := rand.New(rand.NewPCG(1, 2))
			l := f.make()
			var model []int
			for op := range 5000 {
				n := len(model)
				switch p := rng.IntN(100); {
				case p < 50 || n == 0:
					i := rng.IntN(n + 1)
					l.Add(i, op)
					model = append(model[:i], append([]int{op}, model[i:]...)...)
				case p < 85:
					i := rng.IntN(n)
					require.Equal(t, model[i], l.Remove(i))
					model = append(model[:i], model[i+1:]...)
				default:
					i := rng.IntN(n)
					require.Equal(t, model[i], l.Set(i, -op))
					model[i] = -op
				}
				require.Equal(t, len(model), l.Size())
				requireCapacity(t, f, l)
				if op%250 == 0 {
					if diff := cmp.Diff(model, Slice[int](l)); diff != "" {
						t.Fatalf("after op %d (-want +got):\n%s", op, diff)
					}
				}
			}
			if diff := cmp.Diff(model, Slice[int](l)); diff != "" {
				t.Fatalf("final contents (-want +got):\n%s", diff)
			}
		})
	}
}

// TestListDrainShrinks checks that removing everything releases capacity.
func TestListDrainShrinks(t *testing.T) {
	for _, f := range listFactories {
		t.Run(f.name, func(t *testing.T) {
			l := f.make()
			for i := range 1000 {
				l.Add(l.Size(), i)
			}
			grown := l.Cap()
			for l.Size() > 0 {
				l.Remove(l.Size() - 1)
				requireCapacity(t, f, l)
			}
			assert.Less(t, l.Cap(), grown)
			assert.LessOrEqual(t, l.Cap(), 2)
		})
	}
}

// TestListAmortizedMoves counts element copies over long runs of operations
// at the back, which must stay linear in the number of operations.
func TestListAmortizedMoves(t *testing.T) {
	const m = 20000
	for _, f := range listFactories {
		t.Run(f.name, func(t *testing.T) {
			l := f.make()
			for i := range m {
				l.Add(l.Size(), i)
			}
			for l.Size() > 0 {
				l.Remove(l.Size() - 1)
			}
			moves := l.Stats().Moves
			assert.LessOrEqual(t, moves, 16*2*m, "moves=%d", moves)
		})
	}
}

func TestEqual(t *testing.T) {
	a := CopySliceToArray([]int{1, 2, 3})
	d := CopySliceToArrayDeque([]int{1, 2, 3})
	r := MakeRootishArrayStack[int]()
	assert.False(t, Equal[int](a, r))
	for i := range 3 {
		r.Add(i, i+1)
	}
	assert.True(t, Equal[int](a, d))
	assert.True(t, Equal[int](d, r))
	r.Set(1, 5)
	assert.False(t, Equal[int](a, r))
}

func TestI2B(t *testing.T) {
	i := 0
	for b := range 2000 {
		for range b + 1 {
			require.Equal(t, b, i2b(i), "i=%d", i)
			i++
		}
	}
	// Triangular numbers near the limit of float64 precision.
	for _, b := range []int{1 << 26, 1<<30 + 7, 3000000000} {
		first := b * (b + 1) / 2
		assert.Equal(t, b, i2b(first))
		assert.Equal(t, b-1, i2b(first-1))
		assert.Equal(t, b, i2b(first+b))
		assert.Equal(t, b+1, i2b(first+b+1))
	}
}

func TestRootishWastedSpace(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	s := MakeRootishArrayStack[int]()
	for op := range 20000 {
		if n := s.Size(); n == 0 || rng.IntN(100) < 55 {
			s.Add(rng.IntN(n+1), op)
		} else {
			s.Remove(rng.IntN(n))
		}
		n := s.Size()
		wasted := s.Cap() - n
		require.GreaterOrEqual(t, wasted, 0)
		require.LessOrEqual(t, float64(wasted), 2*math.Sqrt(2*float64(n))+3,
			"n=%d blocks=%d", n, s.Blocks())
	}
}
