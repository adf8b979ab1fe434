package lazystreams

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Number constrains the element types accepted by Range.
type Number interface {
	constraints.Signed | constraints.Float
}

// Empty returns a stream that produces no elements.
func Empty[T any]() *Stream[T] {
	return &Stream[T]{}
}

// Of returns a stream that produces the given elements, in order.
func Of[T any](items ...T) *Stream[T] {
	return FromSlice(items)
}

// FromSlice returns a stream that produces the elements of items, in order.
// The slice header is captured as-is; use CollectStream for a snapshot that is
// decoupled from later mutation of the backing array.
func FromSlice[T any](items []T) *Stream[T] {
	index := 0

	return newStream(func() (T, bool) {
		if index >= len(items) {
			var zero T
			return zero, false
		}

		elem := items[index]
		index++

		return elem, true
	})
}

// FromChannel returns a stream that produces the elements received through ch,
// until ch is closed.
func FromChannel[T any](ch <-chan T) *Stream[T] {
	return newStream(func() (T, bool) {
		elem, ok := <-ch
		return elem, ok
	})
}

// FromFunc returns a stream over a raw iteration handle: next must return the
// next element, or false once exhausted. After next returns false once, it is
// not called again.
func FromFunc[T any](next func() (T, bool)) *Stream[T] {
	done := false

	return newStream(func() (T, bool) {
		if done {
			var zero T
			return zero, false
		}

		elem, ok := next()
		if !ok {
			done = true
		}

		return elem, ok
	})
}

// Range returns a stream of numbers. With one bound n, it runs from 0 to n
// exclusive. With two bounds a and b, it runs from a to b exclusive, reversing
// direction automatically (default step -1) when b < a. A third bound gives an
// explicit step, which may be fractional and must be nonzero.
//
// A positive step walks from the smaller bound upward, excluding the larger;
// a negative step walks from the larger bound downward, excluding the smaller.
// Values accumulate by repeated addition, so fractional steps are preserved
// exactly as floating-point addition produces them.
func Range[T Number](bounds ...T) *Stream[T] {
	var a, b, step T

	switch len(bounds) {
	case 1:
		b = bounds[0]

	case 2:
		a, b = bounds[0], bounds[1]

	case 3:
		a, b, step = bounds[0], bounds[1], bounds[2]

		if step == 0 {
			return failed[T]("range step must be nonzero")
		}

	default:
		return failed[T]("range takes 1 to 3 bounds, got %d", len(bounds))
	}

	if step == 0 {
		if b < a {
			step = -1
		} else {
			step = 1
		}
	}

	low, high := a, b
	if high < low {
		low, high = high, low
	}

	cur := low
	if step < 0 {
		cur = high
	}

	return newStream(func() (T, bool) {
		var zero T

		if step > 0 && cur >= high {
			return zero, false
		}

		if step < 0 && cur <= low {
			return zero, false
		}

		elem := cur
		cur += step

		return elem, true
	})
}

// strideIndexes walks the indexes 0..n exactly as Range's step rule does:
// a positive stride starts at 0 and walks upward, a negative stride starts at
// the last index and walks downward.
func strideIndexes(n int, step []int) *Stream[int] {
	stride := 1

	switch {
	case len(step) > 1:
		return failed[int]("at most one step, got %d", len(step))

	case len(step) == 1:
		stride = step[0]

		if stride == 0 {
			return failed[int]("step must be nonzero")
		}
	}

	index := 0
	if stride < 0 {
		index = n - 1
	}

	return newStream(func() (int, bool) {
		if index < 0 || index >= n {
			return 0, false
		}

		elem := index
		index += stride

		return elem, true
	})
}

// Values returns a stream of the elements of items, selected and ordered by
// the optional step: a step of 2 produces every second element, a negative
// step walks from the end.
func Values[T any](items []T, step ...int) *Stream[T] {
	indexes := strideIndexes(len(items), step)

	return derive(indexes, func() (T, bool) {
		index, ok := indexes.Next()
		if !ok {
			var zero T
			return zero, false
		}

		return items[index], true
	})
}

// Keys returns a stream of the indexes of items, selected and ordered by the
// optional step as in Values.
func Keys[T any](items []T, step ...int) *Stream[int] {
	return strideIndexes(len(items), step)
}

// Entries returns a stream of (index, element) pairs of items, selected and
// ordered by the optional step as in Values.
func Entries[T any](items []T, step ...int) *Stream[Pair[int, T]] {
	indexes := strideIndexes(len(items), step)

	return derive(indexes, func() (Pair[int, T], bool) {
		index, ok := indexes.Next()
		if !ok {
			return Pair[int, T]{}, false
		}

		return PairOf(index, items[index]), true
	})
}

func sortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := maps.Keys(m)
	slices.Sort(keys)

	return keys
}

// ValuesOf returns a stream of m's values, in ascending key order.
func ValuesOf[K constraints.Ordered, V any](m map[K]V) *Stream[V] {
	keys := FromSlice(sortedKeys(m))

	return derive(keys, func() (V, bool) {
		key, ok := keys.Next()
		if !ok {
			var zero V
			return zero, false
		}

		return m[key], true
	})
}

// KeysOf returns a stream of m's keys, in ascending order.
func KeysOf[K constraints.Ordered, V any](m map[K]V) *Stream[K] {
	return FromSlice(sortedKeys(m))
}

// EntriesOf returns a stream of m's (key, value) pairs, in ascending key order.
func EntriesOf[K constraints.Ordered, V any](m map[K]V) *Stream[Pair[K, V]] {
	keys := FromSlice(sortedKeys(m))

	return derive(keys, func() (Pair[K, V], bool) {
		key, ok := keys.Next()
		if !ok {
			return Pair[K, V]{}, false
		}

		return PairOf(key, m[key]), true
	})
}

// Zip returns a stream of (a, b) pairs, stopping at the shorter input.
// Once a is exhausted, b is not pulled at all.
func Zip[A any, B any](a *Stream[A], b *Stream[B]) *Stream[Pair[A, B]] {
	out := derive(a, func() (Pair[A, B], bool) {
		elemA, ok := a.Next()
		if !ok {
			return Pair[A, B]{}, false
		}

		elemB, ok := b.Next()
		if !ok {
			return Pair[A, B]{}, false
		}

		return PairOf(elemA, elemB), true
	})

	if out.err == nil {
		out.err = b.err
	}

	return out
}
