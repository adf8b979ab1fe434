package lazystreams

import (
	"math/rand/v2"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// MapperFunc maps element elem to type U.
type MapperFunc[T any, U any] func(elem T) U

// PredicateFunc returns true if elem matches a predicate.
type PredicateFunc[T any] func(elem T) bool

// LessFunc returns true if element a is "less" than element b.
type LessFunc[T any] func(a T, b T) bool

// Filter returns a stream that calls pred for each element produced by s, and
// only produces elements for which pred returns true.
func Filter[T any](s *Stream[T], pred PredicateFunc[T]) *Stream[T] {
	return derive(s, func() (T, bool) {
		for {
			elem, ok := s.Next()
			if !ok {
				var zero T
				return zero, false
			}

			if pred(elem) {
				return elem, true
			}
		}
	})
}

// Map returns a stream that calls mapp for each element produced by s, mapping
// it to type U.
func Map[T any, U any](s *Stream[T], mapp MapperFunc[T, U]) *Stream[U] {
	return derive(s, func() (U, bool) {
		elem, ok := s.Next()
		if !ok {
			var zero U
			return zero, false
		}

		return mapp(elem), true
	})
}

// FlatMap returns a stream that calls mapp for each element produced by s,
// mapping it to an intermediate stream of type U, and produces all elements of
// the intermediate streams, in order. The outer stream is pulled lazily, with
// at most one intermediate stream live at a time.
func FlatMap[T any, U any](s *Stream[T], mapp MapperFunc[T, *Stream[U]]) *Stream[U] {
	var inner *Stream[U]

	return derive(s, func() (U, bool) {
		for {
			if inner != nil {
				if elem, ok := inner.Next(); ok {
					return elem, true
				}

				inner = nil
			}

			elem, ok := s.Next()
			if !ok {
				var zero U
				return zero, false
			}

			inner = mapp(elem)
		}
	})
}

// FlatMapSlice returns a stream that calls mapp for each element produced by
// s, and produces the members of each resulting slice, in order.
func FlatMapSlice[T any, U any](s *Stream[T], mapp MapperFunc[T, []U]) *Stream[U] {
	return FlatMap(s, func(elem T) *Stream[U] {
		return FromSlice(mapp(elem))
	})
}

// Flatten returns a stream that produces the members of each slice produced by
// s, in order.
func Flatten[T any](s *Stream[[]T]) *Stream[T] {
	return FlatMapSlice(s, func(items []T) []T {
		return items
	})
}

// Take returns a stream that produces the same elements as s, in order, up to
// num elements. A num beyond the stream's length is clamped to it.
// A negative num fails with ErrInvalidArgument, before any element is pulled.
func Take[T any](s *Stream[T], num int) *Stream[T] {
	if num < 0 {
		return failed[T]("take count must not be negative, got %d", num)
	}

	done := 0

	return derive(s, func() (T, bool) {
		var zero T

		if done >= num {
			return zero, false
		}

		elem, ok := s.Next()
		if !ok {
			return zero, false
		}

		done++

		return elem, true
	})
}

// Drop returns a stream that produces the same elements as s, in order,
// skipping the first num elements. A num beyond the stream's length drops
// everything. A negative num fails with ErrInvalidArgument, before any element
// is pulled.
func Drop[T any](s *Stream[T], num int) *Stream[T] {
	if num < 0 {
		return failed[T]("drop count must not be negative, got %d", num)
	}

	dropped := false

	return derive(s, func() (T, bool) {
		if !dropped {
			dropped = true

			for done := 0; done < num; done++ {
				if _, ok := s.Next(); !ok {
					var zero T
					return zero, false
				}
			}
		}

		return s.Next()
	})
}

// TakeWhile returns a stream that produces elements of s while pred returns
// true. The first element for which pred returns false is pulled from s and
// discarded: a consumer sharing s resumes strictly after it.
func TakeWhile[T any](s *Stream[T], pred PredicateFunc[T]) *Stream[T] {
	done := false

	return derive(s, func() (T, bool) {
		var zero T

		if done {
			return zero, false
		}

		elem, ok := s.Next()
		if !ok || !pred(elem) {
			done = true
			return zero, false
		}

		return elem, true
	})
}

// TakeUntil returns a stream that produces elements of s until pred returns
// true, with the same boundary rule as TakeWhile.
func TakeUntil[T any](s *Stream[T], pred PredicateFunc[T]) *Stream[T] {
	return TakeWhile(s, func(elem T) bool {
		return !pred(elem)
	})
}

// DropWhile returns a stream that skips elements of s while pred returns true.
// The first element for which pred returns false ends the skip and is the
// first one produced.
func DropWhile[T any](s *Stream[T], pred PredicateFunc[T]) *Stream[T] {
	dropped := false

	return derive(s, func() (T, bool) {
		if !dropped {
			dropped = true

			for {
				elem, ok := s.Next()
				if !ok {
					var zero T
					return zero, false
				}

				if !pred(elem) {
					return elem, true
				}
			}
		}

		return s.Next()
	})
}

// DropUntil returns a stream that skips elements of s until pred returns true.
// The first element for which pred returns true is the first one produced.
func DropUntil[T any](s *Stream[T], pred PredicateFunc[T]) *Stream[T] {
	return DropWhile(s, func(elem T) bool {
		return !pred(elem)
	})
}

// Step returns a stream that produces every num-th element of s: for a
// positive num, num-1 elements are skipped before each produced element, so a
// step of 2 over 0..4 produces 1 and 3. For a negative num, the remaining
// elements are materialized eagerly on the first pull and walked backward with
// the same rule. A num of zero fails with ErrInvalidArgument.
func Step[T any](s *Stream[T], num int) *Stream[T] {
	if num == 0 {
		return failed[T]("step must be nonzero")
	}

	if num < 0 {
		var backward *Stream[T]

		return derive(s, func() (T, bool) {
			if backward == nil {
				elems := drain(s)
				slices.Reverse(elems)

				backward = Step(FromSlice(elems), -num)
			}

			return backward.Next()
		})
	}

	return derive(s, func() (T, bool) {
		for skip := 0; skip < num-1; skip++ {
			if _, ok := s.Next(); !ok {
				var zero T
				return zero, false
			}
		}

		return s.Next()
	})
}

// Sorted eagerly materializes the remaining elements of s and returns a stream
// producing them in natural ascending order.
func Sorted[T constraints.Ordered](s *Stream[T]) *Stream[T] {
	return SortedFunc(s, func(a T, b T) bool {
		return a < b
	})
}

// SortedFunc eagerly materializes the remaining elements of s and returns a
// stream producing them sorted by less. The sort is stable.
func SortedFunc[T any](s *Stream[T], less LessFunc[T]) *Stream[T] {
	if s.err != nil {
		return &Stream[T]{err: s.err}
	}

	elems := drain(s)

	slices.SortStableFunc(elems, func(a T, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	})

	return FromSlice(elems)
}

// Reverse eagerly materializes the remaining elements of s and returns a
// stream producing them in reverse order.
func Reverse[T any](s *Stream[T]) *Stream[T] {
	if s.err != nil {
		return &Stream[T]{err: s.err}
	}

	elems := drain(s)
	slices.Reverse(elems)

	return FromSlice(elems)
}

// Distinct eagerly materializes the remaining elements of s and returns a
// stream producing only the first occurrence of each element, in original
// order.
func Distinct[T comparable](s *Stream[T]) *Stream[T] {
	seen := map[T]struct{}{}

	return DistinctFunc(s, func(elem T) bool {
		if _, ok := seen[elem]; ok {
			return false
		}

		seen[elem] = struct{}{}

		return true
	})
}

// DistinctFunc eagerly materializes the remaining elements of s and returns a
// stream producing only elements for which first returns true, in original
// order. first is called once per element, in order, and should report
// whether the element is a first occurrence.
func DistinctFunc[T any](s *Stream[T], first PredicateFunc[T]) *Stream[T] {
	if s.err != nil {
		return &Stream[T]{err: s.err}
	}

	var elems []T

	for _, elem := range drain(s) {
		if first(elem) {
			elems = append(elems, elem)
		}
	}

	return FromSlice(elems)
}

// Shuffle eagerly materializes the remaining elements of s and returns a
// stream producing them as a uniformly random permutation.
func Shuffle[T any](s *Stream[T]) *Stream[T] {
	if s.err != nil {
		return &Stream[T]{err: s.err}
	}

	elems := drain(s)

	rand.Shuffle(len(elems), func(i int, j int) {
		elems[i], elems[j] = elems[j], elems[i]
	})

	return FromSlice(elems)
}

// Merge returns a stream that produces the remaining elements of s, followed
// by the elements of each other stream, in argument order.
func Merge[T any](s *Stream[T], others ...*Stream[T]) *Stream[T] {
	streams := append([]*Stream[T]{s}, others...)

	var err error

	for _, st := range streams {
		if st.err != nil {
			err = st.err
			break
		}
	}

	index := 0

	return &Stream[T]{
		err: err,
		next: func() (T, bool) {
			for index < len(streams) {
				if elem, ok := streams[index].Next(); ok {
					return elem, true
				}

				index++
			}

			var zero T
			return zero, false
		},
	}
}

// Add returns a stream that produces the remaining elements of s, followed by
// the given items.
func Add[T any](s *Stream[T], items ...T) *Stream[T] {
	return Merge(s, Of(items...))
}

// Insert returns a stream that produces the given items, followed by the
// remaining elements of s.
func Insert[T any](s *Stream[T], items ...T) *Stream[T] {
	return Merge(Of(items...), s)
}

// InsertAt returns a stream that produces the remaining elements of s with the
// given items spliced in before the element at index. An index beyond the
// stream's length clamps to an append. A negative index fails with
// ErrInvalidArgument.
func InsertAt[T any](s *Stream[T], index int, items ...T) *Stream[T] {
	if index < 0 {
		return failed[T]("insert index must not be negative, got %d", index)
	}

	yielded := 0
	spliced := 0
	splicing := false

	return derive(s, func() (T, bool) {
		if !splicing && yielded < index {
			if elem, ok := s.Next(); ok {
				yielded++
				return elem, true
			}

			splicing = true
		} else {
			splicing = true
		}

		if spliced < len(items) {
			elem := items[spliced]
			spliced++

			return elem, true
		}

		return s.Next()
	})
}

// CollectStream eagerly drains s into an independent snapshot and returns a
// fresh stream over it, decoupled from later mutation of s's backing storage.
func CollectStream[T any](s *Stream[T]) *Stream[T] {
	if s.err != nil {
		return &Stream[T]{err: s.err}
	}

	return FromSlice(drain(s))
}

// Indexed returns a stream of (index, element) pairs, with the index counted
// from 0 in consumption order.
func Indexed[T any](s *Stream[T]) *Stream[Pair[int, T]] {
	index := 0

	return derive(s, func() (Pair[int, T], bool) {
		elem, ok := s.Next()
		if !ok {
			return Pair[int, T]{}, false
		}

		pair := PairOf(index, elem)
		index++

		return pair, true
	})
}
