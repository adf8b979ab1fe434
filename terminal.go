package lazystreams

import "errors"

// ConsumerFunc consumes element elem.
// The index is the 0-based index of elem, in consumption order.
// Returning ErrShortCircuit stops the iteration cleanly; any other error
// propagates to the terminal operation's caller.
type ConsumerFunc[T any] func(elem T, index int) error

// AccumulatorFunc folds element elem into the accumulator acc, returning acc,
// or a new accumulator.
// The index is the 0-based index of elem, in consumption order.
type AccumulatorFunc[T any, A any] func(acc A, elem T, index int) (A, error)

// ErrShortCircuit is a generic error used to short-circuit a stream, stopping
// the terminal operation without reporting an error.
var ErrShortCircuit = errors.New("short circuit")

// Each calls each for each element produced by s.
// If s carries a construction error, it is returned before any element is
// pulled. If each returns an error other than ErrShortCircuit, iteration stops
// and the error is returned.
func Each[T any](s *Stream[T], each ConsumerFunc[T]) error {
	if err := s.Err(); err != nil {
		return err
	}

	index := 0

	for {
		elem, ok := s.Next()
		if !ok {
			return nil
		}

		if err := each(elem, index); err != nil {
			if errors.Is(err, ErrShortCircuit) {
				return nil
			}

			return err
		}

		index++
	}
}

// Reduce calls reduce for each element produced by s, folding it into
// accumulator acc, returning the final accumulator.
// If iteration stops early, it returns the accumulator so far and the error
// that stopped it.
func Reduce[T any, A any](s *Stream[T], acc A, reduce AccumulatorFunc[T, A]) (A, error) {
	err := Each(s, func(elem T, index int) error {
		var err error
		acc, err = reduce(acc, elem, index)

		return err
	})

	return acc, err
}

// ToSlice drains s into a slice of its remaining elements.
func ToSlice[T any](s *Stream[T]) ([]T, error) {
	return Reduce(s, nil, CollectSlice[T]())
}

// AnyMatch returns true as soon as pred returns true for an element produced
// by s, that is, an element matches. It pulls no further elements after a
// match.
func AnyMatch[T any](s *Stream[T], pred PredicateFunc[T]) (bool, error) {
	anyMatch := false

	err := Each(s, func(elem T, _ int) error {
		if !pred(elem) {
			return nil
		}

		anyMatch = true

		return ErrShortCircuit
	})

	return anyMatch, err
}

// AllMatch returns true if pred returns true for all elements produced by s,
// that is, all elements match. It pulls no further elements after a mismatch.
func AllMatch[T any](s *Stream[T], pred PredicateFunc[T]) (bool, error) {
	allMatch := true

	err := Each(s, func(elem T, _ int) error {
		if pred(elem) {
			return nil
		}

		allMatch = false

		return ErrShortCircuit
	})

	return allMatch, err
}

// NoneMatch returns true if pred returns false for all elements produced by s,
// that is, no element matches.
func NoneMatch[T any](s *Stream[T], pred PredicateFunc[T]) (bool, error) {
	anyMatch, err := AnyMatch(s, pred)

	return !anyMatch, err
}

// Contains returns true as soon as s produces an element equal to elem.
func Contains[T comparable](s *Stream[T], elem T) (bool, error) {
	return AnyMatch(s, func(produced T) bool {
		return produced == elem
	})
}

// ContainsFunc returns true as soon as s produces an element for which pred
// returns true.
func ContainsFunc[T any](s *Stream[T], pred PredicateFunc[T]) (bool, error) {
	return AnyMatch(s, pred)
}

// Count returns the number of remaining elements produced by s.
func Count[T any](s *Stream[T]) (int, error) {
	count := 0

	err := Each(s, func(_ T, _ int) error {
		count++

		return nil
	})

	return count, err
}

// At returns the element at the given 0-based index, with a negative index
// counting from the end. If the index is out of range, the optional fallback
// is invoked and its result returned verbatim; without a fallback, false is
// returned. The fallback is invoked only for an out-of-range index: an
// in-range element is always returned as-is, whatever its value.
func At[T any](s *Stream[T], index int, fallback ...func() T) (T, bool, error) {
	var zero T

	if err := s.Err(); err != nil {
		return zero, false, err
	}

	if index >= 0 {
		skipped := 0

		for {
			elem, ok := s.Next()
			if !ok {
				break
			}

			if skipped == index {
				return elem, true, nil
			}

			skipped++
		}
	} else {
		// keep a sliding window of the last -index elements
		want := -index
		tail := make([]T, 0, want)

		for {
			elem, ok := s.Next()
			if !ok {
				break
			}

			if len(tail) == want {
				copy(tail, tail[1:])
				tail[want-1] = elem
			} else {
				tail = append(tail, elem)
			}
		}

		if len(tail) == want {
			return tail[0], true, nil
		}
	}

	if len(fallback) > 0 {
		return fallback[0](), true, nil
	}

	return zero, false, nil
}
