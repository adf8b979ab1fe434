package lazystreams

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the error reported for malformed operation arguments,
// such as a negative take count or a zero range step.
// It is recorded on the stream when the operation is constructed, and returned
// by any terminal operation before a single element is pulled.
var ErrInvalidArgument = errors.New("invalid argument")

// A Stream is a single-pass, pull-based cursor over a lazy sequence of elements.
// Operations derive new streams that pull from their parent strictly on demand;
// deriving a stream never advances the parent beyond the look-ahead the
// operation itself requires.
//
// A stream can be drained forward only once. Sharing one stream between
// independent consumers makes their pulls interleave over a single advancing
// position; partition sub-streams are the one construct designed for that.
type Stream[T any] struct {
	next func() (T, bool)
	err  error
}

// Next pulls the next element. It returns false once the stream is exhausted,
// or immediately if the stream carries a construction error.
func (s *Stream[T]) Next() (T, bool) {
	if s.err != nil || s.next == nil {
		var zero T
		return zero, false
	}

	return s.next()
}

// Err returns the error recorded when the stream was constructed, if any.
func (s *Stream[T]) Err() error {
	return s.err
}

func newStream[T any](next func() (T, bool)) *Stream[T] {
	return &Stream[T]{next: next}
}

// derive returns a stream over next, inheriting parent's recorded error.
func derive[T any, U any](parent *Stream[T], next func() (U, bool)) *Stream[U] {
	return &Stream[U]{
		next: next,
		err:  parent.err,
	}
}

// failed returns a stream that produces nothing and reports ErrInvalidArgument
// with the given detail.
func failed[T any](format string, args ...any) *Stream[T] {
	return &Stream[T]{
		err: fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...),
	}
}

// drain pulls s until exhaustion, collecting the remaining elements into a
// fresh slice.
func drain[T any](s *Stream[T]) []T {
	var elems []T

	for {
		elem, ok := s.Next()
		if !ok {
			return elems
		}

		elems = append(elems, elem)
	}
}
