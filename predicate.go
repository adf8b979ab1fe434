package lazystreams

// Present returns a stream without nil pointers.
func Present[T any](s *Stream[*T]) *Stream[*T] {
	return Filter(s, func(elem *T) bool {
		return elem != nil
	})
}

// NonZero returns a stream without zero values, rejecting false, 0, empty
// strings, and zero structs alike.
func NonZero[T comparable](s *Stream[T]) *Stream[T] {
	var zero T

	return Filter(s, func(elem T) bool {
		return elem != zero
	})
}
