package lazystreams

// A DuplicateKeyError is used to stop a reduction because a key could not be
// added to a map, as it already exists.
type DuplicateKeyError[T any, K comparable] struct {
	// Element is the element that caused the error.
	Element T

	// Key is the key that was already in the map.
	Key K
}

// CollectSlice returns an accumulator that collects elements into a slice.
func CollectSlice[T any]() AccumulatorFunc[T, []T] {
	return func(acc []T, elem T, _ int) ([]T, error) {
		return append(acc, elem), nil
	}
}

// CollectMap returns an accumulator that collects elements into a map.
// Elements are mapped using key and value, respectively.
// If a key is already in the map, the map entry will be overwritten.
func CollectMap[T any, K comparable, V any](key MapperFunc[T, K], value MapperFunc[T, V]) AccumulatorFunc[T, map[K]V] {
	return func(acc map[K]V, elem T, _ int) (map[K]V, error) {
		acc[key(elem)] = value(elem)

		return acc, nil
	}
}

// CollectMapNoDuplicateKeys returns an accumulator that collects elements into
// a map. Elements are mapped using key and value, respectively.
// If a key is already in the map, the reduction stops with a DuplicateKeyError.
func CollectMapNoDuplicateKeys[T any, K comparable, V any](key MapperFunc[T, K], value MapperFunc[T, V]) AccumulatorFunc[T, map[K]V] {
	return func(acc map[K]V, elem T, _ int) (map[K]V, error) {
		key := key(elem)

		if _, ok := acc[key]; ok {
			return acc, &DuplicateKeyError[T, K]{
				Element: elem,
				Key:     key,
			}
		}

		acc[key] = value(elem)

		return acc, nil
	}
}

// CollectGroup returns an accumulator that collects elements into a group map.
// Elements will be grouped into slices according to key.
func CollectGroup[T any, K comparable, V any](key MapperFunc[T, K], value MapperFunc[T, V]) AccumulatorFunc[T, map[K][]V] {
	return func(acc map[K][]V, elem T, _ int) (map[K][]V, error) {
		key := key(elem)
		acc[key] = append(acc[key], value(elem))

		return acc, nil
	}
}

// CollectPartition returns an accumulator that collects elements into a
// partition map. Elements will be grouped into slices according to pred.
func CollectPartition[T any, V any](pred PredicateFunc[T], value MapperFunc[T, V]) AccumulatorFunc[T, map[bool][]V] {
	return CollectGroup(MapperFunc[T, bool](pred), value)
}

// Identity returns a mapper that returns the same element it receives.
func Identity[T any]() MapperFunc[T, T] {
	return func(elem T) T {
		return elem
	}
}

// Error implements error.
func (e *DuplicateKeyError[T, K]) Error() string {
	return "duplicate key"
}
