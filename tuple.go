package lazystreams

// A Pair is an ordered 2-element tuple with structural equality when both
// field types are comparable. Zip, Entries, Indexed, and partition enumeration
// produce pairs.
type Pair[K any, V any] struct {
	Key   K
	Value V
}

// PairOf returns a pair of key and value.
func PairOf[K any, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{
		Key:   key,
		Value: value,
	}
}

// Unpack returns the pair's key and value.
func (p Pair[K, V]) Unpack() (K, V) {
	return p.Key, p.Value
}
