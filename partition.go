package lazystreams

// A PartitionStream groups a parent stream's elements by a derived key and
// exposes each group as an independently consumable sub-stream. The parent is
// pulled strictly on demand, at most once per element: an element pulled while
// searching on behalf of one key is buffered under its own key, where its own
// sub-stream will find it later. Keys are remembered in first-seen order.
//
// Partition sub-streams are safe to consume interleaved and out of order, over
// the one shared upstream.
type PartitionStream[K comparable, T any] struct {
	parent  *Stream[T]
	key     MapperFunc[T, K]
	order   []K
	buffers map[K][]T
	done    bool
}

// Partition returns a partition stream grouping the elements of s by key.
func Partition[T any, K comparable](s *Stream[T], key MapperFunc[T, K]) *PartitionStream[K, T] {
	return &PartitionStream[K, T]{
		parent:  s,
		key:     key,
		buffers: map[K][]T{},
	}
}

// record marks key as seen, preserving first-seen order.
func (p *PartitionStream[K, T]) record(key K) {
	if _, ok := p.buffers[key]; ok {
		return
	}

	p.order = append(p.order, key)
	p.buffers[key] = nil
}

// pull produces the next element tagged key: first from key's buffer, then by
// advancing the shared parent, buffering every non-matching element under its
// own key, until a match appears or the parent is exhausted.
func (p *PartitionStream[K, T]) pull(key K) (T, bool) {
	if buffered := p.buffers[key]; len(buffered) > 0 {
		elem := buffered[0]
		p.buffers[key] = buffered[1:]

		return elem, true
	}

	for !p.done {
		elem, ok := p.parent.Next()
		if !ok {
			p.done = true
			break
		}

		elemKey := p.key(elem)
		p.record(elemKey)

		if elemKey == key {
			return elem, true
		}

		p.buffers[elemKey] = append(p.buffers[elemKey], elem)
	}

	var zero T
	return zero, false
}

// discover advances the shared parent, buffering every element, until a
// previously unseen key appears or the parent is exhausted. It returns true if
// a new key was found.
func (p *PartitionStream[K, T]) discover() bool {
	known := len(p.order)

	for !p.done {
		elem, ok := p.parent.Next()
		if !ok {
			p.done = true
			break
		}

		elemKey := p.key(elem)
		p.record(elemKey)
		p.buffers[elemKey] = append(p.buffers[elemKey], elem)

		if len(p.order) > known {
			return true
		}
	}

	return false
}

// Get returns the sub-stream of elements tagged key. Pulling it may advance
// the shared parent, feeding other keys' buffers. A key that never occurs
// yields an empty sub-stream once the parent is exhausted.
func (p *PartitionStream[K, T]) Get(key K) *Stream[T] {
	return &Stream[T]{
		err: p.parent.err,
		next: func() (T, bool) {
			return p.pull(key)
		},
	}
}

// Partitions returns a stream of (key, sub-stream) pairs, in first-seen key
// order, including keys discovered only while it is being consumed. Fully
// consuming it drains the parent entirely. A key whose sub-stream was already
// drained still appears, yielding no further elements.
func (p *PartitionStream[K, T]) Partitions() *Stream[Pair[K, *Stream[T]]] {
	index := 0

	return &Stream[Pair[K, *Stream[T]]]{
		err: p.parent.err,
		next: func() (Pair[K, *Stream[T]], bool) {
			for {
				if index < len(p.order) {
					key := p.order[index]
					index++

					return PairOf(key, p.Get(key)), true
				}

				if !p.discover() {
					return Pair[K, *Stream[T]]{}, false
				}
			}
		},
	}
}

// Unzip splits a stream of pairs into a stream of keys and a stream of values,
// sharing the one upstream. Either side may be consumed first or interleaved:
// pulling one side buffers the counterpart element for the other, and the
// upstream is pulled at most once per pair.
func Unzip[K any, V any](s *Stream[Pair[K, V]]) (*Stream[K], *Stream[V]) {
	var keys []K
	var values []V

	nextKey := func() (K, bool) {
		if len(keys) > 0 {
			key := keys[0]
			keys = keys[1:]

			return key, true
		}

		pair, ok := s.Next()
		if !ok {
			var zero K
			return zero, false
		}

		values = append(values, pair.Value)

		return pair.Key, true
	}

	nextValue := func() (V, bool) {
		if len(values) > 0 {
			value := values[0]
			values = values[1:]

			return value, true
		}

		pair, ok := s.Next()
		if !ok {
			var zero V
			return zero, false
		}

		keys = append(keys, pair.Key)

		return pair.Value, true
	}

	return &Stream[K]{err: s.err, next: nextKey}, &Stream[V]{err: s.err, next: nextValue}
}
