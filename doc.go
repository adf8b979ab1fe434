// Package lazystreams provides a lazy, chainable sequence abstraction over
// arbitrary in-memory sources. Streams form a pipeline of operations that
// elements are being pulled through.
//
// Streams are constructed from slices, channels, maps, numeric ranges, or any
// raw iteration handle, and operated upon using mapping, filtering, slicing,
// and ordering operations, each of which returns a new stream pulling from its
// parent strictly on demand. A few operations (Sorted, Reverse, Distinct,
// Shuffle, negative Step) are documented as eager: they materialize the
// remaining elements before producing any output.
//
// Finally, elements are consumed by terminal operations, such as collecting
// them into slices or maps, grouping them, checking for matching elements, or
// simply iterating over them. Consumers may return ErrShortCircuit to stop a
// stream cleanly.
//
// Partitioning groups a stream's elements by a derived key and exposes each
// group as a sub-stream. Sub-streams share one upstream cursor and may be
// consumed interleaved and out of order; elements pulled on behalf of one key
// are buffered for their own key, and the upstream is pulled at most once per
// element.
//
// Everything is single-threaded and synchronous: a stream performs no work
// until pulled, and all work happens on the caller's own call stack.
// Abandoning a stream requires no cleanup.
package lazystreams
