package lazystreams

import (
	"testing"

	"github.com/matryer/is"
)

func parity(elem int) int {
	return elem % 2
}

func TestPartition_Get(t *testing.T) {
	is := is.New(t)

	part := Partition(Range(10), parity)

	evens, err := ToSlice(part.Get(0))

	is.NoErr(err)
	is.Equal(evens, []int{0, 2, 4, 6, 8})

	odds, err := ToSlice(part.Get(1))

	is.NoErr(err)
	is.Equal(odds, []int{1, 3, 5, 7, 9})
}

func TestPartition_Interleaved(t *testing.T) {
	is := is.New(t)

	part := Partition(Of(1, 1, 2, 1, 2, 2), Identity[int]())

	ones := part.Get(1)
	twos := part.Get(2)

	elem, ok := twos.Next()
	is.True(ok)
	is.Equal(elem, 2)

	elem, ok = ones.Next()
	is.True(ok)
	is.Equal(elem, 1)

	elem, ok = ones.Next()
	is.True(ok)
	is.Equal(elem, 1)

	elem, ok = twos.Next()
	is.True(ok)
	is.Equal(elem, 2)

	elem, ok = ones.Next()
	is.True(ok)
	is.Equal(elem, 1)

	elem, ok = twos.Next()
	is.True(ok)
	is.Equal(elem, 2)

	_, ok = ones.Next()
	is.True(!ok)

	_, ok = twos.Next()
	is.True(!ok)
}

func TestPartition_SingleDelivery(t *testing.T) {
	is := is.New(t)

	pulls := 0

	part := Partition(Take(countingSource(&pulls), 10), parity)

	evens, err := ToSlice(part.Get(0))
	is.NoErr(err)

	odds, err := ToSlice(part.Get(1))
	is.NoErr(err)

	// every element delivered exactly once, the parent pulled once per element
	is.Equal(len(evens)+len(odds), 10)
	is.Equal(pulls, 10)
}

func TestPartition_MissingKey(t *testing.T) {
	is := is.New(t)

	part := Partition(Range(4), parity)

	missing, err := ToSlice(part.Get(7))

	is.NoErr(err)
	is.Equal(len(missing), 0)

	// searching for the missing key buffered everything for the real keys
	evens, err := ToSlice(part.Get(0))

	is.NoErr(err)
	is.Equal(evens, []int{0, 2})
}

func TestPartitions(t *testing.T) {
	is := is.New(t)

	part := Partition(Range(10), parity)

	pairs, err := ToSlice(part.Partitions())

	is.NoErr(err)
	is.Equal(len(pairs), 2)

	is.Equal(pairs[0].Key, 0)
	is.Equal(pairs[1].Key, 1)

	evens, err := ToSlice(pairs[0].Value)

	is.NoErr(err)
	is.Equal(evens, []int{0, 2, 4, 6, 8})

	odds, err := ToSlice(pairs[1].Value)

	is.NoErr(err)
	is.Equal(odds, []int{1, 3, 5, 7, 9})
}

func TestPartitions_FirstSeenOrder(t *testing.T) {
	is := is.New(t)

	part := Partition(Of("b", "a", "c", "a", "b"), Identity[string]())

	keys, err := ToSlice(Map(part.Partitions(), func(pair Pair[string, *Stream[string]]) string {
		return pair.Key
	}))

	is.NoErr(err)
	is.Equal(keys, []string{"b", "a", "c"})
}

func TestPartitions_LateKeyDiscovery(t *testing.T) {
	is := is.New(t)

	part := Partition(Of(1, 1, 1, 2), Identity[int]())

	parts := part.Partitions()

	pair, ok := parts.Next()
	is.True(ok)
	is.Equal(pair.Key, 1)

	// key 2 has not been pulled yet; enumerating further discovers it
	pair, ok = parts.Next()
	is.True(ok)
	is.Equal(pair.Key, 2)

	_, ok = parts.Next()
	is.True(!ok)
}

func TestPartitions_DrainedKeyStillListed(t *testing.T) {
	is := is.New(t)

	part := Partition(Range(6), parity)

	evens, err := ToSlice(part.Get(0))

	is.NoErr(err)
	is.Equal(evens, []int{0, 2, 4})

	pairs, err := ToSlice(part.Partitions())

	is.NoErr(err)
	is.Equal(len(pairs), 2)
	is.Equal(pairs[0].Key, 0)

	// the drained key still appears, yielding no further elements
	rest, err := ToSlice(pairs[0].Value)

	is.NoErr(err)
	is.Equal(len(rest), 0)

	odds, err := ToSlice(pairs[1].Value)

	is.NoErr(err)
	is.Equal(odds, []int{1, 3, 5})
}

func TestPartition_Conservation(t *testing.T) {
	is := is.New(t)

	part := Partition(Range(20), func(elem int) int {
		return elem % 3
	})

	total := 0

	err := Each(part.Partitions(), func(pair Pair[int, *Stream[int]], _ int) error {
		count, err := Count(pair.Value)
		if err != nil {
			return err
		}

		total += count

		return nil
	})

	is.NoErr(err)
	is.Equal(total, 20)
}

func TestUnzip(t *testing.T) {
	is := is.New(t)

	keys, values := Unzip(Zip(Of("a", "b", "c"), Of(1, 2, 3)))

	gotKeys, err := ToSlice(keys)

	is.NoErr(err)
	is.Equal(gotKeys, []string{"a", "b", "c"})

	gotValues, err := ToSlice(values)

	is.NoErr(err)
	is.Equal(gotValues, []int{1, 2, 3})
}

func TestUnzip_OutOfOrder(t *testing.T) {
	is := is.New(t)

	pulls := 0

	pairs := Take(Indexed(countingSource(&pulls)), 3)

	keys, values := Unzip(pairs)

	gotValues, err := ToSlice(values)

	is.NoErr(err)
	is.Equal(gotValues, []int{0, 1, 2})

	gotKeys, err := ToSlice(keys)

	is.NoErr(err)
	is.Equal(gotKeys, []int{0, 1, 2})

	// the shared upstream was pulled once per pair
	is.Equal(pulls, 3)
}
