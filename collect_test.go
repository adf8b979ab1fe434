package lazystreams

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestReduce_CollectSlice(t *testing.T) {
	is := is.New(t)

	result, err := Reduce(Of(1, 2, 3), nil, CollectSlice[int]())

	is.NoErr(err)
	is.Equal(result, []int{1, 2, 3})
}

func TestReduce_CollectMap(t *testing.T) {
	is := is.New(t)

	result, err := Reduce(Of(1, 2, 3, 3), map[string]int{}, CollectMap(itoa, Identity[int]()))

	is.NoErr(err)
	is.Equal(result, map[string]int{
		"1": 1,
		"2": 2,
		"3": 3,
	})
}

func TestReduce_CollectMapNoDuplicateKeys(t *testing.T) {
	is := is.New(t)

	result, err := Reduce(Of(1, 2, 3, 3, 4, 5), map[string]int{}, CollectMapNoDuplicateKeys(itoa, Identity[int]()))

	is.Equal(result, map[string]int{
		"1": 1,
		"2": 2,
		"3": 3,
	})

	var cause *DuplicateKeyError[int, string]

	is.True(errors.As(err, &cause))
	is.Equal(cause.Element, 3)
	is.Equal(cause.Key, "3")
}

func TestReduce_CollectGroup(t *testing.T) {
	is := is.New(t)

	result, err := Reduce(Range(6), map[int][]int{}, CollectGroup(func(elem int) int {
		return elem % 3
	}, Identity[int]()))

	is.NoErr(err)
	is.Equal(result, map[int][]int{
		0: {0, 3},
		1: {1, 4},
		2: {2, 5},
	})
}

func TestReduce_CollectPartition(t *testing.T) {
	is := is.New(t)

	result, err := Reduce(Range(5), map[bool][]int{}, CollectPartition(even, Identity[int]()))

	is.NoErr(err)
	is.Equal(result, map[bool][]int{
		true:  {0, 2, 4},
		false: {1, 3},
	})
}
