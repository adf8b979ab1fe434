package lazystreams

import (
	"testing"

	"github.com/matryer/is"
)

func TestPresent(t *testing.T) {
	is := is.New(t)

	one, three := 1, 3

	result, err := ToSlice(Present(Of(&one, nil, &three, nil)))

	is.NoErr(err)
	is.Equal(result, []*int{&one, &three})
}

func TestNonZero(t *testing.T) {
	is := is.New(t)

	result, err := ToSlice(NonZero(Of("a", "", "b", "")))

	is.NoErr(err)
	is.Equal(result, []string{"a", "b"})
}

func TestNonZero_Ints(t *testing.T) {
	is := is.New(t)

	result, err := ToSlice(NonZero(Of(0, 1, 0, 2)))

	is.NoErr(err)
	is.Equal(result, []int{1, 2})
}
