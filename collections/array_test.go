package collections_test

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-array-utils/arr"
	"github.com/hasbyte1/go-array-utils/collections"
)

func isEven(n int) bool { return n%2 == 0 }

// ─────────────────────────────────────────────────────────────────────────────
// Constructors & accessors
// ─────────────────────────────────────────────────────────────────────────────

func TestWrapSharesStorage(t *testing.T) {
	s := []int{3, 1, 2}
	a := collections.Wrap(s)
	require.NoError(t, a.Sort(nil))
	assert.Equal(t, []int{1, 2, 3}, s)
}

func TestNewCopies(t *testing.T) {
	s := []int{3, 1, 2}
	a := collections.New(s...)
	require.NoError(t, a.Sort(nil))
	assert.Equal(t, []int{3, 1, 2}, s)
	assert.Equal(t, []int{1, 2, 3}, a.Items())
}

func TestGet(t *testing.T) {
	a := collections.New("a", "b")
	v, ok := a.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = a.Get(2)
	assert.False(t, ok)
	assert.Equal(t, 2, a.Len())
}

func TestString(t *testing.T) {
	a := collections.New(1, 2, 3)
	assert.Equal(t, "[1,2,3]", a.String())

	b, err := a.ToJSON()
	require.NoError(t, err)
	var back []int
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, []int{1, 2, 3}, back)
}

func TestAsReadOnly(t *testing.T) {
	s := []int{1, 2}
	ro := collections.Wrap(s).AsReadOnly()
	s[0] = 7
	v, err := ro.At(0)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.ErrorIs(t, ro.Set(0, 1), arr.ErrUnsupported)
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

func TestPredicates(t *testing.T) {
	a := collections.New(1, 2, 3, 4, 5, 6)

	ok, err := a.Exists(isEven)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.TrueForAll(isEven)
	require.NoError(t, err)
	assert.False(t, ok)

	evens, err := a.FindAll(isEven)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6}, evens.Items())

	first, err := a.Find(isEven)
	require.NoError(t, err)
	assert.Equal(t, 2, first)

	last, err := a.FindLast(isEven)
	require.NoError(t, err)
	assert.Equal(t, 6, last)
}

func TestFindIndexes(t *testing.T) {
	a := collections.New(3, 1, 4, 1, 5)

	i, err := a.FindIndex(func(n int) bool { return n == 1 })
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	i, err = a.FindLastIndex(func(n int) bool { return n == 1 })
	require.NoError(t, err)
	assert.Equal(t, 3, i)

	i, err = a.FindIndex(func(n int) bool { return n == 1 }, arr.Start(2), arr.Count(2))
	require.NoError(t, err)
	assert.Equal(t, 3, i)
}

func TestIndexOf(t *testing.T) {
	a := collections.New(3, 1, 4, 1, 5)

	i, err := collections.IndexOf(a, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	i, err = collections.LastIndexOf(a, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, i)

	_, err = collections.IndexOf(a, 1, arr.Start(9))
	assert.ErrorIs(t, err, arr.ErrOutOfRange)
}

func TestBinarySearch(t *testing.T) {
	a := collections.New(2, 4, 6, 8)

	i, err := a.BinarySearch(6, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	r, err := a.BinarySearch(5, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, ^r)
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation, iteration and conversion
// ─────────────────────────────────────────────────────────────────────────────

func TestClearAndReverse(t *testing.T) {
	a := collections.New(1, 2, 3, 4, 5)
	require.NoError(t, a.Clear(1, 2))
	assert.Equal(t, []int{1, 0, 0, 4, 5}, a.Items())

	require.NoError(t, a.Reverse(arr.Range(2, 3)))
	assert.Equal(t, []int{1, 0, 5, 4, 0}, a.Items())

	assert.ErrorIs(t, a.Clear(3, 3), arr.ErrOutOfRange)
}

func TestForEach(t *testing.T) {
	sum := 0
	require.NoError(t, collections.New(1, 2, 3).ForEach(func(n int) { sum += n }))
	assert.Equal(t, 6, sum)
	assert.ErrorIs(t, collections.New(1).ForEach(nil), arr.ErrNilArgument)
}

func TestConvertAll(t *testing.T) {
	src := collections.New(1, 2, 3)
	out, err := collections.ConvertAll(src, strconv.Itoa)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, out.Items())

	_, err = collections.ConvertAll[int, string](src, nil)
	assert.ErrorIs(t, err, arr.ErrNilArgument)
}

func TestCopyIntoArray(t *testing.T) {
	src := collections.New[int32](1, 2, 3)
	dst := collections.New[int64](0, 0, 0)
	require.NoError(t, src.Copy(dst, 2, arr.DestIndex(1)))
	assert.Equal(t, []int64{0, 1, 2}, dst.Items())

	plain := make([]int32, 3)
	require.NoError(t, src.ConstrainedCopy(0, plain, 0, 3))
	assert.Equal(t, []int32{1, 2, 3}, plain)

	assert.ErrorIs(t, src.ConstrainedCopy(0, dst, 0, 1), arr.ErrTypeMismatch)
}

func TestResize(t *testing.T) {
	a := collections.New(1, 2, 3)
	b, err := a.Resize(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, b.Items())
	assert.Equal(t, 3, a.Len())

	_, err = a.Resize(-2)
	assert.ErrorIs(t, err, arr.ErrOutOfRange)
}
