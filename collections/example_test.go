package collections_test

import (
	"fmt"
	"strconv"

	"github.com/hasbyte1/go-array-utils/collections"
)

func ExampleWrap() {
	s := []int{3, 1, 4, 1, 5}
	a := collections.Wrap(s)
	_ = a.Sort(nil)

	i, _ := collections.IndexOf(a, 4)
	j, _ := a.FindLastIndex(func(n int) bool { return n == 1 })
	fmt.Println(s, i, j)
	// Output: [1 1 3 4 5] 3 1
}

func ExampleArray_FindAll() {
	evens, _ := collections.New(1, 2, 3, 4, 5, 6).
		FindAll(func(n int) bool { return n%2 == 0 })
	fmt.Println(evens)
	// Output: [2,4,6]
}

func ExampleConvertAll() {
	labels, _ := collections.ConvertAll(collections.New(1, 2, 3), strconv.Itoa)
	fmt.Println(labels.Items())
	// Output: [1 2 3]
}
