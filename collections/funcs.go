package collections

import "github.com/hasbyte1/go-array-utils/arr"

// This file contains package-level functions for operations that cannot be
// methods on Array[T]: they either introduce a new element type or need a
// comparable one.

// ConvertAll applies convert to every element and returns a new Array[U].
//
//	labels, _ := collections.ConvertAll(collections.New(1, 2, 3), strconv.Itoa)
//	// → ["1", "2", "3"]
func ConvertAll[T, U any](a *Array[T], convert func(T) U) (*Array[U], error) {
	out, err := arr.ConvertAll(a.items, convert)
	if err != nil {
		return nil, err
	}
	return &Array[U]{items: out}, nil
}

// IndexOf returns the index of the first element equal to value, or -1.
// Accepts [arr.Start] and [arr.Count].
func IndexOf[T comparable](a *Array[T], value T, opts ...arr.Option) (int, error) {
	return arr.IndexOf(a.items, value, opts...)
}

// LastIndexOf returns the index of the last element equal to value, or -1.
func LastIndexOf[T comparable](a *Array[T], value T, opts ...arr.Option) (int, error) {
	return arr.LastIndexOf(a.items, value, opts...)
}
