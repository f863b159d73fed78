package arr

import (
	"fmt"
	"slices"
)

// Clear sets items[index:index+length] to the zero value of T.
func Clear[T any](items []T, index, length int) error {
	if err := checkRange(len(items), index, length); err != nil {
		return err
	}
	clear(items[index : index+length])
	return nil
}

// Reverse reverses the window selected by [Range] (default: the whole slice)
// in place.
func Reverse[T any](items []T, opts ...Option) error {
	lo, hi, err := window(len(items), opts)
	if err != nil {
		return err
	}
	slices.Reverse(items[lo:hi])
	return nil
}

// Sort sorts the window selected by [Range] (default: the whole slice) in
// place. A nil compare uses the natural order of T. The sort is not stable.
//
// Before sorting, compare is probed for obvious inconsistencies; a failed
// probe returns [ErrInvalidComparer] and leaves items unchanged. Detection is
// best-effort.
func Sort[T any](items []T, compare func(a, b T) int, opts ...Option) (err error) {
	lo, hi, err := window(len(items), opts)
	if err != nil {
		return err
	}
	compare, err = resolveCompare(compare)
	if err != nil {
		return err
	}
	defer recoverOrder(&err)

	w := items[lo:hi]
	if err := probe(w, compare); err != nil {
		return err
	}
	slices.SortFunc(w, compare)
	return nil
}

// Resize returns a new slice of length size holding the first min(size,
// len(items)) elements of items followed by zero values. items itself is
// never modified or re-bound.
func Resize[T any](items []T, size int) ([]T, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: size %d must not be negative", ErrOutOfRange, size)
	}
	out := make([]T, size)
	copy(out, items)
	return out, nil
}
