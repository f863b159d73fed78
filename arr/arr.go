package arr

import (
	"fmt"
	"slices"
)

// ─────────────────────────────────────────────────────────────────────────────
// Predicates
// ─────────────────────────────────────────────────────────────────────────────

// Exists reports whether at least one element satisfies match.
// The scan stops at the first match.
func Exists[T any](items []T, match func(T) bool) (bool, error) {
	if match == nil {
		return false, nilArg("match")
	}
	return slices.ContainsFunc(items, match), nil
}

// TrueForAll reports whether every element satisfies match.
// It is vacuously true for an empty slice.
func TrueForAll[T any](items []T, match func(T) bool) (bool, error) {
	if match == nil {
		return false, nilArg("match")
	}
	for _, item := range items {
		if !match(item) {
			return false, nil
		}
	}
	return true, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching
// ─────────────────────────────────────────────────────────────────────────────

// Find returns the first element satisfying match, or the zero value of T
// when none does.
func Find[T any](items []T, match func(T) bool) (T, error) {
	var zero T
	if match == nil {
		return zero, nilArg("match")
	}
	if i := slices.IndexFunc(items, match); i >= 0 {
		return items[i], nil
	}
	return zero, nil
}

// FindLast returns the last element satisfying match, or the zero value of T
// when none does.
func FindLast[T any](items []T, match func(T) bool) (T, error) {
	var zero T
	if match == nil {
		return zero, nilArg("match")
	}
	for i := len(items) - 1; i >= 0; i-- {
		if match(items[i]) {
			return items[i], nil
		}
	}
	return zero, nil
}

// FindAll returns every element satisfying match, in index order.
// The result is a new slice and is never nil.
func FindAll[T any](items []T, match func(T) bool) ([]T, error) {
	if match == nil {
		return nil, nilArg("match")
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if match(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

// FindIndex returns the index of the first element satisfying match within
// the window selected by [Start] and [Count] (default: the whole slice), or
// -1.
func FindIndex[T any](items []T, match func(T) bool, opts ...Option) (int, error) {
	if match == nil {
		return -1, nilArg("match")
	}
	lo, hi, err := window(len(items), opts)
	if err != nil {
		return -1, err
	}
	if i := slices.IndexFunc(items[lo:hi], match); i >= 0 {
		return lo + i, nil
	}
	return -1, nil
}

// FindLastIndex is like [FindIndex] but scans the window backwards and
// returns the index of the last match.
func FindLastIndex[T any](items []T, match func(T) bool, opts ...Option) (int, error) {
	if match == nil {
		return -1, nilArg("match")
	}
	lo, hi, err := window(len(items), opts)
	if err != nil {
		return -1, err
	}
	for i := hi - 1; i >= lo; i-- {
		if match(items[i]) {
			return i, nil
		}
	}
	return -1, nil
}

// IndexOf returns the index of the first element equal to value within the
// window selected by [Start] and [Count], or -1.
func IndexOf[T comparable](items []T, value T, opts ...Option) (int, error) {
	lo, hi, err := window(len(items), opts)
	if err != nil {
		return -1, err
	}
	if i := slices.Index(items[lo:hi], value); i >= 0 {
		return lo + i, nil
	}
	return -1, nil
}

// LastIndexOf returns the index of the last element equal to value within
// the window selected by [Start] and [Count], or -1.
func LastIndexOf[T comparable](items []T, value T, opts ...Option) (int, error) {
	lo, hi, err := window(len(items), opts)
	if err != nil {
		return -1, err
	}
	for i := hi - 1; i >= lo; i-- {
		if items[i] == value {
			return i, nil
		}
	}
	return -1, nil
}

// BinarySearch searches the sorted window selected by [Range] (default: the
// whole slice) for value.
//
// When value is present its index is returned. Otherwise the result is the
// bitwise complement of the insertion point, i.e. -(insertion)-1, so a
// negative result r means "absent, insert at ^r". Indices are relative to
// items, not to the window.
//
// A nil compare uses the natural order of T. The window must already be
// sorted by the same ordering; the result is unspecified otherwise.
func BinarySearch[T any](items []T, value T, compare func(a, b T) int, opts ...Option) (index int, err error) {
	lo, hi, err := window(len(items), opts)
	if err != nil {
		return -1, err
	}
	compare, err = resolveCompare(compare)
	if err != nil {
		return -1, err
	}
	defer func() {
		if err != nil {
			index = -1
		}
	}()
	defer recoverOrder(&err)

	i, found := slices.BinarySearchFunc(items[lo:hi], value, compare)
	if found {
		return lo + i, nil
	}
	return ^(lo + i), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation & iteration
// ─────────────────────────────────────────────────────────────────────────────

// ConvertAll applies convert to every element and returns the results in a
// new slice of the same length and order.
func ConvertAll[T, U any](items []T, convert func(T) U) ([]U, error) {
	if convert == nil {
		return nil, nilArg("convert")
	}
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = convert(item)
	}
	return out, nil
}

// ForEach calls action on every element in index order.
func ForEach[T any](items []T, action func(T)) error {
	if action == nil {
		return nilArg("action")
	}
	for _, item := range items {
		action(item)
	}
	return nil
}

func nilArg(name string) error {
	return fmt.Errorf("%w: %s", ErrNilArgument, name)
}
