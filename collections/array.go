package collections

import (
	"encoding/json"
	"fmt"

	"github.com/hasbyte1/go-array-utils/arr"
)

// Array is a method-style handle on a []T. It holds no state besides the
// slice header, and all in-place methods write through to that slice.
//
// # Creating an array
//
//	a := collections.Wrap(existing)     // shares existing
//	a := collections.New(1, 2, 3)       // owns a copy
//
// The zero Array is an empty array.
type Array[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Wrap returns an Array backed by items. No elements are copied.
func Wrap[T any](items []T) *Array[T] {
	return &Array[T]{items: items}
}

// New creates an Array from a variadic list of items (copied).
func New[T any](items ...T) *Array[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Array[T]{items: dst}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Items returns the backing slice. It is not a copy.
func (a *Array[T]) Items() []T { return a.items }

// Len returns the number of elements.
func (a *Array[T]) Len() int { return len(a.items) }

// Get returns the element at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (a *Array[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(a.items) {
		return zero, false
	}
	return a.items[index], true
}

// AsReadOnly returns a read-only view sharing the backing slice.
func (a *Array[T]) AsReadOnly() arr.ReadOnly[T] { return arr.AsReadOnly(a.items) }

// ToJSON serialises the elements to a JSON array.
func (a *Array[T]) ToJSON() ([]byte, error) {
	return json.Marshal(a.items)
}

// String returns a JSON representation of the array.
// It implements [fmt.Stringer].
func (a *Array[T]) String() string {
	b, err := a.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", a.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

// BinarySearch calls [arr.BinarySearch] on the backing slice.
func (a *Array[T]) BinarySearch(value T, compare func(x, y T) int, opts ...arr.Option) (int, error) {
	return arr.BinarySearch(a.items, value, compare, opts...)
}

// Exists reports whether any element satisfies match.
func (a *Array[T]) Exists(match func(T) bool) (bool, error) {
	return arr.Exists(a.items, match)
}

// TrueForAll reports whether every element satisfies match.
func (a *Array[T]) TrueForAll(match func(T) bool) (bool, error) {
	return arr.TrueForAll(a.items, match)
}

// Find returns the first element satisfying match, or the zero value.
func (a *Array[T]) Find(match func(T) bool) (T, error) {
	return arr.Find(a.items, match)
}

// FindLast returns the last element satisfying match, or the zero value.
func (a *Array[T]) FindLast(match func(T) bool) (T, error) {
	return arr.FindLast(a.items, match)
}

// FindAll returns a new Array of every element satisfying match.
func (a *Array[T]) FindAll(match func(T) bool) (*Array[T], error) {
	out, err := arr.FindAll(a.items, match)
	if err != nil {
		return nil, err
	}
	return &Array[T]{items: out}, nil
}

// FindIndex calls [arr.FindIndex] on the backing slice.
func (a *Array[T]) FindIndex(match func(T) bool, opts ...arr.Option) (int, error) {
	return arr.FindIndex(a.items, match, opts...)
}

// FindLastIndex calls [arr.FindLastIndex] on the backing slice.
func (a *Array[T]) FindLastIndex(match func(T) bool, opts ...arr.Option) (int, error) {
	return arr.FindLastIndex(a.items, match, opts...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// ForEach calls action for every element in index order.
func (a *Array[T]) ForEach(action func(T)) error {
	return arr.ForEach(a.items, action)
}

// ─────────────────────────────────────────────────────────────────────────────
// In-place mutation
// ─────────────────────────────────────────────────────────────────────────────

// Clear zeroes length elements starting at index.
func (a *Array[T]) Clear(index, length int) error {
	return arr.Clear(a.items, index, length)
}

// Reverse reverses the elements in place, optionally within an [arr.Range].
func (a *Array[T]) Reverse(opts ...arr.Option) error {
	return arr.Reverse(a.items, opts...)
}

// Sort sorts the elements in place; a nil compare uses natural order.
func (a *Array[T]) Sort(compare func(x, y T) int, opts ...arr.Option) error {
	return arr.Sort(a.items, compare, opts...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Copying & resizing
// ─────────────────────────────────────────────────────────────────────────────

// Copy copies length elements into dst, which may be a slice or an *Array
// of any element type. See [arr.Copy].
func (a *Array[T]) Copy(dst any, length int, opts ...arr.Option) error {
	return arr.Copy(a.items, unwrap(dst), length, opts...)
}

// ConstrainedCopy is the all-or-nothing variant of [Array.Copy].
// See [arr.ConstrainedCopy].
func (a *Array[T]) ConstrainedCopy(srcIndex int, dst any, dstIndex, length int) error {
	return arr.ConstrainedCopy(a.items, srcIndex, unwrap(dst), dstIndex, length)
}

// Resize returns a new Array of the given size; the receiver is unchanged.
func (a *Array[T]) Resize(size int) (*Array[T], error) {
	out, err := arr.Resize(a.items, size)
	if err != nil {
		return nil, err
	}
	return &Array[T]{items: out}, nil
}

// backing is satisfied by every *Array[T].
type backing interface{ backingSlice() any }

func (a *Array[T]) backingSlice() any { return a.items }

// unwrap lets copy destinations be given as *Array values.
func unwrap(dst any) any {
	if b, ok := dst.(backing); ok {
		return b.backingSlice()
	}
	return dst
}
