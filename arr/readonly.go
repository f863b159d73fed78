package arr

import (
	"fmt"
	"iter"
	"slices"
)

// ReadOnly is an immutable view over a slice. It shares storage with the
// slice it was created from, so writes made through the original slice are
// visible through the view, but the view itself cannot modify anything.
//
// The zero ReadOnly is an empty view.
type ReadOnly[T any] struct {
	items []T
}

// AsReadOnly returns a read-only view of items. No elements are copied.
func AsReadOnly[T any](items []T) ReadOnly[T] {
	return ReadOnly[T]{items: items}
}

// Len returns the number of elements in the view.
func (r ReadOnly[T]) Len() int { return len(r.items) }

// Get returns the element at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (r ReadOnly[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(r.items) {
		return zero, false
	}
	return r.items[index], true
}

// At returns the element at index, or [ErrOutOfRange].
func (r ReadOnly[T]) At(index int) (T, error) {
	v, ok := r.Get(index)
	if !ok {
		return v, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, index, len(r.items))
	}
	return v, nil
}

// Set always fails with [ErrUnsupported].
func (r ReadOnly[T]) Set(index int, _ T) error {
	return fmt.Errorf("%w: set index %d", ErrUnsupported, index)
}

// All returns an iterator over index/element pairs in index order.
func (r ReadOnly[T]) All() iter.Seq2[int, T] { return slices.All(r.items) }

// Values returns an iterator over the elements in index order.
func (r ReadOnly[T]) Values() iter.Seq[T] { return slices.Values(r.items) }

// Slice returns a copy of the viewed elements.
func (r ReadOnly[T]) Slice() []T { return slices.Clone(r.items) }
