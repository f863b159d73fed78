package arr

import "errors"

// Sentinel errors returned by arr operations.
//
// Errors carry context via fmt.Errorf wrapping; use [errors.Is] for
// comparisons:
//
//	_, err := arr.BinarySearch(s, 7, nil, arr.Range(2, 10))
//	if errors.Is(err, arr.ErrOutOfRange) {
//	    // the range does not fit inside s
//	}
var (
	// ErrNilArgument is returned when a required predicate, comparator,
	// converter, action or destination is nil.
	ErrNilArgument = errors.New("arr: required argument is nil")

	// ErrOutOfRange is returned when an index, length, start or count is
	// negative or reaches past the end of the slice.
	ErrOutOfRange = errors.New("arr: index or length out of range")

	// ErrTypeMismatch is returned by [Copy] and [ConstrainedCopy] when a
	// source element cannot be stored in the destination slice.
	ErrTypeMismatch = errors.New("arr: incompatible element types")

	// ErrIncomparable is returned by [Sort] and [BinarySearch] when no
	// comparator is given and the element type has no natural order.
	ErrIncomparable = errors.New("arr: element type has no natural order")

	// ErrUnsupported is returned when a mutation is attempted through a
	// [ReadOnly] view.
	ErrUnsupported = errors.New("arr: operation not supported on a read-only view")

	// ErrInvalidComparer is returned by [Sort] when the comparator is
	// detected to be inconsistent, e.g. an element does not compare equal to
	// itself.
	ErrInvalidComparer = errors.New("arr: comparator returned inconsistent results")
)
