package arr

import "fmt"

// Option narrows an operation to part of a slice, or positions a copy.
// Options are applied in order; later options override earlier ones.
type Option func(*options)

type options struct {
	start    int
	count    int
	hasCount bool
	srcIndex int
	dstIndex int
}

// Range selects the window [index, index+length).
// It is shorthand for Start(index) followed by Count(length).
func Range(index, length int) Option {
	return func(o *options) {
		o.start = index
		o.count = length
		o.hasCount = true
	}
}

// Start sets the first index of the window. Without [Count] the window runs
// to the end of the slice.
func Start(index int) Option {
	return func(o *options) { o.start = index }
}

// Count sets the number of elements in the window.
func Count(n int) Option {
	return func(o *options) {
		o.count = n
		o.hasCount = true
	}
}

// SourceIndex sets the first source element read by [Copy].
func SourceIndex(index int) Option {
	return func(o *options) { o.srcIndex = index }
}

// DestIndex sets the first destination slot written by [Copy].
func DestIndex(index int) Option {
	return func(o *options) { o.dstIndex = index }
}

func collect(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// window resolves opts against a slice of length n and returns the half-open
// bounds [lo, hi).
func window(n int, opts []Option) (lo, hi int, err error) {
	o := collect(opts)
	count := n - o.start
	if o.hasCount {
		count = o.count
	}
	if err := checkRange(n, o.start, count); err != nil {
		return 0, 0, err
	}
	return o.start, o.start + count, nil
}

// checkRange validates 0 ≤ index, 0 ≤ length and index+length ≤ n.
func checkRange(n, index, length int) error {
	if index < 0 || length < 0 {
		return fmt.Errorf("%w: index %d and length %d must not be negative",
			ErrOutOfRange, index, length)
	}
	if index > n-length {
		return fmt.Errorf("%w: index %d + length %d exceeds slice length %d",
			ErrOutOfRange, index, length, n)
	}
	return nil
}
