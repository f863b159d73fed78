// Package arr provides standalone, generic helper functions for Go slices
// that mirror the classic fixed-length array toolkit: search, sort, copy,
// find, convert, clear, reverse and iterate.
//
// Every helper takes the slice as its first parameter and works on plain []T
// values, no wrapper type required. Use package collections when a
// method-style API is preferred.
//
//	s := []int{3, 1, 4, 1, 5}
//	_ = arr.Sort(s, nil)                                      // → [1 1 3 4 5]
//	i, _ := arr.IndexOf(s, 4)                                 // → 3
//	j, _ := arr.FindLastIndex(s, func(n int) bool { return n == 1 }) // → 1
//
// # Optional parameters
//
// Sub-ranges are selected with trailing [Option] values instead of default
// arguments:
//
//	arr.Sort(s, nil, arr.Range(1, 3))          // sort s[1:4] only
//	arr.IndexOf(s, 1, arr.Start(2))            // search s[2:]
//	arr.FindIndex(s, even, arr.Start(1), arr.Count(2))
//	arr.Copy(src, dst, 2, arr.SourceIndex(1), arr.DestIndex(3))
//
// A nil comparator means natural order: integer, unsigned, float, string
// and bool kinds (named types included), types implementing [Comparer] such
// as time.Time, and interface element types whose dynamic values are one of
// those.
//
// # Errors
//
// Invalid input is reported before any element is modified, using the
// sentinel errors in errors.go. Compare with [errors.Is]:
//
//	if err := arr.Clear(s, 4, 3); errors.Is(err, arr.ErrOutOfRange) {
//	    // index + length exceeds len(s)
//	}
//
// A nil slice is a valid empty sequence. Nil predicates, converters and
// actions are rejected with [ErrNilArgument].
//
// # Concurrency
//
// Helpers run synchronously on the caller's goroutine and never retain the
// slice, except [ReadOnly] which shares storage by design. Mutating the same
// slice from several goroutines requires external synchronisation.
package arr
