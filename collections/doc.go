// Package collections provides [Array], a thin method-style wrapper around a
// caller-owned slice, for code that prefers s.Sort(nil) over arr.Sort(s, nil).
//
// # Overview
//
// Every method delegates to the function of the same name in package arr and
// returns its errors unchanged, so [errors.Is] works with the arr sentinels:
//
//	s := []int{3, 1, 4, 1, 5}
//	a := collections.Wrap(s)
//	_ = a.Sort(nil)                       // s is now [1 1 3 4 5]
//	i, _ := collections.IndexOf(a, 4)     // → 3
//	err := a.Clear(4, 3)                  // errors.Is(err, arr.ErrOutOfRange)
//
// # Shared storage
//
// [Wrap] does not copy: in-place operations (Sort, Reverse, Clear, Copy
// destinations) modify the caller's slice, exactly as the arr functions do.
// Use [New] when the Array should own a private copy. Operations that produce
// new data (FindAll, Resize, ConvertAll) never alias the receiver.
//
// # Type-transforming operations
//
// Go methods cannot introduce type parameters or tighten the element
// constraint, so operations that change the element type or need comparable
// elements are package-level functions:
//
//	labels, _ := collections.ConvertAll(a, strconv.Itoa) // *Array[string]
//	j, _ := collections.LastIndexOf(a, 1)                // needs comparable T
//
// Package-level functions: [ConvertAll], [IndexOf], [LastIndexOf].
package collections
