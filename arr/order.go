package arr

import (
	"cmp"
	"fmt"
	"reflect"
)

// Comparer is implemented by element types that define their own natural
// order. Compare returns a negative number, zero or a positive number when
// the receiver sorts before, equal to or after other. time.Time satisfies
// Comparer[time.Time].
type Comparer[T any] interface {
	Compare(other T) int
}

// orderError is raised from inside a comparison over interface elements and
// converted back into an error by recoverOrder.
type orderError struct{ err error }

func recoverOrder(err *error) {
	if r := recover(); r != nil {
		oe, ok := r.(orderError)
		if !ok {
			panic(r)
		}
		*err = oe.err
	}
}

// resolveCompare returns compare, or the natural order of T when compare is
// nil.
func resolveCompare[T any](compare func(a, b T) int) (func(a, b T) int, error) {
	if compare != nil {
		return compare, nil
	}
	return naturalOrder[T]()
}

func naturalOrder[T any]() (func(a, b T) int, error) {
	var zero T
	switch any(zero).(type) {
	case int:
		return any(cmp.Compare[int]).(func(a, b T) int), nil
	case int64:
		return any(cmp.Compare[int64]).(func(a, b T) int), nil
	case uint:
		return any(cmp.Compare[uint]).(func(a, b T) int), nil
	case float64:
		return any(cmp.Compare[float64]).(func(a, b T) int), nil
	case string:
		return any(cmp.Compare[string]).(func(a, b T) int), nil
	}

	t := reflect.TypeFor[T]()
	if t.Implements(reflect.TypeFor[Comparer[T]]()) {
		return func(a, b T) int {
			return any(a).(Comparer[T]).Compare(b)
		}, nil
	}
	if t.Kind() == reflect.Interface {
		return func(a, b T) int { return dynamicCompare(any(a), any(b)) }, nil
	}
	if ordered(t.Kind()) {
		return func(a, b T) int {
			c, _ := kindCompare(reflect.ValueOf(a), reflect.ValueOf(b))
			return c
		}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrIncomparable, t)
}

// dynamicCompare orders two values held in an interface. Nil sorts first.
// Values of different dynamic types, or of a type without natural order,
// raise an orderError.
func dynamicCompare(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		panic(orderError{fmt.Errorf("%w: cannot compare %s with %s",
			ErrIncomparable, va.Type(), vb.Type())})
	}
	if m := va.MethodByName("Compare"); m.IsValid() {
		mt := m.Type()
		if mt.NumIn() == 1 && mt.NumOut() == 1 &&
			mt.In(0) == va.Type() && mt.Out(0).Kind() == reflect.Int {
			return int(m.Call([]reflect.Value{vb})[0].Int())
		}
	}
	if c, ok := kindCompare(va, vb); ok {
		return c
	}
	panic(orderError{fmt.Errorf("%w: %s", ErrIncomparable, va.Type())})
}

func ordered(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.String, reflect.Bool:
		return true
	}
	return false
}

// kindCompare compares two values of the same ordered kind.
func kindCompare(a, b reflect.Value) (int, bool) {
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint()), true
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float()), true
	case reflect.String:
		return cmp.Compare(a.String(), b.String()), true
	case reflect.Bool:
		x, y := a.Bool(), b.Bool()
		switch {
		case x == y:
			return 0, true
		case !x:
			return -1, true
		default:
			return 1, true
		}
	}
	return 0, false
}

// probe runs a best-effort consistency check of compare over items: every
// element must equal itself, and its ordering against a pivot must be
// antisymmetric. The pivot is the first non-nil element, so a leading nil
// interface value cannot hide elements of differing dynamic types.
func probe[T any](items []T, compare func(a, b T) int) error {
	pivot := -1
	for i, item := range items {
		if any(item) != nil {
			pivot = i
			break
		}
	}
	for i, item := range items {
		if compare(item, item) != 0 {
			return fmt.Errorf("%w: element %d does not compare equal to itself",
				ErrInvalidComparer, i)
		}
		if pivot < 0 || i == pivot {
			continue
		}
		if sign(compare(items[pivot], item)) != -sign(compare(item, items[pivot])) {
			return fmt.Errorf("%w: elements %d and %d are not ordered symmetrically",
				ErrInvalidComparer, pivot, i)
		}
	}
	return nil
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
