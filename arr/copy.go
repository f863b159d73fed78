package arr

import (
	"fmt"
	"reflect"
)

// Copy copies length elements from src into dst, which may be a slice of any
// element type. [SourceIndex] and [DestIndex] position the copy (default 0).
//
// An element is accepted when its type is assignable to the destination
// element type, when it is a lossless numeric widening (int32 → int64,
// float32 → float64, uint16 → int32, ...), or when src holds interface
// values whose dynamic values satisfy one of those rules. Overlapping
// regions of the same slice are copied as if through a temporary buffer.
//
// Type and range checks that depend only on the element types run before
// anything is written. A per-element failure on interface sources stops the
// copy with [ErrTypeMismatch], leaving the elements already copied in place;
// use [ConstrainedCopy] when that is not acceptable.
func Copy[T any](src []T, dst any, length int, opts ...Option) error {
	o := collect(opts)
	d, err := prepareCopy(src, o.srcIndex, dst, o.dstIndex, length)
	if err != nil {
		return err
	}
	if d.same {
		d.copySame()
		return nil
	}
	convert, err := plan(reflect.TypeFor[T](), d.dst.Type().Elem(), true)
	if err != nil {
		return err
	}
	for i, item := range d.src {
		v, ok := convert(reflect.ValueOf(&item).Elem())
		if !ok {
			return mismatch(d.srcIndex+i, item, d.dst.Type().Elem())
		}
		d.dst.Index(d.dstIndex + i).Set(v)
	}
	return nil
}

// ConstrainedCopy copies length elements from src[srcIndex:] into
// dst[dstIndex:], where dst is a slice of any element type.
//
// Unlike [Copy] it performs no numeric widening, and it is all-or-nothing:
// every element is checked against the destination element type before the
// first write, so on error dst is left exactly as it was.
func ConstrainedCopy[T any](src []T, srcIndex int, dst any, dstIndex, length int) error {
	d, err := prepareCopy(src, srcIndex, dst, dstIndex, length)
	if err != nil {
		return err
	}
	if d.same {
		d.copySame()
		return nil
	}
	convert, err := plan(reflect.TypeFor[T](), d.dst.Type().Elem(), false)
	if err != nil {
		return err
	}
	staged := make([]reflect.Value, len(d.src))
	for i, item := range d.src {
		v, ok := convert(reflect.ValueOf(&item).Elem())
		if !ok {
			return mismatch(d.srcIndex+i, item, d.dst.Type().Elem())
		}
		staged[i] = v
	}
	for i, v := range staged {
		d.dst.Index(d.dstIndex + i).Set(v)
	}
	return nil
}

type copyJob[T any] struct {
	src      []T
	srcIndex int
	dst      reflect.Value
	dstIndex int
	same     bool
}

func prepareCopy[T any](src []T, srcIndex int, dst any, dstIndex, length int) (copyJob[T], error) {
	if dst == nil {
		return copyJob[T]{}, nilArg("destination")
	}
	dv := reflect.ValueOf(dst)
	if dv.Kind() != reflect.Slice {
		return copyJob[T]{}, fmt.Errorf("%w: destination is %s, not a slice", ErrTypeMismatch, dv.Type())
	}
	if err := checkRange(len(src), srcIndex, length); err != nil {
		return copyJob[T]{}, fmt.Errorf("source: %w", err)
	}
	if err := checkRange(dv.Len(), dstIndex, length); err != nil {
		return copyJob[T]{}, fmt.Errorf("destination: %w", err)
	}
	return copyJob[T]{
		src:      src[srcIndex : srcIndex+length],
		srcIndex: srcIndex,
		dst:      dv,
		dstIndex: dstIndex,
		same:     dv.Type().Elem() == reflect.TypeFor[T](),
	}, nil
}

// copySame copies between slices of identical element type. reflect.Copy
// has memmove semantics, so overlapping windows are safe.
func (j copyJob[T]) copySame() {
	reflect.Copy(j.dst.Slice(j.dstIndex, j.dstIndex+len(j.src)), reflect.ValueOf(j.src))
}

// plan returns a function that turns a source element of type from into a
// value storable in a slot of type to. It fails up front when no element of
// type from could ever be stored.
func plan(from, to reflect.Type, widen bool) (func(reflect.Value) (reflect.Value, bool), error) {
	switch {
	case from.AssignableTo(to):
		return func(v reflect.Value) (reflect.Value, bool) { return v, true }, nil
	case widen && widens(from, to):
		return func(v reflect.Value) (reflect.Value, bool) { return v.Convert(to), true }, nil
	case from.Kind() == reflect.Interface:
		return func(v reflect.Value) (reflect.Value, bool) { return unbox(v, to, widen) }, nil
	}
	return nil, fmt.Errorf("%w: cannot store %s in %s", ErrTypeMismatch, from, to)
}

// unbox extracts the dynamic value held by the interface value v.
func unbox(v reflect.Value, to reflect.Type, widen bool) (reflect.Value, bool) {
	if v.IsNil() {
		if nilable(to.Kind()) {
			return reflect.Zero(to), true
		}
		return reflect.Value{}, false
	}
	e := v.Elem()
	switch {
	case e.Type().AssignableTo(to):
		return e, true
	case widen && widens(e.Type(), to):
		return e.Convert(to), true
	}
	return reflect.Value{}, false
}

func nilable(k reflect.Kind) bool {
	switch k {
	case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	}
	return false
}

type numClass int

const (
	notNumeric numClass = iota
	signed
	unsigned
	float
)

func classify(k reflect.Kind) numClass {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signed
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return unsigned
	case reflect.Float32, reflect.Float64:
		return float
	}
	return notNumeric
}

// widens reports whether every value of type from converts to type to
// without loss.
func widens(from, to reflect.Type) bool {
	fc, tc := classify(from.Kind()), classify(to.Kind())
	if fc == notNumeric || tc == notNumeric {
		return false
	}
	fb, tb := from.Bits(), to.Bits()
	switch {
	case fc == tc:
		return tb >= fb
	case fc == unsigned && tc == signed:
		return tb > fb
	case tc == float && fc != float:
		// integers convert exactly while they fit in the mantissa
		mantissa := 24
		if tb == 64 {
			mantissa = 53
		}
		return fb < mantissa
	}
	return false
}

func mismatch(index int, item any, to reflect.Type) error {
	return fmt.Errorf("%w: source element %d (%T) cannot be stored in %s",
		ErrTypeMismatch, index, item, to)
}
