package gpubytes

// RuntimeArray is a growable homogeneous sequence with a declared
// capacity: the upper bound on element count that sizes the GPU-side
// reservation. The reserved footprint is stride x capacity regardless of
// how many elements are actually populated; the unused tail is
// zero-filled. This mirrors WGSL runtime-sized arrays, whose storage must
// be reserved up front.
//
// T must be a value type implementing Std140 and/or Std430, matching the
// convention the array is encoded under. Encoding without a capacity, with
// more elements than the capacity, or with a T that lacks the required
// convention is a programmer error and panics: there is no other source
// of truth for the reserved size, and guessing would silently corrupt
// whatever data follows the array in the buffer.
type RuntimeArray[T any] struct {
	elems    []T
	capacity int
}

// NewRuntimeArray returns an empty array with the given declared capacity.
func NewRuntimeArray[T any](capacity int) *RuntimeArray[T] {
	return &RuntimeArray[T]{capacity: capacity}
}

// SetCapacity declares the element-count upper bound used to size the
// reserved footprint.
func (a *RuntimeArray[T]) SetCapacity(n int) {
	a.capacity = n
}

// Push appends elements to the populated portion of the array.
func (a *RuntimeArray[T]) Push(vals ...T) {
	a.elems = append(a.elems, vals...)
}

// Len returns the number of populated elements.
func (a *RuntimeArray[T]) Len() int {
	return len(a.elems)
}

// Cap returns the declared capacity.
func (a *RuntimeArray[T]) Cap() int {
	return a.capacity
}

// AsStd140 encodes the array with std140 element strides (rounded up to a
// multiple of 16). The resulting value's alignment is the rounded element
// alignment, 16 for every base type.
func (a *RuntimeArray[T]) AsStd140() *Std140Buffer {
	buf := a.encode(LayoutStd140, func(v T) *gpuBuffer {
		s, ok := any(v).(Std140)
		if !ok {
			panic("gpubytes: RuntimeArray element type does not implement Std140")
		}
		return &s.AsStd140().buf
	})
	return &Std140Buffer{buf: buf}
}

// AsStd430 encodes the array with std430 element strides (the element's
// own alignment-rounded size). The resulting value's alignment is the
// element's alignment.
func (a *RuntimeArray[T]) AsStd430() *Std430Buffer {
	buf := a.encode(LayoutStd430, func(v T) *gpuBuffer {
		s, ok := any(v).(Std430)
		if !ok {
			panic("gpubytes: RuntimeArray element type does not implement Std430")
		}
		return &s.AsStd430().buf
	})
	return &Std430Buffer{buf: buf}
}

// encode lays out the populated elements followed by the zero-filled
// remainder of the reservation. The stride is probed from the zero value
// of T so the footprint is well defined even with no elements populated.
func (a *RuntimeArray[T]) encode(layout Layout, encodeElem func(T) *gpuBuffer) gpuBuffer {
	if a.capacity <= 0 {
		panic("gpubytes: RuntimeArray encoded without a declared capacity")
	}
	if len(a.elems) > a.capacity {
		panic("gpubytes: RuntimeArray holds more elements than its declared capacity")
	}

	var zero T
	probe := encodeElem(zero)
	probe.realign(layout)
	stride := len(probe.bytes)

	out := gpuBuffer{layout: layout}
	encs := make([]*gpuBuffer, len(a.elems))
	for i, e := range a.elems {
		encs[i] = encodeElem(e)
	}
	out.writeArray(encs)

	out.bytes = appendZeros(out.bytes, stride*a.capacity-len(out.bytes))
	out.alignment = probe.alignment

	Logger().Debug("encoded runtime array",
		"layout", layout.String(),
		"len", len(a.elems),
		"capacity", a.capacity,
		"stride", stride,
	)
	return out
}
