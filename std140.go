package gpubytes

// Std140 is the capability implemented by every value that can produce
// its std140 layout bytes: base numeric scalars, vectors, matrices, and
// user composites.
//
// Composite types implement Std140 by writing their fields into a fresh
// buffer and returning it:
//
//	type PointLight struct {
//		Position  gpubytes.Vec3
//		Intensity gpubytes.Float32
//		Color     gpubytes.Vec3
//	}
//
//	func (l PointLight) AsStd140() *gpubytes.Std140Buffer {
//		b := gpubytes.NewStd140()
//		b.Write(l.Position).Write(l.Intensity).Write(l.Color)
//		b.Align()
//		return b
//	}
type Std140 interface {
	AsStd140() *Std140Buffer
}

// Std140Buffer accumulates values laid out per the std140 uniform-buffer
// convention. A buffer is built by sequential Write/Align calls and
// consumed once via Bytes; it is not safe for concurrent mutation.
type Std140Buffer struct {
	buf gpuBuffer
}

// NewStd140 returns an empty std140-tagged buffer.
func NewStd140() *Std140Buffer {
	return &Std140Buffer{buf: gpuBuffer{layout: LayoutStd140}}
}

// Write encodes v and appends it at the next offset that is a multiple of
// its base alignment. Returns the buffer for chaining.
func (b *Std140Buffer) Write(v Std140) *Std140Buffer {
	b.buf.write(&v.AsStd140().buf)
	return b
}

// WriteArray appends a homogeneous run of values with std140 array
// semantics: every element's stride is rounded up to a multiple of 16,
// regardless of the element's own size.
func (b *Std140Buffer) WriteArray(vs ...Std140) *Std140Buffer {
	elems := make([]*gpuBuffer, len(vs))
	for i, v := range vs {
		elems[i] = &v.AsStd140().buf
	}
	b.buf.writeArray(elems)
	return b
}

// Align pads the buffer out to its running alignment. Call once after the
// last write so the total size is a valid GPU-side array stride.
func (b *Std140Buffer) Align() *Std140Buffer {
	b.buf.align()
	return b
}

// AlignTo pads to an explicit byte boundary and resets the running
// alignment to it.
func (b *Std140Buffer) AlignTo(align int) *Std140Buffer {
	b.buf.alignTo(align)
	return b
}

// Bytes returns the accumulated bytes. The slice is the buffer's backing
// store, not a copy; treat it as read-only.
func (b *Std140Buffer) Bytes() []byte {
	return b.buf.bytes
}

// Len returns the number of accumulated bytes.
func (b *Std140Buffer) Len() int {
	return len(b.buf.bytes)
}

// Alignment returns the buffer's running alignment: the max base
// alignment of everything written so far.
func (b *Std140Buffer) Alignment() int {
	return b.buf.alignment
}

// AsStd140 returns a deep copy, letting a built buffer be written into
// another buffer as a value. This is how composite encoding nests.
func (b *Std140Buffer) AsStd140() *Std140Buffer {
	return &Std140Buffer{buf: b.buf.clone()}
}
