package gpubytes

// Std430 is the capability implemented by every value that can produce
// its std430 layout bytes. A type may implement Std430, Std140, or both;
// the two conventions differ only in array-element padding, so most
// implementations are structurally identical.
type Std430 interface {
	AsStd430() *Std430Buffer
}

// Std430Buffer accumulates values laid out per the std430 storage-buffer
// convention. A buffer is built by sequential Write/Align calls and
// consumed once via Bytes; it is not safe for concurrent mutation.
type Std430Buffer struct {
	buf gpuBuffer
}

// NewStd430 returns an empty std430-tagged buffer.
func NewStd430() *Std430Buffer {
	return &Std430Buffer{buf: gpuBuffer{layout: LayoutStd430}}
}

// Write encodes v and appends it at the next offset that is a multiple of
// its base alignment. Returns the buffer for chaining.
func (b *Std430Buffer) Write(v Std430) *Std430Buffer {
	b.buf.write(&v.AsStd430().buf)
	return b
}

// WriteArray appends a homogeneous run of values with std430 array
// semantics: each element is padded only to its own base alignment, so
// scalars pack tightly.
func (b *Std430Buffer) WriteArray(vs ...Std430) *Std430Buffer {
	elems := make([]*gpuBuffer, len(vs))
	for i, v := range vs {
		elems[i] = &v.AsStd430().buf
	}
	b.buf.writeArray(elems)
	return b
}

// Align pads the buffer out to its running alignment. Call once after the
// last write so the total size is a valid GPU-side array stride.
func (b *Std430Buffer) Align() *Std430Buffer {
	b.buf.align()
	return b
}

// AlignTo pads to an explicit byte boundary and resets the running
// alignment to it.
func (b *Std430Buffer) AlignTo(align int) *Std430Buffer {
	b.buf.alignTo(align)
	return b
}

// Bytes returns the accumulated bytes. The slice is the buffer's backing
// store, not a copy; treat it as read-only.
func (b *Std430Buffer) Bytes() []byte {
	return b.buf.bytes
}

// Len returns the number of accumulated bytes.
func (b *Std430Buffer) Len() int {
	return len(b.buf.bytes)
}

// Alignment returns the buffer's running alignment: the max base
// alignment of everything written so far.
func (b *Std430Buffer) Alignment() int {
	return b.buf.alignment
}

// AsStd430 returns a deep copy, letting a built buffer be written into
// another buffer as a value. This is how composite encoding nests.
func (b *Std430Buffer) AsStd430() *Std430Buffer {
	return &Std430Buffer{buf: b.buf.clone()}
}
