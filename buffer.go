package gpubytes

import "encoding/binary"

// gpuBuffer is the byte accumulator behind both layout facades. It owns
// all padding and offset arithmetic: an append-only byte sequence, a
// running alignment requirement, and the layout tag that selects the
// array-element rule.
//
// The running alignment never decreases across writes; it is updated on
// every write to the max of its current value and the incoming element's
// alignment. alignTo is the one exception: it hard-resets the alignment,
// which callers use to force final struct-level alignment.
type gpuBuffer struct {
	bytes     []byte
	alignment int
	layout    Layout
}

// writeRaw appends data at the smallest offset that is a multiple of
// align, inserting zero padding first. Pure arithmetic; cannot fail.
func (g *gpuBuffer) writeRaw(data []byte, align int) {
	if align > g.alignment {
		g.alignment = align
	}
	g.pad(align)
	g.bytes = append(g.bytes, data...)
}

// write appends an already-encoded value, padding to its alignment.
func (g *gpuBuffer) write(e *gpuBuffer) {
	g.writeRaw(e.bytes, e.alignment)
}

// writeArray appends a homogeneous run of encoded elements. Each element's
// own byte block is re-aligned per the active layout before it is appended
// as a whole unit, so consecutive elements occupy a fixed stride:
// a multiple of 16 under std140, the element's own alignment under std430.
func (g *gpuBuffer) writeArray(elems []*gpuBuffer) {
	for _, e := range elems {
		e.realign(g.layout)
		g.write(e)
	}
}

// realign pads the buffer's trailing bytes out to the array-element
// alignment of the given layout and adopts that alignment.
func (g *gpuBuffer) realign(layout Layout) {
	switch layout {
	case LayoutStd140:
		g.alignTo(roundUp(g.alignment, 16))
	case LayoutStd430:
		g.align()
	}
}

// align pads to the current running alignment.
func (g *gpuBuffer) align() {
	g.alignTo(g.alignment)
}

// alignTo pads to an explicit alignment and sets the running alignment to
// it regardless of the prior value.
func (g *gpuBuffer) alignTo(align int) {
	g.pad(align)
	g.alignment = align
}

// pad appends the zero bytes needed to bring the length up to a multiple
// of align. Alignments below 2 need no padding.
func (g *gpuBuffer) pad(align int) {
	if align < 2 {
		return
	}
	padding := (align - len(g.bytes)%align) % align
	g.bytes = appendZeros(g.bytes, padding)
}

// putWords appends 4-byte little-endian words with no padding and sets
// the alignment. Backs every primitive encoder.
func (g *gpuBuffer) putWords(align int, words []uint32) {
	for _, w := range words {
		g.bytes = binary.LittleEndian.AppendUint32(g.bytes, w)
	}
	g.alignment = align
}

// clone returns a deep copy so an encoded value can be handed to another
// buffer without aliasing this one.
func (g *gpuBuffer) clone() gpuBuffer {
	b := make([]byte, len(g.bytes))
	copy(b, g.bytes)
	return gpuBuffer{bytes: b, alignment: g.alignment, layout: g.layout}
}

// appendZeros appends n zero bytes to dst.
func appendZeros(dst []byte, n int) []byte {
	for i := 0; i < n; i++ {
		dst = append(dst, 0)
	}
	return dst
}

// roundUp returns the smallest multiple of m that is >= n.
func roundUp(n, m int) int {
	if m < 1 {
		return n
	}
	return (n + m - 1) / m * m
}
