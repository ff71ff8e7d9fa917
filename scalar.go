package gpubytes

import "math"

// Base alignment table shared by both conventions (bytes).
const (
	alignScalar = 4
	alignVec2   = 8
	alignVec3   = 16
	alignVec4   = 16
)

// Named 4-byte scalar types. Methods cannot be declared on builtins, so
// the encodable scalars are thin named wrappers; convert at the call site
// (gpubytes.Float32(x)).
type (
	// Float32 is an encodable 32-bit float scalar.
	Float32 float32
	// Int32 is an encodable 32-bit signed integer scalar.
	Int32 int32
	// Uint32 is an encodable 32-bit unsigned integer scalar.
	Uint32 uint32
)

// rawStd140 builds a std140 encoded value directly from little-endian
// words and a base alignment. Every primitive encoder funnels through
// here; per-kind differences are only the word list and the alignment
// constant.
func rawStd140(align int, words ...uint32) *Std140Buffer {
	b := NewStd140()
	b.buf.putWords(align, words)
	return b
}

// rawStd430 is the std430 counterpart of rawStd140.
func rawStd430(align int, words ...uint32) *Std430Buffer {
	b := NewStd430()
	b.buf.putWords(align, words)
	return b
}

// AsStd140 returns the scalar's layout bytes: 4 bytes, alignment 4.
func (f Float32) AsStd140() *Std140Buffer {
	return rawStd140(alignScalar, math.Float32bits(float32(f)))
}

// AsStd430 returns the scalar's layout bytes: 4 bytes, alignment 4.
func (f Float32) AsStd430() *Std430Buffer {
	return rawStd430(alignScalar, math.Float32bits(float32(f)))
}

// AsStd140 returns the scalar's layout bytes: 4 bytes, alignment 4.
func (i Int32) AsStd140() *Std140Buffer {
	return rawStd140(alignScalar, uint32(i))
}

// AsStd430 returns the scalar's layout bytes: 4 bytes, alignment 4.
func (i Int32) AsStd430() *Std430Buffer {
	return rawStd430(alignScalar, uint32(i))
}

// AsStd140 returns the scalar's layout bytes: 4 bytes, alignment 4.
func (u Uint32) AsStd140() *Std140Buffer {
	return rawStd140(alignScalar, uint32(u))
}

// AsStd430 returns the scalar's layout bytes: 4 bytes, alignment 4.
func (u Uint32) AsStd430() *Std430Buffer {
	return rawStd430(alignScalar, uint32(u))
}
