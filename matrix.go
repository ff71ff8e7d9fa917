package gpubytes

// Mat3 is a 3x3 float32 matrix stored flat in column-major order
// (OpenGL/WebGPU convention): element (row r, column c) is m[c*3+r].
//
// It encodes as three consecutive column-vector writes. Each column is a
// Vec3 with base alignment 16, so interior columns are padded out to
// 16-byte boundaries and the matrix body spans 44 bytes; the trailing
// 4 bytes of padding appear when the matrix is followed by another
// 16-aligned value or re-aligned as an array element.
type Mat3 [9]float32

// Mat3Identity returns the 3x3 identity matrix.
func Mat3Identity() Mat3 {
	var m Mat3
	m[0], m[4], m[8] = 1, 1, 1
	return m
}

// Col returns column i as a Vec3.
func (m Mat3) Col(i int) Vec3 {
	return Vec3{X: m[i*3], Y: m[i*3+1], Z: m[i*3+2]}
}

// AsStd140 encodes the matrix as columns 0..2, each written exactly once,
// in order.
func (m Mat3) AsStd140() *Std140Buffer {
	b := NewStd140()
	for i := range 3 {
		b.Write(m.Col(i))
	}
	return b
}

// AsStd430 encodes the matrix as columns 0..2, each written exactly once,
// in order.
func (m Mat3) AsStd430() *Std430Buffer {
	b := NewStd430()
	for i := range 3 {
		b.Write(m.Col(i))
	}
	return b
}

// Mat4 is a 4x4 float32 matrix stored flat in column-major order:
// element (row r, column c) is m[c*4+r].
//
// It encodes as four consecutive column-vector writes; columns are Vec4s,
// so the matrix packs to exactly 64 bytes with no padding.
type Mat4 [16]float32

// Mat4Identity returns the 4x4 identity matrix.
func Mat4Identity() Mat4 {
	var m Mat4
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	return m
}

// Col returns column i as a Vec4.
func (m Mat4) Col(i int) Vec4 {
	return Vec4{X: m[i*4], Y: m[i*4+1], Z: m[i*4+2], W: m[i*4+3]}
}

// AsStd140 encodes the matrix as columns 0..3, each written exactly once,
// in order.
func (m Mat4) AsStd140() *Std140Buffer {
	b := NewStd140()
	for i := range 4 {
		b.Write(m.Col(i))
	}
	return b
}

// AsStd430 encodes the matrix as columns 0..3, each written exactly once,
// in order.
func (m Mat4) AsStd430() *Std430Buffer {
	b := NewStd430()
	for i := range 4 {
		b.Write(m.Col(i))
	}
	return b
}
