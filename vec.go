package gpubytes

import "math"

// GPU vector types. These are layout carriers, not a math library: each
// encodes its in-memory bit pattern as little-endian 4-byte components
// with the base alignment from the shared table (2-component vectors
// align to 8, 3- and 4-component vectors to 16).

// Vec2 is a 2-component float32 vector.
type Vec2 struct {
	X, Y float32
}

// Vec3 is a 3-component float32 vector.
// Its base alignment is 16 but its size is 12; the following field in a
// packed struct may land in the trailing 4 bytes if its alignment allows.
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 is a 4-component float32 vector.
type Vec4 struct {
	X, Y, Z, W float32
}

// IVec2 is a 2-component int32 vector.
type IVec2 struct {
	X, Y int32
}

// IVec3 is a 3-component int32 vector.
type IVec3 struct {
	X, Y, Z int32
}

// IVec4 is a 4-component int32 vector.
type IVec4 struct {
	X, Y, Z, W int32
}

// UVec2 is a 2-component uint32 vector.
type UVec2 struct {
	X, Y uint32
}

// UVec3 is a 3-component uint32 vector.
type UVec3 struct {
	X, Y, Z uint32
}

// UVec4 is a 4-component uint32 vector.
type UVec4 struct {
	X, Y, Z, W uint32
}

// SplatVec2 returns a Vec2 with every component set to s.
func SplatVec2(s float32) Vec2 { return Vec2{s, s} }

// SplatVec3 returns a Vec3 with every component set to s.
func SplatVec3(s float32) Vec3 { return Vec3{s, s, s} }

// SplatVec4 returns a Vec4 with every component set to s.
func SplatVec4(s float32) Vec4 { return Vec4{s, s, s, s} }

// SplatUVec3 returns a UVec3 with every component set to s.
func SplatUVec3(s uint32) UVec3 { return UVec3{s, s, s} }

func (v Vec2) AsStd140() *Std140Buffer {
	return rawStd140(alignVec2, math.Float32bits(v.X), math.Float32bits(v.Y))
}

func (v Vec2) AsStd430() *Std430Buffer {
	return rawStd430(alignVec2, math.Float32bits(v.X), math.Float32bits(v.Y))
}

func (v Vec3) AsStd140() *Std140Buffer {
	return rawStd140(alignVec3, math.Float32bits(v.X), math.Float32bits(v.Y), math.Float32bits(v.Z))
}

func (v Vec3) AsStd430() *Std430Buffer {
	return rawStd430(alignVec3, math.Float32bits(v.X), math.Float32bits(v.Y), math.Float32bits(v.Z))
}

func (v Vec4) AsStd140() *Std140Buffer {
	return rawStd140(alignVec4, math.Float32bits(v.X), math.Float32bits(v.Y), math.Float32bits(v.Z), math.Float32bits(v.W))
}

func (v Vec4) AsStd430() *Std430Buffer {
	return rawStd430(alignVec4, math.Float32bits(v.X), math.Float32bits(v.Y), math.Float32bits(v.Z), math.Float32bits(v.W))
}

func (v IVec2) AsStd140() *Std140Buffer {
	return rawStd140(alignVec2, uint32(v.X), uint32(v.Y))
}

func (v IVec2) AsStd430() *Std430Buffer {
	return rawStd430(alignVec2, uint32(v.X), uint32(v.Y))
}

func (v IVec3) AsStd140() *Std140Buffer {
	return rawStd140(alignVec3, uint32(v.X), uint32(v.Y), uint32(v.Z))
}

func (v IVec3) AsStd430() *Std430Buffer {
	return rawStd430(alignVec3, uint32(v.X), uint32(v.Y), uint32(v.Z))
}

func (v IVec4) AsStd140() *Std140Buffer {
	return rawStd140(alignVec4, uint32(v.X), uint32(v.Y), uint32(v.Z), uint32(v.W))
}

func (v IVec4) AsStd430() *Std430Buffer {
	return rawStd430(alignVec4, uint32(v.X), uint32(v.Y), uint32(v.Z), uint32(v.W))
}

func (v UVec2) AsStd140() *Std140Buffer {
	return rawStd140(alignVec2, v.X, v.Y)
}

func (v UVec2) AsStd430() *Std430Buffer {
	return rawStd430(alignVec2, v.X, v.Y)
}

func (v UVec3) AsStd140() *Std140Buffer {
	return rawStd140(alignVec3, v.X, v.Y, v.Z)
}

func (v UVec3) AsStd430() *Std430Buffer {
	return rawStd430(alignVec3, v.X, v.Y, v.Z)
}

func (v UVec4) AsStd140() *Std140Buffer {
	return rawStd140(alignVec4, v.X, v.Y, v.Z, v.W)
}

func (v UVec4) AsStd430() *Std430Buffer {
	return rawStd430(alignVec4, v.X, v.Y, v.Z, v.W)
}
