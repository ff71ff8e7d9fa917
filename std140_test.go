package gpubytes

import (
	"bytes"
	"math"
	"testing"
)

const maxWord = math.MaxUint32

// seg builds an expected byte sequence from (byte, count) pairs.
func seg(pairs ...[2]int) []byte {
	var out []byte
	for _, p := range pairs {
		out = append(out, bytes.Repeat([]byte{byte(p[0])}, p[1])...)
	}
	return out
}

func TestStd140_Vec3ThenScalar(t *testing.T) {
	buf := NewStd140()
	buf.Write(SplatUVec3(maxWord))
	buf.Write(Uint32(maxWord))
	buf.Align()

	// The scalar lands in the vec3's trailing 4 bytes: 16 bytes, no padding.
	want := seg([2]int{0xFF, 16})
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got  % x\nwant % x", buf.Bytes(), want)
	}
}

func TestStd140_Vec3ThenVec3(t *testing.T) {
	buf := NewStd140()
	buf.Write(SplatUVec3(maxWord))
	buf.Write(SplatUVec3(maxWord))
	buf.Align()

	want := seg(
		[2]int{0xFF, 12}, // first vec3
		[2]int{0x00, 4},  // pad to 16
		[2]int{0xFF, 12}, // second vec3
		[2]int{0x00, 4},  // final align
	)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got  % x\nwant % x", buf.Bytes(), want)
	}
}

func TestStd140_ScalarThenVec3(t *testing.T) {
	buf := NewStd140()
	buf.Write(Uint32(maxWord))
	buf.Write(SplatUVec3(maxWord))
	buf.Align()

	want := seg(
		[2]int{0xFF, 4},  // scalar
		[2]int{0x00, 12}, // pad to the vec3's 16-byte boundary
		[2]int{0xFF, 12}, // vec3
		[2]int{0x00, 4},  // final align
	)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got  % x\nwant % x", buf.Bytes(), want)
	}
}

func TestStd140_ScalarArrayStride16(t *testing.T) {
	buf := NewStd140()
	buf.WriteArray(Uint32(maxWord), Uint32(maxWord))
	buf.Align()

	// Each scalar element is padded out to a 16-byte stride.
	want := seg(
		[2]int{0xFF, 4}, [2]int{0x00, 12},
		[2]int{0xFF, 4}, [2]int{0x00, 12},
	)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got  % x\nwant % x", buf.Bytes(), want)
	}
}

func TestStd140_ArrayElementStridesAreMultiplesOf16(t *testing.T) {
	tests := []struct {
		name  string
		write func(b *Std140Buffer)
		count int
	}{
		{"scalars", func(b *Std140Buffer) { b.WriteArray(Float32(1), Float32(2), Float32(3)) }, 3},
		{"vec2s", func(b *Std140Buffer) { b.WriteArray(Vec2{1, 2}, Vec2{3, 4}) }, 2},
		{"vec3s", func(b *Std140Buffer) { b.WriteArray(SplatVec3(1), SplatVec3(2)) }, 2},
		{"vec4s", func(b *Std140Buffer) { b.WriteArray(SplatVec4(1), SplatVec4(2)) }, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewStd140()
			tt.write(b)
			if b.Len()%16 != 0 || b.Len()/tt.count%16 != 0 {
				t.Errorf("array of %d elements occupies %d bytes; want a multiple-of-16 stride", tt.count, b.Len())
			}
		})
	}
}

type pointLight struct {
	Position  Vec3
	Intensity Float32
	Color     Vec3
}

func (l pointLight) AsStd140() *Std140Buffer {
	b := NewStd140()
	b.Write(l.Position).Write(l.Intensity).Write(l.Color)
	b.Align()
	return b
}

func (l pointLight) AsStd430() *Std430Buffer {
	b := NewStd430()
	b.Write(l.Position).Write(l.Intensity).Write(l.Color)
	b.Align()
	return b
}

func TestStd140_CompositeRecursion(t *testing.T) {
	light := pointLight{
		Position:  Vec3{1, 2, 3},
		Intensity: 0.5,
		Color:     Vec3{0.1, 0.2, 0.3},
	}

	enc := light.AsStd140()
	// position (12) + intensity in the trailing bytes (4) + color (12) + align (4).
	if enc.Len() != 32 {
		t.Fatalf("pointLight encodes to %d bytes, want 32", enc.Len())
	}
	if enc.Alignment() != 16 {
		t.Fatalf("pointLight alignment = %d, want 16", enc.Alignment())
	}

	// Two lights written into a parent buffer stay stride-aligned.
	buf := NewStd140()
	buf.Write(light).Write(light).Align()
	if buf.Len() != 64 {
		t.Errorf("two nested lights occupy %d bytes, want 64", buf.Len())
	}
}

func TestStd140Buffer_AsStd140IsDeepCopy(t *testing.T) {
	b := NewStd140()
	b.Write(Float32(1))

	snapshot := b.AsStd140()
	b.Write(SplatVec4(2))

	if snapshot.Len() != 4 {
		t.Errorf("snapshot length = %d after source mutation, want 4", snapshot.Len())
	}
	if b.Len() != 32 {
		t.Errorf("source length = %d, want 32", b.Len())
	}
}

func TestStd140_AlignToForcesStructAlignment(t *testing.T) {
	b := NewStd140()
	b.Write(Float32(1))
	b.AlignTo(16)

	if b.Len() != 16 {
		t.Errorf("AlignTo(16) padded to %d bytes, want 16", b.Len())
	}
	if b.Alignment() != 16 {
		t.Errorf("AlignTo(16) set alignment %d, want 16", b.Alignment())
	}
}
