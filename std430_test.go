package gpubytes

import (
	"bytes"
	"testing"
)

func TestStd430_ScalarArrayPacksTightly(t *testing.T) {
	buf := NewStd430()
	buf.WriteArray(Uint32(maxWord), Uint32(maxWord))
	buf.Align()

	want := seg([2]int{0xFF, 8})
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got  % x\nwant % x", buf.Bytes(), want)
	}
}

func TestStd430_ArrayElementStrideEqualsOwnAlignment(t *testing.T) {
	tests := []struct {
		name    string
		write   func(b *Std430Buffer)
		wantLen int
	}{
		{"scalars pack to 4", func(b *Std430Buffer) { b.WriteArray(Float32(1), Float32(2), Float32(3)) }, 12},
		{"vec2s pack to 8", func(b *Std430Buffer) { b.WriteArray(Vec2{1, 2}, Vec2{3, 4}) }, 16},
		{"vec3s round to 16", func(b *Std430Buffer) { b.WriteArray(SplatVec3(1), SplatVec3(2)) }, 32},
		{"vec4s pack to 16", func(b *Std430Buffer) { b.WriteArray(SplatVec4(1), SplatVec4(2)) }, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewStd430()
			tt.write(b)
			if b.Len() != tt.wantLen {
				t.Errorf("array occupies %d bytes, want %d", b.Len(), tt.wantLen)
			}
		})
	}
}

func TestStd430_MixedWritesShareOffsetRules(t *testing.T) {
	// Offset rules for single writes are layout-independent; only array
	// strides differ between the conventions.
	buf := NewStd430()
	buf.Write(Uint32(maxWord))
	buf.Write(SplatUVec3(maxWord))
	buf.Align()

	want := seg(
		[2]int{0xFF, 4},
		[2]int{0x00, 12},
		[2]int{0xFF, 12},
		[2]int{0x00, 4},
	)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got  % x\nwant % x", buf.Bytes(), want)
	}
}

func TestStd430_CompositeRecursion(t *testing.T) {
	light := pointLight{
		Position:  Vec3{1, 2, 3},
		Intensity: 2,
		Color:     Vec3{4, 5, 6},
	}

	buf := NewStd430()
	buf.Write(light).Align()
	if buf.Len() != 32 {
		t.Errorf("nested composite occupies %d bytes, want 32", buf.Len())
	}
	if buf.Alignment() != 16 {
		t.Errorf("alignment = %d, want 16", buf.Alignment())
	}
}

func TestStd430Buffer_AsStd430IsDeepCopy(t *testing.T) {
	b := NewStd430()
	b.Write(Uint32(7))

	snapshot := b.AsStd430()
	b.Write(Uint32(8))

	if snapshot.Len() != 4 {
		t.Errorf("snapshot length = %d after source mutation, want 4", snapshot.Len())
	}
	if b.Len() != 8 {
		t.Errorf("source length = %d, want 8", b.Len())
	}
}
