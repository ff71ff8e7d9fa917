// Package gpubytes packs host-side values into byte buffers that follow
// the std140 and std430 GPU memory-layout conventions used for shader
// uniform and storage buffers.
//
// # Overview
//
// GPU shader compilers assume fixed offset, padding, and stride rules when
// reading uniform and storage buffers. gpubytes produces byte sequences
// that match those rules bit-for-bit, so the result can be uploaded
// directly into GPU-visible memory. The library is a pure, synchronous
// encoding engine: no GPU API calls, no shader compilation, no I/O.
//
// # Quick Start
//
//	import gpubytes "github.com/ambrosia13/gpu-bytes"
//
//	// Pack a uniform block: a mat4, a vec3, and a float.
//	buf := gpubytes.NewStd140()
//	buf.Write(viewProj)
//	buf.Write(gpubytes.Vec3{X: 1, Y: 2, Z: 3})
//	buf.Write(gpubytes.Float32(0.5))
//	buf.Align()
//
//	upload(buf.Bytes()) // hand off to the GPU API of your choice
//
// # Layout Rules
//
// Both conventions share the base alignment table: 4-byte scalars align
// to 4, two-component vectors to 8, three- and four-component vectors to
// 16. Matrices encode column-major, one column vector at a time, so every
// column sits on a 16-byte boundary. The conventions differ in how array
// elements are padded:
//
//   - std140: every array element stride is rounded up to a multiple of 16.
//   - std430: array elements are padded only to their own base alignment.
//
// Call Align once after the last write so the buffer's total size is a
// multiple of its alignment; GPU-side arrays of the packed struct use the
// buffer size as their per-element stride.
//
// # Composite Types
//
// User types participate by implementing the Std140 and/or Std430
// interfaces: write the fields into a fresh buffer of the matching layout
// and return it. Nesting composes recursively.
//
// # Dynamically Sized Arrays
//
// RuntimeArray carries a declared capacity separate from its populated
// length. The reserved footprint is stride times capacity, with the unused
// tail zero-filled, so the GPU-side reservation never depends on how many
// elements happen to be present. Encoding without a capacity is a
// programmer error and panics.
//
// # Uploading
//
// The halbuf subpackage bridges encoded buffers to gogpu/wgpu HAL
// resources (buffer creation, upload, bind group entries). The core
// package never touches a GPU.
package gpubytes

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
