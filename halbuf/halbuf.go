// Package halbuf bridges encoded gpu-bytes buffers to gogpu/wgpu HAL
// resources: buffer creation and upload, plus bind group layout and
// binding entries sized from the encoded bytes.
//
// The package never initializes a GPU. Callers supply an already-created
// hal.Device and hal.Queue; acquiring them belongs to the surrounding
// graphics application.
package halbuf

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	gpubytes "github.com/ambrosia13/gpu-bytes"
)

// Source is any encoded buffer whose bytes are ready for upload.
// *gpubytes.Std140Buffer and *gpubytes.Std430Buffer both satisfy it.
type Source interface {
	Bytes() []byte
	Alignment() int
}

// CreateUniformBuffer creates a HAL buffer flagged for uniform use and
// uploads src into it. std140-encoded sources are the expected input for
// uniform bindings.
func CreateUniformBuffer(device hal.Device, queue hal.Queue, label string, src Source) (hal.Buffer, error) {
	return createAndUpload(device, queue, label, src.Bytes(),
		gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
}

// CreateStorageBuffer creates a HAL buffer flagged for storage use and
// uploads src into it. std430-encoded sources are the expected input for
// storage bindings.
func CreateStorageBuffer(device hal.Device, queue hal.Queue, label string, src Source) (hal.Buffer, error) {
	return createAndUpload(device, queue, label, src.Bytes(),
		gputypes.BufferUsageStorage|gputypes.BufferUsageCopyDst)
}

// createAndUpload creates a GPU buffer and uploads data.
func createAndUpload(device hal.Device, queue hal.Queue, label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	queue.WriteBuffer(buf, 0, data)

	gpubytes.Logger().Debug("uploaded buffer",
		"label", label,
		"size", len(data),
	)
	return buf, nil
}

// UniformLayoutEntry returns a bind group layout entry for a uniform
// buffer binding, with MinBindingSize taken from the encoded source.
// Visibility defaults to vertex|fragment; adjust the returned entry for
// compute-only bindings.
func UniformLayoutEntry(binding uint32, src Source) gputypes.BindGroupLayoutEntry {
	return gputypes.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
		Buffer: &gputypes.BufferBindingLayout{
			Type:           gputypes.BufferBindingTypeUniform,
			MinBindingSize: uint64(len(src.Bytes())),
		},
	}
}

// StorageLayoutEntry returns a bind group layout entry for a storage
// buffer binding, with MinBindingSize taken from the encoded source.
// Visibility defaults to compute; adjust the returned entry as needed.
func StorageLayoutEntry(binding uint32, readOnly bool, src Source) gputypes.BindGroupLayoutEntry {
	bindingType := gputypes.BufferBindingTypeStorage
	if readOnly {
		bindingType = gputypes.BufferBindingTypeReadOnlyStorage
	}
	return gputypes.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: gputypes.ShaderStageCompute,
		Buffer: &gputypes.BufferBindingLayout{
			Type:           bindingType,
			MinBindingSize: uint64(len(src.Bytes())),
		},
	}
}

// BindingEntry returns a bind group entry pointing a binding slot at the
// whole of buf, sized from the encoded source that was uploaded into it.
func BindingEntry(binding uint32, buf hal.Buffer, src Source) gputypes.BindGroupEntry {
	return gputypes.BindGroupEntry{
		Binding: binding,
		Resource: gputypes.BufferBinding{
			Buffer: buf.NativeHandle(),
			Offset: 0,
			Size:   uint64(len(src.Bytes())),
		},
	}
}
