package gpubytes

// Layout identifies one of the two standardized GPU buffer layout
// conventions. It selects which array-element alignment rule the
// accumulator applies; scalar, vector, and matrix base alignments are
// identical across both.
type Layout uint32

const (
	// LayoutStd140 is the uniform-buffer convention: array element strides
	// are rounded up to a multiple of 16 bytes.
	LayoutStd140 Layout = iota

	// LayoutStd430 is the storage-buffer convention: array elements are
	// padded only to their own base alignment.
	LayoutStd430
)

// String returns a human-readable name for the layout convention.
func (l Layout) String() string {
	switch l {
	case LayoutStd140:
		return "std140"
	case LayoutStd430:
		return "std430"
	default:
		return "Unknown"
	}
}
