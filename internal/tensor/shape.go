package tensor

import (
	"fmt"
	"strings"
)

// DimNone marks a dimension whose extent is unknown until runtime,
// most commonly the batch dimension of a network input.
const DimNone = -1

// Shape represents the dimensions of a declared tensor.
//
// A leading DimNone entry models the free batch dimension that pretrained
// architectures publish, e.g. (None, 224, 224, 3) for an ImageNet input.
type Shape []int

// NumElements returns the total number of elements in the tensor.
//
// Unknown dimensions are excluded from the product, so the result for a
// batched shape is the per-sample element count.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		if dim == DimNone {
			continue
		}
		n *= dim
	}
	return n
}

// Validate checks that every known dimension is positive.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim != DimNone && dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0 or DimNone)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// WithBatch returns the shape prefixed with a free batch dimension.
func (s Shape) WithBatch() Shape {
	batched := make(Shape, 0, len(s)+1)
	batched = append(batched, DimNone)
	return append(batched, s...)
}

// String renders the shape as a tuple, with unknown dimensions printed
// as None: (None, 224, 224, 3). This is the format pretrained-model
// tooling conventionally reports, and it is what inspection output uses.
func (s Shape) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, dim := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		if dim == DimNone {
			b.WriteString("None")
		} else {
			fmt.Fprintf(&b, "%d", dim)
		}
	}
	// A 1-tuple keeps the trailing comma: (25088,).
	if len(s) == 1 {
		b.WriteByte(',')
	}
	b.WriteByte(')')
	return b.String()
}
