package nn

import (
	"fmt"

	"github.com/netscope-ml/netscope/internal/tensor"
)

// Flatten declares the reshape of all non-batch dimensions into one.
//
// Input shape:  [batch, d1, ..., dn]
// Output shape: [batch, d1 * ... * dn]
//
// All non-batch dimensions must be known, since the flattened extent is
// part of the geometry downstream Dense layers resolve against.
type Flatten struct {
	name string

	outputShape tensor.Shape
}

// NewFlatten creates a flatten declaration.
func NewFlatten(name string) *Flatten {
	if name == "" {
		panic("flatten: empty name")
	}
	return &Flatten{name: name}
}

// Name returns the layer name.
func (f *Flatten) Name() string { return f.name }

// Class returns "Flatten".
func (f *Flatten) Class() string { return "Flatten" }

// DType returns the element type.
func (f *Flatten) DType() tensor.DataType { return tensor.Float32 }

// Trainable is always false; flatten has no weights.
func (f *Flatten) Trainable() bool { return false }

// Build collapses every non-batch dimension into one.
func (f *Flatten) Build(input tensor.Shape) (tensor.Shape, error) {
	if len(input) < 2 {
		return nil, fmt.Errorf("flatten %s: expected at least 2D input, got %v", f.name, input)
	}
	n := 1
	for _, dim := range input[1:] {
		if dim == tensor.DimNone {
			return nil, fmt.Errorf("flatten %s: non-batch dimensions must be known, got %v", f.name, input)
		}
		n *= dim
	}
	f.outputShape = tensor.Shape{input[0], n}
	return f.outputShape, nil
}

// OutputShape returns the shape resolved by Build.
func (f *Flatten) OutputShape() tensor.Shape { return f.outputShape }

// Weights returns an empty slice; flatten carries no weights.
func (f *Flatten) Weights() []WeightSpec { return nil }

// String returns a string representation of the layer.
func (f *Flatten) String() string {
	return fmt.Sprintf("Flatten(name=%s)", f.name)
}
