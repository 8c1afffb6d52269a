// Package nn implements the declarative layer catalog for the netscope toolkit.
//
// This package provides building blocks for describing convolutional
// network architectures:
//   - Layer interface: Base interface for all layer declarations
//   - InputLayer: Declares the network's expected input shape and dtype
//   - Conv2D, MaxPooling2D, Flatten, Dense: The VGG-family layer types
//   - Sequential: Ordered container with static shape propagation
//
// Layers here declare structure rather than compute: each layer knows its
// hyperparameters, how an input shape maps to an output shape, and which
// weight tensors a pretrained release of the layer carries. No weight
// storage is ever allocated, so a 138M-parameter network costs a few
// hundred bytes to build.
package nn

import (
	"github.com/netscope-ml/netscope/internal/tensor"
)

// Layer is the base interface for all layer declarations.
//
// Build is called once, during Sequential.Build, with the output shape of
// the preceding layer (nil for a layer that declares its own input shape).
// After a successful Build, OutputShape and Weights report the resolved
// geometry of the layer.
type Layer interface {
	// Name returns the unique layer name, e.g. "block1_conv1".
	Name() string

	// Class returns the layer's class tag as it appears in inspection
	// output, e.g. "Conv2D".
	Class() string

	// DType returns the element type the layer operates on.
	DType() tensor.DataType

	// Trainable reports whether the layer's weights participate in
	// training. Always false for weightless layers.
	Trainable() bool

	// Build resolves the layer against the incoming shape and returns
	// the layer's output shape. Shapes include the batch dimension.
	Build(input tensor.Shape) (tensor.Shape, error)

	// OutputShape returns the shape resolved by Build, or nil before it.
	OutputShape() tensor.Shape

	// Weights returns the weight tensors a pretrained release of this
	// layer carries, in checkpoint order. Empty for weightless layers.
	Weights() []WeightSpec
}

// Activated is implemented by layers that carry a named activation
// function (Conv2D, Dense). Weightless layers do not implement it,
// mirroring how inspection distinguishes "no activation attribute"
// from "activation is linear".
type Activated interface {
	// Activation returns the activation identifier, e.g. "relu".
	Activation() string
}

// WeightSpec describes one weight tensor of a layer without allocating it.
type WeightSpec struct {
	Name  string       // e.g. "block1_conv1/kernel"
	Shape tensor.Shape // fully known, no batch dimension
	DType tensor.DataType
}

// NumElements returns the number of scalar parameters in the weight.
func (w WeightSpec) NumElements() int {
	return w.Shape.NumElements()
}
