// Copyright 2026 The Netscope Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/netscope-ml/netscope/internal/nn"
	"github.com/netscope-ml/netscope/internal/tensor"
)

// Layer is the base interface for all layer declarations.
type Layer = nn.Layer

// Activated is implemented by layers that carry a named activation.
type Activated = nn.Activated

// WeightSpec describes one weight tensor of a layer without allocating it.
type WeightSpec = nn.WeightSpec

// Padding selects how a convolving window treats the input border.
type Padding = nn.Padding

// Supported padding modes.
const (
	Valid = nn.Valid
	Same  = nn.Same
)

// Activation identifiers for layers that carry one.
const (
	ActLinear  = nn.ActLinear
	ActReLU    = nn.ActReLU
	ActSigmoid = nn.ActSigmoid
	ActTanh    = nn.ActTanh
	ActSoftmax = nn.ActSoftmax
)

// Layers

// InputLayer declares the network's expected input shape and element type.
type InputLayer = nn.InputLayer

// NewInputLayer creates an input declaration.
//
// Example:
//
//	input := nn.NewInputLayer("input_1", tensor.Shape{224, 224, 3}, tensor.Float32)
func NewInputLayer(name string, shape tensor.Shape, dtype tensor.DataType) *InputLayer {
	return nn.NewInputLayer(name, shape, dtype)
}

// Conv2D declares a 2D convolutional layer over channels-last input.
type Conv2D = nn.Conv2D

// NewConv2D creates a 2D convolution declaration.
//
// Example:
//
//	conv := nn.NewConv2D("block1_conv1", 64, 3, 3, 1, 1, nn.Same, nn.ActReLU)
func NewConv2D(name string, filters, kernelH, kernelW, strideH, strideW int, padding Padding, activation string) *Conv2D {
	return nn.NewConv2D(name, filters, kernelH, kernelW, strideH, strideW, padding, activation)
}

// MaxPooling2D declares a 2D max pooling layer.
type MaxPooling2D = nn.MaxPooling2D

// NewMaxPooling2D creates a max pooling declaration.
//
// Example:
//
//	pool := nn.NewMaxPooling2D("block1_pool", 2, 2, 2, 2)
func NewMaxPooling2D(name string, poolH, poolW, strideH, strideW int) *MaxPooling2D {
	return nn.NewMaxPooling2D(name, poolH, poolW, strideH, strideW)
}

// Flatten declares the reshape of all non-batch dimensions into one.
type Flatten = nn.Flatten

// NewFlatten creates a flatten declaration.
func NewFlatten(name string) *Flatten {
	return nn.NewFlatten(name)
}

// Dense declares a fully connected layer.
type Dense = nn.Dense

// NewDense creates a fully connected layer declaration.
//
// Example:
//
//	fc := nn.NewDense("fc1", 4096, nn.ActReLU)
func NewDense(name string, units int, activation string) *Dense {
	return nn.NewDense(name, units, activation)
}

// Sequential

// Sequential is an ordered container of layer declarations.
type Sequential = nn.Sequential

// NewSequential creates a named sequential model from the given layers.
//
// Example:
//
//	model := nn.NewSequential("vgg16",
//	    nn.NewInputLayer("input_1", tensor.Shape{224, 224, 3}, tensor.Float32),
//	    nn.NewConv2D("block1_conv1", 64, 3, 3, 1, 1, nn.Same, nn.ActReLU),
//	)
func NewSequential(name string, layers ...Layer) *Sequential {
	return nn.NewSequential(name, layers...)
}
