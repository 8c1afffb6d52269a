package nn

import (
	"fmt"

	"github.com/netscope-ml/netscope/internal/tensor"
)

// InputLayer declares the network's expected input shape and element type.
//
// It carries no weights and performs no transformation; its sole role is
// to anchor shape propagation. The declared shape excludes the batch
// dimension, matching how pretrained architectures are published:
//
//	input := nn.NewInputLayer("input_1", tensor.Shape{224, 224, 3}, tensor.Float32)
//	input.BatchShape() // (None, 224, 224, 3)
type InputLayer struct {
	name  string
	shape tensor.Shape // per-sample, no batch dimension
	dtype tensor.DataType

	outputShape tensor.Shape
}

// NewInputLayer creates an input declaration.
//
// The shape is per-sample; the batch dimension is added automatically.
func NewInputLayer(name string, shape tensor.Shape, dtype tensor.DataType) *InputLayer {
	if name == "" {
		panic("input layer: empty name")
	}
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("input layer %s: %v", name, err))
	}
	return &InputLayer{
		name:  name,
		shape: shape.Clone(),
		dtype: dtype,
	}
}

// Name returns the layer name.
func (l *InputLayer) Name() string { return l.name }

// Class returns "InputLayer".
func (l *InputLayer) Class() string { return "InputLayer" }

// DType returns the declared element type.
func (l *InputLayer) DType() tensor.DataType { return l.dtype }

// Trainable is always false; an input declaration has nothing to train.
func (l *InputLayer) Trainable() bool { return false }

// Build resolves the layer. An InputLayer must come first in a model, so
// it rejects any incoming shape.
func (l *InputLayer) Build(input tensor.Shape) (tensor.Shape, error) {
	if input != nil {
		return nil, fmt.Errorf("input layer %s: must be the first layer, got incoming shape %v", l.name, input)
	}
	l.outputShape = l.shape.WithBatch()
	return l.outputShape, nil
}

// OutputShape returns the batched input shape after Build.
func (l *InputLayer) OutputShape() tensor.Shape { return l.outputShape }

// Weights returns an empty slice; input declarations carry no weights.
func (l *InputLayer) Weights() []WeightSpec { return nil }

// BatchShape returns the declared shape with the free batch dimension,
// e.g. (None, 224, 224, 3). Valid before Build.
func (l *InputLayer) BatchShape() tensor.Shape { return l.shape.WithBatch() }

// String returns a string representation of the layer.
func (l *InputLayer) String() string {
	return fmt.Sprintf("InputLayer(name=%s, shape=%s, dtype=%s)", l.name, l.BatchShape(), l.dtype)
}
