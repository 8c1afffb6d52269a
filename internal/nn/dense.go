package nn

import (
	"fmt"

	"github.com/netscope-ml/netscope/internal/tensor"
)

// Dense declares a fully connected layer.
//
// Input shape:  [batch, in_features]
// Output shape: [batch, units]
//
// The input feature count is resolved at Build time; the weight list
// produced after Build is [kernel [in_features, units], bias [units]].
//
//	fc := nn.NewDense("fc1", 4096, nn.ActReLU)
type Dense struct {
	name       string
	units      int
	activation string
	trainable  bool

	inFeatures  int // resolved by Build
	outputShape tensor.Shape
}

// NewDense creates a fully connected layer declaration.
//
// Parameters:
//   - name: Unique layer name
//   - units: Number of output features
//   - activation: Activation identifier ("" for linear)
func NewDense(name string, units int, activation string) *Dense {
	if name == "" {
		panic("dense: empty name")
	}
	if units <= 0 {
		panic(fmt.Sprintf("dense %s: invalid units %d", name, units))
	}
	return &Dense{
		name:       name,
		units:      units,
		activation: normalizeActivation("dense "+name, activation),
		trainable:  true,
	}
}

// Name returns the layer name.
func (d *Dense) Name() string { return d.name }

// Class returns "Dense".
func (d *Dense) Class() string { return "Dense" }

// DType returns the element type.
func (d *Dense) DType() tensor.DataType { return tensor.Float32 }

// Trainable reports whether the layer's weights are trainable.
func (d *Dense) Trainable() bool { return d.trainable }

// SetTrainable marks the layer's weights frozen or trainable.
func (d *Dense) SetTrainable(trainable bool) { d.trainable = trainable }

// Activation returns the activation identifier.
func (d *Dense) Activation() string { return d.activation }

// Units returns the number of output features.
func (d *Dense) Units() int { return d.units }

// Build resolves input features and the output shape from the incoming
// [batch, features] shape.
func (d *Dense) Build(input tensor.Shape) (tensor.Shape, error) {
	if len(input) != 2 {
		return nil, fmt.Errorf("dense %s: expected 2D input [N,F], got %v", d.name, input)
	}
	if input[1] == tensor.DimNone {
		return nil, fmt.Errorf("dense %s: input feature count must be known, got %v", d.name, input)
	}
	d.inFeatures = input[1]
	d.outputShape = tensor.Shape{input[0], d.units}
	return d.outputShape, nil
}

// OutputShape returns the shape resolved by Build.
func (d *Dense) OutputShape() tensor.Shape { return d.outputShape }

// Weights returns the kernel and bias declarations. Empty before Build,
// since the kernel shape depends on the resolved input feature count.
func (d *Dense) Weights() []WeightSpec {
	if d.inFeatures == 0 {
		return nil
	}
	return []WeightSpec{
		{
			Name:  d.name + "/kernel",
			Shape: tensor.Shape{d.inFeatures, d.units},
			DType: tensor.Float32,
		},
		{
			Name:  d.name + "/bias",
			Shape: tensor.Shape{d.units},
			DType: tensor.Float32,
		},
	}
}

// String returns a string representation of the layer.
func (d *Dense) String() string {
	return fmt.Sprintf("Dense(name=%s, units=%d, activation=%s)", d.name, d.units, d.activation)
}
