package nn

import (
	"fmt"

	"github.com/netscope-ml/netscope/internal/tensor"
)

// MaxPooling2D declares a 2D max pooling layer over channels-last input.
//
// Pooling reduces spatial dimensions by taking the maximum value in each
// window; it has no weights and no activation. The channel count passes
// through unchanged.
//
// Input shape:  [batch, height, width, channels]
// Output shape: [batch, out_h, out_w, channels]
//
// Common configuration is a 2x2 pool with stride 2, halving both spatial
// extents:
//
//	pool := nn.NewMaxPooling2D("block1_pool", 2, 2, 2, 2)
type MaxPooling2D struct {
	name     string
	poolSize [2]int
	strides  [2]int
	padding  Padding

	outputShape tensor.Shape
}

// NewMaxPooling2D creates a max pooling declaration with Valid padding.
//
// Parameters:
//   - name: Unique layer name
//   - poolH, poolW: Pooling window dimensions
//   - strideH, strideW: Window strides (typically equal to the window)
func NewMaxPooling2D(name string, poolH, poolW, strideH, strideW int) *MaxPooling2D {
	if name == "" {
		panic("maxpooling2d: empty name")
	}
	if poolH <= 0 || poolW <= 0 {
		panic(fmt.Sprintf("maxpooling2d %s: invalid pool size h=%d, w=%d", name, poolH, poolW))
	}
	if strideH <= 0 || strideW <= 0 {
		panic(fmt.Sprintf("maxpooling2d %s: invalid strides h=%d, w=%d", name, strideH, strideW))
	}

	return &MaxPooling2D{
		name:     name,
		poolSize: [2]int{poolH, poolW},
		strides:  [2]int{strideH, strideW},
		padding:  Valid,
	}
}

// Name returns the layer name.
func (m *MaxPooling2D) Name() string { return m.name }

// Class returns "MaxPooling2D".
func (m *MaxPooling2D) Class() string { return "MaxPooling2D" }

// DType returns the element type.
func (m *MaxPooling2D) DType() tensor.DataType { return tensor.Float32 }

// Trainable is always false; pooling has no weights.
func (m *MaxPooling2D) Trainable() bool { return false }

// PoolSize returns the pooling window [height, width].
func (m *MaxPooling2D) PoolSize() [2]int { return m.poolSize }

// Strides returns the strides [height, width].
func (m *MaxPooling2D) Strides() [2]int { return m.strides }

// Build resolves the output shape from the incoming
// [batch, height, width, channels] shape.
func (m *MaxPooling2D) Build(input tensor.Shape) (tensor.Shape, error) {
	if len(input) != 4 {
		return nil, fmt.Errorf("maxpooling2d %s: expected 4D input [N,H,W,C], got %v", m.name, input)
	}

	outH, err := convDim(input[1], m.poolSize[0], m.strides[0], m.padding)
	if err != nil {
		return nil, fmt.Errorf("maxpooling2d %s: height: %w", m.name, err)
	}
	outW, err := convDim(input[2], m.poolSize[1], m.strides[1], m.padding)
	if err != nil {
		return nil, fmt.Errorf("maxpooling2d %s: width: %w", m.name, err)
	}

	m.outputShape = tensor.Shape{input[0], outH, outW, input[3]}
	return m.outputShape, nil
}

// OutputShape returns the shape resolved by Build.
func (m *MaxPooling2D) OutputShape() tensor.Shape { return m.outputShape }

// Weights returns an empty slice; pooling carries no weights.
func (m *MaxPooling2D) Weights() []WeightSpec { return nil }

// String returns a string representation of the layer.
func (m *MaxPooling2D) String() string {
	return fmt.Sprintf("MaxPooling2D(name=%s, pool_size=(%d, %d), strides=(%d, %d))",
		m.name, m.poolSize[0], m.poolSize[1], m.strides[0], m.strides[1])
}
