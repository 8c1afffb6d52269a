package nn

import (
	"fmt"

	"github.com/netscope-ml/netscope/internal/tensor"
)

// Padding selects how a convolving window treats the input border.
type Padding int

// Supported padding modes.
const (
	// Valid applies no padding; the window stays inside the input.
	Valid Padding = iota
	// Same zero-pads so that output spatial size = ceil(input / stride).
	Same
)

// String returns the conventional lowercase padding name.
func (p Padding) String() string {
	switch p {
	case Valid:
		return "valid"
	case Same:
		return "same"
	default:
		return "unknown"
	}
}

// Conv2D declares a 2D convolutional layer over channels-last input.
//
// Input shape:  [batch, height, width, in_channels]
// Output shape: [batch, out_h, out_w, filters]
//
// Where, for Valid padding:
//
//	out_h = (height - kernel_h) / stride_h + 1
//	out_w = (width - kernel_w) / stride_w + 1
//
// and for Same padding:
//
//	out_h = ceil(height / stride_h)
//	out_w = ceil(width / stride_w)
//
// The input channel count is resolved at Build time from the incoming
// shape, so architecture definitions only state what the published
// configuration states:
//
//	conv := nn.NewConv2D("block1_conv1", 64, 3, 3, 1, 1, nn.Same, nn.ActReLU)
type Conv2D struct {
	name       string
	filters    int
	kernelSize [2]int
	strides    [2]int
	padding    Padding
	activation string
	trainable  bool

	inChannels  int // resolved by Build
	outputShape tensor.Shape
}

// NewConv2D creates a 2D convolution declaration.
//
// Parameters:
//   - name: Unique layer name
//   - filters: Number of output channels
//   - kernelH, kernelW: Kernel dimensions
//   - strideH, strideW: Window strides (commonly 1 or 2)
//   - padding: Valid or Same
//   - activation: Activation identifier ("" for linear)
//
// The layer is trainable and biased; the weight list produced after Build
// is [kernel [kh, kw, in, filters], bias [filters]].
func NewConv2D(name string, filters, kernelH, kernelW, strideH, strideW int, padding Padding, activation string) *Conv2D {
	if name == "" {
		panic("conv2d: empty name")
	}
	if filters <= 0 {
		panic(fmt.Sprintf("conv2d %s: invalid filters %d", name, filters))
	}
	if kernelH <= 0 || kernelW <= 0 {
		panic(fmt.Sprintf("conv2d %s: invalid kernel size h=%d, w=%d", name, kernelH, kernelW))
	}
	if strideH <= 0 || strideW <= 0 {
		panic(fmt.Sprintf("conv2d %s: invalid strides h=%d, w=%d", name, strideH, strideW))
	}

	return &Conv2D{
		name:       name,
		filters:    filters,
		kernelSize: [2]int{kernelH, kernelW},
		strides:    [2]int{strideH, strideW},
		padding:    padding,
		activation: normalizeActivation("conv2d "+name, activation),
		trainable:  true,
	}
}

// Name returns the layer name.
func (c *Conv2D) Name() string { return c.name }

// Class returns "Conv2D".
func (c *Conv2D) Class() string { return "Conv2D" }

// DType returns the element type (always float32 for this catalog).
func (c *Conv2D) DType() tensor.DataType { return tensor.Float32 }

// Trainable reports whether the layer's weights are trainable.
func (c *Conv2D) Trainable() bool { return c.trainable }

// SetTrainable marks the layer's weights frozen or trainable.
func (c *Conv2D) SetTrainable(trainable bool) { c.trainable = trainable }

// Activation returns the activation identifier.
func (c *Conv2D) Activation() string { return c.activation }

// Filters returns the number of output channels.
func (c *Conv2D) Filters() int { return c.filters }

// KernelSize returns the kernel size [height, width].
func (c *Conv2D) KernelSize() [2]int { return c.kernelSize }

// Strides returns the strides [height, width].
func (c *Conv2D) Strides() [2]int { return c.strides }

// PaddingMode returns the padding mode.
func (c *Conv2D) PaddingMode() Padding { return c.padding }

// Build resolves input channels and the output shape from the incoming
// [batch, height, width, channels] shape.
func (c *Conv2D) Build(input tensor.Shape) (tensor.Shape, error) {
	if len(input) != 4 {
		return nil, fmt.Errorf("conv2d %s: expected 4D input [N,H,W,C], got %v", c.name, input)
	}
	h, w, ch := input[1], input[2], input[3]
	if ch == tensor.DimNone {
		return nil, fmt.Errorf("conv2d %s: input channel count must be known, got %v", c.name, input)
	}

	outH, err := convDim(h, c.kernelSize[0], c.strides[0], c.padding)
	if err != nil {
		return nil, fmt.Errorf("conv2d %s: height: %w", c.name, err)
	}
	outW, err := convDim(w, c.kernelSize[1], c.strides[1], c.padding)
	if err != nil {
		return nil, fmt.Errorf("conv2d %s: width: %w", c.name, err)
	}

	c.inChannels = ch
	c.outputShape = tensor.Shape{input[0], outH, outW, c.filters}
	return c.outputShape, nil
}

// OutputShape returns the shape resolved by Build.
func (c *Conv2D) OutputShape() tensor.Shape { return c.outputShape }

// Weights returns the kernel and bias declarations. Empty before Build,
// since the kernel shape depends on the resolved input channel count.
func (c *Conv2D) Weights() []WeightSpec {
	if c.inChannels == 0 {
		return nil
	}
	return []WeightSpec{
		{
			Name:  c.name + "/kernel",
			Shape: tensor.Shape{c.kernelSize[0], c.kernelSize[1], c.inChannels, c.filters},
			DType: tensor.Float32,
		},
		{
			Name:  c.name + "/bias",
			Shape: tensor.Shape{c.filters},
			DType: tensor.Float32,
		},
	}
}

// String returns a string representation of the layer.
func (c *Conv2D) String() string {
	return fmt.Sprintf("Conv2D(name=%s, filters=%d, kernel_size=(%d, %d), strides=(%d, %d), padding=%s, activation=%s)",
		c.name, c.filters,
		c.kernelSize[0], c.kernelSize[1],
		c.strides[0], c.strides[1],
		c.padding, c.activation)
}

// convDim computes one output spatial extent. An unknown input extent
// stays unknown.
func convDim(in, kernel, stride int, padding Padding) (int, error) {
	if in == tensor.DimNone {
		return tensor.DimNone, nil
	}
	switch padding {
	case Same:
		return (in + stride - 1) / stride, nil
	case Valid:
		if in < kernel {
			return 0, fmt.Errorf("input extent %d smaller than kernel %d", in, kernel)
		}
		return (in-kernel)/stride + 1, nil
	default:
		return 0, fmt.Errorf("unknown padding mode %d", padding)
	}
}
