package nn

import (
	"fmt"
	"strings"

	"github.com/netscope-ml/netscope/internal/tensor"
)

// Sequential is an ordered container of layer declarations.
//
// Build propagates shapes front to back, resolving every layer's output
// shape and weight geometry. Layer order is definition order and is the
// order inspection reports use.
//
//	model := nn.NewSequential("vgg16",
//	    nn.NewInputLayer("input_1", tensor.Shape{224, 224, 3}, tensor.Float32),
//	    nn.NewConv2D("block1_conv1", 64, 3, 3, 1, 1, nn.Same, nn.ActReLU),
//	    ...
//	)
//	if err := model.Build(); err != nil {
//	    log.Fatal(err)
//	}
type Sequential struct {
	name   string
	layers []Layer
	built  bool
}

// NewSequential creates a named sequential model from the given layers.
func NewSequential(name string, layers ...Layer) *Sequential {
	if name == "" {
		panic("sequential: empty name")
	}
	s := &Sequential{name: name}
	for _, layer := range layers {
		s.Add(layer)
	}
	return s
}

// Add appends a layer. Layer names must be unique within the model.
func (s *Sequential) Add(layer Layer) {
	for _, existing := range s.layers {
		if existing.Name() == layer.Name() {
			panic(fmt.Sprintf("sequential %s: duplicate layer name %q", s.name, layer.Name()))
		}
	}
	s.layers = append(s.layers, layer)
	s.built = false
}

// Name returns the model name.
func (s *Sequential) Name() string { return s.name }

// Layers returns the layers in definition order.
func (s *Sequential) Layers() []Layer { return s.layers }

// Built reports whether shape propagation has completed.
func (s *Sequential) Built() bool { return s.built }

// Build propagates shapes through all layers front to back.
//
// The first layer must declare its own input shape (an InputLayer);
// every subsequent layer resolves against its predecessor's output.
func (s *Sequential) Build() error {
	if len(s.layers) == 0 {
		return fmt.Errorf("model %s: no layers", s.name)
	}
	if _, ok := s.layers[0].(*InputLayer); !ok {
		return fmt.Errorf("model %s: first layer %q must be an input declaration", s.name, s.layers[0].Name())
	}

	var shape tensor.Shape
	for _, layer := range s.layers {
		out, err := layer.Build(shape)
		if err != nil {
			return fmt.Errorf("model %s: %w", s.name, err)
		}
		shape = out
	}
	s.built = true
	return nil
}

// OutputShape returns the final layer's output shape after Build.
func (s *Sequential) OutputShape() tensor.Shape {
	if !s.built {
		return nil
	}
	return s.layers[len(s.layers)-1].OutputShape()
}

// ParameterCount returns the total number of scalar weights declared by
// all layers. Only meaningful after Build.
func (s *Sequential) ParameterCount() int {
	n := 0
	for _, layer := range s.layers {
		for _, w := range layer.Weights() {
			n += w.NumElements()
		}
	}
	return n
}

// Summary returns a human-readable architecture table, one line per
// layer: name, class, output shape, and parameter count.
func (s *Sequential) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Model: %s\n", s.name)
	for _, layer := range s.layers {
		params := 0
		for _, w := range layer.Weights() {
			params += w.NumElements()
		}
		fmt.Fprintf(&b, "  %-16s %-14s %-22s %12d\n",
			layer.Name(), layer.Class(), layer.OutputShape().String(), params)
	}
	fmt.Fprintf(&b, "Total params: %d\n", s.ParameterCount())
	return b.String()
}
