// Copyright 2026 The Netscope Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package applications catalogs pretrained network architectures.
//
// Each constructor returns a fully built nn.Sequential whose layer names,
// shapes, and weight geometry match the published pretrained release, so
// that inspection output lines up with what the original framework's
// tooling reports.
//
//	model, err := applications.VGG16(applications.Config{
//	    IncludeTop: true,
//	    Weights:    applications.WeightsImageNet,
//	})
package applications

import (
	"fmt"

	"github.com/netscope-ml/netscope/nn"
	"github.com/netscope-ml/netscope/tensor"
)

// Weight provenance identifiers.
const (
	// WeightsImageNet marks the architecture as the ImageNet release.
	// The classification head, when included, is fixed at 1000 classes.
	WeightsImageNet = "imagenet"
	// WeightsNone marks a randomly initialized architecture.
	WeightsNone = ""
)

// Config selects an architecture variant.
//
// The zero value (plus IncludeTop) describes the canonical ImageNet-shaped
// network: 224x224 RGB input, 1000 classes.
type Config struct {
	// IncludeTop includes the fully connected classification head.
	IncludeTop bool

	// Weights names the pretrained release: WeightsImageNet or WeightsNone.
	Weights string

	// InputShape is the per-sample input shape [height, width, channels].
	// Defaults to {224, 224, 3}. With IncludeTop and ImageNet weights the
	// default is mandatory, since the flattened feature count is baked
	// into the head's kernel shapes.
	InputShape tensor.Shape

	// Classes is the classification head size. Defaults to 1000.
	Classes int
}

// withDefaults fills unset fields and validates the combination.
func (c Config) withDefaults(arch string) (Config, error) {
	if c.InputShape == nil {
		c.InputShape = tensor.Shape{224, 224, 3}
	}
	if c.Classes == 0 {
		c.Classes = 1000
	}

	switch c.Weights {
	case WeightsImageNet, WeightsNone:
	default:
		return c, fmt.Errorf("%s: unknown weights %q", arch, c.Weights)
	}

	if len(c.InputShape) != 3 || c.InputShape[2] != 3 {
		return c, fmt.Errorf("%s: input shape must be [H, W, 3], got %v", arch, c.InputShape)
	}
	if c.InputShape[0] < 32 || c.InputShape[1] < 32 {
		return c, fmt.Errorf("%s: input must be at least 32x32, got %v", arch, c.InputShape)
	}
	if c.Weights == WeightsImageNet && c.IncludeTop {
		if c.Classes != 1000 {
			return c, fmt.Errorf("%s: imagenet weights with the classification head require 1000 classes, got %d", arch, c.Classes)
		}
		if !c.InputShape.Equal(tensor.Shape{224, 224, 3}) {
			return c, fmt.Errorf("%s: imagenet weights with the classification head require 224x224x3 input, got %v", arch, c.InputShape)
		}
	}

	return c, nil
}

// convBlock appends one VGG convolution block: convs 3x3 Same/ReLU
// convolutions at the given width, then a halving 2x2 max pool.
func convBlock(layers []nn.Layer, block, convs, filters int) []nn.Layer {
	for i := 1; i <= convs; i++ {
		name := fmt.Sprintf("block%d_conv%d", block, i)
		layers = append(layers, nn.NewConv2D(name, filters, 3, 3, 1, 1, nn.Same, nn.ActReLU))
	}
	poolName := fmt.Sprintf("block%d_pool", block)
	return append(layers, nn.NewMaxPooling2D(poolName, 2, 2, 2, 2))
}

// classifierHead appends the VGG fully connected head.
func classifierHead(layers []nn.Layer, classes int) []nn.Layer {
	return append(layers,
		nn.NewFlatten("flatten"),
		nn.NewDense("fc1", 4096, nn.ActReLU),
		nn.NewDense("fc2", 4096, nn.ActReLU),
		nn.NewDense("predictions", classes, nn.ActSoftmax),
	)
}

// buildVGG assembles and builds a VGG-family model from per-block conv
// counts.
func buildVGG(arch string, blockConvs []int, cfg Config) (*nn.Sequential, error) {
	cfg, err := cfg.withDefaults(arch)
	if err != nil {
		return nil, err
	}

	layers := []nn.Layer{
		nn.NewInputLayer("input_1", cfg.InputShape, tensor.Float32),
	}
	blockFilters := []int{64, 128, 256, 512, 512}
	for i, convs := range blockConvs {
		layers = convBlock(layers, i+1, convs, blockFilters[i])
	}
	if cfg.IncludeTop {
		layers = classifierHead(layers, cfg.Classes)
	}

	model := nn.NewSequential(arch, layers...)
	if err := model.Build(); err != nil {
		return nil, fmt.Errorf("%s: %w", arch, err)
	}
	return model, nil
}
