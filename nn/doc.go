// Copyright 2026 The Netscope Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides declarative neural network layers and containers.
//
// # Overview
//
// This package contains:
//   - Layers: InputLayer, Conv2D, MaxPooling2D, Flatten, Dense
//   - Containers: Sequential with static shape propagation
//   - Interfaces: Layer, Activated, WeightSpec
//
// Layers declare structure rather than compute. Each layer knows its
// hyperparameters, how an input shape maps to an output shape, and which
// weight tensors a pretrained release carries; no weight storage is
// allocated.
//
// # Basic Usage
//
//	import (
//	    "github.com/netscope-ml/netscope/nn"
//	    "github.com/netscope-ml/netscope/tensor"
//	)
//
//	model := nn.NewSequential("small-cnn",
//	    nn.NewInputLayer("input_1", tensor.Shape{28, 28, 1}, tensor.Float32),
//	    nn.NewConv2D("conv1", 32, 3, 3, 1, 1, nn.Same, nn.ActReLU),
//	    nn.NewMaxPooling2D("pool1", 2, 2, 2, 2),
//	    nn.NewFlatten("flatten"),
//	    nn.NewDense("predictions", 10, nn.ActSoftmax),
//	)
//	if err := model.Build(); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(model.Summary())
//
// # Shape Propagation
//
// Sequential.Build resolves every layer front to back: the InputLayer
// anchors the batched input shape, convolution and pooling apply the
// usual window arithmetic, Flatten collapses the non-batch dimensions,
// and Dense resolves its kernel against the incoming feature count.
// After Build, each layer reports OutputShape and Weights.
package nn
