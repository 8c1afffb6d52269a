// Copyright 2026 The Netscope Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the shape and dtype vocabulary used to declare
// network architectures in netscope.
//
// # Overview
//
// Netscope describes pretrained networks; it does not execute them. This
// package therefore carries only the structural half of a tensor library:
//   - Shape: dimension tuples with a free batch dimension (DimNone)
//   - DataType: the element types pretrained releases are published with
//
// # Basic Usage
//
//	import "github.com/netscope-ml/netscope/tensor"
//
//	imageInput := tensor.Shape{224, 224, 3}.WithBatch()
//	fmt.Println(imageInput) // (None, 224, 224, 3)
//
// # Shape Rendering
//
// Shape.String renders the tuple form that pretrained-model tooling
// conventionally reports, with unknown dimensions printed as None and
// 1-tuples keeping their trailing comma:
//
//	tensor.Shape{64}.String()                         // (64,)
//	tensor.Shape{tensor.DimNone, 25088}.String()      // (None, 25088)
package tensor
