// Copyright 2026 The Netscope Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/netscope-ml/netscope/internal/tensor"
)

// Shape represents the dimensions of a declared tensor.
type Shape = tensor.Shape

// DataType represents the element type of a declared tensor.
type DataType = tensor.DataType

// DimNone marks a dimension whose extent is unknown until runtime.
const DimNone = tensor.DimNone

// Supported element types for declared tensors.
const (
	Float32 = tensor.Float32
	Float64 = tensor.Float64
	Int32   = tensor.Int32
	Int64   = tensor.Int64
	Uint8   = tensor.Uint8
	Bool    = tensor.Bool
)
