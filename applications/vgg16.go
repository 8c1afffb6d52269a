// Copyright 2026 The Netscope Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package applications

import "github.com/netscope-ml/netscope/nn"

// VGG16 returns the VGG16 architecture (Simonyan & Zisserman, 2014).
//
// Topology with the classification head, 23 layers:
//
//	input_1 (None, 224, 224, 3)
//	block1: 2x conv 64  -> pool (None, 112, 112, 64)
//	block2: 2x conv 128 -> pool (None, 56, 56, 128)
//	block3: 3x conv 256 -> pool (None, 28, 28, 256)
//	block4: 3x conv 512 -> pool (None, 14, 14, 512)
//	block5: 3x conv 512 -> pool (None, 7, 7, 512)
//	flatten (None, 25088)
//	fc1, fc2: dense 4096 relu
//	predictions: dense 1000 softmax
//
// Total parameters with the head: 138,357,544. Without the head the
// model ends at block5_pool with 14,714,688 parameters.
//
// The returned model is already built; its layers report output shapes
// and weight geometry immediately.
func VGG16(cfg Config) (*nn.Sequential, error) {
	return buildVGG("vgg16", []int{2, 2, 3, 3, 3}, cfg)
}
