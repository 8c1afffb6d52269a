// Copyright 2026 The Netscope Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package applications

import "github.com/netscope-ml/netscope/nn"

// VGG19 returns the VGG19 architecture, the deeper VGG variant with four
// convolutions in blocks 3-5 (26 layers with the classification head).
//
// Total parameters with the head: 143,667,240; without: 20,024,384.
func VGG19(cfg Config) (*nn.Sequential, error) {
	return buildVGG("vgg19", []int{2, 2, 4, 4, 4}, cfg)
}
