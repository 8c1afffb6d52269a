// Copyright 2026 The Netscope Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package viewer renders the static architecture scene: a single
// wireframe cube in a fixed-perspective window.
//
// The scene is deliberately inert. The window is 500x500, double
// buffered, with a 45-degree perspective camera; every frame clears the
// screen and draws one unit cube five units down the view axis. There is
// no input handling, no animation, and no resize logic; the event loop
// blocks until the user closes the window.
//
// Drawing goes through the Graphics interface so the frame contract is
// testable without a GL context; Run wires it to a fixed-function
// OpenGL 2.1 context in a GLFW window.
package viewer

// Graphics is the immediate-mode call surface a frame uses.
//
// The real implementation targets fixed-function OpenGL; tests substitute
// a recorder to assert the frame's call order.
type Graphics interface {
	// Clear clears the color buffer.
	Clear()

	// PushMatrix saves the current modelview transform.
	PushMatrix()

	// Translate post-multiplies a translation onto the modelview matrix.
	Translate(x, y, z float32)

	// WireCube draws the edges of an axis-aligned cube with the given
	// edge length, centered at the origin.
	WireCube(size float32)

	// PopMatrix restores the last saved modelview transform.
	PopMatrix()

	// SwapBuffers presents the finished frame.
	SwapBuffers()
}

// Distance from the camera to the cube along the view axis.
const cubeDistance = 5.0

// DrawFrame renders one frame of the static scene.
//
// The call order is fixed: clear, push, translate (0, 0, -5), unit wire
// cube, pop, swap. The modelview matrix is identical before and after
// the frame.
func DrawFrame(g Graphics) {
	g.Clear()
	g.PushMatrix()
	g.Translate(0, 0, -cubeDistance)
	g.WireCube(1.0)
	g.PopMatrix()
	g.SwapBuffers()
}
