// Copyright 2026 The Netscope Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package viewer

import (
	"fmt"
	"math"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window and camera constants. The projection is the classic
// gluPerspective(45, 1, 1, 100) setup over a square window.
const (
	windowWidth  = 500
	windowHeight = 500
	windowTitle  = "VGG16 3D Visualization"

	fovY      = 45.0
	aspect    = 1.0
	nearPlane = 1.0
	farPlane  = 100.0
)

// Run opens the viewer window and blocks until the user closes it.
//
// The calling goroutine must be locked to its OS thread (GLFW and GL
// contexts are thread-bound); cmd/view does this in init. Any windowing
// or driver failure is returned and is fatal to the viewer — there is
// nothing to recover.
func Run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.SetPos(100, 100)
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("init opengl: %w", err)
	}
	setupScene()

	g := &openGL{window: window}
	for !window.ShouldClose() {
		DrawFrame(g)
		glfw.WaitEvents()
	}
	return nil
}

// setupScene configures the fixed graphics state once: opaque black
// background, flat shading, and the perspective camera. Nothing mutates
// this state afterwards.
func setupScene() {
	gl.ClearColor(0.0, 0.0, 0.0, 0.0)
	gl.ShadeModel(gl.FLAT)

	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	perspective(fovY, aspect, nearPlane, farPlane)

	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()
}

// perspective installs a symmetric frustum equivalent to
// gluPerspective(fovy, aspect, near, far).
func perspective(fovy, aspect, near, far float64) {
	top := near * math.Tan(fovy*math.Pi/360.0)
	right := top * aspect
	gl.Frustum(-right, right, -top, top, near, far)
}

// openGL implements Graphics on a fixed-function OpenGL 2.1 context.
type openGL struct {
	window *glfw.Window
}

func (o *openGL) Clear() { gl.Clear(gl.COLOR_BUFFER_BIT) }

func (o *openGL) PushMatrix() { gl.PushMatrix() }

func (o *openGL) Translate(x, y, z float32) { gl.Translatef(x, y, z) }

func (o *openGL) PopMatrix() { gl.PopMatrix() }

func (o *openGL) SwapBuffers() { o.window.SwapBuffers() }

// cubeCorners are the 8 corners of a unit-radius cube before scaling.
var cubeCorners = [8][3]float32{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

// cubeEdges index corner pairs: four bottom edges, four top edges, four
// verticals.
var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// WireCube draws the 12 edges of an axis-aligned cube centered at the
// origin with the given edge length.
func (o *openGL) WireCube(size float32) {
	h := size / 2
	gl.Begin(gl.LINES)
	for _, e := range cubeEdges {
		a, b := cubeCorners[e[0]], cubeCorners[e[1]]
		gl.Vertex3f(a[0]*h, a[1]*h, a[2]*h)
		gl.Vertex3f(b[0]*h, b[1]*h, b[2]*h)
	}
	gl.End()
}
