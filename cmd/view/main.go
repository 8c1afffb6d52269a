// Command view opens the static wireframe cube window.
//
// It takes no arguments and blocks until the window is closed. Windowing
// or driver failures are fatal.
package main

import (
	"log"
	"runtime"

	"github.com/netscope-ml/netscope/viewer"
)

func init() {
	// GLFW event handling and the GL context are bound to one OS thread.
	runtime.LockOSThread()
}

func main() {
	if err := viewer.Run(); err != nil {
		log.Fatalf("viewer: %v", err)
	}
}
