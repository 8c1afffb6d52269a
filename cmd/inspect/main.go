// Command inspect dumps the VGG16 layer report.
//
// It builds the pretrained VGG16 architecture with its classification
// head and writes vgg16_layer_details.json next to the binary. It takes
// no arguments and reads no environment.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/netscope-ml/netscope/applications"
	"github.com/netscope-ml/netscope/inspect"
)

func main() {
	fmt.Println("Loading VGG16 model...")
	model, err := applications.VGG16(applications.Config{
		IncludeTop: true,
		Weights:    applications.WeightsImageNet,
	})
	if err != nil {
		log.Fatalf("load VGG16: %v", err)
	}

	fmt.Println("Saving layer details...")
	path, err := inspect.DefaultPath()
	if err != nil {
		log.Fatalf("resolve output path: %v", err)
	}
	inspect.New(os.Stdout).Dump(model, path)
}
