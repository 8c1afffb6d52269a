// Copyright 2026 The Netscope Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package inspect turns a built model into a JSON layer report.
//
// The report is an ordered array with one record per layer, in the
// model's definition order. Input declarations carry {name, type,
// input_dtype, shape}; every other layer carries {name, type,
// input_dtype, output_shape, activation, trainable, weights_shape}.
// Shapes are rendered as tuple strings, e.g. "(None, 224, 224, 3)".
//
//	model, _ := applications.VGG16(applications.Config{IncludeTop: true})
//	ins := inspect.New(os.Stdout)
//	ins.Dump(model, "vgg16_layer_details.json")
package inspect

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/netscope-ml/netscope/nn"
)

// FileName is the report file written next to the inspecting binary.
const FileName = "vgg16_layer_details.json"

// LayerDetail is one record of the report.
//
// Field presence follows the layer kind: Shape is set only for input
// declarations; OutputShape, Activation, Trainable, and WeightsShape
// only for the rest. WeightsShape is an empty (not absent) list for
// weightless non-input layers.
type LayerDetail struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	InputDType   string   `json:"input_dtype"`
	Shape        string   `json:"shape,omitempty"`
	OutputShape  string   `json:"output_shape,omitempty"`
	Activation   string   `json:"activation,omitempty"`
	Trainable    *bool    `json:"trainable,omitempty"`
	WeightsShape []string `json:"weights_shape,omitempty"`
}

// inputRecord and layerRecord fix the serialized field sets. A plain
// omitempty on LayerDetail would also drop the empty weights_shape list,
// which must stay present for weightless non-input layers.
type inputRecord struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	InputDType string `json:"input_dtype"`
	Shape      string `json:"shape"`
}

type layerRecord struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	InputDType   string   `json:"input_dtype"`
	OutputShape  string   `json:"output_shape"`
	Activation   string   `json:"activation"`
	Trainable    bool     `json:"trainable"`
	WeightsShape []string `json:"weights_shape"`
}

// MarshalJSON serializes the record with the field set of its layer kind.
// Input declarations are recognized by their absent trainable flag.
func (d LayerDetail) MarshalJSON() ([]byte, error) {
	if d.Trainable == nil {
		return json.Marshal(inputRecord{
			Name:       d.Name,
			Type:       d.Type,
			InputDType: d.InputDType,
			Shape:      d.Shape,
		})
	}
	weights := d.WeightsShape
	if weights == nil {
		weights = []string{}
	}
	return json.Marshal(layerRecord{
		Name:         d.Name,
		Type:         d.Type,
		InputDType:   d.InputDType,
		OutputShape:  d.OutputShape,
		Activation:   d.Activation,
		Trainable:    *d.Trainable,
		WeightsShape: weights,
	})
}

// Describe produces one LayerDetail per layer, in definition order.
//
// The model must be built; an unbuilt model reports empty shapes.
func Describe(model *nn.Sequential) []LayerDetail {
	layers := model.Layers()
	details := make([]LayerDetail, 0, len(layers))

	for _, layer := range layers {
		if input, ok := layer.(*nn.InputLayer); ok {
			details = append(details, LayerDetail{
				Name:       input.Name(),
				Type:       "InputLayer",
				InputDType: input.DType().String(),
				Shape:      inputShapeString(input),
			})
			continue
		}

		// The activation field is the literal "None" for layers that
		// have no activation at all (pooling, flatten).
		activation := "None"
		if act, ok := layer.(nn.Activated); ok {
			activation = act.Activation()
		}

		weightsShape := make([]string, 0, len(layer.Weights()))
		for _, w := range layer.Weights() {
			weightsShape = append(weightsShape, w.Shape.String())
		}

		trainable := layer.Trainable()
		details = append(details, LayerDetail{
			Name:         layer.Name(),
			Type:         layer.Class(),
			InputDType:   layer.DType().String(),
			OutputShape:  layer.OutputShape().String(),
			Activation:   activation,
			Trainable:    &trainable,
			WeightsShape: weightsShape,
		})
	}

	return details
}

// inputShapeString renders the declared input shape, falling back to the
// literal "None" when the declaration carries no shape.
func inputShapeString(input *nn.InputLayer) string {
	shape := input.BatchShape()
	if len(shape) == 0 {
		return "None"
	}
	return shape.String()
}

// WriteFile serializes the details to path as UTF-8 JSON with 4-space
// indentation. Non-ASCII characters are kept literal rather than escaped.
func WriteFile(details []LayerDetail, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(details); err != nil {
		return fmt.Errorf("encode layer details: %w", err)
	}
	return f.Sync()
}

// Inspector writes layer reports and narrates progress to Out.
type Inspector struct {
	Out io.Writer
}

// New creates an Inspector that prints to out (os.Stdout for the CLI).
func New(out io.Writer) *Inspector {
	return &Inspector{Out: out}
}

// Dump describes the model and writes the report to path.
//
// This is the one recovery boundary of the inspector: a failed write is
// logged together with the working directory and the attempted path, and
// the failure is not propagated. Everything before the write (an unbuilt
// model, a nil model) is a programmer error and panics as usual.
func (ins *Inspector) Dump(model *nn.Sequential, path string) {
	details := Describe(model)

	if err := WriteFile(details, path); err != nil {
		fmt.Fprintf(ins.Out, "Error saving JSON file: %v\n", err)
		cwd, cwdErr := os.Getwd()
		if cwdErr != nil {
			cwd = "unknown"
		}
		fmt.Fprintf(ins.Out, "Current working directory: %s\n", cwd)
		fmt.Fprintf(ins.Out, "Attempting to save to: %s\n", path)
		return
	}

	fmt.Fprintf(ins.Out, "Successfully saved layer details to: %s\n", path)
	if info, err := os.Stat(path); err == nil {
		fmt.Fprintf(ins.Out, "File size: %d bytes\n", info.Size())
	}
}

// DefaultPath resolves the report location next to the running binary,
// so output lands in a predictable place no matter which directory the
// binary is invoked from.
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve executable path: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), FileName), nil
}
