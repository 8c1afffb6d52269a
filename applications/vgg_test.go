package applications

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netscope-ml/netscope/nn"
	"github.com/netscope-ml/netscope/tensor"
)

func TestVGG16_Topology(t *testing.T) {
	model, err := VGG16(Config{IncludeTop: true, Weights: WeightsImageNet})
	require.NoError(t, err)
	require.True(t, model.Built())

	layers := model.Layers()
	require.Len(t, layers, 23)

	wantNames := []string{
		"input_1",
		"block1_conv1", "block1_conv2", "block1_pool",
		"block2_conv1", "block2_conv2", "block2_pool",
		"block3_conv1", "block3_conv2", "block3_conv3", "block3_pool",
		"block4_conv1", "block4_conv2", "block4_conv3", "block4_pool",
		"block5_conv1", "block5_conv2", "block5_conv3", "block5_pool",
		"flatten", "fc1", "fc2", "predictions",
	}
	for i, layer := range layers {
		assert.Equal(t, wantNames[i], layer.Name(), "layer %d", i)
	}

	assert.Equal(t, "InputLayer", layers[0].Class())
	assert.Equal(t, "Conv2D", layers[1].Class())
	assert.Equal(t, "MaxPooling2D", layers[3].Class())
	assert.Equal(t, "Flatten", layers[19].Class())
	assert.Equal(t, "Dense", layers[22].Class())
}

func TestVGG16_Shapes(t *testing.T) {
	model, err := VGG16(Config{IncludeTop: true, Weights: WeightsImageNet})
	require.NoError(t, err)

	byName := make(map[string]nn.Layer)
	for _, layer := range model.Layers() {
		byName[layer.Name()] = layer
	}

	wantShapes := map[string]string{
		"input_1":      "(None, 224, 224, 3)",
		"block1_conv1": "(None, 224, 224, 64)",
		"block1_pool":  "(None, 112, 112, 64)",
		"block2_pool":  "(None, 56, 56, 128)",
		"block3_pool":  "(None, 28, 28, 256)",
		"block4_pool":  "(None, 14, 14, 512)",
		"block5_pool":  "(None, 7, 7, 512)",
		"flatten":      "(None, 25088)",
		"fc1":          "(None, 4096)",
		"fc2":          "(None, 4096)",
		"predictions":  "(None, 1000)",
	}
	for name, want := range wantShapes {
		require.Contains(t, byName, name)
		assert.Equal(t, want, byName[name].OutputShape().String(), "layer %s", name)
	}
}

func TestVGG16_WeightGeometry(t *testing.T) {
	model, err := VGG16(Config{IncludeTop: true, Weights: WeightsImageNet})
	require.NoError(t, err)

	byName := make(map[string]nn.Layer)
	for _, layer := range model.Layers() {
		byName[layer.Name()] = layer
	}

	w := byName["block1_conv1"].Weights()
	require.Len(t, w, 2)
	assert.Equal(t, tensor.Shape{3, 3, 3, 64}, w[0].Shape)
	assert.Equal(t, tensor.Shape{64}, w[1].Shape)

	w = byName["block5_conv3"].Weights()
	require.Len(t, w, 2)
	assert.Equal(t, tensor.Shape{3, 3, 512, 512}, w[0].Shape)

	w = byName["fc1"].Weights()
	require.Len(t, w, 2)
	assert.Equal(t, tensor.Shape{25088, 4096}, w[0].Shape)

	w = byName["predictions"].Weights()
	require.Len(t, w, 2)
	assert.Equal(t, tensor.Shape{4096, 1000}, w[0].Shape)
	assert.Equal(t, tensor.Shape{1000}, w[1].Shape)

	assert.Empty(t, byName["block1_pool"].Weights())
	assert.Empty(t, byName["flatten"].Weights())

	assert.Equal(t, 138357544, model.ParameterCount())
}

func TestVGG16_WithoutTop(t *testing.T) {
	model, err := VGG16(Config{Weights: WeightsImageNet})
	require.NoError(t, err)

	layers := model.Layers()
	require.Len(t, layers, 19)
	assert.Equal(t, "block5_pool", layers[len(layers)-1].Name())
	assert.Equal(t, "(None, 7, 7, 512)", model.OutputShape().String())
	assert.Equal(t, 14714688, model.ParameterCount())
}

func TestVGG16_CustomInput(t *testing.T) {
	// Without the head, any >=32x32 RGB input is allowed.
	model, err := VGG16(Config{Weights: WeightsImageNet, InputShape: tensor.Shape{96, 96, 3}})
	require.NoError(t, err)
	assert.Equal(t, "(None, 3, 3, 512)", model.OutputShape().String())
}

func TestVGG16_ConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"unknown weights", Config{Weights: "cifar10"}},
		{"bad channels", Config{InputShape: tensor.Shape{224, 224, 1}}},
		{"too small", Config{InputShape: tensor.Shape{16, 16, 3}}},
		{"imagenet head classes", Config{IncludeTop: true, Weights: WeightsImageNet, Classes: 10}},
		{"imagenet head input", Config{IncludeTop: true, Weights: WeightsImageNet, InputShape: tensor.Shape{96, 96, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := VGG16(tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestVGG19_Topology(t *testing.T) {
	model, err := VGG19(Config{IncludeTop: true, Weights: WeightsImageNet})
	require.NoError(t, err)

	layers := model.Layers()
	require.Len(t, layers, 26)
	assert.Equal(t, "block3_conv4", layers[10].Name())
	assert.Equal(t, 143667240, model.ParameterCount())

	headless, err := VGG19(Config{Weights: WeightsImageNet})
	require.NoError(t, err)
	assert.Len(t, headless.Layers(), 22)
	assert.Equal(t, 20024384, headless.ParameterCount())
}
