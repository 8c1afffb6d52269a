package inspect

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netscope-ml/netscope/applications"
	"github.com/netscope-ml/netscope/nn"
)

func vgg16(t *testing.T) *nn.Sequential {
	t.Helper()
	model, err := applications.VGG16(applications.Config{
		IncludeTop: true,
		Weights:    applications.WeightsImageNet,
	})
	require.NoError(t, err)
	return model
}

func TestDescribe_RecordPerLayer(t *testing.T) {
	model := vgg16(t)
	details := Describe(model)

	require.Len(t, details, len(model.Layers()))
	for i, layer := range model.Layers() {
		assert.Equal(t, layer.Name(), details[i].Name, "record %d out of order", i)
		assert.NotEmpty(t, details[i].Name)
		assert.NotEmpty(t, details[i].Type)
		assert.NotEmpty(t, details[i].InputDType)
	}
}

func TestDescribe_InputRecord(t *testing.T) {
	details := Describe(vgg16(t))

	input := details[0]
	assert.Equal(t, "input_1", input.Name)
	assert.Equal(t, "InputLayer", input.Type)
	assert.Equal(t, "float32", input.InputDType)
	assert.Equal(t, "(None, 224, 224, 3)", input.Shape)
	assert.Nil(t, input.Trainable)
	assert.Nil(t, input.WeightsShape)
	assert.Empty(t, input.OutputShape)
}

func TestDescribe_LayerRecords(t *testing.T) {
	details := Describe(vgg16(t))
	byName := make(map[string]LayerDetail)
	for _, d := range details {
		byName[d.Name] = d
	}

	conv := byName["block1_conv1"]
	assert.Equal(t, "Conv2D", conv.Type)
	assert.Equal(t, "(None, 224, 224, 64)", conv.OutputShape)
	assert.Equal(t, "relu", conv.Activation)
	require.NotNil(t, conv.Trainable)
	assert.True(t, *conv.Trainable)
	assert.Equal(t, []string{"(3, 3, 3, 64)", "(64,)"}, conv.WeightsShape)

	// Weightless layers carry an empty, not absent, weights list and the
	// literal "None" activation.
	pool := byName["block1_pool"]
	assert.Equal(t, "MaxPooling2D", pool.Type)
	assert.Equal(t, "None", pool.Activation)
	require.NotNil(t, pool.WeightsShape)
	assert.Empty(t, pool.WeightsShape)

	pred := byName["predictions"]
	assert.Equal(t, "Dense", pred.Type)
	assert.Equal(t, "softmax", pred.Activation)
	assert.Equal(t, []string{"(4096, 1000)", "(1000,)"}, pred.WeightsShape)
}

func TestWriteFile_RoundTrip(t *testing.T) {
	details := Describe(vgg16(t))
	path := filepath.Join(t.TempDir(), FileName)

	require.NoError(t, WriteFile(details, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, json.Valid(data), "output is not valid JSON")
	assert.Contains(t, string(data), "\n    {", "expected 4-space indentation")

	var parsed []LayerDetail
	require.NoError(t, json.Unmarshal(data, &parsed))
	if diff := cmp.Diff(details, parsed); diff != "" {
		t.Errorf("round-trip mismatch (-wrote +parsed):\n%s", diff)
	}
}

func TestWriteFile_FieldSets(t *testing.T) {
	details := Describe(vgg16(t))
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, WriteFile(details, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))

	// Input record carries exactly name/type/input_dtype/shape.
	assert.Len(t, raw[0], 4)
	assert.Contains(t, raw[0], "shape")
	assert.NotContains(t, raw[0], "weights_shape")

	// Non-input records always carry weights_shape, even when empty.
	for _, rec := range raw[1:] {
		assert.Contains(t, rec, "weights_shape")
		assert.Contains(t, rec, "trainable")
		assert.NotContains(t, rec, "shape")
	}
}

func TestWriteFile_NonASCIIPreserved(t *testing.T) {
	trainable := true
	details := []LayerDetail{{
		Name:         "convolución",
		Type:         "Conv2D",
		InputDType:   "float32",
		OutputShape:  "(None, 8, 8, 4)",
		Activation:   "relu",
		Trainable:    &trainable,
		WeightsShape: []string{"(3, 3, 1, 4)"},
	}}
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteFile(details, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.Contains(data, []byte("convolución")), "non-ASCII escaped:\n%s", data)
}

func TestDump_Success(t *testing.T) {
	var out strings.Builder
	path := filepath.Join(t.TempDir(), FileName)

	New(&out).Dump(vgg16(t), path)

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("report not written: %v", err)
	}
	assert.Contains(t, out.String(), "Successfully saved layer details to: "+path)
	assert.Contains(t, out.String(), "File size: ")
}

func TestDump_UnwritablePath(t *testing.T) {
	var out strings.Builder
	path := filepath.Join(t.TempDir(), "no", "such", "dir", FileName)

	// Must log and return, not propagate or panic.
	New(&out).Dump(vgg16(t), path)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Error saving JSON file:")
	assert.Contains(t, out.String(), "Current working directory: "+cwd)
	assert.Contains(t, out.String(), "Attempting to save to: "+path)
	assert.NotContains(t, out.String(), "Successfully saved")
}
