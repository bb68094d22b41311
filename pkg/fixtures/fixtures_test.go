// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package fixtures

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/dustin/go-humanize"
	"github.com/gomlx/onnxfixtures/pkg/core/shapes"
	"github.com/gomlx/onnxfixtures/pkg/ml/layers"
	"github.com/gomlx/onnxfixtures/pkg/ml/layers/activations"
	"github.com/gomlx/onnxfixtures/pkg/ml/model"
	"github.com/gomlx/onnxfixtures/pkg/onnx"
	"github.com/gomlx/onnxfixtures/pkg/onnx/onnxtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	v, err := ByName("WIDE")
	require.NoError(t, err)
	assert.Equal(t, "wide", v.Name)
	_, err = ByName("medium")
	require.Error(t, err)
	assert.Len(t, Variants(), 2)
}

func TestOutputLayer(t *testing.T) {
	for _, v := range Variants() {
		t.Run(v.Name, func(t *testing.T) {
			m := BuildModel(v, 1)
			output, ok := m.Output().Layer().(*layers.DenseLayer)
			require.True(t, ok)
			assert.Equal(t, "output", output.Name())
			assert.Equal(t, 2, output.Units())
			assert.Equal(t, activations.TypeSoftmax, output.Activation())
			assert.Equal(t, []int{shapes.DynamicDim, 2}, m.OutputShape().Dimensions)
		})
	}
}

func TestFlattenSize(t *testing.T) {
	for _, v := range Variants() {
		t.Run(v.Name, func(t *testing.T) {
			m := BuildModel(v, 1)
			flatten, ok := m.Layer("flatten").(*layers.FlattenLayer)
			require.True(t, ok)
			assert.Equal(t, 7*8*9, flatten.Size())
			assert.Equal(t, 504, flatten.Size())
			firstDense, ok := m.Layer("dense").(*layers.DenseLayer)
			require.True(t, ok)
			assert.Equal(t, flatten.Size(), firstDense.InputDim())
			assert.Equal(t, v.HiddenWidths[0], firstDense.Units())
		})
	}
}

func TestNumParams(t *testing.T) {
	wide, narrow := BuildModel(Wide, 1), BuildModel(Narrow, 1)
	assert.Equal(t, 1_206_402, wide.NumParams())
	assert.Equal(t, 75_538, narrow.NumParams())
	assert.Equal(t, Wide.NumParams(), wide.NumTrainableParams())
	assert.Equal(t, Narrow.NumParams(), narrow.NumTrainableParams())
	assert.Greater(t, wide.NumTrainableParams(), narrow.NumTrainableParams())
}

func TestCompiled(t *testing.T) {
	m := BuildModel(Narrow, 1)
	config := m.Compiled()
	require.NotNil(t, config)
	assert.Equal(t, "categorical_crossentropy", config.Loss.String())
	assert.Equal(t, "adam", config.Optimizer.Name())
	assert.Equal(t, []string{"accuracy"}, config.MetricNames())
}

// structure returns the layer names, types and output shapes of a model.
func structure(m *model.Model) []string {
	var desc []string
	for _, node := range m.Nodes() {
		desc = append(desc, node.String())
	}
	for _, v := range m.Variables() {
		desc = append(desc, v.String())
	}
	return desc
}

func TestStructureIsIdempotent(t *testing.T) {
	for _, v := range Variants() {
		t.Run(v.Name, func(t *testing.T) {
			m1, m2 := BuildModel(v, 0), BuildModel(v, 0)
			assert.Equal(t, structure(m1), structure(m2))
		})
	}
}

func TestRun(t *testing.T) {
	for _, v := range Variants() {
		t.Run(v.Name, func(t *testing.T) {
			outputPath := filepath.Join(t.TempDir(), "model.onnx")
			require.NoError(t, os.WriteFile(outputPath, []byte("stale"), 0644))
			var previousGraph []string
			for run := range 2 {
				var summary bytes.Buffer
				require.NoError(t, Run(v, outputPath, &summary))
				assert.Contains(t, summary.String(), "output (Dense)")
				assert.Contains(t, summary.String(), humanize.Comma(int64(v.NumParams())))

				m, err := onnx.Load(outputPath)
				require.NoError(t, err)
				g := m.GetGraph()
				require.Len(t, g.GetInput(), 1)
				assert.Equal(t, "input: (Float32)[batch 7 8 9]", onnx.DescribeValueInfo(g.GetInput()[0]))
				require.Len(t, g.GetOutput(), 1)
				assert.Equal(t, "output: (Float32)[batch 2]", onnx.DescribeValueInfo(g.GetOutput()[0]))

				var graph []string
				for _, node := range g.GetNode() {
					graph = append(graph, fmt.Sprintf("%s %s(%v) -> %v", node.GetName(), node.GetOpType(),
						node.GetInput(), node.GetOutput()))
				}
				if run > 0 {
					assert.Equal(t, previousGraph, graph)
				}
				previousGraph = graph

				// Independent reader: the file written must be loadable and executable with a dynamic batch size.
				contents, err := os.ReadFile(outputPath)
				require.NoError(t, err)
				inputs, outputs := onnxtest.Signature(onnxtest.Parse(t, contents))
				assert.Equal(t, map[string]string{"input": "(Float32)[-1 7 8 9]"}, inputs)
				assert.Equal(t, map[string]string{"output": "(Float32)[-1 2]"}, outputs)

				batchSize := 1 + 2*run
				values := make([]float32, batchSize*504)
				for ii := range values {
					values[ii] = float32(ii%11) / 11
				}
				results := onnxtest.Run(t, contents, "input", values, batchSize, 7, 8, 9)
				require.Len(t, results, 1)
				probs := results[0]
				require.Len(t, probs, batchSize*2)
				for row := range batchSize {
					assert.InDelta(t, 1.0, probs[2*row]+probs[2*row+1], 1e-4)
				}
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	invalid := Narrow
	invalid.HiddenWidths = []int{16, 0}
	err := Run(invalid, filepath.Join(t.TempDir(), "model.onnx"), &bytes.Buffer{})
	require.ErrorContains(t, err, "failed to build fixture")

	err = Run(Narrow, filepath.Join(t.TempDir(), "missing", "model.onnx"), &bytes.Buffer{})
	require.Error(t, err)
}
