// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gomlx/onnxfixtures/pkg/core/dtypes"
	"github.com/gomlx/onnxfixtures/pkg/ml/layers"
	"github.com/gomlx/onnxfixtures/pkg/ml/layers/activations"
	"github.com/gomlx/onnxfixtures/pkg/ml/model"
	"github.com/gomlx/onnxfixtures/pkg/onnx"
	"github.com/gomlx/onnxfixtures/pkg/onnx/onnxtest"
	"github.com/gomlx/onnxfixtures/pkg/onnx/protos"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestModel(t *testing.T) *model.Model {
	x := model.Input("input", 2, 3)
	h := layers.Flatten(x)
	h = layers.Dense(h, 4).Activation(activations.TypeRelu).Done()
	h = layers.Dense(h, 4).Activation(activations.TypeTanh).UseBias(false).Done()
	y := layers.Dense(h, 2).Activation(activations.TypeSoftmax).Name("output").Done()
	m := model.Build(x, y).Name("tiny").Seed(3).Done()
	m.Compile().LossByName("categorical_crossentropy").OptimizerByName("adam").Metrics("accuracy").Done()
	require.Equal(t, (6+1)*4+4*4+(4+1)*2, m.NumParams())
	return m
}

func opTypes(g *protos.GraphProto) []string {
	ops := make([]string, len(g.GetNode()))
	for ii, node := range g.GetNode() {
		ops[ii] = node.GetOpType()
	}
	return ops
}

func TestONNX(t *testing.T) {
	m := buildTestModel(t)
	onnxModel, err := ONNX(m).Done()
	require.NoError(t, err)

	assert.Equal(t, int64(7), onnxModel.GetIrVersion())
	assert.Equal(t, int64(DefaultOpset), onnx.Opset(onnxModel, ""))
	assert.Equal(t, DefaultProducerName, onnxModel.GetProducerName())

	g := onnxModel.GetGraph()
	assert.Equal(t, "tiny", g.GetName())
	assert.Equal(t, []string{"Reshape", "MatMul", "Add", "Relu", "MatMul", "Tanh", "MatMul", "Add", "Softmax"}, opTypes(g))
	nodes := g.GetNode()
	assert.Equal(t, []string{"input", "flatten/shape"}, nodes[0].GetInput())
	assert.Equal(t, []string{"flatten", "dense/kernel"}, nodes[1].GetInput())
	assert.Equal(t, []string{"dense"}, nodes[3].GetOutput())
	assert.Equal(t, []string{"output"}, nodes[len(nodes)-1].GetOutput())
	assert.Equal(t, int64(-1), onnx.GetIntAttribute(nodes[len(nodes)-1], "axis", 0))

	shape, err := onnx.TensorInt64s(onnx.Initializer(g, "flatten/shape"))
	require.NoError(t, err)
	assert.Equal(t, []int64{-1, 6}, shape)
	kernel, err := onnx.TensorFloats(onnx.Initializer(g, "dense/kernel"))
	require.NoError(t, err)
	assert.Equal(t, m.Layer("dense").(*layers.DenseLayer).Kernel().Value(), kernel)
	assert.Nil(t, onnx.Initializer(g, "dense_1/bias"))

	require.Len(t, g.GetInput(), 1)
	assert.Equal(t, "input: (Float32)[batch 2 3]", onnx.DescribeValueInfo(g.GetInput()[0]))
	require.Len(t, g.GetOutput(), 1)
	assert.Equal(t, "output: (Float32)[batch 2]", onnx.DescribeValueInfo(g.GetOutput()[0]))

	metadata := onnx.Metadata(onnxModel)
	assert.Equal(t, "tiny", metadata[MetadataModelName])
	assert.Equal(t, "categorical_crossentropy", metadata[MetadataLoss])
	assert.Equal(t, "adam(beta_1=0.9, beta_2=0.999, epsilon=1e-07, learning_rate=0.001)", metadata[MetadataOptimizer])
	assert.Equal(t, "accuracy", metadata[MetadataMetrics])
	_, err = uuid.Parse(metadata[MetadataExportID])
	require.NoError(t, err)

	// Each export has a new id.
	onnxModel2, err := ONNX(m).Done()
	require.NoError(t, err)
	assert.NotEqual(t, metadata[MetadataExportID], onnx.Metadata(onnxModel2)[MetadataExportID])
}

func TestONNXExecution(t *testing.T) {
	m := buildTestModel(t)
	for _, weightsDType := range []dtypes.DType{dtypes.Float32, dtypes.Float16} {
		t.Run(weightsDType.String(), func(t *testing.T) {
			onnxModel, err := ONNX(m).WeightsDType(weightsDType).Opset(17).Done()
			require.NoError(t, err)
			assert.Equal(t, int64(8), onnxModel.GetIrVersion())
			if weightsDType == dtypes.Float16 {
				assert.Equal(t, dtypes.Float16, onnx.TensorDType(onnx.Initializer(onnxModel.GetGraph(), "dense/kernel")))
				assert.Contains(t, opTypes(onnxModel.GetGraph()), "Cast")
			}
			contents, err := onnx.Marshal(onnxModel)
			require.NoError(t, err)

			inputs, outputs := onnxtest.Signature(onnxtest.Parse(t, contents))
			assert.Equal(t, map[string]string{"input": "(Float32)[-1 2 3]"}, inputs)
			assert.Equal(t, map[string]string{"output": "(Float32)[-1 2]"}, outputs)

			const batchSize = 5
			values := make([]float32, batchSize*2*3)
			for ii := range values {
				values[ii] = float32(ii%7) - 3
			}
			results := onnxtest.Run(t, contents, "input", values, batchSize, 2, 3)
			require.Len(t, results, 1)
			probs := results[0]
			require.Len(t, probs, batchSize*2)
			for row := range batchSize {
				assert.InDelta(t, 1.0, probs[2*row]+probs[2*row+1], 1e-3)
			}
		})
	}
}

func TestSave(t *testing.T) {
	m := buildTestModel(t)
	filePath := filepath.Join(t.TempDir(), "model.onnx")
	require.NoError(t, os.WriteFile(filePath, []byte("not a model"), 0644))
	require.NoError(t, ONNX(m).Save(filePath))
	loaded, err := onnx.Load(filePath)
	require.NoError(t, err)
	assert.Equal(t, "tiny", loaded.GetGraph().GetName())

	err = ONNX(m).Save(filepath.Join(t.TempDir(), "missing", "model.onnx"))
	require.Error(t, err)
}

// unknownLayer can't be converted to ONNX.
type unknownLayer struct{}

func (unknownLayer) Name() string                 { return "unknown" }
func (unknownLayer) Type() string                 { return "Unknown" }
func (unknownLayer) Variables() []*model.Variable { return nil }

func TestONNXErrors(t *testing.T) {
	x := model.Input("input", 3)
	y := model.NewNode(unknownLayer{}, x.Shape(), x)
	m := model.Build(x, y).Done()
	_, err := ONNX(m).Done()
	require.ErrorContains(t, err, "can't be converted")

	m = buildTestModel(t)
	require.Panics(t, func() { ONNX(m).Opset(11) })
	require.Panics(t, func() { ONNX(m).WeightsDType(dtypes.Int64) })
	require.Panics(t, func() { ONNX(m).BatchDimName("") })
}
