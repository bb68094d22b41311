// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package onnx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gomlx/onnxfixtures/pkg/core/dtypes"
	"github.com/gomlx/onnxfixtures/pkg/core/shapes"
	"github.com/gomlx/onnxfixtures/pkg/onnx/protos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
)

func newTestModel() *protos.ModelProto {
	return &protos.ModelProto{
		IrVersion:       7,
		OpsetImport:     []*protos.OperatorSetIdProto{{Domain: "", Version: 13}},
		ProducerName:    "onnxfixtures",
		ProducerVersion: "test",
		ModelVersion:    1,
		Graph: &protos.GraphProto{
			Name: "linear",
			Node: []*protos.NodeProto{
				{Input: []string{"input", "kernel"}, Output: []string{"matmul"}, Name: "dense/MatMul", OpType: "MatMul"},
				{Input: []string{"matmul", "bias"}, Output: []string{"logits"}, Name: "dense/Add", OpType: "Add"},
				{Input: []string{"logits"}, Output: []string{"output"}, Name: "dense/Softmax", OpType: "Softmax",
					Attribute: []*protos.AttributeProto{IntAttribute("axis", -1)}},
			},
			Initializer: []*protos.TensorProto{
				NewFloat32Tensor("kernel", []int{3, 2}, []float32{1, 2, 3, 4, 5, 6}),
				NewFloat16Tensor("bias", []int{2}, []float32{0.5, -0.25}),
				NewInt64Tensor("shape", []int{2}, []int64{-1, 3}),
			},
			Input:  []*protos.ValueInfoProto{NewTensorValueInfo("input", shapes.WithBatch(dtypes.Float32, 3), "batch")},
			Output: []*protos.ValueInfoProto{NewTensorValueInfo("output", shapes.WithBatch(dtypes.Float32, 2), "batch")},
		},
		MetadataProps: []*protos.StringStringEntryProto{{Key: "loss", Value: "categorical_crossentropy"}},
	}
}

func TestMarshalParse(t *testing.T) {
	want := newTestModel()
	contents, err := Marshal(want)
	require.NoError(t, err)
	got, err := Parse(contents)
	require.NoError(t, err)
	require.True(t, proto.Equal(want, got))

	assert.Equal(t, int64(13), Opset(got, ""))
	assert.Equal(t, int64(0), Opset(got, "ai.onnx.ml"))
	assert.Equal(t, map[string]string{"loss": "categorical_crossentropy"}, Metadata(got))

	g := got.GetGraph()
	require.Len(t, g.GetNode(), 3)
	assert.Equal(t, int64(-1), GetIntAttribute(g.GetNode()[2], "axis", 0))
	assert.Equal(t, int64(7), GetIntAttribute(g.GetNode()[2], "missing", 7))

	require.Len(t, g.GetInput(), 1)
	assert.True(t, ValueInfoShape(g.GetInput()[0]).Equal(shapes.WithBatch(dtypes.Float32, 3)))
	assert.Equal(t, "batch", g.GetInput()[0].GetType().GetTensorType().GetShape().GetDim()[0].GetDimParam())
	assert.Equal(t, "output: (Float32)[batch 2]", DescribeValueInfo(g.GetOutput()[0]))
	assert.False(t, ValueInfoShape(&protos.ValueInfoProto{Name: "untyped"}).Ok())

	kernel, err := TensorFloats(Initializer(g, "kernel"))
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, kernel)
	assert.Equal(t, []int{3, 2}, TensorShape(Initializer(g, "kernel")).Dimensions)

	bias := Initializer(g, "bias")
	assert.Equal(t, dtypes.Float16, TensorDType(bias))
	biasValues, err := TensorFloats(bias)
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, -0.25}, biasValues)

	shape, err := TensorInt64s(Initializer(g, "shape"))
	require.NoError(t, err)
	assert.Equal(t, []int64{-1, 3}, shape)
	_, err = TensorFloats(Initializer(g, "shape"))
	require.Error(t, err)
	assert.Nil(t, Initializer(g, "missing"))
}

func TestMarshalIsDeterministic(t *testing.T) {
	first, err := Marshal(newTestModel())
	require.NoError(t, err)
	for range 3 {
		again, err := Marshal(newTestModel())
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestParseUnknownFields(t *testing.T) {
	contents, err := Marshal(newTestModel())
	require.NoError(t, err)
	// Fields 100 and 101 are not in ModelProto: they are kept as unknown fields.
	contents = protowire.AppendTag(contents, 100, protowire.VarintType)
	contents = protowire.AppendVarint(contents, 12345)
	contents = protowire.AppendTag(contents, 101, protowire.BytesType)
	contents = protowire.AppendString(contents, "extra")
	m, err := Parse(contents)
	require.NoError(t, err)
	assert.Len(t, m.GetGraph().GetNode(), 3)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte{0xff, 0xff, 0xff})
	require.Error(t, err)

	// A valid model without a graph.
	contents, err := Marshal(&protos.ModelProto{IrVersion: 7})
	require.NoError(t, err)
	_, err = Parse(contents)
	require.ErrorContains(t, err, "no graph")
}

func TestTensorEncodings(t *testing.T) {
	// Values in float_data instead of raw_data.
	tensor := &protos.TensorProto{Dims: []int64{2, 1}, DataType: dtypes.Float32.ONNX(), FloatData: []float32{1.5, -2}}
	values, err := TensorFloats(tensor)
	require.NoError(t, err)
	assert.Equal(t, []float32{1.5, -2}, values)

	// FLOAT16 stored as bits in int32_data.
	tensor = &protos.TensorProto{Dims: []int64{1}, DataType: dtypes.Float16.ONNX(), Int32Data: []int32{0x3c00}}
	values, err = TensorFloats(tensor)
	require.NoError(t, err)
	assert.Equal(t, []float32{1}, values)

	// INT64 in raw_data.
	tensor = &protos.TensorProto{Dims: []int64{1}, DataType: dtypes.Int64.ONNX(), RawData: []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}}
	ints, err := TensorInt64s(tensor)
	require.NoError(t, err)
	assert.Equal(t, []int64{-1}, ints)

	// Wrong number of values.
	tensor = &protos.TensorProto{Dims: []int64{3}, DataType: dtypes.Float32.ONNX(), FloatData: []float32{1}}
	_, err = TensorFloats(tensor)
	require.Error(t, err)
	tensor = &protos.TensorProto{Dims: []int64{2}, DataType: dtypes.Float32.ONNX(), RawData: []byte{0, 0, 0}}
	_, err = TensorFloats(tensor)
	require.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "model.onnx")
	require.NoError(t, os.WriteFile(filePath, []byte("previous contents"), 0644))
	m := newTestModel()
	require.NoError(t, Save(m, filePath))
	loaded, err := Load(filePath)
	require.NoError(t, err)
	assert.True(t, proto.Equal(m, loaded))

	_, err = Load(filepath.Join(t.TempDir(), "missing.onnx"))
	require.Error(t, err)
	require.Error(t, Save(m, filepath.Join(t.TempDir(), "missing_dir", "model.onnx")))
}
