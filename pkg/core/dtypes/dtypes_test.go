// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestMapOfNames(t *testing.T) {
	require.Equal(t, Float16, MapOfNames["Float16"])
	require.Equal(t, Float16, MapOfNames["float16"])
	require.Equal(t, Float16, MapOfNames["F16"])
	require.Equal(t, Float16, MapOfNames["f16"])
	require.Equal(t, Float32, MapOfNames["f32"])
	require.Equal(t, Int64, MapOfNames["int64"])
}

func TestFromName(t *testing.T) {
	dtype, err := FromName("FLOAT32")
	require.NoError(t, err)
	require.Equal(t, Float32, dtype)

	_, err = FromName("bfloat17")
	require.Error(t, err)
	_, err = FromName("InvalidDType")
	require.Error(t, err)

	require.Equal(t, Float64, MustFromName("f64"))
	require.Panics(t, func() { _ = MustFromName("complex256") })
}

func TestSizes(t *testing.T) {
	assert.Equal(t, 4, Float32.Size())
	assert.Equal(t, 2, Float16.Size())
	assert.Equal(t, 8, Int64.Size())
	assert.Equal(t, uintptr(8), Float64.Memory())
	assert.Equal(t, 0, InvalidDType.Size())
	assert.True(t, Float16.IsFloat())
	assert.False(t, Int64.IsFloat())
	assert.True(t, Int64.IsInt())
}

func TestONNXCodes(t *testing.T) {
	// Codes from onnx.proto TensorProto.DataType.
	assert.Equal(t, int32(1), Float32.ONNX())
	assert.Equal(t, int32(7), Int64.ONNX())
	assert.Equal(t, int32(10), Float16.ONNX())
	assert.Equal(t, Float32, FromONNX(1))
	assert.Equal(t, Float16, FromONNX(10))
	assert.Equal(t, InvalidDType, FromONNX(8)) // STRING is not supported.
	assert.Equal(t, "DType(8)", DType(8).String())
}

func TestFloat16Conversion(t *testing.T) {
	values := []float32{0, 1, -2.5, 0.125}
	half := Float32ToFloat16(values)
	require.Len(t, half, len(values))
	require.Equal(t, float16.Fromfloat32(-2.5), half[2])
	require.Equal(t, values, Float16ToFloat32(half))
}
