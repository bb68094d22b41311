// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package onnx

import (
	"encoding/binary"
	"math"

	"github.com/gomlx/onnxfixtures/pkg/core/dtypes"
	"github.com/gomlx/onnxfixtures/pkg/core/shapes"
	"github.com/gomlx/onnxfixtures/pkg/onnx/protos"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

func toInt64s(dims []int) []int64 {
	converted := make([]int64, len(dims))
	for ii, dim := range dims {
		converted[ii] = int64(dim)
	}
	return converted
}

// NewFloat32Tensor creates a FLOAT tensor, with the values stored in raw_data.
func NewFloat32Tensor(name string, dims []int, values []float32) *protos.TensorProto {
	raw := make([]byte, 0, 4*len(values))
	for _, v := range values {
		raw = binary.LittleEndian.AppendUint32(raw, math.Float32bits(v))
	}
	return &protos.TensorProto{Name: name, Dims: toInt64s(dims), DataType: dtypes.Float32.ONNX(), RawData: raw}
}

// NewFloat16Tensor creates a FLOAT16 tensor from float32 values, converted to half-precision and
// stored in raw_data.
func NewFloat16Tensor(name string, dims []int, values []float32) *protos.TensorProto {
	raw := make([]byte, 0, 2*len(values))
	for _, v := range dtypes.Float32ToFloat16(values) {
		raw = binary.LittleEndian.AppendUint16(raw, v.Bits())
	}
	return &protos.TensorProto{Name: name, Dims: toInt64s(dims), DataType: dtypes.Float16.ONNX(), RawData: raw}
}

// NewInt64Tensor creates an INT64 tensor, with the values stored in int64_data.
func NewInt64Tensor(name string, dims []int, values []int64) *protos.TensorProto {
	return &protos.TensorProto{Name: name, Dims: toInt64s(dims), DataType: dtypes.Int64.ONNX(), Int64Data: values}
}

// TensorDType returns the DType of the tensor, or dtypes.InvalidDType if not supported.
func TensorDType(t *protos.TensorProto) dtypes.DType { return dtypes.FromONNX(t.GetDataType()) }

// TensorShape returns the shape of the tensor.
func TensorShape(t *protos.TensorProto) shapes.Shape {
	dims := make([]int, len(t.GetDims()))
	for ii, dim := range t.GetDims() {
		dims[ii] = int(dim)
	}
	return shapes.Shape{DType: TensorDType(t), Dimensions: dims}
}

func tensorSize(t *protos.TensorProto) int {
	size := 1
	for _, dim := range t.GetDims() {
		size *= int(dim)
	}
	return size
}

// TensorFloats returns the values of a FLOAT or FLOAT16 tensor as float32, regardless of how they are stored.
func TensorFloats(t *protos.TensorProto) ([]float32, error) {
	size := tensorSize(t)
	var values []float32
	switch TensorDType(t) {
	case dtypes.Float32:
		if raw := t.GetRawData(); raw != nil {
			if len(raw) != 4*size {
				return nil, errors.Errorf("tensor %q: raw_data has %d bytes, expected %d", t.GetName(), len(raw), 4*size)
			}
			values = make([]float32, size)
			for ii := range values {
				values[ii] = math.Float32frombits(binary.LittleEndian.Uint32(raw[4*ii:]))
			}
		} else {
			values = t.GetFloatData()
		}
	case dtypes.Float16:
		halves := make([]float16.Float16, 0, size)
		if raw := t.GetRawData(); raw != nil {
			if len(raw) != 2*size {
				return nil, errors.Errorf("tensor %q: raw_data has %d bytes, expected %d", t.GetName(), len(raw), 2*size)
			}
			for ii := range size {
				halves = append(halves, float16.Frombits(binary.LittleEndian.Uint16(raw[2*ii:])))
			}
		} else {
			// Without raw_data, FLOAT16 values are stored as their bits in int32_data.
			for _, bits := range t.GetInt32Data() {
				halves = append(halves, float16.Frombits(uint16(bits)))
			}
		}
		values = dtypes.Float16ToFloat32(halves)
	default:
		return nil, errors.Errorf("tensor %q: data type %s is not a float type", t.GetName(), TensorDType(t))
	}
	if len(values) != size {
		return nil, errors.Errorf("tensor %q: has %d values, expected %d for dims %v", t.GetName(), len(values), size, t.GetDims())
	}
	return values, nil
}

// TensorInt64s returns the values of an INT64 tensor, regardless of how they are stored.
func TensorInt64s(t *protos.TensorProto) ([]int64, error) {
	if TensorDType(t) != dtypes.Int64 {
		return nil, errors.Errorf("tensor %q: data type %s is not Int64", t.GetName(), TensorDType(t))
	}
	size := tensorSize(t)
	values := t.GetInt64Data()
	if raw := t.GetRawData(); raw != nil {
		if len(raw) != 8*size {
			return nil, errors.Errorf("tensor %q: raw_data has %d bytes, expected %d", t.GetName(), len(raw), 8*size)
		}
		values = make([]int64, size)
		for ii := range values {
			values[ii] = int64(binary.LittleEndian.Uint64(raw[8*ii:]))
		}
	}
	if len(values) != size {
		return nil, errors.Errorf("tensor %q: has %d values, expected %d for dims %v", t.GetName(), len(values), size, t.GetDims())
	}
	return values, nil
}
